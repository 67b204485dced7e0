package repository

import (
	"context"

	"github.com/myplanner/backend/domain"
)

type ListFilter struct {
	OwnerID string
	Query   string
	Sort    string
	Limit   int
	Offset  int
}

// ListRepository persists to-do lists. Reads are scoped to the owner;
// a lookup for another user's list behaves like a miss.
type ListRepository interface {
	GetByID(ctx context.Context, ownerID, id string) (*domain.List, error)
	List(ctx context.Context, filter ListFilter) ([]domain.List, int, error)
	Create(ctx context.Context, list *domain.List) (*domain.List, error)
	Update(ctx context.Context, list *domain.List) error
	Delete(ctx context.Context, ownerID, id string) error
}
