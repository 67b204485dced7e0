package repository

import (
	"context"

	"github.com/myplanner/backend/domain"
)

type TagFilter struct {
	OwnerID string
	Query   string
	Sort    string
	Limit   int
	Offset  int
}

type TagRepository interface {
	GetByID(ctx context.Context, ownerID, id string) (*domain.Tag, error)
	GetByIDs(ctx context.Context, ownerID string, ids []string) ([]domain.Tag, error)
	List(ctx context.Context, filter TagFilter) ([]domain.Tag, int, error)
	Create(ctx context.Context, tag *domain.Tag) (*domain.Tag, error)
	Update(ctx context.Context, tag *domain.Tag) error
	Delete(ctx context.Context, ownerID, id string) error
	// DeleteBatch removes the owner's tags among ids and reports how many
	// rows were deleted. Foreign ids are ignored.
	DeleteBatch(ctx context.Context, ownerID string, ids []string) (int, error)
}
