package repository

import (
	"context"

	"github.com/myplanner/backend/domain"
)

type EventFilter struct {
	OwnerID string
	TaskID  string
	Sort    string
	Limit   int
	Offset  int
}

// EventRepository scopes every operation through the owning task's owner.
type EventRepository interface {
	GetByID(ctx context.Context, ownerID, id string) (*domain.Event, error)
	GetByTask(ctx context.Context, ownerID, taskID string) (*domain.Event, error)
	List(ctx context.Context, filter EventFilter) ([]domain.Event, int, error)
	Create(ctx context.Context, event *domain.Event) (*domain.Event, error)
	Update(ctx context.Context, ownerID string, event *domain.Event) error
	Delete(ctx context.Context, ownerID, id string) error
}
