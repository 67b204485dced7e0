package repository

import (
	"context"

	"github.com/myplanner/backend/domain"
)

type ReminderFilter struct {
	OwnerID string
	TaskID  string
	Sort    string
	Limit   int
	Offset  int
}

// ReminderRepository scopes every operation through the owning task's owner.
type ReminderRepository interface {
	GetByID(ctx context.Context, ownerID, id string) (*domain.Reminder, error)
	List(ctx context.Context, filter ReminderFilter) ([]domain.Reminder, int, error)
	Create(ctx context.Context, reminder *domain.Reminder) (*domain.Reminder, error)
	Update(ctx context.Context, ownerID string, reminder *domain.Reminder) error
	Delete(ctx context.Context, ownerID, id string) error
}
