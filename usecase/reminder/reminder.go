package reminder

import (
	"context"

	"go.uber.org/zap"

	"github.com/myplanner/backend/domain"
	"github.com/myplanner/backend/repository"
)

type UseCase struct {
	reminders repository.ReminderRepository
	tasks     repository.TaskRepository
	logger    *zap.Logger
}

func New(reminders repository.ReminderRepository, tasks repository.TaskRepository, logger *zap.Logger) *UseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &UseCase{
		reminders: reminders,
		tasks:     tasks,
		logger:    logger,
	}
}

func (uc *UseCase) List(ctx context.Context, filter repository.ReminderFilter) ([]domain.Reminder, int, error) {
	return uc.reminders.List(ctx, filter)
}

func (uc *UseCase) Get(ctx context.Context, ownerID, id string) (*domain.Reminder, error) {
	return uc.reminders.GetByID(ctx, ownerID, id)
}

func (uc *UseCase) Create(ctx context.Context, ownerID string, reminder *domain.Reminder) (*domain.Reminder, error) {
	if err := validate(reminder); err != nil {
		return nil, err
	}

	// The target task must belong to the caller.
	if _, err := uc.tasks.GetByID(ctx, ownerID, reminder.TaskID); err != nil {
		return nil, err
	}
	return uc.reminders.Create(ctx, reminder)
}

func (uc *UseCase) Update(ctx context.Context, ownerID string, reminder *domain.Reminder) (*domain.Reminder, error) {
	if err := validate(reminder); err != nil {
		return nil, err
	}
	if err := uc.reminders.Update(ctx, ownerID, reminder); err != nil {
		return nil, err
	}
	return reminder, nil
}

func (uc *UseCase) Delete(ctx context.Context, ownerID, id string) error {
	return uc.reminders.Delete(ctx, ownerID, id)
}

func validate(reminder *domain.Reminder) error {
	if reminder == nil {
		return domain.ErrInvalidPayload
	}
	if reminder.TaskID == "" {
		return domain.NewError(domain.ErrCodeInvalid, "reminder task is required")
	}
	if reminder.RemindAt.IsZero() {
		return domain.NewError(domain.ErrCodeInvalid, "reminder time is required")
	}
	return nil
}
