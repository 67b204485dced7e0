package event

import (
	"context"

	"go.uber.org/zap"

	"github.com/myplanner/backend/domain"
	"github.com/myplanner/backend/repository"
)

type UseCase struct {
	events repository.EventRepository
	tasks  repository.TaskRepository
	logger *zap.Logger
}

func New(events repository.EventRepository, tasks repository.TaskRepository, logger *zap.Logger) *UseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &UseCase{
		events: events,
		tasks:  tasks,
		logger: logger,
	}
}

func (uc *UseCase) List(ctx context.Context, filter repository.EventFilter) ([]domain.Event, int, error) {
	return uc.events.List(ctx, filter)
}

func (uc *UseCase) Get(ctx context.Context, ownerID, id string) (*domain.Event, error) {
	return uc.events.GetByID(ctx, ownerID, id)
}

// Create attaches an event to a task. A task carries at most one event;
// the cap is enforced here, with the unique index as backstop.
func (uc *UseCase) Create(ctx context.Context, ownerID string, event *domain.Event) (*domain.Event, error) {
	if event == nil || event.TaskID == "" {
		return nil, domain.NewError(domain.ErrCodeInvalid, "event task is required")
	}
	if err := event.Validate(); err != nil {
		return nil, err
	}

	if _, err := uc.tasks.GetByID(ctx, ownerID, event.TaskID); err != nil {
		return nil, err
	}

	if _, err := uc.events.GetByTask(ctx, ownerID, event.TaskID); err == nil {
		return nil, domain.ErrEventExists
	} else if !domain.IsDomainError(err, domain.ErrCodeNotFound) {
		return nil, err
	}

	return uc.events.Create(ctx, event)
}

func (uc *UseCase) Update(ctx context.Context, ownerID string, event *domain.Event) (*domain.Event, error) {
	if err := event.Validate(); err != nil {
		return nil, err
	}
	if err := uc.events.Update(ctx, ownerID, event); err != nil {
		return nil, err
	}
	return event, nil
}

func (uc *UseCase) Delete(ctx context.Context, ownerID, id string) error {
	return uc.events.Delete(ctx, ownerID, id)
}
