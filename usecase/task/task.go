package task

import (
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"

	"github.com/myplanner/backend/domain"
	"github.com/myplanner/backend/repository"
	"github.com/myplanner/backend/usecase"
)

type UseCase struct {
	tasks  repository.TaskRepository
	lists  repository.ListRepository
	tags   repository.TagRepository
	buffer usecase.OperationBuffer
	logger *zap.Logger
}

func New(
	tasks repository.TaskRepository,
	lists repository.ListRepository,
	tags repository.TagRepository,
	buffer usecase.OperationBuffer,
	logger *zap.Logger,
) *UseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &UseCase{
		tasks:  tasks,
		lists:  lists,
		tags:   tags,
		buffer: buffer,
		logger: logger,
	}
}

func (uc *UseCase) List(ctx context.Context, filter repository.TaskFilter) ([]domain.Task, int, error) {
	return uc.tasks.List(ctx, filter)
}

func (uc *UseCase) Get(ctx context.Context, ownerID, id string) (*domain.Task, error) {
	return uc.tasks.GetByID(ctx, ownerID, id)
}

func (uc *UseCase) Create(ctx context.Context, task *domain.Task) (*domain.Task, error) {
	if err := uc.validate(ctx, task); err != nil {
		// An unreachable store fails the ownership lookups too; those writes
		// go to the buffer and replay unvalidated like any other buffered op.
		if infrastructureError(err) && uc.shouldBuffer(ctx, usecase.OperationCreate, task) {
			return task, nil
		}
		return nil, err
	}

	created, err := uc.tasks.Create(ctx, task)
	if err != nil {
		if uc.shouldBuffer(ctx, usecase.OperationCreate, task) {
			return task, nil
		}
		return nil, err
	}
	return created, nil
}

func (uc *UseCase) Update(ctx context.Context, task *domain.Task) (*domain.Task, error) {
	if err := uc.validate(ctx, task); err != nil {
		if infrastructureError(err) && uc.shouldBuffer(ctx, usecase.OperationUpdate, task) {
			return task, nil
		}
		return nil, err
	}

	if err := uc.tasks.Update(ctx, task); err != nil {
		if domain.IsDomainError(err, domain.ErrCodeNotFound) {
			return nil, err
		}
		if uc.shouldBuffer(ctx, usecase.OperationUpdate, task) {
			return task, nil
		}
		return nil, err
	}
	return task, nil
}

// Toggle flips or sets the done flag and returns the new state.
// A nil done inverts the current value.
func (uc *UseCase) Toggle(ctx context.Context, ownerID, id string, done *bool) (bool, error) {
	task, err := uc.tasks.GetByID(ctx, ownerID, id)
	if err != nil {
		return false, err
	}

	next := !task.Completed
	if done != nil {
		next = *done
	}

	if err := uc.tasks.SetCompleted(ctx, ownerID, id, next); err != nil {
		return false, err
	}
	return next, nil
}

func (uc *UseCase) Delete(ctx context.Context, ownerID, id string) error {
	if err := uc.tasks.Delete(ctx, ownerID, id); err != nil {
		if domain.IsDomainError(err, domain.ErrCodeNotFound) {
			return err
		}
		task := &domain.Task{ID: id, OwnerID: ownerID}
		if uc.shouldBuffer(ctx, usecase.OperationDelete, task) {
			return nil
		}
		return err
	}
	return nil
}

// validate enforces the cross-entity ownership rules: the target list and
// every attached tag must belong to the task's owner.
func (uc *UseCase) validate(ctx context.Context, task *domain.Task) error {
	if task == nil {
		return domain.ErrInvalidPayload
	}

	task.Title = strings.TrimSpace(task.Title)
	if task.Title == "" {
		return domain.NewError(domain.ErrCodeInvalid, "task title is required")
	}

	if task.Priority == 0 {
		task.Priority = domain.PriorityDefault
	}
	if !domain.ValidPriority(task.Priority) {
		return domain.NewError(domain.ErrCodeInvalid, "priority must be between 1 and 4")
	}

	if task.ListID == "" {
		return domain.NewError(domain.ErrCodeInvalid, "task list is required")
	}
	if _, err := uc.lists.GetByID(ctx, task.OwnerID, task.ListID); err != nil {
		if domain.IsDomainError(err, domain.ErrCodeNotFound) {
			return domain.ErrListNotOwned
		}
		return err
	}

	task.TagIDs = dedupe(task.TagIDs)
	if len(task.TagIDs) > 0 {
		owned, err := uc.tags.GetByIDs(ctx, task.OwnerID, task.TagIDs)
		if err != nil {
			return err
		}
		if len(owned) != len(task.TagIDs) {
			return domain.ErrTagNotOwned
		}
	}
	return nil
}

// infrastructureError reports whether err came out of storage rather than a
// failed domain rule. Only infrastructure failures are eligible for buffering.
func infrastructureError(err error) bool {
	var dErr *domain.Error
	return err != nil && !errors.As(err, &dErr)
}

func dedupe(ids []string) []string {
	if len(ids) == 0 {
		return ids
	}
	seen := make(map[string]struct{}, len(ids))
	out := ids[:0]
	for _, id := range ids {
		if id == "" {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

func (uc *UseCase) shouldBuffer(ctx context.Context, operation string, task *domain.Task) bool {
	if uc.buffer == nil {
		return false
	}
	if err := uc.buffer.BufferTask(ctx, operation, task); err != nil {
		uc.logger.Error("failed to buffer task operation", zap.String("operation", operation), zap.Error(err))
		return false
	}
	uc.logger.Warn("task operation buffered", zap.String("operation", operation))
	return true
}
