package list

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/myplanner/backend/domain"
	"github.com/myplanner/backend/repository"
	"github.com/myplanner/backend/usecase"
)

type UseCase struct {
	lists  repository.ListRepository
	buffer usecase.OperationBuffer
	logger *zap.Logger
}

func New(lists repository.ListRepository, buffer usecase.OperationBuffer, logger *zap.Logger) *UseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &UseCase{
		lists:  lists,
		buffer: buffer,
		logger: logger,
	}
}

func (uc *UseCase) List(ctx context.Context, filter repository.ListFilter) ([]domain.List, int, error) {
	return uc.lists.List(ctx, filter)
}

func (uc *UseCase) Get(ctx context.Context, ownerID, id string) (*domain.List, error) {
	return uc.lists.GetByID(ctx, ownerID, id)
}

func (uc *UseCase) Create(ctx context.Context, list *domain.List) (*domain.List, error) {
	if err := validate(list); err != nil {
		return nil, err
	}

	created, err := uc.lists.Create(ctx, list)
	if err != nil {
		if uc.shouldBuffer(ctx, usecase.OperationCreate, list) {
			return list, nil
		}
		return nil, err
	}
	return created, nil
}

func (uc *UseCase) Update(ctx context.Context, list *domain.List) (*domain.List, error) {
	if err := validate(list); err != nil {
		return nil, err
	}

	if err := uc.lists.Update(ctx, list); err != nil {
		if domain.IsDomainError(err, domain.ErrCodeNotFound) {
			return nil, err
		}
		if uc.shouldBuffer(ctx, usecase.OperationUpdate, list) {
			return list, nil
		}
		return nil, err
	}
	return list, nil
}

func (uc *UseCase) Delete(ctx context.Context, ownerID, id string) error {
	if err := uc.lists.Delete(ctx, ownerID, id); err != nil {
		if domain.IsDomainError(err, domain.ErrCodeNotFound) {
			return err
		}
		list := &domain.List{ID: id, OwnerID: ownerID}
		if uc.shouldBuffer(ctx, usecase.OperationDelete, list) {
			return nil
		}
		return err
	}
	return nil
}

func validate(list *domain.List) error {
	if list == nil {
		return domain.ErrInvalidPayload
	}
	list.Name = strings.TrimSpace(list.Name)
	if list.Name == "" {
		return domain.NewError(domain.ErrCodeInvalid, "list name is required")
	}
	return nil
}

func (uc *UseCase) shouldBuffer(ctx context.Context, operation string, list *domain.List) bool {
	if uc.buffer == nil {
		return false
	}
	if err := uc.buffer.BufferList(ctx, operation, list); err != nil {
		uc.logger.Error("failed to buffer list operation", zap.String("operation", operation), zap.Error(err))
		return false
	}
	uc.logger.Warn("list operation buffered", zap.String("operation", operation))
	return true
}
