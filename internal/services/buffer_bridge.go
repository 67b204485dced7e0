package services

import (
	"context"
	"encoding/json"

	"github.com/myplanner/backend/domain"
	"github.com/myplanner/backend/internal/infrastructure/buffer"
	"github.com/myplanner/backend/usecase"
)

type BufferBridge struct {
	processor *BufferProcessor
}

func NewBufferBridge(processor *BufferProcessor) *BufferBridge {
	return &BufferBridge{processor: processor}
}

func (b *BufferBridge) BufferList(ctx context.Context, operation string, list *domain.List) error {
	if b.processor == nil || list == nil {
		return domain.ErrInvalidPayload
	}
	payload, err := json.Marshal(list)
	if err != nil {
		return err
	}
	item := buffer.Item{
		ID:        list.ID,
		UserID:    list.OwnerID,
		Entity:    buffer.EntityList,
		Operation: operation,
		Data:      payload,
		Priority:  3,
	}
	return b.processor.BufferOperation(ctx, item)
}

func (b *BufferBridge) BufferTask(ctx context.Context, operation string, task *domain.Task) error {
	if b.processor == nil || task == nil {
		return domain.ErrInvalidPayload
	}
	payload, err := json.Marshal(task)
	if err != nil {
		return err
	}
	item := buffer.Item{
		ID:        task.ID,
		UserID:    task.OwnerID,
		Entity:    buffer.EntityTask,
		Operation: operation,
		Data:      payload,
		Priority:  4,
	}
	return b.processor.BufferOperation(ctx, item)
}

var _ usecase.OperationBuffer = (*BufferBridge)(nil)
