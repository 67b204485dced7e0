package usecase

import (
	"context"

	"github.com/myplanner/backend/domain"
)

// Buffered operation kinds.
const (
	OperationCreate = "create"
	OperationUpdate = "update"
	OperationDelete = "delete"
)

// OperationBuffer abstracts the buffer processor so use cases stay storage-agnostic.
type OperationBuffer interface {
	BufferList(ctx context.Context, operation string, list *domain.List) error
	BufferTask(ctx context.Context, operation string, task *domain.Task) error
}
