package repository

import (
	"context"

	"github.com/myplanner/backend/domain"
)

type CommentRepository interface {
	// GetByID also returns the owner of the comment's task so callers can
	// apply the author-or-task-owner deletion rule.
	GetByID(ctx context.Context, id string) (*domain.Comment, string, error)
	ListByTask(ctx context.Context, ownerID, taskID string, limit, offset int) ([]domain.Comment, int, error)
	Create(ctx context.Context, comment *domain.Comment) (*domain.Comment, error)
	Delete(ctx context.Context, id string) error
}
