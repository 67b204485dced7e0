package comment

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/myplanner/backend/domain"
	"github.com/myplanner/backend/repository"
)

type UseCase struct {
	comments repository.CommentRepository
	tasks    repository.TaskRepository
	logger   *zap.Logger
}

func New(comments repository.CommentRepository, tasks repository.TaskRepository, logger *zap.Logger) *UseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &UseCase{
		comments: comments,
		tasks:    tasks,
		logger:   logger,
	}
}

func (uc *UseCase) ListByTask(ctx context.Context, ownerID, taskID string, limit, offset int) ([]domain.Comment, int, error) {
	if _, err := uc.tasks.GetByID(ctx, ownerID, taskID); err != nil {
		return nil, 0, err
	}
	return uc.comments.ListByTask(ctx, ownerID, taskID, limit, offset)
}

func (uc *UseCase) Create(ctx context.Context, authorID, taskID, body string) (*domain.Comment, error) {
	body = strings.TrimSpace(body)
	if body == "" {
		return nil, domain.NewError(domain.ErrCodeInvalid, "comment body is required")
	}

	if _, err := uc.tasks.GetByID(ctx, authorID, taskID); err != nil {
		return nil, err
	}

	comment := &domain.Comment{
		TaskID:   taskID,
		AuthorID: authorID,
		Body:     body,
	}
	return uc.comments.Create(ctx, comment)
}

// Delete removes a comment when the caller is its author or owns the task.
func (uc *UseCase) Delete(ctx context.Context, userID, id string) error {
	comment, taskOwnerID, err := uc.comments.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if comment.AuthorID != userID && taskOwnerID != userID {
		return domain.ErrCommentForbidden
	}
	return uc.comments.Delete(ctx, id)
}
