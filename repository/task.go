package repository

import (
	"context"

	"github.com/myplanner/backend/domain"
)

// TaskFilter translates the filter endpoint's query parameters into a single
// database query. All predicates combine with AND; TagIDs requires the task
// to carry every listed tag.
type TaskFilter struct {
	OwnerID  string
	Query    string
	ListID   string
	Priority int // 0 means any
	Done     *bool
	TagIDs   []string
	Sort     string
	Limit    int
	Offset   int
}

type TaskRepository interface {
	GetByID(ctx context.Context, ownerID, id string) (*domain.Task, error)
	List(ctx context.Context, filter TaskFilter) ([]domain.Task, int, error)
	Create(ctx context.Context, task *domain.Task) (*domain.Task, error)
	Update(ctx context.Context, task *domain.Task) error
	SetCompleted(ctx context.Context, ownerID, id string, done bool) error
	Delete(ctx context.Context, ownerID, id string) error
}
