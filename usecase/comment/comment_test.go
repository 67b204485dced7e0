package comment

import (
	"context"
	"testing"

	"github.com/myplanner/backend/domain"
	"github.com/myplanner/backend/repository"
)

type stubCommentRepo struct {
	comments map[string]*domain.Comment
	owners   map[string]string // comment id -> task owner
	deleted  []string
}

func (r *stubCommentRepo) GetByID(_ context.Context, id string) (*domain.Comment, string, error) {
	comment, ok := r.comments[id]
	if !ok {
		return nil, "", domain.ErrCommentNotFound
	}
	return comment, r.owners[id], nil
}

func (r *stubCommentRepo) ListByTask(_ context.Context, _, _ string, _, _ int) ([]domain.Comment, int, error) {
	return nil, 0, nil
}

func (r *stubCommentRepo) Create(_ context.Context, comment *domain.Comment) (*domain.Comment, error) {
	return comment, nil
}

func (r *stubCommentRepo) Delete(_ context.Context, id string) error {
	r.deleted = append(r.deleted, id)
	return nil
}

type stubTaskRepo struct {
	tasks map[string]string // id -> owner
}

func (r *stubTaskRepo) GetByID(_ context.Context, ownerID, id string) (*domain.Task, error) {
	if owner, ok := r.tasks[id]; ok && owner == ownerID {
		return &domain.Task{ID: id, OwnerID: ownerID}, nil
	}
	return nil, domain.ErrTaskNotFound
}

func (r *stubTaskRepo) List(_ context.Context, _ repository.TaskFilter) ([]domain.Task, int, error) {
	return nil, 0, nil
}

func (r *stubTaskRepo) Create(_ context.Context, task *domain.Task) (*domain.Task, error) {
	return task, nil
}

func (r *stubTaskRepo) Update(_ context.Context, _ *domain.Task) error { return nil }

func (r *stubTaskRepo) SetCompleted(_ context.Context, _, _ string, _ bool) error { return nil }

func (r *stubTaskRepo) Delete(_ context.Context, _, _ string) error { return nil }

func TestCreateRequiresBody(t *testing.T) {
	uc := New(&stubCommentRepo{}, &stubTaskRepo{tasks: map[string]string{"t1": "u1"}}, nil)

	if _, err := uc.Create(context.Background(), "u1", "t1", "   "); !domain.IsDomainError(err, domain.ErrCodeInvalid) {
		t.Fatalf("expected invalid error for blank body, got %v", err)
	}
}

func TestCreateTrimsBody(t *testing.T) {
	uc := New(&stubCommentRepo{}, &stubTaskRepo{tasks: map[string]string{"t1": "u1"}}, nil)

	comment, err := uc.Create(context.Background(), "u1", "t1", "  note  ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if comment.Body != "note" {
		t.Fatalf("expected trimmed body, got %q", comment.Body)
	}
}

func TestCreateOnForeignTask(t *testing.T) {
	uc := New(&stubCommentRepo{}, &stubTaskRepo{tasks: map[string]string{"t1": "someone-else"}}, nil)

	if _, err := uc.Create(context.Background(), "u1", "t1", "hi"); !domain.IsDomainError(err, domain.ErrCodeNotFound) {
		t.Fatalf("expected not-found, got %v", err)
	}
}

func TestDeleteByAuthor(t *testing.T) {
	comments := &stubCommentRepo{
		comments: map[string]*domain.Comment{"c1": {ID: "c1", AuthorID: "author"}},
		owners:   map[string]string{"c1": "task-owner"},
	}
	uc := New(comments, &stubTaskRepo{}, nil)

	if err := uc.Delete(context.Background(), "author", "c1"); err != nil {
		t.Fatalf("author should be allowed to delete: %v", err)
	}
	if len(comments.deleted) != 1 {
		t.Fatal("expected delete to reach the repository")
	}
}

func TestDeleteByTaskOwner(t *testing.T) {
	comments := &stubCommentRepo{
		comments: map[string]*domain.Comment{"c1": {ID: "c1", AuthorID: "author"}},
		owners:   map[string]string{"c1": "task-owner"},
	}
	uc := New(comments, &stubTaskRepo{}, nil)

	if err := uc.Delete(context.Background(), "task-owner", "c1"); err != nil {
		t.Fatalf("task owner should be allowed to delete: %v", err)
	}
}

func TestDeleteByStranger(t *testing.T) {
	comments := &stubCommentRepo{
		comments: map[string]*domain.Comment{"c1": {ID: "c1", AuthorID: "author"}},
		owners:   map[string]string{"c1": "task-owner"},
	}
	uc := New(comments, &stubTaskRepo{}, nil)

	if err := uc.Delete(context.Background(), "stranger", "c1"); err != domain.ErrCommentForbidden {
		t.Fatalf("expected ErrCommentForbidden, got %v", err)
	}
	if len(comments.deleted) != 0 {
		t.Fatal("delete should not reach the repository")
	}
}
