package tag

import (
	"context"
	"testing"

	"github.com/myplanner/backend/domain"
	"github.com/myplanner/backend/repository"
)

type stubTagRepo struct {
	created      *domain.Tag
	batchOwner   string
	batchIDs     []string
	batchDeleted int
}

func (r *stubTagRepo) GetByID(_ context.Context, _, _ string) (*domain.Tag, error) {
	return nil, domain.ErrTagNotFound
}

func (r *stubTagRepo) GetByIDs(_ context.Context, _ string, _ []string) ([]domain.Tag, error) {
	return nil, nil
}

func (r *stubTagRepo) List(_ context.Context, _ repository.TagFilter) ([]domain.Tag, int, error) {
	return nil, 0, nil
}

func (r *stubTagRepo) Create(_ context.Context, tag *domain.Tag) (*domain.Tag, error) {
	r.created = tag
	return tag, nil
}

func (r *stubTagRepo) Update(_ context.Context, _ *domain.Tag) error { return nil }

func (r *stubTagRepo) Delete(_ context.Context, _, _ string) error { return nil }

func (r *stubTagRepo) DeleteBatch(_ context.Context, ownerID string, ids []string) (int, error) {
	r.batchOwner = ownerID
	r.batchIDs = ids
	return r.batchDeleted, nil
}

func TestCreateLowercasesName(t *testing.T) {
	repo := &stubTagRepo{}
	uc := New(repo, nil)

	created, err := uc.Create(context.Background(), &domain.Tag{OwnerID: "u1", Name: "  Urgent  "})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.Name != "urgent" {
		t.Fatalf("expected lowercased name, got %q", created.Name)
	}
}

func TestCreateRequiresName(t *testing.T) {
	uc := New(&stubTagRepo{}, nil)

	if _, err := uc.Create(context.Background(), &domain.Tag{OwnerID: "u1", Name: "  "}); !domain.IsDomainError(err, domain.ErrCodeInvalid) {
		t.Fatalf("expected invalid error, got %v", err)
	}
}

func TestBulkDeleteScopesToOwner(t *testing.T) {
	repo := &stubTagRepo{batchDeleted: 2}
	uc := New(repo, nil)

	deleted, err := uc.BulkDelete(context.Background(), "u1", []string{"a", "b", "foreign"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if deleted != 2 {
		t.Fatalf("expected 2 deletions reported, got %d", deleted)
	}
	if repo.batchOwner != "u1" {
		t.Fatalf("expected owner scoping, got %q", repo.batchOwner)
	}
	if len(repo.batchIDs) != 3 {
		t.Fatalf("expected all ids forwarded, got %v", repo.batchIDs)
	}
}
