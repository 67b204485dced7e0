package list

import (
	"context"
	"errors"
	"testing"

	"github.com/myplanner/backend/domain"
	"github.com/myplanner/backend/repository"
)

type stubListRepo struct {
	createErr error
	updateErr error
	deleteErr error
}

func (r *stubListRepo) GetByID(_ context.Context, _, _ string) (*domain.List, error) {
	return nil, domain.ErrListNotFound
}

func (r *stubListRepo) List(_ context.Context, _ repository.ListFilter) ([]domain.List, int, error) {
	return nil, 0, nil
}

func (r *stubListRepo) Create(_ context.Context, list *domain.List) (*domain.List, error) {
	if r.createErr != nil {
		return nil, r.createErr
	}
	return list, nil
}

func (r *stubListRepo) Update(_ context.Context, _ *domain.List) error { return r.updateErr }

func (r *stubListRepo) Delete(_ context.Context, _, _ string) error { return r.deleteErr }

type recordingBuffer struct {
	operations []string
	err        error
}

func (b *recordingBuffer) BufferList(_ context.Context, operation string, _ *domain.List) error {
	if b.err != nil {
		return b.err
	}
	b.operations = append(b.operations, operation)
	return nil
}

func (b *recordingBuffer) BufferTask(_ context.Context, _ string, _ *domain.Task) error {
	return nil
}

func TestCreateRequiresName(t *testing.T) {
	uc := New(&stubListRepo{}, nil, nil)

	if _, err := uc.Create(context.Background(), &domain.List{OwnerID: "u1", Name: "  "}); !domain.IsDomainError(err, domain.ErrCodeInvalid) {
		t.Fatalf("expected invalid error, got %v", err)
	}
}

func TestCreateTrimsName(t *testing.T) {
	uc := New(&stubListRepo{}, nil, nil)

	created, err := uc.Create(context.Background(), &domain.List{OwnerID: "u1", Name: " Shopping "})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.Name != "Shopping" {
		t.Fatalf("expected trimmed name, got %q", created.Name)
	}
}

func TestCreateBuffersOnStorageFailure(t *testing.T) {
	buf := &recordingBuffer{}
	uc := New(&stubListRepo{createErr: errors.New("connection refused")}, buf, nil)

	created, err := uc.Create(context.Background(), &domain.List{ID: "l1", OwnerID: "u1", Name: "Daily"})
	if err != nil {
		t.Fatalf("buffered create should not surface the error: %v", err)
	}
	if created == nil || created.ID != "l1" {
		t.Fatalf("expected the input list back, got %+v", created)
	}
	if len(buf.operations) != 1 || buf.operations[0] != "create" {
		t.Fatalf("expected a buffered create, got %v", buf.operations)
	}
}

func TestCreateFailsWhenBufferFails(t *testing.T) {
	buf := &recordingBuffer{err: errors.New("buffer full")}
	uc := New(&stubListRepo{createErr: errors.New("connection refused")}, buf, nil)

	if _, err := uc.Create(context.Background(), &domain.List{OwnerID: "u1", Name: "Daily"}); err == nil {
		t.Fatal("expected the storage error to surface when buffering fails")
	}
}

func TestUpdateMissingListNotBuffered(t *testing.T) {
	buf := &recordingBuffer{}
	uc := New(&stubListRepo{updateErr: domain.ErrListNotFound}, buf, nil)

	if _, err := uc.Update(context.Background(), &domain.List{ID: "l1", OwnerID: "u1", Name: "Daily"}); !domain.IsDomainError(err, domain.ErrCodeNotFound) {
		t.Fatalf("expected not-found, got %v", err)
	}
	if len(buf.operations) != 0 {
		t.Fatalf("not-found must not be buffered, got %v", buf.operations)
	}
}

func TestDeleteBuffersOnStorageFailure(t *testing.T) {
	buf := &recordingBuffer{}
	uc := New(&stubListRepo{deleteErr: errors.New("connection refused")}, buf, nil)

	if err := uc.Delete(context.Background(), "u1", "l1"); err != nil {
		t.Fatalf("buffered delete should not surface the error: %v", err)
	}
	if len(buf.operations) != 1 || buf.operations[0] != "delete" {
		t.Fatalf("expected a buffered delete, got %v", buf.operations)
	}
}
