package buffer

import (
	"encoding/json"
	"path/filepath"
	"testing"
	"time"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "buffer.db"), "buffer")
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func item(id string, priority int) Item {
	return Item{
		ID:        id,
		UserID:    "u1",
		Entity:    EntityTask,
		Operation: OperationCreate,
		Data:      json.RawMessage(`{"id":"` + id + `"}`),
		Priority:  priority,
	}
}

func TestEnqueueAndSize(t *testing.T) {
	store := newTestStore(t)

	if err := store.Enqueue(item("a", 1)); err != nil {
		t.Fatalf("enqueue: %v", err)
	}
	if err := store.Enqueue(item("b", 2)); err != nil {
		t.Fatalf("enqueue: %v", err)
	}

	size, err := store.Size()
	if err != nil {
		t.Fatalf("size: %v", err)
	}
	if size != 2 {
		t.Fatalf("expected 2 items, got %d", size)
	}
}

func TestGetBatchOrdersByPriority(t *testing.T) {
	store := newTestStore(t)

	if err := store.Enqueue(item("low", 5)); err != nil {
		t.Fatalf("enqueue: %v", err)
	}
	if err := store.Enqueue(item("high", 1)); err != nil {
		t.Fatalf("enqueue: %v", err)
	}

	items, err := store.GetBatch(10)
	if err != nil {
		t.Fatalf("get batch: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(items))
	}
	if items[0].ID != "high" {
		t.Fatalf("expected priority 1 item first, got %s", items[0].ID)
	}
}

func TestRemove(t *testing.T) {
	store := newTestStore(t)

	if err := store.Enqueue(item("a", 1)); err != nil {
		t.Fatalf("enqueue: %v", err)
	}
	items, err := store.GetBatch(1)
	if err != nil {
		t.Fatalf("get batch: %v", err)
	}
	if err := store.Remove(items[0]); err != nil {
		t.Fatalf("remove: %v", err)
	}

	size, _ := store.Size()
	if size != 0 {
		t.Fatalf("expected empty store, got %d items", size)
	}
}

func TestRemoveByIDWithoutKey(t *testing.T) {
	store := newTestStore(t)

	if err := store.Enqueue(item("a", 1)); err != nil {
		t.Fatalf("enqueue: %v", err)
	}
	if err := store.Remove(item("a", 1)); err != nil {
		t.Fatalf("remove by id: %v", err)
	}

	size, _ := store.Size()
	if size != 0 {
		t.Fatalf("expected empty store, got %d items", size)
	}
}

func TestRequeueKeepsItem(t *testing.T) {
	store := newTestStore(t)

	if err := store.Enqueue(item("a", 1)); err != nil {
		t.Fatalf("enqueue: %v", err)
	}
	items, _ := store.GetBatch(1)
	if err := store.Remove(items[0]); err != nil {
		t.Fatalf("remove: %v", err)
	}

	items[0].Retries++
	if err := store.Requeue(items[0]); err != nil {
		t.Fatalf("requeue: %v", err)
	}

	items, err := store.GetBatch(1)
	if err != nil {
		t.Fatalf("get batch: %v", err)
	}
	if len(items) != 1 || items[0].Retries != 1 {
		t.Fatalf("expected requeued item with retry count, got %+v", items)
	}
}

func TestCleanup(t *testing.T) {
	store := newTestStore(t)

	old := item("old", 1)
	old.Timestamp = time.Now().Add(-48 * time.Hour)
	if err := store.Enqueue(old); err != nil {
		t.Fatalf("enqueue: %v", err)
	}
	if err := store.Enqueue(item("fresh", 1)); err != nil {
		t.Fatalf("enqueue: %v", err)
	}

	if err := store.Cleanup(time.Now().Add(-24 * time.Hour)); err != nil {
		t.Fatalf("cleanup: %v", err)
	}

	items, _ := store.GetBatch(10)
	if len(items) != 1 || items[0].ID != "fresh" {
		t.Fatalf("expected only the fresh item to survive, got %+v", items)
	}
}
