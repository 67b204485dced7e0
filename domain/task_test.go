package domain

import "testing"

func TestValidPriority(t *testing.T) {
	for p := PriorityHighest; p <= PriorityLowest; p++ {
		if !ValidPriority(p) {
			t.Fatalf("priority %d should be valid", p)
		}
	}
	for _, p := range []int{0, -1, 5, 100} {
		if ValidPriority(p) {
			t.Fatalf("priority %d should be invalid", p)
		}
	}
}

func TestTaskIsCompleted(t *testing.T) {
	var task *Task
	if task.IsCompleted() {
		t.Fatal("nil task should not report completed")
	}

	task = &Task{Completed: true}
	if !task.IsCompleted() {
		t.Fatal("expected completed task")
	}
}
