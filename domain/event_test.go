package domain

import (
	"testing"
	"time"
)

func TestEventValidate(t *testing.T) {
	now := time.Now()

	event := &Event{TaskID: "t1", StartTime: now, EndTime: now.Add(time.Hour)}
	if err := event.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestEventValidateZeroLengthWindow(t *testing.T) {
	now := time.Now()

	event := &Event{TaskID: "t1", StartTime: now, EndTime: now}
	if err := event.Validate(); err != nil {
		t.Fatalf("equal start and end should be valid, got %v", err)
	}
}

func TestEventValidateEndBeforeStart(t *testing.T) {
	now := time.Now()

	event := &Event{TaskID: "t1", StartTime: now, EndTime: now.Add(-time.Minute)}
	err := event.Validate()
	if !IsDomainError(err, ErrCodeInvalid) {
		t.Fatalf("expected invalid error, got %v", err)
	}
}

func TestEventValidateMissingTimes(t *testing.T) {
	event := &Event{TaskID: "t1", StartTime: time.Now()}
	if err := event.Validate(); !IsDomainError(err, ErrCodeInvalid) {
		t.Fatalf("expected invalid error for missing end time, got %v", err)
	}

	event = &Event{TaskID: "t1", EndTime: time.Now()}
	if err := event.Validate(); !IsDomainError(err, ErrCodeInvalid) {
		t.Fatalf("expected invalid error for missing start time, got %v", err)
	}
}

func TestEventValidateNil(t *testing.T) {
	var event *Event
	if err := event.Validate(); !IsDomainError(err, ErrCodeInvalid) {
		t.Fatalf("expected invalid error for nil event, got %v", err)
	}
}
