package domain

import (
	"errors"
	"fmt"
	"testing"
)

func TestIsDomainError(t *testing.T) {
	if !IsDomainError(ErrTaskNotFound, ErrCodeNotFound) {
		t.Fatal("expected not-found classification")
	}
	if IsDomainError(ErrTaskNotFound, ErrCodeInvalid) {
		t.Fatal("mismatched code should not match")
	}
	if IsDomainError(errors.New("plain"), ErrCodeInternal) {
		t.Fatal("plain errors carry no domain code")
	}
}

func TestIsDomainErrorWrapped(t *testing.T) {
	wrapped := fmt.Errorf("handler: %w", ErrEventExists)
	if !IsDomainError(wrapped, ErrCodeConflict) {
		t.Fatal("expected conflict to survive wrapping")
	}
}

func TestWrapErrorUnwrap(t *testing.T) {
	cause := errors.New("connection refused")
	err := WrapError(ErrCodeInternal, "query failed", cause)
	if !errors.Is(err, cause) {
		t.Fatal("expected wrapped cause to be reachable")
	}
	if err.Error() != "query failed: connection refused" {
		t.Fatalf("unexpected message: %s", err.Error())
	}
}
