package error

import (
	"database/sql"
	"errors"
	"fmt"
	"testing"
)

func TestBaseErrorTypes(t *testing.T) {
	if ErrResourceClosed.Error() != "transaction resource already closed" {
		t.Errorf("ErrResourceClosed has unexpected message: %s", ErrResourceClosed.Error())
	}
	if ErrUnitOfWorkClosed.Error() != "unit of work already committed or rolled back" {
		t.Errorf("ErrUnitOfWorkClosed has unexpected message: %s", ErrUnitOfWorkClosed.Error())
	}
}

func TestErrorCode(t *testing.T) {
	testCases := []struct {
		name     string
		err      error
		expected int
	}{
		{"ResourceClosed", ErrResourceClosed, 1001},
		{"InvalidRequestState", ErrInvalidRequestState, 1002},
		{"UnitOfWorkClosed", ErrUnitOfWorkClosed, 4001},
		{"HookFailure", NewHookError("index", PhaseCommit, 0, errors.New("boom")), 4002},
		{"ConstraintViolation", ErrConstraintViolation, 4005},
		{"AmbientCommit", ErrAmbientCommit, 5001},
		{"DatabaseConnection", ErrDatabaseConnection, 5002},
		{"UnknownError", errors.New("unknown error"), 5000},
		{"WrappedError", fmt.Errorf("wrapped: %w", ErrInvalidRequestState), 1002},
		{"SessionError", NewSessionError("release savepoint", ErrResourceClosed, sql.ErrTxDone), 1001},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			code := ErrorCode(tc.err)
			if code != tc.expected {
				t.Errorf("ErrorCode(%v) = %d, want %d", tc.err, code, tc.expected)
			}
		})
	}
}

func TestIsTransactionAlreadyClosed(t *testing.T) {
	testCases := []struct {
		name     string
		err      error
		expected bool
	}{
		{"ResourceClosed", ErrResourceClosed, true},
		{"InvalidRequestState", ErrInvalidRequestState, true},
		{"Wrapped", fmt.Errorf("begin nested: %w", ErrResourceClosed), true},
		{"SessionError", NewSessionError("rollback to savepoint", ErrInvalidRequestState, errors.New("25P02")), true},
		{"Constraint", ErrConstraintViolation, false},
		{"Nil", nil, false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := IsTransactionAlreadyClosed(tc.err); got != tc.expected {
				t.Errorf("IsTransactionAlreadyClosed(%v) = %v, want %v", tc.err, got, tc.expected)
			}
		})
	}
}

func TestHookError(t *testing.T) {
	baseErr := errors.New("index unavailable")
	err := NewHookError("search-index", PhasePostCommit, 2, baseErr)

	expectedErrMsg := "operation search-index (#2) failed in post_commit hook: index unavailable"
	if err.Error() != expectedErrMsg {
		t.Errorf("HookError.Error() = %s, want %s", err.Error(), expectedErrMsg)
	}

	if !errors.Is(err, baseErr) {
		t.Errorf("errors.Is(err, baseErr) = false, want true")
	}
	if !IsHookError(err) {
		t.Errorf("IsHookError(err) = false, want true")
	}

	var hookErr *HookError
	if !errors.As(err, &hookErr) {
		t.Fatalf("errors.As failed: not a *HookError")
	}
	fields := hookErr.LogFields()
	if fields["phase"] != "post_commit" {
		t.Errorf("LogFields()[phase] = %v, want post_commit", fields["phase"])
	}
	if fields["index"] != 2 {
		t.Errorf("LogFields()[index] = %v, want 2", fields["index"])
	}
}

func TestSessionError(t *testing.T) {
	err := NewSessionError("release savepoint", ErrResourceClosed, sql.ErrTxDone)

	if !errors.Is(err, ErrResourceClosed) {
		t.Errorf("errors.Is(err, ErrResourceClosed) = false, want true")
	}
	if !errors.Is(err, sql.ErrTxDone) {
		t.Errorf("errors.Is(err, sql.ErrTxDone) = false, want true")
	}
	if errors.Is(err, ErrInvalidRequestState) {
		t.Errorf("errors.Is(err, ErrInvalidRequestState) = true, want false")
	}
	if IsHookError(err) {
		t.Errorf("IsHookError(err) = true, want false")
	}
}
