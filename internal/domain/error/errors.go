package error

import (
	"errors"
	"fmt"
)

// Error codes for structured logging
const (
	// 1xxx - Tolerated transaction state conditions
	CodeResourceClosed      = 1001
	CodeInvalidRequestState = 1002

	// 4xxx - Caller errors
	CodeUnitOfWorkClosed    = 4001
	CodeHookFailure         = 4002
	CodeConstraintViolation = 4005

	// 5xxx - Infrastructure errors
	CodeAmbientCommit      = 5001
	CodeDatabaseConnection = 5002
	CodeInternal           = 5000
)

// Base error types
var (
	// ErrResourceClosed is returned when a transaction or savepoint has already
	// been committed, rolled back or released
	ErrResourceClosed = errors.New("transaction resource already closed")

	// ErrInvalidRequestState is returned when the session cannot serve the request
	// in its current transactional state
	ErrInvalidRequestState = errors.New("invalid request for current transaction state")

	// ErrUnitOfWorkClosed is returned when a unit of work is used after it was committed or rolled back
	ErrUnitOfWorkClosed = errors.New("unit of work already committed or rolled back")

	// ErrHookFailure is matched by every error raised from an operation hook
	ErrHookFailure = errors.New("operation hook failed")

	// ErrAmbientCommit is returned when the ambient session fails to commit
	ErrAmbientCommit = errors.New("ambient session commit failed")

	// ErrDatabaseConnection is returned when there's a problem connecting to the database
	ErrDatabaseConnection = errors.New("database connection error")

	// ErrConstraintViolation is returned when a database constraint is violated
	ErrConstraintViolation = errors.New("database constraint violation")

	// ErrInternal is returned for unexpected failures
	ErrInternal = errors.New("internal error")
)

// ErrorCode returns standardized error codes for known errors
func ErrorCode(err error) int {
	switch {
	case errors.Is(err, ErrResourceClosed):
		return CodeResourceClosed
	case errors.Is(err, ErrInvalidRequestState):
		return CodeInvalidRequestState
	case errors.Is(err, ErrUnitOfWorkClosed):
		return CodeUnitOfWorkClosed
	case errors.Is(err, ErrHookFailure):
		return CodeHookFailure
	case errors.Is(err, ErrConstraintViolation):
		return CodeConstraintViolation
	case errors.Is(err, ErrAmbientCommit):
		return CodeAmbientCommit
	case errors.Is(err, ErrDatabaseConnection):
		return CodeDatabaseConnection
	default:
		return CodeInternal
	}
}

// IsTransactionAlreadyClosed reports whether err is one of the two resource
// state conditions a nested unit of work tolerates
func IsTransactionAlreadyClosed(err error) bool {
	return errors.Is(err, ErrResourceClosed) || errors.Is(err, ErrInvalidRequestState)
}

// HookPhase names a lifecycle point of a unit of work
type HookPhase string

const (
	PhaseCommit       HookPhase = "commit"
	PhasePostCommit   HookPhase = "post_commit"
	PhaseRollback     HookPhase = "rollback"
	PhasePostRollback HookPhase = "post_rollback"
)

// HookError wraps an error returned by an operation hook
type HookError struct {
	Operation string
	Phase     HookPhase
	Index     int
	Err       error
}

// Error implements the error interface for HookError
func (e *HookError) Error() string {
	return fmt.Sprintf("operation %s (#%d) failed in %s hook: %v", e.Operation, e.Index, e.Phase, e.Err)
}

// Unwrap returns the underlying error
func (e *HookError) Unwrap() error {
	return e.Err
}

// Is checks if the target error is an ErrHookFailure
func (e *HookError) Is(target error) bool {
	return target == ErrHookFailure
}

// LogFields returns a map of fields for structured logging
func (e *HookError) LogFields() map[string]any {
	return map[string]any{
		"error_type": "hook_failure",
		"operation":  e.Operation,
		"phase":      string(e.Phase),
		"index":      e.Index,
		"error":      e.Err.Error(),
		"error_code": CodeHookFailure,
	}
}

// NewHookError creates a new hook error
func NewHookError(operation string, phase HookPhase, index int, err error) error {
	return &HookError{
		Operation: operation,
		Phase:     phase,
		Index:     index,
		Err:       err,
	}
}

// SessionError carries the raw driver error behind a mapped session condition
type SessionError struct {
	Action string
	Kind   error
	Cause  error
}

// Error implements the error interface for SessionError
func (e *SessionError) Error() string {
	return fmt.Sprintf("%s: %v: %v", e.Action, e.Kind, e.Cause)
}

// Unwrap exposes both the mapped sentinel and the driver error
func (e *SessionError) Unwrap() []error {
	return []error{e.Kind, e.Cause}
}

// LogFields returns a map of fields for structured logging
func (e *SessionError) LogFields() map[string]any {
	return map[string]any{
		"error_type": "session_error",
		"action":     e.Action,
		"kind":       e.Kind.Error(),
		"error":      e.Cause.Error(),
		"error_code": ErrorCode(e.Kind),
	}
}

// NewSessionError creates a session error of the given kind
func NewSessionError(action string, kind, cause error) error {
	return &SessionError{
		Action: action,
		Kind:   kind,
		Cause:  cause,
	}
}

// IsHookError checks if the error was raised by an operation hook
func IsHookError(err error) bool {
	return errors.Is(err, ErrHookFailure)
}
