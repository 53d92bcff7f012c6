package entity

import (
	"errors"
	"time"

	errs "github.com/amirhossein-jamali/txfixture/internal/domain/error"
	tport "github.com/amirhossein-jamali/txfixture/internal/domain/port/core"
)

var (
	// ErrEmptyUnitID is returned when a hook event has no unit of work identifier
	ErrEmptyUnitID = errors.New("unit ID cannot be empty")

	// ErrEmptyOperation is returned when a hook event has no operation name
	ErrEmptyOperation = errors.New("operation name cannot be empty")

	// ErrUnknownPhase is returned for a phase outside the four lifecycle hooks
	ErrUnknownPhase = errors.New("unknown hook phase")
)

// HookEvent records one invocation of an operation hook
type HookEvent struct {
	ID         uint64         // Storage identifier
	UnitID     string         // Unit of work the hook ran for
	Operation  string         // Name of the registered operation
	Phase      errs.HookPhase // Lifecycle point
	Sequence   int            // Position of the invocation within the unit
	RecordedAt time.Time      // When the hook ran
}

// NewHookEvent creates a hook event with basic validation
func NewHookEvent(
	unitID string,
	operation string,
	phase errs.HookPhase,
	sequence int,
	timeProvider tport.TimeProvider,
) (*HookEvent, error) {
	if unitID == "" {
		return nil, ErrEmptyUnitID
	}
	if operation == "" {
		return nil, ErrEmptyOperation
	}
	if !IsValidPhase(phase) {
		return nil, ErrUnknownPhase
	}

	return &HookEvent{
		UnitID:     unitID,
		Operation:  operation,
		Phase:      phase,
		Sequence:   sequence,
		RecordedAt: timeProvider.Now(),
	}, nil
}

// IsValidPhase checks the phase against the four lifecycle hooks
func IsValidPhase(phase errs.HookPhase) bool {
	switch phase {
	case errs.PhaseCommit, errs.PhasePostCommit, errs.PhaseRollback, errs.PhasePostRollback:
		return true
	default:
		return false
	}
}

// Label returns "<operation>.<phase>", the form used when comparing orderings
func (e *HookEvent) Label() string {
	return e.Operation + "." + string(e.Phase)
}
