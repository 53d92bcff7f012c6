package uow

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	errs "github.com/amirhossein-jamali/txfixture/internal/domain/error"
	coreport "github.com/amirhossein-jamali/txfixture/internal/domain/port/core"
	"github.com/amirhossein-jamali/txfixture/internal/domain/port/persistence"
)

// Status is the lifecycle state of a NestedUnitOfWork
type Status int

const (
	// StatusUnopened means Enter has not begun a savepoint yet
	StatusUnopened Status = iota
	// StatusOpen means the unit owns a private savepoint
	StatusOpen
	// StatusShared means the session refused a savepoint and the unit runs on the ambient transaction
	StatusShared
	// StatusCommitted is terminal
	StatusCommitted
	// StatusRolledBack is terminal
	StatusRolledBack
)

func (s Status) String() string {
	switch s {
	case StatusUnopened:
		return "unopened"
	case StatusOpen:
		return "open"
	case StatusShared:
		return "shared"
	case StatusCommitted:
		return "committed"
	case StatusRolledBack:
		return "rolled_back"
	default:
		return fmt.Sprintf("status(%d)", int(s))
	}
}

// Terminal reports whether no further commit or rollback is accepted
func (s Status) Terminal() bool {
	return s == StatusCommitted || s == StatusRolledBack
}

// NestedUnitOfWork runs its work inside a savepoint of an ambient session that
// something else keeps open, typically a per-test outer transaction.
//
// Rolling back only reverts the savepoint. Committing releases the savepoint
// and commits the session. Savepoint conditions that mean "already closed"
// are tolerated everywhere, so a unit layered over a session whose
// transaction was advanced by someone else still notifies its operations.
//
// A NestedUnitOfWork is not safe for concurrent use.
type NestedUnitOfWork struct {
	id         string
	session    persistence.Session
	logger     coreport.Logger
	nested     persistence.NestedTransaction
	status     Status
	operations []persistence.Operation
	dirty      bool
}

var _ persistence.TransactionCoordinator = (*NestedUnitOfWork)(nil)

// NewNestedUnitOfWork creates a unit bound to the given ambient session
func NewNestedUnitOfWork(session persistence.Session, logger coreport.Logger, ops ...persistence.Operation) *NestedUnitOfWork {
	if session == nil {
		panic("Session cannot be nil")
	}
	if logger == nil {
		panic("Logger cannot be nil")
	}

	return &NestedUnitOfWork{
		id:         uuid.NewString(),
		session:    session,
		logger:     logger,
		operations: append([]persistence.Operation(nil), ops...),
	}
}

// ID identifies the unit in logs and recorded hook events
func (u *NestedUnitOfWork) ID() string {
	return u.id
}

// Status returns the current lifecycle state
func (u *NestedUnitOfWork) Status() Status {
	return u.status
}

// Session returns the ambient session
func (u *NestedUnitOfWork) Session() persistence.Session {
	return u.session
}

// Dirty reports whether Commit completed
func (u *NestedUnitOfWork) Dirty() bool {
	return u.dirty
}

// Register appends an operation to be notified on commit or rollback
func (u *NestedUnitOfWork) Register(op persistence.Operation) {
	u.operations = append(u.operations, op)
}

// Operations returns the registered operations in registration order
func (u *NestedUnitOfWork) Operations() []persistence.Operation {
	return append([]persistence.Operation(nil), u.operations...)
}

// Enter begins the unit's savepoint unless one was already attempted.
// A session that reports its transaction as closed or in an invalid state
// leaves the unit in the shared state without error.
func (u *NestedUnitOfWork) Enter(ctx context.Context) (persistence.TransactionCoordinator, error) {
	switch u.status {
	case StatusOpen, StatusShared:
		return u, nil
	case StatusCommitted, StatusRolledBack:
		return nil, errs.ErrUnitOfWorkClosed
	}

	nested, err := u.session.BeginNested(ctx)
	if err != nil {
		if !errs.IsTransactionAlreadyClosed(err) {
			return nil, err
		}
		u.logger.Warn("Savepoint not available, sharing ambient transaction", map[string]any{
			"unit_id": u.id,
			"error":   err.Error(),
		})
		u.status = StatusShared
		return u, nil
	}

	u.nested = nested
	u.status = StatusOpen
	u.logger.Debug("Savepoint opened", map[string]any{
		"unit_id":   u.id,
		"savepoint": nested.Name(),
	})
	return u, nil
}

// Rollback reverts the unit's savepoint and runs the rollback hooks.
// The ambient transaction is left as it is.
func (u *NestedUnitOfWork) Rollback(ctx context.Context) error {
	if u.status.Terminal() {
		return errs.ErrUnitOfWorkClosed
	}

	if u.nested != nil {
		if err := u.nested.Rollback(ctx); err != nil {
			if !errs.IsTransactionAlreadyClosed(err) {
				return err
			}
			u.logger.Warn("Savepoint already closed, skipping nested rollback", map[string]any{
				"unit_id":   u.id,
				"savepoint": u.nested.Name(),
				"error":     err.Error(),
			})
		}
	}
	u.status = StatusRolledBack

	if err := u.runHooks(ctx, errs.PhaseRollback); err != nil {
		return err
	}
	return u.runHooks(ctx, errs.PhasePostRollback)
}

// Commit releases the unit's savepoint, commits the ambient session, runs the
// commit hooks and marks the unit dirty.
func (u *NestedUnitOfWork) Commit(ctx context.Context) error {
	if u.status.Terminal() {
		return errs.ErrUnitOfWorkClosed
	}

	if u.nested != nil {
		if err := u.nested.Commit(ctx); err != nil {
			if !errs.IsTransactionAlreadyClosed(err) {
				return err
			}
			u.logger.Warn("Savepoint already closed, skipping nested commit", map[string]any{
				"unit_id":   u.id,
				"savepoint": u.nested.Name(),
				"error":     err.Error(),
			})
		}
	}
	u.status = StatusCommitted

	if err := u.session.Commit(ctx); err != nil {
		u.logger.Error("Ambient session commit failed", map[string]any{
			"unit_id": u.id,
			"error":   err.Error(),
		})
		return err
	}

	if err := u.runHooks(ctx, errs.PhaseCommit); err != nil {
		return err
	}
	if err := u.runHooks(ctx, errs.PhasePostCommit); err != nil {
		return err
	}

	u.dirty = true
	return nil
}

// Exit closes the scope opened by Enter: cause == nil commits, anything else
// rolls back. A non-nil cause is always part of the returned error.
func (u *NestedUnitOfWork) Exit(ctx context.Context, cause error) error {
	if cause == nil {
		return u.Commit(ctx)
	}

	if err := u.Rollback(ctx); err != nil {
		u.logger.Error("Rollback failed while exiting with error", map[string]any{
			"unit_id": u.id,
			"cause":   cause.Error(),
			"error":   err.Error(),
		})
		return errors.Join(cause, err)
	}
	return cause
}

// Do runs fn between Enter and Exit. A panic inside fn rolls the unit back
// before it continues unwinding.
func (u *NestedUnitOfWork) Do(ctx context.Context, fn func(ctx context.Context, uow persistence.TransactionCoordinator) error) error {
	coordinator, err := u.Enter(ctx)
	if err != nil {
		return err
	}

	defer func() {
		if r := recover(); r != nil {
			if rbErr := u.Rollback(ctx); rbErr != nil {
				u.logger.Error("Rollback failed while recovering from panic", map[string]any{
					"unit_id": u.id,
					"error":   rbErr.Error(),
				})
			}
			panic(r)
		}
	}()

	return u.Exit(ctx, fn(ctx, coordinator))
}

// runHooks invokes one hook of every operation in registration order and
// stops at the first failure.
func (u *NestedUnitOfWork) runHooks(ctx context.Context, phase errs.HookPhase) error {
	for i, op := range u.operations {
		var err error
		switch phase {
		case errs.PhaseCommit:
			err = op.OnCommit(ctx, u)
		case errs.PhasePostCommit:
			err = op.OnPostCommit(ctx, u)
		case errs.PhaseRollback:
			err = op.OnRollback(ctx, u)
		case errs.PhasePostRollback:
			err = op.OnPostRollback(ctx, u)
		}
		if err != nil {
			hookErr := errs.NewHookError(OperationName(op), phase, i, err)
			u.logger.Error("Operation hook failed", map[string]any{
				"unit_id":   u.id,
				"operation": OperationName(op),
				"phase":     string(phase),
				"error":     err.Error(),
			})
			return hookErr
		}
	}
	return nil
}
