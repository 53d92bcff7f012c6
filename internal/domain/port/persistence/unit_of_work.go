package persistence

import (
	"context"
)

// TransactionCoordinator groups registered operations into one commit/rollback
// boundary. Production and test strategies both implement it so that neither
// has to extend the other.
type TransactionCoordinator interface {
	// ID identifies the boundary in logs and recorded events
	ID() string

	// Enter acquires the boundary and returns the coordinator to compose against
	Enter(ctx context.Context) (TransactionCoordinator, error)

	// Commit makes the boundary's work durable and notifies operations
	Commit(ctx context.Context) error

	// Rollback reverts the boundary's work and notifies operations
	Rollback(ctx context.Context) error

	// Exit releases the boundary, committing when cause is nil and rolling back otherwise.
	// The returned error always carries cause when cause is non-nil.
	Exit(ctx context.Context, cause error) error

	// Register appends an operation; hooks run in registration order
	Register(op Operation)

	// Session returns the ambient session the coordinator works against
	Session() Session

	// Dirty reports whether a commit has changed persisted state
	Dirty() bool
}

// Operation is deferred work bound to a coordinator's lifecycle.
// The coordinator passed to each hook is the one running the event.
type Operation interface {
	OnCommit(ctx context.Context, uow TransactionCoordinator) error
	OnPostCommit(ctx context.Context, uow TransactionCoordinator) error
	OnRollback(ctx context.Context, uow TransactionCoordinator) error
	OnPostRollback(ctx context.Context, uow TransactionCoordinator) error
}
