package persistence

import (
	"context"
)

// Session is the ambient, externally owned transactional context.
//
// Implementations report a finished or unusable transaction by returning an
// error matching error.ErrResourceClosed or error.ErrInvalidRequestState;
// every other failure is returned as is.
type Session interface {
	// BeginNested opens a savepoint inside the ambient transaction
	BeginNested(ctx context.Context) (NestedTransaction, error)

	// Commit commits the ambient session
	Commit(ctx context.Context) error
}

// NestedTransaction is a savepoint owned by whoever began it
type NestedTransaction interface {
	// Name returns the savepoint identifier
	Name() string

	// Commit releases the savepoint, keeping its work in the ambient transaction
	Commit(ctx context.Context) error

	// Rollback reverts the ambient transaction to the savepoint
	Rollback(ctx context.Context) error
}
