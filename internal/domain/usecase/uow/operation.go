package uow

import (
	"context"
	"fmt"

	"github.com/amirhossein-jamali/txfixture/internal/domain/port/persistence"
)

// Named is implemented by operations that want a stable name in logs and hook errors
type Named interface {
	Name() string
}

// OperationName returns op's Name when it has one and its dynamic type otherwise
func OperationName(op persistence.Operation) string {
	if n, ok := op.(Named); ok && n.Name() != "" {
		return n.Name()
	}
	return fmt.Sprintf("%T", op)
}

// HookFunc is the signature shared by every lifecycle hook
type HookFunc func(ctx context.Context, uow persistence.TransactionCoordinator) error

// OperationFuncs adapts plain functions to persistence.Operation.
// Nil hooks are no-ops.
type OperationFuncs struct {
	Label        string
	Commit       HookFunc
	PostCommit   HookFunc
	Rollback     HookFunc
	PostRollback HookFunc
}

var _ persistence.Operation = OperationFuncs{}

func (o OperationFuncs) Name() string {
	return o.Label
}

func (o OperationFuncs) OnCommit(ctx context.Context, uow persistence.TransactionCoordinator) error {
	return call(o.Commit, ctx, uow)
}

func (o OperationFuncs) OnPostCommit(ctx context.Context, uow persistence.TransactionCoordinator) error {
	return call(o.PostCommit, ctx, uow)
}

func (o OperationFuncs) OnRollback(ctx context.Context, uow persistence.TransactionCoordinator) error {
	return call(o.Rollback, ctx, uow)
}

func (o OperationFuncs) OnPostRollback(ctx context.Context, uow persistence.TransactionCoordinator) error {
	return call(o.PostRollback, ctx, uow)
}

func call(fn HookFunc, ctx context.Context, uow persistence.TransactionCoordinator) error {
	if fn == nil {
		return nil
	}
	return fn(ctx, uow)
}
