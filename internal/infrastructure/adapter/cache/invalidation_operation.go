package cache

import (
	"context"
	"sync"

	"github.com/redis/go-redis/v9"

	coreport "github.com/amirhossein-jamali/txfixture/internal/domain/port/core"
	"github.com/amirhossein-jamali/txfixture/internal/domain/port/persistence"
)

// InvalidationOperation deletes cached keys once the surrounding unit of work
// has committed. Keys queued during a unit that rolls back are dropped.
type InvalidationOperation struct {
	client  redis.Cmdable
	prefix  string
	logger  coreport.Logger
	mu      sync.Mutex
	pending []string
}

var _ persistence.Operation = (*InvalidationOperation)(nil)

// NewInvalidationOperation creates an operation that deletes prefix+key for every queued key
func NewInvalidationOperation(client redis.Cmdable, prefix string, logger coreport.Logger) *InvalidationOperation {
	return &InvalidationOperation{
		client: client,
		prefix: prefix,
		logger: logger,
	}
}

// Name identifies the operation in hook errors
func (o *InvalidationOperation) Name() string {
	return "cache_invalidation"
}

// Invalidate queues keys for deletion after commit
func (o *InvalidationOperation) Invalidate(keys ...string) {
	o.mu.Lock()
	defer o.mu.Unlock()

	for _, key := range keys {
		o.pending = append(o.pending, o.prefix+key)
	}
}

// Pending returns the fully prefixed keys still waiting for a commit
func (o *InvalidationOperation) Pending() []string {
	o.mu.Lock()
	defer o.mu.Unlock()

	return append([]string(nil), o.pending...)
}

func (o *InvalidationOperation) OnCommit(ctx context.Context, uow persistence.TransactionCoordinator) error {
	return nil
}

// OnPostCommit deletes the queued keys in one round trip
func (o *InvalidationOperation) OnPostCommit(ctx context.Context, uow persistence.TransactionCoordinator) error {
	keys := o.drain()
	if len(keys) == 0 {
		return nil
	}

	deleted, err := o.client.Del(ctx, keys...).Result()
	if err != nil {
		o.logger.Error("Cache invalidation failed", map[string]any{
			"unit_id": uow.ID(),
			"keys":    len(keys),
			"error":   err.Error(),
		})
		return err
	}

	o.logger.Debug("Cache keys invalidated", map[string]any{
		"unit_id": uow.ID(),
		"keys":    len(keys),
		"deleted": deleted,
	})
	return nil
}

// OnRollback drops the queued keys; the cached values are still correct
func (o *InvalidationOperation) OnRollback(ctx context.Context, uow persistence.TransactionCoordinator) error {
	if dropped := o.drain(); len(dropped) > 0 {
		o.logger.Debug("Cache invalidation discarded", map[string]any{
			"unit_id": uow.ID(),
			"keys":    len(dropped),
		})
	}
	return nil
}

func (o *InvalidationOperation) OnPostRollback(ctx context.Context, uow persistence.TransactionCoordinator) error {
	return nil
}

func (o *InvalidationOperation) drain() []string {
	o.mu.Lock()
	defer o.mu.Unlock()

	keys := o.pending
	o.pending = nil
	return keys
}

// NewClient creates a redis client for addr
func NewClient(addr string) *redis.Client {
	return redis.NewClient(&redis.Options{Addr: addr})
}
