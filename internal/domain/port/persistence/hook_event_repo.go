package persistence

import (
	"context"

	"github.com/amirhossein-jamali/txfixture/internal/domain/entity"
)

// HookEventRepository defines operations for recorded operation hook invocations
type HookEventRepository interface {
	// Record persists a single hook invocation
	Record(ctx context.Context, event *entity.HookEvent) error

	// ListByUnit returns the events of one unit of work in invocation order
	ListByUnit(ctx context.Context, unitID string) ([]*entity.HookEvent, error)

	// DeleteByUnit removes the events of one unit of work
	DeleteByUnit(ctx context.Context, unitID string) error
}
