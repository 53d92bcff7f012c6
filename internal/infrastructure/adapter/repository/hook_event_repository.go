package repository

import (
	"context"
	"fmt"

	"github.com/amirhossein-jamali/txfixture/internal/domain/entity"
	errs "github.com/amirhossein-jamali/txfixture/internal/domain/error"
	coreport "github.com/amirhossein-jamali/txfixture/internal/domain/port/core"
	"github.com/amirhossein-jamali/txfixture/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/txfixture/internal/infrastructure/adapter/database"
	"github.com/amirhossein-jamali/txfixture/internal/infrastructure/adapter/model"
)

// HookEventRepository implements persistence.HookEventRepository using GORM.
// The handle is resolved from the provider on every call, so a repository
// built over a session always writes through its current transaction and
// shares the fate of the surrounding savepoints.
type HookEventRepository struct {
	db          database.DBProvider
	logger      coreport.Logger
	errorMapper *database.ErrorMapper
}

var _ persistence.HookEventRepository = (*HookEventRepository)(nil)

// NewHookEventRepository creates a new HookEventRepository instance
func NewHookEventRepository(db database.DBProvider, logger coreport.Logger) *HookEventRepository {
	return &HookEventRepository{
		db:          db,
		logger:      logger,
		errorMapper: database.NewErrorMapper(),
	}
}

// Record inserts the event and sets its ID
func (r *HookEventRepository) Record(ctx context.Context, event *entity.HookEvent) error {
	row := model.FromHookEventEntity(event)
	if err := r.db.DB(ctx).Create(row).Error; err != nil {
		return r.handleDatabaseError("recording hook event", err, event.UnitID)
	}

	event.ID = row.ID
	return nil
}

// ListByUnit returns the unit's events ordered by sequence
func (r *HookEventRepository) ListByUnit(ctx context.Context, unitID string) ([]*entity.HookEvent, error) {
	var rows []model.HookEvent
	err := r.db.DB(ctx).
		Where("unit_id = ?", unitID).
		Order("sequence ASC").
		Find(&rows).Error
	if err != nil {
		return nil, r.handleDatabaseError("listing hook events", err, unitID)
	}

	events := make([]*entity.HookEvent, 0, len(rows))
	for i := range rows {
		events = append(events, rows[i].ToEntity())
	}
	return events, nil
}

// DeleteByUnit removes every event of the unit
func (r *HookEventRepository) DeleteByUnit(ctx context.Context, unitID string) error {
	err := r.db.DB(ctx).
		Where("unit_id = ?", unitID).
		Delete(&model.HookEvent{}).Error
	if err != nil {
		return r.handleDatabaseError("deleting hook events", err, unitID)
	}
	return nil
}

// handleDatabaseError standardizes database error handling
func (r *HookEventRepository) handleDatabaseError(operation string, err error, unitID string) error {
	r.logger.Error(fmt.Sprintf("Database error when %s", operation), map[string]any{
		"unit_id": unitID,
		"error":   err.Error(),
	})

	kind := r.errorMapper.Classify(err)
	if kind == nil {
		kind = errs.ErrInternal
	}
	return fmt.Errorf("%w: %s: %w", kind, operation, err)
}
