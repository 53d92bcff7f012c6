package model

import (
	"time"

	"github.com/amirhossein-jamali/txfixture/internal/domain/entity"
	errs "github.com/amirhossein-jamali/txfixture/internal/domain/error"
)

// HookEvent is the database model of one hook invocation
type HookEvent struct {
	ID         uint64    `gorm:"primaryKey;autoIncrement"`
	UnitID     string    `gorm:"not null;size:36;index:idx_hook_events_unit_sequence,priority:1"`
	Operation  string    `gorm:"not null;size:255"`
	Phase      string    `gorm:"not null;size:20"`
	Sequence   int       `gorm:"not null;index:idx_hook_events_unit_sequence,priority:2"`
	RecordedAt time.Time `gorm:"not null"`
}

// TableName specifies the table name for HookEvent
func (HookEvent) TableName() string {
	return "hook_events"
}

// ToEntity converts the model to a domain entity
func (m *HookEvent) ToEntity() *entity.HookEvent {
	return &entity.HookEvent{
		ID:         m.ID,
		UnitID:     m.UnitID,
		Operation:  m.Operation,
		Phase:      errs.HookPhase(m.Phase),
		Sequence:   m.Sequence,
		RecordedAt: m.RecordedAt,
	}
}

// FromHookEventEntity converts a domain entity to the model
func FromHookEventEntity(e *entity.HookEvent) *HookEvent {
	return &HookEvent{
		ID:         e.ID,
		UnitID:     e.UnitID,
		Operation:  e.Operation,
		Phase:      string(e.Phase),
		Sequence:   e.Sequence,
		RecordedAt: e.RecordedAt,
	}
}
