package uow

import (
	"context"
	"sync"

	"github.com/amirhossein-jamali/txfixture/internal/domain/entity"
	errs "github.com/amirhossein-jamali/txfixture/internal/domain/error"
	coreport "github.com/amirhossein-jamali/txfixture/internal/domain/port/core"
	"github.com/amirhossein-jamali/txfixture/internal/domain/port/persistence"
)

// Sequencer hands out per-unit invocation numbers shared by every
// RecordingOperation registered on the same unit
type Sequencer struct {
	mu   sync.Mutex
	next map[string]int
}

// NewSequencer creates an empty sequencer
func NewSequencer() *Sequencer {
	return &Sequencer{next: make(map[string]int)}
}

// Next returns the next sequence number for unitID, starting at 0
func (s *Sequencer) Next(unitID string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := s.next[unitID]
	s.next[unitID] = n + 1
	return n
}

// RecordingOperation persists one HookEvent per hook invocation. Tests use it
// to assert hook ordering against a real database.
type RecordingOperation struct {
	name         string
	repo         persistence.HookEventRepository
	sequencer    *Sequencer
	timeProvider coreport.TimeProvider
}

var _ persistence.Operation = (*RecordingOperation)(nil)

// NewRecordingOperation creates a recording operation; operations registered
// on the same unit should share one sequencer
func NewRecordingOperation(
	name string,
	repo persistence.HookEventRepository,
	sequencer *Sequencer,
	timeProvider coreport.TimeProvider,
) *RecordingOperation {
	return &RecordingOperation{
		name:         name,
		repo:         repo,
		sequencer:    sequencer,
		timeProvider: timeProvider,
	}
}

func (o *RecordingOperation) Name() string {
	return o.name
}

func (o *RecordingOperation) OnCommit(ctx context.Context, uow persistence.TransactionCoordinator) error {
	return o.record(ctx, uow, errs.PhaseCommit)
}

func (o *RecordingOperation) OnPostCommit(ctx context.Context, uow persistence.TransactionCoordinator) error {
	return o.record(ctx, uow, errs.PhasePostCommit)
}

func (o *RecordingOperation) OnRollback(ctx context.Context, uow persistence.TransactionCoordinator) error {
	return o.record(ctx, uow, errs.PhaseRollback)
}

func (o *RecordingOperation) OnPostRollback(ctx context.Context, uow persistence.TransactionCoordinator) error {
	return o.record(ctx, uow, errs.PhasePostRollback)
}

func (o *RecordingOperation) record(ctx context.Context, uow persistence.TransactionCoordinator, phase errs.HookPhase) error {
	event, err := entity.NewHookEvent(uow.ID(), o.name, phase, o.sequencer.Next(uow.ID()), o.timeProvider)
	if err != nil {
		return err
	}
	return o.repo.Record(ctx, event)
}
