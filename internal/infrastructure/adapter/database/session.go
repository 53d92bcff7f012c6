package database

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	domainErr "github.com/amirhossein-jamali/txfixture/internal/domain/error"
	coreport "github.com/amirhossein-jamali/txfixture/internal/domain/port/core"
	"github.com/amirhossein-jamali/txfixture/internal/domain/port/persistence"
)

// DefaultSavepointPrefix is used when no prefix is configured
const DefaultSavepointPrefix = "uow"

// SessionMode decides what committing the ambient session means
type SessionMode int

const (
	// ModeOwning commits the underlying gorm transaction and begins a new one on next use
	ModeOwning SessionMode = iota
	// ModeJoined keeps a harness-owned transaction open and only moves its anchor savepoint forward
	ModeJoined
)

func (m SessionMode) String() string {
	if m == ModeJoined {
		return "joined"
	}
	return "owning"
}

// DBProvider hands out the gorm handle repositories should write through
type DBProvider interface {
	DB(ctx context.Context) *gorm.DB
}

// StaticDB is a DBProvider that always returns the same handle
type StaticDB struct {
	db *gorm.DB
}

// NewStaticDB wraps db as a DBProvider
func NewStaticDB(db *gorm.DB) StaticDB {
	return StaticDB{db: db}
}

// DB returns the wrapped handle bound to ctx
func (s StaticDB) DB(ctx context.Context) *gorm.DB {
	return s.db.WithContext(ctx)
}

// GormSession implements persistence.Session on top of a gorm transaction.
//
// Savepoints are tracked as a stack. Releasing or rolling back to a savepoint
// destroys every savepoint opened after it, so those handles are finished
// without sending SQL. A GormSession is not safe for concurrent use.
type GormSession struct {
	root   *gorm.DB
	tx     *gorm.DB
	mode   SessionMode
	anchor string
	prefix string
	mapper *ErrorMapper
	logger coreport.Logger
	closed bool
	// generation advances whenever the owning transaction ends
	generation int
	open       []*gormSavepoint
}

var (
	_ persistence.Session = (*GormSession)(nil)
	_ DBProvider          = (*GormSession)(nil)
)

// NewSession creates an owning session over db. A transaction is begun on
// first use; Commit commits it and the next use begins a fresh one, so units
// of work can follow one another and commit hooks can still write.
func NewSession(db *gorm.DB, prefix string, logger coreport.Logger) *GormSession {
	return &GormSession{
		root:   db,
		mode:   ModeOwning,
		prefix: normalizePrefix(prefix),
		mapper: NewErrorMapper(),
		logger: logger,
	}
}

// NewJoinedSession wraps a transaction owned by a test harness. It opens an
// anchor savepoint; Commit releases and re-opens the anchor so committed work
// stays visible to the rest of the test while the outer transaction remains
// open for the harness to roll back.
func NewJoinedSession(ctx context.Context, tx *gorm.DB, prefix string, logger coreport.Logger) (*GormSession, error) {
	s := &GormSession{
		root:   tx,
		tx:     tx,
		mode:   ModeJoined,
		prefix: normalizePrefix(prefix),
		mapper: NewErrorMapper(),
		logger: logger,
	}
	s.anchor = s.savepointName()

	if err := s.exec(ctx, s.tx, "SAVEPOINT "+s.anchor); err != nil {
		return nil, s.mapper.MapSessionError(err, "open anchor savepoint")
	}
	return s, nil
}

// Mode returns the commit behaviour of the session
func (s *GormSession) Mode() SessionMode {
	return s.mode
}

// Anchor returns the name of the anchor savepoint of a joined session
func (s *GormSession) Anchor() string {
	return s.anchor
}

// Begin starts the owning transaction now instead of on first use
func (s *GormSession) Begin(ctx context.Context) error {
	_, err := s.current(ctx)
	return err
}

// DB returns the handle of the current transaction for repositories. When no
// transaction can be provided the returned handle carries the error.
func (s *GormSession) DB(ctx context.Context) *gorm.DB {
	tx, err := s.current(ctx)
	if err != nil {
		db := s.root.WithContext(ctx)
		_ = db.AddError(err)
		return db
	}
	return tx.WithContext(ctx)
}

// BeginNested opens a uniquely named savepoint
func (s *GormSession) BeginNested(ctx context.Context) (persistence.NestedTransaction, error) {
	tx, err := s.current(ctx)
	if err != nil {
		return nil, err
	}

	name := s.savepointName()
	if err := s.exec(ctx, tx, "SAVEPOINT "+name); err != nil {
		return nil, s.mapper.MapSessionError(err, "begin nested")
	}

	sp := &gormSavepoint{session: s, name: name, generation: s.generation}
	s.open = append(s.open, sp)

	s.logger.Debug("Savepoint created", map[string]any{
		"savepoint": name,
		"mode":      s.mode.String(),
		"depth":     len(s.open),
	})
	return sp, nil
}

// Commit commits the ambient session according to its mode
func (s *GormSession) Commit(ctx context.Context) error {
	if s.closed {
		return domainErr.NewSessionError("commit", domainErr.ErrResourceClosed, sql.ErrTxDone)
	}
	if s.mode == ModeJoined {
		return s.checkpoint(ctx)
	}

	if s.tx == nil {
		return nil
	}

	err := s.tx.WithContext(ctx).Commit().Error
	s.endTransaction()
	if err != nil {
		return fmt.Errorf("%w: %w", domainErr.ErrAmbientCommit, s.mapper.MapSessionError(err, "commit"))
	}
	s.logger.Debug("Ambient transaction committed", nil)
	return nil
}

// checkpoint moves the anchor forward. Releasing the anchor would destroy the
// savepoints of units still open, so it waits until the outermost one finishes.
func (s *GormSession) checkpoint(ctx context.Context) error {
	if len(s.open) > 0 {
		s.logger.Debug("Ambient checkpoint deferred", map[string]any{
			"anchor":          s.anchor,
			"open_savepoints": len(s.open),
		})
		return nil
	}

	if err := s.exec(ctx, s.tx, "RELEASE SAVEPOINT "+s.anchor); err != nil {
		return fmt.Errorf("%w: %w", domainErr.ErrAmbientCommit, s.mapper.MapSessionError(err, "release anchor savepoint"))
	}
	if err := s.exec(ctx, s.tx, "SAVEPOINT "+s.anchor); err != nil {
		return fmt.Errorf("%w: %w", domainErr.ErrAmbientCommit, s.mapper.MapSessionError(err, "reopen anchor savepoint"))
	}
	s.logger.Debug("Ambient checkpoint committed", map[string]any{"anchor": s.anchor})
	return nil
}

// Rollback abandons the current transaction. An owning session begins a new
// one on next use; a joined session is closed for good. Harnesses call it on
// cleanup; units of work never do.
func (s *GormSession) Rollback(ctx context.Context) error {
	if s.closed || s.tx == nil {
		return nil
	}

	tx := s.tx
	s.endTransaction()
	if s.mode == ModeJoined {
		s.closed = true
	}

	if err := tx.WithContext(ctx).Rollback().Error; err != nil {
		mapped := s.mapper.MapSessionError(err, "rollback")
		if domainErr.IsTransactionAlreadyClosed(mapped) {
			s.logger.Warn("Ambient transaction already closed", map[string]any{"error": err.Error()})
			return nil
		}
		return mapped
	}
	return nil
}

// current returns the open transaction, beginning one for an owning session
func (s *GormSession) current(ctx context.Context) (*gorm.DB, error) {
	if s.closed {
		return nil, domainErr.NewSessionError("begin", domainErr.ErrResourceClosed, sql.ErrTxDone)
	}
	if s.tx != nil {
		return s.tx, nil
	}

	// the transaction outlives the call that happened to begin it
	tx := s.root.WithContext(context.WithoutCancel(ctx)).Begin()
	if tx.Error != nil {
		return nil, s.mapper.MapSessionError(tx.Error, "begin")
	}
	s.tx = tx
	s.logger.Debug("Ambient transaction begun", map[string]any{"generation": s.generation})
	return s.tx, nil
}

// endTransaction forgets the transaction and every savepoint opened in it
func (s *GormSession) endTransaction() {
	for _, sp := range s.open {
		sp.done = true
	}
	s.open = nil
	s.generation++
	if s.mode == ModeOwning {
		s.tx = nil
	}
}

// finishFrom marks sp and every savepoint opened after it as finished
func (s *GormSession) finishFrom(sp *gormSavepoint) {
	for i, candidate := range s.open {
		if candidate != sp {
			continue
		}
		for _, later := range s.open[i:] {
			later.done = true
		}
		s.open = s.open[:i]
		return
	}
	sp.done = true
}

func (s *GormSession) exec(ctx context.Context, tx *gorm.DB, statement string) error {
	return tx.WithContext(ctx).Exec(statement).Error
}

func (s *GormSession) savepointName() string {
	return s.prefix + "_" + strings.ReplaceAll(uuid.NewString(), "-", "")
}

func normalizePrefix(prefix string) string {
	if prefix == "" {
		return DefaultSavepointPrefix
	}
	return prefix
}

// gormSavepoint is a savepoint opened by GormSession.BeginNested
type gormSavepoint struct {
	session    *GormSession
	name       string
	generation int
	done       bool
}

func (sp *gormSavepoint) Name() string {
	return sp.name
}

func (sp *gormSavepoint) Commit(ctx context.Context) error {
	return sp.finish(ctx, "RELEASE SAVEPOINT "+sp.name, "release savepoint")
}

func (sp *gormSavepoint) Rollback(ctx context.Context) error {
	return sp.finish(ctx, "ROLLBACK TO SAVEPOINT "+sp.name, "rollback to savepoint")
}

// finish runs the closing statement once. A savepoint that no longer exists
// in the database reports ErrResourceClosed without touching the transaction.
func (sp *gormSavepoint) finish(ctx context.Context, statement, action string) error {
	s := sp.session
	if sp.done || s.closed || sp.generation != s.generation || s.tx == nil {
		return domainErr.NewSessionError(action, domainErr.ErrResourceClosed, sql.ErrTxDone)
	}

	if err := s.exec(ctx, s.tx, statement); err != nil {
		mapped := s.mapper.MapSessionError(err, action)
		if domainErr.IsTransactionAlreadyClosed(mapped) {
			s.finishFrom(sp)
		}
		return mapped
	}
	s.finishFrom(sp)
	return nil
}
