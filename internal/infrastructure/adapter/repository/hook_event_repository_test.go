package repository

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/amirhossein-jamali/txfixture/internal/domain/entity"
	errs "github.com/amirhossein-jamali/txfixture/internal/domain/error"
	"github.com/amirhossein-jamali/txfixture/internal/infrastructure/adapter/database"
	"github.com/amirhossein-jamali/txfixture/internal/infrastructure/adapter/logger"
)

func newMockRepository(t *testing.T) (*HookEventRepository, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() {
		assert.NoError(t, mock.ExpectationsWereMet())
		_ = sqlDB.Close()
	})

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		Logger:                 gormlogger.Discard,
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)

	return NewHookEventRepository(database.NewStaticDB(db), logger.NewNoopLogger()), mock
}

func TestHookEventRepository_Record(t *testing.T) {
	ctx := context.Background()
	recordedAt := time.Date(2026, 3, 1, 9, 30, 0, 0, time.UTC)
	insert := regexp.QuoteMeta(`INSERT INTO "hook_events"`)

	t.Run("Sets the generated ID", func(t *testing.T) {
		repo, mock := newMockRepository(t)
		mock.ExpectQuery(insert).
			WithArgs("unit-1", "files", "commit", 0, recordedAt).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(7))

		event := &entity.HookEvent{
			UnitID:     "unit-1",
			Operation:  "files",
			Phase:      errs.PhaseCommit,
			Sequence:   0,
			RecordedAt: recordedAt,
		}
		require.NoError(t, repo.Record(ctx, event))

		assert.Equal(t, uint64(7), event.ID)
	})

	t.Run("Aborted transaction is classified", func(t *testing.T) {
		repo, mock := newMockRepository(t)
		mock.ExpectQuery(insert).WillReturnError(&pgconn.PgError{Code: "25P02"})

		err := repo.Record(ctx, &entity.HookEvent{UnitID: "unit-1", Operation: "files", Phase: errs.PhaseCommit})

		assert.ErrorIs(t, err, errs.ErrInvalidRequestState)
		assert.True(t, errs.IsTransactionAlreadyClosed(err))
	})

	t.Run("Unknown failure is internal", func(t *testing.T) {
		repo, mock := newMockRepository(t)
		boom := errors.New("disk full")
		mock.ExpectQuery(insert).WillReturnError(boom)

		err := repo.Record(ctx, &entity.HookEvent{UnitID: "unit-1", Operation: "files", Phase: errs.PhaseCommit})

		assert.ErrorIs(t, err, errs.ErrInternal)
		assert.ErrorIs(t, err, boom)
	})
}

func TestHookEventRepository_ListByUnit(t *testing.T) {
	ctx := context.Background()
	recordedAt := time.Date(2026, 3, 1, 9, 30, 0, 0, time.UTC)

	repo, mock := newMockRepository(t)
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "hook_events" WHERE unit_id = $1 ORDER BY sequence ASC`)).
		WithArgs("unit-1").
		WillReturnRows(sqlmock.NewRows([]string{"id", "unit_id", "operation", "phase", "sequence", "recorded_at"}).
			AddRow(1, "unit-1", "files", "rollback", 0, recordedAt).
			AddRow(2, "unit-1", "files", "post_rollback", 1, recordedAt))

	events, err := repo.ListByUnit(ctx, "unit-1")

	require.NoError(t, err)
	require.Len(t, events, 2)
	assert.Equal(t, "files.rollback", events[0].Label())
	assert.Equal(t, "files.post_rollback", events[1].Label())
	assert.Equal(t, uint64(2), events[1].ID)
	assert.Equal(t, recordedAt, events[1].RecordedAt)
}

func TestHookEventRepository_DeleteByUnit(t *testing.T) {
	ctx := context.Background()

	t.Run("Deletes by unit", func(t *testing.T) {
		repo, mock := newMockRepository(t)
		mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM "hook_events" WHERE unit_id = $1`)).
			WithArgs("unit-1").
			WillReturnResult(sqlmock.NewResult(0, 4))

		assert.NoError(t, repo.DeleteByUnit(ctx, "unit-1"))
	})

	t.Run("Connection loss is classified", func(t *testing.T) {
		repo, mock := newMockRepository(t)
		mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM "hook_events"`)).
			WillReturnError(&pgconn.PgError{Code: "08006"})

		err := repo.DeleteByUnit(ctx, "unit-1")

		assert.ErrorIs(t, err, errs.ErrDatabaseConnection)
	})
}
