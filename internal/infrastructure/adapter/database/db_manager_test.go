package database

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/amirhossein-jamali/txfixture/internal/infrastructure/adapter/logger"
	timeprovider "github.com/amirhossein-jamali/txfixture/internal/infrastructure/adapter/time"
)

func newMockManager(t *testing.T) (*Manager, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() {
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	cfg := validConfig()
	cfg.LogLevel = "silent"
	m := NewManagerWithDialector(cfg, logger.NewNoopLogger(), timeprovider.NewRealTimeProvider(),
		func(string) gorm.Dialector {
			return postgres.New(postgres.Config{Conn: sqlDB})
		})
	return m, mock
}

func TestManager_Connect(t *testing.T) {
	ctx := context.Background()
	m, mock := newMockManager(t)

	db, err := m.Connect(ctx)
	require.NoError(t, err)
	assert.Same(t, db, m.DB())

	mock.ExpectClose()
	assert.NoError(t, m.Close())
}

func TestManager_BeginSession(t *testing.T) {
	ctx := context.Background()

	t.Run("Owning session", func(t *testing.T) {
		m, mock := newMockManager(t)
		_, err := m.Connect(ctx)
		require.NoError(t, err)

		mock.ExpectBegin()
		mock.ExpectCommit()

		session, err := m.BeginSession(ctx, false)
		require.NoError(t, err)
		assert.Equal(t, ModeOwning, session.Mode())
		assert.NoError(t, session.Commit(ctx))

		// nothing was begun since, so there is nothing to commit or roll back
		assert.NoError(t, session.Commit(ctx))
		assert.NoError(t, session.Rollback(ctx))
	})

	t.Run("Joined session opens an anchor", func(t *testing.T) {
		m, mock := newMockManager(t)
		_, err := m.Connect(ctx)
		require.NoError(t, err)

		mock.ExpectBegin()
		mock.ExpectExec(savepointPattern).WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectRollback()

		session, err := m.BeginSession(ctx, true)
		require.NoError(t, err)
		assert.Equal(t, ModeJoined, session.Mode())
		assert.NoError(t, session.Rollback(ctx))
	})

	t.Run("Anchor failure rolls the transaction back", func(t *testing.T) {
		m, mock := newMockManager(t)
		_, err := m.Connect(ctx)
		require.NoError(t, err)

		mock.ExpectBegin()
		mock.ExpectExec(savepointPattern).WillReturnError(errors.New("permission denied"))
		mock.ExpectRollback()

		session, err := m.BeginSession(ctx, true)
		assert.Nil(t, session)
		assert.Error(t, err)
	})

	t.Run("Begin failure", func(t *testing.T) {
		m, mock := newMockManager(t)
		_, err := m.Connect(ctx)
		require.NoError(t, err)

		mock.ExpectBegin().WillReturnError(errors.New("too many connections"))

		_, err = m.BeginSession(ctx, false)
		assert.ErrorContains(t, err, "too many connections")
	})
}

func TestManager_NotConnected(t *testing.T) {
	m := NewManager(validConfig(), logger.NewNoopLogger(), timeprovider.NewRealTimeProvider())

	_, err := m.BeginSession(context.Background(), false)
	assert.ErrorIs(t, err, ErrNotConnected)
	assert.ErrorIs(t, m.Migrate(context.Background()), ErrNotConnected)
	assert.NoError(t, m.Close())
}

func TestManager_WithTimeout(t *testing.T) {
	m := NewManager(validConfig(), logger.NewNoopLogger(), timeprovider.NewRealTimeProvider())

	ctx, cancel := m.WithTimeout(context.Background())
	defer cancel()

	deadline, ok := ctx.Deadline()
	require.True(t, ok)
	assert.WithinDuration(t, time.Now().Add(5*time.Second), deadline, time.Second)
}
