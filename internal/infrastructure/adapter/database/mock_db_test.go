package database

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// Statement patterns for sqlmock's regexp matcher
const (
	savepointPattern  = `^SAVEPOINT uow_[0-9a-f]{32}$`
	releasePattern    = `^RELEASE SAVEPOINT uow_[0-9a-f]{32}$`
	rollbackToPattern = `^ROLLBACK TO SAVEPOINT uow_[0-9a-f]{32}$`
)

// newMockDB returns a gorm handle over go-sqlmock and asserts all expectations on cleanup
func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		Logger:                 gormlogger.Discard,
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)

	t.Cleanup(func() {
		require.NoError(t, mock.ExpectationsWereMet())
		_ = sqlDB.Close()
	})
	return db, mock
}

// beginMockTx expects and starts a transaction
func beginMockTx(t *testing.T, db *gorm.DB, mock sqlmock.Sqlmock) *gorm.DB {
	t.Helper()

	mock.ExpectBegin()
	tx := db.Begin()
	require.NoError(t, tx.Error)
	return tx
}

