package database

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/amirhossein-jamali/txfixture/internal/domain/port/core"
	mockcore "github.com/amirhossein-jamali/txfixture/mocks/port/core"
)

func TestDatabaseLogger_Trace(t *testing.T) {
	ctx := context.Background()
	begin := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	statement := func(sql string) func() (string, int64) {
		return func() (string, int64) { return sql, 0 }
	}

	t.Run("Savepoint statements are logged at debug with their type", func(t *testing.T) {
		coreLogger := mockcore.NewMockLogger(t)
		clock := mockcore.NewMockTimeProvider(t)
		clock.EXPECT().Since(begin).Return(core.Millisecond)
		coreLogger.EXPECT().Debug("SQL Query", mock.MatchedBy(func(fields map[string]any) bool {
			return fields["type"] == "SAVEPOINT" && fields["sql"] == "SAVEPOINT uow_1"
		})).Once()

		l := NewDatabaseLogger(coreLogger, clock, "info")
		l.Trace(ctx, begin, statement("SAVEPOINT uow_1"), nil)
	})

	t.Run("Errors are logged at error", func(t *testing.T) {
		coreLogger := mockcore.NewMockLogger(t)
		clock := mockcore.NewMockTimeProvider(t)
		clock.EXPECT().Since(begin).Return(core.Millisecond)
		coreLogger.EXPECT().Error("SQL Error", mock.MatchedBy(func(fields map[string]any) bool {
			return fields["type"] == "ROLLBACK_TO" && fields["error"] == "boom"
		})).Once()

		l := NewDatabaseLogger(coreLogger, clock, "error")
		l.Trace(ctx, begin, statement("ROLLBACK TO SAVEPOINT uow_1"), errors.New("boom"))
	})

	t.Run("Record not found is not an error", func(t *testing.T) {
		coreLogger := mockcore.NewMockLogger(t)
		clock := mockcore.NewMockTimeProvider(t)
		clock.EXPECT().Since(begin).Return(core.Millisecond)

		l := NewDatabaseLogger(coreLogger, clock, "warn")
		l.Trace(ctx, begin, statement("SELECT 1"), gorm.ErrRecordNotFound)
	})

	t.Run("Slow statements are logged at warn", func(t *testing.T) {
		coreLogger := mockcore.NewMockLogger(t)
		clock := mockcore.NewMockTimeProvider(t)
		clock.EXPECT().Since(begin).Return(core.Second)
		coreLogger.EXPECT().Warn("Slow SQL Query", mock.Anything).Once()

		l := NewDatabaseLogger(coreLogger, clock, "warn")
		l.Trace(ctx, begin, statement("RELEASE SAVEPOINT uow_1"), nil)
	})

	t.Run("Silent logs nothing", func(t *testing.T) {
		coreLogger := mockcore.NewMockLogger(t)
		l := NewDatabaseLogger(coreLogger, nil, "silent")
		l.Trace(ctx, begin, statement("SELECT 1"), errors.New("boom"))
	})

	t.Run("LogMode returns an adjusted copy", func(t *testing.T) {
		coreLogger := mockcore.NewMockLogger(t)
		l := NewDatabaseLogger(coreLogger, nil, "info")

		quiet := l.LogMode(gormlogger.Silent)

		assert.Equal(t, gormlogger.Info, l.(*DatabaseLogger).logLevel)
		assert.Equal(t, gormlogger.Silent, quiet.(*DatabaseLogger).logLevel)
	})
}

func TestExtractQueryType(t *testing.T) {
	tests := map[string]string{
		"select * from hook_events":         "SELECT",
		"  INSERT INTO hook_events":         "INSERT",
		"UPDATE hook_events SET":            "UPDATE",
		"DELETE FROM hook_events":           "DELETE",
		"SAVEPOINT uow_1":                   "SAVEPOINT",
		"RELEASE SAVEPOINT uow_1":           "RELEASE",
		"ROLLBACK TO SAVEPOINT uow_1":       "ROLLBACK_TO",
		"CREATE TABLE hook_events (id int)": "",
	}

	for sql, want := range tests {
		assert.Equal(t, want, extractQueryType(sql), sql)
	}
}
