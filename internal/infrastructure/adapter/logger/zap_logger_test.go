package logger

import (
	"testing"

	"github.com/amirhossein-jamali/txfixture/internal/domain/port/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestZapLogger_LevelFiltering(t *testing.T) {
	zc, logs := observer.New(zap.DebugLevel)
	log := NewZapLoggerFromCore(zc)

	log.Debug("savepoint opened", map[string]any{"savepoint": "sp_1"})
	log.SetLevel(core.LogLevelWarn)
	log.Info("dropped", nil)
	log.Warn("nested rollback skipped", map[string]any{"error": "closed"})
	log.Error("ambient commit failed", nil)

	entries := logs.AllUntimed()
	require.Len(t, entries, 3)
	assert.Equal(t, "savepoint opened", entries[0].Message)
	assert.Equal(t, "sp_1", entries[0].ContextMap()["savepoint"])
	assert.Equal(t, "nested rollback skipped", entries[1].Message)
	assert.Equal(t, zap.WarnLevel, entries[1].Level)
	assert.Equal(t, "ambient commit failed", entries[2].Message)
	assert.Equal(t, core.LogLevelWarn, log.GetLevel())
}

func TestNoopLogger(t *testing.T) {
	log := NewNoopLogger()
	assert.Equal(t, core.LogLevelInfo, log.GetLevel())

	log.SetLevel(core.LogLevelDebug)
	log.Debug("ignored", nil)
	assert.Equal(t, core.LogLevelDebug, log.GetLevel())
	assert.NoError(t, log.Flush())
}
