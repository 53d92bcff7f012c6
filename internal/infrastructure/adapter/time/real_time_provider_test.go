package time

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/amirhossein-jamali/txfixture/internal/domain/port/core"
)

func TestRealTimeProvider(t *testing.T) {
	p := NewRealTimeProvider()

	t.Run("Now is UTC", func(t *testing.T) {
		assert.Equal(t, time.UTC, p.Now().Location())
	})

	t.Run("Since is non-negative", func(t *testing.T) {
		start := p.Now()
		assert.GreaterOrEqual(t, p.Since(start), core.Duration(0))
	})

	t.Run("WithTimeout sets a deadline", func(t *testing.T) {
		ctx, cancel := p.WithTimeout(context.Background(), core.Second)
		defer cancel()

		deadline, ok := ctx.Deadline()
		assert.True(t, ok)
		assert.WithinDuration(t, time.Now().Add(time.Second), deadline, time.Second)
	})
}
