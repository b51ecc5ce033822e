package testutil

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBufferedSlogHandler(t *testing.T) {
	t.Run("captures log records", func(t *testing.T) {
		logger, handler := NewTestLogger(t)

		logger.Info("test message", slog.String("key", "value"))
		logger.Error("error message", slog.Int("code", 500))

		assert.Equal(t, 2, handler.Count())
		assert.True(t, handler.ContainsMessage("test message"))
		assert.True(t, handler.ContainsAttr("key", "value"))
		assert.Len(t, handler.GetRecordsByLevel(slog.LevelError), 1)
	})

	t.Run("derived loggers share the store", func(t *testing.T) {
		logger, handler := NewTestLogger(t)

		logger.With(slog.String("component", "exporter")).Warn("slow write")
		logger.WithGroup("req").Info("done", slog.Int("status", 200))

		assert.True(t, handler.ContainsAttr("component", "exporter"))
		assert.True(t, handler.ContainsAttr("req.status", int64(200)))
		AssertLogContains(t, handler, slog.LevelWarn, "slow")
	})
}
