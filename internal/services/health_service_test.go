package services

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"acctfilter/internal/shared/testutil"
)

func TestHealthServiceReady(t *testing.T) {
	logger, _ := testutil.NewTestLogger(t)
	dir := t.TempDir()
	hs := NewHealthService("1.2.3", "2026-01-01T00:00:00Z", dir, logger)
	ctx := context.Background()

	ready := hs.ReadinessCheck(ctx)
	assert.Equal(t, "ready", ready.Status)
	assert.Equal(t, "1.2.3", ready.Version)
	require.Contains(t, ready.Services, "output")

	health := hs.HealthCheck(ctx)
	assert.Equal(t, "ok", health.Status)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries, "the write probe is cleaned up")
}

func TestHealthServiceMissingOutputDir(t *testing.T) {
	logger, _ := testutil.NewTestLogger(t)
	hs := NewHealthService("1.2.3", "", filepath.Join(t.TempDir(), "absent"), logger)

	ready := hs.ReadinessCheck(context.Background())
	assert.Equal(t, "not_ready", ready.Status)
	out, ok := ready.Services["output"].(ServiceHealth)
	require.True(t, ok)
	assert.Contains(t, out.Message, "not found")

	assert.Equal(t, "degraded", hs.HealthCheck(context.Background()).Status)
}

func TestHealthServiceLivenessAndVersion(t *testing.T) {
	hs := NewHealthService("1.2.3", "", t.TempDir(), nil)

	live := hs.LivenessCheck(context.Background())
	assert.Equal(t, "alive", live.Status)
	assert.Equal(t, runtime.Version(), live.Runtime["go_version"])

	v := hs.Version()
	assert.Equal(t, "1.2.3", v["version"])
	assert.NotContains(t, v, "build_time")
	assert.Contains(t, v["operations"], "zero_interest_accounts")
	assert.Len(t, v["operations"], 6)
}
