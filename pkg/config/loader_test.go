package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, configFile), []byte(content), 0o644))
	return dir
}

func TestInitialize_MergesOverDefaults(t *testing.T) {
	dir := writeConfig(t, `
server:
  port: 9090
runtimes:
  main:
    type: local
    url: http://localhost:7000
    priority: 1
`)

	cfg, err := Initialize(context.Background(), dir)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "0.0.0.0", cfg.Server.Host, "unset fields keep defaults")
	assert.Equal(t, 30*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, "patterns", cfg.Patterns.Dir)
	assert.Equal(t, int64(1<<20), cfg.Webhooks.MaxBodyBytes)
	assert.Equal(t, dir, cfg.ConfigDir())

	rt, ok := cfg.Runtimes["main"]
	require.True(t, ok)
	assert.Equal(t, "local", rt.Type)
	assert.Equal(t, "http://localhost:7000", rt.URL)
	assert.True(t, rt.IsEnabled(), "runtimes default to enabled")
	assert.Equal(t, Stats{Runtimes: 1}, cfg.Stats())
}

func TestInitialize_MissingFile(t *testing.T) {
	_, err := Initialize(context.Background(), t.TempDir())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrConfigNotFound)
}

func TestInitialize_InvalidYAML(t *testing.T) {
	dir := writeConfig(t, "server: [not: a: mapping")
	_, err := Initialize(context.Background(), dir)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidYAML)
}

func TestInitialize_ValidationFailures(t *testing.T) {
	cases := []struct {
		name    string
		content string
	}{
		{"port out of range", "server:\n  port: 99999\n"},
		{"unknown runtime type", "runtimes:\n  r:\n    type: mainframe\n    url: http://x\n"},
		{"runtime without url", "runtimes:\n  r:\n    type: local\n"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			dir := writeConfig(t, tc.content)
			_, err := Initialize(context.Background(), dir)
			require.Error(t, err)
			var verr *ValidationError
			assert.ErrorAs(t, err, &verr)
		})
	}
}

func TestInitialize_EnvExpansion(t *testing.T) {
	t.Setenv("TEST_RUNTIME_URL", "http://runtime.internal:7000")

	dir := writeConfig(t, `
runtimes:
  main:
    type: container
    url: "{{.TEST_RUNTIME_URL}}"
`)

	cfg, err := Initialize(context.Background(), dir)
	require.NoError(t, err)
	assert.Equal(t, "http://runtime.internal:7000", cfg.Runtimes["main"].URL)
}

func TestSchedulerConfig_IsEnabled(t *testing.T) {
	var nilCfg *SchedulerConfig
	assert.True(t, nilCfg.IsEnabled())
	assert.True(t, (&SchedulerConfig{}).IsEnabled())

	off := false
	assert.False(t, (&SchedulerConfig{Enabled: &off}).IsEnabled())
}
