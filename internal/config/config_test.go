package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{"HTTP_ADDR", "GIN_MODE", "LOG_LEVEL", "INITIAL_BALANCE", "TOP_BIDDERS_LIMIT", "SWEEP_INTERVAL", "EVENT_BUFFER", "SEED_DEMO_DATA"} {
		unsetenv(t, key)
	}

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, ":8080", cfg.HTTPAddr)
	require.Equal(t, "release", cfg.GinMode)
	require.Equal(t, "info", cfg.LogLevel)
	require.Equal(t, 0.0, cfg.InitialBalance)
	require.Equal(t, 5, cfg.TopBiddersLimit)
	require.Equal(t, 30*time.Second, cfg.SweepInterval)
	require.Equal(t, 64, cfg.EventBuffer)
	require.False(t, cfg.SeedDemoData)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("HTTP_ADDR", ":9090")
	t.Setenv("INITIAL_BALANCE", "250.5")
	t.Setenv("SWEEP_INTERVAL", "0")
	t.Setenv("SEED_DEMO_DATA", "true")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, ":9090", cfg.HTTPAddr)
	require.Equal(t, 250.5, cfg.InitialBalance)
	require.Zero(t, cfg.SweepInterval)
	require.True(t, cfg.SeedDemoData)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{name: "negative_balance", key: "INITIAL_BALANCE", value: "-1"},
		{name: "zero_leaderboard", key: "TOP_BIDDERS_LIMIT", value: "0"},
		{name: "bad_duration", key: "SWEEP_INTERVAL", value: "soon"},
		{name: "negative_sweep", key: "SWEEP_INTERVAL", value: "-5s"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Setenv(tc.key, tc.value)
			_, err := Load()
			require.Error(t, err)
		})
	}
}

// unsetenv removes key for the duration of the test; an empty value would
// bypass envconfig defaults.
func unsetenv(t *testing.T, key string) {
	t.Helper()
	t.Setenv(key, "")
	require.NoError(t, os.Unsetenv(key))
}
