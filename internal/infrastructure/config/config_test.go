package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// clearEnv unsets every variable LoadHook and LoadTelemetry read. Set-but-empty bools fail to
// parse, so the variables are removed rather than blanked.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"SKIP_COMMIT_HOOK",
		"CLAUDE_PLUGIN_ROOT",
		"DEBUG_HOOK",
		"COMMITGATE_LOG_FILE",
		"COMMITGATE_OTEL_ENABLED",
		"COMMITGATE_OTEL_ENDPOINT",
		"COMMITGATE_OTEL_INSECURE",
	} {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}
}

func TestLoadHook_Defaults(t *testing.T) {
	clearEnv(t)

	env, err := LoadHook()
	require.NoError(t, err)

	assert.False(t, env.Disabled())
	assert.False(t, env.Debug())
	assert.Empty(t, env.PluginRoot)
	assert.Equal(t, DefaultLogPath, env.LogFile)

	tel, err := LoadTelemetry()
	require.NoError(t, err)
	assert.False(t, tel.OTelEnabled)
}

func TestLoad_FromEnvironment(t *testing.T) {
	clearEnv(t)
	t.Setenv("SKIP_COMMIT_HOOK", "1")
	t.Setenv("DEBUG_HOOK", "1")
	t.Setenv("CLAUDE_PLUGIN_ROOT", "/opt/plugins/commit")
	t.Setenv("COMMITGATE_LOG_FILE", "/var/tmp/hook.log")
	t.Setenv("COMMITGATE_OTEL_ENABLED", "true")
	t.Setenv("COMMITGATE_OTEL_ENDPOINT", "localhost:4317")

	env, err := LoadHook()
	require.NoError(t, err)

	assert.True(t, env.Disabled())
	assert.True(t, env.Debug())
	assert.Equal(t, "/var/tmp/hook.log", env.LogFile)

	cfg := env.Gate()
	assert.True(t, cfg.Disabled)
	assert.Equal(t, "/opt/plugins/commit", cfg.PluginRoot)

	tel, err := LoadTelemetry()
	require.NoError(t, err)
	assert.True(t, tel.OTelEnabled)
	assert.Equal(t, "localhost:4317", tel.OTelEndpoint)
}

func TestFlags_RequireExactlyOne(t *testing.T) {
	for _, v := range []string{"true", "yes", "0", " 1", "01"} {
		t.Run(v, func(t *testing.T) {
			clearEnv(t)
			t.Setenv("SKIP_COMMIT_HOOK", v)
			t.Setenv("DEBUG_HOOK", v)

			env, err := LoadHook()
			require.NoError(t, err)
			assert.False(t, env.Disabled())
			assert.False(t, env.Debug())
		})
	}
}

func TestLoadTelemetry_InvalidBool(t *testing.T) {
	for _, v := range []string{"sometimes", ""} {
		t.Run(v, func(t *testing.T) {
			clearEnv(t)
			t.Setenv("COMMITGATE_OTEL_ENABLED", v)

			_, err := LoadTelemetry()
			assert.Error(t, err)
		})
	}
}

func TestLoadHook_IgnoresMalformedTelemetry(t *testing.T) {
	clearEnv(t)
	t.Setenv("SKIP_COMMIT_HOOK", "1")
	t.Setenv("COMMITGATE_OTEL_ENABLED", "")
	t.Setenv("COMMITGATE_OTEL_INSECURE", "")

	env, err := LoadHook()
	require.NoError(t, err)
	assert.True(t, env.Disabled())
}
