package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"

	"github.com/emiliopalmerini/commitgate/internal/gate"
)

// DefaultLogPath is where the debug log is appended when DEBUG_HOOK=1.
const DefaultLogPath = "/tmp/claude-hook-check-git-commit.log"

// flagOn is the only value that turns an environment flag on.
const flagOn = "1"

// HookEnv holds the variables set by the hook host or the user.
// Every field is a string so that loading it cannot fail.
type HookEnv struct {
	SkipCommitHook string `envconfig:"SKIP_COMMIT_HOOK"`
	PluginRoot     string `envconfig:"CLAUDE_PLUGIN_ROOT"`
	DebugHook      string `envconfig:"DEBUG_HOOK"`
	LogFile        string `envconfig:"COMMITGATE_LOG_FILE" default:"/tmp/claude-hook-check-git-commit.log"`
}

// TelemetryEnv holds OTEL exporter configuration.
type TelemetryEnv struct {
	OTelEnabled  bool   `envconfig:"COMMITGATE_OTEL_ENABLED"`
	OTelEndpoint string `envconfig:"COMMITGATE_OTEL_ENDPOINT"`
	OTelInsecure bool   `envconfig:"COMMITGATE_OTEL_INSECURE"`
}

// LoadHook reads the gate configuration from environment variables.
func LoadHook() (*HookEnv, error) {
	var env HookEnv
	if err := envconfig.Process("", &env); err != nil {
		return nil, fmt.Errorf("failed to load hook env: %w", err)
	}
	return &env, nil
}

// LoadTelemetry reads the metrics configuration from environment variables.
// It is loaded apart from HookEnv so a malformed value only disables metrics.
func LoadTelemetry() (*TelemetryEnv, error) {
	var env TelemetryEnv
	if err := envconfig.Process("", &env); err != nil {
		return nil, fmt.Errorf("failed to load telemetry env: %w", err)
	}
	return &env, nil
}

// Disabled reports whether SKIP_COMMIT_HOOK is exactly "1".
func (e *HookEnv) Disabled() bool {
	return e.SkipCommitHook == flagOn
}

// Debug reports whether DEBUG_HOOK is exactly "1".
func (e *HookEnv) Debug() bool {
	return e.DebugHook == flagOn
}

// Gate projects the environment onto the checker configuration.
func (e *HookEnv) Gate() gate.Config {
	return gate.Config{
		Disabled:   e.Disabled(),
		PluginRoot: e.PluginRoot,
	}
}
