package otel

import "github.com/emiliopalmerini/commitgate/internal/infrastructure/config"

// Config holds OTEL exporter configuration.
type Config struct {
	Endpoint string
	Enabled  bool
	Insecure bool
}

// ConfigFromEnv extracts the exporter configuration from the loaded environment.
func ConfigFromEnv(env *config.TelemetryEnv) Config {
	return Config{
		Endpoint: env.OTelEndpoint,
		Enabled:  env.OTelEnabled,
		Insecure: env.OTelInsecure,
	}
}
