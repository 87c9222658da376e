package config

import "time"

// DefaultConfig returns the built-in configuration, overridden by
// parallax.yaml values during loading.
func DefaultConfig() *Config {
	return &Config{
		Server: &ServerConfig{
			Host:            "0.0.0.0",
			Port:            8000,
			ReadTimeout:     30 * time.Second,
			WriteTimeout:    60 * time.Second,
			ShutdownTimeout: 30 * time.Second,
		},
		Runtimes: map[string]RuntimeConfig{},
		Patterns: &PatternsConfig{
			Dir: "patterns",
		},
		Webhooks: &WebhooksConfig{
			MaxBodyBytes: 1 << 20,
		},
	}
}
