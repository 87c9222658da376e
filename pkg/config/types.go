// Package config loads and validates the service configuration from
// parallax.yaml plus environment variables.
package config

import "time"

// Config is the fully resolved service configuration.
type Config struct {
	configDir string

	Server    *ServerConfig             `yaml:"server"`
	Runtimes  map[string]RuntimeConfig  `yaml:"runtimes"`
	Patterns  *PatternsConfig           `yaml:"patterns"`
	Scheduler *SchedulerConfig          `yaml:"scheduler"`
	Webhooks  *WebhooksConfig           `yaml:"webhooks"`
}

// ConfigDir returns the directory the configuration was loaded from.
func (c *Config) ConfigDir() string {
	return c.configDir
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"`
	Port            int           `yaml:"port"`
	ReadTimeout     time.Duration `yaml:"read_timeout"`
	WriteTimeout    time.Duration `yaml:"write_timeout"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
}

// RuntimeConfig describes one agent runtime provider to register with the
// federation.
type RuntimeConfig struct {
	Type     string `yaml:"type"`     // local, container, cluster
	URL      string `yaml:"url"`      // provider base URL
	Priority int    `yaml:"priority"` // lower places first
	Enabled  *bool  `yaml:"enabled,omitempty"`
}

// IsEnabled reports whether the runtime should be registered (default on).
func (r RuntimeConfig) IsEnabled() bool {
	return r.Enabled == nil || *r.Enabled
}

// PatternsConfig holds pattern registry settings.
type PatternsConfig struct {
	Dir string `yaml:"dir"`
}

// SchedulerConfig holds schedule poller settings.
type SchedulerConfig struct {
	Enabled *bool `yaml:"enabled,omitempty"`
}

// IsEnabled reports whether the poller should run (default on).
func (s *SchedulerConfig) IsEnabled() bool {
	return s == nil || s.Enabled == nil || *s.Enabled
}

// WebhooksConfig holds webhook endpoint settings.
type WebhooksConfig struct {
	MaxBodyBytes int64 `yaml:"max_body_bytes"`
}

// Stats summarizes loaded configuration for startup logging.
type Stats struct {
	Runtimes int
}

// Stats returns configuration counts for startup logging.
func (c *Config) Stats() Stats {
	return Stats{Runtimes: len(c.Runtimes)}
}
