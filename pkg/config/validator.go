package config

import "fmt"

var runtimeTypes = map[string]bool{
	"local":     true,
	"container": true,
	"cluster":   true,
}

// validate performs validation on loaded configuration.
func validate(cfg *Config) error {
	if cfg.Server.Port < 1 || cfg.Server.Port > 65535 {
		return NewValidationError("server", "server", "port",
			fmt.Errorf("%w: %d", ErrInvalidValue, cfg.Server.Port))
	}
	for name, rt := range cfg.Runtimes {
		if !runtimeTypes[rt.Type] {
			return NewValidationError("runtime", name, "type",
				fmt.Errorf("%w: %q", ErrInvalidValue, rt.Type))
		}
		if rt.URL == "" {
			return NewValidationError("runtime", name, "url", ErrMissingRequiredField)
		}
	}
	if cfg.Patterns == nil || cfg.Patterns.Dir == "" {
		return NewValidationError("patterns", "patterns", "dir", ErrMissingRequiredField)
	}
	return nil
}
