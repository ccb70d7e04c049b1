package config

import (
	"fmt"
	"net/url"
)

// ValidateConfig checks that the loaded configuration is usable.
func ValidateConfig(cfg *Config) error {
	if cfg == nil {
		return fmt.Errorf("configuration is not initialized")
	}

	u, err := url.Parse(cfg.Validator.Endpoint)
	if err != nil || !u.IsAbs() || u.Host == "" {
		return fmt.Errorf("validator endpoint '%s' is not an absolute URL", cfg.Validator.Endpoint)
	}
	if cfg.Validator.UserAgent == "" {
		return fmt.Errorf("validator user agent must not be empty")
	}
	if cfg.HttpClient.Timeout < 0 {
		return fmt.Errorf("http client timeout must not be negative")
	}
	return nil
}
