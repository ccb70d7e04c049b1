package config

import (
	"crypto/tls"
	"time"
)

// BaseHTTPConfig holds common HTTP client configuration settings.
type BaseHTTPConfig struct {
	Timeout         time.Duration
	TLSClientConfig *tls.Config
	Proxy           string
}

// RestyHttpClientConfig holds additional configuration settings for the resty http client.
type RestyHttpClientConfig struct {
	BaseHTTPConfig
	Debug bool
}

// General base configuration applicable to all HTTP clients. No retry
// settings exist: the validator contract is one request per document.
func DefaultHttpConfig() BaseHTTPConfig {
	return BaseHTTPConfig{
		Timeout: 30 * time.Second,
		TLSClientConfig: &tls.Config{
			MinVersion: tls.VersionTLS12, // Enforce a minimum TLS version
		},
		Proxy: "",
	}
}

// DefaultRestyConfig function returns a specific http config to Resty
func DefaultRestyConfig() RestyHttpClientConfig {
	baseConfig := DefaultHttpConfig()
	return RestyHttpClientConfig{
		BaseHTTPConfig: baseConfig,
		Debug:          false,
	}
}

// DefaultValidatorConfig returns the validator service settings used when
// the config file sets none.
func DefaultValidatorConfig() Validator {
	return Validator{
		Endpoint:  "https://validator.w3.org/nu/",
		UserAgent: "nucheck/1.0",
	}
}
