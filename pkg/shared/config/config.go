package config

import (
	"fmt"
	"os"
	"time"

	yaml "gopkg.in/yaml.v2"
)

type Config struct {
	Logger     Logger     `yaml:"logger"`
	HttpClient HttpClient `yaml:"http_client"`
	Validator  Validator  `yaml:"validator"`
}

type Logger struct {
	Level string `yaml:"level"`
}

type HttpClient struct {
	Debug           string          `yaml:"debug"`
	Timeout         time.Duration   `yaml:"timeout"`
	TlsClientConfig TlsClientConfig `yaml:"tls_client_config"`
	Proxy           Proxy           `yaml:"proxy"`
}

type TlsClientConfig struct {
	Verify *bool `yaml:"verify"`
}

type Proxy struct {
	Host string `yaml:"host"`
	Port string `yaml:"port"`
}

// Validator holds the settings of the remote markup-validation service.
type Validator struct {
	Endpoint  string `yaml:"endpoint"`
	UserAgent string `yaml:"user_agent"`
}

func ValidateConfigPath(path string) error {
	s, err := os.Stat(path)
	if err != nil {
		return err
	}
	if s.IsDir() {
		return fmt.Errorf("'%s' is a directory, not a file", path)
	}
	return nil
}

func LoadYAML(configPath string, data interface{}) error {
	if err := ValidateConfigPath(configPath); err != nil {
		return err
	}

	file, err := os.Open(configPath)
	if err != nil {
		return err
	}
	defer file.Close()

	d := yaml.NewDecoder(file)
	if err := d.Decode(data); err != nil {
		return err
	}

	return nil
}

func NewConfig(configPath string) (*Config, error) {
	config := &Config{}

	if err := LoadYAML(configPath, &config); err != nil {
		return nil, err
	}

	return config, nil
}

// LoadConfig reads the YAML config at path and fills unset validator
// fields with their defaults.
func LoadConfig(configPath string) (*Config, error) {
	config, err := NewConfig(configPath)
	if err != nil {
		return nil, err
	}
	applyDefaults(config)
	return config, nil
}

// DefaultConfig returns the configuration used when no config file exists.
func DefaultConfig() *Config {
	config := &Config{}
	applyDefaults(config)
	return config
}

func applyDefaults(cfg *Config) {
	cfg.Validator.Endpoint = SetThen(cfg.Validator.Endpoint, DefaultValidatorConfig().Endpoint)
	cfg.Validator.UserAgent = SetThen(cfg.Validator.UserAgent, DefaultValidatorConfig().UserAgent)
}
