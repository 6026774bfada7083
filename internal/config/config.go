package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
)

const (
	// DefaultHost is the default bind address.
	DefaultHost = "0.0.0.0"

	// DefaultPort is the default HTTP server port.
	DefaultPort = "18790"
)

// Config holds the MISSION_CONTROL_* environment surface. CLI flags may
// override individual fields after loading.
type Config struct {
	Host        string `envconfig:"HOST" default:"0.0.0.0"`
	Port        string `envconfig:"PORT" default:"18790"`
	DatabaseURL string `envconfig:"DB_URL"`
	Token       string `envconfig:"TOKEN"`
	InstanceID  string `envconfig:"INSTANCE_ID" default:"vps"`
}

// Load reads configuration from MISSION_CONTROL_* environment variables.
// DatabaseURL is validated by the caller once flag overrides are applied;
// an empty Token disables authentication entirely.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("mission_control", &cfg); err != nil {
		return nil, fmt.Errorf("process environment: %w", err)
	}
	return &cfg, nil
}
