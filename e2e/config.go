package e2e

import (
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	// E2E_COLOURS enables colorized step headers for better log readability
	Colours bool `envconfig:"E2E_COLOURS" default:"true"`
	// E2E_LOG_LEVEL controls the verbosity of the assembled stack
	LogLevel string `envconfig:"E2E_LOG_LEVEL" default:"DEBUG"`
	// E2E_PRESENCE_INTERVAL keeps scenarios fast without touching defaults
	PresenceInterval string `envconfig:"E2E_PRESENCE_INTERVAL" default:"10ms"`
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	return cfg, err
}
