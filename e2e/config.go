package e2e

import (
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	JWTSecret string `envconfig:"E2E_JWT_SECRET" default:"e2e-presence-secret-key"`
	// E2E_DEBUG_EVENTS dumps every event received by a connection as JSON
	DebugEvents bool `envconfig:"E2E_DEBUG_EVENTS" default:"false"`
	// E2E_COLOURS enables colorized output for better log readability
	Colours bool          `envconfig:"E2E_COLOURS" default:"true"`
	Timeout time.Duration `envconfig:"E2E_TIMEOUT" default:"2s"`
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	return cfg, err
}
