package app

import (
	"errors"
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// ErrMissingSecret reports that no signing secret was configured. The service
// cannot issue tokens without one, so startup fails fast instead of surfacing
// 500s on every auth request.
var ErrMissingSecret = errors.New("app: GATEHOUSE_JWT_SECRET is required")

// Config is the process-wide configuration, parsed from the environment once
// at startup. The values are injected into constructors from here; nothing
// else reads ambient state.
type Config struct {
	// DatabaseFile is the path to the SQLite database file.
	DatabaseFile string `env:"GATEHOUSE_DATABASE_FILE" envDefault:"gatehouse.db"`

	// JWTSecret is the server-held secret used to sign issued tokens.
	// Required.
	JWTSecret string `env:"GATEHOUSE_JWT_SECRET"`

	// AccessTokenTTL is the lifetime of issued tokens.
	AccessTokenTTL time.Duration `env:"GATEHOUSE_ACCESS_TOKEN_TTL" envDefault:"1h"`

	Env                 string        `env:"ENV" envDefault:"dev"`        // dev, staging, prod
	LogLevel            string        `env:"LOG_LEVEL" envDefault:"info"` // debug, info, warn, error
	LogFormat           string        `env:"LOG_FORMAT" envDefault:"json"`
	Port                int           `env:"PORT" envDefault:"3000"`
	ShutdownGracePeriod time.Duration `env:"SHUTDOWN_GRACE_PERIOD" envDefault:"10s"`
}

// LoadConfig parses the configuration from the process environment.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("app: parse environment: %w", err)
	}

	if cfg.JWTSecret == "" {
		return Config{}, ErrMissingSecret
	}

	return cfg, nil
}
