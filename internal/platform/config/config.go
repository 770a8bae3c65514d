package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config del servidor. Todo viene de variables de entorno.
type Config struct {
	Port string `env:"PORT" envDefault:"8080"`

	// Persistencia: DB_DSN (postgres) tiene prioridad sobre SQLITE_PATH; sin ninguno, in-memory.
	DBDSN      string `env:"DB_DSN"`
	SQLitePath string `env:"SQLITE_PATH"`

	Seed        uint64        `env:"GAME_SEED" envDefault:"0"`
	DayInterval time.Duration `env:"DAY_INTERVAL" envDefault:"60s"`
	AutoTick    bool          `env:"AUTO_TICK" envDefault:"true"`
	DefaultSlot string        `env:"DEFAULT_SLOT" envDefault:"default"`

	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"text"`
	AppName   string `env:"APP_NAME" envDefault:"kennel-tycoon"`

	OTelEndpoint string `env:"OTEL_ENDPOINT"`
}

// Load parsea el entorno y valida lo mínimo.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if cfg.DayInterval <= 0 {
		return Config{}, fmt.Errorf("DAY_INTERVAL must be positive, got %s", cfg.DayInterval)
	}
	return cfg, nil
}
