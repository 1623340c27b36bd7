package config

import (
	"github.com/caarlos0/env/v11"
)

// Config holds process-level settings read from the environment.
// Game tuning does not live here, see Rules.
type Config struct {
	ListenAddr     string `env:"LISTEN_ADDR" envDefault:":5300"`
	DatabaseURL    string `env:"DATABASE_URL,required"`
	JWTSecret      string `env:"JWT_SECRET,required"`
	AllowedOrigins string `env:"ALLOWED_ORIGINS" envDefault:"http://localhost:3000"`

	// How often the milestone sweep worker runs, in minutes.
	MilestoneSweepMinutes int `env:"MILESTONE_SWEEP_MINUTES" envDefault:"5"`
}

func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
