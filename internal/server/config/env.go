package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// dotEnvFile is loaded into the process environment before env vars are
// read. Variables already set in the environment win.
var dotEnvFile = ".env"

// EnvConfig mirrors Config for environment parsing. Zero values mean
// "not set" and leave the corresponding Config field untouched.
type EnvConfig struct {
	EndpointAddrHTTP   string        `env:"ADDRESS"`
	DatabaseDSN        string        `env:"DATABASE_URL"`
	BcryptCost         int           `env:"BCRYPT_COST"`
	CORSAllowedOrigins string        `env:"CORS_ALLOWED_ORIGINS"`
	GinMode            string        `env:"GIN_MODE"`
	LogLevel           string        `env:"LOG_LEVEL"`
	ShutdownTimeout    time.Duration `env:"SHUTDOWN_TIMEOUT"`
}

func loadDotEnv(path string) error {
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("load %s: %w", path, err)
	}
	return nil
}

func parseEnv(config *Config) error {
	var e EnvConfig
	if err := env.Parse(&e); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}

	if e.EndpointAddrHTTP != "" {
		config.EndpointAddrHTTP = e.EndpointAddrHTTP
	}
	if e.DatabaseDSN != "" {
		config.DatabaseDSN = e.DatabaseDSN
	}
	if e.BcryptCost != 0 {
		config.BcryptCost = e.BcryptCost
	}
	if e.CORSAllowedOrigins != "" {
		config.CORSAllowedOrigins = e.CORSAllowedOrigins
	}
	if e.GinMode != "" {
		config.GinMode = e.GinMode
	}
	if e.LogLevel != "" {
		config.LogLevel = e.LogLevel
	}
	if e.ShutdownTimeout != 0 {
		config.ShutdownTimeout = e.ShutdownTimeout
	}
	return nil
}
