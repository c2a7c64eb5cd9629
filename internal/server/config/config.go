// Package config handles configuration for the auth API server: defaults,
// an optional .env file, an optional JSON file, environment variables and
// command-line flags, applied in that order.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

const (
	legacyPostgresScheme = "postgres://"
	postgresScheme       = "postgresql://"
)

// ErrMissingDatabaseDSN is returned by Validate when no connection string
// was supplied by any source.
var ErrMissingDatabaseDSN = errors.New("DATABASE_URL environment variable is not set")

// Config holds runtime settings for the auth API server.
//
// Fields:
//   - EndpointAddrHTTP: bind address of the HTTP listener.
//   - DatabaseDSN: PostgreSQL connection string (pgx). Required, no default.
//   - BcryptCost: bcrypt work factor used for new password hashes.
//   - CORSAllowedOrigins: comma separated list of allowed origins, "*" for any.
//   - GinMode: gin.DebugMode, gin.ReleaseMode or gin.TestMode.
//   - LogLevel: debug, info, warn or error.
//   - ShutdownTimeout: how long in-flight requests get on shutdown.
type Config struct {
	EndpointAddrHTTP   string
	DatabaseDSN        string
	BcryptCost         int
	CORSAllowedOrigins string
	GinMode            string
	LogLevel           string
	ShutdownTimeout    time.Duration
}

// LoadDefaults populates Config with development defaults. DatabaseDSN is
// intentionally left empty.
func (c *Config) LoadDefaults() {
	c.EndpointAddrHTTP = ":5000"
	c.BcryptCost = 12
	c.CORSAllowedOrigins = "*"
	c.GinMode = gin.ReleaseMode
	c.LogLevel = "info"
	c.ShutdownTimeout = 10 * time.Second
}

// LoadConfig builds a Config from defaults, then overlays the .env file,
// the JSON file given by -c/-config, environment variables and flags.
// The resulting DSN is normalized and the whole config validated.
func LoadConfig() (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()

	if err := loadDotEnv(dotEnvFile); err != nil {
		return nil, err
	}
	if err := parseJson(cfg); err != nil {
		return nil, err
	}
	if err := parseEnv(cfg); err != nil {
		return nil, err
	}
	if err := parseFlags(cfg); err != nil {
		return nil, err
	}

	cfg.DatabaseDSN = NormalizeDSN(cfg.DatabaseDSN)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// NormalizeDSN rewrites the legacy "postgres://" scheme to "postgresql://".
// Only the leading scheme is touched.
func NormalizeDSN(dsn string) string {
	if strings.HasPrefix(dsn, legacyPostgresScheme) {
		return postgresScheme + strings.TrimPrefix(dsn, legacyPostgresScheme)
	}
	return dsn
}

// Validate reports the first setting that would prevent the server from
// starting.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.DatabaseDSN) == "" {
		return ErrMissingDatabaseDSN
	}
	if c.BcryptCost < bcrypt.MinCost || c.BcryptCost > bcrypt.MaxCost {
		return fmt.Errorf("bcrypt cost %d out of range [%d, %d]", c.BcryptCost, bcrypt.MinCost, bcrypt.MaxCost)
	}
	switch c.GinMode {
	case gin.DebugMode, gin.ReleaseMode, gin.TestMode:
	default:
		return fmt.Errorf("unknown gin mode %q", c.GinMode)
	}
	if c.ShutdownTimeout <= 0 {
		return fmt.Errorf("shutdown timeout must be positive, got %s", c.ShutdownTimeout)
	}
	for _, o := range c.AllowedOrigins() {
		if o != "*" && !strings.HasPrefix(o, "http://") && !strings.HasPrefix(o, "https://") {
			return fmt.Errorf("bad CORS origin %q", o)
		}
	}
	return nil
}

// AllowedOrigins splits CORSAllowedOrigins into trimmed, non-empty entries.
func (c *Config) AllowedOrigins() []string {
	parts := strings.Split(c.CORSAllowedOrigins, ",")
	origins := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			origins = append(origins, p)
		}
	}
	return origins
}
