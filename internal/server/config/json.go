package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/dmitrijs2005/authapi/internal/flagx"
	"github.com/dmitrijs2005/authapi/internal/timex"
)

// JsonConfig is the on-disk shape of the optional JSON config file.
// Durations accept "10s" style strings or integer nanoseconds.
type JsonConfig struct {
	EndpointAddrHTTP   string         `json:"endpoint_addr_http"`
	DatabaseDSN        string         `json:"database_dsn"`
	BcryptCost         int            `json:"bcrypt_cost"`
	CORSAllowedOrigins string         `json:"cors_allowed_origins"`
	GinMode            string         `json:"gin_mode"`
	LogLevel           string         `json:"log_level"`
	ShutdownTimeout    timex.Duration `json:"shutdown_timeout"`
}

// parseJson overlays values from the file named by -c/-config. Keys missing
// from the file keep their current value. No flag, no file, no error.
func parseJson(config *Config) error {
	path := flagx.ConfigFileFlag()
	if path == "" {
		return nil
	}

	file, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}

	c := &JsonConfig{}
	if err := json.Unmarshal(file, c); err != nil {
		return fmt.Errorf("parse config file %s: %w", path, err)
	}

	if c.EndpointAddrHTTP != "" {
		config.EndpointAddrHTTP = c.EndpointAddrHTTP
	}
	if c.DatabaseDSN != "" {
		config.DatabaseDSN = c.DatabaseDSN
	}
	if c.BcryptCost != 0 {
		config.BcryptCost = c.BcryptCost
	}
	if c.CORSAllowedOrigins != "" {
		config.CORSAllowedOrigins = c.CORSAllowedOrigins
	}
	if c.GinMode != "" {
		config.GinMode = c.GinMode
	}
	if c.LogLevel != "" {
		config.LogLevel = c.LogLevel
	}
	if c.ShutdownTimeout.Duration != 0 {
		config.ShutdownTimeout = c.ShutdownTimeout.Duration
	}
	return nil
}
