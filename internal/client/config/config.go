package config

import (
	"fmt"
	"time"
)

// Config holds runtime settings for the auth API client.
//
// Fields:
//   - ServerEndpointAddr: base URL of the server, scheme included.
//   - RequestTimeout: upper bound for a single HTTP call.
type Config struct {
	ServerEndpointAddr string
	RequestTimeout     time.Duration
}

// LoadDefaults points the client at a local server.
func (c *Config) LoadDefaults() {
	c.ServerEndpointAddr = "http://127.0.0.1:5000"
	c.RequestTimeout = 5 * time.Second
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present) and command-line flags (if present). Later sources take
// precedence over earlier ones.
func LoadConfig() (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()
	if err := parseJson(cfg); err != nil {
		return nil, err
	}
	if err := parseFlags(cfg); err != nil {
		return nil, err
	}
	if cfg.RequestTimeout <= 0 {
		return nil, fmt.Errorf("request timeout must be positive, got %s", cfg.RequestTimeout)
	}
	return cfg, nil
}
