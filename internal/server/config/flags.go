package config

import (
	"flag"
	"fmt"
	"os"

	"github.com/dmitrijs2005/authapi/internal/flagx"
)

// parseFlags populates Config fields from command-line flags.
//
//	-a string     HTTP bind address (e.g. ":5000")
//	-d string     PostgreSQL DSN
//	-k int        bcrypt cost
//	-o string     CORS allowed origins, comma separated
//	-m string     gin mode
//	-l string     log level
//	-t duration   shutdown timeout (e.g. "15s")
func parseFlags(config *Config) error {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-d", "-k", "-o", "-m", "-l", "-t"})

	fs := flag.NewFlagSet("server", flag.ContinueOnError)

	fs.StringVar(&config.EndpointAddrHTTP, "a", config.EndpointAddrHTTP, "address and port to run server")
	fs.StringVar(&config.DatabaseDSN, "d", config.DatabaseDSN, "database DSN")
	fs.IntVar(&config.BcryptCost, "k", config.BcryptCost, "bcrypt cost")
	fs.StringVar(&config.CORSAllowedOrigins, "o", config.CORSAllowedOrigins, "CORS allowed origins")
	fs.StringVar(&config.GinMode, "m", config.GinMode, "gin mode (debug, release, test)")
	fs.StringVar(&config.LogLevel, "l", config.LogLevel, "log level")
	fs.DurationVar(&config.ShutdownTimeout, "t", config.ShutdownTimeout, "graceful shutdown timeout")

	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("parse flags: %w", err)
	}
	return nil
}
