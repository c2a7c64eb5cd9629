package config

import (
	"flag"
	"fmt"
	"os"

	"github.com/dmitrijs2005/authapi/internal/flagx"
)

// ValueFlags lists the client flags that consume the next argument.
var ValueFlags = []string{"-a", "-t", "-c", "-config"}

// parseFlags populates selected Config fields from command-line flags.
//
//	-a string     base URL of the server
//	-t duration   request timeout (e.g. "3s")
func parseFlags(cfg *Config) error {
	// Filter args to include only those handled here.
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-t"})

	fs := flag.NewFlagSet("client", flag.ContinueOnError)

	fs.StringVar(&cfg.ServerEndpointAddr, "a", cfg.ServerEndpointAddr, "base URL of the server")
	fs.DurationVar(&cfg.RequestTimeout, "t", cfg.RequestTimeout, "request timeout")

	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("parse flags: %w", err)
	}
	return nil
}
