// Package config loads runtime configuration for the auth API client.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  3. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-a string     base URL of the auth API
//	-t duration   per-request timeout
//
// # JSON schema
//
//	{
//	  "server_endpoint_addr": "http://127.0.0.1:5000",
//	  "request_timeout": "5s"
//	}
package config
