// Package config loads runtime configuration for the bookit CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file selected with -c or -config (see parseJson).
//  3. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-a string   base URL of the booking API
//	-i int      online status check interval (seconds)
//	-d string   path of the local SQLite database
//	-l string   log level: debug, info, warn, error
//
// # JSON schema
//
// Durations use timex.Duration, so they can be strings like "3s" or integer
// nanoseconds:
//
//	{
//	  "server_base_url": "https://api.example.com/dev",
//	  "online_check_interval": "3s",
//	  "database_path": "bookit.db",
//	  "request_timeout": "10s",
//	  "requests_per_second": 5,
//	  "log_level": "info",
//	  "log_backend": "slog"
//	}
//
// Environment variables are not read.
package config
