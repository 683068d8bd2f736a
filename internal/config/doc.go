// Package config loads runtime configuration for the policykeeper CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file selected with -c or -config.
//  3. Command-line flags, which override earlier values.
//
// Supported flags
//
//	-d string   SQLite database file
//	-l string   default message language (en or hi)
//	-i int      reminder scan interval (minutes)
//	-o string   directory for exports and backups
//	-s string   share outbox directory (empty disables sharing)
//	-cc string  country code prefixed to 10-digit numbers in links
//	-v string   log level (debug, info, warn, error)
//	-once       notify only once per record and day offset
//	-login      require a signed-in account before other commands
//	-hash string  password storage for accounts (plain or bcrypt)
//
// # JSON schema
//
// Intervals use timex.Duration, so they can be strings like "1h" or integer
// nanoseconds. Keys that are absent keep their current value:
//
//	{
//	  "db_path": "policykeeper.db",
//	  "language": "hi",
//	  "scan_interval": "1h",
//	  "export_dir": "exports",
//	  "share_dir": "",
//	  "country_code": "91",
//	  "log_level": "info",
//	  "log_format": "text",
//	  "notify_once_per_offset": false,
//	  "require_login": false,
//	  "password_hash": "plain"
//	}
//
// The package does not read environment variables.
package config
