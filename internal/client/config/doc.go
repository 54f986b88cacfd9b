// Package config loads runtime configuration for the taskdeck CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Environment variables (see parseEnv), optionally seeded from a .env
//     file via godotenv.
//  3. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  4. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-a string   base URL of the backend REST API
//	-t int      request timeout (seconds)
//	-i int      online status check interval (seconds)
//	-s string   sqlite DSN of the local state file
//
// # JSON schema
//
// The JSON loader uses timex.Duration for intervals, so values can be either
// strings like "3s" or integer nanoseconds:
//
//	{
//	  "server_base_url": "http://localhost:8001",
//	  "request_timeout": "10s",
//	  "online_check_interval": "3s",
//	  "state_dsn": "/tmp/taskdeck.db"
//	}
//
// # Environment variables
//
//	TASKDECK_SERVER_BASE_URL
//	TASKDECK_REQUEST_TIMEOUT        duration string, e.g. "10s"
//	TASKDECK_ONLINE_CHECK_INTERVAL  duration string, e.g. "3s"
//	TASKDECK_STATE_DSN
package config
