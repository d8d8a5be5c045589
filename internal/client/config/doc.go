// Package config loads runtime configuration for the farmsync field client.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional config file selected with -c or -config. A ".toml" extension
//     selects TOML, anything else is read as JSON.
//  3. Command-line flags (see parseFlags), which override earlier values.
//
// # File schema
//
// Durations use timex.Duration, so they can be strings like "15s" or integer
// nanoseconds:
//
//	{
//	  "server_endpoint_addr": "127.0.0.1:50051",
//	  "database_path": "/var/lib/farmsync/farmsync.db",
//	  "online_check_interval": "15s",
//	  "max_retries": 10,
//	  "backoff_base": "30s",
//	  "attachment_bucket": "operation-images"
//	}
package config
