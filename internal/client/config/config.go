package config

import (
	"errors"
	"fmt"
	"os"
	"time"
)

// Config holds runtime settings for the farmsync field client.
//
// Durations are time.Duration; config files may carry them as "15s" or as
// integer nanoseconds (see timex.Duration).
type Config struct {
	ServerEndpointAddr string
	DatabasePath       string
	LogLevel           string

	// OnlineCheckInterval bounds how long a restored connection can go
	// unnoticed when the host sends no push signal.
	OnlineCheckInterval time.Duration
	ProbeTimeout        time.Duration

	SyncSuccessDisplay time.Duration
	RemoteCallTimeout  time.Duration

	// MaxRetries parks an entry after this many failed attempts; 0 disables the cap.
	MaxRetries  int
	BackoffBase time.Duration
	BackoffMax  time.Duration

	AttachmentBucket string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerEndpointAddr = "127.0.0.1:50051"
	c.DatabasePath = "farmsync.db"
	c.LogLevel = "info"
	c.OnlineCheckInterval = 15 * time.Second
	c.ProbeTimeout = 3 * time.Second
	c.SyncSuccessDisplay = 5 * time.Second
	c.RemoteCallTimeout = 30 * time.Second
	c.MaxRetries = 10
	c.BackoffBase = 30 * time.Second
	c.BackoffMax = 30 * time.Minute
	c.AttachmentBucket = "operation-images"
}

// LoadConfig builds a Config from defaults, the optional config file, and
// command-line flags, in that order of precedence.
func LoadConfig() (*Config, error) {
	return loadFromArgs(os.Args[1:])
}

func loadFromArgs(args []string) (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()
	if err := parseFile(cfg, args); err != nil {
		return nil, err
	}
	if err := parseFlags(cfg, args); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate rejects settings the client cannot run with. Zero is allowed
// where it means "disabled" and rejected where it would stall the monitor.
func (c *Config) Validate() error {
	var errs []error
	if c.OnlineCheckInterval <= 0 {
		errs = append(errs, fmt.Errorf("online check interval must be positive, got %s", c.OnlineCheckInterval))
	}
	if c.ProbeTimeout <= 0 {
		errs = append(errs, fmt.Errorf("connectivity check timeout must be positive, got %s", c.ProbeTimeout))
	}
	if c.MaxRetries < 0 {
		errs = append(errs, fmt.Errorf("max retries must not be negative, got %d", c.MaxRetries))
	}
	for name, d := range map[string]time.Duration{
		"sync success display": c.SyncSuccessDisplay,
		"remote call timeout":  c.RemoteCallTimeout,
		"backoff base":         c.BackoffBase,
		"backoff max":          c.BackoffMax,
	} {
		if d < 0 {
			errs = append(errs, fmt.Errorf("%s must not be negative, got %s", name, d))
		}
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}
