package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"github.com/dmitrijs2005/farmsync/internal/flagx"
	"github.com/dmitrijs2005/farmsync/internal/timex"
)

// fileConfig is the on-disk form. It is pre-filled from the current Config
// so keys absent from the file keep their earlier value.
type fileConfig struct {
	ServerEndpointAddr  string         `json:"server_endpoint_addr" toml:"server_endpoint_addr"`
	DatabasePath        string         `json:"database_path" toml:"database_path"`
	LogLevel            string         `json:"log_level" toml:"log_level"`
	OnlineCheckInterval timex.Duration `json:"online_check_interval" toml:"online_check_interval"`
	ProbeTimeout        timex.Duration `json:"probe_timeout" toml:"probe_timeout"`
	SyncSuccessDisplay  timex.Duration `json:"sync_success_display" toml:"sync_success_display"`
	RemoteCallTimeout   timex.Duration `json:"remote_call_timeout" toml:"remote_call_timeout"`
	MaxRetries          int            `json:"max_retries" toml:"max_retries"`
	BackoffBase         timex.Duration `json:"backoff_base" toml:"backoff_base"`
	BackoffMax          timex.Duration `json:"backoff_max" toml:"backoff_max"`
	AttachmentBucket    string         `json:"attachment_bucket" toml:"attachment_bucket"`
}

// parseFile overlays cfg with the file named by -c/-config. Files ending in
// .toml are decoded as TOML, anything else as JSON.
func parseFile(cfg *Config, args []string) error {
	path := flagx.ConfigFileFromArgs(args)
	if path == "" {
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}

	fc := fileConfig{
		ServerEndpointAddr:  cfg.ServerEndpointAddr,
		DatabasePath:        cfg.DatabasePath,
		LogLevel:            cfg.LogLevel,
		OnlineCheckInterval: timex.Duration{Duration: cfg.OnlineCheckInterval},
		ProbeTimeout:        timex.Duration{Duration: cfg.ProbeTimeout},
		SyncSuccessDisplay:  timex.Duration{Duration: cfg.SyncSuccessDisplay},
		RemoteCallTimeout:   timex.Duration{Duration: cfg.RemoteCallTimeout},
		MaxRetries:          cfg.MaxRetries,
		BackoffBase:         timex.Duration{Duration: cfg.BackoffBase},
		BackoffMax:          timex.Duration{Duration: cfg.BackoffMax},
		AttachmentBucket:    cfg.AttachmentBucket,
	}

	if strings.EqualFold(filepath.Ext(path), ".toml") {
		err = toml.Unmarshal(data, &fc)
	} else {
		err = json.Unmarshal(data, &fc)
	}
	if err != nil {
		return fmt.Errorf("decode config %s: %w", path, err)
	}

	cfg.ServerEndpointAddr = fc.ServerEndpointAddr
	cfg.DatabasePath = fc.DatabasePath
	cfg.LogLevel = fc.LogLevel
	cfg.OnlineCheckInterval = fc.OnlineCheckInterval.Duration
	cfg.ProbeTimeout = fc.ProbeTimeout.Duration
	cfg.SyncSuccessDisplay = fc.SyncSuccessDisplay.Duration
	cfg.RemoteCallTimeout = fc.RemoteCallTimeout.Duration
	cfg.MaxRetries = fc.MaxRetries
	cfg.BackoffBase = fc.BackoffBase.Duration
	cfg.BackoffMax = fc.BackoffMax.Duration
	cfg.AttachmentBucket = fc.AttachmentBucket
	return nil
}
