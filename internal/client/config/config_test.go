package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func defaults() *Config {
	c := &Config{}
	c.LoadDefaults()
	return c
}

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoadDefaults(t *testing.T) {
	c := defaults()

	assert.Equal(t, "127.0.0.1:50051", c.ServerEndpointAddr)
	assert.Equal(t, 15*time.Second, c.OnlineCheckInterval)
	assert.Equal(t, 5*time.Second, c.SyncSuccessDisplay)
	assert.Equal(t, 30*time.Second, c.RemoteCallTimeout)
	assert.Equal(t, 10, c.MaxRetries)
	assert.Equal(t, "operation-images", c.AttachmentBucket)
}

func TestLoadFromArgs_NoArgs(t *testing.T) {
	cfg, err := loadFromArgs(nil)
	require.NoError(t, err)
	assert.Empty(t, cmp.Diff(defaults(), cfg))
}

func TestParseFlags(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		want    func(c *Config)
		wantErr bool
	}{
		{
			name: "address and interval",
			args: []string{"-a", "127.0.0.1:9090", "-i", "20"},
			want: func(c *Config) {
				c.ServerEndpointAddr = "127.0.0.1:9090"
				c.OnlineCheckInterval = 20 * time.Second
			},
		},
		{
			name: "retries timeout bucket",
			args: []string{"-r", "0", "-t", "5s", "-b", "imgs", "-d", "/tmp/x.db"},
			want: func(c *Config) {
				c.MaxRetries = 0
				c.RemoteCallTimeout = 5 * time.Second
				c.AttachmentBucket = "imgs"
				c.DatabasePath = "/tmp/x.db"
			},
		},
		{
			name: "unknown flags are ignored",
			args: []string{"-z", "1", "-a", "h:1"},
			want: func(c *Config) { c.ServerEndpointAddr = "h:1" },
		},
		{name: "bad interval", args: []string{"-i", "abc"}, wantErr: true},
		{name: "zero interval", args: []string{"-i", "0"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := defaults()
			err := parseFlags(cfg, tt.args)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)

			want := defaults()
			tt.want(want)
			assert.Empty(t, cmp.Diff(want, cfg))
		})
	}
}

func TestParseFile_JSON(t *testing.T) {
	path := writeFile(t, "cfg.json", `{
		"server_endpoint_addr": "www.example:9000",
		"online_check_interval": "10s",
		"backoff_base": 1000000000
	}`)

	cfg := defaults()
	require.NoError(t, parseFile(cfg, []string{"-config", path}))

	assert.Equal(t, "www.example:9000", cfg.ServerEndpointAddr)
	assert.Equal(t, 10*time.Second, cfg.OnlineCheckInterval)
	assert.Equal(t, time.Second, cfg.BackoffBase)
	assert.Equal(t, "operation-images", cfg.AttachmentBucket, "absent keys keep defaults")
}

func TestParseFile_TOML(t *testing.T) {
	path := writeFile(t, "cfg.toml", `
server_endpoint_addr = "field-gw:50051"
max_retries = 3
sync_success_display = "2s"
`)

	cfg := defaults()
	require.NoError(t, parseFile(cfg, []string{"-c", path}))

	assert.Equal(t, "field-gw:50051", cfg.ServerEndpointAddr)
	assert.Equal(t, 3, cfg.MaxRetries)
	assert.Equal(t, 2*time.Second, cfg.SyncSuccessDisplay)
	assert.Equal(t, 15*time.Second, cfg.OnlineCheckInterval)
}

func TestParseFile_Errors(t *testing.T) {
	cfg := defaults()
	require.Error(t, parseFile(cfg, []string{"-c", filepath.Join(t.TempDir(), "missing.json")}))

	bad := writeFile(t, "bad.json", `{ this is not valid json`)
	require.Error(t, parseFile(cfg, []string{"-c", bad}))
}

func TestLoadFromArgs_FlagsOverrideFile(t *testing.T) {
	path := writeFile(t, "cfg.json", `{"server_endpoint_addr": "from-file:1", "max_retries": 4}`)

	cfg, err := loadFromArgs([]string{"-c", path, "-a", "from-flag:2"})
	require.NoError(t, err)

	assert.Equal(t, "from-flag:2", cfg.ServerEndpointAddr)
	assert.Equal(t, 4, cfg.MaxRetries)
}

func TestLoadFromArgs_RejectsZeroDurationsFromFile(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{"interval", `online_check_interval = "0s"`, "online check interval"},
		{"check timeout", `probe_timeout = "0s"`, "connectivity check timeout"},
		{"negative backoff", `backoff_base = "-1s"`, "backoff base"},
		{"negative retries", `max_retries = -1`, "max retries"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFile(t, "cfg.toml", tt.body)

			_, err := loadFromArgs([]string{"-c", path})
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestValidate(t *testing.T) {
	require.NoError(t, defaults().Validate())

	c := defaults()
	c.MaxRetries = 0
	c.RemoteCallTimeout = 0
	c.BackoffBase = 0
	require.NoError(t, c.Validate(), "zero disables these settings")

	c = defaults()
	c.OnlineCheckInterval = 0
	c.ProbeTimeout = -time.Second
	err := c.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "online check interval")
	assert.Contains(t, err.Error(), "connectivity check timeout")
}
