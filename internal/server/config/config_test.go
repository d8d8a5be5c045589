package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoadFromArgs_Defaults(t *testing.T) {
	cfg, err := loadFromArgs(nil)
	require.NoError(t, err)

	assert.Equal(t, ":50051", cfg.EndpointAddrGRPC)
	assert.Equal(t, "operation-images", cfg.S3Bucket)
	assert.Equal(t, "http://127.0.0.1:9000", cfg.PublicBaseURL())
}

func TestParseFlags(t *testing.T) {
	cfg := &Config{}
	cfg.LoadDefaults()

	err := parseFlags(cfg, []string{"-a", ":6000", "-d", "postgres://x", "-w", "https://img.example.com/", "-v", "ignored"})
	require.NoError(t, err)

	assert.Equal(t, ":6000", cfg.EndpointAddrGRPC)
	assert.Equal(t, "postgres://x", cfg.DatabaseDSN)
	assert.Equal(t, "https://img.example.com", cfg.PublicBaseURL())
	assert.Equal(t, "admin", cfg.S3RootUser)
}

func TestParseFile(t *testing.T) {
	tests := []struct {
		name string
		file string
		body string
	}{
		{"json", "server.json", `{"endpoint_addr_grpc": ":7000", "s3_bucket": "images"}`},
		{"toml", "server.toml", "endpoint_addr_grpc = \":7000\"\ns3_bucket = \"images\"\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{}
			cfg.LoadDefaults()

			require.NoError(t, parseFile(cfg, []string{"-c", writeFile(t, tt.file, tt.body)}))
			assert.Equal(t, ":7000", cfg.EndpointAddrGRPC)
			assert.Equal(t, "images", cfg.S3Bucket)
			assert.Equal(t, "us-east-1", cfg.S3Region)
		})
	}
}

func TestParseFile_Errors(t *testing.T) {
	cfg := &Config{}
	cfg.LoadDefaults()

	require.Error(t, parseFile(cfg, []string{"-c", filepath.Join(t.TempDir(), "missing.json")}))
	require.Error(t, parseFile(cfg, []string{"-config=" + writeFile(t, "bad.json", "{")}))
}

func TestLoadFromArgs_FlagsOverrideFile(t *testing.T) {
	path := writeFile(t, "server.json", `{"endpoint_addr_grpc": ":7000"}`)

	cfg, err := loadFromArgs([]string{"-c", path, "-a", ":8000"})
	require.NoError(t, err)
	assert.Equal(t, ":8000", cfg.EndpointAddrGRPC)
}
