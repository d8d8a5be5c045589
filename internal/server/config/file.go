package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"github.com/dmitrijs2005/farmsync/internal/flagx"
)

type fileConfig struct {
	EndpointAddrGRPC string `json:"endpoint_addr_grpc" toml:"endpoint_addr_grpc"`
	DatabaseDSN      string `json:"database_dsn" toml:"database_dsn"`
	LogLevel         string `json:"log_level" toml:"log_level"`
	S3RootUser       string `json:"s3_root_user" toml:"s3_root_user"`
	S3RootPassword   string `json:"s3_root_password" toml:"s3_root_password"`
	S3Bucket         string `json:"s3_bucket" toml:"s3_bucket"`
	S3Region         string `json:"s3_region" toml:"s3_region"`
	S3BaseEndpoint   string `json:"s3_base_endpoint" toml:"s3_base_endpoint"`
	S3PublicBaseURL  string `json:"s3_public_base_url" toml:"s3_public_base_url"`
	PlotsFile        string `json:"plots_file" toml:"plots_file"`
}

// parseFile loads the file named by -c or -config into cfg. Keys missing
// from the file keep their current values.
func parseFile(cfg *Config, args []string) error {
	path := flagx.ConfigFileFromArgs(args)
	if path == "" {
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}

	fc := fileConfig(*cfg)
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		err = toml.Unmarshal(data, &fc)
	} else {
		err = json.Unmarshal(data, &fc)
	}
	if err != nil {
		return fmt.Errorf("decode config %s: %w", path, err)
	}

	*cfg = Config(fc)
	return nil
}
