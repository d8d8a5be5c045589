package services

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"github.com/dmitrijs2005/farmsync/internal/server/models"
)

type catalogFile struct {
	Plots []struct {
		ID     string  `json:"id" toml:"id"`
		Name   string  `json:"name" toml:"name"`
		Crop   string  `json:"crop" toml:"crop"`
		AreaHa float64 `json:"area_ha" toml:"area_ha"`
	} `json:"plots" toml:"plots"`
}

// LoadCatalog reads a plot catalog. Files ending in .toml are decoded as
// TOML ([[plots]] tables), anything else as JSON ({"plots": [...]}).
func LoadCatalog(path string) ([]*models.Plot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog %s: %w", path, err)
	}

	var f catalogFile
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		err = toml.Unmarshal(data, &f)
	} else {
		err = json.Unmarshal(data, &f)
	}
	if err != nil {
		return nil, fmt.Errorf("decode catalog %s: %w", path, err)
	}

	plots := make([]*models.Plot, 0, len(f.Plots))
	for _, p := range f.Plots {
		plots = append(plots, &models.Plot{ID: p.ID, Name: p.Name, Crop: p.Crop, AreaHa: p.AreaHa})
	}
	return plots, nil
}
