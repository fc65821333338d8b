// Package config loads per-column transform parameters from a YAML file, so
// thresholds and category counts are configuration rather than constants
// baked into calling code.
package config

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/YuminosukeSato/tabprep/pkg/errors"
)

// ColumnConfig holds the transform parameters for one column. Zero values
// mean "not configured"; validation only applies to set values.
type ColumnConfig struct {
	// Name is the column name the parameters apply to.
	Name string `yaml:"name"`

	// RareThreshold is the rare-label grouping proportion in (0, 1].
	RareThreshold float64 `yaml:"rare_threshold"`

	// TopK is the number of categories the dummy encoder keeps.
	TopK int `yaml:"top_k"`

	// Sentinel overrides the rare-label replacement category.
	Sentinel string `yaml:"sentinel"`
}

// Config is the root of a tabprep YAML configuration file.
type Config struct {
	// MissingMarkers override the default set of raw values read as missing.
	MissingMarkers []string `yaml:"missing_markers"`

	// Columns holds per-column transform parameters.
	Columns []ColumnConfig `yaml:"columns"`
}

// Load reads and validates a YAML configuration file.
func Load(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "reading config %s", path)
	}
	return Parse(raw)
}

// Parse decodes and validates YAML configuration bytes.
func Parse(raw []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return nil, errors.Wrap(err, "parsing config")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks every configured value; unset values pass.
func (c *Config) Validate() error {
	seen := make(map[string]bool, len(c.Columns))
	for _, col := range c.Columns {
		if col.Name == "" {
			return errors.NewValidationError("columns.name", "must not be empty", col.Name)
		}
		if seen[col.Name] {
			return errors.NewValidationError("columns.name", "duplicate column entry", col.Name)
		}
		seen[col.Name] = true
		if col.RareThreshold != 0 && (col.RareThreshold < 0 || col.RareThreshold > 1) {
			return errors.NewValidationError("rare_threshold", "must be a proportion in (0, 1]", col.RareThreshold)
		}
		if col.TopK < 0 {
			return errors.NewValidationError("top_k", "must be at least 1 when set", col.TopK)
		}
	}
	return nil
}

// Column returns the configuration entry for the named column.
func (c *Config) Column(name string) (ColumnConfig, bool) {
	for _, col := range c.Columns {
		if col.Name == name {
			return col, true
		}
	}
	return ColumnConfig{}, false
}
