// Package config handles loading and saving user configuration for the
// ipa tool.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/phonlab/ipa/internal/ipa"
	"github.com/phonlab/ipa/internal/symtab"
)

// Symbol table source kinds.
const (
	SourceEmbedded = "embedded"
	SourceCSV      = "csv"
	SourceSQLite   = "sqlite"
)

// TableConfig selects where the symbol reference table is loaded from.
type TableConfig struct {
	Source string `yaml:"source"` // embedded, csv, or sqlite
	Path   string `yaml:"path,omitempty"`
}

// Config holds all user configuration.
type Config struct {
	Table TableConfig `yaml:"table"`

	// ExtraSymbols are merged over the loaded table, shadowing records
	// with the same grapheme.
	ExtraSymbols []ipa.SymbolRecord `yaml:"extra_symbols,omitempty"`
}

// DefaultConfig returns the configuration used when no config file
// exists: the embedded table with no overlays.
func DefaultConfig() *Config {
	return &Config{Table: TableConfig{Source: SourceEmbedded}}
}

// Load reads configuration from a YAML file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}
	if cfg.Table.Source == "" {
		cfg.Table.Source = SourceEmbedded
	}
	return cfg, nil
}

// Save writes configuration to a YAML file.
func Save(path string, cfg *Config) error {
	out, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, out, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}

// LoadTable assembles the symbol table the configuration describes: the
// selected source plus any extra symbol overlays.
func (c *Config) LoadTable() (*symtab.Table, error) {
	var (
		table *symtab.Table
		err   error
	)
	switch c.Table.Source {
	case SourceEmbedded, "":
		table, err = symtab.Default()
	case SourceCSV:
		table, err = symtab.LoadCSV(c.Table.Path)
	case SourceSQLite:
		table, err = symtab.LoadSQLite(c.Table.Path)
	default:
		return nil, fmt.Errorf("unknown symbol table source %q", c.Table.Source)
	}
	if err != nil {
		return nil, err
	}

	if len(c.ExtraSymbols) == 0 {
		return table, nil
	}

	// The embedded table is shared; copy before overlaying.
	merged := symtab.New()
	merged.Merge(table)
	for i := range c.ExtraSymbols {
		rec := c.ExtraSymbols[i]
		if rec.Display == "" {
			rec.Display = rec.Symbol
		}
		if err := merged.Add(&rec); err != nil {
			return nil, fmt.Errorf("extra symbol %d: %w", i+1, err)
		}
	}
	return merged, nil
}

// GetConfigDir returns the default configuration directory.
func GetConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "ipa"), nil
}

// EnsureConfigDir creates the config directory if it doesn't exist.
func EnsureConfigDir() (string, error) {
	dir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", err
	}
	return dir, nil
}
