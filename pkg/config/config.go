// Package config loads the advisor's source configuration from an optional
// YAML file. Command-line flags override file values.
package config

import (
	"fmt"
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"
)

// Source kinds accepted by the Source field.
const (
	SourceCSV      = "csv"
	SourcePostgres = "postgres"
)

type CSVConfig struct {
	Path string `yaml:"path"`
}

type PostgresConfig struct {
	URL string `yaml:"url"`
}

type Config struct {
	Source   string         `yaml:"source"`
	CSV      CSVConfig      `yaml:"csv"`
	Postgres PostgresConfig `yaml:"postgres"`
}

// Default returns the configuration used when no file or flags are given:
// a CSV source reading courses.csv in the working directory.
func Default() Config {
	return Config{
		Source: SourceCSV,
		CSV:    CSVConfig{Path: "courses.csv"},
	}
}

// Load reads path and merges it over the defaults. A missing file is not an
// error when path is empty; a named file must exist.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, errors.Wrapf(err, "reading config %s", path)
	}
	if err := yaml.UnmarshalStrict(data, &cfg); err != nil {
		return Config{}, errors.Wrapf(err, "parsing config %s", path)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	switch c.Source {
	case SourceCSV, SourcePostgres:
		return nil
	default:
		return fmt.Errorf("unknown source kind %q (want %s or %s)", c.Source, SourceCSV, SourcePostgres)
	}
}
