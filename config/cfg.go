// Package config loads guidegen settings: embedded defaults overlaid with an
// optional YAML file.
package config

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/gaurav-prasanna/guidegen/core/layout"
	"github.com/gaurav-prasanna/guidegen/core/render"
)

//go:embed config.yaml
var defaultConfig []byte

type OutputConfig struct {
	Dir      string `yaml:"dir"`
	FileName string `yaml:"file_name"`
}

type BrandConfig struct {
	Label    string `yaml:"label"`
	Name     string `yaml:"name"`
	Subtitle string `yaml:"subtitle"`
	Monogram string `yaml:"monogram"`
	Tagline  string `yaml:"tagline"`
	URL      string `yaml:"url"`
	Version  string `yaml:"version"`
}

type Config struct {
	Output    OutputConfig  `yaml:"output"`
	Content   string        `yaml:"content"`
	Numbering string        `yaml:"numbering"`
	Brand     BrandConfig   `yaml:"brand"`
	Logging   LoggingConfig `yaml:"logging"`
}

// LoadConfiguration returns the defaults overlaid with the file at path.
// An empty path returns the defaults.
func LoadConfiguration(path string) (*Config, error) {
	cfg := &Config{}
	if err := unmarshal(defaultConfig, cfg); err != nil {
		return nil, fmt.Errorf("default configuration: %w", err)
	}
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading configuration: %w", err)
		}
		if err := unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("configuration %s: %w", path, err)
		}
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func unmarshal(data []byte, cfg *Config) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

// Validate checks values that cannot be fixed up later.
func (c *Config) Validate() error {
	if _, ok := render.ParseNumbering(c.Numbering); !ok {
		return fmt.Errorf("numbering must be \"fixed\" or \"derived\", got %q", c.Numbering)
	}
	if c.Output.FileName == "" {
		return errors.New("output file name is empty")
	}
	switch c.Logging.ConsoleLogger.Level {
	case "none", "normal", "debug":
	default:
		return fmt.Errorf("logging level must be one of none, normal, debug; got %q", c.Logging.ConsoleLogger.Level)
	}
	return nil
}

// NumberingMode returns the parsed numbering setting.
func (c *Config) NumberingMode() render.Numbering {
	n, _ := render.ParseNumbering(c.Numbering)
	return n
}

// LayoutBrand converts the brand section for the layout package.
func (c *Config) LayoutBrand() layout.Brand {
	return layout.Brand{
		Label:    c.Brand.Label,
		Name:     c.Brand.Name,
		Subtitle: c.Brand.Subtitle,
		Monogram: c.Brand.Monogram,
		Tagline:  c.Brand.Tagline,
		URL:      c.Brand.URL,
		Version:  c.Brand.Version,
	}
}

// Dump returns the effective configuration as YAML.
func Dump(cfg *Config) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("encoding configuration: %w", err)
	}
	return data, nil
}
