package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// FileName is the workspace configuration file.
const FileName = "pagosx.yaml"

// Config represents the top-level pagosx.yaml configuration. It is immutable
// after load; per-run values (input file, mode) stay with the command.
type Config struct {
	Constants   ConstantsConfig `yaml:"constants"`
	Dirs        DirsConfig      `yaml:"dirs"`
	InputFilter string          `yaml:"input_filter"`
	TablesFile  string          `yaml:"tables_file"`
}

// ConstantsConfig holds the fixed fiscal reporting values written into the
// enriched columns, plus the reporting base currency and worksheet name.
type ConstantsConfig struct {
	Impuesto       string `yaml:"impuesto"`
	TipoFactor     string `yaml:"tipo_factor"`
	ObjetoImpuesto string `yaml:"objeto_impuesto"`
	BaseCurrency   string `yaml:"base_currency"`
	Sheet          string `yaml:"sheet"`
}

// DirsConfig locates the input and output directories, relative to the
// workspace root.
type DirsConfig struct {
	Input  string `yaml:"input"`
	Output string `yaml:"output"`
}

// Load reads a pagosx.yaml file from disk.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	applyDefaults(&cfg)
	return &cfg, nil
}

// Save writes a Config to a YAML file.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Default returns a Config with the standard defaults.
func Default() *Config {
	cfg := &Config{}
	applyDefaults(cfg)
	return cfg
}

// applyDefaults fills any field the file left empty.
func applyDefaults(cfg *Config) {
	if cfg.Constants.Impuesto == "" {
		cfg.Constants.Impuesto = "002"
	}
	if cfg.Constants.TipoFactor == "" {
		cfg.Constants.TipoFactor = "Tasa"
	}
	if cfg.Constants.ObjetoImpuesto == "" {
		cfg.Constants.ObjetoImpuesto = "02"
	}
	if cfg.Constants.BaseCurrency == "" {
		cfg.Constants.BaseCurrency = "MXN"
	}
	if cfg.Constants.Sheet == "" {
		cfg.Constants.Sheet = "edicom"
	}
	if cfg.Dirs.Input == "" {
		cfg.Dirs.Input = filepath.Join("files", "input")
	}
	if cfg.Dirs.Output == "" {
		cfg.Dirs.Output = filepath.Join("files", "output")
	}
	if cfg.InputFilter == "" {
		cfg.InputFilter = "!(*processed*)"
	}
	if cfg.TablesFile == "" {
		cfg.TablesFile = "tables.yaml"
	}
}
