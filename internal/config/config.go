package config

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"
)

// Config is the complete tool configuration. Values come from environment
// variables with the UVVIS prefix, optionally overridden by a YAML file
// (uvvis.yaml next to the working directory, or UVVIS_CONFIG_FILE).
type Config struct {
	Logging LoggingConfig `yaml:"logging" envconfig:"LOGGING"`
	Paths   PathsConfig   `yaml:"paths" envconfig:"PATHS"`
	Export  ExportConfig  `yaml:"export" envconfig:"EXPORT"`
}

// LoggingConfig controls the slog setup shared by the command line tools.
type LoggingConfig struct {
	Level    string `yaml:"level" envconfig:"LEVEL" default:"info" validate:"oneof=debug info warn error"`
	Output   string `yaml:"output" envconfig:"OUTPUT" default:"console" validate:"oneof=console file both"`
	FilePath string `yaml:"file_path" envconfig:"FILE_PATH" default:"logs/uvvis.log"`
}

// PathsConfig contains the file system layout.
type PathsConfig struct {
	DataDir    string `yaml:"data_dir" envconfig:"DATA_DIR" default:"data"`
	ReportsDir string `yaml:"reports_dir" envconfig:"REPORTS_DIR" default:"reports"`
	LogsDir    string `yaml:"logs_dir" envconfig:"LOGS_DIR" default:"logs"`
}

// ExportConfig controls the spectrum export writers.
type ExportConfig struct {
	Format    string `yaml:"format" envconfig:"FORMAT" default:"csv" validate:"oneof=csv xlsx both"`
	BOMPrefix bool   `yaml:"bom_prefix" envconfig:"BOM_PREFIX" default:"true"`
	Workers   int    `yaml:"workers" envconfig:"WORKERS" default:"4" validate:"min=1,max=64"`
}

// Load builds the configuration: struct-tag defaults and environment first,
// then the YAML file if one exists, then validation.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("UVVIS", &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config from env: %w", err)
	}

	configFile := configFilePath()
	if _, err := os.Stat(configFile); err == nil {
		if err := loadFromFile(configFile, &cfg); err != nil {
			return nil, fmt.Errorf("failed to load config from file: %w", err)
		}
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return &cfg, nil
}

// configFilePath returns the YAML config location, honoring
// UVVIS_CONFIG_FILE.
func configFilePath() string {
	if p := os.Getenv("UVVIS_CONFIG_FILE"); p != "" {
		return p
	}
	return "uvvis.yaml"
}

// loadFromFile overlays YAML file values onto cfg.
func loadFromFile(filePath string, cfg *Config) error {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(data, cfg)
}

// validate checks the loaded configuration against the struct tags.
func (c *Config) validate() error {
	return validator.New().Struct(c)
}
