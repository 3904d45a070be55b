package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// DefaultFile is the config file looked up in the working directory.
const DefaultFile = "tally.yaml"

// Environment variables that override the file.
const (
	EnvFile     = "TALLY_FILE"
	EnvCurrency = "TALLY_CURRENCY"
	EnvLogLevel = "TALLY_LOG_LEVEL"
)

// Config represents the top-level tally.yaml configuration.
type Config struct {
	Storage StorageConfig `yaml:"storage"`
	Report  ReportConfig  `yaml:"report"`
	Log     LogConfig     `yaml:"log"`
}

// StorageConfig locates the records file.
type StorageConfig struct {
	Path string `yaml:"path"`
}

// ReportConfig controls how amounts and reports are displayed.
type ReportConfig struct {
	Currency string `yaml:"currency"` // ISO 4217 code, display only
	Style    string `yaml:"style"`    // glamour style: auto, dark, light, notty
}

// LogConfig sets the minimum log level (debug, info, warn, error).
type LogConfig struct {
	Level string `yaml:"level"`
}

// Load reads a tally.yaml file from disk. Fields left out of the file keep
// their defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return cfg, nil
}

// LoadOrDefault is Load, but a missing file yields the defaults.
func LoadOrDefault(path string) (*Config, error) {
	cfg, err := Load(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}
	return cfg, err
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

// Default returns a Config with sensible defaults for a new ledger.
func Default() *Config {
	return &Config{
		Storage: StorageConfig{
			Path: "records.txt",
		},
		Report: ReportConfig{
			Currency: "TWD",
			Style:    "auto",
		},
		Log: LogConfig{
			Level: "warn",
		},
	}
}

// LoadDotEnv loads variables from the given .env files (default ".env")
// without overriding ones already set. Missing files are ignored.
func LoadDotEnv(files ...string) {
	_ = godotenv.Load(files...)
}

// ApplyEnv overrides cfg with any TALLY_* variables that are set.
func ApplyEnv(cfg *Config) {
	if v := os.Getenv(EnvFile); v != "" {
		cfg.Storage.Path = v
	}
	if v := os.Getenv(EnvCurrency); v != "" {
		cfg.Report.Currency = v
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		cfg.Log.Level = v
	}
}
