package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/tatianab/rps-game/internal/strategy"
)

const (
	DefaultPath  = "rps.yaml"
	DefaultModel = "gemini-2.5-flash"
)

// Config holds the application configuration.
type Config struct {
	GeminiAPIKey string `yaml:"gemini_api_key"`
	GeminiModel  string `yaml:"gemini_model"`
	Strategy     string `yaml:"strategy"`
	Seed         int64  `yaml:"seed"` // 0 means seed from the clock
	LogFile      string `yaml:"log_file"`
}

func defaults() *Config {
	return &Config{
		GeminiModel: DefaultModel,
		Strategy:    strategy.RandomName,
		LogFile:     "rps.log",
	}
}

// LoadConfig reads the YAML file named by RPS_CONFIG (rps.yaml if unset) and
// then applies environment overrides. The file is optional.
func LoadConfig() (*Config, error) {
	path := os.Getenv("RPS_CONFIG")
	if path == "" {
		path = DefaultPath
	}
	cfg, err := LoadFile(path)
	if err != nil {
		return nil, err
	}
	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadFile reads a YAML config on top of the defaults. A missing file is not
// an error.
func LoadFile(path string) (*Config, error) {
	cfg := defaults()
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if cfg.GeminiModel == "" {
		cfg.GeminiModel = DefaultModel
	}
	return cfg, nil
}

func (c *Config) applyEnv() error {
	if v := os.Getenv("GEMINI_API_KEY"); v != "" {
		c.GeminiAPIKey = v
	}
	if v := os.Getenv("RPS_STRATEGY"); v != "" {
		c.Strategy = v
	}
	if v, ok := os.LookupEnv("RPS_LOG_FILE"); ok {
		c.LogFile = v
	}
	if v := os.Getenv("RPS_SEED"); v != "" {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("RPS_SEED must be an integer: %w", err)
		}
		c.Seed = seed
	}
	return nil
}
