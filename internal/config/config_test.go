package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "rps.yaml")
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}
	return path
}

func TestLoadFileMissing(t *testing.T) {
	cfg, err := LoadFile(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("Expected no error for a missing file, got %v", err)
	}
	if cfg.Strategy != "Random" || cfg.GeminiModel != DefaultModel || cfg.LogFile != "rps.log" {
		t.Errorf("Unexpected defaults: %+v", cfg)
	}
}

func TestLoadFile(t *testing.T) {
	path := writeConfig(t, "strategy: Most Used\nseed: 99\nlog_file: \"\"\n")
	cfg, err := LoadFile(path)
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}
	if cfg.Strategy != "Most Used" {
		t.Errorf("Expected strategy Most Used, got %q", cfg.Strategy)
	}
	if cfg.Seed != 99 {
		t.Errorf("Expected seed 99, got %d", cfg.Seed)
	}
	if cfg.LogFile != "" {
		t.Errorf("Expected logging disabled, got %q", cfg.LogFile)
	}
	if cfg.GeminiModel != DefaultModel {
		t.Errorf("Expected default model, got %q", cfg.GeminiModel)
	}
}

func TestLoadFileMalformed(t *testing.T) {
	path := writeConfig(t, "strategy: [unterminated\n")
	if _, err := LoadFile(path); err == nil {
		t.Error("Expected an error for malformed YAML")
	}
}

func TestLoadConfigEnvOverrides(t *testing.T) {
	path := writeConfig(t, "strategy: Cheat\nseed: 1\n")
	t.Setenv("RPS_CONFIG", path)
	t.Setenv("RPS_STRATEGY", "Last Used")
	t.Setenv("RPS_SEED", "1234")
	t.Setenv("GEMINI_API_KEY", "test-key")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}
	if cfg.Strategy != "Last Used" {
		t.Errorf("Expected env strategy, got %q", cfg.Strategy)
	}
	if cfg.Seed != 1234 {
		t.Errorf("Expected env seed, got %d", cfg.Seed)
	}
	if cfg.GeminiAPIKey != "test-key" {
		t.Errorf("Expected env API key, got %q", cfg.GeminiAPIKey)
	}
}

func TestLoadConfigBadSeed(t *testing.T) {
	t.Setenv("RPS_CONFIG", filepath.Join(t.TempDir(), "missing.yaml"))
	t.Setenv("RPS_SEED", "soon")
	if _, err := LoadConfig(); err == nil {
		t.Error("Expected an error for a non-integer seed")
	}
}
