package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.API.BaseURL != "http://localhost:8000" {
		t.Errorf("BaseURL = %q", cfg.API.BaseURL)
	}
	if cfg.API.ParsedTimeout() != 15*time.Second {
		t.Errorf("ParsedTimeout = %v", cfg.API.ParsedTimeout())
	}
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := "api:\n  base_url: https://scout.example.com\n  timeout: 5s\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.API.BaseURL != "https://scout.example.com" {
		t.Errorf("BaseURL = %q", cfg.API.BaseURL)
	}
	if cfg.API.ParsedTimeout() != 5*time.Second {
		t.Errorf("ParsedTimeout = %v", cfg.API.ParsedTimeout())
	}
}

func TestEnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("api:\n  base_url: https://file.example.com\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("SCOUT_API_URL", "https://env.example.com")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.API.BaseURL != "https://env.example.com" {
		t.Errorf("BaseURL = %q, env must win over file", cfg.API.BaseURL)
	}
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "config.yaml")
	cfg := DefaultConfig()
	cfg.Export.Dir = "/tmp/reports"
	if err := cfg.Save(path); err != nil {
		t.Fatalf("Save: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if loaded.Export.Dir != "/tmp/reports" {
		t.Errorf("Export.Dir = %q", loaded.Export.Dir)
	}
}

func TestParsedDurationFallbacks(t *testing.T) {
	api := APIConfig{Timeout: "garbage", EvaluateTimeout: "-3s"}
	if api.ParsedTimeout() != 15*time.Second {
		t.Errorf("bad timeout did not fall back: %v", api.ParsedTimeout())
	}
	if api.ParsedEvaluateTimeout() != 180*time.Second {
		t.Errorf("negative timeout did not fall back: %v", api.ParsedEvaluateTimeout())
	}
}
