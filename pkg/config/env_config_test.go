package config

import (
	"strings"
	"testing"
)

func TestLoadEnvConfigDefaults(t *testing.T) {
	cfg, err := LoadEnvConfig()
	if err != nil {
		t.Fatalf("LoadEnvConfig() error: %v", err)
	}
	if cfg.ContentPath != DefaultContentPath {
		t.Errorf("ContentPath = %q, want %q", cfg.ContentPath, DefaultContentPath)
	}
	if cfg.AssetsDir != "." {
		t.Errorf("AssetsDir = %q, want %q", cfg.AssetsDir, ".")
	}
	if cfg.Verbose || cfg.ReducedEffects || cfg.Muted {
		t.Errorf("boolean flags should default to false: %+v", cfg)
	}
}

func TestLoadEnvConfigOverrides(t *testing.T) {
	t.Setenv("BIRTHDAY24_CONTENT", "/tmp/card.yaml")
	t.Setenv("BIRTHDAY24_REDUCED_EFFECTS", "true")
	t.Setenv("BIRTHDAY24_SEED", "42")

	cfg, err := LoadEnvConfig()
	if err != nil {
		t.Fatalf("LoadEnvConfig() error: %v", err)
	}
	if cfg.ContentPath != "/tmp/card.yaml" {
		t.Errorf("ContentPath = %q", cfg.ContentPath)
	}
	if !cfg.ReducedEffects {
		t.Error("ReducedEffects should be true")
	}
	if cfg.Seed != 42 {
		t.Errorf("Seed = %d, want 42", cfg.Seed)
	}
}

func TestParseEnvError(t *testing.T) {
	t.Setenv("BIRTHDAY24_SEED", "not-an-int")

	_, err := LoadEnvConfig()
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "parse env:") {
		t.Fatalf("expected parse env prefix, got %v", err)
	}
}
