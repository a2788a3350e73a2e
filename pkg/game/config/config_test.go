package config

import (
	"strings"
	"testing"
	"time"
)

func TestParseEnvDefaults(t *testing.T) {
	cfg, err := ParseEnv()
	if err != nil {
		t.Fatalf("parse env: %v", err)
	}
	if cfg.Renderer != RendererTUI {
		t.Errorf("Renderer = %q, want %q", cfg.Renderer, RendererTUI)
	}
	if cfg.RecycleFor != 4*time.Second || cfg.CelebrateFor != 8*time.Second {
		t.Errorf("durations = %s/%s, want 4s/8s", cfg.RecycleFor, cfg.CelebrateFor)
	}
	if cfg.Seed != 0 || cfg.Content != "" || cfg.Locale != "en" {
		t.Errorf("unexpected defaults: %+v", cfg)
	}
}

func TestParseEnvOverrides(t *testing.T) {
	t.Setenv("SOLITAIRE_RENDERER", "ebiten")
	t.Setenv("SOLITAIRE_SEED", "42")
	t.Setenv("SOLITAIRE_CELEBRATE_FOR", "10s")

	cfg, err := ParseEnv()
	if err != nil {
		t.Fatalf("parse env: %v", err)
	}
	if cfg.Renderer != RendererEbiten || cfg.Seed != 42 || cfg.CelebrateFor != 10*time.Second {
		t.Errorf("ParseEnv() = %+v", cfg)
	}
}

func TestParseEnvError(t *testing.T) {
	t.Setenv("SOLITAIRE_SEED", "not-a-number")

	_, err := ParseEnv()
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "parse env:") {
		t.Fatalf("expected parse env prefix, got %v", err)
	}
}

func TestLoadFlagsOverrideEnv(t *testing.T) {
	t.Setenv("SOLITAIRE_RENDERER", "ebiten")
	t.Setenv("SOLITAIRE_SEED", "7")

	cfg, err := Load("solitaire", []string{"-renderer", "tui", "-recycle-for", "2s"})
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Renderer != RendererTUI {
		t.Errorf("Renderer = %q, want tui from the flag", cfg.Renderer)
	}
	if cfg.Seed != 7 {
		t.Errorf("Seed = %d, want 7 from the environment", cfg.Seed)
	}
	if cfg.RecycleFor != 2*time.Second {
		t.Errorf("RecycleFor = %s, want 2s", cfg.RecycleFor)
	}
}

func TestLoadRejectsBadFlag(t *testing.T) {
	if _, err := Load("solitaire", []string{"-renderer", "gtk"}); err == nil {
		t.Fatal("Load() error = nil, want unknown renderer")
	}
}

func TestValidate(t *testing.T) {
	valid := Config{Renderer: RendererTUI, Locale: "en", RecycleFor: 4 * time.Second, CelebrateFor: 8 * time.Second}
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"valid", func(*Config) {}, false},
		{"ebiten", func(c *Config) { c.Renderer = RendererEbiten }, false},
		{"unknown renderer", func(c *Config) { c.Renderer = "web" }, true},
		{"empty locale", func(c *Config) { c.Locale = "" }, true},
		{"zero recycle", func(c *Config) { c.RecycleFor = 0 }, true},
		{"negative celebrate", func(c *Config) { c.CelebrateFor = -time.Second }, true},
		{"recycle after hide", func(c *Config) { c.RecycleFor = 9 * time.Second }, true},
		{"equal durations", func(c *Config) { c.RecycleFor = c.CelebrateFor }, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid
			tt.mutate(&cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
