package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
)

func TestDefaultIsValid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Fatal(err)
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "krojanty.json")
	if err := os.WriteFile(path, []byte(`{"max_depth": 6, "log_level": "debug"}`), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.MaxDepth != 6 || cfg.Level() != zerolog.DebugLevel {
		t.Fatalf("file values not applied: %+v", cfg)
	}
	if cfg.Addr != Default().Addr || cfg.TTSizePow != 17 {
		t.Fatalf("defaults lost: %+v", cfg)
	}

	if cfg, err := Load(""); err != nil || cfg != Default() {
		t.Fatalf("empty path: %+v %v", cfg, err)
	}
	if _, err := Load(filepath.Join(dir, "missing.json")); err == nil {
		t.Fatal("expected error for a missing file")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"depth too small", func(c *Config) { c.MaxDepth = 0 }},
		{"depth too large", func(c *Config) { c.MaxDepth = 9 }},
		{"tt too small", func(c *Config) { c.TTSizePow = 4 }},
		{"tt too large", func(c *Config) { c.TTSizePow = 30 }},
		{"turn limit", func(c *Config) { c.TurnLimit = 0 }},
		{"delay", func(c *Config) { c.AIDelayMs = -1 }},
		{"log level", func(c *Config) { c.LogLevel = "loud" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			if err := cfg.Validate(); err == nil {
				t.Fatal("expected a validation error")
			}
		})
	}
}

func TestStore(t *testing.T) {
	s := NewStore(Default())
	cfg := s.Get()
	cfg.MaxDepth = 2
	if err := s.Update(cfg); err != nil {
		t.Fatal(err)
	}
	if s.Get().MaxDepth != 2 {
		t.Fatal("update not visible")
	}
	cfg.MaxDepth = 0
	if err := s.Update(cfg); err == nil {
		t.Fatal("invalid config accepted")
	}
	if s.Get().MaxDepth != 2 {
		t.Fatal("invalid update leaked")
	}
}
