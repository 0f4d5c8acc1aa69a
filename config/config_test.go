package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultIsValid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Errorf("default config invalid: %v", err)
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
[server]
port = 9090

[data]
dir = "/srv/hotels"

[search]
max_edit_distance = 1
stopwords = ["foo"]
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Server.Port != 9090 {
		t.Errorf("port = %d, want 9090", cfg.Server.Port)
	}
	if cfg.Data.Dir != "/srv/hotels" {
		t.Errorf("dir = %q", cfg.Data.Dir)
	}
	if cfg.Search.MaxEditDistance != 1 {
		t.Errorf("max_edit_distance = %d, want 1", cfg.Search.MaxEditDistance)
	}
	// Unset fields keep defaults.
	if cfg.Search.MaxCorrections != 5 {
		t.Errorf("max_corrections = %d, want default 5", cfg.Search.MaxCorrections)
	}
	if cfg.Data.LocationColumn != "Location" {
		t.Errorf("location_column = %q, want default", cfg.Data.LocationColumn)
	}
	if len(cfg.Search.Stopwords) != 1 || cfg.Search.Stopwords[0] != "foo" {
		t.Errorf("stopwords = %v, want [foo]", cfg.Search.Stopwords)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.toml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("[server]\nport = -1\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("expected validation error for negative port")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero edit distance", func(c *Config) { c.Search.MaxEditDistance = 0 }},
		{"empty data dir", func(c *Config) { c.Data.Dir = "" }},
		{"inverted seed weights", func(c *Config) { c.Search.SeedMinWeight = 10; c.Search.SeedMaxWeight = 2 }},
		{"port too large", func(c *Config) { c.Server.Port = 70000 }},
		{"zero top words", func(c *Config) { c.Search.DefaultTopWords = 0 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}
