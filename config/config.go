// Package config defines the application configuration and its TOML
// file format.
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// ServerConfig configures the HTTP listener.
type ServerConfig struct {
	Port            int   `toml:"port"`
	MaxRequestBytes int64 `toml:"max_request_bytes"`
}

// DataConfig locates the corpus.
type DataConfig struct {
	Dir            string `toml:"dir"`
	LocationColumn string `toml:"location_column"`
}

// SearchConfig tunes the search indexes.
type SearchConfig struct {
	MaxCompletions     int      `toml:"max_completions"`
	MaxCorrections     int      `toml:"max_corrections"`
	MaxEditDistance    int      `toml:"max_edit_distance"`
	DefaultTopWords    int      `toml:"default_top_words"`
	DefaultTopSearches int      `toml:"default_top_searches"`
	Stopwords          []string `toml:"stopwords"`
	SeedMinWeight      int      `toml:"seed_min_weight"`
	SeedMaxWeight      int      `toml:"seed_max_weight"`
}

// Config is the full application configuration.
type Config struct {
	Server ServerConfig `toml:"server"`
	Data   DataConfig   `toml:"data"`
	Search SearchConfig `toml:"search"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Port:            8080,
			MaxRequestBytes: 1 << 20,
		},
		Data: DataConfig{
			Dir:            "./data",
			LocationColumn: "Location",
		},
		Search: SearchConfig{
			MaxCompletions:     25,
			MaxCorrections:     5,
			MaxEditDistance:    2,
			DefaultTopWords:    50,
			DefaultTopSearches: 10,
			Stopwords:          []string{"https", "o", "cf", "bstatic", "k"},
			SeedMinWeight:      1,
			SeedMaxWeight:      50,
		},
	}
}

// Load reads a TOML config file, filling unset fields with defaults.
func Load(path string) (*Config, error) {
	cfg := Default()

	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("config file %s: %w", path, err)
	}
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the configuration for values the engine cannot run
// with.
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port %d out of range", c.Server.Port)
	}
	if c.Server.MaxRequestBytes < 1 {
		return fmt.Errorf("server.max_request_bytes must be positive")
	}
	if c.Data.Dir == "" {
		return fmt.Errorf("data.dir must not be empty")
	}
	if c.Data.LocationColumn == "" {
		return fmt.Errorf("data.location_column must not be empty")
	}
	if c.Search.MaxCorrections < 1 {
		return fmt.Errorf("search.max_corrections must be positive")
	}
	if c.Search.MaxEditDistance < 1 {
		return fmt.Errorf("search.max_edit_distance must be positive")
	}
	if c.Search.DefaultTopWords < 1 {
		return fmt.Errorf("search.default_top_words must be positive")
	}
	if c.Search.DefaultTopSearches < 1 {
		return fmt.Errorf("search.default_top_searches must be positive")
	}
	if c.Search.SeedMinWeight < 0 || c.Search.SeedMaxWeight < c.Search.SeedMinWeight {
		return fmt.Errorf("search seed weights invalid: min %d, max %d",
			c.Search.SeedMinWeight, c.Search.SeedMaxWeight)
	}
	return nil
}
