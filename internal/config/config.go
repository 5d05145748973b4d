// Package config loads the optional TOML configuration file. A missing file
// is not an error; every field falls back to DefaultConfig.
package config

import (
	"os"
	"time"

	"github.com/BurntSushi/toml"
)

type Config struct {
	Server     ServerConfig     `toml:"server"`
	Projection ProjectionConfig `toml:"projection"`
}

type ServerConfig struct {
	Host         string `toml:"host"`
	Port         int    `toml:"port"`
	ReadTimeout  string `toml:"read_timeout"`
	WriteTimeout string `toml:"write_timeout"`
}

type ProjectionConfig struct {
	// HorizonYears is the default horizon for requests that do not specify
	// projection_years. A projection covers HorizonYears+1 calendar years.
	HorizonYears int `toml:"horizon_years"`
}

func DefaultConfig() Config {
	return Config{
		Server: ServerConfig{
			Host:         "0.0.0.0",
			Port:         8080,
			ReadTimeout:  "30s",
			WriteTimeout: "30s",
		},
		Projection: ProjectionConfig{
			HorizonYears: 60,
		},
	}
}

// Load reads the config at path over the defaults. An empty path or a missing
// file yields DefaultConfig; a file that exists but fails to parse is an error.
func Load(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// ParseTimeout parses a duration string like "30s" or "2m", falling back on
// empty or invalid input.
func ParseTimeout(s string, fallback time.Duration) time.Duration {
	if s == "" {
		return fallback
	}
	d, err := time.ParseDuration(s)
	if err != nil {
		return fallback
	}
	return d
}
