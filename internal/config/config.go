package config

import (
	"os"
	"strconv"

	"gopkg.in/yaml.v2"
)

type Config struct {
	Server struct {
		Host string `yaml:"host"`
		Port int    `yaml:"port"`
		Env  string `yaml:"env"`
	} `yaml:"server"`

	Upload struct {
		MaxSize      int64 `yaml:"max_size"`      // Max raw image size in bytes
		MaxWidth     int   `yaml:"max_width"`     // Downscale target width
		ImageQuality int   `yaml:"image_quality"` // JPEG quality (1-100)
	} `yaml:"upload"`

	// Seed loads the demo dataset at startup.
	Seed bool `yaml:"seed"`
}

// Load reads the yaml file at CONFIG_PATH (default config/config.yaml) when
// it exists, then applies env overrides. With no file and no env vars the
// defaults are usable as-is, which is what tests rely on.
func Load() (*Config, error) {
	cfg := defaults()

	path := os.Getenv("CONFIG_PATH")
	if path == "" {
		path = "config/config.yaml"
	}
	if f, err := os.Open(path); err == nil {
		defer f.Close()
		if err := yaml.NewDecoder(f).Decode(cfg); err != nil {
			return nil, err
		}
	}

	if v := os.Getenv("SERVER_HOST"); v != "" {
		cfg.Server.Host = v
	}
	if v := os.Getenv("SERVER_PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			cfg.Server.Port = port
		}
	}
	if v := os.Getenv("SERVER_ENV"); v != "" {
		cfg.Server.Env = v
	}
	if v := os.Getenv("SEED_DEMO_DATA"); v != "" {
		cfg.Seed = v == "true" || v == "1"
	}

	return cfg, nil
}

func defaults() *Config {
	cfg := &Config{Seed: true}
	cfg.Server.Host = "0.0.0.0"
	cfg.Server.Port = 8080
	cfg.Server.Env = "development"
	cfg.Upload.MaxSize = 5 * 1024 * 1024 // 5MB
	cfg.Upload.MaxWidth = 800
	cfg.Upload.ImageQuality = 70
	return cfg
}
