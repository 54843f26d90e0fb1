package config

import (
	"fmt"
	"os"

	"go.yaml.in/yaml/v4"
)

// EnvConfigPath points at an optional YAML config file. When unset, defaults
// apply.
const EnvConfigPath = "HABITD_CONFIG"

type Config struct {
	ListenAddr string    `yaml:"listen_addr"`
	APIBaseURL string    `yaml:"api_base_url"`
	DB         DBConfig  `yaml:"db"`
	Log        LogConfig `yaml:"log"`
}

type DBConfig struct {
	// Driver selects the storage backend: bolt, sqlite, or memory.
	Driver string `yaml:"driver"`
	Path   string `yaml:"path"`
}

type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

func Default() Config {
	return Config{
		ListenAddr: ":8080",
		APIBaseURL: "http://localhost:8080",
		DB: DBConfig{
			Driver: "bolt",
			Path:   "habitd.db",
		},
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

// Load returns defaults overlaid with the YAML file named by HABITD_CONFIG,
// if any. A config path that does not exist is an error; no variable set is
// not.
func Load() (Config, error) {
	cfg := Default()

	path := os.Getenv(EnvConfigPath)
	if path == "" {
		return cfg, nil
	}

	b, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}
