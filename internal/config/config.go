package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type AppConfig struct {
	LogLevel string `yaml:"log_level"`
}

type AuthConfig struct {
	// Latency is the simulated network delay applied inside login and
	// signup, matching the demo feel of a remote call.
	Latency    string `yaml:"latency"`
	BcryptCost int    `yaml:"bcrypt_cost"`
}

type ConfigFile struct {
	App  AppConfig  `yaml:"app"`
	Auth AuthConfig `yaml:"auth"`
}

type Config struct {
	LogLevel    string
	AuthLatency time.Duration
	BcryptCost  int
}

// Load reads the config file at path, applying environment overrides.
// A missing file yields the built-in defaults so the library is usable
// without any setup.
func Load(path string) (*Config, error) {
	// .env is optional; ignore absence.
	_ = godotenv.Load()

	configFile := &ConfigFile{
		App:  AppConfig{LogLevel: "info"},
		Auth: AuthConfig{Latency: "1s", BcryptCost: 10},
	}

	if bytes, err := os.ReadFile(path); err == nil {
		if err := yaml.Unmarshal(bytes, configFile); err != nil {
			return nil, fmt.Errorf("could not parse config yaml: %w", err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("could not read config file at %s: %w", path, err)
	}

	latency, err := time.ParseDuration(env("HOMESTAY_AUTH_LATENCY", configFile.Auth.Latency))
	if err != nil {
		return nil, fmt.Errorf("invalid auth latency: %w", err)
	}

	return &Config{
		LogLevel:    env("HOMESTAY_LOG_LEVEL", configFile.App.LogLevel),
		AuthLatency: latency,
		BcryptCost:  configFile.Auth.BcryptCost,
	}, nil
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{
		LogLevel:    "info",
		AuthLatency: time.Second,
		BcryptCost:  10,
	}
}

func env(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
