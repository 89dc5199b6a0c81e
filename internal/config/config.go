package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/sadopc/taskflow/internal/logger"
	"github.com/sadopc/taskflow/internal/store"
)

// Config holds user preferences that are not part of the in-app settings.
type Config struct {
	DBPath string `yaml:"db_path"`

	// Logging configuration
	LogLevel string `yaml:"log_level"` // DEBUG, INFO, WARN, ERROR
	LogFile  string `yaml:"log_file"`

	// Simulated latency of the mock authentication provider
	SignInDelay time.Duration `yaml:"sign_in_delay"`
	SignUpDelay time.Duration `yaml:"sign_up_delay"`

	SeedSamples bool `yaml:"seed_samples"`
}

// DefaultConfig returns default settings
func DefaultConfig() *Config {
	dbPath, _ := store.DefaultDBPath()
	return &Config{
		DBPath:      getEnv("TASKFLOW_DB", dbPath),
		LogLevel:    getEnv("TASKFLOW_LOG_LEVEL", "INFO"),
		LogFile:     getEnv("TASKFLOW_LOG_FILE", logger.DefaultPath()),
		SignInDelay: 1500 * time.Millisecond,
		SignUpDelay: 2000 * time.Millisecond,
		SeedSamples: true,
	}
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// DefaultPath returns ~/.config/taskflow/config.yaml
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "taskflow", "config.yaml"), nil
}

// Load reads the config at path, returning defaults when the file is absent.
// Environment variables win over the file.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	applyEnv(cfg)
	return cfg, nil
}

func applyEnv(cfg *Config) {
	cfg.DBPath = getEnv("TASKFLOW_DB", cfg.DBPath)
	cfg.LogLevel = getEnv("TASKFLOW_LOG_LEVEL", cfg.LogLevel)
	cfg.LogFile = getEnv("TASKFLOW_LOG_FILE", cfg.LogFile)
}

// Save writes the config to path, creating the directory.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}
