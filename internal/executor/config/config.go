package config

import (
	"time"

	"presscraft/pkg/config"
)

// Executor holds executor-specific configuration.
type Executor struct {
	TaskTimeout time.Duration `mapstructure:"task_timeout"`
	ReadTimeout time.Duration `mapstructure:"read_timeout"`

	// Pending messages idle longer than PendingMaxIdle are claimed and retried.
	PendingRetryInterval time.Duration `mapstructure:"pending_retry_interval"`
	PendingMaxIdle       time.Duration `mapstructure:"pending_max_idle"`
}

// Config holds the full configuration for the executor service.
type Config struct {
	App        config.App        `mapstructure:"app"`
	Logger     config.Logger     `mapstructure:"logger"`
	Database   config.Database   `mapstructure:"database"`
	Redis      config.Redis      `mapstructure:"redis"`
	NewsSearch config.NewsSearch `mapstructure:"news_search"`
	Kafka      config.Kafka      `mapstructure:"kafka"`
	Telegram   config.Telegram   `mapstructure:"telegram"`
	Executor   Executor          `mapstructure:"executor"`
}

// Load loads the executor configuration from the given path.
func Load(path string) (*Config, error) {
	var cfg Config
	if err := config.Load(path, &cfg); err != nil {
		return nil, err
	}
	if cfg.Executor.TaskTimeout <= 0 {
		cfg.Executor.TaskTimeout = 5 * time.Minute
	}
	if cfg.Executor.ReadTimeout <= 0 {
		cfg.Executor.ReadTimeout = 10 * time.Second
	}
	if cfg.Executor.PendingRetryInterval <= 0 {
		cfg.Executor.PendingRetryInterval = time.Minute
	}
	if cfg.Executor.PendingMaxIdle <= 0 {
		cfg.Executor.PendingMaxIdle = 10 * time.Minute
	}
	return &cfg, nil
}
