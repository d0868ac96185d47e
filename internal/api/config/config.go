package config

import (
	"time"

	"presscraft/pkg/config"
)

// Scheduler holds the clipping subscription scheduler configuration.
type Scheduler struct {
	Enabled         bool   `mapstructure:"enabled"`
	PollingInterval string `mapstructure:"polling_interval"`
}

// AI selects the fact sheet LLM provider: "gemini", "openai", "anthropic" or "none".
type AI struct {
	Provider string `mapstructure:"provider"`
}

// Gemini holds the configuration for the Gemini API.
type Gemini struct {
	APIKey              string        `mapstructure:"api_key"`
	Models              []string      `mapstructure:"models"`
	MaxRetries          int           `mapstructure:"max_retries"`
	RetryBaseDelay      time.Duration `mapstructure:"retry_base_delay"`
	MaxRequestPerMinute int           `mapstructure:"max_request_per_minute"`
	MaxTokenPerMinute   int           `mapstructure:"max_token_per_minute"`
	OCREnabled          bool          `mapstructure:"ocr_enabled"`
}

// OpenAI holds the configuration for the OpenAI API.
type OpenAI struct {
	APIKey  string `mapstructure:"api_key"`
	BaseURL string `mapstructure:"base_url"`
	Model   string `mapstructure:"model"`
}

// Anthropic holds the configuration for the Anthropic API.
type Anthropic struct {
	APIKey    string `mapstructure:"api_key"`
	Model     string `mapstructure:"model"`
	MaxTokens int64  `mapstructure:"max_tokens"`
}

// Scraper configures how product pages are fetched: "static" or "browser".
type Scraper struct {
	Mode       string        `mapstructure:"mode"`
	Timeout    time.Duration `mapstructure:"timeout"`
	UserAgent  string        `mapstructure:"user_agent"`
	ChromePath string        `mapstructure:"chrome_path"`
	WaitAfter  time.Duration `mapstructure:"wait_after_load"`
}

// Timeline configures the news timeline cache.
type Timeline struct {
	CacheTTL time.Duration `mapstructure:"cache_ttl"`
}

// Upload limits multipart uploads.
type Upload struct {
	MaxFileSizeMB int `mapstructure:"max_file_size_mb"`
	MaxFiles      int `mapstructure:"max_files"`
}

// Config holds the full configuration for the API service.
type Config struct {
	App        config.App        `mapstructure:"app"`
	Logger     config.Logger     `mapstructure:"logger"`
	Database   config.Database   `mapstructure:"database"`
	Redis      config.Redis      `mapstructure:"redis"`
	API        config.API        `mapstructure:"api"`
	Scheduler  Scheduler         `mapstructure:"scheduler"`
	AI         AI                `mapstructure:"ai"`
	Gemini     Gemini            `mapstructure:"gemini"`
	OpenAI     OpenAI            `mapstructure:"openai"`
	Anthropic  Anthropic         `mapstructure:"anthropic"`
	Scraper    Scraper           `mapstructure:"scraper"`
	NewsSearch config.NewsSearch `mapstructure:"news_search"`
	Timeline   Timeline          `mapstructure:"timeline"`
	Upload     Upload            `mapstructure:"upload"`
}

// Load loads the API configuration from the given path.
func Load(path string) (*Config, error) {
	var cfg Config
	if err := config.Load(path, &cfg); err != nil {
		return nil, err
	}
	if cfg.Upload.MaxFileSizeMB <= 0 {
		cfg.Upload.MaxFileSizeMB = 20
	}
	if cfg.Upload.MaxFiles <= 0 {
		cfg.Upload.MaxFiles = 20
	}
	return &cfg, nil
}
