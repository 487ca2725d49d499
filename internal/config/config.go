package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	API      APIConfig      `yaml:"api"`
	Logger   LoggerConfig   `yaml:"logger"`
	Features FeatureFlags   `yaml:"features"`
	UI       UIConfig       `yaml:"ui"`
	Page     PageConfig     `yaml:"pagination"`
	Upload   UploadConfig   `yaml:"upload"`
	Dev      DevServerConfig `yaml:"devserver"`
}

type APIConfig struct {
	BaseURL   string `yaml:"base_url"`
	TimeoutMS int    `yaml:"timeout_ms"`
}

// Timeout returns the per-request timeout as a duration.
func (c APIConfig) Timeout() time.Duration {
	return time.Duration(c.TimeoutMS) * time.Millisecond
}

type LoggerConfig struct {
	Level string `yaml:"level"`
}

type FeatureFlags struct {
	DarkMode      bool `yaml:"dark_mode"`
	Notifications bool `yaml:"notifications"`
	Analytics     bool `yaml:"analytics"`
}

type UIConfig struct {
	ToastDurationMS int `yaml:"toast_duration_ms"`
	DebounceDelayMS int `yaml:"debounce_delay_ms"`
}

type PageConfig struct {
	DefaultPageSize int `yaml:"default_page_size"`
	MaxPageSize     int `yaml:"max_page_size"`
}

type UploadConfig struct {
	MaxFileSize  int64    `yaml:"max_file_size"`
	AllowedTypes []string `yaml:"allowed_types"`
}

type DevServerConfig struct {
	Port        int    `yaml:"port"`
	DatabaseDSN string `yaml:"database_dsn"`
}

// Load reads configuration from the yaml file at path (if it exists),
// applies defaults, and lets environment variables override both.
func Load(path string) (*Config, error) {
	cfg := &Config{
		API: APIConfig{
			BaseURL:   "http://localhost:8000/api",
			TimeoutMS: 10000,
		},
		Logger: LoggerConfig{
			Level: "info",
		},
		Features: FeatureFlags{
			Notifications: true,
		},
		UI: UIConfig{
			ToastDurationMS: 4000,
			DebounceDelayMS: 500,
		},
		Page: PageConfig{
			DefaultPageSize: 10,
			MaxPageSize:     100,
		},
		Upload: UploadConfig{
			MaxFileSize:  5 * 1024 * 1024,
			AllowedTypes: []string{"image/jpeg", "image/png", "image/gif", "image/webp"},
		},
		Dev: DevServerConfig{
			Port: 8000,
		},
	}

	// Load from yaml file if exists
	if data, err := os.ReadFile(path); err == nil {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
	}

	// Override with environment variables
	if baseURL := os.Getenv("API_BASE_URL"); baseURL != "" {
		cfg.API.BaseURL = baseURL
	}
	if timeout := os.Getenv("API_TIMEOUT"); timeout != "" {
		if t, err := strconv.Atoi(timeout); err == nil {
			cfg.API.TimeoutMS = t
		}
	}
	if level := os.Getenv("LOG_LEVEL"); level != "" {
		cfg.Logger.Level = level
	}
	if v := os.Getenv("ENABLE_DARK_MODE"); v != "" {
		cfg.Features.DarkMode = v == "true"
	}
	if v := os.Getenv("ENABLE_NOTIFICATIONS"); v != "" {
		cfg.Features.Notifications = v != "false"
	}
	if v := os.Getenv("ENABLE_ANALYTICS"); v != "" {
		cfg.Features.Analytics = v == "true"
	}
	if port := os.Getenv("DEVSERVER_PORT"); port != "" {
		if p, err := strconv.Atoi(port); err == nil {
			cfg.Dev.Port = p
		}
	}
	if dsn := os.Getenv("DATABASE_DSN"); dsn != "" {
		cfg.Dev.DatabaseDSN = dsn
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.API.BaseURL == "" {
		return fmt.Errorf("api.base_url must not be empty")
	}
	if c.API.TimeoutMS <= 0 {
		return fmt.Errorf("api.timeout_ms must be greater than 0")
	}
	if c.Page.DefaultPageSize <= 0 || c.Page.DefaultPageSize > c.Page.MaxPageSize {
		return fmt.Errorf("pagination defaults are inconsistent")
	}
	return nil
}
