package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds all application configuration.
type Config struct {
	Server struct {
		Addr                string `yaml:"addr"`
		ReadTimeoutSeconds  int    `yaml:"read_timeout_seconds"`
		WriteTimeoutSeconds int    `yaml:"write_timeout_seconds"`
		IdleTimeoutSeconds  int    `yaml:"idle_timeout_seconds"`
	} `yaml:"server"`
	RateLimit struct {
		Capacity      int `yaml:"capacity"`
		WindowSeconds int `yaml:"window_seconds"`

		// Key clients on the first X-Forwarded-For hop. Only enable behind a
		// proxy that overwrites the header.
		TrustForwardedFor bool `yaml:"trust_forwarded_for"`
	} `yaml:"rate_limit"`
	Cache struct {
		RedisAddr  string `yaml:"redis_addr"`
		TTLMinutes int    `yaml:"ttl_minutes"`
	} `yaml:"cache"`
	Database struct {
		SQLitePath string `yaml:"sqlite_path"`
	} `yaml:"database"`
	Analysis struct {
		DiscountRate float64 `yaml:"discount_rate"`
		FavorableIRR float64 `yaml:"favorable_irr"`
		ModerateIRR  float64 `yaml:"moderate_irr"`
	} `yaml:"analysis"`
	Reference struct {
		File string `yaml:"file"`
	} `yaml:"reference"`
	Advisor struct {
		GeminiAPIKey string `yaml:"gemini_api_key"`
		Model        string `yaml:"model"`
	} `yaml:"advisor"`
}

// Load reads config from a YAML file over the defaults, then applies
// environment variable overrides. A missing file is not an error. Values
// set explicitly in the file, zero included, are kept.
func Load(path string) (*Config, error) {
	cfg := defaults()

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	// Environment variable overrides
	if v := os.Getenv("HTTP_ADDR"); v != "" {
		cfg.Server.Addr = v
	}
	if v := os.Getenv("RATE_LIMIT_CAPACITY"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.RateLimit.Capacity = n
		}
	}
	if v := os.Getenv("TRUST_FORWARDED_FOR"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.RateLimit.TrustForwardedFor = b
		}
	}
	if v := os.Getenv("REDIS_ADDR"); v != "" {
		cfg.Cache.RedisAddr = v
	}
	if v := os.Getenv("SQLITE_PATH"); v != "" {
		cfg.Database.SQLitePath = v
	}
	if v := os.Getenv("REFERENCE_FILE"); v != "" {
		cfg.Reference.File = v
	}
	if v := os.Getenv("GEMINI_API_KEY"); v != "" {
		cfg.Advisor.GeminiAPIKey = v
	}

	return cfg, nil
}

func defaults() *Config {
	cfg := &Config{}
	cfg.Server.Addr = ":8080"
	cfg.Server.ReadTimeoutSeconds = 15
	cfg.Server.WriteTimeoutSeconds = 15
	cfg.Server.IdleTimeoutSeconds = 60
	cfg.RateLimit.Capacity = 5
	cfg.RateLimit.WindowSeconds = 60
	cfg.Cache.TTLMinutes = 60
	cfg.Analysis.DiscountRate = 7
	cfg.Analysis.FavorableIRR = 10
	cfg.Analysis.ModerateIRR = 5
	cfg.Advisor.Model = "gemini-2.5-flash"
	return cfg
}

// Validate checks that all values are usable.
func (c *Config) Validate() error {
	if c.Server.Addr == "" {
		return fmt.Errorf("server.addr is required")
	}
	if c.Server.ReadTimeoutSeconds <= 0 || c.Server.WriteTimeoutSeconds <= 0 || c.Server.IdleTimeoutSeconds <= 0 {
		return fmt.Errorf("server timeouts must be positive")
	}
	if c.RateLimit.Capacity <= 0 {
		return fmt.Errorf("rate_limit.capacity must be positive")
	}
	if c.RateLimit.WindowSeconds <= 0 {
		return fmt.Errorf("rate_limit.window_seconds must be positive")
	}
	if c.Cache.TTLMinutes < 0 {
		return fmt.Errorf("cache.ttl_minutes cannot be negative")
	}
	if c.Analysis.DiscountRate < 0 {
		return fmt.Errorf("analysis.discount_rate cannot be negative")
	}
	if c.Advisor.Model == "" {
		return fmt.Errorf("advisor.model is required")
	}
	if c.Analysis.ModerateIRR > c.Analysis.FavorableIRR {
		return fmt.Errorf("analysis.moderate_irr must not exceed analysis.favorable_irr")
	}
	return nil
}

func (c *Config) ReadTimeout() time.Duration {
	return time.Duration(c.Server.ReadTimeoutSeconds) * time.Second
}

func (c *Config) WriteTimeout() time.Duration {
	return time.Duration(c.Server.WriteTimeoutSeconds) * time.Second
}

func (c *Config) IdleTimeout() time.Duration {
	return time.Duration(c.Server.IdleTimeoutSeconds) * time.Second
}

func (c *Config) RateLimitWindow() time.Duration {
	return time.Duration(c.RateLimit.WindowSeconds) * time.Second
}

func (c *Config) CacheTTL() time.Duration {
	return time.Duration(c.Cache.TTLMinutes) * time.Minute
}
