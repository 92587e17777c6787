package config

import (
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/go-playground/validator"
	_ "github.com/joho/godotenv/autoload"
	"github.com/knadh/koanf"
	"github.com/knadh/koanf/providers/env"
)

type Config struct {
	Primary  Primary        `koanf:"primary"`
	Server   ServerConfig   `koanf:"server"`
	Database DatabaseConfig `koanf:"database"`
	Recurly  RecurlyConfig  `koanf:"recurly"`
	Retry    RetryConfig    `koanf:"retry"`
	Breaker  BreakerConfig  `koanf:"breaker"`
	Logger   LoggerConfig   `koanf:"logger"`
}

type Primary struct {
	Env string `koanf:"env" validate:"required"`
}

type ServerConfig struct {
	Port         string        `koanf:"port" validate:"required"`
	ReadTimeout  time.Duration `koanf:"read_timeout" validate:"required"`
	WriteTimeout time.Duration `koanf:"write_timeout" validate:"required"`
	IdleTimeout  time.Duration `koanf:"idle_timeout" validate:"required"`
}

type DatabaseConfig struct {
	Host            string        `koanf:"host" validate:"required"`
	Port            int           `koanf:"port" validate:"required"`
	User            string        `koanf:"user" validate:"required"`
	Password        string        `koanf:"password" validate:"required"`
	Name            string        `koanf:"name" validate:"required"`
	SSLMode         string        `koanf:"ssl_mode" validate:"required"`
	MaxOpenConns    int           `koanf:"max_open_conns" validate:"required"`
	MaxIdleConns    int           `koanf:"max_idle_conns" validate:"required"`
	ConnMaxLifetime time.Duration `koanf:"conn_max_lifetime" validate:"required"`
	ConnMaxIdleTime time.Duration `koanf:"conn_max_idle_time" validate:"required"`
}

// RecurlyConfig holds the billing site credentials and transport settings.
// BaseURL overrides https://{subdomain}.recurly.com/v2 when set.
type RecurlyConfig struct {
	Subdomain    string        `koanf:"subdomain" validate:"required"`
	APIKey       string        `koanf:"api_key" validate:"required"`
	BaseURL      string        `koanf:"base_url"`
	APIVersion   string        `koanf:"api_version"`
	ConnTimeout  time.Duration `koanf:"conn_timeout" validate:"required"`
	AmountPolicy string        `koanf:"amount_policy" validate:"omitempty,oneof=passthrough cents"`
}

type RetryConfig struct {
	BaseDelay  time.Duration `koanf:"base_delay"`
	MaxDelay   time.Duration `koanf:"max_delay"`
	MaxRetries uint          `koanf:"max_retries"`
}

type BreakerConfig struct {
	MaxRequests  uint32        `koanf:"max_requests"`
	Interval     time.Duration `koanf:"interval"`
	Timeout      time.Duration `koanf:"timeout"`
	FailureRatio float64       `koanf:"failure_ratio" validate:"gte=0,lte=1"`
	MinRequests  uint32        `koanf:"min_requests"`
}

type LoggerConfig struct {
	Level string `koanf:"level" validate:"omitempty,oneof=debug info warn error"`
}

// NewLogger builds the JSON logger used across the service.
func (c LoggerConfig) NewLogger() *slog.Logger {
	level := slog.LevelInfo
	switch strings.ToLower(c.Level) {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}

	return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: level,
	}))
}

func (c *Config) applyDefaults() {
	if c.Recurly.APIVersion == "" {
		c.Recurly.APIVersion = "2.29"
	}
	if c.Retry.BaseDelay == 0 {
		c.Retry.BaseDelay = 200 * time.Millisecond
	}
	if c.Retry.MaxDelay == 0 {
		c.Retry.MaxDelay = 5 * time.Second
	}
	if c.Retry.MaxRetries == 0 {
		c.Retry.MaxRetries = 3
	}
	if c.Breaker.MaxRequests == 0 {
		c.Breaker.MaxRequests = 5
	}
	if c.Breaker.Interval == 0 {
		c.Breaker.Interval = 60 * time.Second
	}
	if c.Breaker.Timeout == 0 {
		c.Breaker.Timeout = 30 * time.Second
	}
	if c.Breaker.FailureRatio == 0 {
		c.Breaker.FailureRatio = 0.6
	}
	if c.Breaker.MinRequests == 0 {
		c.Breaker.MinRequests = 10
	}
}

func LoadConfig() (*Config, error) {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelError,
	}))
	k := koanf.New(".")

	err := k.Load(env.Provider("GATEWAY_", ".", func(s string) string {
		return strings.ReplaceAll(
			strings.ToLower(strings.TrimPrefix(s, "GATEWAY_")),
			"__",
			".",
		)
	}), nil)
	if err != nil {
		logger.Error("failed to load environment variables", "error", err)
		return nil, err
	}

	mainConfig := &Config{}

	err = k.Unmarshal("", mainConfig)
	if err != nil {
		logger.Error("could not unmarshal main config", "error", err)
		return nil, err
	}

	mainConfig.applyDefaults()

	validate := validator.New()

	err = validate.Struct(mainConfig)
	if err != nil {
		logger.Error("config validation failed", "error", err)
		return nil, err
	}

	return mainConfig, nil
}
