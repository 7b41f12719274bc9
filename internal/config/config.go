// File: internal/config/config.go
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type RuntimeConfig struct {
	Dev bool
}

type ServerConfig struct {
	Port            int           `yaml:"port"`
	ReadTimeout     time.Duration `yaml:"read_timeout"`
	WriteTimeout    time.Duration `yaml:"write_timeout"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"`
	RequestTimeout  time.Duration `yaml:"request_timeout"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
	// TrustProxy reads the client address from X-Forwarded-For / X-Real-IP.
	TrustProxy      bool          `yaml:"trust_proxy"`
}

type LogConfig struct {
	Level    string `yaml:"level"`    // trace|debug|info|warn|error
	Format   string `yaml:"format"`   // json|console
	Sampling bool   `yaml:"sampling"` // enable sampling in prod
}

type CORSConfig struct {
	AllowedOrigins []string `yaml:"allowed_origins"`
}

type RedisConfig struct {
	URL      string `yaml:"url"` // empty disables rate limiting
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

type RateLimitConfig struct {
	CreateOrderLimit  int           `yaml:"create_order_limit"`
	CreateOrderWindow time.Duration `yaml:"create_order_window"`
}

type PaymentConfig struct {
	Razorpay struct {
		KeyID          string  `yaml:"key_id"`
		KeySecret      string  `yaml:"key_secret"`
		Currency       string  `yaml:"currency"`
		AllowedAmounts []int64 `yaml:"allowed_amounts"` // base currency units
	} `yaml:"razorpay"`
}

type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Log       LogConfig       `yaml:"log"`
	CORS      CORSConfig      `yaml:"cors"`
	Redis     RedisConfig     `yaml:"redis"`
	RateLimit RateLimitConfig `yaml:"rate_limit"`
	Payment   PaymentConfig   `yaml:"payment"`

	Runtime RuntimeConfig `yaml:"-"`
}

// DefaultPath is used when -config is not given; it may be absent.
const DefaultPath = "config.yaml"

// LoadConfig reads the YAML file at path (a missing DefaultPath is fine),
// loads .env into the environment and applies environment overrides on top.
func LoadConfig(path string, dev bool) (*Config, error) {
	var cfg Config

	b, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(b, &cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	case errors.Is(err, os.ErrNotExist) && path == DefaultPath:
	default:
		return nil, fmt.Errorf("read config: %w", err)
	}

	// .env is optional, as with python-dotenv; real env vars win.
	_ = godotenv.Load()

	if err := applyEnv(&cfg); err != nil {
		return nil, err
	}
	applyDefaults(&cfg)

	if err := validate(&cfg); err != nil {
		return nil, err
	}

	cfg.Runtime.Dev = dev
	return &cfg, nil
}

func applyEnv(cfg *Config) error {
	if v := os.Getenv("RAZORPAY_KEY_ID"); v != "" {
		cfg.Payment.Razorpay.KeyID = v
	}
	if v := os.Getenv("RAZORPAY_KEY_SECRET"); v != "" {
		cfg.Payment.Razorpay.KeySecret = v
	}
	if v := strings.TrimSpace(os.Getenv("PORT")); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("PORT: %w", err)
		}
		cfg.Server.Port = port
	}
	if v := os.Getenv("REDIS_URL"); v != "" {
		cfg.Redis.URL = v
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}
	return nil
}

func applyDefaults(cfg *Config) {
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 5000
	}
	cfg.Server.ReadTimeout = orDefault(cfg.Server.ReadTimeout, 5*time.Second)
	cfg.Server.WriteTimeout = orDefault(cfg.Server.WriteTimeout, 15*time.Second)
	cfg.Server.IdleTimeout = orDefault(cfg.Server.IdleTimeout, time.Minute)
	cfg.Server.RequestTimeout = orDefault(cfg.Server.RequestTimeout, 10*time.Second)
	cfg.Server.ShutdownTimeout = orDefault(cfg.Server.ShutdownTimeout, 10*time.Second)

	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}
	if cfg.Log.Format == "" {
		cfg.Log.Format = "json"
	}
	if len(cfg.CORS.AllowedOrigins) == 0 {
		cfg.CORS.AllowedOrigins = []string{"*"}
	}
	if cfg.RateLimit.CreateOrderLimit <= 0 {
		cfg.RateLimit.CreateOrderLimit = 30
	}
	cfg.RateLimit.CreateOrderWindow = orDefault(cfg.RateLimit.CreateOrderWindow, time.Minute)

	if cfg.Payment.Razorpay.Currency == "" {
		cfg.Payment.Razorpay.Currency = "INR"
	}
	if len(cfg.Payment.Razorpay.AllowedAmounts) == 0 {
		cfg.Payment.Razorpay.AllowedAmounts = []int64{149, 499}
	}
}

func validate(cfg *Config) error {
	if cfg.Server.Port <= 0 || cfg.Server.Port > 65535 {
		return fmt.Errorf("server.port out of range: %d", cfg.Server.Port)
	}
	for _, a := range cfg.Payment.Razorpay.AllowedAmounts {
		if a <= 0 {
			return fmt.Errorf("payment.razorpay.allowed_amounts: non-positive amount %d", a)
		}
	}
	return nil
}

// GatewayConfigured reports whether both Razorpay keys are present.
func (c *Config) GatewayConfigured() bool {
	return c.Payment.Razorpay.KeyID != "" && c.Payment.Razorpay.KeySecret != ""
}

func orDefault(d, def time.Duration) time.Duration {
	if d <= 0 {
		return def
	}
	return d
}
