package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
)

var (
	// ErrInvalidConfig возвращается при некорректных значениях конфигурации
	ErrInvalidConfig = errors.New("config: invalid configuration")
)

// Поддерживаемые платежные провайдеры
const (
	ProviderRazorpay = "razorpay"
	ProviderStripe   = "stripe"
)

// Config конфигурация сервиса
type Config struct {
	Server    ServerConfig    `toml:"server"`
	Database  DatabaseConfig  `toml:"database"`
	Redis     RedisConfig     `toml:"redis"`
	Payment   PaymentConfig   `toml:"payment"`
	Logs      LogsConfig      `toml:"logs"`
	Metrics   MetricsConfig   `toml:"metrics"`
	RateLimit RateLimitConfig `toml:"ratelimit"`
	CORS      CORSConfig      `toml:"cors"`
}

// ServerConfig настройки HTTP сервера (таймауты в секундах)
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
}

// DatabaseConfig настройки подключения к PostgreSQL
type DatabaseConfig struct {
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"`
}

// DSN возвращает строку подключения для lib/pq
func (c DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode)
}

// RedisConfig хранилище выбранных дат; при Enabled=false используется память процесса
type RedisConfig struct {
	Enabled  bool   `toml:"enabled"`
	Addr     string `toml:"addr"`
	Password string `toml:"password"`
	DB       int    `toml:"db"`
	RangeTTL int    `toml:"range_ttl"` // секунды
}

// RangeTTLDuration время жизни выбранного диапазона дат
func (c RedisConfig) RangeTTLDuration() time.Duration {
	return time.Duration(c.RangeTTL) * time.Second
}

// PaymentConfig настройки онлайн-оплаты
type PaymentConfig struct {
	Provider         string         `toml:"provider"`
	Currency         string         `toml:"currency"`
	DisplayName      string         `toml:"display_name"`
	ConfirmationPath string         `toml:"confirmation_path"`
	CheckoutTimeout  int            `toml:"checkout_timeout"` // секунды
	Razorpay         RazorpayConfig `toml:"razorpay"`
	Stripe           StripeConfig   `toml:"stripe"`
}

// CheckoutTimeoutDuration сколько ждать результата от виджета оплаты
func (c PaymentConfig) CheckoutTimeoutDuration() time.Duration {
	return time.Duration(c.CheckoutTimeout) * time.Second
}

// MerchantKey публичный ключ, который передается в виджет оплаты
func (c PaymentConfig) MerchantKey() string {
	if c.Provider == ProviderStripe {
		return c.Stripe.PublishableKey
	}
	return c.Razorpay.KeyID
}

// RazorpayConfig настройки Razorpay
type RazorpayConfig struct {
	BaseURL   string `toml:"base_url"`
	KeyID     string `toml:"key_id"`
	KeySecret string `toml:"key_secret"`
	Timeout   int    `toml:"timeout"` // секунды
}

// StripeConfig настройки Stripe
type StripeConfig struct {
	PublishableKey string `toml:"publishable_key"`
	SecretKey      string `toml:"secret_key"`
}

// LogsConfig настройки логирования
type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// MetricsConfig настройки Prometheus метрик
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// RateLimitConfig ограничение частоты отправки формы на пользователя
type RateLimitConfig struct {
	Enabled           bool `toml:"enabled"`
	RequestsPerMinute int  `toml:"requests_per_minute"`
	Burst             int  `toml:"burst"`
}

// CORSConfig разрешенные источники для браузерного клиента
type CORSConfig struct {
	AllowedOrigins []string `toml:"allowed_origins"`
}

// Load читает конфигурацию из TOML файла, применяет значения по умолчанию
// и переопределения секретов из окружения
func Load(path string) (*Config, error) {
	cfg := Default()

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("config: failed to decode %s: %w", path, err)
	}

	applyEnv(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Default конфигурация по умолчанию
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			HTTPPort:        8080,
			ReadTimeout:     10,
			WriteTimeout:    10,
			IdleTimeout:     60,
			ShutdownTimeout: 15,
		},
		Database: DatabaseConfig{
			Host:            "localhost",
			Port:            5432,
			SSLMode:         "disable",
			MaxOpenConns:    25,
			MaxIdleConns:    5,
			ConnMaxLifetime: 300,
		},
		Redis: RedisConfig{
			Addr:     "localhost:6379",
			RangeTTL: 86400,
		},
		Payment: PaymentConfig{
			Provider:         ProviderRazorpay,
			Currency:         "INR",
			DisplayName:      "The Wild Oasis",
			ConfirmationPath: "/cabins/thankyou",
			CheckoutTimeout:  900,
			Razorpay: RazorpayConfig{
				BaseURL: "https://api.razorpay.com",
				Timeout: 10,
			},
		},
		Logs: LogsConfig{
			Level: "info",
		},
		Metrics: MetricsConfig{
			Path:        "/metrics",
			ServiceName: "cabin_reservation_service",
		},
		RateLimit: RateLimitConfig{
			RequestsPerMinute: 30,
			Burst:             5,
		},
	}
}

// Validate проверяет согласованность конфигурации
func (c *Config) Validate() error {
	if c.Server.HTTPPort <= 0 || c.Server.HTTPPort > 65535 {
		return fmt.Errorf("%w: server.http_port out of range", ErrInvalidConfig)
	}

	switch c.Payment.Provider {
	case ProviderRazorpay:
		if c.Payment.Razorpay.KeyID == "" || c.Payment.Razorpay.KeySecret == "" {
			return fmt.Errorf("%w: payment.razorpay key_id and key_secret are required", ErrInvalidConfig)
		}
	case ProviderStripe:
		if c.Payment.Stripe.SecretKey == "" || c.Payment.Stripe.PublishableKey == "" {
			return fmt.Errorf("%w: payment.stripe publishable_key and secret_key are required", ErrInvalidConfig)
		}
	default:
		return fmt.Errorf("%w: unknown payment.provider %q", ErrInvalidConfig, c.Payment.Provider)
	}

	if c.Payment.CheckoutTimeout <= 0 {
		return fmt.Errorf("%w: payment.checkout_timeout must be positive", ErrInvalidConfig)
	}

	if c.RateLimit.Enabled && c.RateLimit.RequestsPerMinute <= 0 {
		return fmt.Errorf("%w: ratelimit.requests_per_minute must be positive", ErrInvalidConfig)
	}

	return nil
}

// applyEnv переопределяет секреты из переменных окружения
func applyEnv(c *Config) {
	if v := os.Getenv("DB_PASSWORD"); v != "" {
		c.Database.Password = v
	}
	if v := os.Getenv("REDIS_PASSWORD"); v != "" {
		c.Redis.Password = v
	}
	if v := os.Getenv("RAZORPAY_KEY_ID"); v != "" {
		c.Payment.Razorpay.KeyID = v
	}
	if v := os.Getenv("RAZORPAY_KEY_SECRET"); v != "" {
		c.Payment.Razorpay.KeySecret = v
	}
	if v := os.Getenv("STRIPE_SECRET_KEY"); v != "" {
		c.Payment.Stripe.SecretKey = v
	}
	if v := os.Getenv("STRIPE_PUBLISHABLE_KEY"); v != "" {
		c.Payment.Stripe.PublishableKey = v
	}
	c.Payment.Provider = strings.ToLower(strings.TrimSpace(c.Payment.Provider))
}
