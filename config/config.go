package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/viper"
)

// Config is the storefront's runtime configuration
type Config struct {
	Port          string
	Environment   string
	LogLevel      string
	SessionSecret string
	SessionTTL    time.Duration

	Shop    ShopConfig
	Redis   RedisConfig
	MongoDB MongoDBConfig
	Email   EmailConfig
	Kafka   KafkaConfig
}

// ShopConfig holds the checkout constants
type ShopConfig struct {
	WhatsAppNumber string // SHOP_WHATSAPP_NUMBER: digits only, e.g. 255712345678
	DeliveryFee    decimal.Decimal
	VATRate        decimal.Decimal
	Currency       string
	DispatchDelay  time.Duration
}

// RedisConfig selects the snapshot store; empty Addr keeps snapshots in memory
type RedisConfig struct {
	Addr        string
	Password    string
	DB          int
	SnapshotTTL time.Duration
}

// MongoDBConfig selects the catalog source; empty URI uses the built-in catalog
type MongoDBConfig struct {
	URI      string
	Database string
}

type EmailConfig struct {
	Provider       string // sendgrid, postmark or none
	SendGridAPIKey string
	PostmarkToken  string
	Sender         string
}

type KafkaConfig struct {
	Brokers    []string
	OrderTopic string
}

const (
	EmailProviderNone     = "none"
	EmailProviderSendGrid = "sendgrid"
	EmailProviderPostmark = "postmark"
)

// Load reads the configuration from the environment and an optional .env file
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigType("env")
	v.SetConfigName(".env")
	v.AddConfigPath(".")

	v.SetDefault("PORT", "8000")
	v.SetDefault("ENVIRONMENT", "development")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("SESSION_TTL", "24h")
	v.SetDefault("SHOP_WHATSAPP_NUMBER", "REPLACE_WITH_SHOP_NUMBER")
	v.SetDefault("DELIVERY_FEE", "5.00")
	v.SetDefault("VAT_RATE", "0.18")
	v.SetDefault("CURRENCY_SYMBOL", "$")
	v.SetDefault("DISPATCH_DELAY", "900ms")
	v.SetDefault("SNAPSHOT_TTL", "720h")
	v.SetDefault("MONGODB_DATABASE", "dira")
	v.SetDefault("EMAIL_PROVIDER", EmailProviderNone)
	v.SetDefault("KAFKA_ORDER_TOPIC", "order.placed")

	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	return build(v)
}

func build(v *viper.Viper) (*Config, error) {
	get := func(key string) string {
		if val := os.Getenv(key); val != "" {
			return strings.TrimSpace(val)
		}
		return strings.TrimSpace(v.GetString(key))
	}

	cfg := &Config{
		Port:          get("PORT"),
		Environment:   strings.ToLower(get("ENVIRONMENT")),
		LogLevel:      get("LOG_LEVEL"),
		SessionSecret: get("SESSION_SECRET"),
		Shop: ShopConfig{
			WhatsAppNumber: get("SHOP_WHATSAPP_NUMBER"),
			Currency:       get("CURRENCY_SYMBOL"),
		},
		Redis: RedisConfig{
			Addr:     get("REDIS_ADDR"),
			Password: get("REDIS_PASSWORD"),
			DB:       v.GetInt("REDIS_DB"),
		},
		MongoDB: MongoDBConfig{
			URI:      get("MONGODB_URI"),
			Database: get("MONGODB_DATABASE"),
		},
		Email: EmailConfig{
			Provider:       strings.ToLower(get("EMAIL_PROVIDER")),
			SendGridAPIKey: get("SENDGRID_API_KEY"),
			PostmarkToken:  get("POSTMARK_API_TOKEN"),
			Sender:         get("EMAIL_SENDER"),
		},
		Kafka: KafkaConfig{
			Brokers:    splitList(get("KAFKA_BROKERS")),
			OrderTopic: get("KAFKA_ORDER_TOPIC"),
		},
	}

	var err error
	if cfg.Shop.DeliveryFee, err = decimalSetting(get, "DELIVERY_FEE"); err != nil {
		return nil, err
	}
	if cfg.Shop.VATRate, err = decimalSetting(get, "VAT_RATE"); err != nil {
		return nil, err
	}
	if cfg.Shop.DispatchDelay, err = durationSetting(get, "DISPATCH_DELAY"); err != nil {
		return nil, err
	}
	if cfg.Redis.SnapshotTTL, err = durationSetting(get, "SNAPSHOT_TTL"); err != nil {
		return nil, err
	}
	if cfg.SessionTTL, err = durationSetting(get, "SESSION_TTL"); err != nil {
		return nil, err
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// IsDevelopment reports whether the service runs with development defaults
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

func (c *Config) validate() error {
	if c.SessionSecret == "" {
		if !c.IsDevelopment() {
			return fmt.Errorf("SESSION_SECRET is required")
		}
		c.SessionSecret = "development-session-secret"
	}
	if c.Shop.DeliveryFee.IsNegative() {
		return fmt.Errorf("DELIVERY_FEE must not be negative")
	}
	if c.Shop.VATRate.IsNegative() || c.Shop.VATRate.GreaterThan(decimal.NewFromInt(1)) {
		return fmt.Errorf("VAT_RATE must be between 0 and 1")
	}

	switch c.Email.Provider {
	case "", EmailProviderNone:
		c.Email.Provider = EmailProviderNone
	case EmailProviderSendGrid:
		if c.Email.SendGridAPIKey == "" {
			return fmt.Errorf("SENDGRID_API_KEY is required when EMAIL_PROVIDER=sendgrid")
		}
	case EmailProviderPostmark:
		if c.Email.PostmarkToken == "" {
			return fmt.Errorf("POSTMARK_API_TOKEN is required when EMAIL_PROVIDER=postmark")
		}
	default:
		return fmt.Errorf("EMAIL_PROVIDER must be one of sendgrid, postmark, none")
	}
	if c.Email.Provider != EmailProviderNone && c.Email.Sender == "" {
		return fmt.Errorf("EMAIL_SENDER is required when email is enabled")
	}
	return nil
}

func decimalSetting(get func(string) string, key string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(get(key))
	if err != nil {
		return decimal.Zero, fmt.Errorf("%s: %w", key, err)
	}
	return d, nil
}

func durationSetting(get func(string) string, key string) (time.Duration, error) {
	raw := get(key)
	if raw == "" || raw == "0" {
		return 0, nil
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return d, nil
}

func splitList(raw string) []string {
	if raw == "" {
		return nil
	}
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
