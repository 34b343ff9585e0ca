package config

import (
	"errors"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config is everything the service needs to run. Values come from the
// environment (STOREFRONT_* variables) with an optional config.yaml
// alongside the binary.
type Config struct {
	Addr        string        `mapstructure:"addr"`
	DatabaseURL string        `mapstructure:"database_url"`
	RedisAddr   string        `mapstructure:"redis_addr"`
	LedgerTTL   time.Duration `mapstructure:"ledger_ttl"`

	JWTSecret         string `mapstructure:"jwt_secret"`
	AdminUser         string `mapstructure:"admin_user"`
	AdminPasswordHash string `mapstructure:"admin_password_hash"` // bcrypt

	WhatsAppPhone   string `mapstructure:"whatsapp_phone"`
	OrderWebhookURL string `mapstructure:"order_webhook_url"`

	RateLimitRPS   float64 `mapstructure:"rate_limit_rps"`
	RateLimitBurst int     `mapstructure:"rate_limit_burst"`
}

func Load() (Config, error) {
	v := viper.New()

	v.SetDefault("addr", ":8080")
	v.SetDefault("redis_addr", "localhost:6379")
	v.SetDefault("ledger_ttl", 30*24*time.Hour)
	v.SetDefault("admin_user", "admin")
	v.SetDefault("rate_limit_rps", 1.0)
	v.SetDefault("rate_limit_burst", 3)

	v.SetEnvPrefix("STOREFRONT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, err
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, err
	}

	if cfg.DatabaseURL == "" {
		return Config{}, errors.New("database_url is required (STOREFRONT_DATABASE_URL)")
	}
	if cfg.JWTSecret == "" {
		return Config{}, errors.New("jwt_secret is required (STOREFRONT_JWT_SECRET)")
	}
	return cfg, nil
}
