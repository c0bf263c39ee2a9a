package config

import (
	"log"

	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	AppPort  string `mapstructure:"APP_PORT"`
	Env      string `mapstructure:"ENV"`
	LogLevel string `mapstructure:"LOG_LEVEL"`

	// StoreURL is the base URL of the storefront backend that owns the
	// availability, cart, payment and newsletter endpoints.
	StoreURL string `mapstructure:"STORE_URL"`

	// Rental booking behaviour.
	BookingTimezone   string `mapstructure:"BOOKING_TIMEZONE"`
	BookingCutoffHour int    `mapstructure:"BOOKING_CUTOFF_HOUR"`

	// Name of the CSRF token cookie forwarded on mutating store calls.
	CSRFCookieName string `mapstructure:"CSRF_COOKIE_NAME"`

	// NewsletterAction is the form action the signup client posts to,
	// resolved against StoreURL when relative.
	NewsletterAction string `mapstructure:"NEWSLETTER_ACTION"`

	// CheckoutReturnPath is resolved against StoreURL and handed to the
	// payment processor as the post-payment redirect target.
	CheckoutReturnPath string `mapstructure:"CHECKOUT_RETURN_PATH"`

	StripeKey string `mapstructure:"STRIPE_KEY"`

	MaxRequestsPerMin int `mapstructure:"MAX_REQUESTS_PER_MIN"`

	// Redis configuration (booking session cache).
	RedisAddr      string `mapstructure:"REDIS_ADDR"`
	RedisPassword  string `mapstructure:"REDIS_PASSWORD"`
	RedisSessionDB int    `mapstructure:"REDIS_SESSION_DB"`
}

var AppConfig Config

func LoadConfig() {
	// Look for a config file named "config.yaml" in the current and "config" directory.
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	// Automatically use environment variables where available.
	viper.AutomaticEnv()

	// Set default values.
	viper.SetDefault("APP_PORT", "8080")
	viper.SetDefault("ENV", "development")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("STORE_URL", "http://localhost:8000")
	viper.SetDefault("BOOKING_TIMEZONE", "Europe/Nicosia")
	viper.SetDefault("BOOKING_CUTOFF_HOUR", 20)
	viper.SetDefault("CSRF_COOKIE_NAME", "csrftoken")
	viper.SetDefault("NEWSLETTER_ACTION", "/newsletter/signup/")
	viper.SetDefault("CHECKOUT_RETURN_PATH", "/payments/checkout-success/")
	viper.SetDefault("MAX_REQUESTS_PER_MIN", 100)
	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_SESSION_DB", 0)

	if err := viper.ReadInConfig(); err != nil {
		log.Println("No config file found, using environment variables only")
	}

	if err := viper.Unmarshal(&AppConfig); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
}

func GetEnv() string {
	return AppConfig.Env
}

func IsProduction() bool {
	return GetEnv() == "production"
}
