package config

import (
	"fmt"
	"os"
	"strings"
	"time"
)

const (
	defaultPort         = "8080"
	defaultDatabaseURL  = "autocare.db"
	defaultSessionTTL   = "30m" // admin session expires after 30 minutes
	defaultLogLevel     = "info"
	defaultLogFormat    = "console"
	defaultCountryCode  = "+61"
	defaultOperatorName = "AutoCare Mechanic"
)

// EmailJSConfig holds credentials for the EmailJS form-relay service.
// Unset fields leave the email channel disabled.
type EmailJSConfig struct {
	ServiceID           string
	PublicKey           string
	BookingTemplateID   string
	ConfirmedTemplateID string
}

func (c EmailJSConfig) Configured() bool {
	return c.ServiceID != "" && c.PublicKey != "" && c.BookingTemplateID != ""
}

// TwilioConfig holds credentials for the SMS provider. Unset fields leave
// the SMS channel disabled.
type TwilioConfig struct {
	AccountSID string
	AuthToken  string
	FromNumber string
}

func (c TwilioConfig) Configured() bool {
	return c.AccountSID != "" && c.AuthToken != "" && c.FromNumber != ""
}

type OperatorConfig struct {
	Name    string
	Email   string
	Phone   string
	Address string
}

type Config struct {
	AppEnv      string
	Port        string
	DatabaseURL string

	JWTSecret  string
	SessionTTL time.Duration

	LogLevel  string
	LogFormat string

	CountryCode string

	EmailJS  EmailJSConfig
	Twilio   TwilioConfig
	Operator OperatorConfig
}

func Load() (*Config, error) {
	cfg := &Config{
		AppEnv:      strings.ToLower(getEnv("APP_ENV", "dev")),
		Port:        getEnv("PORT", defaultPort),
		DatabaseURL: getEnv("DATABASE_URL", defaultDatabaseURL),
		JWTSecret:   os.Getenv("JWT_SECRET"),
		LogLevel:    getEnv("LOG_LEVEL", defaultLogLevel),
		LogFormat:   getEnv("LOG_FORMAT", defaultLogFormat),
		CountryCode: getEnv("PHONE_COUNTRY_CODE", defaultCountryCode),
		EmailJS: EmailJSConfig{
			ServiceID:           os.Getenv("EMAILJS_SERVICE_ID"),
			PublicKey:           os.Getenv("EMAILJS_PUBLIC_KEY"),
			BookingTemplateID:   os.Getenv("EMAILJS_BOOKING_TEMPLATE_ID"),
			ConfirmedTemplateID: os.Getenv("EMAILJS_CONFIRMED_TEMPLATE_ID"),
		},
		Twilio: TwilioConfig{
			AccountSID: os.Getenv("TWILIO_ACCOUNT_SID"),
			AuthToken:  os.Getenv("TWILIO_AUTH_TOKEN"),
			FromNumber: os.Getenv("TWILIO_FROM_NUMBER"),
		},
		Operator: OperatorConfig{
			Name:    getEnv("OPERATOR_NAME", defaultOperatorName),
			Email:   os.Getenv("OPERATOR_EMAIL"),
			Phone:   os.Getenv("OPERATOR_PHONE"),
			Address: os.Getenv("OPERATOR_ADDRESS"),
		},
	}

	ttlRaw := getEnv("ADMIN_SESSION_TTL", defaultSessionTTL)
	ttl, err := time.ParseDuration(ttlRaw)
	if err != nil {
		return nil, fmt.Errorf("invalid ADMIN_SESSION_TTL %q: %w", ttlRaw, err)
	}
	cfg.SessionTTL = ttl

	if cfg.JWTSecret == "" {
		if cfg.AppEnv == "prod" || cfg.AppEnv == "production" {
			return nil, fmt.Errorf("JWT_SECRET is required in %s", cfg.AppEnv)
		}
		cfg.JWTSecret = "change-me-jwt-secret"
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}
