package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config aggregates runtime configuration for the service.
type Config struct {
	App          AppConfig
	Store        StoreConfig
	Logger       LoggerConfig
	Admin        AdminConfig
	SMTP         SMTPConfig
	Notification NotificationConfig
}

// AppConfig controls server level behavior.
type AppConfig struct {
	Name                  string
	Env                   string
	Host                  string
	Port                  string
	Version               string
	RequestTimeoutSeconds int
}

// StoreConfig locates the on-disk JSON documents.
type StoreConfig struct {
	DataDir string
}

// LoggerConfig configures logging behavior.
type LoggerConfig struct {
	Level string
}

// AdminConfig gates the admin endpoints behind a shared-secret key.
// An empty Key is only permitted when AllowInsecure is set explicitly.
type AdminConfig struct {
	Key           string
	AllowInsecure bool
}

// SMTPConfig holds outbound mail settings. An empty host or username
// disables sending entirely.
type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

// NotificationConfig identifies the recipient for booking notifications.
// An empty AdminEmail makes notification a silent no-op.
type NotificationConfig struct {
	AdminEmail string
}

// Load reads configuration from environment variables, applying defaults
// where possible.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		App: AppConfig{
			Name:                  getEnv("APP_NAME", "salon-booking-api"),
			Env:                   getEnv("APP_ENV", "development"),
			Host:                  getEnv("APP_HOST", "0.0.0.0"),
			Port:                  getEnv("APP_PORT", "8080"),
			Version:               getEnv("APP_VERSION", "dev"),
			RequestTimeoutSeconds: getEnvAsInt("HTTP_REQUEST_TIMEOUT_SECONDS", 30),
		},
		Store: StoreConfig{
			DataDir: getEnv("DATA_DIR", "data"),
		},
		Logger: LoggerConfig{
			Level: getEnv("LOG_LEVEL", "info"),
		},
		Admin: AdminConfig{
			Key:           os.Getenv("ADMIN_KEY"),
			AllowInsecure: getEnvAsBool("ADMIN_ALLOW_INSECURE", false),
		},
		SMTP: SMTPConfig{
			Host:     os.Getenv("SMTP_HOST"),
			Port:     getEnvAsInt("SMTP_PORT", 587),
			Username: os.Getenv("SMTP_USER"),
			Password: os.Getenv("SMTP_PASS"),
			From:     getEnv("FROM_EMAIL", "no-reply@glowstack.local"),
		},
		Notification: NotificationConfig{
			AdminEmail: os.Getenv("ADMIN_EMAIL"),
		},
	}

	if cfg.Admin.Key == "" && !cfg.Admin.AllowInsecure {
		return nil, errors.New("ADMIN_KEY is not set; set it or opt in to open admin access with ADMIN_ALLOW_INSECURE=true")
	}

	return cfg, nil
}

// Addr returns the HTTP bind address.
func (a AppConfig) Addr() string {
	return fmt.Sprintf("%s:%s", a.Host, a.Port)
}

// RequestTimeout returns the configured request timeout duration.
func (a AppConfig) RequestTimeout() time.Duration {
	if a.RequestTimeoutSeconds <= 0 {
		return 0
	}
	return time.Duration(a.RequestTimeoutSeconds) * time.Second
}

// Enabled reports whether outbound mail is configured.
func (s SMTPConfig) Enabled() bool {
	return s.Host != "" && s.Username != ""
}

// Addr returns the SMTP dial address.
func (s SMTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	val := os.Getenv(key)
	if val == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(val)
	if err != nil {
		return fallback
	}
	return parsed
}

func getEnvAsBool(key string, fallback bool) bool {
	val := os.Getenv(key)
	if val == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(val)
	if err != nil {
		return fallback
	}
	return parsed
}
