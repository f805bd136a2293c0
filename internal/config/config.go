package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds all runtime configuration loaded from environment variables.
type Config struct {
	AppPort string
	AppEnv  string

	AllowedOrigins []string // CORS allowed origins

	SMTPHost     string
	SMTPPort     string
	SMTPFrom     string
	SMTPUsername string
	SMTPPassword string

	GoogleClientID string

	DirectoryBaseURL    string
	DirectoryPublicKey  string
	DirectoryPrivateKey string

	JWTSecret string
	JWTExpiry time.Duration

	OTPTTL         time.Duration
	OTPVerifyDelay time.Duration

	RedisAddr     string // empty selects the in-memory OTP store
	RedisPassword string
}

// Load reads all configuration from environment variables. Keys without a
// safe default are required; the process refuses to start without them
// rather than running with a guessable secret.
func Load() (*Config, error) {
	cfg := &Config{
		AppPort: getEnv("APP_PORT", "5000"),
		AppEnv:  getEnv("APP_ENV", "development"),

		AllowedOrigins: strings.Split(getEnv("ALLOWED_ORIGINS", "*"), ","),

		SMTPHost:     getEnv("SMTP_HOST", "localhost"),
		SMTPPort:     getEnv("SMTP_PORT", "1025"),
		SMTPFrom:     getEnv("SMTP_FROM", "noreply@example.com"),
		SMTPUsername: getEnv("SMTP_USERNAME", ""),
		SMTPPassword: getEnv("SMTP_PASSWORD", ""),

		GoogleClientID: os.Getenv("GOOGLE_CLIENT_ID"),

		DirectoryBaseURL:    os.Getenv("DIRECTORY_BASE_URL"),
		DirectoryPublicKey:  os.Getenv("DIRECTORY_PUBLIC_KEY"),
		DirectoryPrivateKey: os.Getenv("DIRECTORY_PRIVATE_KEY"),

		JWTSecret: os.Getenv("JWT_SECRET"),
		JWTExpiry: time.Duration(getEnvInt("JWT_EXPIRY_DAYS", 7)) * 24 * time.Hour,

		OTPTTL:         time.Duration(getEnvInt("OTP_TTL_MINUTES", 5)) * time.Minute,
		OTPVerifyDelay: time.Duration(getEnvInt("OTP_VERIFY_DELAY_SECONDS", 5)) * time.Second,

		RedisAddr:     getEnv("REDIS_ADDR", ""),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),
	}

	var missing []string
	for _, req := range []struct{ key, val string }{
		{"GOOGLE_CLIENT_ID", cfg.GoogleClientID},
		{"DIRECTORY_BASE_URL", cfg.DirectoryBaseURL},
		{"DIRECTORY_PUBLIC_KEY", cfg.DirectoryPublicKey},
		{"DIRECTORY_PRIVATE_KEY", cfg.DirectoryPrivateKey},
		{"JWT_SECRET", cfg.JWTSecret},
	} {
		if req.val == "" {
			missing = append(missing, req.key)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("missing required configuration: %s", strings.Join(missing, ", "))
	}
	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}
