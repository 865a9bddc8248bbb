package config

import (
	"os"
	"strings"
	"time"
)

type AppConfig struct {
	// Server
	HTTPAddr string

	// Backend REST API
	APIBaseURL string

	// Session storage
	RedisAddr string
	RedisPass string

	// Session cookie
	SessionCookie string
	SessionTTL    time.Duration
	CookieSecure  bool
}

// Load loads environment variables into AppConfig.
func Load() AppConfig {
	return AppConfig{
		HTTPAddr:   getEnv("HTTP_ADDR", ":3000"),
		APIBaseURL: getEnv("API_BASE_URL", "http://localhost:8080/api"),

		RedisAddr: getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPass: getEnv("REDIS_PASS", ""),

		SessionCookie: getEnv("SESSION_COOKIE", "kp_session"),
		SessionTTL:    getEnvDuration("SESSION_TTL", 720*time.Hour),
		CookieSecure:  strings.ToLower(getEnv("COOKIE_SECURE", "false")) == "true",
	}
}

// --- Helper functions ---

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}
