package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds all application configuration shared by both binaries.
type Config struct {
	WebPort     string
	APIPort     string
	GinMode     string
	LogLevel    string
	LogFormat   string
	DatabaseURL string
	MaxDBConns  int32
	// SecretKey signs the session cookie that carries flash notices.
	SecretKey string
	// AllowedOrigins controls CORS on the query service.
	// Empty slice means all origins are permitted (dev default).
	AllowedOrigins []string
}

// Load reads configuration from environment variables with sensible defaults.
// It loads .env file if present but does not fail if missing.
//
// DATABASE_URL wins when set; otherwise the URL is assembled from the
// discrete DB_USER / DB_PASSWORD / DB_HOST / DB_PORT / DB_NAME variables.
func Load() *Config {
	_ = godotenv.Load() // Ignore error — .env is optional

	return &Config{
		WebPort:        getEnv("PORT", "5000"),
		APIPort:        getEnv("API_PORT", "8000"),
		GinMode:        getEnv("GIN_MODE", "debug"),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		LogFormat:      getEnv("LOG_FORMAT", "pretty"),
		DatabaseURL:    databaseURL(),
		MaxDBConns:     int32(getEnvInt("MAX_DB_CONNS", 16)),
		SecretKey:      getEnv("SECRET_KEY", "devkey"),
		AllowedOrigins: parseOrigins(getEnv("ALLOWED_ORIGINS", "")),
	}
}

func databaseURL() string {
	if v := os.Getenv("DATABASE_URL"); v != "" {
		return v
	}

	user := getEnv("DB_USER", "postgres")
	password := os.Getenv("DB_PASSWORD")
	host := getEnv("DB_HOST", "localhost")
	port := getEnv("DB_PORT", "5432")
	name := getEnv("DB_NAME", "flipr_app")

	userInfo := url.User(user)
	if password != "" {
		userInfo = url.UserPassword(user, password)
	}

	return fmt.Sprintf("postgres://%s@%s:%s/%s?sslmode=disable", userInfo.String(), host, port, name)
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}

// parseOrigins splits a comma-separated origins string into a trimmed slice.
// Returns nil (allow-all) if the input is empty.
func parseOrigins(raw string) []string {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			origins = append(origins, trimmed)
		}
	}
	return origins
}
