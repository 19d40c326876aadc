package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config aggregates runtime configuration for the service.
type Config struct {
	App      AppConfig
	Upstream UpstreamConfig
	Redis    RedisConfig
	Logger   LoggerConfig
	Auth     AuthConfig
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

// UpstreamConfig points at the municipal REST API the dashboard manages.
type UpstreamConfig struct {
	BaseURL        string
	TimeoutSeconds int
}

// RedisConfig holds Redis connection values for the session-token cache.
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

// LoggerConfig configures logging behavior.
type LoggerConfig struct {
	Level string
}

// AuthConfig defines dashboard session parameters.
type AuthConfig struct {
	JWTSecret            string
	SessionTTLMinutes    int
	TokenCacheTTLMinutes int
}

// Load reads configuration from environment variables, applying defaults where possible.
func Load() (*Config, error) {
	_ = godotenv.Load()

	redisDB, err := strconv.Atoi(getEnv("REDIS_DB", "0"))
	if err != nil {
		return nil, fmt.Errorf("invalid REDIS_DB: %w", err)
	}

	cfg := &Config{
		App: AppConfig{
			Name:                  getEnv("APP_NAME", "office-admin-service"),
			Env:                   getEnv("APP_ENV", "development"),
			Host:                  getEnv("APP_HOST", "0.0.0.0"),
			Port:                  getEnv("APP_PORT", "8080"),
			Version:               getEnv("APP_VERSION", "dev"),
			RequestTimeoutSeconds: getEnvAsInt("HTTP_REQUEST_TIMEOUT_SECONDS", 30),
		},
		Upstream: UpstreamConfig{
			BaseURL:        getEnv("UPSTREAM_API_BASE", "https://webprojekt3.herokuapp.com/api"),
			TimeoutSeconds: getEnvAsInt("UPSTREAM_TIMEOUT_SECONDS", 15),
		},
		Redis: RedisConfig{
			Addr:     getEnv("REDIS_ADDR", "127.0.0.1:6379"),
			Password: os.Getenv("REDIS_PASSWORD"),
			DB:       redisDB,
		},
		Logger: LoggerConfig{
			Level: getEnv("LOG_LEVEL", "info"),
		},
		Auth: AuthConfig{
			JWTSecret:            getEnv("AUTH_JWT_SECRET", "dev-secret"),
			SessionTTLMinutes:    getEnvAsInt("AUTH_SESSION_TTL_MINUTES", 480),
			TokenCacheTTLMinutes: getEnvAsInt("AUTH_TOKEN_CACHE_TTL_MINUTES", 480),
		},
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

// Timeout returns the upstream HTTP client timeout.
func (u UpstreamConfig) Timeout() time.Duration {
	if u.TimeoutSeconds <= 0 {
		return 15 * time.Second
	}
	return time.Duration(u.TimeoutSeconds) * time.Second
}

// SessionTTL returns the dashboard JWT lifetime.
func (a AuthConfig) SessionTTL() time.Duration {
	if a.SessionTTLMinutes <= 0 {
		return 8 * time.Hour
	}
	return time.Duration(a.SessionTTLMinutes) * time.Minute
}

// TokenCacheTTL returns how long upstream tokens stay cached in Redis.
func (a AuthConfig) TokenCacheTTL() time.Duration {
	if a.TokenCacheTTLMinutes <= 0 {
		return 8 * time.Hour
	}
	return time.Duration(a.TokenCacheTTLMinutes) * time.Minute
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
