package config

import (
	"errors"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/hugohenrick/cafe-pos/internal/infrastructure/database"
	"github.com/hugohenrick/cafe-pos/pkg/logger"
)

// ErrMissingJWTSecret indica que JWT_SECRET não foi configurado
var ErrMissingJWTSecret = errors.New("chave secreta JWT não configurada")

// Config reúne as configurações da aplicação lidas do ambiente
type Config struct {
	HTTPPort        string
	BasePath        string
	CORSOrigins     []string
	GinMode         string
	JWTSecret       string
	JWTExpiration   time.Duration
	CookieSecure    bool
	CookieSameSite  string
	OtelEndpoint    string
	ServiceName     string
	ShutdownTimeout time.Duration
	Log             logger.Config
	Database        database.PostgresConfig
}

// Load lê as variáveis de ambiente aplicando valores padrão
func Load() *Config {
	return &Config{
		HTTPPort:        getEnv("PORT", "8080"),
		BasePath:        getEnv("API_BASE_PATH", "/api/v1"),
		CORSOrigins:     splitList(getEnv("CORS_ORIGINS", "http://localhost:5173")),
		GinMode:         getEnv("GIN_MODE", "debug"),
		JWTSecret:       os.Getenv("JWT_SECRET"),
		JWTExpiration:   getDuration("JWT_EXPIRATION", 7*24*time.Hour),
		CookieSecure:    getBool("COOKIE_SECURE", false),
		CookieSameSite:  getEnv("COOKIE_SAMESITE", "lax"),
		OtelEndpoint:    os.Getenv("OTEL_ENDPOINT"),
		ServiceName:     getEnv("OTEL_SERVICE_NAME", "cafe-pos"),
		ShutdownTimeout: getDuration("SHUTDOWN_TIMEOUT", 10*time.Second),
		Log:             logger.NewConfigFromEnv(),
		Database: database.PostgresConfig{
			URL:             os.Getenv("DATABASE_URL"),
			Host:            getEnv("DB_HOST", "localhost"),
			Port:            getInt("DB_PORT", 5432),
			User:            getEnv("DB_USER", "postgres"),
			Password:        getEnv("DB_PASSWORD", "postgres"),
			Database:        getEnv("DB_NAME", "cafe_pos"),
			SSLMode:         getEnv("DB_SSL_MODE", "disable"),
			MaxConnections:  int32(getInt("DB_MAX_CONNECTIONS", 10)),
			MinConnections:  int32(getInt("DB_MIN_CONNECTIONS", 2)),
			MaxConnLifetime: time.Duration(getInt("DB_MAX_LIFETIME", 300)) * time.Second,
			TxIsolation:     database.ParseIsolation(os.Getenv("DB_TX_ISOLATION")),
		},
	}
}

// Validate verifica as configurações obrigatórias
func (c *Config) Validate() error {
	if strings.TrimSpace(c.JWTSecret) == "" {
		return ErrMissingJWTSecret
	}
	return nil
}

// getEnv retorna o valor de uma variável de ambiente ou um valor padrão
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getInt(key string, defaultValue int) int {
	v, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		return defaultValue
	}
	return v
}

func getBool(key string, defaultValue bool) bool {
	v, err := strconv.ParseBool(os.Getenv(key))
	if err != nil {
		return defaultValue
	}
	return v
}

// getDuration aceita "24h", "30m" ou um número de horas ("168")
func getDuration(key string, defaultValue time.Duration) time.Duration {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return defaultValue
	}
	if d, err := time.ParseDuration(raw); err == nil {
		return d
	}
	if hours, err := strconv.Atoi(raw); err == nil {
		return time.Duration(hours) * time.Hour
	}
	if strings.HasSuffix(raw, "d") {
		if days, err := strconv.Atoi(strings.TrimSuffix(raw, "d")); err == nil {
			return time.Duration(days) * 24 * time.Hour
		}
	}
	return defaultValue
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
