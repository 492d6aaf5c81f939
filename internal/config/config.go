package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	AppPort        string
	DbHost         string
	DbPort         string
	DbUser         string
	DbPassword     string
	DbName         string
	DbParams       string
	AuthUsername   string
	AuthPassword   string
	JWTSecret      string
	JWTTTL         time.Duration
	AuthRequired   bool
	TrustedProxies []string
}

func LoadConfig() *Config {
	_ = godotenv.Load(".env")

	return &Config{
		AppPort:        getEnv("APP_PORT", "8080"),
		DbHost:         getEnv("MYSQL_HOST", "db"),
		DbPort:         getEnv("MYSQL_PORT", "3306"),
		DbUser:         getEnv("MYSQL_USER", "taskapp"),
		DbPassword:     getEnv("MYSQL_PASSWORD", "taskapp"),
		DbName:         getEnv("MYSQL_DATABASE", "taskapp"),
		DbParams:       getEnv("MYSQL_PARAMS", "parseTime=true&multiStatements=true"),
		AuthUsername:   getEnv("AUTH_USERNAME", "admin"),
		AuthPassword:   getEnv("AUTH_PASSWORD", "admin123"),
		JWTSecret:      getEnv("JWT_SECRET", "taskapp-dev-secret-change-me"),
		JWTTTL:         getDurationEnv("JWT_TTL", 24*time.Hour),
		AuthRequired:   getBoolEnv("AUTH_REQUIRED", false),
		TrustedProxies: parseTrustedProxies(os.Getenv("TRUSTED_PROXIES")),
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getBoolEnv(key string, fallback bool) bool {
	value, exists := os.LookupEnv(key)
	if !exists {
		return fallback
	}
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		return fallback
	}
	return parsed
}

func getDurationEnv(key string, fallback time.Duration) time.Duration {
	value, exists := os.LookupEnv(key)
	if !exists {
		return fallback
	}
	parsed, err := time.ParseDuration(value)
	if err != nil || parsed <= 0 {
		return fallback
	}
	return parsed
}

func parseTrustedProxies(value string) []string {
	if strings.TrimSpace(value) == "" {
		return nil
	}

	parts := strings.Split(value, ",")
	proxies := make([]string, 0, len(parts))
	for _, part := range parts {
		proxy := strings.TrimSpace(part)
		if proxy == "" {
			continue
		}
		proxies = append(proxies, proxy)
	}

	if len(proxies) == 0 {
		return nil
	}

	return proxies
}
