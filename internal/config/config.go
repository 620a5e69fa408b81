package config

import (
	"fmt"
	"os"
	"strings"
)

type Config struct {
	// Database
	DBHost      string
	DBPort      string
	DBUser      string
	DBPassword  string
	DBName      string
	DBSSLMode   string
	DatabaseURL string

	// Redis
	EnableRedis bool
	RedisURL    string

	// Server
	Port        string
	Environment string
	LogLevel    string

	// CORS
	CORSOrigins []string

	// Rate limiting
	RateLimitRequests int
	RateLimitWindow   int

	// Features
	EnableCache   bool
	EnableMetrics bool

	// Viewer identity
	JWTSecret    string
	GuestGroupID uint

	// Catalog
	DefaultLanguageID uint
	DefaultLanguage   string
	MaxTreeDepth      int

	// Site meta
	SiteName string
	SiteURL  string

	// Media
	MediaBaseURL string
}

func New() *Config {
	c := &Config{
		// Database
		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBUser:     getEnv("DB_USER", "shopuser"),
		DBPassword: getEnv("DB_PASSWORD", "shoppassword"),
		DBName:     getEnv("DB_NAME", "shopdb"),
		DBSSLMode:  getEnv("DB_SSLMODE", "disable"),

		// Redis
		EnableRedis: getEnvAsBool("ENABLE_REDIS", true),
		RedisURL:    getEnv("REDIS_URL", "localhost:6379"),

		// Server
		Port:        getEnv("PORT", "8080"),
		Environment: getEnv("ENVIRONMENT", "development"),
		LogLevel:    getEnv("LOG_LEVEL", "debug"),

		// CORS
		CORSOrigins: strings.Split(getEnv("CORS_ORIGINS", "http://localhost:3000,http://localhost:8080"), ","),

		// Rate limiting
		RateLimitRequests: getEnvAsInt("RATE_LIMIT_REQUESTS", 100),
		RateLimitWindow:   getEnvAsInt("RATE_LIMIT_WINDOW", 60),

		// Features
		EnableCache:   getEnvAsBool("ENABLE_CACHE", true),
		EnableMetrics: getEnvAsBool("ENABLE_METRICS", true),

		// Viewer identity
		JWTSecret:    getEnv("JWT_SECRET", "change-this-storefront-secret-in-production"),
		GuestGroupID: uint(getEnvAsInt("GUEST_GROUP_ID", 1)),

		// Catalog
		DefaultLanguageID: uint(getEnvAsInt("DEFAULT_LANGUAGE_ID", 1)),
		DefaultLanguage:   getEnv("DEFAULT_LANGUAGE", "en"),
		MaxTreeDepth:      getEnvAsInt("MAX_TREE_DEPTH", 64),

		// Site meta
		SiteName: getEnv("SITE_NAME", "Storefront"),
		SiteURL:  getEnv("SITE_URL", "http://localhost:8080"),

		// Media
		MediaBaseURL: getEnv("MEDIA_BASE_URL", "http://localhost:8080/img/c"),
	}

	c.DatabaseURL = fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s",
		c.DBUser, c.DBPassword, c.DBHost, c.DBPort, c.DBName, c.DBSSLMode,
	)

	return c
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}
	var value int
	_, err := fmt.Sscanf(valueStr, "%d", &value)
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvAsBool(key string, defaultValue bool) bool {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}
	return valueStr == "true" || valueStr == "1"
}

func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}
