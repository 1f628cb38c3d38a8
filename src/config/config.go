package config

import (
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
)

type AppConfig struct {
	Port         string
	DatabasePath string
	LogLevel     string

	// Upstream LMS endpoints serving the loan snapshots.
	PortfolioAPIURL  string
	CollectionAPIURL string

	FetchTimeout     time.Duration
	SnapshotCacheTTL time.Duration
}

var Cfg *AppConfig

func LoadConfig() {
	errEnv := godotenv.Load()
	if errEnv != nil {
		log.Println("Info: No .env file found or error loading .env file. Relying on OS environment variables and defaults. Error (if any):", errEnv)
	} else {
		log.Println(".env file loaded successfully.")
	}

	log.Println("Loading application configuration...")

	portfolioAPIURL := getEnv("PORTFOLIO_API_URL", "")
	if portfolioAPIURL == "" {
		log.Fatalf("FATAL: PORTFOLIO_API_URL is required but not set in environment or .env file.")
	}
	collectionAPIURL := getEnv("PORTFOLIO_API_URL_WITHOUT_FRAUD", "")
	if collectionAPIURL == "" {
		log.Fatalf("FATAL: PORTFOLIO_API_URL_WITHOUT_FRAUD is required but not set in environment or .env file.")
	}

	Cfg = &AppConfig{
		Port:         getEnv("PORT", "8080"),
		DatabasePath: getEnv("DATABASE_PATH", "./dashboard.db"),
		LogLevel:     getEnv("LOG_LEVEL", "info"),

		PortfolioAPIURL:  portfolioAPIURL,
		CollectionAPIURL: collectionAPIURL,

		FetchTimeout:     getEnvAsDuration("FETCH_TIMEOUT", 60*time.Second),
		SnapshotCacheTTL: getEnvAsDuration("SNAPSHOT_CACHE_TTL", 5*time.Minute),
	}

	log.Printf("Configuration loaded: Port=%s, LogLevel=%s, DBPath=%s, SnapshotCacheTTL=%s",
		Cfg.Port, Cfg.LogLevel, Cfg.DatabasePath, Cfg.SnapshotCacheTTL)
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	log.Printf("Environment variable %s not set, using default: %s", key, fallback)
	return fallback
}

func getEnvAsDuration(key string, fallback time.Duration) time.Duration {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		log.Printf("Duration value for %s not set or empty, using default: %s", key, fallback.String())
		return fallback
	}
	if value, err := time.ParseDuration(valueStr); err == nil {
		return value
	}
	log.Printf("Invalid duration value for %s ('%s'), using default: %s", key, valueStr, fallback.String())
	return fallback
}
