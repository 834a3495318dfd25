package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

type Config struct {
	Addr          string
	DatabaseURL   string
	Environment   string
	FrontendDir   string
	DocumentDir   string
	MigrationsDir string
	RunMigrations bool
	MaxBodyBytes  int64
}

func Load() Config {
	return Config{
		Addr:          getEnv("APP_ADDR", ":8080"),
		DatabaseURL:   getEnv("DATABASE_URL", ""),
		Environment:   getEnv("APP_ENV", "development"),
		FrontendDir:   getEnv("FRONTEND_DIR", "frontend/dist"),
		DocumentDir:   getEnv("DOCUMENT_DIR", "storage/documents"),
		MigrationsDir: getEnv("MIGRATIONS_DIR", "migrations"),
		RunMigrations: getEnvBool("RUN_MIGRATIONS", true),
		MaxBodyBytes:  int64(getEnvInt("MAX_BODY_BYTES", 1048576)),
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		return fallback
	}
	return parsed
}

func getEnvInt(key string, fallback int) int {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return parsed
}

func (c Config) Validate() error {
	if strings.TrimSpace(c.DatabaseURL) == "" {
		return fmt.Errorf("DATABASE_URL is required")
	}
	if c.MaxBodyBytes < 1024 {
		return fmt.Errorf("MAX_BODY_BYTES must be at least 1024")
	}
	if strings.TrimSpace(c.DocumentDir) == "" {
		return fmt.Errorf("DOCUMENT_DIR is required")
	}
	return nil
}
