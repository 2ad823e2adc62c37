package config

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Redis    RedisConfig
	Admin    AdminConfig
	Uploads  UploadsConfig
	App      AppConfig
}

type ServerConfig struct {
	Port         string
	AllowOrigins []string
}

type DatabaseConfig struct {
	DSN      string
	MaxConns int
	MinConns int
}

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

type AdminConfig struct {
	// Bcrypt hash of the admin password. Login is disabled when empty.
	PasswordHash      string
	SessionTTLMinutes int
}

type UploadsConfig struct {
	// Root directory for uploaded assets; images land in {Dir}/images.
	Dir string
	// Files referenced by no project and older than this many hours are
	// removed by the nightly sweep.
	SweepGraceHours int
}

type AppConfig struct {
	Environment string
	Version     string
}

func Load() (*Config, error) {
	// Load .env file if it exists (ignore error in production)
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := &Config{
		Server: ServerConfig{
			Port:         getEnv("PORT", "8080"),
			AllowOrigins: []string{getEnv("CORS_ORIGIN", "http://localhost:3000")},
		},
		Database: DatabaseConfig{
			DSN:      getEnv("DB_DSN", ""),
			MaxConns: getEnvAsInt("DB_MAX_CONNS", 10),
			MinConns: getEnvAsInt("DB_MIN_CONNS", 2),
		},
		Redis: RedisConfig{
			Addr:     getEnv("REDIS_ADDR", "localhost:6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvAsInt("REDIS_DB", 0),
		},
		Admin: AdminConfig{
			PasswordHash:      getEnv("ADMIN_PASSWORD_HASH", ""),
			SessionTTLMinutes: getEnvAsInt("ADMIN_SESSION_TTL_MINUTES", 720),
		},
		Uploads: UploadsConfig{
			Dir:             getEnv("UPLOADS_DIR", "./uploads"),
			SweepGraceHours: getEnvAsInt("UPLOADS_SWEEP_GRACE_HOURS", 24),
		},
		App: AppConfig{
			Environment: getEnv("APP_ENV", "development"),
			Version:     getEnv("APP_VERSION", "1.0.0"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return fmt.Errorf("PORT is required")
	}

	if c.Database.DSN == "" {
		return fmt.Errorf("DB_DSN is required")
	}

	if c.Uploads.Dir == "" {
		return fmt.Errorf("UPLOADS_DIR is required")
	}

	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Printf("Warning: Invalid integer for %s, using default: %d", key, defaultValue)
		return defaultValue
	}

	return value
}
