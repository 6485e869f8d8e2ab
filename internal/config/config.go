package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Database   DatabaseConfig
	JWT        JWTConfig
	App        AppConfig
	Attendance AttendanceConfig
	Cron       CronConfig
}

type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Name     string
	SSLMode  string
}

// JWTConfig holds JWT configuration
type JWTConfig struct {
	Secret string
}

// AppConfig holds application configuration
type AppConfig struct {
	Port     int
	Env      string
	LogLevel string
}

// AttendanceConfig holds clock-in classification thresholds. The late grace
// window is configuration, not a per-call-site constant.
type AttendanceConfig struct {
	LateGraceMinutes   int
	EarlyWindowMinutes int
}

// CronConfig holds background job settings
type CronConfig struct {
	Enabled             bool
	MissedShiftInterval time.Duration
}

func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	config := &Config{}

	// Database configuration
	dbPort, err := strconv.Atoi(getEnv("DB_PORT", "5432"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_PORT: %w", err)
	}

	config.Database = DatabaseConfig{
		Host:     getEnv("DB_HOST", "localhost"),
		Port:     dbPort,
		User:     getEnv("DB_USER", "postgres"),
		Password: getEnv("DB_PASSWORD", ""),
		Name:     getEnv("DB_NAME", "hrms"),
		SSLMode:  getEnv("DB_SSL_MODE", "disable"),
	}

	// Application configuration
	appPort, err := strconv.Atoi(getEnv("APP_PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid APP_PORT: %w", err)
	}

	config.App = AppConfig{
		Port:     appPort,
		Env:      getEnv("APP_ENV", "development"),
		LogLevel: getEnv("LOG_LEVEL", "info"),
	}

	// JWT configuration
	config.JWT = JWTConfig{
		Secret: getEnv("JWT_SECRET_KEY", ""),
	}

	// Attendance thresholds
	graceMinutes, err := strconv.Atoi(getEnv("LATE_GRACE_MINUTES", "10"))
	if err != nil {
		return nil, fmt.Errorf("invalid LATE_GRACE_MINUTES: %w", err)
	}
	earlyWindow, err := strconv.Atoi(getEnv("EARLY_WINDOW_MINUTES", "30"))
	if err != nil {
		return nil, fmt.Errorf("invalid EARLY_WINDOW_MINUTES: %w", err)
	}
	config.Attendance = AttendanceConfig{
		LateGraceMinutes:   graceMinutes,
		EarlyWindowMinutes: earlyWindow,
	}

	// Cron configuration
	missedInterval, err := time.ParseDuration(getEnv("CRON_MISSED_SHIFT_INTERVAL", "1h"))
	if err != nil {
		return nil, fmt.Errorf("invalid CRON_MISSED_SHIFT_INTERVAL: %w", err)
	}
	config.Cron = CronConfig{
		Enabled:             getEnv("CRON_ENABLED", "true") == "true",
		MissedShiftInterval: missedInterval,
	}

	// Validate required fields
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Database.Password == "" {
		return fmt.Errorf("DB_PASSWORD is required")
	}
	if c.JWT.Secret == "" {
		return fmt.Errorf("JWT_SECRET_KEY is required")
	}
	if c.Attendance.LateGraceMinutes < 0 {
		return fmt.Errorf("LATE_GRACE_MINUTES must not be negative")
	}
	if c.Attendance.EarlyWindowMinutes < 0 {
		return fmt.Errorf("EARLY_WINDOW_MINUTES must not be negative")
	}
	return nil
}

// DatabaseURL returns the PostgreSQL connection string
func (c *Config) DatabaseURL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.Name,
		c.Database.SSLMode,
	)
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
