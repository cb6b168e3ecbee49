package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for our application
type Config struct {
	Server    ServerConfig
	Database  DatabaseConfig
	Logger    LoggerConfig
	SMS       SMSConfig
	Reminder  ReminderConfig
	CORS      CORSConfig
	Scheduler SchedulerConfig
}

// ServerConfig holds server configuration
type ServerConfig struct {
	Port    string
	GinMode string
}

// DatabaseConfig holds database configuration
type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	DBName   string
	SSLMode  string
}

// LoggerConfig holds logger configuration
type LoggerConfig struct {
	Level  string
	Format string
}

// SMSConfig holds SMS gateway configuration
type SMSConfig struct {
	APIURL        string
	APIToken      string
	CountryPrefix string
	Timeout       time.Duration
}

// ReminderConfig holds bill-due reminder configuration
type ReminderConfig struct {
	WindowDays     int
	Timezone       string
	CurrencySymbol string
}

// CORSConfig holds CORS configuration
type CORSConfig struct {
	AllowedOrigins string
}

// SchedulerConfig holds scheduler configuration
type SchedulerConfig struct {
	ReminderCronExpression string
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		// It's okay if .env file doesn't exist
		fmt.Println("No .env file found, using environment variables")
	}

	config := &Config{
		Server: ServerConfig{
			Port:    getEnv("PORT", "8080"),
			GinMode: getEnv("GIN_MODE", "debug"),
		},
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnvAsInt("DB_PORT", 5432),
			User:     getEnv("DB_USER", "admin"),
			Password: getEnv("DB_PASSWORD", "secret"),
			DBName:   getEnv("DB_NAME", "waterbill"),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
		},
		Logger: LoggerConfig{
			Level:  getEnv("LOG_LEVEL", "debug"),
			Format: getEnv("LOG_FORMAT", "json"),
		},
		SMS: SMSConfig{
			APIURL:        getEnv("SMS_API_URL", "https://sms.iprogtech.com/api/v1/sms_messages"),
			APIToken:      getEnv("SMS_API_TOKEN", ""),
			CountryPrefix: getEnv("SMS_COUNTRY_PREFIX", "+63"),
			Timeout:       time.Duration(getEnvAsInt("SMS_TIMEOUT_SECONDS", 30)) * time.Second,
		},
		Reminder: ReminderConfig{
			WindowDays:     getEnvAsInt("REMINDER_WINDOW_DAYS", 3),
			Timezone:       getEnv("REMINDER_TIMEZONE", "Asia/Manila"),
			CurrencySymbol: getEnv("CURRENCY_SYMBOL", "₱"),
		},
		CORS: CORSConfig{
			AllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:3000,http://127.0.0.1:3000"),
		},
		Scheduler: SchedulerConfig{
			ReminderCronExpression: getEnv("REMINDER_CRON_EXPRESSION", "0 0 8 * * *"),
		},
	}

	return config, nil
}

// GetDSN returns PostgreSQL connection string
func (d *DatabaseConfig) GetDSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode,
	)
}

// getEnv gets an environment variable with a fallback value
func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

// getEnvAsInt gets an environment variable as integer with a fallback value
func getEnvAsInt(key string, fallback int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return fallback
}
