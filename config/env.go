package config

import (
	"fmt"
	"os"
	"sync"

	"github.com/joho/godotenv"
)

// Config holds all environment configuration
type Config struct {
	// Application
	AppName string
	AppHost string
	AppPort string

	// Database
	DatabaseHost     string
	DatabasePort     string
	PostgresUser     string
	PostgresPassword string
	DatabaseName     string
	DatabasePoolSize int
}

var (
	appConfig *Config
	onceEnv   sync.Once
)

func loadConfig() *Config {
	// Load .env file if it exists
	_ = godotenv.Load()

	config := &Config{
		AppName: getEnvWithDefault("CPL_APP_NAME", "cpl-backend"),
		AppHost: getEnvWithDefault("CPL_APP_HOST", "0.0.0.0"),
		AppPort: getEnvWithDefault("CPL_APP_PORT", "8000"),

		DatabaseHost:     getEnvWithDefault("CPL_DB_HOST", "localhost"),
		DatabasePort:     getEnvWithDefault("CPL_DB_PORT", "5432"),
		PostgresUser:     getEnvWithDefault("CPL_DB_USER", "postgres"),
		PostgresPassword: getEnvWithDefault("CPL_DB_PWD", "postgres"),
		DatabaseName:     getEnvWithDefault("CPL_DB_NAME", "postgres"),
		DatabasePoolSize: getEnvAsInt("CPL_DB_POOL_SIZE", 10),
	}

	appConfig = config
	return config
}

func Env() *Config {
	onceEnv.Do(func() {
		appConfig = loadConfig()
	})
	return appConfig
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
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

func getEnvWithDefault(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

// IsProduction returns true if running in production
func IsProduction() bool {
	return getEnvWithDefault("CPL_APP_ENV", "dev") == "prod"
}
