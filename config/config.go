package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds application configuration
type Config struct {
	Port      string
	APIPrefix string

	DBDriver       string // sqlite, postgres or mysql
	DBName         string // sqlite file or server database name
	DBHost         string
	DBPort         string
	DBUser         string
	DBPassword     string
	DBDSN          string // overrides the DSN built from the fields above
	DBMaxOpenConns int
	DBMaxIdleConns int

	LogMode          string
	CORSAllowOrigins string
}

// AppConfig is a global variable to access configuration
var AppConfig *Config

// LoadConfig initializes configuration from environment variables or defaults
func LoadConfig() *Config {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found. Using system environment variables.")
	}

	AppConfig = &Config{
		Port:      getEnv("PORT", "8000"),
		APIPrefix: normalizePrefix(getEnv("API_PREFIX", "/api")),

		DBDriver:       strings.ToLower(getEnv("DB_DRIVER", "sqlite")),
		DBName:         getEnv("DB_NAME", "kisan.db"),
		DBHost:         getEnv("DB_HOST", "localhost"),
		DBPort:         getEnv("DB_PORT", ""),
		DBUser:         getEnv("DB_USER", ""),
		DBPassword:     getEnv("DB_PASSWORD", ""),
		DBDSN:          getEnv("DB_DSN", ""),
		DBMaxOpenConns: getEnvInt("DB_MAX_OPEN_CONNS", 10),
		DBMaxIdleConns: getEnvInt("DB_MAX_IDLE_CONNS", 5),

		LogMode:          getEnv("LOG_MODE", "dev"),
		CORSAllowOrigins: getEnv("CORS_ALLOW_ORIGINS", "*"),
	}

	if AppConfig.DBDriver == "sqlite" && AppConfig.DBName == "kisan.db" {
		log.Println("Warning: Using default sqlite database kisan.db. Set DB_DRIVER/DB_NAME for production.")
	}
	return AppConfig
}

// normalizePrefix turns "api/", "/api/" and "api" into "/api"; "" and "/" mean no prefix.
func normalizePrefix(p string) string {
	p = strings.Trim(strings.TrimSpace(p), "/")
	if p == "" {
		return ""
	}
	return "/" + p
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

// getEnvInt retrieves an environment variable as an integer or returns the default integer value
func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	intValue, err := strconv.Atoi(value)
	if err != nil {
		log.Printf("Error converting environment variable %s to int: %v", key, err)
		return defaultValue
	}
	return intValue
}
