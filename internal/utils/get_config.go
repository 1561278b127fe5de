package utils

import (
	"os"
	"strconv"

	"Maltio-Backend/internal/logging"

	"gopkg.in/yaml.v2"
)

type Config struct {
	// Application
	AppPort      string `yaml:"APP_PORT"`
	HistoryLimit string `yaml:"HISTORY_LIMIT"`

	// Logging
	LogLevel  string `yaml:"LOG_LEVEL"`
	LogFormat string `yaml:"LOG_FORMAT"`

	// Database configuration
	DBUser     string `yaml:"DB_USER"`
	DBName     string `yaml:"DB_NAME"`
	DBPassword string `yaml:"DB_PASSWORD"`
	DBPort     string `yaml:"DB_PORT"`
	DBHost     string `yaml:"DB_HOST"`
	DBTimeZone string `yaml:"DB_TIMEZONE"`
}

var config Config

// LoadConfig reads config.yaml from the working directory. A missing or broken
// file leaves every key empty so defaults and environment variables apply.
func LoadConfig() {
	LoadConfigFile("config.yaml")
}

func LoadConfigFile(path string) {
	file, err := os.ReadFile(path)
	if err != nil {
		logging.Warn().Err(err).Str("path", path).Msg("error reading config file")
		return
	}

	var parsed Config
	if err := yaml.Unmarshal(file, &parsed); err != nil {
		logging.Warn().Err(err).Str("path", path).Msg("error parsing config file")
		return
	}
	config = parsed
}

// GetConfig returns the value for key. Environment variables win over the
// config file.
func GetConfig(key string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}

	switch key {
	case "APP_PORT":
		return config.AppPort
	case "HISTORY_LIMIT":
		return config.HistoryLimit
	case "LOG_LEVEL":
		return config.LogLevel
	case "LOG_FORMAT":
		return config.LogFormat
	case "DB_USER":
		return config.DBUser
	case "DB_NAME":
		return config.DBName
	case "DB_PASSWORD":
		return config.DBPassword
	case "DB_PORT":
		return config.DBPort
	case "DB_HOST":
		return config.DBHost
	case "DB_TIMEZONE":
		return config.DBTimeZone
	default:
		return ""
	}
}

func GetConfigOrDefault(key, fallback string) string {
	if value := GetConfig(key); value != "" {
		return value
	}
	return fallback
}

// GetConfigInt returns fallback when key is unset or not a number.
func GetConfigInt(key string, fallback int) int {
	value := GetConfig(key)
	if value == "" {
		return fallback
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		logging.Warn().Str("key", key).Str("value", value).Msg("config value is not a number, using default")
		return fallback
	}
	return n
}
