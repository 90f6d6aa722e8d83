package config

import (
	"os"
	"strconv"
)

type Config struct {
	Port           string
	LogLevel       string
	HotelAPIURL    string
	RequestTimeout int
	RecentLimit    int
}

func LoadConfig() *Config {
	return &Config{
		Port:           getEnv("PORT", "8080"),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		HotelAPIURL:    getEnv("HOTEL_API_URL", "http://localhost:8001"),
		RequestTimeout: getEnvAsInt("REQUEST_TIMEOUT_SECONDS", 10),
		RecentLimit:    getEnvAsInt("ADMIN_RECENT_LIMIT", 5),
	}
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
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}
