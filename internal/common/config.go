package common

import (
	"os"
	"strconv"
)

// Config holds all application configuration.
type Config struct {
	Server  ServerConfig
	OCR     OCRConfig
	Extract ExtractConfig
	Store   StoreConfig
}

// ServerConfig holds HTTP server configuration.
type ServerConfig struct {
	Addr          string
	MaxUploadSize int64
}

// OCRConfig holds text-recognizer configuration.
type OCRConfig struct {
	Tesseract   string
	Lang        string
	TessdataDir string
	PSM         int
}

// ExtractConfig holds field-extraction configuration.
type ExtractConfig struct {
	Strategy  string // "anywhere" or "line"
	RulesPath string // optional label-synonym overrides (JSON)
}

// StoreConfig holds persistence configuration.
type StoreConfig struct {
	Path string // sqlite file path; empty disables persistence
}

// LoadConfig loads configuration from environment variables.
func LoadConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Addr:          getEnv("HTTP_ADDR", ":8080"),
			MaxUploadSize: getEnvAsInt64("MAX_UPLOAD_SIZE", 10<<20),
		},
		OCR: OCRConfig{
			Tesseract:   getEnv("TESSERACT_BIN", "tesseract"),
			Lang:        getEnv("TESSERACT_LANG", "eng"),
			TessdataDir: getEnv("TESSDATA_PREFIX", ""),
			PSM:         getEnvAsInt("TESSERACT_PSM", 0),
		},
		Extract: ExtractConfig{
			Strategy:  getEnv("EXTRACT_STRATEGY", "anywhere"),
			RulesPath: getEnv("EXTRACT_RULES_PATH", ""),
		},
		Store: StoreConfig{
			Path: getEnv("STORE_PATH", ""),
		},
	}
}

// Helper functions for environment variable parsing
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsInt64(key string, defaultValue int64) int64 {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.ParseInt(value, 10, 64); err == nil {
			return intVal
		}
	}
	return defaultValue
}
