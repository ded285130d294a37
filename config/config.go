// Package config provides configuration for the section generation service.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds the service configuration, loaded once at startup.
type Config struct {
	// Server settings
	HTTPPort int

	// Database
	DatabaseURL string

	// Generation provider
	ProviderBaseURL string
	ProviderAPIKey  string
	ProviderModel   string
	MaxOutputTokens int
	LLMTimeout      time.Duration

	// Retrieval
	TopK int

	// Logging
	LogLevel string
}

// Load loads configuration from environment variables. Provider settings are
// required and missing ones fail the load, except in mock mode
// (SECTIOND_MODE=MOCK) where the provider is never called.
func Load() (*Config, error) {
	cfg := &Config{
		HTTPPort:        getEnvInt("HTTP_PORT", 8080),
		DatabaseURL:     getEnv("DATABASE_URL", "file:sectiond.db?cache=shared&mode=rwc"),
		ProviderBaseURL: os.Getenv("OPENROUTER_API_BASE"),
		ProviderAPIKey:  os.Getenv("OPENROUTER_KEY"),
		ProviderModel:   os.Getenv("OPENROUTER_MODEL"),
		MaxOutputTokens: getEnvInt("MAX_OUTPUT_TOKENS", 350),
		LLMTimeout:      time.Duration(getEnvInt("LLM_TIMEOUT_MS", 60000)) * time.Millisecond,
		TopK:            getEnvInt("RETRIEVAL_TOP_K", 3),
		LogLevel:        getEnv("LOG_LEVEL", "info"),
	}

	if os.Getenv("SECTIOND_MODE") == "MOCK" {
		return cfg, nil
	}

	var missing []string
	for _, f := range []struct {
		name  string
		value string
	}{
		{"OPENROUTER_API_BASE", cfg.ProviderBaseURL},
		{"OPENROUTER_KEY", cfg.ProviderAPIKey},
		{"OPENROUTER_MODEL", cfg.ProviderModel},
	} {
		if f.value == "" {
			missing = append(missing, f.name)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("missing required environment variables: %s", strings.Join(missing, ", "))
	}
	return cfg, nil
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func getEnvInt(key string, defaultVal int) int {
	if val := os.Getenv(key); val != "" {
		if intVal, err := strconv.Atoi(val); err == nil {
			return intVal
		}
	}
	return defaultVal
}
