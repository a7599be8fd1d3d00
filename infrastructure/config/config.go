package config

import (
	"fmt"
	"os"
	"strconv"
)

// Config holds all application configuration
type Config struct {
	// Server configuration
	ServerAddress string
	Environment   string

	// Request handling
	ReadTimeoutSeconds  int
	WriteTimeoutSeconds int
	IdleTimeoutSeconds  int
	MaxBodyBytes        int

	// Dynamic limits overlay, optional
	DynamicConfigPath string

	// Logging
	LogLevel string

	// Feature flags
	EnableMetrics    bool
	MetricsNamespace string
	EnableCORS       bool
}

// LoadConfig loads configuration from environment variables
func LoadConfig() (*Config, error) {
	cfg := &Config{
		ServerAddress: getEnv("SERVER_ADDRESS", ":8080"),
		Environment:   getEnv("ENVIRONMENT", "development"),

		ReadTimeoutSeconds:  getEnvInt("READ_TIMEOUT_SECONDS", 15),
		WriteTimeoutSeconds: getEnvInt("WRITE_TIMEOUT_SECONDS", 15),
		IdleTimeoutSeconds:  getEnvInt("IDLE_TIMEOUT_SECONDS", 60),
		MaxBodyBytes:        getEnvInt("MAX_BODY_BYTES", 1<<20),

		DynamicConfigPath: getEnv("DYNAMIC_CONFIG_PATH", ""),

		LogLevel:         getEnv("LOG_LEVEL", "info"),
		EnableMetrics:    getEnvBool("ENABLE_METRICS", true),
		MetricsNamespace: getEnv("METRICS_NAMESPACE", "kaku"),
		EnableCORS:       getEnvBool("ENABLE_CORS", true),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks if all required configuration is present
func (c *Config) Validate() error {
	if c.ServerAddress == "" {
		return fmt.Errorf("SERVER_ADDRESS cannot be empty")
	}
	if c.ReadTimeoutSeconds <= 0 || c.WriteTimeoutSeconds <= 0 {
		return fmt.Errorf("server timeouts must be positive")
	}
	if c.MaxBodyBytes <= 0 {
		return fmt.Errorf("MAX_BODY_BYTES must be positive")
	}
	return nil
}

// IsDevelopment checks if running in development mode
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// IsProduction checks if running in production mode
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// getEnv gets an environment variable with a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvBool gets a boolean environment variable with a default value
func getEnvBool(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value == "true" || value == "1" || value == "yes"
}

// getEnvInt gets an integer environment variable with a default value
func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}
