package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds all configuration for the auth gateway
type Config struct {
	// Server
	Port     string
	Host     string
	LogLevel string

	// Identity provider (Keycloak)
	KeycloakBaseURL           string
	KeycloakRealm             string
	KeycloakAdminClientID     string
	KeycloakAdminClientSecret string
	OAuthClientID             string
	OAuthClientSecret         string

	// Downstream
	UserServiceURL string

	// Incident store
	DatabaseURL string

	// Remote-call budget. Each upstream call must finish well within the
	// inbound request budget so a compensating call still fits.
	UpstreamTimeout time.Duration

	// AdminTokenFreshnessMargin is subtracted from the cached token's
	// lifetime when checking freshness.
	AdminTokenFreshnessMargin time.Duration
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	config := &Config{}

	// Server configuration
	config.Port = getEnvOrDefault("PORT", "9500")
	config.Host = getEnvOrDefault("HOST", "0.0.0.0")
	config.LogLevel = getEnvOrDefault("LOG_LEVEL", "info")

	// Keycloak configuration
	var err error
	if config.KeycloakBaseURL, err = requireEnv("KEYCLOAK_BASE_URL"); err != nil {
		return nil, err
	}
	if config.KeycloakRealm, err = requireEnv("KEYCLOAK_REALM"); err != nil {
		return nil, err
	}
	if config.KeycloakAdminClientID, err = requireEnv("KEYCLOAK_ADMIN_CLIENT_ID"); err != nil {
		return nil, err
	}
	if config.KeycloakAdminClientSecret, err = requireEnv("KEYCLOAK_ADMIN_CLIENT_SECRET"); err != nil {
		return nil, err
	}
	if config.OAuthClientID, err = requireEnv("OAUTH_CLIENT_ID"); err != nil {
		return nil, err
	}
	if config.OAuthClientSecret, err = requireEnv("OAUTH_CLIENT_SECRET"); err != nil {
		return nil, err
	}

	// Downstream services
	if config.UserServiceURL, err = requireEnv("USER_SERVICE_URL"); err != nil {
		return nil, err
	}
	if config.DatabaseURL, err = requireEnv("DATABASE_URL"); err != nil {
		return nil, err
	}

	// Timeouts
	config.UpstreamTimeout, err = getDurationEnv("UPSTREAM_TIMEOUT", 10*time.Second)
	if err != nil {
		return nil, err
	}
	config.AdminTokenFreshnessMargin, err = getDurationEnv("ADMIN_TOKEN_FRESHNESS_MARGIN", 5*time.Second)
	if err != nil {
		return nil, err
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	port, err := strconv.Atoi(c.Port)
	if err != nil {
		return fmt.Errorf("invalid port: %s", c.Port)
	}
	if port < 1 || port > 65535 {
		return fmt.Errorf("port must be between 1 and 65535: %s", c.Port)
	}

	validLogLevels := []string{"debug", "info", "warn", "error"}
	if !contains(validLogLevels, strings.ToLower(c.LogLevel)) {
		return fmt.Errorf("invalid log level: %s (must be one of: %s)", c.LogLevel, strings.Join(validLogLevels, ", "))
	}

	for name, value := range map[string]string{
		"KEYCLOAK_BASE_URL": c.KeycloakBaseURL,
		"USER_SERVICE_URL":  c.UserServiceURL,
	} {
		if !isValidURL(value) {
			return fmt.Errorf("%s is not a valid URL: %s", name, value)
		}
	}

	if c.UpstreamTimeout < time.Second {
		return fmt.Errorf("upstream timeout must be at least 1 second, got: %v", c.UpstreamTimeout)
	}
	if c.AdminTokenFreshnessMargin < 0 {
		return fmt.Errorf("admin token freshness margin must not be negative, got: %v", c.AdminTokenFreshnessMargin)
	}

	return nil
}

// Helper functions

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func requireEnv(key string) (string, error) {
	value := os.Getenv(key)
	if value == "" {
		return "", fmt.Errorf("%s is required", key)
	}
	return value, nil
}

func getDurationEnv(key string, defaultValue time.Duration) (time.Duration, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return d, nil
}

func isValidURL(urlStr string) bool {
	parsedURL, err := url.Parse(urlStr)
	if err != nil {
		return false
	}
	return parsedURL.Scheme != "" && parsedURL.Host != ""
}

func contains(slice []string, item string) bool {
	for _, s := range slice {
		if s == item {
			return true
		}
	}
	return false
}
