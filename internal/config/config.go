package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"

	applog "ledger/internal/log"
)

type Config struct {
	// Backend selection
	DataBackend string

	// AMQP (optional, empty URL disables publishing)
	AMQPURL            string
	AMQPExchange       string
	AMQPQueue          string
	AMQPConnectRetries int

	// Logging
	LogLevel  string
	LogFormat string

	// problems found while reading the environment, reported by Validate
	loadErrors []string
}

func Load() *Config {
	var problems []string
	cfg := &Config{
		DataBackend: getEnv("DATA_BACKEND", "memory"),

		AMQPURL:            getEnv("AMQP_URL", ""),
		AMQPExchange:       getEnv("AMQP_EXCHANGE", "ledger"),
		AMQPQueue:          getEnv("AMQP_QUEUE", "transactions"),
		AMQPConnectRetries: getEnvInt("AMQP_CONNECT_RETRIES", 2, &problems),

		LogLevel:  getEnv("LOG_LEVEL", "warn"),
		LogFormat: getEnv("LOG_FORMAT", "text"),

		loadErrors: problems,
	}

	return cfg
}

// Validate validates the configuration and returns an error if invalid
func (c *Config) Validate() error {
	errors := append([]string(nil), c.loadErrors...)

	// Validate data backend
	validBackends := []string{"memory", "sqlite"}
	isValidBackend := false
	for _, backend := range validBackends {
		if c.DataBackend == backend {
			isValidBackend = true
			break
		}
	}
	if !isValidBackend {
		errors = append(errors, fmt.Sprintf("invalid data backend '%s': must be one of %v", c.DataBackend, validBackends))
	}

	// Validate AMQP URL if provided
	if c.AMQPURL != "" {
		if parsedURL, err := url.Parse(c.AMQPURL); err != nil {
			errors = append(errors, fmt.Sprintf("invalid AMQP URL '%s': %v", c.AMQPURL, err))
		} else if parsedURL.Scheme != "amqp" && parsedURL.Scheme != "amqps" {
			errors = append(errors, fmt.Sprintf("invalid AMQP URL scheme '%s': must be 'amqp' or 'amqps'", parsedURL.Scheme))
		}

		if c.AMQPExchange == "" {
			errors = append(errors, "AMQP exchange name cannot be empty when AMQP URL is provided")
		}
		if c.AMQPQueue == "" {
			errors = append(errors, "AMQP queue name cannot be empty when AMQP URL is provided")
		}
	}

	if c.AMQPConnectRetries < 0 || c.AMQPConnectRetries > 10 {
		errors = append(errors, fmt.Sprintf("invalid AMQP connect retries %d: must be between 0 and 10", c.AMQPConnectRetries))
	}

	// Validate logging
	if _, err := applog.ParseLevel(c.LogLevel); err != nil {
		errors = append(errors, fmt.Sprintf("invalid log level '%s': must be one of debug, info, warn, error", c.LogLevel))
	}
	if c.LogFormat != "text" && c.LogFormat != "json" {
		errors = append(errors, fmt.Sprintf("invalid log format '%s': must be 'text' or 'json'", c.LogFormat))
	}

	// Return combined errors
	if len(errors) > 0 {
		return fmt.Errorf("configuration validation failed:\n- %s", strings.Join(errors, "\n- "))
	}

	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvInt falls back to defaultValue when key is unset or malformed; a
// malformed value is also recorded in problems.
func getEnvInt(key string, defaultValue int, problems *[]string) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	i, err := strconv.Atoi(value)
	if err != nil {
		*problems = append(*problems, fmt.Sprintf("invalid %s '%s': must be an integer", key, value))
		return defaultValue
	}
	return i
}
