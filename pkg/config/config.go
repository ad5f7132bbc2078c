// Package config reads service configuration from the environment.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/chris/points-ledger/pkg/txretry"
	"github.com/joho/godotenv"
)

// Backend selects the ledger store implementation.
type Backend string

const (
	BackendDynamoDB Backend = "dynamodb"
	BackendSQLite   Backend = "sqlite"
)

// Tables holds the DynamoDB table names.
type Tables struct {
	Accounts     string
	Offers       string
	Reservations string
	Tasks        string
	Progress     string
	Ledger       string
	Connections  string
}

type Config struct {
	Backend    Backend
	SQLitePath string
	Tables     Tables

	// Optional. Empty disables the progress refresh queue.
	SQSQueueURL string
	// Optional. Empty means balance updates are not pushed through API Gateway.
	WebSocketAPIEndpoint string

	HTTPPort      string
	LogLevel      string
	EnforceWindow bool
	Retry         txretry.Policy
}

// Load reads a .env file if there is one, then the environment.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		slog.Info("No .env file found, using environment variables")
	}

	defaults := txretry.DefaultPolicy()
	cfg := &Config{
		Backend:    Backend(getenv("LEDGER_BACKEND", string(BackendDynamoDB))),
		SQLitePath: getenv("SQLITE_PATH", "points-ledger.db"),
		Tables: Tables{
			Accounts:     os.Getenv("DYNAMODB_ACCOUNTS_TABLE_NAME"),
			Offers:       os.Getenv("DYNAMODB_OFFERS_TABLE_NAME"),
			Reservations: os.Getenv("DYNAMODB_RESERVATIONS_TABLE_NAME"),
			Tasks:        os.Getenv("DYNAMODB_TASKS_TABLE_NAME"),
			Progress:     os.Getenv("DYNAMODB_PROGRESS_TABLE_NAME"),
			Ledger:       os.Getenv("DYNAMODB_LEDGER_TABLE_NAME"),
			Connections:  os.Getenv("DYNAMODB_CONNECTIONS_TABLE_NAME"),
		},
		SQSQueueURL:          os.Getenv("SQS_QUEUE_URL"),
		WebSocketAPIEndpoint: os.Getenv("WEBSOCKET_API_ENDPOINT"),
		HTTPPort:             getenv("HTTP_PORT", "8080"),
		LogLevel:             getenv("LOG_LEVEL", "info"),
	}

	var err error
	if cfg.EnforceWindow, err = getBool("RESERVE_ENFORCE_WINDOW", true); err != nil {
		return nil, err
	}
	if cfg.Retry.Attempts, err = getInt("RETRY_ATTEMPTS", defaults.Attempts); err != nil {
		return nil, err
	}
	if cfg.Retry.BaseDelay, err = getDuration("RETRY_BASE_DELAY", defaults.BaseDelay); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks that the selected backend is fully configured.
func (c *Config) Validate() error {
	switch c.Backend {
	case BackendSQLite:
		if c.SQLitePath == "" {
			return errors.New("SQLITE_PATH must be set for the sqlite backend")
		}
	case BackendDynamoDB:
		if err := c.Tables.validate(); err != nil {
			return err
		}
	default:
		return fmt.Errorf("unknown LEDGER_BACKEND %q", c.Backend)
	}
	if c.Retry.Attempts < 1 {
		return fmt.Errorf("RETRY_ATTEMPTS must be at least 1, got %d", c.Retry.Attempts)
	}
	return nil
}

func (t Tables) validate() error {
	names := map[string]string{
		"DYNAMODB_ACCOUNTS_TABLE_NAME":     t.Accounts,
		"DYNAMODB_OFFERS_TABLE_NAME":       t.Offers,
		"DYNAMODB_RESERVATIONS_TABLE_NAME": t.Reservations,
		"DYNAMODB_TASKS_TABLE_NAME":        t.Tasks,
		"DYNAMODB_PROGRESS_TABLE_NAME":     t.Progress,
		"DYNAMODB_LEDGER_TABLE_NAME":       t.Ledger,
		"DYNAMODB_CONNECTIONS_TABLE_NAME":  t.Connections,
	}
	var missing []error
	for env, name := range names {
		if name == "" {
			missing = append(missing, fmt.Errorf("%s is not set", env))
		}
	}
	return errors.Join(missing...)
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getBool(key string, fallback bool) (bool, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("%s: %w", key, err)
	}
	return b, nil
}

func getInt(key string, fallback int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return n, nil
}

func getDuration(key string, fallback time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return d, nil
}
