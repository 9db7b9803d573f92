// Package cli provides the command dispatcher, the interactive loop and the
// initialization helpers of the ledger binary.
package cli

import (
	"context"
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"ledger/internal/backend"
	"ledger/internal/config"
	applog "ledger/internal/log"
)

// LoadEnvFile loads a .env file for local development.
// A missing file is not an error; a malformed one is.
func LoadEnvFile(path string) error {
	if path == "" {
		path = ".env"
	}
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return err
	}
	return nil
}

// SetupLogger builds the application logger from config and sets it as the
// default slog logger. debug overrides the configured level.
func SetupLogger(cfg *config.Config, debug bool) *applog.Logger {
	lc := applog.DefaultConfig()
	if level, err := applog.ParseLevel(cfg.LogLevel); err == nil {
		lc.Level = level
	}
	if debug {
		lc.Level = slog.LevelDebug
	}
	lc.Format = cfg.LogFormat

	logger := applog.New(lc)
	applog.SetDefault(logger)
	return logger
}

// LoadAndValidateConfig loads configuration, applies a non-empty backend
// override and validates the result.
func LoadAndValidateConfig(backendOverride string) (*config.Config, error) {
	cfg := config.Load()
	if backendOverride != "" {
		cfg.DataBackend = backendOverride
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// InitBackend creates the store selected by cfg.
func InitBackend(ctx context.Context, logger *applog.Logger, cfg *config.Config) (*backend.BackendResult, error) {
	bcfg, err := backend.FromAppConfig(cfg)
	if err != nil {
		return nil, err
	}
	return backend.NewFactory(logger).CreateBackend(ctx, bcfg)
}

// GracefulShutdown returns a context cancelled on SIGINT or SIGTERM.
func GracefulShutdown(parent context.Context, logger *applog.Logger) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(parent)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		defer signal.Stop(sigChan)
		select {
		case sig := <-sigChan:
			logger.Info("Shutdown signal received", "signal", sig.String())
			cancel()
		case <-ctx.Done():
		}
	}()

	return ctx, cancel
}
