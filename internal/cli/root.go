package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"ledger/internal/ledger"
	applog "ledger/internal/log"
)

func Execute() {
	cmd := newRootCmd(os.Stdin, os.Stdout)
	if err := cmd.ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}

func newRootCmd(in io.Reader, out io.Writer) *cobra.Command {
	var (
		debug       bool
		backendFlag string
		envFile     string
	)

	cmd := &cobra.Command{
		Use:          "ledger",
		Short:        "ledger records income and expenses and reports them by month",
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := LoadEnvFile(envFile); err != nil {
				return fmt.Errorf("load env file: %w", err)
			}
			cfg, err := LoadAndValidateConfig(backendFlag)
			if err != nil {
				applog.New(applog.DefaultConfig()).Error("Invalid configuration",
					applog.FieldOperation, applog.OpStartup,
					applog.FieldError, err,
					applog.FieldErrorType, applog.ErrorTypeConfiguration)
				return err
			}
			logger := SetupLogger(cfg, debug)

			ctx, cancel := GracefulShutdown(cmd.Context(), logger)
			defer cancel()
			ctx = applog.NewContext(ctx, logger.WithComponent(applog.ComponentCLI))

			res, err := InitBackend(ctx, logger, cfg)
			if err != nil {
				logger.Error("Failed to initialize backend", applog.FieldError, err, applog.FieldBackend, cfg.DataBackend)
				return err
			}
			defer func() {
				if res.Cleanup == nil {
					return
				}
				if err := res.Cleanup(); err != nil {
					logger.Warn("Cleanup failed", applog.FieldOperation, applog.OpShutdown, applog.FieldError, err)
				}
			}()

			logger.Info("Starting ledger",
				applog.FieldOperation, applog.OpStartup,
				applog.FieldBackend, cfg.DataBackend)
			l := ledger.New(res.Store, out, logger)
			return NewREPL(NewProcessor(l, out), in, out).Run(ctx)
		},
	}

	cmd.Flags().BoolVar(&debug, "debug", false, "enable debug logging on stderr")
	cmd.Flags().StringVar(&backendFlag, "backend", "", "data backend: memory or sqlite (overrides DATA_BACKEND)")
	cmd.Flags().StringVar(&envFile, "env-file", ".env", "optional env file to load")
	return cmd
}
