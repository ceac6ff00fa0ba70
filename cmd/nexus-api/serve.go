package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ip-solutions-lab/nexus-repository-api/internal/infrastructure/config"
	"github.com/ip-solutions-lab/nexus-repository-api/internal/infrastructure/server"
)

const shutdownTimeout = 15 * time.Second

type serveOptions struct {
	host     string
	port     string
	logLevel string
	dev      bool
	envFile  string
	seedFile string
}

func newServeCmd() *cobra.Command {
	opts := &serveOptions{}

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the API server",
		Long: `Start the HTTP server. Configuration comes from environment variables,
an optional .env file and the flags below, in increasing order of precedence.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServe(cmd, opts)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&opts.host, "host", "", "Listen host (env HOST)")
	flags.StringVarP(&opts.port, "port", "p", "", "Listen port (env PORT)")
	flags.StringVar(&opts.logLevel, "log-level", "", "Log level: debug, info, warn, error (env LOG_LEVEL)")
	flags.BoolVar(&opts.dev, "dev", false, "Development mode: colored console logs (env LOG_DEV)")
	flags.StringVar(&opts.envFile, "env-file", ".env", "dotenv file read before the environment")
	flags.StringVar(&opts.seedFile, "seed-file", "", "YAML file of initial repositories (env SEED_FILE)")

	return cmd
}

func runServe(cmd *cobra.Command, opts *serveOptions) error {
	cfg, err := config.LoadFiles(opts.envFile)
	if err != nil {
		return err
	}
	applyFlags(cmd, cfg, opts)

	logger, err := server.NewLogger(cfg.Logging)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}

	srv, err := server.NewServer(cfg, logger)
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Run()
	}()

	select {
	case <-ctx.Done():
		logger.Info("Shutdown signal received")
	case err := <-errCh:
		if err != nil {
			logger.Error("Server error", zap.Error(err))
			return err
		}
		return nil
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return <-errCh
}

// applyFlags overrides configuration with flags the user actually set
func applyFlags(cmd *cobra.Command, cfg *config.Config, opts *serveOptions) {
	flags := cmd.Flags()
	if flags.Changed("host") {
		cfg.Server.Host = opts.host
	}
	if flags.Changed("port") {
		cfg.Server.Port = opts.port
	}
	if flags.Changed("log-level") {
		cfg.Logging.Level = opts.logLevel
	}
	if flags.Changed("dev") {
		cfg.Logging.Development = opts.dev
	}
	if flags.Changed("seed-file") {
		cfg.Seed.File = opts.seedFile
	}
}
