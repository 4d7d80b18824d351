package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"satta_backend/internal/app"
	"satta_backend/internal/config"
	"satta_backend/internal/config/env"
	"satta_backend/pkg/token"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	debug    bool
	envFile  string
	withLoop bool
	subject  string

	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:           "satta",
	Short:         "Satta outcome generator",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg := zap.NewProductionConfig()
		if debug {
			cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = cfg.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}

		if err := config.Load(envFile); err != nil {
			logger.Debug("env file not loaded", zap.String("path", envFile), zap.Error(err))
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	RunE: func(cmd *cobra.Command, args []string) error {
		return app.NewApp(logger).RunHTTP(cmd.Context(), withLoop)
	},
}

var loopCmd = &cobra.Command{
	Use:   "loop",
	Short: "Generate one result per cycle interval",
	RunE: func(cmd *cobra.Command, args []string) error {
		return app.NewApp(logger).RunLoop(cmd.Context())
	},
}

var tokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Issue an admin token for the /admin endpoints",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := env.NewAdminConfig()
		if err != nil {
			return err
		}
		t, err := token.GenerateAdminToken(subject, cfg.TokenSecretKey(), cfg.TokenDuration())
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), t)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", ".env", "path to the .env file")

	serveCmd.Flags().BoolVar(&withLoop, "with-loop", false, "also run the scheduled cycle loop")

	tokenCmd.Flags().StringVar(&subject, "subject", "", "token subject")
	_ = tokenCmd.MarkFlagRequired("subject")

	rootCmd.AddCommand(serveCmd, loopCmd, tokenCmd)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
