package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/holistic-man/pagina-guia/internal/config"
	"github.com/holistic-man/pagina-guia/internal/landing"
	"github.com/holistic-man/pagina-guia/internal/observability"
	"github.com/holistic-man/pagina-guia/internal/ui/render"
)

var version = "dev"

var envFile string

var rootCmd = &cobra.Command{
	Use:           "landing",
	Short:         "Render and serve the ServicePro landing page",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", ".env", "optional dotenv file with LANDING_* overrides")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "landing: %v\n", err)
		os.Exit(1)
	}
}

// setup loads configuration and builds the logger shared by every command.
func setup() (config.Config, *zap.Logger, error) {
	cfg, err := config.Load(config.WithEnvFile(envFile))
	if err != nil {
		return config.Config{}, nil, err
	}
	logger, err := observability.NewLogger(cfg.Log.Level)
	if err != nil {
		return config.Config{}, nil, fmt.Errorf("initialise logger: %w", err)
	}
	return cfg, logger.Named("landing"), nil
}

func documentOptions(cfg config.Config) render.Options {
	return landing.DocumentOptions(landing.Site{
		Title:       cfg.Site.Title,
		Description: cfg.Site.Description,
		URL:         cfg.Site.URL,
	})
}
