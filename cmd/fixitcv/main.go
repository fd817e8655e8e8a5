// Package main provides the fixitcv CLI: ATS scoring of resume documents from the
// command line, batch reports and the HTTP API server.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/lahori-venkatesh/fixitcv-sub000/internal/config"
	"github.com/lahori-venkatesh/fixitcv-sub000/internal/logging"
)

var (
	configPath string
	jsonOutput bool
	logLevel   string

	appConfig *config.Config
	logger    *logrus.Logger
)

var rootCmd = &cobra.Command{
	Use:   "fixitcv",
	Short: "ATS resume scoring",
	Long: "fixitcv scores resume documents the way applicant tracking systems read them, " +
		"proposes automatic fixes and serves the same engine over a REST API.",
	SilenceUsage:      true,
	PersistentPreRunE: loadRuntime,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to a YAML config file")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Write machine-readable JSON instead of formatted output")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level (overrides config and LOG_LEVEL)")
}

// loadRuntime loads configuration and builds the logger before any subcommand runs.
func loadRuntime(cmd *cobra.Command, _ []string) error {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return err
	}
	if logLevel != "" {
		cfg.Logging.Level = logLevel
	}

	l, err := logging.New(logging.Options{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Output: cmd.ErrOrStderr(),
	})
	if err != nil {
		return err
	}

	appConfig = cfg
	logger = l
	return nil
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
