// Package cmd implements the CLI commands.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/zorak1103/dockreport/internal/config"
	"github.com/zorak1103/dockreport/internal/logging"
	"github.com/zorak1103/dockreport/internal/version"
)

var (
	cfgFile string
	verbose bool
	cfg     *config.Config
	logger  = zap.NewNop()
)

var rootCmd = &cobra.Command{
	Use:   "dockreport",
	Short: "Container runtime system report",
	Long: `dockreport generates a report of your container environment, including
containers, images and system statistics.

It prints aligned container and image tables plus a summary to the console,
and writes a detailed, non-truncated report to docker_report.txt.`,
	Example: `  # Generate the full report
  dockreport

  # Write the report file somewhere else
  dockreport --output /tmp/report.txt

  # Query the Engine API instead of running the docker CLI
  dockreport --backend api`,
	Version:      version.GetFullVersion(),
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		if cmd.Name() == "init" || cmd.Name() == "help" {
			return nil
		}

		loaded, err := config.Load(cfgFile)
		if err != nil {
			return err
		}
		cfg = loaded

		level := cfg.Log.Level
		if IsVerbose() {
			level = "debug"
		}
		l, err := logging.New(level)
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		logger = l
		logger.Debug("starting dockreport", zap.String("version", version.GetVersion()))

		if cfg.ConfigFilePath != "" {
			logger.Debug("loaded configuration", zap.String("path", cfg.ConfigFilePath))
		}
		return nil
	},
	RunE: runReport,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	defer func() { _ = logger.Sync() }()

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// nolint:gochecknoinits // Standard Cobra pattern for command registration
func init() {
	rootCmd.SetVersionTemplate("dockreport {{.Version}}\n")

	// --verbose has no shorthand: -v is reserved for --version
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: ./config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "debug diagnostics on stderr")

	rootCmd.Flags().StringP(flagOutput, "o", "", "report file path (overrides output.report_file)")
	rootCmd.Flags().String(flagBackend, "", "runtime backend: cli or api (overrides runtime.backend)")
	rootCmd.Flags().Bool(flagNoFile, false, "skip writing the report file")
}

// GetConfig returns the loaded configuration or nil if not loaded.
// Must be called after rootCmd.PersistentPreRunE has executed.
func GetConfig() *config.Config {
	return cfg
}

// IsVerbose returns whether verbose mode is enabled via the --verbose flag.
func IsVerbose() bool {
	return verbose
}
