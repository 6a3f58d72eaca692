package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/zorak1103/dockreport/internal/templates"
)

var (
	force bool
)

// initFile is written by init; order is preserved in the output.
type initFile struct {
	name    string
	content []byte
}

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create dockreport configuration templates",
	Long: `Init writes commented configuration templates to the current directory:
  - config.yaml (runtime, backend, output and logging settings)
  - .env (DOCKREPORT_* environment overrides)

Existing files are kept unless --force is given.`,
	Example: `  # Initialize in current directory
  dockreport init

  # Force overwrite existing files
  dockreport init --force`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		out := cmd.OutOrStdout()
		fmt.Fprintln(out, "🔧 Initializing dockreport...")

		files := []initFile{
			{name: "config.yaml", content: templates.ConfigYAML},
			{name: ".env", content: templates.EnvFile},
		}

		for _, f := range files {
			if _, err := os.Stat(f.name); err == nil && !force {
				fmt.Fprintf(out, "⚠️  Skipping %s (already exists, use --force to overwrite)\n", f.name)
				continue
			}

			if err := os.WriteFile(f.name, f.content, 0o600); err != nil {
				return fmt.Errorf("failed to write %s: %w", f.name, err)
			}

			fmt.Fprintf(out, "✅ Created %s\n", f.name)
		}

		fmt.Fprintln(out, "\n🎉 Initialization complete!")
		fmt.Fprintln(out, "\n📝 Next steps:")
		fmt.Fprintln(out, "   1. Edit config.yaml to pick the runtime binary or the api backend")
		fmt.Fprintln(out, "   2. Run 'dockreport config' to check the effective settings")
		fmt.Fprintln(out, "   3. Run 'dockreport' to generate your first report")

		return nil
	},
}

// nolint:gochecknoinits // Standard Cobra pattern for command registration
func init() {
	rootCmd.AddCommand(initCmd)

	initCmd.Flags().BoolVar(&force, "force", false, "overwrite existing configuration files")
}
