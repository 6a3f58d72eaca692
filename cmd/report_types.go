package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/zorak1103/dockreport/internal/config"
)

const (
	flagOutput  = "output"
	flagBackend = "backend"
	flagNoFile  = "no-file"
)

// reportFlags holds the report-specific command line overrides.
// Empty values leave the loaded configuration untouched.
type reportFlags struct {
	output  string
	backend string
	noFile  bool
}

// newReportFlagsFromCmd reads flag values directly from the command, avoiding global state.
func newReportFlagsFromCmd(cmd *cobra.Command) reportFlags {
	// GetBool/GetString never return errors when flags are properly defined
	output, _ := cmd.Flags().GetString(flagOutput)
	backend, _ := cmd.Flags().GetString(flagBackend)
	noFile, _ := cmd.Flags().GetBool(flagNoFile)

	return reportFlags{
		output:  output,
		backend: backend,
		noFile:  noFile,
	}
}

// apply returns a copy of c with the flag overrides applied.
func (f reportFlags) apply(c config.Config) (config.Config, error) {
	if f.output != "" {
		c.Output.ReportFile = f.output
	}
	if f.backend != "" {
		c.Runtime.Backend = f.backend
	}
	if f.noFile {
		c.Output.WriteFile = false
	}

	if err := c.Validate(); err != nil {
		return c, fmt.Errorf("invalid command line override: %w", err)
	}
	return c, nil
}
