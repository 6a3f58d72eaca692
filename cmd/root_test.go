package cmd

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"

	"github.com/zorak1103/dockreport/internal/config"
)

const (
	testFalseValue = "false"
	testInitCmd    = "init"
)

// executeRoot runs the root command with args and returns stdout, stderr and the error.
// Flag values persist on the shared command between runs, so they are reset first.
func executeRoot(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	resetFlags := func(fs *pflag.FlagSet) {
		fs.VisitAll(func(f *pflag.Flag) {
			_ = f.Value.Set(f.DefValue)
			f.Changed = false
		})
	}
	resetFlags(rootCmd.Flags())
	resetFlags(rootCmd.PersistentFlags())

	var stdout, stderr bytes.Buffer
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&stderr)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
	})

	err := rootCmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestRootCmd_Structure(t *testing.T) {
	t.Parallel()

	cmd := rootCmd

	if cmd.Use != "dockreport" {
		t.Errorf("Expected command use 'dockreport', got '%s'", cmd.Use)
	}

	if cmd.Short == "" {
		t.Error("Expected command short description to be set")
	}

	if cmd.Long == "" {
		t.Error("Expected command long description to be set")
	}

	if cmd.Version == "" {
		t.Error("Expected command version to be set")
	}

	if cmd.RunE == nil {
		t.Error("Expected root command to run the report")
	}
}

func TestRootCmd_PersistentFlags(t *testing.T) {
	t.Parallel()

	flags := rootCmd.PersistentFlags()

	configFlag := flags.Lookup("config")
	if configFlag == nil {
		t.Error("Expected 'config' flag to be defined")
	} else if configFlag.DefValue != "" {
		t.Errorf("Expected 'config' flag default to be empty, got '%s'", configFlag.DefValue)
	}

	verboseFlag := flags.Lookup("verbose")
	if verboseFlag == nil {
		t.Fatal("Expected 'verbose' flag to be defined")
	}

	if verboseFlag.DefValue != testFalseValue {
		t.Errorf("Expected 'verbose' flag default to be 'false', got '%s'", verboseFlag.DefValue)
	}

	if verboseFlag.Shorthand != "" {
		t.Errorf("Expected 'verbose' flag to have no shorthand, got '%s'", verboseFlag.Shorthand)
	}
}

func TestRootCmd_ReportFlags(t *testing.T) {
	t.Parallel()

	flags := rootCmd.Flags()

	output := flags.Lookup(flagOutput)
	require.NotNil(t, output)
	assert.Equal(t, "o", output.Shorthand)

	require.NotNil(t, flags.Lookup(flagBackend))

	noFile := flags.Lookup(flagNoFile)
	require.NotNil(t, noFile)
	assert.Equal(t, testFalseValue, noFile.DefValue)
}

func TestRootCmd_HelpOutput(t *testing.T) {
	for _, arg := range []string{"--help", "-h"} {
		t.Run(arg, func(t *testing.T) {
			stdout, _, err := executeRoot(t, arg)
			require.NoError(t, err)

			for _, expected := range []string{"dockreport", "docker_report.txt", "--config", "--verbose", "--output", "--version"} {
				assert.Contains(t, stdout, expected)
			}
		})
	}
}

func TestRootCmd_VersionOutput(t *testing.T) {
	for _, arg := range []string{"--version", "-v"} {
		t.Run(arg, func(t *testing.T) {
			stdout, _, err := executeRoot(t, arg)
			require.NoError(t, err)

			assert.Equal(t, "dockreport "+rootCmd.Version+"\n", stdout)
		})
	}
}

func TestRootCmd_UnknownArguments(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{name: "unknown flag", args: []string{"--bogus"}, want: "unknown flag: --bogus"},
		{name: "unknown shorthand", args: []string{"-x"}, want: "unknown shorthand flag"},
		{name: "positional argument", args: []string{"bogus"}, want: "unknown command \"bogus\""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stdout, stderr, err := executeRoot(t, tt.args...)
			require.Error(t, err)

			assert.Contains(t, stderr, tt.want)
			assert.NotContains(t, stdout, "DOCKER SYSTEM REPORT")
		})
	}
}

func TestRootCmd_InvalidConfigFails(t *testing.T) {
	originalCfg := cfg
	defer func() { cfg = originalCfg }()

	missing := filepath.Join(t.TempDir(), "missing.yaml")
	_, stderr, err := executeRoot(t, "--config", missing)

	require.Error(t, err)
	assert.Contains(t, stderr, missing)
}

func TestRootCmd_SubcommandsList(t *testing.T) {
	t.Parallel()

	foundSubcommands := make(map[string]bool)
	for _, subcmd := range rootCmd.Commands() {
		foundSubcommands[subcmd.Name()] = true
	}

	for _, expected := range []string{testInitCmd, "config"} {
		if !foundSubcommands[expected] {
			t.Errorf("Expected subcommand '%s' to be registered", expected)
		}
	}
}

func TestGetConfig(t *testing.T) {
	originalCfg := cfg
	defer func() { cfg = originalCfg }()

	cfg = nil
	if result := GetConfig(); result != nil {
		t.Error("Expected GetConfig() to return nil when cfg is nil")
	}

	want := &config.Config{Runtime: config.RuntimeConfig{Binary: "podman"}}
	cfg = want

	if result := GetConfig(); result != want {
		t.Error("Expected GetConfig() to return the set config")
	}
}

func TestIsVerbose(t *testing.T) {
	originalVerbose := verbose
	defer func() { verbose = originalVerbose }()

	verbose = false
	if IsVerbose() {
		t.Error("Expected IsVerbose() to return false")
	}

	verbose = true
	if !IsVerbose() {
		t.Error("Expected IsVerbose() to return true")
	}
}

func TestRootCmd_PersistentPreRunE_SkipConfigForInit(t *testing.T) {
	originalCfg := cfg
	originalCfgFile := cfgFile
	defer func() {
		cfg = originalCfg
		cfgFile = originalCfgFile
	}()

	// init must work before any config exists, even with a broken --config
	cfgFile = filepath.Join(t.TempDir(), "missing.yaml")
	mockCmd := &cobra.Command{Use: testInitCmd}

	if err := rootCmd.PersistentPreRunE(mockCmd, []string{}); err != nil {
		t.Errorf("Expected no error for init command, got: %v", err)
	}
}

func TestRootCmd_PersistentPreRunE_LoadConfig(t *testing.T) {
	originalCfg := cfg
	originalCfgFile := cfgFile
	originalVerbose := verbose
	originalLogger := logger
	defer func() {
		cfg = originalCfg
		cfgFile = originalCfgFile
		verbose = originalVerbose
		logger = originalLogger
	}()

	cfgFile = ""
	verbose = true
	mockCmd := &cobra.Command{Use: "report"}

	require.NoError(t, rootCmd.PersistentPreRunE(mockCmd, []string{}))
	require.NotNil(t, cfg)
	assert.Equal(t, "docker", cfg.Runtime.Binary)
	assert.True(t, logger.Core().Enabled(zapcore.DebugLevel), "--verbose should enable debug diagnostics")
}
