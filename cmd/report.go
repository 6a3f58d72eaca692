package cmd

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/zorak1103/dockreport/internal/config"
	"github.com/zorak1103/dockreport/internal/docker"
	"github.com/zorak1103/dockreport/internal/executor"
	"github.com/zorak1103/dockreport/internal/inventory"
	"github.com/zorak1103/dockreport/internal/reporting"
	"github.com/zorak1103/dockreport/internal/version"
)

const (
	bannerWidth  = 49
	bannerTitle  = "           DOCKER SYSTEM REPORT"
	sectionWidth = 49
)

func runReport(cmd *cobra.Command, _ []string) error {
	if cfg == nil {
		return fmt.Errorf("configuration not loaded")
	}

	effective, err := newReportFlagsFromCmd(cmd).apply(*cfg)
	if err != nil {
		return err
	}

	exec, closeExec, err := newExecutor(effective, logger)
	if err != nil {
		return err
	}
	defer closeExec()

	r := newReporter(cmd.OutOrStdout(), cmd.ErrOrStderr(), exec, effective, logger)
	if err := r.run(cmd.Context()); err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), "Report generation completed successfully! ✅")
	return nil
}

// newExecutor picks the command executor for the configured backend.
// The returned close func is never nil.
func newExecutor(c config.Config, log *zap.Logger) (executor.Executor, func(), error) {
	switch c.Runtime.Backend {
	case config.BackendAPI:
		client, err := docker.NewClient(c.Docker.SocketPath)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to initialize Docker client: %w", err)
		}
		log.Debug("using engine API backend", zap.String("socket", c.Docker.SocketPath))
		return docker.NewCommandExecutor(client), func() { _ = client.Close() }, nil
	default:
		log.Debug("using CLI backend", zap.String("binary", c.Runtime.Binary))
		return executor.NewShellExecutor(
			executor.WithTimeout(c.Runtime.Timeout),
			executor.WithLogger(log),
		), func() {}, nil
	}
}

// resolveCommands derives the command lines from the binary, then applies overrides.
func resolveCommands(rc config.RuntimeConfig) inventory.Commands {
	commands := inventory.DefaultCommands(rc.Binary)

	overrides := []struct {
		value  string
		target *string
	}{
		{rc.Commands.Probe, &commands.Probe},
		{rc.Commands.Containers, &commands.Containers},
		{rc.Commands.Images, &commands.Images},
		{rc.Commands.Version, &commands.Version},
	}
	for _, o := range overrides {
		if strings.TrimSpace(o.value) != "" {
			*o.target = o.value
		}
	}
	return commands
}

type consoleStyles struct {
	banner lipgloss.Style
	title  lipgloss.Style
}

// newConsoleStyles renders plain text when w is not a terminal.
func newConsoleStyles(w io.Writer) consoleStyles {
	r := lipgloss.NewRenderer(w)
	return consoleStyles{
		banner: r.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
		title:  r.NewStyle().Bold(true).Foreground(lipgloss.Color("214")),
	}
}

// reporter runs one report: probe, collect, render, persist.
type reporter struct {
	out        io.Writer
	errOut     io.Writer
	collector  *inventory.Collector
	reportFile string
	writeFile  bool
	minVersion string
	logger     *zap.Logger
	now        func() time.Time
	styles     consoleStyles
}

func newReporter(out, errOut io.Writer, exec executor.Executor, c config.Config, log *zap.Logger) *reporter {
	return &reporter{
		out:        out,
		errOut:     errOut,
		collector:  inventory.NewCollector(exec, resolveCommands(c.Runtime), log),
		reportFile: c.Output.ReportFile,
		writeFile:  c.Output.WriteFile,
		minVersion: c.Runtime.MinVersion,
		logger:     log,
		now:        time.Now,
		styles:     newConsoleStyles(out),
	}
}

func (r *reporter) run(ctx context.Context) error {
	rule := strings.Repeat("=", bannerWidth)
	fmt.Fprintln(r.out, rule)
	fmt.Fprintln(r.out, r.styles.banner.Render(bannerTitle))
	fmt.Fprintf(r.out, "%s\n\n", rule)

	if !r.collector.Available(ctx) {
		fmt.Fprintln(r.out, "❌ Docker is not available on this system.")
		fmt.Fprintln(r.out, "Please install Docker to use this reporting tool.")
		return nil
	}
	fmt.Fprint(r.out, "✅ Docker is available on this system.\n\n")

	snap := r.collector.Snapshot(ctx)
	r.checkMinVersion(snap.RuntimeVersion)

	r.section("📦 CONTAINER REPORT", reporting.ContainerTable(snap.Containers))
	r.section("🖼️  IMAGE REPORT", reporting.ImageTable(snap.Images))
	r.section("📊 SYSTEM SUMMARY", reporting.RenderSummary(reporting.Summarize(snap)))

	if r.writeFile {
		r.persist(snap)
	}
	return nil
}

func (r *reporter) section(title, body string) {
	fmt.Fprintln(r.out, r.styles.title.Render(title))
	fmt.Fprintln(r.out, strings.Repeat("-", sectionWidth))
	fmt.Fprint(r.out, body)
	fmt.Fprintln(r.out)
}

// persist never fails the run; the console report has already been shown.
func (r *reporter) persist(snap inventory.Snapshot) {
	content := reporting.FileReport(snap, r.now())
	if err := reporting.SaveReport(r.reportFile, content); err != nil {
		fmt.Fprintf(r.errOut, "❌ %v\n", err)
		return
	}
	fmt.Fprintf(r.out, "📄 Detailed report saved to: %s\n\n", r.reportFile)
}

func (r *reporter) checkMinVersion(runtimeVersion string) {
	if r.minVersion == "" {
		return
	}

	ok, err := version.AtLeast(runtimeVersion, r.minVersion)
	if err != nil {
		r.logger.Debug("runtime version not comparable",
			zap.String("runtime_version", runtimeVersion), zap.Error(err))
		return
	}
	if !ok {
		r.logger.Warn("container runtime is older than the configured minimum",
			zap.String("runtime_version", runtimeVersion),
			zap.String("min_version", r.minVersion))
	}
}
