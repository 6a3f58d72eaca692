package inventory

import (
	"context"
	"strings"

	"github.com/zorak1103/dockreport/internal/executor"
	"go.uber.org/zap"
)

// VersionUnknown is reported when the runtime version query fails.
const VersionUnknown = "Unable to determine"

// Commands holds the command lines sent to the executor.
type Commands struct {
	Probe      string
	Containers string
	Images     string
	Version    string
}

// DefaultCommands returns the listing commands for a docker-compatible binary.
func DefaultCommands(binary string) Commands {
	return Commands{
		Probe:      binary + " --version",
		Containers: binary + ` ps -a --format "table {{.ID}}\t{{.Names}}\t{{.Image}}\t{{.Status}}\t{{.Ports}}"`,
		Images:     binary + ` images --format "table {{.Repository}}\t{{.Tag}}\t{{.ID}}\t{{.CreatedAt}}\t{{.Size}}"`,
		Version:    binary + " --version",
	}
}

// Collector gathers listings from the runtime through an Executor.
// Every failure except the availability probe is recovered locally.
type Collector struct {
	exec     executor.Executor
	commands Commands
	logger   *zap.Logger
}

// NewCollector creates a collector. A nil logger disables diagnostics.
func NewCollector(exec executor.Executor, commands Commands, logger *zap.Logger) *Collector {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Collector{
		exec:     exec,
		commands: commands,
		logger:   logger,
	}
}

// Available reports whether the runtime answered the probe with any output.
func (c *Collector) Available(ctx context.Context) bool {
	out, err := c.exec.Execute(ctx, c.commands.Probe)
	if err != nil {
		c.logger.Debug("runtime probe failed", zap.String("command", c.commands.Probe), zap.Error(err))
		return false
	}
	return strings.TrimSpace(out) != ""
}

// Containers lists and parses containers. Execution failure yields an empty slice.
func (c *Collector) Containers(ctx context.Context) []Container {
	out, err := c.exec.Execute(ctx, c.commands.Containers)
	if err != nil {
		c.logger.Warn("container listing failed, reporting no containers", zap.Error(err))
		return []Container{}
	}
	containers := ParseContainers(out)
	c.logger.Debug("parsed containers", zap.Int("count", len(containers)))
	return containers
}

// Images lists and parses images. Execution failure yields an empty slice.
func (c *Collector) Images(ctx context.Context) []Image {
	out, err := c.exec.Execute(ctx, c.commands.Images)
	if err != nil {
		c.logger.Warn("image listing failed, reporting no images", zap.Error(err))
		return []Image{}
	}
	images := ParseImages(out)
	c.logger.Debug("parsed images", zap.Int("count", len(images)))
	return images
}

// Version returns the runtime's self-reported version line, or VersionUnknown.
func (c *Collector) Version(ctx context.Context) string {
	out, err := c.exec.Execute(ctx, c.commands.Version)
	if err != nil {
		c.logger.Warn("runtime version query failed", zap.Error(err))
		return VersionUnknown
	}
	version := strings.TrimSpace(out)
	if version == "" {
		return VersionUnknown
	}
	return version
}

// Snapshot runs the container listing, the image listing and the version
// query in that order.
func (c *Collector) Snapshot(ctx context.Context) Snapshot {
	return Snapshot{
		Containers:     c.Containers(ctx),
		Images:         c.Images(ctx),
		RuntimeVersion: c.Version(ctx),
	}
}
