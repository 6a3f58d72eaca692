package docker

import (
	"context"
	"errors"
	"fmt"
	"net"
	"slices"
	"strconv"
	"strings"

	"github.com/docker/go-units"
	apperrors "github.com/zorak1103/dockreport/internal/errors"
	"github.com/zorak1103/dockreport/internal/executor"
)

// ErrUnsupportedCommand is returned for command lines the API backend cannot answer.
var ErrUnsupportedCommand = errors.New("command not supported by the engine API backend")

const (
	shortIDLength = 12

	// CreatedAtLayout matches the CLI's {{.CreatedAt}} rendering.
	CreatedAtLayout = "2006-01-02 15:04:05 -0700 MST"

	containerListingHeader = "CONTAINER ID\tNAMES\tIMAGE\tSTATUS\tPORTS"
	imageListingHeader     = "REPOSITORY\tTAG\tIMAGE ID\tCREATED AT\tSIZE"
	untagged               = "<none>"
)

// CommandExecutor answers the runtime listing commands from the Engine API
// instead of spawning the CLI. Output uses the same header plus
// tab-delimited rows as the CLI table format.
type CommandExecutor struct {
	client Client
}

// Compile-time verification that CommandExecutor implements executor.Executor
var _ executor.Executor = (*CommandExecutor)(nil)

// NewCommandExecutor wraps an Engine API client.
func NewCommandExecutor(client Client) *CommandExecutor {
	return &CommandExecutor{client: client}
}

// Execute recognises "--version"/"version", "ps" and "images" command lines.
func (e *CommandExecutor) Execute(ctx context.Context, commandLine string) (string, error) {
	argv, err := executor.SplitCommandLine(commandLine)
	if err != nil {
		return "", &apperrors.CommandError{CommandLine: commandLine, ExitCode: -1, Err: err}
	}

	var out string
	args := argv[1:]
	switch {
	case slices.Contains(args, "--version") || firstWord(args) == "version":
		out, err = e.version(ctx)
	case firstWord(args) == "ps":
		out, err = e.containers(ctx, FilterOptions{IncludeAll: slices.Contains(args, "-a") || slices.Contains(args, "--all")})
	case firstWord(args) == "images":
		out, err = e.images(ctx)
	default:
		err = ErrUnsupportedCommand
	}

	if err != nil {
		return "", &apperrors.CommandError{CommandLine: commandLine, ExitCode: -1, Err: err}
	}
	return out, nil
}

// version doubles as the availability probe, so the daemon is pinged first.
func (e *CommandExecutor) version(ctx context.Context) (string, error) {
	if err := e.client.Ping(ctx); err != nil {
		return "", fmt.Errorf("%w: %w", ErrConnectionFailed, err)
	}

	v, err := e.client.ServerVersion(ctx)
	if err != nil {
		return "", err
	}
	if v.GitCommit == "" {
		return fmt.Sprintf("Docker version %s\n", v.Version), nil
	}
	return fmt.Sprintf("Docker version %s, build %s\n", v.Version, v.GitCommit), nil
}

func (e *CommandExecutor) containers(ctx context.Context, opts FilterOptions) (string, error) {
	containers, err := e.client.ListContainers(ctx, opts)
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	sb.WriteString(containerListingHeader + "\n")
	for _, c := range containers {
		sb.WriteString(strings.Join([]string{
			ShortID(c.ID),
			c.Name,
			c.Image,
			c.Status,
			FormatPorts(c.Ports),
		}, "\t"))
		sb.WriteString("\n")
	}
	return sb.String(), nil
}

func (e *CommandExecutor) images(ctx context.Context) (string, error) {
	images, err := e.client.ListImages(ctx)
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	sb.WriteString(imageListingHeader + "\n")
	for _, img := range images {
		created := img.Created.Format(CreatedAtLayout)
		size := units.HumanSizeWithPrecision(float64(img.Size), 3)

		tags := img.RepoTags
		if len(tags) == 0 {
			tags = []string{untagged + ":" + untagged}
		}
		for _, ref := range tags {
			repo, tag := SplitReference(ref)
			sb.WriteString(strings.Join([]string{repo, tag, ShortID(img.ID), created, size}, "\t"))
			sb.WriteString("\n")
		}
	}
	return sb.String(), nil
}

// ShortID strips a "sha256:" prefix and shortens id to 12 characters.
func ShortID(id string) string {
	id = strings.TrimPrefix(id, "sha256:")
	if len(id) > shortIDLength {
		return id[:shortIDLength]
	}
	return id
}

// SplitReference splits "repo:tag" on the last colon after the last slash,
// so registry ports stay in the repository part.
func SplitReference(ref string) (repository, tag string) {
	slash := strings.LastIndex(ref, "/")
	colon := strings.LastIndex(ref, ":")
	if colon <= slash {
		return ref, untagged
	}
	return ref[:colon], ref[colon+1:]
}

// FormatPorts renders ports the way the CLI's {{.Ports}} column does.
func FormatPorts(ports []Port) string {
	parts := make([]string, 0, len(ports))
	for _, p := range ports {
		proto := p.Type
		if proto == "" {
			proto = "tcp"
		}
		if p.PublicPort == 0 {
			parts = append(parts, fmt.Sprintf("%d/%s", p.PrivatePort, proto))
			continue
		}
		host := net.JoinHostPort(p.IP, strconv.Itoa(int(p.PublicPort)))
		parts = append(parts, fmt.Sprintf("%s->%d/%s", host, p.PrivatePort, proto))
	}
	return strings.Join(parts, ", ")
}

func firstWord(args []string) string {
	for _, a := range args {
		if !strings.HasPrefix(a, "-") {
			return a
		}
	}
	return ""
}
