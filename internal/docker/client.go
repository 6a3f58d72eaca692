// Package docker provides a client for interacting with the Docker Engine API.
package docker

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/docker/docker/api/types/container"
	"github.com/docker/docker/api/types/image"
	"github.com/docker/docker/client"
	apperrors "github.com/zorak1103/dockreport/internal/errors"
)

// ErrConnectionFailed is returned when the daemon does not answer a ping.
var ErrConnectionFailed = errors.New("docker connection failed")

// Client defines the interface for the read-only Docker operations dockreport needs.
// All methods accept context.Context for cancellation and timeout support.
type Client interface {
	// Ping verifies the Docker daemon is accessible. Returns error if connection fails.
	Ping(ctx context.Context) error
	// Close closes the Docker client connection and releases resources.
	Close() error

	// ListContainers lists containers; IncludeAll adds stopped ones.
	ListContainers(ctx context.Context, opts FilterOptions) ([]Container, error)
	// ListImages lists top-level local images.
	ListImages(ctx context.Context) ([]Image, error)
	// ServerVersion returns the daemon version.
	ServerVersion(ctx context.Context) (Version, error)
}

// dockerClientWrapper wraps the Docker client to implement our interface
type dockerClientWrapper struct {
	cli        *client.Client
	socketPath string
}

// Compile-time verification that dockerClientWrapper implements Client
var _ Client = (*dockerClientWrapper)(nil)

// NewClient connects to the Docker daemon at socketPath (or default if empty).
func NewClient(socketPath string) (Client, error) {
	opts := []client.Opt{
		client.WithAPIVersionNegotiation(),
	}

	// Add host option if socket path is specified
	if socketPath != "" {
		opts = append(opts, client.WithHost(socketPath))
	}

	cli, err := client.NewClientWithOpts(opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create Docker client for socket %s: %w", socketPath, err)
	}

	wrapper := &dockerClientWrapper{
		cli:        cli,
		socketPath: socketPath,
	}
	return &dockerClient{cli: wrapper}, nil
}

// NewClientWithInterface is used for testing with mock implementations.
func NewClientWithInterface(dockerCli Client) Client {
	return &dockerClient{cli: dockerCli}
}

func (w *dockerClientWrapper) connErr(op string, err error) error {
	return &apperrors.DockerConnectionError{SocketPath: w.socketPath, Operation: op, Err: err}
}

func (w *dockerClientWrapper) Ping(ctx context.Context) error {
	if _, err := w.cli.Ping(ctx); err != nil {
		return w.connErr("Ping", err)
	}
	return nil
}

func (w *dockerClientWrapper) Close() error {
	return w.cli.Close()
}

func (w *dockerClientWrapper) ListContainers(ctx context.Context, opts FilterOptions) ([]Container, error) {
	containers, err := w.cli.ContainerList(ctx, container.ListOptions{All: opts.IncludeAll})
	if err != nil {
		return nil, w.connErr("ContainerList", err)
	}

	result := make([]Container, 0, len(containers))
	for _, ctr := range containers {
		// Extract container name (remove leading slash)
		name := ""
		if len(ctr.Names) > 0 {
			name = strings.TrimPrefix(ctr.Names[0], "/")
		}

		ports := make([]Port, 0, len(ctr.Ports))
		for _, p := range ctr.Ports {
			ports = append(ports, Port{
				IP:          p.IP,
				PrivatePort: p.PrivatePort,
				PublicPort:  p.PublicPort,
				Type:        p.Type,
			})
		}

		result = append(result, Container{
			ID:     ctr.ID,
			Name:   name,
			Image:  ctr.Image,
			State:  string(ctr.State),
			Status: ctr.Status,
			Ports:  ports,
		})
	}

	return result, nil
}

func (w *dockerClientWrapper) ListImages(ctx context.Context) ([]Image, error) {
	images, err := w.cli.ImageList(ctx, image.ListOptions{})
	if err != nil {
		return nil, w.connErr("ImageList", err)
	}

	result := make([]Image, 0, len(images))
	for _, img := range images {
		result = append(result, Image{
			ID:       img.ID,
			RepoTags: img.RepoTags,
			Created:  time.Unix(img.Created, 0),
			Size:     img.Size,
		})
	}

	return result, nil
}

func (w *dockerClientWrapper) ServerVersion(ctx context.Context) (Version, error) {
	v, err := w.cli.ServerVersion(ctx)
	if err != nil {
		return Version{}, w.connErr("ServerVersion", err)
	}
	return Version{
		Version:    v.Version,
		APIVersion: v.APIVersion,
		GitCommit:  v.GitCommit,
	}, nil
}

// dockerClient wraps the Docker client with application-specific logic
type dockerClient struct {
	cli Client
}

func (c *dockerClient) Close() error {
	return c.cli.Close()
}

func (c *dockerClient) Ping(ctx context.Context) error {
	return c.cli.Ping(ctx)
}

func (c *dockerClient) ListContainers(ctx context.Context, opts FilterOptions) ([]Container, error) {
	return c.cli.ListContainers(ctx, opts)
}

func (c *dockerClient) ListImages(ctx context.Context) ([]Image, error) {
	return c.cli.ListImages(ctx)
}

func (c *dockerClient) ServerVersion(ctx context.Context) (Version, error) {
	return c.cli.ServerVersion(ctx)
}
