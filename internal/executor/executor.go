// Package executor runs external commands on behalf of the inventory collector.
package executor

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"time"

	apperrors "github.com/zorak1103/dockreport/internal/errors"
	"go.uber.org/zap"
	"mvdan.cc/sh/v3/shell"
)

// ErrEmptyCommand is returned when a command line has no words.
var ErrEmptyCommand = errors.New("empty command line")

// Executor runs a command line synchronously and returns its standard output.
// A non-nil error means the command produced no usable data.
type Executor interface {
	Execute(ctx context.Context, commandLine string) (string, error)
}

// ExecCommandFunc matches exec.CommandContext and is swapped out in tests.
type ExecCommandFunc func(ctx context.Context, name string, args ...string) *exec.Cmd

// ShellExecutor runs commands as child processes without a shell.
// Command lines are split into words with POSIX shell quoting rules.
type ShellExecutor struct {
	execCommand ExecCommandFunc
	timeout     time.Duration
	logger      *zap.Logger
}

// Compile-time verification that ShellExecutor implements Executor
var _ Executor = (*ShellExecutor)(nil)

// Option configures a ShellExecutor.
type Option func(*ShellExecutor)

// WithExecCommand sets a custom exec command function for testing.
func WithExecCommand(fn ExecCommandFunc) Option {
	return func(e *ShellExecutor) {
		e.execCommand = fn
	}
}

// WithTimeout bounds every command. Zero disables the bound.
func WithTimeout(d time.Duration) Option {
	return func(e *ShellExecutor) {
		e.timeout = d
	}
}

// WithLogger sets the diagnostics logger.
func WithLogger(logger *zap.Logger) Option {
	return func(e *ShellExecutor) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// NewShellExecutor creates an executor backed by os/exec.
func NewShellExecutor(opts ...Option) *ShellExecutor {
	e := &ShellExecutor{
		execCommand: exec.CommandContext,
		logger:      zap.NewNop(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Execute splits commandLine into argv, runs it and returns its stdout.
// Stderr is never part of the result; it is logged and attached to a CommandError.
func (e *ShellExecutor) Execute(ctx context.Context, commandLine string) (string, error) {
	argv, err := SplitCommandLine(commandLine)
	if err != nil {
		return "", &apperrors.CommandError{CommandLine: commandLine, ExitCode: -1, Err: err}
	}

	if e.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, e.timeout)
		defer cancel()
	}

	cmd := e.execCommand(ctx, argv[0], argv[1:]...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	start := time.Now()
	err = cmd.Run()
	e.logger.Debug("command finished",
		zap.String("command", commandLine),
		zap.Duration("elapsed", time.Since(start)),
		zap.Int("bytes", stdout.Len()),
		zap.String("stderr", strings.TrimSpace(stderr.String())),
		zap.Error(err),
	)

	if err != nil {
		exitCode := -1
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			exitCode = exitErr.ExitCode()
		}
		if ctxErr := ctx.Err(); ctxErr != nil {
			err = fmt.Errorf("%w (%w)", err, ctxErr)
		}
		return "", &apperrors.CommandError{
			CommandLine: commandLine,
			ExitCode:    exitCode,
			Output:      stderr.String(),
			Err:         err,
		}
	}

	return stdout.String(), nil
}

// SplitCommandLine splits a command line into words using shell quoting rules.
// Parameter expansion is disabled; "$HOME" stays literal.
func SplitCommandLine(commandLine string) ([]string, error) {
	if strings.TrimSpace(commandLine) == "" {
		return nil, ErrEmptyCommand
	}

	fields, err := shell.Fields(commandLine, func(name string) string { return "$" + name })
	if err != nil {
		return nil, fmt.Errorf("failed to parse command line %q: %w", commandLine, err)
	}
	if len(fields) == 0 {
		return nil, ErrEmptyCommand
	}
	return fields, nil
}
