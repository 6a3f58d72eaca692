// Package apperrors provides domain-specific error types for dockreport.
// These error types include contextual information to aid debugging and error reporting.
package apperrors

import "fmt"

// ConfigurationError represents configuration-related errors.
// It includes the configuration file path and specific key that caused the error.
type ConfigurationError struct {
	ConfigPath string // Path to the configuration file
	Key        string // Configuration key that caused the error
	Err        error  // Underlying error
}

// Error implements the error interface for ConfigurationError.
func (e *ConfigurationError) Error() string {
	if e.Key != "" {
		return fmt.Sprintf("configuration error in %s (key: %s): %v", e.ConfigPath, e.Key, e.Err)
	}
	return fmt.Sprintf("configuration error in %s: %v", e.ConfigPath, e.Err)
}

// Unwrap returns the underlying error for error wrapping chains.
func (e *ConfigurationError) Unwrap() error {
	return e.Err
}

// DockerConnectionError represents Docker Engine API connection and operation errors.
// It includes the socket path and the operation that failed.
type DockerConnectionError struct {
	SocketPath string // Docker socket path (e.g., unix:///var/run/docker.sock)
	Operation  string // Operation that failed (e.g., "Ping", "ImageList")
	Err        error  // Underlying error
}

// Error implements the error interface for DockerConnectionError.
func (e *DockerConnectionError) Error() string {
	if e.SocketPath != "" {
		return fmt.Sprintf("docker %s failed (socket: %s): %v", e.Operation, e.SocketPath, e.Err)
	}
	return fmt.Sprintf("docker %s failed: %v", e.Operation, e.Err)
}

// Unwrap returns the underlying error for error wrapping chains.
func (e *DockerConnectionError) Unwrap() error {
	return e.Err
}

// CommandError represents a failed external command invocation.
// ExitCode is -1 when the process could not be started at all.
type CommandError struct {
	CommandLine string // Command line as given to the executor
	ExitCode    int    // Process exit code, -1 if unknown
	Output      string // Captured stderr, possibly empty
	Err         error  // Underlying error
}

// Error implements the error interface for CommandError.
func (e *CommandError) Error() string {
	if e.ExitCode >= 0 {
		return fmt.Sprintf("command %q exited with code %d: %v", e.CommandLine, e.ExitCode, e.Err)
	}
	return fmt.Sprintf("command %q failed: %v", e.CommandLine, e.Err)
}

// Unwrap returns the underlying error for error wrapping chains.
func (e *CommandError) Unwrap() error {
	return e.Err
}

// ReportWriteError represents a failure to persist the report file.
type ReportWriteError struct {
	Path string // Report file path
	Err  error  // Underlying error
}

// Error implements the error interface for ReportWriteError.
func (e *ReportWriteError) Error() string {
	return fmt.Sprintf("unable to write report file %s: %v", e.Path, e.Err)
}

// Unwrap returns the underlying error for error wrapping chains.
func (e *ReportWriteError) Unwrap() error {
	return e.Err
}
