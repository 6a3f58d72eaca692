package executor

import (
	"context"
	"fmt"
	"sync"

	apperrors "github.com/zorak1103/dockreport/internal/errors"
)

// FakeExecutor answers command lines from canned responses.
// Unknown command lines fail as if the binary were missing.
type FakeExecutor struct {
	mu       sync.Mutex
	outputs  map[string]string
	failures map[string]error
	Invoked  []string
}

// Compile-time verification that FakeExecutor implements Executor
var _ Executor = (*FakeExecutor)(nil)

// NewFakeExecutor returns an executor with no canned responses.
func NewFakeExecutor() *FakeExecutor {
	return &FakeExecutor{
		outputs:  make(map[string]string),
		failures: make(map[string]error),
	}
}

// Respond registers output for a command line.
func (f *FakeExecutor) Respond(commandLine, output string) *FakeExecutor {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.outputs[commandLine] = output
	delete(f.failures, commandLine)
	return f
}

// Fail registers a failure for a command line.
func (f *FakeExecutor) Fail(commandLine string, err error) *FakeExecutor {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.failures[commandLine] = err
	delete(f.outputs, commandLine)
	return f
}

// Execute implements Executor.
func (f *FakeExecutor) Execute(_ context.Context, commandLine string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.Invoked = append(f.Invoked, commandLine)

	if err, ok := f.failures[commandLine]; ok {
		return "", &apperrors.CommandError{CommandLine: commandLine, ExitCode: 1, Err: err}
	}
	if out, ok := f.outputs[commandLine]; ok {
		return out, nil
	}
	return "", &apperrors.CommandError{
		CommandLine: commandLine,
		ExitCode:    -1,
		Err:         fmt.Errorf("no canned response for %q", commandLine),
	}
}
