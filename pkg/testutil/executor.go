package testutil

import (
	"context"
	"strings"
	"sync"

	"github.com/arthur-debert/ricer/pkg/runner"
	"github.com/stretchr/testify/mock"
)

// RecordingExecutor records every command instead of running it.
// Commands whose joined argument line appears in Failures return that error.
type RecordingExecutor struct {
	mu       sync.Mutex
	Commands []runner.Command
	Failures map[string]error
	// OnExecute, when set, runs after the command is recorded. A non-nil
	// return fails the command.
	OnExecute func(cmd runner.Command) error
}

// NewRecordingExecutor creates an executor where every command succeeds
func NewRecordingExecutor() *RecordingExecutor {
	return &RecordingExecutor{Failures: map[string]error{}}
}

// FailOn makes the command line fail with err
func (e *RecordingExecutor) FailOn(line string, err error) *RecordingExecutor {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.Failures[line] = err
	return e
}

// Execute implements runner.Executor
func (e *RecordingExecutor) Execute(_ context.Context, cmd runner.Command) error {
	e.mu.Lock()
	e.Commands = append(e.Commands, cmd)
	err := e.Failures[strings.Join(cmd.Args, " ")]
	hook := e.OnExecute
	e.mu.Unlock()

	if err == nil && hook != nil {
		err = hook(cmd)
	}
	return err
}

// Lines returns the recorded commands joined with spaces
func (e *RecordingExecutor) Lines() []string {
	e.mu.Lock()
	defer e.mu.Unlock()

	lines := make([]string, 0, len(e.Commands))
	for _, c := range e.Commands {
		lines = append(lines, strings.Join(c.Args, " "))
	}
	return lines
}

// MockExecutor is a testify mock of runner.Executor
type MockExecutor struct {
	mock.Mock
}

// Execute implements runner.Executor
func (m *MockExecutor) Execute(ctx context.Context, cmd runner.Command) error {
	args := m.Called(ctx, cmd)
	return args.Error(0)
}
