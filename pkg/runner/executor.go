package runner

import (
	"context"
	"io"
	"os"
	"os/exec"
)

// Command is a single child process invocation
type Command struct {
	Args []string
	// Dir is the child's working directory, empty for the current one
	Dir string
}

// Executor starts a command and waits for it to exit
type Executor interface {
	Execute(ctx context.Context, cmd Command) error
}

// ExecExecutor runs commands with os/exec. Nil streams inherit the
// parent's standard streams.
type ExecExecutor struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// Execute implements Executor
func (e ExecExecutor) Execute(ctx context.Context, cmd Command) error {
	c := exec.CommandContext(ctx, cmd.Args[0], cmd.Args[1:]...)
	c.Dir = cmd.Dir
	c.Stdin = orReader(e.Stdin, os.Stdin)
	c.Stdout = orWriter(e.Stdout, os.Stdout)
	c.Stderr = orWriter(e.Stderr, os.Stderr)
	return c.Run()
}

func orReader(r, fallback io.Reader) io.Reader {
	if r != nil {
		return r
	}
	return fallback
}

func orWriter(w, fallback io.Writer) io.Writer {
	if w != nil {
		return w
	}
	return fallback
}
