package runner

import (
	"context"
	stderrors "errors"
	"os/exec"
	"strings"

	"github.com/arthur-debert/ricer/pkg/errors"
)

// Exit codes reported when the child never produced one
const (
	ExitCodeUnknown = -1
	ExitCodeTimeout = 124
)

// Result is the outcome of one command
type Result struct {
	Args     []string
	Dir      string
	ExitCode int
	Err      error
	// DryRun is set when the command was only echoed
	DryRun bool
}

// OK reports whether the command succeeded or was skipped for dry-run
func (r Result) OK() bool {
	return r.Err == nil
}

// String returns the command line
func (r Result) String() string {
	return strings.Join(r.Args, " ")
}

// newResult classifies err the way a shell would report it
func newResult(ctx context.Context, cmd Command, err error) Result {
	res := Result{Args: cmd.Args, Dir: cmd.Dir}
	if err == nil {
		return res
	}

	var exitErr *exec.ExitError
	switch {
	case stderrors.Is(ctx.Err(), context.DeadlineExceeded):
		res.ExitCode = ExitCodeTimeout
		res.Err = errors.Wrapf(err, errors.ErrCommandExecute, "command timed out: %s", res.String())
	case stderrors.As(err, &exitErr):
		res.ExitCode = exitErr.ExitCode()
		res.Err = errors.Wrapf(err, errors.ErrCommandExit, "command failed: %s", res.String())
	default:
		res.ExitCode = ExitCodeUnknown
		res.Err = errors.Wrapf(err, errors.ErrCommandExecute, "failed to execute command: %s", res.String())
	}
	return res
}
