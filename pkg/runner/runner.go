package runner

import (
	"context"
	"time"

	"github.com/arthur-debert/ricer/pkg/errors"
	"github.com/arthur-debert/ricer/pkg/logging"
	"github.com/arthur-debert/ricer/pkg/style"
	"github.com/arthur-debert/ricer/pkg/types"
	"github.com/rs/zerolog"
)

// Options configures a Runner. Zero values select the defaults.
type Options struct {
	// Elevate is prepended to privileged commands, default sudo
	Elevate []string
	// Invalidate runs before each privileged command, default sudo -k.
	// Set it to an empty non-nil slice to skip invalidation.
	Invalidate []string
	// Timeout bounds each command, zero waits forever
	Timeout  time.Duration
	Executor Executor
	Printer  *style.Printer
}

// Runner echoes and runs commands according to the run Mode
type Runner struct {
	mode       types.Mode
	elevate    []string
	invalidate []string
	timeout    time.Duration
	executor   Executor
	printer    *style.Printer
	logger     zerolog.Logger
}

// New creates a runner for mode
func New(mode types.Mode, opts Options) *Runner {
	r := &Runner{
		mode:       mode,
		elevate:    opts.Elevate,
		invalidate: opts.Invalidate,
		timeout:    opts.Timeout,
		executor:   opts.Executor,
		printer:    opts.Printer,
		logger:     logging.GetLogger("runner"),
	}
	if len(r.elevate) == 0 {
		r.elevate = []string{"sudo"}
	}
	if r.invalidate == nil {
		r.invalidate = []string{"sudo", "-k"}
	}
	if r.executor == nil {
		r.executor = ExecExecutor{}
	}
	if r.printer == nil {
		r.printer = style.NewConsolePrinter()
	}
	return r
}

// Mode returns the mode the runner was built with
func (r *Runner) Mode() types.Mode {
	return r.mode
}

// Run echoes args and executes them unless in dry-run mode
func (r *Runner) Run(ctx context.Context, args ...string) Result {
	return r.execute(ctx, Command{Args: args})
}

// RunIn is Run with the child's working directory set to dir. The
// parent's working directory is never changed.
func (r *Runner) RunIn(ctx context.Context, dir string, args ...string) Result {
	return r.execute(ctx, Command{Args: args, Dir: dir})
}

// SuRun drops cached credentials, then runs args behind the elevation prefix.
// A failed invalidation is logged and does not stop the command.
func (r *Runner) SuRun(ctx context.Context, args ...string) Result {
	if len(args) == 0 {
		return r.execute(ctx, Command{})
	}

	if len(r.invalidate) > 0 {
		if res := r.Run(ctx, r.invalidate...); !res.OK() {
			r.logger.Warn().Err(res.Err).Msg("Failed to invalidate cached credentials")
		}
	}

	return r.Run(ctx, r.Elevated(args)...)
}

// Elevated returns args behind the elevation prefix
func (r *Runner) Elevated(args []string) []string {
	full := make([]string, 0, len(r.elevate)+len(args))
	full = append(full, r.elevate...)
	return append(full, args...)
}

func (r *Runner) execute(ctx context.Context, cmd Command) Result {
	if len(cmd.Args) == 0 {
		return Result{
			ExitCode: ExitCodeUnknown,
			Err:      errors.New(errors.ErrInvalidInput, "empty command"),
		}
	}

	r.printer.Command(cmd.Args)

	event := r.logger.Info().
		Strs("args", cmd.Args).
		Bool("dryRun", r.mode.DryRun)
	if cmd.Dir != "" {
		event = event.Str("dir", cmd.Dir)
	}
	event.Msg("Running command")

	if r.mode.DryRun {
		return Result{Args: cmd.Args, Dir: cmd.Dir, DryRun: true}
	}

	if r.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.timeout)
		defer cancel()
	}

	start := time.Now()
	res := newResult(ctx, cmd, r.executor.Execute(ctx, cmd))

	if !res.OK() {
		r.logger.Warn().
			Err(res.Err).
			Strs("args", cmd.Args).
			Int("exitCode", res.ExitCode).
			Msg("Command failed")
		return res
	}

	r.logger.Debug().
		Strs("args", cmd.Args).
		Dur("duration", time.Since(start)).
		Msg("Command succeeded")
	return res
}
