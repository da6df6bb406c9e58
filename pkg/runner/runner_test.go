package runner_test

import (
	"context"
	stderrors "errors"
	"io"
	"path/filepath"
	"testing"
	"time"

	"github.com/arthur-debert/ricer/pkg/errors"
	"github.com/arthur-debert/ricer/pkg/runner"
	"github.com/arthur-debert/ricer/pkg/testutil"
	"github.com/arthur-debert/ricer/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newRunner(mode types.Mode, exec runner.Executor) (*runner.Runner, *testutil.RecordingExecutor, func() string) {
	printer, buf := testutil.NewBufferPrinter()
	rec, _ := exec.(*testutil.RecordingExecutor)
	r := runner.New(mode, runner.Options{Executor: exec, Printer: printer})
	return r, rec, buf.String
}

func TestRunEchoesAndExecutes(t *testing.T) {
	r, rec, out := newRunner(types.Mode{}, testutil.NewRecordingExecutor())

	res := r.Run(context.Background(), "git", "clone", "https://example.com/x.git")

	require.True(t, res.OK())
	assert.Equal(t, 0, res.ExitCode)
	assert.False(t, res.DryRun)
	assert.Equal(t, "git clone https://example.com/x.git", res.String())
	assert.Equal(t, []string{"git clone https://example.com/x.git"}, rec.Lines())
	assert.Equal(t, "git clone https://example.com/x.git\n", out())
}

func TestRunDryRunSkipsExecution(t *testing.T) {
	r, rec, out := newRunner(types.Mode{DryRun: true}, testutil.NewRecordingExecutor())

	res := r.Run(context.Background(), "pacman", "-S", "sway")

	assert.True(t, res.OK())
	assert.True(t, res.DryRun)
	assert.Empty(t, rec.Commands)
	assert.Equal(t, "pacman -S sway\n", out())
}

func TestRunEmptyCommand(t *testing.T) {
	r, rec, out := newRunner(types.Mode{}, testutil.NewRecordingExecutor())

	res := r.Run(context.Background())

	require.False(t, res.OK())
	assert.True(t, errors.IsErrorCode(res.Err, errors.ErrInvalidInput))
	assert.Equal(t, runner.ExitCodeUnknown, res.ExitCode)
	assert.Empty(t, rec.Commands)
	assert.Empty(t, out())
}

func TestRunInSetsChildDirectory(t *testing.T) {
	m := &testutil.MockExecutor{}
	m.On("Execute", mock.Anything, runner.Command{
		Args: []string{"makepkg", "-si", "--noconfirm"},
		Dir:  "/tmp/foo123",
	}).Return(nil).Once()

	r, _, _ := newRunner(types.Mode{}, m)
	res := r.RunIn(context.Background(), "/tmp/foo123", "makepkg", "-si", "--noconfirm")

	assert.True(t, res.OK())
	assert.Equal(t, "/tmp/foo123", res.Dir)
	m.AssertExpectations(t)
}

func TestRunExecutorError(t *testing.T) {
	rec := testutil.NewRecordingExecutor().FailOn("git clone x", stderrors.New("boom"))
	r, _, _ := newRunner(types.Mode{}, rec)

	res := r.Run(context.Background(), "git", "clone", "x")

	require.False(t, res.OK())
	assert.Equal(t, runner.ExitCodeUnknown, res.ExitCode)
	assert.True(t, errors.IsErrorCode(res.Err, errors.ErrCommandExecute))
}

func TestSuRunInvalidatesThenElevates(t *testing.T) {
	r, rec, out := newRunner(types.Mode{}, testutil.NewRecordingExecutor())

	res := r.SuRun(context.Background(), "pacman", "-S", "--noconfirm", "--needed", "sway", "waybar")

	require.True(t, res.OK())
	want := []string{
		"sudo -k",
		"sudo pacman -S --noconfirm --needed sway waybar",
	}
	assert.Equal(t, want, rec.Lines())
	assert.Equal(t, want[0]+"\n"+want[1]+"\n", out())
	assert.Equal(t, "sudo pacman -S --noconfirm --needed sway waybar", res.String())
}

func TestSuRunCustomPrefix(t *testing.T) {
	rec := testutil.NewRecordingExecutor()
	printer, _ := testutil.NewBufferPrinter()
	r := runner.New(types.Mode{}, runner.Options{
		Elevate:    []string{"doas"},
		Invalidate: []string{},
		Executor:   rec,
		Printer:    printer,
	})

	r.SuRun(context.Background(), "pacman", "-Rnsc", "sway")

	assert.Equal(t, []string{"doas pacman -Rnsc sway"}, rec.Lines())
}

func TestSuRunInvalidationFailureDoesNotStopCommand(t *testing.T) {
	rec := testutil.NewRecordingExecutor().FailOn("sudo -k", stderrors.New("no sudo"))
	r, _, _ := newRunner(types.Mode{}, rec)

	res := r.SuRun(context.Background(), "pacman", "-S", "sway")

	assert.True(t, res.OK())
	assert.Equal(t, []string{"sudo -k", "sudo pacman -S sway"}, rec.Lines())
}

func TestSuRunDryRun(t *testing.T) {
	r, rec, out := newRunner(types.Mode{DryRun: true}, testutil.NewRecordingExecutor())

	res := r.SuRun(context.Background(), "pacman", "-Rnsc", "sway")

	assert.True(t, res.DryRun)
	assert.Empty(t, rec.Commands)
	assert.Equal(t, "sudo -k\nsudo pacman -Rnsc sway\n", out())
}

func TestSuRunEmptyCommand(t *testing.T) {
	r, rec, _ := newRunner(types.Mode{}, testutil.NewRecordingExecutor())

	res := r.SuRun(context.Background())

	assert.True(t, errors.IsErrorCode(res.Err, errors.ErrInvalidInput))
	assert.Empty(t, rec.Commands)
}

func TestExecExecutorExitCode(t *testing.T) {
	printer, _ := testutil.NewBufferPrinter()
	r := runner.New(types.Mode{}, runner.Options{
		Executor: runner.ExecExecutor{Stdout: io.Discard, Stderr: io.Discard},
		Printer:  printer,
	})

	res := r.Run(context.Background(), "sh", "-c", "exit 3")

	require.False(t, res.OK())
	assert.Equal(t, 3, res.ExitCode)
	assert.True(t, errors.IsErrorCode(res.Err, errors.ErrCommandExit))
}

func TestExecExecutorMissingBinary(t *testing.T) {
	printer, _ := testutil.NewBufferPrinter()
	r := runner.New(types.Mode{}, runner.Options{
		Executor: runner.ExecExecutor{Stdout: io.Discard, Stderr: io.Discard},
		Printer:  printer,
	})

	res := r.Run(context.Background(), "ricer-no-such-binary-for-tests")

	require.False(t, res.OK())
	assert.Equal(t, runner.ExitCodeUnknown, res.ExitCode)
	assert.True(t, errors.IsErrorCode(res.Err, errors.ErrCommandExecute))
}

func TestExecExecutorTimeout(t *testing.T) {
	printer, _ := testutil.NewBufferPrinter()
	r := runner.New(types.Mode{}, runner.Options{
		Timeout:  50 * time.Millisecond,
		Executor: runner.ExecExecutor{Stdout: io.Discard, Stderr: io.Discard},
		Printer:  printer,
	})

	res := r.Run(context.Background(), "sleep", "5")

	require.False(t, res.OK())
	assert.Equal(t, runner.ExitCodeTimeout, res.ExitCode)
}

func TestExecExecutorWorkingDirectory(t *testing.T) {
	dir := t.TempDir()
	printer, _ := testutil.NewBufferPrinter()
	r := runner.New(types.Mode{}, runner.Options{
		Executor: runner.ExecExecutor{Stdout: io.Discard, Stderr: io.Discard},
		Printer:  printer,
	})

	res := r.RunIn(context.Background(), dir, "sh", "-c", "touch marker")

	require.True(t, res.OK())
	assert.FileExists(t, filepath.Join(dir, "marker"))
}
