package rice

import (
	"io/fs"
	"os"
	"path/filepath"

	"github.com/arthur-debert/ricer/pkg/errors"
	"github.com/arthur-debert/ricer/pkg/logging"
	"github.com/arthur-debert/ricer/pkg/style"
	"github.com/arthur-debert/ricer/pkg/types"
	"github.com/rs/zerolog"
)

// Removed names the kind of entry cleared from a destination
type Removed string

const (
	RemovedNone      Removed = "none"
	RemovedLink      Removed = "link"
	RemovedDirectory Removed = "directory"
	RemovedFile      Removed = "file"
)

// Result describes what Link did, or would do under dry-run
type Result struct {
	Unit        string
	Source      string
	Destination string
	Removed     Removed
	Linked      bool
	DryRun      bool
}

// Linker replaces destinations with symlinks into the repository
type Linker struct {
	fs      types.FS
	mode    types.Mode
	printer *style.Printer
	logger  zerolog.Logger
}

// NewLinker creates a linker operating on fs
func NewLinker(fs types.FS, mode types.Mode, printer *style.Printer) *Linker {
	if printer == nil {
		printer = style.NewConsolePrinter()
	}
	return &Linker{
		fs:      fs,
		mode:    mode,
		printer: printer,
		logger:  logging.GetLogger("rice"),
	}
}

// Link clears destinationRoot/unit and, unless uninstalling, points it at
// sourceRoot/unit. A filesystem failure stops the unit half done and is
// returned as a coded error.
func (l *Linker) Link(unit, sourceRoot, destinationRoot string) (Result, error) {
	res := Result{
		Unit:        unit,
		Source:      filepath.Join(sourceRoot, unit),
		Destination: filepath.Join(destinationRoot, unit),
		Removed:     RemovedNone,
		DryRun:      l.mode.DryRun,
	}
	if filepath.Clean(filepath.Dir(res.Destination)) != filepath.Clean(destinationRoot) {
		return res, errors.Newf(errors.ErrInvalidInput,
			"unit %q does not name an entry inside %s", unit, destinationRoot)
	}

	logger := l.logger.With().
		Str("unit", unit).
		Str("source", res.Source).
		Str("destination", res.Destination).
		Bool("dryRun", l.mode.DryRun).
		Logger()

	removed, err := l.clear(logger, res.Destination)
	res.Removed = removed
	if err != nil {
		return res, err
	}

	if l.mode.Uninstall {
		return res, nil
	}

	l.printer.Action("Link dst: %s -> src: %s", res.Destination, res.Source)
	logger.Info().Msg("Creating symlink")
	if l.mode.DryRun {
		res.Linked = true
		return res, nil
	}

	parent := filepath.Dir(res.Destination)
	if err := l.fs.MkdirAll(parent, 0755); err != nil {
		return res, errors.Wrapf(err, errors.ErrDirCreate,
			"failed to create parent directory %s", parent)
	}
	if err := l.fs.Symlink(res.Source, res.Destination); err != nil {
		return res, errors.Wrapf(err, errors.ErrSymlinkCreate,
			"failed to link %s -> %s", res.Destination, res.Source)
	}
	res.Linked = true
	return res, nil
}

// clear removes whatever is at path and reports its kind
func (l *Linker) clear(logger zerolog.Logger, path string) (Removed, error) {
	info, err := l.fs.Lstat(path)
	if err != nil {
		if os.IsNotExist(err) {
			logger.Debug().Msg("Destination absent")
			return RemovedNone, nil
		}
		return RemovedNone, errors.Wrapf(err, errors.ErrFileAccess,
			"failed to inspect %s", path)
	}

	kind := kindOf(info)
	switch kind {
	case RemovedLink:
		l.printer.Action("Remove link %s", path)
	case RemovedDirectory:
		l.printer.Action("Remove directory and contents %s", path)
	default:
		l.printer.Action("Remove file %s", path)
	}
	logger.Info().Str("kind", string(kind)).Msg("Removing destination")

	if l.mode.DryRun {
		return kind, nil
	}

	if kind == RemovedDirectory {
		err = l.fs.RemoveAll(path)
	} else {
		err = l.fs.Remove(path)
	}
	if err != nil {
		return kind, errors.Wrapf(err, errors.ErrFileRemove,
			"failed to remove %s %s", kind, path)
	}
	return kind, nil
}

func kindOf(info fs.FileInfo) Removed {
	switch {
	case info.Mode()&fs.ModeSymlink != 0:
		return RemovedLink
	case info.IsDir():
		return RemovedDirectory
	default:
		return RemovedFile
	}
}
