package rice

import (
	"os"
	"path/filepath"

	"github.com/arthur-debert/ricer/pkg/errors"
)

// State is the link state of one unit
type State string

const (
	StateLinked      State = "linked"
	StateMissing     State = "missing"
	StateConflict    State = "conflict"
	StateWrongTarget State = "wrong-target"
	StateBroken      State = "broken"
)

// Status is the inspected state of a unit's destination
type Status struct {
	Unit        string
	Source      string
	Destination string
	State       State
	// Target is the current link target, empty unless the destination is a link
	Target string
}

// Status inspects destinationRoot/unit without changing anything
func (l *Linker) Status(unit, sourceRoot, destinationRoot string) (Status, error) {
	st := Status{
		Unit:        unit,
		Source:      filepath.Join(sourceRoot, unit),
		Destination: filepath.Join(destinationRoot, unit),
	}

	if filepath.Clean(filepath.Dir(st.Destination)) != filepath.Clean(destinationRoot) {
		return st, errors.Newf(errors.ErrInvalidInput,
			"unit %q does not name an entry inside %s", unit, destinationRoot)
	}

	info, err := l.fs.Lstat(st.Destination)
	if err != nil {
		if os.IsNotExist(err) {
			st.State = StateMissing
			return st, nil
		}
		return st, errors.Wrapf(err, errors.ErrFileAccess, "failed to inspect %s", st.Destination)
	}

	if kindOf(info) != RemovedLink {
		st.State = StateConflict
		return st, nil
	}

	target, err := l.fs.Readlink(st.Destination)
	if err != nil {
		return st, errors.Wrapf(err, errors.ErrFileAccess, "failed to read link %s", st.Destination)
	}
	st.Target = target

	resolved := target
	if !filepath.IsAbs(resolved) {
		resolved = filepath.Join(filepath.Dir(st.Destination), resolved)
	}
	if filepath.Clean(resolved) != filepath.Clean(st.Source) {
		st.State = StateWrongTarget
		return st, nil
	}

	if _, err := l.fs.Stat(st.Source); err != nil {
		st.State = StateBroken
		return st, nil
	}

	st.State = StateLinked
	return st, nil
}
