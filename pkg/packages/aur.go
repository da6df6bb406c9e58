package packages

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/arthur-debert/ricer/pkg/errors"
	"github.com/arthur-debert/ricer/pkg/logging"
	"github.com/arthur-debert/ricer/pkg/runner"
	"github.com/arthur-debert/ricer/pkg/types"
	"github.com/rs/zerolog"
)

// PackagePlaceholder is replaced with the package name in AUR URL templates
const PackagePlaceholder = "{package}"

// AUROptions configure community builds
type AUROptions struct {
	// URL template, default https://aur.archlinux.org/{package}.git
	URL string
	// Build runs inside the clone, default makepkg -si --noconfirm
	Build []string
	// FailFast skips the remaining packages after the first failure
	FailFast bool
	// Pacman handles removal, AUR packages being regular packages once installed
	Pacman PacmanOptions
}

// AUR builds and installs packages from the Arch User Repository
type AUR struct {
	runner   *runner.Runner
	fs       types.FS
	url      string
	build    []string
	failFast bool
	pacman   *Pacman
	logger   zerolog.Logger
}

// NewAUR creates the community build handler. Temporary build
// directories are created on fs.
func NewAUR(r *runner.Runner, fs types.FS, opts AUROptions) *AUR {
	a := &AUR{
		runner:   r,
		fs:       fs,
		url:      opts.URL,
		build:    opts.Build,
		failFast: opts.FailFast,
		pacman:   NewPacman(r, opts.Pacman),
		logger:   logging.GetLogger("aur"),
	}
	if a.url == "" {
		a.url = "https://aur.archlinux.org/" + PackagePlaceholder + ".git"
	}
	if len(a.build) == 0 {
		a.build = []string{"makepkg", "-si", "--noconfirm"}
	}
	return a
}

// Name implements Handler
func (a *AUR) Name() string { return "aur" }

// URL returns the clone URL for pkg
func (a *AUR) URL(pkg string) string {
	return strings.ReplaceAll(a.url, PackagePlaceholder, pkg)
}

// Apply implements Handler. Installs build each package independently,
// so one failure does not stop the others unless FailFast is set.
func (a *AUR) Apply(ctx context.Context, pkgs []string) Report {
	report := Report{Handler: a.Name()}
	if a.runner.Mode().Uninstall {
		report.Outcomes = a.pacman.apply(ctx, pkgs)
		return report
	}

	for i, pkg := range pkgs {
		if ctx.Err() != nil {
			a.logger.Warn().Strs("packages", pkgs[i:]).Msg("Cancelled, skipping remaining packages")
			report.Outcomes = append(report.Outcomes, skipped(pkgs[i:])...)
			break
		}

		outcome := a.install(ctx, pkg)
		report.Outcomes = append(report.Outcomes, outcome)

		if outcome.Failed() && a.failFast && i+1 < len(pkgs) {
			a.logger.Warn().
				Str("package", pkg).
				Strs("skipped", pkgs[i+1:]).
				Msg("Stopping after failed build")
			report.Outcomes = append(report.Outcomes, skipped(pkgs[i+1:])...)
			break
		}
	}
	return report
}

func (a *AUR) install(ctx context.Context, pkg string) Outcome {
	outcome := Outcome{Packages: []string{pkg}}
	logger := a.logger.With().Str("package", pkg).Logger()

	dir, cleanup, err := a.workDir(pkg)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to create build directory")
		outcome.Err = err
		return outcome
	}
	defer cleanup()

	clone := a.runner.Run(ctx, "git", "clone", a.URL(pkg), dir)
	outcome.Results = append(outcome.Results, clone)
	if !clone.OK() {
		logger.Warn().Msg("Clone failed, skipping build")
		return outcome
	}

	outcome.Results = append(outcome.Results, a.runner.RunIn(ctx, dir, a.build...))
	return outcome
}

// workDir creates the build directory for pkg. Under dry-run nothing is
// created and a placeholder path is returned.
func (a *AUR) workDir(pkg string) (string, func(), error) {
	if a.runner.Mode().DryRun {
		return filepath.Join(os.TempDir(), pkg+"XXXXXX"), func() {}, nil
	}

	dir, err := a.fs.TempDir(pkg)
	if err != nil {
		return "", nil, errors.Wrapf(err, errors.ErrTempDir,
			"failed to create build directory for %s", pkg)
	}

	cleanup := func() {
		if err := a.fs.RemoveAll(dir); err != nil {
			a.logger.Warn().Err(err).Str("dir", dir).Msg("Failed to remove build directory")
		}
	}
	return dir, cleanup, nil
}

func skipped(pkgs []string) []Outcome {
	outcomes := make([]Outcome, 0, len(pkgs))
	for _, pkg := range pkgs {
		outcomes = append(outcomes, Outcome{Packages: []string{pkg}, Skipped: true})
	}
	return outcomes
}
