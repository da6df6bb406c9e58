// Package provision sequences a full ricer run: link every configured
// unit, then install or remove every package group.
package provision

import (
	"context"

	"github.com/arthur-debert/ricer/pkg/config"
	"github.com/arthur-debert/ricer/pkg/filesystem"
	"github.com/arthur-debert/ricer/pkg/logging"
	"github.com/arthur-debert/ricer/pkg/packages"
	"github.com/arthur-debert/ricer/pkg/paths"
	"github.com/arthur-debert/ricer/pkg/rice"
	"github.com/arthur-debert/ricer/pkg/runner"
	"github.com/arthur-debert/ricer/pkg/style"
	"github.com/arthur-debert/ricer/pkg/types"
	"github.com/rs/zerolog"
)

// Options select which halves of the run happen
type Options struct {
	SkipRice     bool
	SkipPackages bool
}

// Dependencies are the collaborators a Provisioner is built from.
// Nil fields get the real implementations.
type Dependencies struct {
	FS       types.FS
	Executor runner.Executor
	Printer  *style.Printer
}

// Summary is what a run did
type Summary struct {
	Mode    types.Mode
	Links   []rice.Result
	Reports []packages.Report
}

// FailedPackages lists every package whose commands failed
func (s *Summary) FailedPackages() []string {
	var failed []string
	for _, r := range s.Reports {
		failed = append(failed, r.FailedPackages()...)
	}
	return failed
}

// SkippedPackages lists every package that was never attempted
func (s *Summary) SkippedPackages() []string {
	var skipped []string
	for _, r := range s.Reports {
		skipped = append(skipped, r.SkippedPackages()...)
	}
	return skipped
}

// Failed reports whether any package failed or was skipped
func (s *Summary) Failed() bool {
	return len(s.FailedPackages()) > 0 || len(s.SkippedPackages()) > 0
}

// Provisioner links units and runs package groups for one mode
type Provisioner struct {
	cfg          *config.Config
	paths        *paths.Paths
	mode         types.Mode
	linker       *rice.Linker
	orchestrator *packages.Orchestrator
	logger       zerolog.Logger
}

// New wires a provisioner from the merged configuration
func New(cfg *config.Config, p *paths.Paths, mode types.Mode, deps Dependencies) *Provisioner {
	if deps.FS == nil {
		deps.FS = filesystem.NewOS()
	}
	if deps.Printer == nil {
		deps.Printer = style.NewConsolePrinter()
	}

	r := runner.New(mode, runner.Options{
		Elevate:    cfg.Runner.Elevate,
		Invalidate: append([]string{}, cfg.Runner.Invalidate...),
		Timeout:    cfg.Runner.Timeout.Std(),
		Executor:   deps.Executor,
		Printer:    deps.Printer,
	})

	pacmanOpts := packages.PacmanOptions{
		Manager: cfg.Packages.Manager,
		Install: cfg.Packages.Install,
		Remove:  cfg.Packages.Remove,
	}
	orchestrator := packages.NewOrchestrator(
		packages.NewPacman(r, pacmanOpts),
		packages.NewAUR(r, deps.FS, packages.AUROptions{
			URL:      cfg.AUR.URL,
			Build:    cfg.AUR.Build,
			FailFast: cfg.Packages.FailFast,
			Pacman:   pacmanOpts,
		}),
		deps.Printer,
	)

	return &Provisioner{
		cfg:          cfg,
		paths:        p,
		mode:         mode,
		linker:       rice.NewLinker(deps.FS, mode, deps.Printer),
		orchestrator: orchestrator,
		logger:       logging.GetLogger("provision"),
	}
}

// Run performs the rice and package halves in that order. A link error
// aborts the run; package failures are only collected in the Summary.
func (p *Provisioner) Run(ctx context.Context, opts Options) (*Summary, error) {
	defer logging.LogOperationStart(p.logger, "provision")()

	summary := &Summary{Mode: p.mode}
	p.logger.Info().
		Str("mode", p.mode.Verb()).
		Bool("dryRun", p.mode.DryRun).
		Str("repoRoot", p.paths.RepoRoot()).
		Bool("skipRice", opts.SkipRice).
		Bool("skipPackages", opts.SkipPackages).
		Msg("Starting run")

	if !opts.SkipRice {
		for _, unit := range p.cfg.Units {
			if err := ctx.Err(); err != nil {
				return summary, err
			}
			res, err := p.linker.Link(unit.Name, p.paths.SourceRoot(unit), p.paths.DestinationRoot(unit))
			summary.Links = append(summary.Links, res)
			if err != nil {
				p.logger.Error().Err(err).Str("unit", unit.Name).Msg("Linking failed")
				return summary, err
			}
		}
	}

	if !opts.SkipPackages {
		summary.Reports = p.orchestrator.Run(ctx, p.cfg.Groups)
	}

	if err := ctx.Err(); err != nil {
		return summary, err
	}

	p.logger.Info().
		Int("links", len(summary.Links)).
		Strs("failed", summary.FailedPackages()).
		Msg("Run finished")
	return summary, nil
}

// Status inspects every configured unit
func (p *Provisioner) Status() ([]rice.Status, error) {
	statuses := make([]rice.Status, 0, len(p.cfg.Units))
	for _, unit := range p.cfg.Units {
		st, err := p.linker.Status(unit.Name, p.paths.SourceRoot(unit), p.paths.DestinationRoot(unit))
		if err != nil {
			return statuses, err
		}
		statuses = append(statuses, st)
	}
	return statuses, nil
}
