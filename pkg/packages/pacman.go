package packages

import (
	"context"

	"github.com/arthur-debert/ricer/pkg/runner"
)

// PacmanOptions are the package manager invocations
type PacmanOptions struct {
	// Manager is the package manager binary, default pacman
	Manager string
	// Install flags, default -S --noconfirm --needed
	Install []string
	// Remove flags, default -Rnsc
	Remove []string
}

// Pacman installs or removes a batch with a single privileged command
type Pacman struct {
	runner  *runner.Runner
	manager string
	install []string
	remove  []string
}

// NewPacman creates the direct package handler
func NewPacman(r *runner.Runner, opts PacmanOptions) *Pacman {
	p := &Pacman{
		runner:  r,
		manager: opts.Manager,
		install: opts.Install,
		remove:  opts.Remove,
	}
	if p.manager == "" {
		p.manager = "pacman"
	}
	if p.install == nil {
		p.install = []string{"-S", "--noconfirm", "--needed"}
	}
	if p.remove == nil {
		p.remove = []string{"-Rnsc"}
	}
	return p
}

// Name implements Handler
func (p *Pacman) Name() string { return "pacman" }

// Apply implements Handler. An empty list issues no command.
func (p *Pacman) Apply(ctx context.Context, pkgs []string) Report {
	return Report{Handler: p.Name(), Outcomes: p.apply(ctx, pkgs)}
}

func (p *Pacman) apply(ctx context.Context, pkgs []string) []Outcome {
	if len(pkgs) == 0 {
		return nil
	}
	return []Outcome{{
		Packages: pkgs,
		Results:  []runner.Result{p.runner.SuRun(ctx, p.Command(pkgs)...)},
	}}
}

// Command returns the unprivileged command line for pkgs in the runner's mode
func (p *Pacman) Command(pkgs []string) []string {
	flags := p.install
	if p.runner.Mode().Uninstall {
		flags = p.remove
	}
	args := make([]string, 0, 1+len(flags)+len(pkgs))
	args = append(args, p.manager)
	args = append(args, flags...)
	return append(args, pkgs...)
}
