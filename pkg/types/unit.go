package types

import "path/filepath"

// Destination roots a Unit can be linked into
const (
	DestConfig = "config"
	DestHome   = "home"
)

// Unit is a named configuration directory linked from the repository
// into the home profile
type Unit struct {
	Name string `koanf:"name" toml:"name" yaml:"name" validate:"required,excludes=/"`
	// From is the repository-relative directory holding the unit
	From string `koanf:"from" toml:"from" yaml:"from"`
	// To selects the destination root, DestConfig or DestHome
	To string `koanf:"to" toml:"to" yaml:"to" validate:"required,oneof=config home"`
}

// SourceRoot resolves the directory the unit's source lives in
func (u Unit) SourceRoot(repoRoot string) string {
	return filepath.Join(repoRoot, u.From)
}

// Group is a named batch of packages. Pacman packages are installed
// before AUR packages.
type Group struct {
	Name   string   `koanf:"name" toml:"name" yaml:"name" validate:"required"`
	Pacman []string `koanf:"pacman" toml:"pacman,omitempty" yaml:"pacman,omitempty" validate:"dive,required"`
	AUR    []string `koanf:"aur" toml:"aur,omitempty" yaml:"aur,omitempty" validate:"dive,required"`
}

// Packages returns every package in the group, pacman first
func (g Group) Packages() []string {
	all := make([]string, 0, len(g.Pacman)+len(g.AUR))
	all = append(all, g.Pacman...)
	return append(all, g.AUR...)
}
