package paths

import (
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/arthur-debert/ricer/pkg/errors"
	"github.com/arthur-debert/ricer/pkg/types"
)

// Environment variable names
const (
	// EnvRicerRoot points at the repository holding the configuration units
	EnvRicerRoot = "RICER_ROOT"

	// EnvHome is the standard home directory variable
	EnvHome = "HOME"
)

// ConfigFileNames are the repository-level config files, in lookup order
var ConfigFileNames = []string{"ricer.toml", ".ricer.toml", "ricer.yaml", ".ricer.yaml"}

// Options overrides root discovery. Empty fields are discovered.
type Options struct {
	RepoRoot   string
	Home       string
	ConfigHome string
}

// Paths holds the resolved roots for one run
type Paths struct {
	repoRoot   string
	home       string
	configHome string

	// usedFallback indicates the repo root is just the working directory
	usedFallback bool
}

// New resolves all roots
func New(opts Options) (*Paths, error) {
	p := &Paths{}

	if opts.RepoRoot != "" {
		p.repoRoot = expandHome(opts.RepoRoot)
	} else {
		root, usedFallback, err := findRepoRoot()
		if err != nil {
			return nil, err
		}
		p.repoRoot = root
		p.usedFallback = usedFallback
	}

	absRoot, err := filepath.Abs(p.repoRoot)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrFileAccess, "failed to get absolute path for repository root")
	}
	p.repoRoot = absRoot

	p.home = opts.Home
	if p.home == "" {
		home, err := GetHomeDirectory()
		if err != nil {
			return nil, err
		}
		p.home = home
	}

	p.configHome = opts.ConfigHome
	if p.configHome == "" {
		p.configHome = xdg.ConfigHome
	}

	return p, nil
}

// RepoRoot returns the repository root
func (p *Paths) RepoRoot() string { return p.repoRoot }

// Home returns the user's home directory
func (p *Paths) Home() string { return p.home }

// ConfigHome returns the user's config home, usually ~/.config
func (p *Paths) ConfigHome() string { return p.configHome }

// UsedFallback reports whether the repo root fell back to the working directory
func (p *Paths) UsedFallback() bool { return p.usedFallback }

// SourceRoot returns the directory a unit is linked from
func (p *Paths) SourceRoot(unit types.Unit) string {
	return unit.SourceRoot(p.repoRoot)
}

// DestinationRoot returns the directory a unit is linked into
func (p *Paths) DestinationRoot(unit types.Unit) string {
	if unit.To == types.DestHome {
		return p.home
	}
	return p.configHome
}

// ConfigFile returns the first repository config file that exists, or ""
func (p *Paths) ConfigFile() string {
	for _, name := range ConfigFileNames {
		path := filepath.Join(p.repoRoot, name)
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			return path
		}
	}
	return ""
}

// GetHomeDirectory returns the user's home directory.
// It first tries os.UserHomeDir(), then falls back to the HOME environment variable.
func GetHomeDirectory() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err == nil && homeDir != "" {
		return homeDir, nil
	}

	if homeDir = os.Getenv(EnvHome); homeDir != "" {
		return homeDir, nil
	}

	return "", errors.New(errors.ErrFileAccess, "unable to determine home directory")
}

// findRepoRoot applies the lookup order documented on the package
func findRepoRoot() (string, bool, error) {
	if root := os.Getenv(EnvRicerRoot); root != "" {
		return expandHome(root), false, nil
	}

	if gitRoot, err := findGitRoot(); err == nil {
		return gitRoot, false, nil
	}

	cwd, err := os.Getwd()
	if err != nil {
		return "", false, errors.Wrapf(err, errors.ErrFileAccess, "failed to get current directory")
	}

	return cwd, true, nil
}

// findGitRoot attempts to find the root of the current git repository
func findGitRoot() (string, error) {
	output, err := exec.Command("git", "rev-parse", "--show-toplevel").Output()
	if err != nil {
		return "", err
	}

	gitRoot := strings.TrimSpace(string(output))
	if gitRoot == "" {
		return "", errors.New(errors.ErrNotFound, "git root is empty")
	}
	return gitRoot, nil
}

// expandHome expands a leading ~ to the home directory
func expandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	homeDir, err := GetHomeDirectory()
	if err != nil {
		return path
	}
	return filepath.Join(homeDir, path[1:])
}
