package config

import (
	"time"

	"github.com/arthur-debert/ricer/pkg/types"
)

// Config is the fully merged configuration of a run
type Config struct {
	Runner   Runner        `koanf:"runner" toml:"runner" yaml:"runner"`
	Packages Packages      `koanf:"packages" toml:"packages" yaml:"packages"`
	AUR      AUR           `koanf:"aur" toml:"aur" yaml:"aur"`
	Units    []types.Unit  `koanf:"units" toml:"units" yaml:"units" validate:"dive"`
	Groups   []types.Group `koanf:"groups" toml:"groups" yaml:"groups" validate:"dive"`
}

// Runner configures how external commands are run
type Runner struct {
	Elevate    []string `koanf:"elevate" toml:"elevate" yaml:"elevate" validate:"min=1,dive,required"`
	Invalidate []string `koanf:"invalidate" toml:"invalidate" yaml:"invalidate" validate:"dive,required"`
	Timeout    Duration `koanf:"timeout" toml:"timeout" yaml:"timeout" validate:"gte=0"`
}

// Packages configures the native package manager
type Packages struct {
	Manager  string   `koanf:"manager" toml:"manager" yaml:"manager" validate:"required"`
	Install  []string `koanf:"install" toml:"install" yaml:"install" validate:"min=1"`
	Remove   []string `koanf:"remove" toml:"remove" yaml:"remove" validate:"min=1"`
	FailFast bool     `koanf:"fail_fast" toml:"fail_fast" yaml:"fail_fast"`
}

// AUR configures the community build flow
type AUR struct {
	URL   string   `koanf:"url" toml:"url" yaml:"url" validate:"required,contains={package}"`
	Build []string `koanf:"build" toml:"build" yaml:"build" validate:"min=1,dive,required"`
}

// Duration is a time.Duration that reads and writes as "90s" style text
type Duration time.Duration

// UnmarshalText implements encoding.TextUnmarshaler
func (d *Duration) UnmarshalText(text []byte) error {
	parsed, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	*d = Duration(parsed)
	return nil
}

// MarshalText implements encoding.TextMarshaler
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(time.Duration(d).String()), nil
}

// Std returns the value as a time.Duration
func (d Duration) Std() time.Duration {
	return time.Duration(d)
}
