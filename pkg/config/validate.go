package config

import (
	stderrors "errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/arthur-debert/ricer/pkg/errors"
	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// Validate checks field constraints and cross-entry rules
func Validate(cfg *Config) error {
	if err := validate.Struct(cfg); err != nil {
		var fieldErrs validator.ValidationErrors
		if stderrors.As(err, &fieldErrs) {
			msgs := make([]string, 0, len(fieldErrs))
			for _, fe := range fieldErrs {
				msgs = append(msgs, fmt.Sprintf("%s failed %q", fe.Namespace(), fe.Tag()))
			}
			return errors.New(errors.ErrConfigValid, strings.Join(msgs, "; ")).
				WithDetail("fields", len(fieldErrs))
		}
		return errors.Wrap(err, errors.ErrConfigValid, "invalid configuration")
	}

	// Two units with one destination would unlink each other
	seen := make(map[string]bool, len(cfg.Units))
	for _, unit := range cfg.Units {
		if !isPlainName(unit.Name) {
			return errors.Newf(errors.ErrConfigValid, "unit name %q must be a single path element", unit.Name).
				WithDetail("unit", unit.Name)
		}
		key := unit.To + "/" + unit.Name
		if seen[key] {
			return errors.Newf(errors.ErrConfigValid, "duplicate unit %q in %s", unit.Name, unit.To).
				WithDetail("unit", unit.Name)
		}
		seen[key] = true
	}

	return nil
}

// isPlainName rejects names that resolve to the destination root or above it
func isPlainName(name string) bool {
	return name != "." && name != ".." && filepath.Base(name) == name
}
