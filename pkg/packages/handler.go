package packages

import "context"

// Handler applies the current mode to a list of packages
type Handler interface {
	Name() string
	Apply(ctx context.Context, pkgs []string) Report
}
