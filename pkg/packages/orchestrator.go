package packages

import (
	"context"

	"github.com/arthur-debert/ricer/pkg/logging"
	"github.com/arthur-debert/ricer/pkg/style"
	"github.com/arthur-debert/ricer/pkg/types"
	"github.com/rs/zerolog"
)

// Orchestrator runs package groups through the direct and community handlers
type Orchestrator struct {
	direct    Handler
	community Handler
	printer   *style.Printer
	logger    zerolog.Logger
}

// NewOrchestrator creates an orchestrator. direct receives each group's
// pacman list and community its AUR list.
func NewOrchestrator(direct, community Handler, printer *style.Printer) *Orchestrator {
	if printer == nil {
		printer = style.NewConsolePrinter()
	}
	return &Orchestrator{
		direct:    direct,
		community: community,
		printer:   printer,
		logger:    logging.GetLogger("packages"),
	}
}

// Dispatch hands pkgs to h and logs the outcome
func (o *Orchestrator) Dispatch(ctx context.Context, h Handler, pkgs []string) Report {
	o.logger.Debug().
		Str("handler", h.Name()).
		Strs("packages", pkgs).
		Msg("Dispatching packages")

	report := h.Apply(ctx, pkgs)

	if failed := report.FailedPackages(); len(failed) > 0 {
		o.logger.Warn().
			Str("handler", h.Name()).
			Strs("failed", failed).
			Strs("skipped", report.SkippedPackages()).
			Msg("Packages failed")
	} else {
		o.logger.Info().
			Str("handler", h.Name()).
			Int("packages", len(pkgs)).
			Msg("Packages handled")
	}
	return report
}

// Run processes groups in order. Each group prints a "#N. name" heading,
// then its pacman packages are handled before its AUR packages. A
// cancelled context stops before the next group.
func (o *Orchestrator) Run(ctx context.Context, groups []types.Group) []Report {
	reports := make([]Report, 0, 2*len(groups))
	for i, g := range groups {
		if err := ctx.Err(); err != nil {
			o.logger.Warn().Err(err).Str("group", g.Name).Msg("Cancelled, stopping before group")
			break
		}

		o.printer.Heading("#%d. %s", i+1, g.Name)
		reports = append(reports,
			o.Dispatch(ctx, o.direct, g.Pacman),
			o.Dispatch(ctx, o.community, g.AUR),
		)
	}
	return reports
}
