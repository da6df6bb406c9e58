package cli

import (
	"fmt"
	"os"

	"github.com/arthur-debert/ricer/pkg/config"
	"github.com/arthur-debert/ricer/pkg/paths"
	"github.com/arthur-debert/ricer/pkg/style"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// globalFlags are the persistent flags shared by every command
type globalFlags struct {
	verbosity  int
	configFile string
	root       string
}

// initPaths resolves the repository and profile roots, warning when the
// repository root is only a guess
func initPaths(cmd *cobra.Command, g *globalFlags) (*paths.Paths, error) {
	p, err := paths.New(paths.Options{RepoRoot: g.root})
	if err != nil {
		return nil, fmt.Errorf(MsgErrInitPaths, err)
	}

	if p.UsedFallback() {
		fmt.Fprintf(cmd.ErrOrStderr(), MsgWarnFallback, p.RepoRoot())
	}
	log.Debug().
		Str("repoRoot", p.RepoRoot()).
		Str("home", p.Home()).
		Str("configHome", p.ConfigHome()).
		Bool("fallback", p.UsedFallback()).
		Msg("Resolved paths")
	return p, nil
}

// loadConfig merges the configuration for p, preferring an explicit --config
func loadConfig(p *paths.Paths, g *globalFlags, overrides map[string]interface{}) (*config.Config, error) {
	file := g.configFile
	if file == "" {
		file = p.ConfigFile()
	}
	return config.Load(config.LoadOptions{File: file, Overrides: overrides})
}

// newPrinter writes to the command's output, colored only on a terminal
func newPrinter(cmd *cobra.Command) *style.Printer {
	out := cmd.OutOrStdout()
	if f, ok := out.(*os.File); ok {
		return style.NewPrinter(f, style.DetectColor(f))
	}
	return style.NewPrinter(out, false)
}
