package cli

import (
	"fmt"
	"io/fs"
	"strings"

	"github.com/arthur-debert/ricer/internal/version"
	"github.com/arthur-debert/ricer/pkg/errors"
	"github.com/arthur-debert/ricer/pkg/logging"
	"github.com/arthur-debert/ricer/pkg/provision"
	"github.com/arthur-debert/ricer/pkg/topics"
	"github.com/arthur-debert/ricer/pkg/types"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	return newRootCmd(provision.Dependencies{})
}

func newRootCmd(deps provision.Dependencies) *cobra.Command {
	var (
		g         globalFlags
		dryRun    bool
		noRice    bool
		noDeps    bool
		install   bool
		uninstall bool
		failFast  bool
	)

	rootCmd := &cobra.Command{
		Use:     "ricer",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.Version,
		Args:    cobra.NoArgs,
		Example: `  # See what would happen
  ricer --dryrun

  # Only relink configuration after editing it
  ricer --nodeps

  # Undo everything
  ricer --uninstall`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetupLogger(g.verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			mode := types.Mode{DryRun: dryRun, Uninstall: uninstall}

			p, err := initPaths(cmd, &g)
			if err != nil {
				return err
			}

			overrides := map[string]interface{}{}
			if cmd.Flags().Changed("fail-fast") {
				overrides["packages.fail_fast"] = failFast
			}
			cfg, err := loadConfig(p, &g, overrides)
			if err != nil {
				return err
			}

			printer := newPrinter(cmd)
			runDeps := deps
			runDeps.Printer = printer

			summary, err := provision.New(cfg, p, mode, runDeps).Run(cmd.Context(), provision.Options{
				SkipRice:     noRice,
				SkipPackages: noDeps,
			})
			if err != nil {
				return err
			}

			failed := summary.FailedPackages()
			if len(failed) > 0 {
				printer.Error(MsgPackagesFailed, strings.Join(failed, " "))
			}
			if skipped := summary.SkippedPackages(); len(skipped) > 0 {
				printer.Warning(MsgPackagesSkipped, strings.Join(skipped, " "))
			}
			if summary.Failed() {
				return errors.Newf(errors.ErrCommandExit, MsgErrPackagesFailed,
					len(failed)+len(summary.SkippedPackages())).
					WithDetail("failed", failed)
			}

			if mode.DryRun {
				printer.Success(MsgDryRunDone)
			} else {
				printer.Success(MsgDone, capitalize(mode.Verb()))
			}
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		DisableAutoGenTag: true,
	}

	// Global flags
	rootCmd.PersistentFlags().CountVarP(&g.verbosity, "verbose", "v", MsgFlagVerbose)
	rootCmd.PersistentFlags().StringVar(&g.configFile, "config", "", MsgFlagConfig)
	rootCmd.PersistentFlags().StringVar(&g.root, "root", "", MsgFlagRoot)

	// Run flags
	rootCmd.Flags().BoolVarP(&dryRun, "dryrun", "n", false, MsgFlagDryRun)
	rootCmd.Flags().BoolVar(&noRice, "norice", false, MsgFlagNoRice)
	rootCmd.Flags().BoolVar(&noDeps, "nodeps", false, MsgFlagNoDeps)
	rootCmd.Flags().BoolVarP(&install, "install", "i", false, MsgFlagInstall)
	rootCmd.Flags().BoolVarP(&uninstall, "uninstall", "u", false, MsgFlagUninstall)
	rootCmd.Flags().BoolVar(&failFast, "fail-fast", false, MsgFlagFailFast)
	rootCmd.MarkFlagsMutuallyExclusive("install", "uninstall")

	rootCmd.AddCommand(newStatusCmd(&g))
	rootCmd.AddCommand(newListCmd(&g))
	rootCmd.AddCommand(newGenConfigCmd(&g))
	rootCmd.AddCommand(newVersionCmd())

	attachTopics(rootCmd, topics.Builtin())

	return rootCmd
}

// attachTopics wires the help topics found in fsys into rootCmd. A broken
// topic tree leaves the default cobra help in place.
func attachTopics(rootCmd *cobra.Command, fsys fs.FS) bool {
	m, err := topics.Load(fsys, topics.Options{Renderer: topics.NewGlamourRenderer()})
	if err != nil {
		log.Warn().Err(err).Msg("Help topics unavailable")
		return false
	}
	m.Attach(rootCmd)
	return true
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: MsgVersionShort,
		Long:  MsgVersionLong,
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, MsgVersionFormat, version.Version)
			if version.Commit != "" {
				fmt.Fprintf(out, MsgCommitFormat, version.Commit)
			}
			if version.Date != "" {
				fmt.Fprintf(out, MsgBuiltFormat, version.Date)
			}
		},
	}
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
