package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/arthur-debert/ricer/pkg/config"
	"github.com/arthur-debert/ricer/pkg/provision"
	"github.com/arthur-debert/ricer/pkg/rice"
	"github.com/arthur-debert/ricer/pkg/style"
	"github.com/arthur-debert/ricer/pkg/types"
	"github.com/spf13/cobra"
)

func newStatusCmd(g *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: MsgStatusShort,
		Long: `Status inspects the destination of every configured unit without
changing anything and reports one of:

  linked        a symlink to the repository copy
  missing       nothing there yet
  conflict      a real file or directory is in the way
  wrong-target  a symlink pointing somewhere else
  broken        a symlink to a repository path that does not exist`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := initPaths(cmd, g)
			if err != nil {
				return err
			}
			cfg, err := loadConfig(p, g, nil)
			if err != nil {
				return err
			}

			printer := newPrinter(cmd)
			if len(cfg.Units) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), MsgNoUnits)
				return nil
			}

			statuses, err := provision.New(cfg, p, types.Mode{}, provision.Dependencies{Printer: printer}).Status()
			if err != nil {
				return err
			}

			rows := make([][]string, 0, len(statuses))
			for _, st := range statuses {
				rows = append(rows, []string{stateIcon(st.State) + " " + st.Unit, string(st.State), st.Destination, st.Source})
			}
			return printer.Table([]string{"Unit", "State", "Destination", "Source"}, rows)
		},
	}
}

func stateIcon(s rice.State) string {
	switch s {
	case rice.StateLinked:
		return style.SuccessIcon
	case rice.StateMissing:
		return style.PendingIcon
	default:
		return style.FailureIcon
	}
}

func newListCmd(g *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: MsgListShort,
		Long: `List shows the package groups in the order they are processed, with
the packages installed by pacman and those built from the AUR.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := initPaths(cmd, g)
			if err != nil {
				return err
			}
			cfg, err := loadConfig(p, g, nil)
			if err != nil {
				return err
			}

			if len(cfg.Groups) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), MsgNoGroups)
				return nil
			}

			rows := make([][]string, 0, len(cfg.Groups))
			for i, group := range cfg.Groups {
				rows = append(rows, []string{
					strconv.Itoa(i + 1),
					group.Name,
					strings.Join(group.Pacman, " "),
					strings.Join(group.AUR, " "),
					strconv.Itoa(len(group.Packages())),
				})
			}
			return newPrinter(cmd).Table([]string{"#", "Group", "Pacman", "AUR", "Total"}, rows)
		},
	}
}

func newGenConfigCmd(g *globalFlags) *cobra.Command {
	var (
		effective bool
		format    string
	)

	cmd := &cobra.Command{
		Use:   "genconfig",
		Short: MsgGenConfigShort,
		Long:  MsgGenConfigLong,
		Args:  cobra.NoArgs,
		Example: `  # Start a repository config
  ricer genconfig > ricer.toml

  # Inspect the merged configuration as yaml
  ricer genconfig --effective --format yaml`,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			if !effective && strings.ToLower(format) == config.FormatTOML {
				_, err := fmt.Fprint(out, config.GenerateConfigContent())
				return err
			}

			var cfg *config.Config
			if effective {
				p, err := initPaths(cmd, g)
				if err != nil {
					return err
				}
				if cfg, err = loadConfig(p, g, nil); err != nil {
					return err
				}
			} else {
				var err error
				if cfg, err = config.Default(); err != nil {
					return err
				}
			}

			data, err := config.Marshal(cfg, format)
			if err != nil {
				return err
			}
			_, err = out.Write(data)
			return err
		},
	}

	cmd.Flags().BoolVar(&effective, "effective", false, MsgFlagEffective)
	cmd.Flags().StringVar(&format, "format", config.FormatTOML, MsgFlagFormat)
	return cmd
}
