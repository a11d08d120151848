package enact

import (
	"fmt"
	"sort"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/arthur-debert/enact/cmd/enact/commands/activate"
	"github.com/arthur-debert/enact/cmd/enact/commands/checkenv"
	configcmd "github.com/arthur-debert/enact/cmd/enact/commands/config"
	"github.com/arthur-debert/enact/cmd/enact/commands/deactivate"
	"github.com/arthur-debert/enact/cmd/enact/commands/envs"
	"github.com/arthur-debert/enact/cmd/enact/commands/hook"
	"github.com/arthur-debert/enact/cmd/enact/commands/reactivate"
	shellcmd "github.com/arthur-debert/enact/cmd/enact/commands/shell"
	"github.com/arthur-debert/enact/internal/version"
	"github.com/arthur-debert/enact/pkg/logging"
)

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	var verbosity int

	rootCmd := &cobra.Command{
		Use:     "enact",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.Version,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetupLogger(verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			_ = cmd.Help()
			return fmt.Errorf("no command specified")
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}

	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", MsgFlagVerbose)

	rootCmd.AddGroup(&cobra.Group{
		ID:    "core",
		Title: "COMMANDS:",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    "misc",
		Title: "MISC:",
	})

	rootCmd.AddCommand(activate.NewCommand())
	rootCmd.AddCommand(deactivate.NewCommand())
	rootCmd.AddCommand(reactivate.NewCommand())
	rootCmd.AddCommand(hook.NewCommand())
	rootCmd.AddCommand(envs.NewCommand())
	rootCmd.AddCommand(shellcmd.NewCommand())
	rootCmd.AddCommand(configcmd.NewCommand())
	rootCmd.AddCommand(checkenv.NewCommand())
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newCompletionCmd())
	rootCmd.AddCommand(newCommandsCmd(rootCmd))

	return rootCmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "version",
		Short:   MsgVersionShort,
		GroupID: "misc",
		Run: func(cmd *cobra.Command, args []string) {
			cmd.Printf("enact version %s\n", version.Version)
			cmd.Printf("  commit: %s\n", version.Commit)
			cmd.Printf("  built:  %s\n", version.Date)
		},
	}
}

func newCompletionCmd() *cobra.Command {
	return &cobra.Command{
		Use:                   "completion [bash|zsh|fish|powershell]",
		Short:                 MsgCompletionShort,
		GroupID:               "misc",
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletion(cmd.OutOrStdout())
			case "zsh":
				return cmd.Root().GenZshCompletion(cmd.OutOrStdout())
			case "fish":
				return cmd.Root().GenFishCompletion(cmd.OutOrStdout(), true)
			case "powershell":
				return cmd.Root().GenPowerShellCompletionWithDesc(cmd.OutOrStdout())
			}
			return nil
		},
	}
}

// newCommandsCmd lists subcommand names, one per line. The shell wrappers
// use it to keep completion lists in sync with the binary.
func newCommandsCmd(root *cobra.Command) *cobra.Command {
	return &cobra.Command{
		Use:    "commands",
		Short:  MsgCommandsShort,
		Hidden: true,
		Run: func(cmd *cobra.Command, args []string) {
			var names []string
			for _, c := range root.Commands() {
				if c.Hidden {
					continue
				}
				names = append(names, c.Name())
			}
			sort.Strings(names)
			for _, name := range names {
				cmd.Println(name)
			}
		},
	}
}
