package activate

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/arthur-debert/enact/pkg/commands"
	"github.com/arthur-debert/enact/pkg/config"
)

// NewCommand creates the activate command
func NewCommand() *cobra.Command {
	var (
		shellName string
		stack     bool
		noStack   bool
	)

	cmd := &cobra.Command{
		Use:     "activate [name-or-path]",
		Short:   MsgShort,
		Long:    MsgLong,
		Example: MsgExample,
		GroupID: "core",
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			target := "base"
			if len(args) == 1 {
				target = args[0]
			}
			script, err := commands.Activate(&commands.Options{
				Config:  cfg,
				Environ: os.Environ(),
				Shell:   shellName,
				Stack:   stack,
				NoStack: noStack,
			}, target)
			if err != nil {
				return err
			}
			cmd.Print(script)
			return nil
		},
	}

	cmd.Flags().StringVar(&shellName, "shell", "", MsgFlagShell)
	cmd.Flags().BoolVar(&stack, "stack", false, MsgFlagStack)
	cmd.Flags().BoolVar(&noStack, "no-stack", false, MsgFlagNoStack)
	cmd.MarkFlagsMutuallyExclusive("stack", "no-stack")
	return cmd
}
