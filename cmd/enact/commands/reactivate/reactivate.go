package reactivate

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/arthur-debert/enact/pkg/commands"
	"github.com/arthur-debert/enact/pkg/config"
)

// NewCommand creates the reactivate command
func NewCommand() *cobra.Command {
	var shellName string

	cmd := &cobra.Command{
		Use:     "reactivate",
		Short:   MsgShort,
		Long:    MsgLong,
		GroupID: "core",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			script, err := commands.Reactivate(&commands.Options{
				Config:  cfg,
				Environ: os.Environ(),
				Shell:   shellName,
			})
			if err != nil {
				return err
			}
			cmd.Print(script)
			return nil
		},
	}

	cmd.Flags().StringVar(&shellName, "shell", "", MsgFlagShell)
	return cmd
}
