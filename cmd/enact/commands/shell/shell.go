package shell

import (
	"github.com/spf13/cobra"

	"github.com/arthur-debert/enact/pkg/config"
	"github.com/arthur-debert/enact/pkg/shell"
)

// NewCommand creates the shell command
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "shell",
		Short:   MsgShort,
		Long:    MsgLong,
		GroupID: "misc",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			cmd.Println(shell.Detect(cfg.DefaultShell).Name)
			return nil
		},
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "detect",
		Short: MsgDetectShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			cmd.Println(shell.Detect(cfg.DefaultShell).Name)
			return nil
		},
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: MsgListShort,
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			for _, name := range shell.Names() {
				cmd.Println(name)
			}
		},
	})
	return cmd
}
