package checkenv

import (
	"encoding/json"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/arthur-debert/enact/pkg/commands"
	"github.com/arthur-debert/enact/pkg/config"
	"github.com/arthur-debert/enact/pkg/errors"
)

// NewCommand creates the checkenv command
func NewCommand() *cobra.Command {
	var (
		shellName string
		format    string
	)

	cmd := &cobra.Command{
		Use:    "checkenv <name-or-path>",
		Short:  MsgShort,
		Long:   MsgLong,
		Hidden: true,
		Args:   cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			report, err := commands.CheckEnv(&commands.Options{
				Config:  cfg,
				Environ: os.Environ(),
				Shell:   shellName,
			}, args[0])
			if err != nil {
				return err
			}

			switch format {
			case "yaml":
				out, err := yaml.Marshal(report)
				if err != nil {
					return err
				}
				cmd.Print(string(out))
			case "json":
				out, err := json.MarshalIndent(report, "", "  ")
				if err != nil {
					return err
				}
				cmd.Println(string(out))
			default:
				return errors.Newf(errors.ErrInvalidInput,
					"unknown format %q (supported: yaml, json)", format)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&shellName, "shell", "", MsgFlagShell)
	cmd.Flags().StringVar(&format, "format", "yaml", MsgFlagFormat)
	return cmd
}
