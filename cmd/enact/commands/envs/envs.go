package envs

import (
	"encoding/json"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/arthur-debert/enact/pkg/commands"
	"github.com/arthur-debert/enact/pkg/config"
	"github.com/arthur-debert/enact/pkg/errors"
)

var (
	activeStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true)
	prefixStyle = lipgloss.NewStyle().Faint(true)
)

// NewCommand creates the envs command
func NewCommand() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:     "envs",
		Aliases: []string{"list"},
		Short:   MsgShort,
		Long:    MsgLong,
		GroupID: "core",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			infos, err := commands.ListEnvs(&commands.Options{
				Config:  cfg,
				Environ: os.Environ(),
			})
			if err != nil {
				return err
			}

			switch format {
			case "text":
				if len(infos) == 0 {
					cmd.Println(MsgNoEnvs)
					return nil
				}
				renderText(cmd, infos)
			case "json":
				out, err := json.MarshalIndent(infos, "", "  ")
				if err != nil {
					return err
				}
				cmd.Println(string(out))
			case "yaml":
				out, err := yaml.Marshal(infos)
				if err != nil {
					return err
				}
				cmd.Print(string(out))
			default:
				return errors.Newf(errors.ErrInvalidInput,
					"unknown format %q (supported: text, json, yaml)", format)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&format, "format", "text", MsgFlagFormat)
	return cmd
}

func renderText(cmd *cobra.Command, infos []commands.EnvInfo) {
	nameWidth := 0
	for _, info := range infos {
		if len(info.Name) > nameWidth {
			nameWidth = len(info.Name)
		}
	}
	for _, info := range infos {
		marker := " "
		name := info.Name
		if info.Active {
			marker = activeStyle.Render("*")
			name = activeStyle.Render(name)
		}
		pad := strings.Repeat(" ", nameWidth-len(info.Name)+2)
		cmd.Printf("%s %s%s%s\n", marker, name, pad, prefixStyle.Render(info.Prefix))
	}
}
