package shell

import (
	"embed"
	"os"
	"strings"

	"github.com/arthur-debert/enact/pkg/activate"
	"github.com/arthur-debert/enact/pkg/errors"
)

//go:embed scripts
var scriptFS embed.FS

// adapterFiles maps each interactive dialect to its embedded wrapper.
var adapterFiles = map[string]string{
	"posix":      "scripts/enact.sh",
	"csh":        "scripts/enact.csh",
	"fish":       "scripts/enact.fish",
	"xonsh":      "scripts/enact.xsh",
	"powershell": "scripts/enact.ps1",
	"cmd.exe":    "scripts/enact.bat",
	"elvish":     "scripts/enact.elv",
}

// Hook assembles the shell integration script a user evals from their rc
// file: exports locating the binary and the root prefix, the embedded
// wrapper for the dialect, and optionally an initial base activation.
func Hook(d *Dialect, rootPrefix string, autoActivateBase bool) (string, error) {
	file, ok := adapterFiles[d.Name]
	if !ok {
		return "", errors.Newf(errors.ErrUnsupportedShell,
			"%s has no shell integration script", d.Name)
	}
	adapter, err := scriptFS.ReadFile(file)
	if err != nil {
		return "", errors.Wrapf(err, errors.ErrInternal, "missing embedded script %s", file)
	}

	exe, err := os.Executable()
	if err != nil {
		exe = "enact"
	}
	preamble := []activate.Mutation{
		{Kind: activate.SetVar, Name: "ENACT_EXE", Value: exe},
		{Kind: activate.SetVar, Name: "_ENACT_EXE", Value: exe},
	}
	if rootPrefix != "" {
		preamble = append(preamble, activate.Mutation{
			Kind: activate.SetVar, Name: "_ENACT_ROOT", Value: rootPrefix,
		})
	}
	head, err := Render(d, preamble)
	if err != nil {
		return "", err
	}

	var out strings.Builder
	out.WriteString(head)
	out.Write(adapter)
	// The cmd.exe wrapper is a standalone enact.bat, not an eval'd block;
	// an auto-activate line inside it would fire on every invocation.
	if autoActivateBase && d.Name != "cmd.exe" {
		out.WriteString(d.CommandJoin)
		out.WriteString("enact activate base")
		out.WriteString(d.CommandJoin)
	}
	return out.String(), nil
}
