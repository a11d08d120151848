package shell

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/arthur-debert/enact/pkg/activate"
	"github.com/arthur-debert/enact/pkg/errors"
)

// Render turns an ordered mutation list into a script body (or structured
// document) for the dialect. Any escaping failure aborts the whole render:
// the calling shell must never evaluate a half-written script.
func Render(d *Dialect, muts []activate.Mutation) (string, error) {
	if d.machine {
		switch d.Name {
		case "json":
			return renderJSON(d, muts)
		case "env":
			return renderEnvStream(muts)
		}
	}

	var commands []string
	for _, mut := range muts {
		switch mut.Kind {
		case activate.SetVar, activate.SetPrompt:
			if err := validVarName(mut.Name); err != nil {
				return "", err
			}
			value, err := d.escapeValue(mut.Name, mut.Value)
			if err != nil {
				return "", err
			}
			tmpl := d.ExportVarTmpl
			if mut.Kind == activate.SetPrompt {
				tmpl = d.SetVarTmpl
			}
			commands = append(commands, fmt.Sprintf(tmpl, mut.Name, value))
		case activate.UnsetVar:
			if err := validVarName(mut.Name); err != nil {
				return "", err
			}
			commands = append(commands, fmt.Sprintf(d.UnsetVarTmpl, mut.Name))
		case activate.RunScript:
			if err := validScriptPath(mut.Value, d.scriptPathReject); err != nil {
				return "", err
			}
			commands = append(commands, fmt.Sprintf(d.RunScriptTmpl, mut.Value))
		}
	}
	if len(commands) == 0 {
		return "", nil
	}
	return strings.Join(commands, d.CommandJoin) + d.CommandJoin, nil
}

// escapeValue escapes one value for this dialect. For SetPrompt values the
// SetVarTmpl shares the quoting context of ExportVarTmpl in every table
// entry, so a single escaper per dialect suffices. fish splits PATH into
// the list form its templates expect.
func (d *Dialect) escapeValue(name, value string) (string, error) {
	if d.Name == "fish" && name == "PATH" {
		segments := strings.Split(value, d.PathListSep)
		escaped := make([]string, len(segments))
		for i, segment := range segments {
			e, err := d.escape(segment)
			if err != nil {
				return "", err
			}
			escaped[i] = e
		}
		return strings.Join(escaped, `" "`), nil
	}
	return d.escape(value)
}

// Finalize prepares the rendered script for the adapter. Dialects that eval
// standard output get the body back unchanged; cmd.exe gets a temp .bat
// file whose path is printed instead. The name is collision-resistant:
// parallel activations must never source each other's scripts.
func Finalize(d *Dialect, script string) (string, error) {
	if d.TempFileExt == "" || script == "" {
		return script, nil
	}
	path := filepath.Join(os.TempDir(), "enact-"+uuid.NewString()+d.TempFileExt)
	if err := os.WriteFile(path, []byte(script), 0o600); err != nil {
		return "", errors.Wrap(err, errors.ErrScriptWrite, "failed to write temp script")
	}
	return path, nil
}

// jsonDocument mirrors the structured shape tools consume.
type jsonDocument struct {
	Path    map[string][]string `json:"path"`
	Vars    jsonVars            `json:"vars"`
	Scripts jsonScripts         `json:"scripts"`
}

type jsonVars struct {
	Export map[string]string `json:"export"`
	Unset  []string          `json:"unset"`
	Set    map[string]string `json:"set"`
}

type jsonScripts struct {
	Activate   []string `json:"activate"`
	Deactivate []string `json:"deactivate"`
}

func renderJSON(d *Dialect, muts []activate.Mutation) (string, error) {
	doc := jsonDocument{
		Path:    map[string][]string{},
		Vars:    jsonVars{Export: map[string]string{}, Unset: []string{}, Set: map[string]string{}},
		Scripts: jsonScripts{Activate: []string{}, Deactivate: []string{}},
	}
	for _, mut := range muts {
		switch mut.Kind {
		case activate.SetVar:
			if mut.Name == "PATH" {
				doc.Path["PATH"] = strings.Split(mut.Value, d.PathListSep)
			} else {
				doc.Vars.Export[mut.Name] = mut.Value
			}
		case activate.UnsetVar:
			doc.Vars.Unset = append(doc.Vars.Unset, mut.Name)
		case activate.SetPrompt:
			doc.Vars.Set[mut.Name] = mut.Value
		case activate.RunScript:
			if mut.Name == activate.PhaseNameDeactivate {
				doc.Scripts.Deactivate = append(doc.Scripts.Deactivate, mut.Value)
			} else {
				doc.Scripts.Activate = append(doc.Scripts.Activate, mut.Value)
			}
		}
	}
	out, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return "", errors.Wrap(err, errors.ErrInternal, "failed to marshal mutations")
	}
	return string(out) + "\n", nil
}

// renderEnvStream emits the newline-delimited form: `KEY=VALUE` to set,
// `!KEY` to unset, `. PATH` to source a script. Values containing newlines
// cannot be framed and are rejected.
func renderEnvStream(muts []activate.Mutation) (string, error) {
	var lines []string
	for _, mut := range muts {
		switch mut.Kind {
		case activate.SetVar, activate.SetPrompt:
			if strings.ContainsAny(mut.Value, "\n\r") {
				return "", errors.Newf(errors.ErrUnrenderableValue,
					"value of %s contains a newline, unrepresentable in env stream", mut.Name)
			}
			lines = append(lines, mut.Name+"="+mut.Value)
		case activate.UnsetVar:
			lines = append(lines, "!"+mut.Name)
		case activate.RunScript:
			lines = append(lines, ". "+mut.Value)
		}
	}
	if len(lines) == 0 {
		return "", nil
	}
	return strings.Join(lines, "\n") + "\n", nil
}
