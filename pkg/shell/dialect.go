// Package shell renders mutation lists into dialect-specific scripts and
// carries the per-shell adapter assets.
//
// One table entry per dialect: quoting templates, separators, the hook
// script extension, and a conservative value escaper. Adding a shell means
// adding a table entry, not reimplementing the state machine.
package shell

import (
	"sort"
	"strings"

	"github.com/arthur-debert/enact/pkg/activate"
	"github.com/arthur-debert/enact/pkg/errors"
)

// Dialect describes how one shell family spells environment mutations.
type Dialect struct {
	// Name is the canonical dialect identifier.
	Name string
	// PathListSep joins PATH segments for this dialect.
	PathListSep string
	// ScriptExt selects which hook scripts this dialect can source.
	ScriptExt string
	// TempFileExt, when non-empty, makes Finalize write the script to a
	// temp file and output the file path instead of the script body.
	TempFileExt string
	// CommandJoin separates rendered statements.
	CommandJoin string
	// PromptVar is the prompt variable the emitter assigns directly, or ""
	// when the adapter script owns the prompt.
	PromptVar string

	// Statement templates, all fmt-style with %s placeholders.
	UnsetVarTmpl  string
	ExportVarTmpl string
	SetVarTmpl    string
	RunScriptTmpl string

	// escape makes a value safe inside the templates' quoting context.
	escape func(string) (string, error)

	// scriptPathReject lists characters that stay live inside this
	// dialect's RunScriptTmpl quoting on top of the shared reject set.
	scriptPathReject string

	// machine marks the structured output formats (json, env).
	machine bool
}

// Traits exposes the facts pkg/activate needs from a dialect.
func (d *Dialect) Traits() activate.ShellTraits {
	return activate.ShellTraits{
		ScriptExt:   d.ScriptExt,
		PathListSep: d.PathListSep,
		PromptVar:   d.PromptVar,
	}
}

var posixDialect = &Dialect{
	Name:          "posix",
	PathListSep:   ":",
	ScriptExt:     ".sh",
	CommandJoin:   "\n",
	PromptVar:     "PS1",
	UnsetVarTmpl:  "unset %s",
	ExportVarTmpl: "export %s='%s'",
	SetVarTmpl:    "%s='%s'",
	RunScriptTmpl: `. "%s"`,
	escape:        escapePosix,
}

var cshDialect = &Dialect{
	Name:          "csh",
	PathListSep:   ":",
	ScriptExt:     ".csh",
	CommandJoin:   ";\n",
	PromptVar:     "prompt",
	UnsetVarTmpl:  "unsetenv %s",
	ExportVarTmpl: `setenv %s "%s"`,
	SetVarTmpl:    "set %s='%s'",
	RunScriptTmpl: `source "%s"`,
	escape:        escapeCsh,
	// history expansion fires inside double quotes
	scriptPathReject: "!",
}

var fishDialect = &Dialect{
	Name:          "fish",
	PathListSep:   ":",
	ScriptExt:     ".fish",
	CommandJoin:   ";\n",
	UnsetVarTmpl:  "set -e %s",
	ExportVarTmpl: `set -gx %s "%s"`,
	SetVarTmpl:    `set -g %s "%s"`,
	RunScriptTmpl: `source "%s"`,
	escape:        escapeFish,
}

var xonshDialect = &Dialect{
	Name:          "xonsh",
	PathListSep:   ":",
	ScriptExt:     ".sh",
	CommandJoin:   "\n",
	UnsetVarTmpl:  "try:\n    del $%s\nexcept KeyError:\n    pass",
	ExportVarTmpl: "$%s = '%s'",
	SetVarTmpl:    "$%s = '%s'",
	RunScriptTmpl: `source-bash --suppress-skip-message -n "%s"`,
	escape:        escapeXonsh,
}

var cmdExeDialect = &Dialect{
	Name:          "cmd.exe",
	PathListSep:   ";",
	ScriptExt:     ".bat",
	TempFileExt:   ".bat",
	CommandJoin:   "\r\n",
	UnsetVarTmpl:  "@SET %s=",
	ExportVarTmpl: `@SET "%s=%s"`,
	SetVarTmpl:    `@SET "%s=%s"`,
	RunScriptTmpl: `@CALL "%s"`,
	escape:        escapeCmdExe,
	// percent expansion happens before quoting is even considered
	scriptPathReject: "%",
}

var powershellDialect = &Dialect{
	Name:          "powershell",
	PathListSep:   ":",
	ScriptExt:     ".ps1",
	CommandJoin:   "\n",
	UnsetVarTmpl:  "$Env:%s = $null",
	ExportVarTmpl: `$Env:%s = "%s"`,
	SetVarTmpl:    `$Env:%s = "%s"`,
	RunScriptTmpl: `. "%s"`,
	escape:        escapePowerShell,
}

var elvishDialect = &Dialect{
	Name:          "elvish",
	PathListSep:   ":",
	ScriptExt:     ".elv",
	CommandJoin:   "\n",
	UnsetVarTmpl:  "unset-env %s",
	ExportVarTmpl: "set-env %s %s",
	SetVarTmpl:    "set-env %s %s",
	RunScriptTmpl: `eval (slurp < "%s")`,
	escape:        escapeElvish,
}

var jsonDialect = &Dialect{
	Name:        "json",
	PathListSep: ":",
	ScriptExt:   ".sh",
	machine:     true,
}

var envDialect = &Dialect{
	Name:        "env",
	PathListSep: ":",
	ScriptExt:   ".sh",
	machine:     true,
}

// dialects maps every accepted identifier to its dialect. POSIX-family
// shells share one entry, as do csh/tcsh.
var dialects = map[string]*Dialect{
	"posix":      posixDialect,
	"ash":        posixDialect,
	"bash":       posixDialect,
	"dash":       posixDialect,
	"zsh":        posixDialect,
	"csh":        cshDialect,
	"tcsh":       cshDialect,
	"fish":       fishDialect,
	"xonsh":      xonshDialect,
	"cmd.exe":    cmdExeDialect,
	"cmd":        cmdExeDialect,
	"powershell": powershellDialect,
	"pwsh":       powershellDialect,
	"elvish":     elvishDialect,
	"json":       jsonDialect,
	"env":        envDialect,
}

// Lookup resolves a dialect identifier.
func Lookup(name string) (*Dialect, error) {
	d, ok := dialects[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return nil, errors.Newf(errors.ErrUnsupportedShell,
			"%s is not a supported shell (supported: %s)", name, strings.Join(Names(), ", "))
	}
	return d, nil
}

// Names returns every accepted dialect identifier, sorted.
func Names() []string {
	names := make([]string, 0, len(dialects))
	for name := range dialects {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
