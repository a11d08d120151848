package activate

import (
	"fmt"
	"strconv"
	"strings"
)

// Protocol variable names. These are kept bit-compatible with the conda
// activation protocol so hook scripts written against conda keep working.
const (
	VarShlvl          = "CONDA_SHLVL"
	VarPrefix         = "CONDA_PREFIX"
	VarDefaultEnv     = "CONDA_DEFAULT_ENV"
	VarPromptModifier = "CONDA_PROMPT_MODIFIER"

	varPrefixN       = "CONDA_PREFIX_%d"
	varStackedN      = "CONDA_STACKED_%d"
	varPathBackupN   = "CONDA_PATH_BACKUP_%d"
	varPromptBackupN = "CONDA_PS1_BACKUP_%d"
	varEnvVarSaveNK  = "__CONDA_SHLVL_%d_%s"
)

// State is a read-only snapshot of the calling shell's environment
// variables. The core process is stateless; all persistence is the shell's.
type State struct {
	env map[string]string
}

// NewState builds a State from environ-style "KEY=VALUE" pairs
// (typically os.Environ()).
func NewState(environ []string) State {
	env := make(map[string]string, len(environ))
	for _, kv := range environ {
		if i := strings.IndexByte(kv, '='); i > 0 {
			env[kv[:i]] = kv[i+1:]
		}
	}
	return State{env: env}
}

// NewStateFromMap builds a State from a plain map, used by tests.
func NewStateFromMap(env map[string]string) State {
	copied := make(map[string]string, len(env))
	for k, v := range env {
		copied[k] = v
	}
	return State{env: copied}
}

// Get returns the value of name, or "".
func (s State) Get(name string) string {
	return s.env[name]
}

// Has reports whether name is set at all.
func (s State) Has(name string) bool {
	_, ok := s.env[name]
	return ok
}

// Path returns the current PATH value.
func (s State) Path() string {
	return s.env["PATH"]
}

// Shlvl returns the current shell level counter, 0 when unset or garbage.
func (s State) Shlvl() int {
	raw := strings.TrimSpace(s.env[VarShlvl])
	if raw == "" {
		return 0
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return 0
	}
	return n
}

// Prefix returns the active environment prefix, "" when none.
func (s State) Prefix() string {
	return s.env[VarPrefix]
}

// FramePrefix returns the prefix recorded for frame level n.
func (s State) FramePrefix(n int) string {
	return s.env[fmt.Sprintf(varPrefixN, n)]
}

// FrameStacked reports whether the frame at level n was pushed with stack
// semantics.
func (s State) FrameStacked(n int) bool {
	return strings.TrimSpace(s.env[fmt.Sprintf(varStackedN, n)]) != ""
}

// FramePathBackup returns the PATH captured before the frame at level n
// mutated it, and whether a backup exists.
func (s State) FramePathBackup(n int) (string, bool) {
	v, ok := s.env[fmt.Sprintf(varPathBackupN, n)]
	return v, ok
}

// FramePromptBackup returns the prompt captured before the frame at level n
// mutated it, and whether a backup exists.
func (s State) FramePromptBackup(n int) (string, bool) {
	v, ok := s.env[fmt.Sprintf(varPromptBackupN, n)]
	return v, ok
}

// EnvVarSave returns the outer value saved for an injected environment
// variable at level n, and whether a save exists.
func (s State) EnvVarSave(n int, name string) (string, bool) {
	v, ok := s.env[fmt.Sprintf(varEnvVarSaveNK, n, name)]
	return v, ok
}

func framePrefixVar(n int) string       { return fmt.Sprintf(varPrefixN, n) }
func frameStackedVar(n int) string      { return fmt.Sprintf(varStackedN, n) }
func framePathBackupVar(n int) string   { return fmt.Sprintf(varPathBackupN, n) }
func framePromptBackupVar(n int) string { return fmt.Sprintf(varPromptBackupN, n) }
func envVarSaveVar(n int, name string) string {
	return fmt.Sprintf(varEnvVarSaveNK, n, name)
}
