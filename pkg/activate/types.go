// Package activate computes the environment mutations behind activate,
// deactivate, and reactivate.
//
// The builders are pure functions over an explicit State snapshot of the
// calling shell's variables: nothing here touches the process environment
// or the filesystem beyond read-only probing of hook directories. The
// result is an ordered Mutation list that pkg/shell renders into a
// dialect-specific script for the calling shell to evaluate.
package activate

// MutationKind discriminates the Mutation union.
type MutationKind int

const (
	// SetVar exports an environment variable.
	SetVar MutationKind = iota
	// UnsetVar removes an environment variable.
	UnsetVar
	// SetPrompt assigns the shell's prompt variable (shell-local, not
	// exported).
	SetPrompt
	// RunScript sources a hook script in the calling shell.
	RunScript
)

// Phase names carried on RunScript mutations.
const (
	PhaseNameActivate   = "activate"
	PhaseNameDeactivate = "deactivate"
)

// Mutation is one instruction for the calling shell.
type Mutation struct {
	Kind MutationKind
	// Name is the variable name for SetVar/UnsetVar/SetPrompt, or the hook
	// phase name for RunScript.
	Name string
	// Value is the variable value for SetVar/SetPrompt, or the script path
	// for RunScript.
	Value string
}

func setVar(name, value string) Mutation {
	return Mutation{Kind: SetVar, Name: name, Value: value}
}

func unsetVar(name string) Mutation {
	return Mutation{Kind: UnsetVar, Name: name}
}

func setPrompt(name, value string) Mutation {
	return Mutation{Kind: SetPrompt, Name: name, Value: value}
}

func runScript(phase HookPhase, path string) Mutation {
	name := PhaseNameActivate
	if phase == PhaseDeactivate {
		name = PhaseNameDeactivate
	}
	return Mutation{Kind: RunScript, Name: name, Value: path}
}
