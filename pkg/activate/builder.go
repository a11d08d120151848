package activate

import (
	"strconv"
	"strings"

	"github.com/rs/zerolog"

	"github.com/arthur-debert/enact/pkg/config"
	"github.com/arthur-debert/enact/pkg/envs"
	"github.com/arthur-debert/enact/pkg/logging"
)

// ShellTraits carries the dialect facts the builders depend on. The
// rendering templates stay in pkg/shell; only path joining, hook filtering,
// and prompt-variable naming leak down here.
type ShellTraits struct {
	// ScriptExt filters hook scripts (".sh", ".csh", ".fish", ".bat", ...).
	ScriptExt string
	// PathListSep joins PATH segments (":" or ";").
	PathListSep string
	// PromptVar is the dialect's prompt variable ("PS1", "prompt"), or ""
	// for dialects whose prompt is managed by the adapter script.
	PromptVar string
}

// Builder computes mutation lists for one snapshot of shell state. Each
// builder call is a pure function of the snapshot; nothing is mutated
// in-process.
type Builder struct {
	cfg       *config.Config
	reg       *envs.Registry
	state     State
	scriptExt string
	pathSep   string
	promptVar string
	log       zerolog.Logger
}

// NewBuilder returns a Builder over the given state snapshot.
func NewBuilder(cfg *config.Config, reg *envs.Registry, state State, traits ShellTraits) *Builder {
	pathSep := traits.PathListSep
	if pathSep == "" {
		pathSep = ":"
	}
	return &Builder{
		cfg:       cfg,
		reg:       reg,
		state:     state,
		scriptExt: traits.ScriptExt,
		pathSep:   pathSep,
		promptVar: traits.PromptVar,
		log:       logging.GetLogger("activate"),
	}
}

// Activate resolves nameOrPath and pushes an activation frame. Activating
// the already-active prefix is a reactivate, not a new frame. With stack
// semantics the previous frame's PATH entries stay; otherwise they are
// removed before the new entries go in.
func (b *Builder) Activate(nameOrPath string, stack bool) ([]Mutation, error) {
	environment, err := b.reg.Resolve(nameOrPath)
	if err != nil {
		return nil, err
	}
	prefix := environment.Prefix

	oldShlvl := b.state.Shlvl()
	oldPrefix := b.state.Prefix()

	if oldShlvl > 0 && envs.PathsEqual(oldPrefix, prefix) {
		return b.Reactivate()
	}

	newShlvl := oldShlvl + 1
	defaultEnv := b.reg.DisplayName(prefix)
	modifier := b.promptModifier(prefix, defaultEnv, opActivate, stack)
	segments := splitPath(b.state.Path(), b.pathSep)

	var newPath string
	var deactivateScripts []string
	if oldShlvl == 0 || stack {
		newPath = joinPath(addPrefixToPath(prefix, segments), b.pathSep)
	} else {
		newPath = joinPath(replacePrefixInPath(oldPrefix, prefix, segments), b.pathSep)
		deactivateScripts = ListHooks(oldPrefix, PhaseDeactivate, b.scriptExt)
	}

	var muts []Mutation
	for _, script := range deactivateScripts {
		muts = append(muts, runScript(PhaseDeactivate, script))
	}
	if prompt, ok := b.updatedPrompt(modifier); ok && b.cfg.ChangePS1 {
		muts = append(muts, setPrompt(b.promptVar, prompt))
	}

	muts = append(muts,
		setVar("PATH", newPath),
		setVar(VarPrefix, prefix),
		setVar(VarShlvl, strconv.Itoa(newShlvl)),
		setVar(VarDefaultEnv, defaultEnv),
		setVar(VarPromptModifier, modifier),
	)
	if oldShlvl > 0 {
		muts = append(muts, setVar(framePrefixVar(oldShlvl), oldPrefix))
		if stack {
			muts = append(muts, setVar(frameStackedVar(newShlvl), "true"))
		}
	}
	muts = append(muts,
		setVar(framePathBackupVar(newShlvl), b.state.Path()),
		setVar(framePromptBackupVar(newShlvl), b.state.Get(b.promptVarOrPS1())),
	)

	for _, declared := range environmentEnvVars(prefix) {
		if current := b.state.Get(declared.Name); b.state.Has(declared.Name) {
			if current != declared.Value {
				b.log.Warn().Str("variable", declared.Name).
					Msg("Overwriting environment variable set in the machine")
			}
			muts = append(muts, setVar(envVarSaveVar(oldShlvl, declared.Name), current))
		}
		muts = append(muts, setVar(declared.Name, declared.Value))
	}

	for _, script := range ListHooks(prefix, PhaseActivate, b.scriptExt) {
		muts = append(muts, runScript(PhaseActivate, script))
	}
	return muts, nil
}

// Deactivate pops the top activation frame. With no active environment it
// succeeds with an empty mutation list. PATH and prompt come back from the
// frame's backup variables when present (byte-identical restore) and are
// recomputed from the frame chain otherwise, which covers environments
// activated by other tools.
func (b *Builder) Deactivate() ([]Mutation, error) {
	oldPrefix := b.state.Prefix()
	oldShlvl := b.state.Shlvl()
	if oldPrefix == "" || oldShlvl < 1 {
		return nil, nil
	}
	newShlvl := oldShlvl - 1
	segments := splitPath(b.state.Path(), b.pathSep)
	oldEnvVars := environmentEnvVars(oldPrefix)

	var muts []Mutation
	var promptValue string
	var promptOK bool
	var activateScripts []string
	var exports []Mutation
	var unsets []Mutation

	if oldShlvl == 1 {
		newPath, ok := b.state.FramePathBackup(1)
		if !ok {
			newPath = joinPath(removePrefixFromPath(oldPrefix, segments), b.pathSep)
		}
		muts = append(muts, setVar("PATH", newPath))

		promptValue, promptOK = b.state.FramePromptBackup(1)
		if !promptOK {
			promptValue, promptOK = b.updatedPrompt("")
		}

		exports = append(exports, setVar(VarShlvl, "0"))
		unsets = append(unsets,
			unsetVar(VarPrefix),
			unsetVar(VarDefaultEnv),
			unsetVar(VarPromptModifier),
			unsetVar(framePathBackupVar(1)),
			unsetVar(framePromptBackupVar(1)),
		)
	} else {
		newPrefix := b.state.FramePrefix(newShlvl)
		stacked := b.state.FrameStacked(oldShlvl)

		newPath, ok := b.state.FramePathBackup(oldShlvl)
		if !ok {
			if stacked {
				newPath = joinPath(removePrefixFromPath(oldPrefix, segments), b.pathSep)
			} else {
				newPath = joinPath(replacePrefixInPath(oldPrefix, newPrefix, segments), b.pathSep)
			}
		}
		muts = append(muts, setVar("PATH", newPath))

		defaultEnv := b.reg.DisplayName(newPrefix)
		modifier := b.promptModifier(newPrefix, defaultEnv, opDeactivate, false)

		promptValue, promptOK = b.state.FramePromptBackup(oldShlvl)
		if !promptOK {
			promptValue, promptOK = b.updatedPrompt(modifier)
		}

		exports = append(exports,
			setVar(VarPrefix, newPrefix),
			setVar(VarShlvl, strconv.Itoa(newShlvl)),
			setVar(VarDefaultEnv, defaultEnv),
			setVar(VarPromptModifier, modifier),
		)
		for _, declared := range environmentEnvVars(newPrefix) {
			exports = append(exports, setVar(declared.Name, declared.Value))
		}

		unsets = append(unsets,
			unsetVar(framePrefixVar(newShlvl)),
			unsetVar(framePathBackupVar(oldShlvl)),
			unsetVar(framePromptBackupVar(oldShlvl)),
		)
		if stacked {
			unsets = append(unsets, unsetVar(frameStackedVar(oldShlvl)))
		}
		activateScripts = ListHooks(newPrefix, PhaseActivate, b.scriptExt)
	}

	// undo this frame's env var injections before anything else re-exports
	for _, declared := range oldEnvVars {
		if saved, ok := b.state.EnvVarSave(newShlvl, declared.Name); ok {
			exports = append(exports, setVar(declared.Name, saved))
			unsets = append(unsets, unsetVar(envVarSaveVar(newShlvl, declared.Name)))
		} else {
			unsets = append(unsets, unsetVar(declared.Name))
		}
	}

	for _, script := range ListHooks(oldPrefix, PhaseDeactivate, b.scriptExt) {
		muts = append(muts, runScript(PhaseDeactivate, script))
	}
	muts = append(muts, unsets...)
	if promptOK && b.cfg.ChangePS1 && b.promptVar != "" {
		muts = append(muts, setPrompt(b.promptVar, promptValue))
	}
	muts = append(muts, exports...)
	for _, script := range activateScripts {
		muts = append(muts, runScript(PhaseActivate, script))
	}
	return muts, nil
}

// Reactivate re-runs the active frame: hook scripts fire again and the
// PATH entries are recomputed, without changing the level counter. Used
// after package operations that may have changed hook scripts or binaries
// inside the active environment.
func (b *Builder) Reactivate() ([]Mutation, error) {
	prefix := b.state.Prefix()
	shlvl := b.state.Shlvl()
	if prefix == "" || shlvl < 1 {
		return nil, nil
	}

	defaultEnv := b.state.Get(VarDefaultEnv)
	if defaultEnv == "" {
		defaultEnv = b.reg.DisplayName(prefix)
	}
	segments := splitPath(b.state.Path(), b.pathSep)
	newPath := joinPath(replacePrefixInPath(prefix, prefix, segments), b.pathSep)
	modifier := b.promptModifier(prefix, defaultEnv, opReactivate, false)

	var muts []Mutation
	for _, script := range ListHooks(prefix, PhaseDeactivate, b.scriptExt) {
		muts = append(muts, runScript(PhaseDeactivate, script))
	}
	if prompt, ok := b.updatedPrompt(modifier); ok && b.cfg.ChangePS1 {
		muts = append(muts, setPrompt(b.promptVar, prompt))
	}
	muts = append(muts,
		setVar("PATH", newPath),
		setVar(VarShlvl, strconv.Itoa(shlvl)),
		setVar(VarPromptModifier, modifier),
	)
	for _, script := range ListHooks(prefix, PhaseActivate, b.scriptExt) {
		muts = append(muts, runScript(PhaseActivate, script))
	}
	return muts, nil
}

// promptVarOrPS1 names the variable whose value is captured in the prompt
// backup. Dialects without a builder-managed prompt still back up PS1 so a
// later posix deactivate can restore something sensible.
func (b *Builder) promptVarOrPS1() string {
	if b.promptVar != "" {
		return b.promptVar
	}
	return "PS1"
}

func joinPath(segments []string, sep string) string {
	return strings.Join(segments, sep)
}
