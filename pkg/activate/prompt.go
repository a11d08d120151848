package activate

import (
	"strings"
)

type promptOp int

const (
	opActivate promptOp = iota
	opDeactivate
	opReactivate
)

// promptModifier renders the env_prompt template for the pending operation.
// The stacked_env placeholder lists the whole visible prompt stack,
// innermost first, which requires replaying the frame chain.
func (b *Builder) promptModifier(targetPrefix, defaultEnv string, op promptOp, stack bool) string {
	if !b.cfg.ChangePS1 {
		return ""
	}

	shlvl := b.state.Shlvl()
	var envStack, promptStack []string
	for i := 1; i <= shlvl; i++ {
		var envName string
		if i == shlvl {
			envName = b.reg.DisplayName(b.state.Prefix())
		} else {
			envName = b.reg.DisplayName(b.state.FramePrefix(i))
		}
		envStack = append(envStack, envName)
		if !b.state.FrameStacked(i) && len(promptStack) > 0 {
			promptStack = promptStack[:len(promptStack)-1]
		}
		promptStack = append(promptStack, envName)
	}

	switch op {
	case opDeactivate:
		if len(promptStack) > 0 {
			promptStack = promptStack[:len(promptStack)-1]
		}
		if len(envStack) > 0 {
			envStack = envStack[:len(envStack)-1]
		}
		if !b.state.FrameStacked(shlvl) && len(envStack) > 0 {
			promptStack = append(promptStack, envStack[len(envStack)-1])
		}
	case opReactivate:
		// prompt stack is already correct
	case opActivate:
		if !stack && len(promptStack) > 0 {
			promptStack = promptStack[:len(promptStack)-1]
		}
		promptStack = append(promptStack, defaultEnv)
	}

	reversed := make([]string, 0, len(promptStack))
	for i := len(promptStack) - 1; i >= 0; i-- {
		reversed = append(reversed, promptStack[i])
	}

	replacer := strings.NewReplacer(
		"{default_env}", defaultEnv,
		"{stacked_env}", strings.Join(reversed, ","),
		"{prefix}", targetPrefix,
		"{name}", pathBase(targetPrefix),
	)
	return replacer.Replace(b.cfg.EnvPrompt)
}

// updatedPrompt strips the previous modifier from the current prompt value
// and prepends the new one. Powerline owns the prompt when present, so it
// is left untouched.
func (b *Builder) updatedPrompt(modifier string) (string, bool) {
	if b.promptVar == "" {
		return "", false
	}
	current := b.state.Get(b.promptVar)
	if strings.Contains(current, "POWERLINE_COMMAND") {
		return "", false
	}
	if old := b.state.Get(VarPromptModifier); old != "" {
		current = strings.ReplaceAll(current, old, "")
	}
	return modifier + current, true
}

func pathBase(path string) string {
	path = strings.TrimRight(path, "/\\")
	if i := strings.LastIndexAny(path, "/\\"); i >= 0 {
		return path[i+1:]
	}
	return path
}
