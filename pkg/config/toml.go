package config

import (
	gotoml "github.com/pelletier/go-toml/v2"

	"github.com/arthur-debert/enact/pkg/errors"
)

// tomlView mirrors Config with toml tags for round-tripping through
// `enact config show` and `enact config init`.
type tomlView struct {
	RootPrefix       string   `toml:"root_prefix"`
	EnvsDirs         []string `toml:"envs_dirs"`
	ChangePS1        bool     `toml:"changeps1"`
	EnvPrompt        string   `toml:"env_prompt"`
	AutoStack        int      `toml:"auto_stack"`
	AutoActivateBase bool     `toml:"auto_activate_base"`
	DefaultShell     string   `toml:"default_shell"`
}

// MarshalTOML renders the effective configuration as TOML.
func (c *Config) MarshalTOML() ([]byte, error) {
	out, err := gotoml.Marshal(tomlView{
		RootPrefix:       c.RootPrefix,
		EnvsDirs:         c.EnvsDirs,
		ChangePS1:        c.ChangePS1,
		EnvPrompt:        c.EnvPrompt,
		AutoStack:        c.AutoStack,
		AutoActivateBase: c.AutoActivateBase,
		DefaultShell:     c.DefaultShell,
	})
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrInternal, "failed to marshal configuration")
	}
	return out, nil
}

// DefaultTOML returns the annotated starter config written by
// `enact config init`.
func DefaultTOML() []byte {
	return defaultConfig
}
