// TEST TYPE: Integration Tests
// Exercises the layered loading against a fully isolated home directory.
package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/adrg/xdg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/enact/pkg/config"
)

// isolate points HOME and the XDG base dirs at a temp directory so tests
// never see the developer's real configs.
func isolate(t *testing.T) string {
	t.Helper()
	tmp := t.TempDir()
	t.Setenv("HOME", tmp)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(tmp, ".config"))
	t.Setenv("_ENACT_ROOT", "")
	xdg.Reload()
	t.Cleanup(xdg.Reload)
	return tmp
}

func TestLoadDefaults(t *testing.T) {
	tmp := isolate(t)

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.True(t, cfg.ChangePS1)
	assert.Equal(t, "({default_env}) ", cfg.EnvPrompt)
	assert.Equal(t, 0, cfg.AutoStack)
	assert.False(t, cfg.AutoActivateBase)
	assert.Equal(t, "posix", cfg.DefaultShell)
	assert.Contains(t, cfg.EnvsDirs, filepath.Join(tmp, ".conda", "envs"))
}

func TestLoadUserConfigFile(t *testing.T) {
	tmp := isolate(t)
	cfgDir := filepath.Join(tmp, ".config", "enact")
	require.NoError(t, os.MkdirAll(cfgDir, 0o755))
	body := "changeps1 = false\nroot_prefix = \"" + filepath.Join(tmp, "conda") + "\"\n"
	require.NoError(t, os.WriteFile(filepath.Join(cfgDir, "enact.toml"), []byte(body), 0o644))

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.False(t, cfg.ChangePS1)
	assert.Equal(t, filepath.Join(tmp, "conda"), cfg.RootPrefix)
	assert.Contains(t, cfg.EnvsDirs, filepath.Join(tmp, "conda", "envs"))
}

func TestLoadCondarcKeys(t *testing.T) {
	tmp := isolate(t)
	body := "env_prompt: \"[{default_env}] \"\nauto_activate: true\nchannels:\n  - defaults\n"
	require.NoError(t, os.WriteFile(filepath.Join(tmp, ".condarc"), []byte(body), 0o644))

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "[{default_env}] ", cfg.EnvPrompt)
	assert.True(t, cfg.AutoActivateBase)
}

func TestEnvOverridesCondarc(t *testing.T) {
	tmp := isolate(t)
	require.NoError(t, os.WriteFile(filepath.Join(tmp, ".condarc"),
		[]byte("env_prompt: \"[{default_env}] \"\n"), 0o644))
	t.Setenv("ENACT_ENV_PROMPT", "<{default_env}> ")
	t.Setenv("ENACT_AUTO_STACK", "2")
	t.Setenv("ENACT_ENVS_DIRS", "/opt/a:/opt/b")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "<{default_env}> ", cfg.EnvPrompt)
	assert.Equal(t, 2, cfg.AutoStack)
	assert.Equal(t, []string{"/opt/a", "/opt/b"}, cfg.EnvsDirs)
}

func TestExpandPath(t *testing.T) {
	tmp := isolate(t)
	t.Setenv("ENACT_TEST_DIR", tmp)

	assert.Equal(t, tmp, config.ExpandPath("~"))
	assert.Equal(t, filepath.Join(tmp, "x"), config.ExpandPath("~/x"))
	assert.Equal(t, filepath.Join(tmp, "y"), config.ExpandPath("$ENACT_TEST_DIR/y"))
	assert.Equal(t, "", config.ExpandPath(""))
}

func TestMarshalTOMLRoundTrip(t *testing.T) {
	isolate(t)

	cfg, err := config.Load()
	require.NoError(t, err)

	out, err := cfg.MarshalTOML()
	require.NoError(t, err)
	assert.Contains(t, string(out), "changeps1 = true")
	assert.Contains(t, string(out), "default_shell = 'posix'")
}
