// Package testutil has filesystem fixtures shared by the activation tests.
package testutil

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/enact/pkg/config"
)

// MakeEnv creates a minimal environment prefix under root: the conda-meta
// marker and a bin directory.
func MakeEnv(t *testing.T, root, name string) string {
	t.Helper()
	prefix := filepath.Join(root, name)
	require.NoError(t, os.MkdirAll(filepath.Join(prefix, "conda-meta"), 0o755))
	require.NoError(t, os.MkdirAll(filepath.Join(prefix, "bin"), 0o755))
	return prefix
}

// AddHook drops a hook script into one of the prefix's hook directories
// ("activate.d" or "deactivate.d") and returns its path.
func AddHook(t *testing.T, prefix, phaseDir, name string) string {
	t.Helper()
	dir := filepath.Join(prefix, "etc", "conda", phaseDir)
	require.NoError(t, os.MkdirAll(dir, 0o755))
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte("# hook\n"), 0o755))
	return path
}

// WriteStateFile writes a conda-meta/state file declaring environment
// variables to inject on activation.
func WriteStateFile(t *testing.T, prefix string, envVars map[string]string) {
	t.Helper()
	data, err := json.Marshal(map[string]interface{}{"env_vars": envVars})
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(prefix, "conda-meta", "state"), data, 0o644))
}

// Config returns a configuration rooted at a fixture directory, with
// prompt rewriting on and no auto behaviors.
func Config(root string) *config.Config {
	return &config.Config{
		RootPrefix:   root,
		EnvsDirs:     []string{filepath.Join(root, "envs")},
		ChangePS1:    true,
		EnvPrompt:    "({default_env}) ",
		DefaultShell: "posix",
	}
}
