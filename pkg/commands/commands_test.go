// TEST TYPE: Integration Tests
// Drives the operations end to end over a fixture environment layout,
// asserting on the rendered scripts.
package commands_test

import (
	"encoding/json"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/enact/pkg/commands"
	"github.com/arthur-debert/enact/pkg/config"
	"github.com/arthur-debert/enact/pkg/errors"
	"github.com/arthur-debert/enact/pkg/testutil"
)

type world struct {
	cfg   *config.Config
	root  string
	myenv string
}

func newWorld(t *testing.T) *world {
	t.Helper()
	tmp := t.TempDir()
	root := testutil.MakeEnv(t, tmp, "miniconda3")
	myenv := testutil.MakeEnv(t, root, "envs/myenv")
	return &world{cfg: testutil.Config(root), root: root, myenv: myenv}
}

func (w *world) opts(environ map[string]string) *commands.Options {
	return &commands.Options{
		Config:           w.cfg,
		Environ:          envList(environ),
		Shell:            "posix",
		SkipSourcedCheck: true,
	}
}

func envList(environ map[string]string) []string {
	keys := make([]string, 0, len(environ))
	for k := range environ {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	list := make([]string, 0, len(keys))
	for _, k := range keys {
		list = append(list, k+"="+environ[k])
	}
	return list
}

func TestActivateRendersPosixScript(t *testing.T) {
	w := newWorld(t)
	script, err := commands.Activate(w.opts(map[string]string{
		"PATH": "/usr/bin:/bin",
		"PS1":  "$ ",
	}), "myenv")
	require.NoError(t, err)

	assert.Contains(t, script, "export PATH='"+w.myenv+"/bin:/usr/bin:/bin'")
	assert.Contains(t, script, "export CONDA_SHLVL='1'")
	assert.Contains(t, script, "export CONDA_PREFIX='"+w.myenv+"'")
	assert.Contains(t, script, "PS1='(myenv) $ '")
}

func TestActivateDefaultsToBase(t *testing.T) {
	w := newWorld(t)
	script, err := commands.Activate(w.opts(map[string]string{
		"PATH": "/usr/bin:/bin",
	}), "")
	require.NoError(t, err)
	assert.Contains(t, script, "export CONDA_PREFIX='"+w.root+"'")
	assert.Contains(t, script, "export CONDA_DEFAULT_ENV='base'")
}

func TestActivateUnknownEnv(t *testing.T) {
	w := newWorld(t)
	_, err := commands.Activate(w.opts(map[string]string{"PATH": "/usr/bin"}), "nosuch")
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrEnvNotFound))
}

func TestActivateUnknownShell(t *testing.T) {
	w := newWorld(t)
	opts := w.opts(map[string]string{"PATH": "/usr/bin"})
	opts.Shell = "4dos"
	_, err := commands.Activate(opts, "myenv")
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrUnsupportedShell))
}

func TestActivateJSONOutput(t *testing.T) {
	w := newWorld(t)
	opts := w.opts(map[string]string{"PATH": "/usr/bin:/bin", "PS1": "$ "})
	opts.Shell = "json"
	out, err := commands.Activate(opts, "myenv")
	require.NoError(t, err)

	var doc map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(out), &doc))
	assert.Contains(t, doc, "path")
	assert.Contains(t, doc, "vars")
	assert.Contains(t, doc, "scripts")
}

func TestAutoStack(t *testing.T) {
	w := newWorld(t)
	w.cfg.AutoStack = 1
	other := testutil.MakeEnv(t, w.root, "envs/other")

	// first activation, then a second one that should stack implicitly
	script, err := commands.Activate(w.opts(map[string]string{
		"PATH":         w.myenv + "/bin:/usr/bin:/bin",
		"PS1":          "(myenv) $ ",
		"CONDA_SHLVL":  "1",
		"CONDA_PREFIX": w.myenv,
	}), "other")
	require.NoError(t, err)

	assert.Contains(t, script, "export PATH='"+other+"/bin:"+w.myenv+"/bin:/usr/bin:/bin'")
	assert.Contains(t, script, "export CONDA_STACKED_2='true'")
}

func TestNoStackOverridesAutoStack(t *testing.T) {
	w := newWorld(t)
	w.cfg.AutoStack = 1
	other := testutil.MakeEnv(t, w.root, "envs/other")

	opts := w.opts(map[string]string{
		"PATH":         w.myenv + "/bin:/usr/bin:/bin",
		"CONDA_SHLVL":  "1",
		"CONDA_PREFIX": w.myenv,
	})
	opts.NoStack = true
	script, err := commands.Activate(opts, "other")
	require.NoError(t, err)

	assert.Contains(t, script, "export PATH='"+other+"/bin:/usr/bin:/bin'")
	assert.NotContains(t, script, "CONDA_STACKED_2")
}

func TestDeactivateWithNothingActive(t *testing.T) {
	w := newWorld(t)
	script, err := commands.Deactivate(w.opts(map[string]string{"PATH": "/usr/bin"}))
	require.NoError(t, err)
	assert.Equal(t, "", script)
}

func TestDeactivateRestoresBackups(t *testing.T) {
	w := newWorld(t)
	script, err := commands.Deactivate(w.opts(map[string]string{
		"PATH":                w.myenv + "/bin:/usr/bin:/bin",
		"PS1":                 "(myenv) $ ",
		"CONDA_SHLVL":         "1",
		"CONDA_PREFIX":        w.myenv,
		"CONDA_DEFAULT_ENV":   "myenv",
		"CONDA_PATH_BACKUP_1": "/usr/bin:/bin",
		"CONDA_PS1_BACKUP_1":  "$ ",
	}))
	require.NoError(t, err)

	assert.Contains(t, script, "export PATH='/usr/bin:/bin'")
	assert.Contains(t, script, "PS1='$ '")
	assert.Contains(t, script, "unset CONDA_PREFIX")
	assert.Contains(t, script, "export CONDA_SHLVL='0'")
}

func TestReactivateIdleIsEmpty(t *testing.T) {
	w := newWorld(t)
	script, err := commands.Reactivate(w.opts(map[string]string{"PATH": "/usr/bin"}))
	require.NoError(t, err)
	assert.Equal(t, "", script)
}

func TestHookPosix(t *testing.T) {
	w := newWorld(t)
	script, err := commands.Hook(w.opts(nil))
	require.NoError(t, err)

	assert.Contains(t, script, "export ENACT_EXE=")
	assert.Contains(t, script, "export _ENACT_ROOT='"+w.root+"'")
	assert.Contains(t, script, "enact() {")
}

func TestHookAutoActivateBase(t *testing.T) {
	w := newWorld(t)
	w.cfg.AutoActivateBase = true
	script, err := commands.Hook(w.opts(nil))
	require.NoError(t, err)
	assert.Contains(t, script, "enact activate base")
}

func TestListEnvsMarksActive(t *testing.T) {
	w := newWorld(t)
	infos, err := commands.ListEnvs(w.opts(map[string]string{
		"CONDA_PREFIX": w.myenv,
	}))
	require.NoError(t, err)
	require.Len(t, infos, 2)

	assert.Equal(t, "base", infos[0].Name)
	assert.False(t, infos[0].Active)
	assert.Equal(t, "myenv", infos[1].Name)
	assert.True(t, infos[1].Active)
}

func TestCheckEnv(t *testing.T) {
	w := newWorld(t)
	hook := testutil.AddHook(t, w.myenv, "activate.d", "a.sh")
	testutil.AddHook(t, w.myenv, "activate.d", "skip.fish")

	report, err := commands.CheckEnv(w.opts(nil), "myenv")
	require.NoError(t, err)

	assert.Equal(t, "myenv", report.Name)
	assert.Equal(t, w.myenv, report.Prefix)
	assert.Equal(t, "posix", report.Shell)
	assert.Equal(t, []string{hook}, report.ActivateScripts)
	assert.Empty(t, report.DeactivateScripts)
}
