// TEST TYPE: Unit Tests
package activate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStateShlvl(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want int
	}{
		{"unset", "", 0},
		{"zero", "0", 0},
		{"positive", "2", 2},
		{"whitespace", " 3 ", 3},
		{"garbage", "two", 0},
		{"negative", "-1", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := map[string]string{}
			if tt.raw != "" {
				env[VarShlvl] = tt.raw
			}
			assert.Equal(t, tt.want, NewStateFromMap(env).Shlvl())
		})
	}
}

func TestStateFromEnviron(t *testing.T) {
	state := NewState([]string{
		"PATH=/usr/bin:/bin",
		"CONDA_PREFIX=/envs/myenv",
		"WEIRD=a=b=c",
		"NOVALUE",
	})
	assert.Equal(t, "/usr/bin:/bin", state.Path())
	assert.Equal(t, "/envs/myenv", state.Prefix())
	assert.Equal(t, "a=b=c", state.Get("WEIRD"))
	assert.False(t, state.Has("NOVALUE"))
}

func TestStateFrameAccessors(t *testing.T) {
	state := NewStateFromMap(map[string]string{
		"CONDA_PREFIX_1":      "/envs/outer",
		"CONDA_STACKED_2":     "true",
		"CONDA_PATH_BACKUP_2": "/usr/bin:/bin",
	})

	assert.Equal(t, "/envs/outer", state.FramePrefix(1))
	assert.True(t, state.FrameStacked(2))
	assert.False(t, state.FrameStacked(1))

	path, ok := state.FramePathBackup(2)
	assert.True(t, ok)
	assert.Equal(t, "/usr/bin:/bin", path)

	_, ok = state.FramePathBackup(1)
	assert.False(t, ok)
}
