// TEST TYPE: Unit Tests
package activate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitPath(t *testing.T) {
	assert.Nil(t, splitPath("", ":"))
	assert.Equal(t, []string{"/usr/bin", "/bin"}, splitPath("/usr/bin:/bin", ":"))
	assert.Equal(t, []string{"/usr/bin"}, splitPath("/usr/bin", ":"))
}

func TestPathSegmentsEqual(t *testing.T) {
	tests := []struct {
		name string
		a    string
		b    string
		want bool
	}{
		{"identical", "/envs/myenv/bin", "/envs/myenv/bin", true},
		{"trailing slash", "/envs/myenv/bin/", "/envs/myenv/bin", true},
		{"dot segment", "/envs/myenv/./bin", "/envs/myenv/bin", true},
		{"name is a superstring", "/envs/myenv2/bin", "/envs/myenv/bin", false},
		{"name is a substring", "/envs/myen/bin", "/envs/myenv/bin", false},
		{"both empty", "", "", true},
		{"one empty", "", "/bin", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, pathSegmentsEqual(tt.a, tt.b))
		})
	}
}

func TestRemovePrefixFromPath(t *testing.T) {
	segments := []string{"/envs/myenv/bin", "/usr/bin", "/bin"}
	got := removePrefixFromPath("/envs/myenv", segments)
	assert.Equal(t, []string{"/usr/bin", "/bin"}, got)

	// exact segment match only: a sibling env sharing the name prefix stays
	segments = []string{"/envs/myenv2/bin", "/usr/bin"}
	got = removePrefixFromPath("/envs/myenv", segments)
	assert.Equal(t, segments, got)

	// absent prefix leaves the list untouched
	segments = []string{"/usr/bin", "/bin"}
	got = removePrefixFromPath("/envs/myenv", segments)
	assert.Equal(t, segments, got)
}

func TestReplacePrefixInPath(t *testing.T) {
	// replacement happens in place, not at the front
	segments := []string{"/opt/tools", "/envs/old/bin", "/usr/bin", "/bin"}
	got := replacePrefixInPath("/envs/old", "/envs/new", segments)
	assert.Equal(t, []string{"/opt/tools", "/envs/new/bin", "/usr/bin", "/bin"}, got)

	// old prefix missing: new entries go to the front
	segments = []string{"/usr/bin", "/bin"}
	got = replacePrefixInPath("/envs/old", "/envs/new", segments)
	assert.Equal(t, []string{"/envs/new/bin", "/usr/bin", "/bin"}, got)
}

func TestAddPrefixToPath(t *testing.T) {
	got := addPrefixToPath("/envs/myenv", []string{"/usr/bin", "/bin"})
	assert.Equal(t, []string{"/envs/myenv/bin", "/usr/bin", "/bin"}, got)
}
