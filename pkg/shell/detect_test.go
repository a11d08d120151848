// TEST TYPE: Unit Tests
package shell

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMatchShellName(t *testing.T) {
	tests := []struct {
		name string
		exe  string
		want string
		ok   bool
	}{
		{"plain bash", "bash", "posix", true},
		{"login shell dash prefix", "-zsh", "posix", true},
		{"versioned", "zsh-5.9", "posix", true},
		{"windows suffix", "pwsh.exe", "powershell", true},
		{"cmd", "cmd.exe", "cmd.exe", true},
		{"fish", "fish", "fish", true},
		{"not a shell", "python3.12", "", false},
		{"empty", "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := matchShellName(tt.exe)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}
