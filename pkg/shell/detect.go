package shell

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/shirou/gopsutil/v4/process"

	"github.com/arthur-debert/enact/pkg/logging"
)

// shellNames maps known shell executable names to dialect identifiers.
var shellNames = map[string]string{
	"sh":         "posix",
	"ash":        "posix",
	"bash":       "posix",
	"dash":       "posix",
	"zsh":        "posix",
	"ksh":        "posix",
	"csh":        "csh",
	"tcsh":       "csh",
	"fish":       "fish",
	"xonsh":      "xonsh",
	"elvish":     "elvish",
	"pwsh":       "powershell",
	"powershell": "powershell",
	"cmd":        "cmd.exe",
}

// Detect guesses the dialect of the invoking shell. It walks up the process
// tree looking for a known shell executable and falls back to $SHELL, then
// to the configured default. Detection is best-effort; the hook and
// activate commands accept an explicit shell name to override it.
func Detect(fallback string) *Dialect {
	log := logging.GetLogger("shell")

	if name, ok := detectFromAncestors(); ok {
		log.Debug().Str("shell", name).Msg("detected shell from process tree")
		if d, err := Lookup(name); err == nil {
			return d
		}
	}
	if name, ok := detectFromEnv(); ok {
		log.Debug().Str("shell", name).Msg("detected shell from $SHELL")
		if d, err := Lookup(name); err == nil {
			return d
		}
	}

	if d, err := Lookup(fallback); err == nil {
		return d
	}
	if runtime.GOOS == "windows" {
		return cmdExeDialect
	}
	return posixDialect
}

// detectFromAncestors walks parent processes until a known shell executable
// or the process tree root is reached. Crossing more than a handful of
// ancestors means we were launched from something that is not a shell.
func detectFromAncestors() (string, bool) {
	proc, err := process.NewProcess(int32(os.Getpid()))
	if err != nil {
		return "", false
	}
	for depth := 0; depth < 8; depth++ {
		proc, err = proc.Parent()
		if err != nil || proc == nil {
			return "", false
		}
		name, err := proc.Name()
		if err != nil {
			return "", false
		}
		if dialect, ok := matchShellName(name); ok {
			return dialect, true
		}
	}
	return "", false
}

func detectFromEnv() (string, bool) {
	if sh := os.Getenv("SHELL"); sh != "" {
		return matchShellName(filepath.Base(sh))
	}
	return "", false
}

// matchShellName normalizes an executable name (login-shell dash, .exe
// suffix, version suffixes like zsh-5.9) and maps it to a dialect.
func matchShellName(name string) (string, bool) {
	name = strings.ToLower(strings.TrimPrefix(name, "-"))
	name = strings.TrimSuffix(name, ".exe")
	if dialect, ok := shellNames[name]; ok {
		return dialect, true
	}
	if i := strings.IndexAny(name, "-."); i > 0 {
		if dialect, ok := shellNames[name[:i]]; ok {
			return dialect, true
		}
	}
	return "", false
}
