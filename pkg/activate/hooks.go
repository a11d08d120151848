package activate

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// HookPhase selects which hook directory to enumerate.
type HookPhase int

const (
	// PhaseActivate selects etc/conda/activate.d.
	PhaseActivate HookPhase = iota
	// PhaseDeactivate selects etc/conda/deactivate.d.
	PhaseDeactivate
)

// ListHooks enumerates the hook scripts for one phase of one environment,
// filtered to the dialect's script extension. Activation hooks come back in
// ascending lexicographic order, deactivation hooks descending, so teardown
// mirrors setup. The listing is recomputed on every call: package installs
// may add or remove hook files between activations.
func ListHooks(prefix string, phase HookPhase, scriptExt string) []string {
	var dir string
	switch phase {
	case PhaseActivate:
		dir = filepath.Join(prefix, "etc", "conda", "activate.d")
	case PhaseDeactivate:
		dir = filepath.Join(prefix, "etc", "conda", "deactivate.d")
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil
	}

	var scripts []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if scriptExt != "" && !strings.HasSuffix(entry.Name(), scriptExt) {
			continue
		}
		scripts = append(scripts, filepath.Join(dir, entry.Name()))
	}

	if phase == PhaseDeactivate {
		sort.Sort(sort.Reverse(sort.StringSlice(scripts)))
	} else {
		sort.Strings(scripts)
	}
	return scripts
}
