package activate

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sort"

	"github.com/arthur-debert/enact/pkg/logging"
)

// Environments can declare variables to inject on activation, either per
// package (etc/conda/env_vars.d/*.json) or for the whole environment
// (conda-meta/state, key "env_vars"). The environment-level file wins over
// package files.
const (
	prefixStateFile   = "conda-meta/state"
	packageEnvVarsDir = "etc/conda/env_vars.d"

	// envVarUnsetMarker in a declaration means "leave this variable alone".
	envVarUnsetMarker = "***unset***"
)

// envVar is one declared injection, order-preserving.
type envVar struct {
	Name  string
	Value string
}

// environmentEnvVars collects the variables an environment declares for
// injection, in deterministic order: package files sorted by name first,
// then the environment-level declarations (which override).
func environmentEnvVars(prefix string) []envVar {
	logger := logging.GetLogger("activate")
	merged := map[string]string{}
	var order []string

	record := func(name, value string) {
		if _, seen := merged[name]; !seen {
			order = append(order, name)
		}
		merged[name] = value
	}

	pkgDir := filepath.Join(prefix, filepath.FromSlash(packageEnvVarsDir))
	if entries, err := os.ReadDir(pkgDir); err == nil {
		var names []string
		for _, entry := range entries {
			if !entry.IsDir() {
				names = append(names, entry.Name())
			}
		}
		sort.Strings(names)
		for _, name := range names {
			path := filepath.Join(pkgDir, name)
			declared := map[string]string{}
			if err := readJSONFile(path, &declared); err != nil {
				logger.Warn().Err(err).Str("path", path).Msg("Skipping unreadable env_vars.d file")
				continue
			}
			for _, k := range sortedKeys(declared) {
				record(k, declared[k])
			}
		}
	}

	statePath := filepath.Join(prefix, filepath.FromSlash(prefixStateFile))
	if _, err := os.Stat(statePath); err == nil {
		var state struct {
			EnvVars map[string]string `json:"env_vars"`
		}
		if err := readJSONFile(statePath, &state); err != nil {
			logger.Warn().Err(err).Str("path", statePath).Msg("Skipping unreadable state file")
		} else {
			for _, k := range sortedKeys(state.EnvVars) {
				if _, fromPackage := merged[k]; fromPackage {
					logger.Warn().Str("variable", k).
						Msg("Duplicate env var: environment declaration overrides package declaration")
				}
				record(k, state.EnvVars[k])
			}
		}
	}

	result := make([]envVar, 0, len(order))
	for _, name := range order {
		if merged[name] == envVarUnsetMarker {
			continue
		}
		result = append(result, envVar{Name: name, Value: merged[name]})
	}
	return result
}

func readJSONFile(path string, v interface{}) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return json.Unmarshal(data, v)
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
