// Package envs resolves environment names and paths to prefix directories.
//
// Resolution is read-only filesystem probing: an identifier containing a
// path separator is treated as a prefix path and validated in place; a bare
// name is searched across the configured envs_dirs in order, first match
// wins. The special names "base" and "root" resolve to the install root.
package envs

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"

	"github.com/arthur-debert/enact/pkg/config"
	"github.com/arthur-debert/enact/pkg/errors"
	"github.com/arthur-debert/enact/pkg/logging"
)

// markerDir distinguishes a real environment prefix from an arbitrary
// directory. Environments created by conda, mamba, and micromamba all
// carry it.
const markerDir = "conda-meta"

// RootEnvName is the reserved name for the install root.
const RootEnvName = "base"

// Environment is one resolved environment.
type Environment struct {
	// Name is the display name: "base" for the root prefix, the directory
	// basename for prefixes living under an envs dir, the full prefix
	// otherwise.
	Name string
	// Prefix is the absolute path of the environment directory.
	Prefix string
}

// Registry resolves environment identifiers against the configuration.
type Registry struct {
	cfg *config.Config
}

// NewRegistry returns a Registry backed by cfg.
func NewRegistry(cfg *config.Config) *Registry {
	return &Registry{cfg: cfg}
}

// Resolve maps a name or path to an Environment. Identifiers containing a
// path separator are treated as paths; everything else as a name.
func (r *Registry) Resolve(nameOrPath string) (*Environment, error) {
	logger := logging.GetLogger("envs")
	if nameOrPath == "" {
		nameOrPath = RootEnvName
	}

	if strings.ContainsAny(nameOrPath, `/\`) {
		prefix := config.ExpandPath(nameOrPath)
		if !IsEnvPrefix(prefix) {
			return nil, errors.Newf(errors.ErrEnvNotFound, "not an environment: %s", prefix).
				WithDetail("location", prefix)
		}
		logger.Debug().Str("prefix", prefix).Msg("Resolved environment by path")
		return &Environment{Name: r.DisplayName(prefix), Prefix: prefix}, nil
	}

	if nameOrPath == RootEnvName || nameOrPath == "root" {
		if r.cfg.RootPrefix == "" {
			return nil, errors.New(errors.ErrEnvNotFound,
				"no install root configured; set root_prefix in enact.toml or ENACT_ROOT_PREFIX")
		}
		return &Environment{Name: RootEnvName, Prefix: r.cfg.RootPrefix}, nil
	}

	for _, envsDir := range r.cfg.EnvsDirs {
		prefix := filepath.Join(envsDir, nameOrPath)
		if IsEnvPrefix(prefix) {
			logger.Debug().Str("prefix", prefix).Str("name", nameOrPath).Msg("Resolved environment by name")
			return &Environment{Name: nameOrPath, Prefix: prefix}, nil
		}
	}

	err := errors.Newf(errors.ErrEnvNotFound, "could not find environment: %s", nameOrPath).
		WithDetail("name", nameOrPath)
	if suggestion := r.closestName(nameOrPath); suggestion != "" {
		err = errors.Newf(errors.ErrEnvNotFound,
			"could not find environment: %s (did you mean %q?)", nameOrPath, suggestion).
			WithDetail("name", nameOrPath).
			WithDetail("suggestion", suggestion)
	}
	return nil, err
}

// List enumerates the discoverable environments: the root prefix (when
// configured) followed by every valid prefix under each envs dir, in
// directory order, names sorted within a dir.
func (r *Registry) List() ([]Environment, error) {
	var result []Environment
	if r.cfg.RootPrefix != "" && IsEnvPrefix(r.cfg.RootPrefix) {
		result = append(result, Environment{Name: RootEnvName, Prefix: r.cfg.RootPrefix})
	}
	seen := map[string]bool{}
	for _, envsDir := range r.cfg.EnvsDirs {
		entries, err := os.ReadDir(envsDir)
		if err != nil {
			continue
		}
		var names []string
		for _, entry := range entries {
			if entry.IsDir() {
				names = append(names, entry.Name())
			}
		}
		sort.Strings(names)
		for _, name := range names {
			prefix := filepath.Join(envsDir, name)
			if seen[name] || !IsEnvPrefix(prefix) {
				continue
			}
			seen[name] = true
			result = append(result, Environment{Name: name, Prefix: prefix})
		}
	}
	return result, nil
}

// DisplayName computes the name shown in prompts and listings for a prefix.
func (r *Registry) DisplayName(prefix string) string {
	if PathsEqual(prefix, r.cfg.RootPrefix) {
		return RootEnvName
	}
	if filepath.Base(filepath.Dir(prefix)) == "envs" {
		return filepath.Base(prefix)
	}
	return prefix
}

// IsEnvPrefix reports whether prefix looks like an environment directory.
func IsEnvPrefix(prefix string) bool {
	if prefix == "" {
		return false
	}
	info, err := os.Stat(filepath.Join(prefix, markerDir))
	return err == nil && info.IsDir()
}

// PathsEqual compares two paths on cleaned form.
func PathsEqual(a, b string) bool {
	if a == "" || b == "" {
		return a == b
	}
	return filepath.Clean(a) == filepath.Clean(b)
}

// closestName returns the known environment name nearest to the given one,
// or "" when nothing is close enough to be a plausible typo.
func (r *Registry) closestName(name string) string {
	environments, err := r.List()
	if err != nil || len(environments) == 0 {
		return ""
	}
	best := ""
	bestDist := len(name)/2 + 1 // anything further is not a typo
	for _, environment := range environments {
		dist := levenshtein.ComputeDistance(name, environment.Name)
		if dist < bestDist {
			best = environment.Name
			bestDist = dist
		}
	}
	return best
}
