package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/arthur-debert/enact/pkg/errors"
	"github.com/arthur-debert/enact/pkg/logging"
)

// Config is the fully merged runtime configuration.
type Config struct {
	RootPrefix       string   `koanf:"root_prefix"`
	EnvsDirs         []string `koanf:"envs_dirs"`
	ChangePS1        bool     `koanf:"changeps1"`
	EnvPrompt        string   `koanf:"env_prompt"`
	AutoStack        int      `koanf:"auto_stack"`
	AutoActivateBase bool     `koanf:"auto_activate_base"`
	DefaultShell     string   `koanf:"default_shell"`
}

// condarcKeys are the only ~/.condarc keys enact honors. Everything else in
// a condarc (channels, solver settings, ...) belongs to the package manager.
var condarcKeys = []string{
	"root_prefix",
	"envs_dirs",
	"changeps1",
	"env_prompt",
	"auto_stack",
	"auto_activate_base",
}

// rawBytesProvider adapts an in-memory byte slice to koanf's Provider
// interface, used for the embedded defaults.
type rawBytesProvider struct {
	bytes []byte
}

func (r *rawBytesProvider) ReadBytes() ([]byte, error) {
	return r.bytes, nil
}

func (r *rawBytesProvider) Read() (map[string]interface{}, error) {
	return nil, errors.New(errors.ErrInternal, "rawBytesProvider does not support Read()")
}

// Load builds the merged configuration: embedded defaults, then the user
// config file, then ~/.condarc compatibility keys, then ENACT_* environment
// variables.
func Load() (*Config, error) {
	logger := logging.GetLogger("config")
	k := koanf.New(".")

	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to load built-in defaults")
	}

	if path, err := userConfigPath(); err == nil && path != "" {
		if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigParse, "failed to parse %s", path)
		}
		logger.Debug().Str("path", path).Msg("Loaded user config")
	}

	if rc := condarcPath(); rc != "" {
		merged, err := loadCondarc(rc)
		if err != nil {
			return nil, err
		}
		if len(merged) > 0 {
			if err := k.Load(confmap.Provider(merged, "."), nil); err != nil {
				return nil, errors.Wrapf(err, errors.ErrConfigLoad, "failed to merge %s", rc)
			}
			logger.Debug().Str("path", rc).Msg("Merged condarc keys")
		}
	}

	// ENACT_ENVS_DIRS is pathsep-delimited, everything else is scalar.
	cb := func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, "ENACT_"))
	}
	if err := k.Load(env.Provider("ENACT_", ".", cb), nil); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to read ENACT_* overrides")
	}

	var cfg Config
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToSliceHookFunc(string(os.PathListSeparator)),
			),
		},
	}
	if err := k.UnmarshalWithConf("", &cfg, unmarshalConf); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to unmarshal configuration")
	}

	if err := postProcess(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// loadCondarc reads a condarc YAML file and keeps only the keys enact honors.
func loadCondarc(path string) (map[string]interface{}, error) {
	rc := koanf.New(".")
	if err := rc.Load(file.Provider(path), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, errors.ErrConfigParse, "failed to parse %s", path)
	}
	merged := map[string]interface{}{}
	for _, key := range condarcKeys {
		if rc.Exists(key) {
			merged[key] = rc.Get(key)
		}
	}
	// conda spells this one differently in condarc
	if rc.Exists("auto_activate") {
		merged["auto_activate_base"] = rc.Get("auto_activate")
	}
	return merged, nil
}

// postProcess expands paths and fills in the computed defaults.
func postProcess(cfg *Config) error {
	cfg.RootPrefix = ExpandPath(cfg.RootPrefix)
	if cfg.RootPrefix == "" {
		cfg.RootPrefix = detectRootPrefix()
	}

	if len(cfg.EnvsDirs) == 0 {
		if cfg.RootPrefix != "" {
			cfg.EnvsDirs = append(cfg.EnvsDirs, filepath.Join(cfg.RootPrefix, "envs"))
		}
		cfg.EnvsDirs = append(cfg.EnvsDirs, ExpandPath(filepath.Join("~", ".conda", "envs")))
	} else {
		for i, dir := range cfg.EnvsDirs {
			cfg.EnvsDirs[i] = ExpandPath(dir)
		}
	}

	if cfg.EnvPrompt == "" {
		cfg.EnvPrompt = "({default_env}) "
	}
	return nil
}

// userConfigPath returns the user-level config file path, or "" when absent.
func userConfigPath() (string, error) {
	path, err := xdg.SearchConfigFile(filepath.Join("enact", "enact.toml"))
	if err != nil {
		return "", err
	}
	return path, nil
}

// UserConfigPath is the location `enact config init` writes to. Unlike
// userConfigPath it does not require the file to exist.
func UserConfigPath() (string, error) {
	return xdg.ConfigFile(filepath.Join("enact", "enact.toml"))
}

// condarcPath returns ~/.condarc if present, else "".
func condarcPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	path := filepath.Join(home, ".condarc")
	if _, err := os.Stat(path); err != nil {
		return ""
	}
	return path
}

// detectRootPrefix probes the conventional install roots. A missing root is
// not an error: name resolution can still work through envs_dirs.
func detectRootPrefix() string {
	if root := os.Getenv("_ENACT_ROOT"); root != "" {
		return ExpandPath(root)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	candidates := []string{
		filepath.Join(home, "miniconda3"),
		filepath.Join(home, "anaconda3"),
		filepath.Join(home, "miniforge3"),
		filepath.Join(home, "mambaforge"),
		filepath.Join(home, "micromamba"),
		"/opt/conda",
	}
	for _, c := range candidates {
		if info, err := os.Stat(filepath.Join(c, "conda-meta")); err == nil && info.IsDir() {
			return c
		}
	}
	return ""
}

// ExpandPath expands ~, environment variables, and relative segments.
func ExpandPath(path string) string {
	if path == "" {
		return ""
	}
	path = os.ExpandEnv(path)
	if path == "~" || strings.HasPrefix(path, "~"+string(os.PathSeparator)) {
		if home, err := os.UserHomeDir(); err == nil {
			path = filepath.Join(home, strings.TrimPrefix(path[1:], string(os.PathSeparator)))
		}
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return filepath.Clean(path)
	}
	return abs
}
