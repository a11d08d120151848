// Package commands implements the operations behind the CLI verbs. Each
// function takes explicit Options and returns the rendered output, which
// keeps the cobra layer thin and the operations testable end to end.
package commands

import (
	"os"

	"github.com/mattn/go-isatty"

	"github.com/arthur-debert/enact/pkg/activate"
	"github.com/arthur-debert/enact/pkg/config"
	"github.com/arthur-debert/enact/pkg/envs"
	"github.com/arthur-debert/enact/pkg/errors"
	"github.com/arthur-debert/enact/pkg/shell"
)

// Options carries the shared inputs of every operation.
type Options struct {
	// Config is the loaded configuration. Required.
	Config *config.Config
	// Environ is the caller's environment in os.Environ form.
	Environ []string
	// Shell selects the output dialect explicitly; empty means detect.
	Shell string
	// Stack keeps the previous environment's PATH entries on activate.
	Stack bool
	// NoStack suppresses implicit stacking from the auto_stack setting.
	NoStack bool
	// SkipSourcedCheck disables the eval-context guard. Tests and machine
	// consumers set this.
	SkipSourcedCheck bool
}

func (o *Options) dialect() (*shell.Dialect, error) {
	if o.Shell != "" {
		return shell.Lookup(o.Shell)
	}
	return shell.Detect(o.Config.DefaultShell), nil
}

func (o *Options) builder(d *shell.Dialect) *activate.Builder {
	state := activate.NewState(o.Environ)
	reg := envs.NewRegistry(o.Config)
	return activate.NewBuilder(o.Config, reg, state, d.Traits())
}

// checkSourced rejects interactive invocations that bypass the shell
// wrapper: their output would print instead of being evaluated, leaving
// the shell unchanged and the user confused.
func (o *Options) checkSourced(d *shell.Dialect) error {
	if o.SkipSourcedCheck || d.Name == "json" || d.Name == "env" {
		return nil
	}
	if activate.NewState(o.Environ).Has("_ENACT_SHELL_WRAPPER") {
		return nil
	}
	if !isatty.IsTerminal(os.Stdout.Fd()) {
		return nil
	}
	return errors.New(errors.ErrNotSourced,
		"output must be evaluated by the shell, not printed; "+
			"install the wrapper with: eval \"$(enact hook)\"")
}

// render finalizes one mutation list for the dialect.
func render(d *shell.Dialect, muts []activate.Mutation) (string, error) {
	script, err := shell.Render(d, muts)
	if err != nil {
		return "", err
	}
	return shell.Finalize(d, script)
}

// Activate renders the script that activates nameOrPath in the calling
// shell. Activation stacks when requested explicitly or when the current
// level is within the configured auto_stack depth.
func Activate(opts *Options, nameOrPath string) (string, error) {
	d, err := opts.dialect()
	if err != nil {
		return "", err
	}
	if err := opts.checkSourced(d); err != nil {
		return "", err
	}
	b := opts.builder(d)

	stack := opts.Stack
	if !stack && !opts.NoStack && opts.Config.AutoStack > 0 {
		shlvl := activate.NewState(opts.Environ).Shlvl()
		stack = shlvl > 0 && shlvl <= opts.Config.AutoStack
	}

	muts, err := b.Activate(nameOrPath, stack)
	if err != nil {
		return "", err
	}
	return render(d, muts)
}

// Deactivate renders the script that pops the top activation frame. With
// nothing active the output is empty and the exit status is success.
func Deactivate(opts *Options) (string, error) {
	d, err := opts.dialect()
	if err != nil {
		return "", err
	}
	if err := opts.checkSourced(d); err != nil {
		return "", err
	}
	muts, err := opts.builder(d).Deactivate()
	if err != nil {
		return "", err
	}
	return render(d, muts)
}

// Reactivate renders the script that re-runs the active environment's
// hooks and refreshes its PATH entries without changing the level.
func Reactivate(opts *Options) (string, error) {
	d, err := opts.dialect()
	if err != nil {
		return "", err
	}
	if err := opts.checkSourced(d); err != nil {
		return "", err
	}
	muts, err := opts.builder(d).Reactivate()
	if err != nil {
		return "", err
	}
	return render(d, muts)
}

// Hook renders the shell integration script for the dialect.
func Hook(opts *Options) (string, error) {
	d, err := opts.dialect()
	if err != nil {
		return "", err
	}
	return shell.Hook(d, opts.Config.RootPrefix, opts.Config.AutoActivateBase)
}

// ListEnvs enumerates the known environments, the active one flagged.
func ListEnvs(opts *Options) ([]EnvInfo, error) {
	reg := envs.NewRegistry(opts.Config)
	all, err := reg.List()
	if err != nil {
		return nil, err
	}
	activePrefix := activate.NewState(opts.Environ).Prefix()
	infos := make([]EnvInfo, 0, len(all))
	for _, e := range all {
		infos = append(infos, EnvInfo{
			Name:   e.Name,
			Prefix: e.Prefix,
			Active: activePrefix != "" && envs.PathsEqual(e.Prefix, activePrefix),
		})
	}
	return infos, nil
}

// EnvInfo is one row of the environment listing.
type EnvInfo struct {
	Name   string `json:"name" yaml:"name"`
	Prefix string `json:"prefix" yaml:"prefix"`
	Active bool   `json:"active" yaml:"active"`
}

// CheckEnv resolves nameOrPath and reports what activation would see,
// without rendering any mutations.
func CheckEnv(opts *Options, nameOrPath string) (*EnvReport, error) {
	d, err := opts.dialect()
	if err != nil {
		return nil, err
	}
	reg := envs.NewRegistry(opts.Config)
	environment, err := reg.Resolve(nameOrPath)
	if err != nil {
		return nil, err
	}
	traits := d.Traits()
	return &EnvReport{
		Name:              reg.DisplayName(environment.Prefix),
		Prefix:            environment.Prefix,
		Shell:             d.Name,
		ActivateScripts:   activate.ListHooks(environment.Prefix, activate.PhaseActivate, traits.ScriptExt),
		DeactivateScripts: activate.ListHooks(environment.Prefix, activate.PhaseDeactivate, traits.ScriptExt),
	}, nil
}

// EnvReport describes one environment as activation would see it.
type EnvReport struct {
	Name              string   `json:"name" yaml:"name"`
	Prefix            string   `json:"prefix" yaml:"prefix"`
	Shell             string   `json:"shell" yaml:"shell"`
	ActivateScripts   []string `json:"activate_scripts" yaml:"activate_scripts"`
	DeactivateScripts []string `json:"deactivate_scripts" yaml:"deactivate_scripts"`
}
