package activate

// Message constants
const (
	MsgShort = "Activate an environment in the current shell"
	MsgLong  = `Activate resolves an environment by name or by prefix path and prints
the script that switches the current shell into it: PATH entries, the
CONDA_* protocol variables, the prompt, declared environment variables,
and the environment's activate.d hook scripts.

Without arguments the base environment is activated. Activating the
environment that is already active re-runs its hooks instead of pushing
a new frame.`

	MsgExample = `  # Activate by name
  enact activate myenv

  # Activate by prefix path
  enact activate ./envs/myenv

  # Keep the previous environment's PATH entries
  enact activate --stack myenv`

	MsgFlagShell   = "Output dialect (default: detect the calling shell)"
	MsgFlagStack   = "Keep the previous environment's PATH entries"
	MsgFlagNoStack = "Never stack, even when auto_stack is configured"
)
