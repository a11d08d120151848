package enact

// Message constants
const (
	MsgRootShort = "A fast activator for conda-style environments"
	MsgRootLong  = `enact switches conda-style environments in your current shell: it
rewrites PATH and the prompt, runs the environment's activation hooks,
and keeps a stack of activation frames so deactivate restores exactly
what activate changed.

The binary itself never touches your shell. It prints a script in your
shell's dialect, and a small wrapper function installed by 'enact hook'
evaluates that script in place.`

	MsgVersionShort    = "Print version information"
	MsgCompletionShort = "Generate shell completion script"
	MsgCommandsShort   = "List available commands"

	MsgFlagVerbose = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
)
