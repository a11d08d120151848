package checkenv

// Message constants
const (
	MsgShort = "Report what activation would see for an environment"
	MsgLong  = `Checkenv resolves an environment and reports its prefix, display
name, and the hook scripts activation would run, without rendering any
mutations. Useful for debugging hook ordering and resolution.`

	MsgFlagShell  = "Dialect whose script extension filters the hooks"
	MsgFlagFormat = "Output format: yaml or json"
)
