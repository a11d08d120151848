package config

// Message constants
const (
	MsgShort = "Inspect and manage configuration"
	MsgLong  = `Config works with enact's layered configuration: built-in defaults,
the user config file, selected keys from ~/.condarc, and ENACT_*
environment variables, in that order.`

	MsgShowShort = "Print the effective configuration as TOML"
	MsgInitShort = "Write a commented default config file"
	MsgPathShort = "Print the user config file path"

	MsgInitDone  = "Wrote %s\n"
	MsgErrExists = "config file already exists at %s"
)
