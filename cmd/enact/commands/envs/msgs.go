package envs

// Message constants
const (
	MsgShort = "List known environments"
	MsgLong  = `Envs lists the environments found in the configured environment
directories, with the active one marked. Only directories containing a
conda-meta marker count as environments.`

	MsgNoEnvs = "No environments found."

	MsgFlagFormat = "Output format: text, json, or yaml"
)
