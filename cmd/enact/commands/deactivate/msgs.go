package deactivate

// Message constants
const (
	MsgShort = "Deactivate the current environment"
	MsgLong  = `Deactivate pops the top activation frame: the environment's
deactivate.d hooks run, its PATH entries and variables are removed, and
the state the matching activate saved comes back. With a stack of
activations the next frame down becomes active again.

With no active environment this is a no-op and exits successfully.`

	MsgFlagShell = "Output dialect (default: detect the calling shell)"
)
