package reactivate

// Message constants
const (
	MsgShort = "Re-run the active environment's hooks"
	MsgLong  = `Reactivate refreshes the active environment without changing the
activation stack: deactivate.d hooks run, PATH entries are recomputed,
and activate.d hooks run again. Useful after installing packages that
add or change hook scripts inside the active environment.

With no active environment this is a no-op and exits successfully.`

	MsgFlagShell = "Output dialect (default: detect the calling shell)"
)
