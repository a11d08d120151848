package shell

// Message constants
const (
	MsgShort = "Print the detected shell dialect"
	MsgLong  = `Shell prints the dialect enact would emit for, detected from the
process tree and $SHELL. Pass the name to --shell on other commands to
override detection.`

	MsgDetectShort = "Print the detected shell dialect"
	MsgListShort   = "List supported shell dialects"
)
