package hook

// Message constants
const (
	MsgShort = "Output the shell integration script"
	MsgLong  = `Hook prints the wrapper that makes 'enact activate' work in the
current shell: a function (or alias) that runs the binary and evaluates
its output in place. Evaluate it once from your shell's startup file.`

	MsgExample = `  # bash/zsh (~/.bashrc, ~/.zshrc)
  eval "$(enact hook)"

  # fish (~/.config/fish/config.fish)
  enact hook --shell fish | source

  # PowerShell (profile)
  enact hook --shell powershell | Out-String | Invoke-Expression

  # xonsh (~/.xonshrc)
  execx($(enact hook --shell xonsh))`

	MsgFlagShell = "Output dialect (default: detect the calling shell)"
)
