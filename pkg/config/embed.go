package config

import _ "embed"

// defaultConfig holds the built-in defaults, lowest layer of the merge.
//
//go:embed enact.toml
var defaultConfig []byte
