package config

import (
	_ "embed"
)

//go:embed defaults/game.yaml
var defaultGameYAML []byte
