package scene

import _ "embed"

// defaultLayout is the built-in lift lobby.
//
//go:embed lobby.yaml
var defaultLayout []byte
