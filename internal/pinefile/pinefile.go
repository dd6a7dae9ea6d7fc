// Package pinefile loads task namespaces from pinefiles on disk. Two
// formats are supported: Lua (functions, shell strings and nested tables)
// and YAML (shell strings and nested mappings). Loaded files produce a
// pine.Namespace ready for the execution engine.
package pinefile

import (
	"fmt"
	"path/filepath"

	"github.com/pinefile/pine"
)

// DefaultNames are the pinefile names probed, in order, when no explicit
// path is given.
var DefaultNames = []string{"pinefile.lua", "pinefile.yml", "pinefile.yaml"}

// Load reads the pinefile at path, dispatching on its extension.
func Load(path string) (pine.Namespace, error) {
	switch filepath.Ext(path) {
	case ".lua":
		return LoadLua(path)
	case ".yml", ".yaml":
		return LoadYAML(path)
	default:
		return nil, fmt.Errorf("unsupported pinefile format %q (want .lua, .yml or .yaml)", path)
	}
}
