package content

import (
	"embed"
	"io/fs"
)

//go:embed builtin/*.toml
var builtinFS embed.FS

// Builtin returns a fresh copy of the catalog compiled into the binary.
func Builtin() (*Catalog, error) {
	sub, err := fs.Sub(builtinFS, "builtin")
	if err != nil {
		return nil, err
	}
	return Load(sub)
}
