package definition

import (
	"embed"
	"io/fs"
)

// DefaultFormName is the embedded business intake definition.
const DefaultFormName = "business-intake.yaml"

//go:embed forms/*.yaml
var embeddedForms embed.FS

// EmbeddedFS returns the bundled definitions.
func EmbeddedFS() fs.FS {
	sub, err := fs.Sub(embeddedForms, "forms")
	if err != nil {
		// The embed directive guarantees the subpath exists.
		panic(err)
	}
	return sub
}
