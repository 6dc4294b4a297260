package definition

import "path/filepath"

// SourceKind enumerates where a definition is read from.
type SourceKind string

const (
	SourceKindFile     SourceKind = "file"
	SourceKindFS       SourceKind = "fs"
	SourceKindEmbedded SourceKind = "embedded"
)

// Source identifies a definition document.
type Source interface {
	Kind() SourceKind
	Location() string
}

type fileSource struct {
	path string
}

func (s fileSource) Location() string { return s.path }
func (s fileSource) Kind() SourceKind { return SourceKindFile }

// SourceFromFile returns a Source pointing to a file path.
func SourceFromFile(path string) Source {
	return fileSource{path: filepath.Clean(path)}
}

type fsSource struct {
	name string
}

func (s fsSource) Location() string { return s.name }
func (s fsSource) Kind() SourceKind { return SourceKindFS }

// SourceFromFS returns a Source naming a document inside the loader's fs.FS.
func SourceFromFS(name string) Source {
	return fsSource{name: name}
}

type embeddedSource struct {
	name string
}

func (s embeddedSource) Location() string { return s.name }
func (s embeddedSource) Kind() SourceKind { return SourceKindEmbedded }

// SourceEmbedded returns a Source naming a built-in definition. An empty name
// selects the business intake form.
func SourceEmbedded(name ...string) Source {
	if len(name) > 0 && name[0] != "" {
		return embeddedSource{name: name[0]}
	}
	return embeddedSource{name: DefaultFormName}
}
