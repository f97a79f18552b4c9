// Package defaults holds the planner document shipped with the binary.
package defaults

import (
	"context"
	_ "embed"
	"fmt"
	"os"
)

// Path is the name the bundled document is published under.
const Path = "/PlannerHub.json"

//go:embed PlannerHub.json
var bundled []byte

// Source fetches the raw bytes of a default document.
type Source interface {
	Fetch(ctx context.Context) ([]byte, error)
}

// Embedded serves the document compiled into the binary.
type Embedded struct{}

func (Embedded) Fetch(context.Context) ([]byte, error) {
	out := make([]byte, len(bundled))
	copy(out, bundled)
	return out, nil
}

// File serves a document read from disk on every fetch.
type File struct {
	Path string
}

func (f File) Fetch(context.Context) ([]byte, error) {
	data, err := os.ReadFile(f.Path)
	if err != nil {
		return nil, fmt.Errorf("reading default document %s: %w", f.Path, err)
	}
	return data, nil
}

// Bytes is a fixed in-memory source.
type Bytes []byte

func (b Bytes) Fetch(context.Context) ([]byte, error) {
	return b, nil
}

// FromPath returns File{path} when path is set, otherwise Embedded.
func FromPath(path string) Source {
	if path == "" {
		return Embedded{}
	}
	return File{Path: path}
}
