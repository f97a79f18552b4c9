// Package importer turns a backup file into a planner document, rejecting
// files that are not planner documents before anything is written.
package importer

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/alexanderramin/plannerhub/internal/domain"
)

// ImportError describes why a file was rejected.
type ImportError struct {
	Path    string
	Message string
	Err     error
}

func (e *ImportError) Error() string {
	msg := e.Message
	if msg == "" && e.Err != nil {
		msg = e.Err.Error()
	}
	if e.Path != "" {
		return fmt.Sprintf("invalid import file: %s: %s", e.Path, msg)
	}
	return "invalid import file: " + msg
}

func (e *ImportError) Unwrap() error { return e.Err }

// Result is an accepted import: the decoded document and the body exactly as read.
type Result struct {
	Document *domain.Document
	Body     []byte
}

// Parse validates and decodes data. Any failure is an *ImportError.
func Parse(data []byte) (*Result, error) {
	data = bytes.TrimPrefix(data, []byte("\xef\xbb\xbf"))

	var generic any
	if err := json.Unmarshal(data, &generic); err != nil {
		return nil, &ImportError{Message: "not valid JSON", Err: err}
	}
	if _, ok := generic.(map[string]any); !ok {
		return nil, &ImportError{Message: "top level must be an object"}
	}

	if errs := ValidateDocumentShape(generic); len(errs) > 0 {
		var ie *ImportError
		if errors.As(errs[0], &ie) {
			// Further failures ride along behind the first.
			ie.Err = errors.Join(errs[1:]...)
			return nil, ie
		}
		return nil, &ImportError{Message: errs[0].Error(), Err: errors.Join(errs...)}
	}

	doc, err := domain.Decode(data)
	if err != nil {
		return nil, &ImportError{Message: "document does not decode", Err: err}
	}
	return &Result{Document: doc, Body: data}, nil
}

// Read parses everything r yields.
func Read(r io.Reader) (*Result, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading import file: %w", err)
	}
	return Parse(data)
}

// LoadFile parses the file at path.
func LoadFile(path string) (*Result, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Read(f)
}
