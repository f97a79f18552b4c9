package importer

import (
	_ "embed"
	"fmt"
	"strconv"
	"strings"
	"sync"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"
)

//go:embed document.schema.json
var documentSchemaJSON string

const documentSchemaURL = "plannerhub://document.schema.json"

var (
	schemaOnce     sync.Once
	documentSchema *jsonschema.Schema
	schemaErr      error
)

func compiledSchema() (*jsonschema.Schema, error) {
	schemaOnce.Do(func() {
		compiler := jsonschema.NewCompiler()
		compiler.Draft = jsonschema.Draft2020
		if err := compiler.AddResource(documentSchemaURL, strings.NewReader(documentSchemaJSON)); err != nil {
			schemaErr = fmt.Errorf("adding document schema: %w", err)
			return
		}
		documentSchema, schemaErr = compiler.Compile(documentSchemaURL)
		if schemaErr != nil {
			schemaErr = fmt.Errorf("compiling document schema: %w", schemaErr)
		}
	})
	return documentSchema, schemaErr
}

// ValidateDocumentShape checks a generically decoded document against the
// bundled schema. It returns one error per failing leaf, empty when valid.
func ValidateDocumentShape(v any) []error {
	schema, err := compiledSchema()
	if err != nil {
		return []error{err}
	}
	err = schema.Validate(v)
	if err == nil {
		return nil
	}
	ve, ok := err.(*jsonschema.ValidationError)
	if !ok {
		return []error{err}
	}
	var errs []error
	collectSchemaValidationErrors(ve, &errs)
	if len(errs) == 0 {
		errs = append(errs, &ImportError{Message: ve.Message})
	}
	return errs
}

// collectSchemaValidationErrors gathers the leaf causes of a validation error.
func collectSchemaValidationErrors(err *jsonschema.ValidationError, out *[]error) {
	if err == nil {
		return
	}
	if len(err.Causes) == 0 {
		*out = append(*out, &ImportError{
			Path:    jsonPointerToPath(err.InstanceLocation),
			Message: err.Message,
		})
		return
	}
	for _, cause := range err.Causes {
		collectSchemaValidationErrors(cause, out)
	}
}

// jsonPointerToPath converts "/menuConfig/menuItems/0/id" to
// "menuConfig.menuItems[0].id".
func jsonPointerToPath(ptr string) string {
	ptr = strings.TrimPrefix(ptr, "#")
	ptr = strings.TrimPrefix(ptr, "/")
	if ptr == "" {
		return ""
	}

	var b strings.Builder
	for _, part := range strings.Split(ptr, "/") {
		part = strings.ReplaceAll(part, "~1", "/")
		part = strings.ReplaceAll(part, "~0", "~")
		if part == "" {
			continue
		}
		if idx, err := strconv.Atoi(part); err == nil {
			fmt.Fprintf(&b, "[%d]", idx)
			continue
		}
		if b.Len() > 0 {
			b.WriteByte('.')
		}
		b.WriteString(part)
	}
	return b.String()
}
