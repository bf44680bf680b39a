package indexing

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const schemaURL = "https://docs-search.krakend.io/schema/search-index.json"

//go:embed schema/search-index.schema.json
var indexSchemaJSON []byte

var (
	indexSchemaOnce sync.Once
	indexSchema     *jsonschema.Schema
	indexSchemaErr  error
)

// compiledSchema compiles the embedded index schema once per process
func compiledSchema() (*jsonschema.Schema, error) {
	indexSchemaOnce.Do(func() {
		doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(indexSchemaJSON))
		if err != nil {
			indexSchemaErr = fmt.Errorf("failed to parse index schema: %w", err)
			return
		}

		compiler := jsonschema.NewCompiler()
		if err := compiler.AddResource(schemaURL, doc); err != nil {
			indexSchemaErr = fmt.Errorf("failed to add index schema: %w", err)
			return
		}

		indexSchema, indexSchemaErr = compiler.Compile(schemaURL)
	})
	return indexSchema, indexSchemaErr
}

// Decode validates raw index JSON against the index schema and decodes it.
// Records missing a title or content are rejected with a *MalformedIndexError.
func Decode(data []byte) ([]IndexRecord, error) {
	schema, err := compiledSchema()
	if err != nil {
		return nil, err
	}

	instance, err := jsonschema.UnmarshalJSON(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("invalid JSON: %w", err)
	}

	if err := schema.Validate(instance); err != nil {
		if validationErr, ok := err.(*jsonschema.ValidationError); ok {
			return nil, &MalformedIndexError{Violations: collectViolations(validationErr)}
		}
		return nil, fmt.Errorf("schema validation failed: %w", err)
	}

	// Initialize as empty slice (not nil) so an empty index is distinguishable from a failed one
	records := []IndexRecord{}
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("failed to decode index: %w", err)
	}
	return records, nil
}

// collectViolations flattens a jsonschema error tree into its leaf causes
func collectViolations(validationErr *jsonschema.ValidationError) []Violation {
	if len(validationErr.Causes) == 0 {
		return []Violation{{
			Path:    instancePath(validationErr.InstanceLocation),
			Message: validationErr.ErrorKind.LocalizedString(message.NewPrinter(language.English)),
		}}
	}

	var violations []Violation
	for _, cause := range validationErr.Causes {
		violations = append(violations, collectViolations(cause)...)
	}
	return violations
}

// instancePath renders a JSON pointer location as "$[0].title"
func instancePath(location []string) string {
	var b strings.Builder
	b.WriteString("$")
	for _, part := range location {
		if part != "" && strings.Trim(part, "0123456789") == "" {
			b.WriteString("[" + part + "]")
			continue
		}
		b.WriteString("." + part)
	}
	return b.String()
}
