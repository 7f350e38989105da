// Package specvalidate checks that a corpus's schema documents are
// themselves well-formed JSON Schema, surfacing a bad fixture before a
// suite run burns time validating cases against it.
//
// Previously a near-empty placeholder in the teacher (pricing-spec
// validation with no implementation); filled in here for the meta-schema
// check SPEC_FULL.md describes, reusing jsonschemav6's own compiler
// rather than introducing a second JSON Schema dependency for one check.
package specvalidate

import (
	"bytes"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v6"

	"github.com/schemaprism/prism/internal/jsonvalue"
)

// Result is the outcome of validating one schema document against the
// meta-schema for its declared (or assumed) dialect.
type Result struct {
	Valid  bool
	Errors []string
}

// ValidateSchema checks that schema compiles cleanly under draft — i.e.
// that it is itself a well-formed JSON Schema document. Compilation
// failure (not a validation-time failure of some instance) is the signal:
// jsonschema/v6 rejects malformed keywords and cyclic/unresolvable
// references at compile time.
func ValidateSchema(schema jsonvalue.Value, draft *jsonschema.Draft) Result {
	compiler := jsonschema.NewCompiler()
	if draft != nil {
		compiler.DefaultDraft(draft)
	}

	resource, err := jsonschema.UnmarshalJSON(bytes.NewReader([]byte(schema.Pretty())))
	if err != nil {
		return Result{Valid: false, Errors: []string{fmt.Sprintf("decoding schema: %v", err)}}
	}

	const url = "mem://prism/specvalidate/candidate.json"
	if err := compiler.AddResource(url, resource); err != nil {
		return Result{Valid: false, Errors: []string{fmt.Sprintf("adding schema resource: %v", err)}}
	}

	if _, err := compiler.Compile(url); err != nil {
		return Result{Valid: false, Errors: []string{err.Error()}}
	}

	return Result{Valid: true}
}

// ValidateFile is a convenience wrapper for schemas decoded from raw corpus
// file bytes.
func ValidateFile(content []byte, draft *jsonschema.Draft) (Result, error) {
	value, err := jsonvalue.ParseRaw(content)
	if err != nil {
		return Result{}, fmt.Errorf("decoding schema file: %w", err)
	}
	return ValidateSchema(value, draft), nil
}
