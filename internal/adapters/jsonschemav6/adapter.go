// Package jsonschemav6 implements a ValidatorAdapter backed by
// github.com/santhosh-tekuri/jsonschema/v6, a draft-aware JSON Schema
// compiler already present in the teacher's dependency graph.
package jsonschemav6

import (
	"bytes"
	"fmt"
	"path/filepath"
	"strings"
	"sync/atomic"

	"github.com/santhosh-tekuri/jsonschema/v6"

	"github.com/schemaprism/prism/internal/conformance"
	"github.com/schemaprism/prism/internal/jsonvalue"
)

// resourceCounter gives each compiled schema a unique synthetic URL, since
// the compiler is keyed by resource URL rather than by content.
var resourceCounter atomic.Uint64

// Adapter validates test corpus data against schemas compiled by
// jsonschema/v6.
type Adapter struct {
	// Dir is the root of the test corpus this adapter scans.
	Dir string
	// Draft selects the schema dialect new compilations assume absent an
	// explicit $schema keyword. Defaults to the 2020-12 draft.
	Draft *jsonschema.Draft
}

// New returns an Adapter rooted at dir, defaulting to draft 2020-12.
func New(dir string) *Adapter {
	return &Adapter{Dir: dir, Draft: jsonschema.Draft2020}
}

func (a *Adapter) Name() string           { return "jsonschema-v6" }
func (a *Adapter) TestDirectory() string  { return a.Dir }
func (a *Adapter) FilePatterns() []string { return []string{"*.json"} }

// ShouldIncludeFile excludes the harness's own output artifacts
// (snapshots, baselines) that may live alongside a corpus directory.
func (a *Adapter) ShouldIncludeFile(path string) bool {
	base := filepath.Base(path)
	return !strings.HasPrefix(base, ".") && !strings.Contains(base, "snapshot") && !strings.Contains(base, "baseline")
}

func (a *Adapter) Decode(content []byte) (jsonvalue.Value, error) {
	return jsonvalue.ParseRaw(content)
}

// Validate compiles schema fresh for every case — compilation cost is
// tolerable at corpus scale and avoids cache-invalidation complexity the
// spec does not ask for.
func (a *Adapter) Validate(data, schema jsonvalue.Value) (conformance.ValidationResult, error) {
	compiler := jsonschema.NewCompiler()
	if a.Draft != nil {
		compiler.DefaultDraft(a.Draft)
	}

	url := fmt.Sprintf("mem://prism/schema-%d.json", resourceCounter.Add(1))
	resource, err := jsonschema.UnmarshalJSON(bytes.NewReader([]byte(schema.Pretty())))
	if err != nil {
		return nil, fmt.Errorf("decoding schema: %w", err)
	}
	if err := compiler.AddResource(url, resource); err != nil {
		return nil, fmt.Errorf("adding schema resource: %w", err)
	}

	compiled, err := compiler.Compile(url)
	if err != nil {
		return nil, fmt.Errorf("compiling schema: %w", err)
	}

	instance, err := jsonschema.UnmarshalJSON(bytes.NewReader([]byte(data.Pretty())))
	if err != nil {
		return nil, fmt.Errorf("decoding instance: %w", err)
	}

	if err := compiled.Validate(instance); err != nil {
		if verr, ok := err.(*jsonschema.ValidationError); ok {
			return conformance.NewValidationResult(false, flattenValidationError(verr)), nil
		}
		return conformance.NewValidationResult(false, []string{err.Error()}), nil
	}
	return conformance.NewValidationResult(true, nil), nil
}

func flattenValidationError(verr *jsonschema.ValidationError) []string {
	var messages []string
	var walk func(e *jsonschema.ValidationError)
	walk = func(e *jsonschema.ValidationError) {
		messages = append(messages, e.Error())
		for _, cause := range e.Causes {
			walk(cause)
		}
	}
	walk(verr)
	return messages
}
