// Package gojsonschema implements a ValidatorAdapter backed by
// github.com/xeipuuv/gojsonschema, grounded on the schema-validation tool
// in blackcoderx-falcon's pkg/core/tools/schema.go.
package gojsonschema

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/xeipuuv/gojsonschema"

	"github.com/schemaprism/prism/internal/conformance"
	"github.com/schemaprism/prism/internal/jsonvalue"
)

// Adapter validates test corpus data against schemas via gojsonschema's
// draft-07-oriented validator.
type Adapter struct {
	Dir string
}

// New returns an Adapter rooted at dir.
func New(dir string) *Adapter {
	return &Adapter{Dir: dir}
}

func (a *Adapter) Name() string           { return "gojsonschema" }
func (a *Adapter) TestDirectory() string  { return a.Dir }
func (a *Adapter) FilePatterns() []string { return []string{"*.json"} }

func (a *Adapter) ShouldIncludeFile(path string) bool {
	base := filepath.Base(path)
	return !strings.HasPrefix(base, ".") && !strings.Contains(base, "snapshot") && !strings.Contains(base, "baseline")
}

func (a *Adapter) Decode(content []byte) (jsonvalue.Value, error) {
	return jsonvalue.ParseRaw(content)
}

func (a *Adapter) Validate(data, schema jsonvalue.Value) (conformance.ValidationResult, error) {
	schemaLoader := gojsonschema.NewGoLoader(schema.ToAny())
	documentLoader := gojsonschema.NewGoLoader(data.ToAny())

	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return nil, fmt.Errorf("gojsonschema validate: %w", err)
	}

	if result.Valid() {
		return conformance.NewValidationResult(true, nil), nil
	}

	errs := make([]string, 0, len(result.Errors()))
	for _, e := range result.Errors() {
		errs = append(errs, e.String())
	}
	return conformance.NewValidationResult(false, errs), nil
}
