package adapterregistry

import (
	"fmt"

	"github.com/schemaprism/prism/internal/adapters/gojsonschema"
	"github.com/schemaprism/prism/internal/adapters/jsonschemav6"
	"github.com/schemaprism/prism/internal/conformance"
)

// New constructs the ValidatorAdapter registered under name, rooted at
// dir. This is the reconstruction step §4.5 describes for workers that
// receive "an adapter-identifier the worker can reconstruct" rather than
// a serialized configuration blob.
func New(name, dir string) (conformance.ValidatorAdapter, error) {
	if _, err := GetEntry(name); err != nil {
		return nil, err
	}

	switch name {
	case "jsonschema-v6":
		return jsonschemav6.New(dir), nil
	case "gojsonschema":
		return gojsonschema.New(dir), nil
	default:
		return nil, fmt.Errorf("adapter %q has a catalog entry but no constructor wired", name)
	}
}
