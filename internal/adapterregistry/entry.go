// Package adapterregistry resolves an adapter identifier (the string a
// worker process receives instead of a serialized adapter configuration,
// per §4.5) into a concrete conformance.ValidatorAdapter, and documents
// the built-in adapters via an embedded catalog. Grounded on the teacher's
// internal/registry package (RegistryEntry/EmbeddedRegistry), generalized
// from "installable gRPC cost plugin" to "built-in validator adapter".
package adapterregistry

import "fmt"

// Entry describes one built-in adapter for catalog/listing purposes.
type Entry struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Library     string `json:"library"`
}

// ValidateEntry checks that name and library are present.
func ValidateEntry(e Entry) error {
	if e.Name == "" {
		return fmt.Errorf("registry entry missing required field: name")
	}
	if e.Library == "" {
		return fmt.Errorf("registry entry %q missing required field: library", e.Name)
	}
	return nil
}
