// Package specvalidate checks that a test group's schema is itself a
// well-formed JSON Schema document.
//
// The check compiles the schema with the santhosh-tekuri/jsonschema/v6
// compiler, which validates it against its dialect's meta-schema, so a
// malformed fixture is reported before a suite run rather than surfacing
// as a confusing validator failure.
package specvalidate
