package jsonvalue

import "fmt"

// Diff produces a human-readable description of the divergence between
// expected and actual, grounded on the three-way classification the
// teacher's conformance reporter uses for pass/fail/error rendering:
// identical, type mismatch, value mismatch (same primitive type), and
// data-structure mismatch (same composite type).
func Diff(expected, actual Value) string {
	if DeepEqual(expected, actual) {
		return "Values are identical"
	}

	if expected.kind != actual.kind {
		return fmt.Sprintf(
			"Type mismatch:\n  Expected: %s (%s)\n  Actual:   %s (%s)",
			expected.kind, expected.Repr(),
			actual.kind, actual.Repr(),
		)
	}

	switch expected.kind {
	case Array, Object:
		return fmt.Sprintf(
			"Data structure mismatch:\n  Expected:\n%s\n  Actual:\n%s",
			indentBlock(expected.Pretty()),
			indentBlock(actual.Pretty()),
		)
	default:
		return fmt.Sprintf(
			"Value mismatch:\n  Expected: %s (%s)\n  Actual:   %s (%s)",
			expected.kind, expected.Repr(),
			actual.kind, actual.Repr(),
		)
	}
}

func indentBlock(s string) string {
	out := "    "
	for _, r := range s {
		out += string(r)
		if r == '\n' {
			out += "    "
		}
	}
	return out
}
