package conformance

import (
	"fmt"
	"strings"

	"github.com/schemaprism/prism/internal/jsonvalue"
)

// AssertionStrategy compares a case's data/expected verdict against the
// validator's observed verdict. Evaluate decides pass/fail; DescribeFailure
// renders the message recorded on a failing TestResult.
type AssertionStrategy interface {
	StrategyName() string
	Evaluate(data, expected jsonvalue.Value, actual bool) bool
	DescribeFailure(data, expected jsonvalue.Value, actual bool) string
}

// AssertionRegistry resolves an assertion name to a strategy, falling back
// to StrictEquality when the name is empty or unregistered — tests in the
// corpus rely on this default.
type AssertionRegistry struct {
	strategies map[string]AssertionStrategy
}

// NewAssertionRegistry returns a registry pre-populated with the built-in
// StrictEquality and AnyOf strategies.
func NewAssertionRegistry() *AssertionRegistry {
	r := &AssertionRegistry{strategies: make(map[string]AssertionStrategy)}
	r.Register(StrictEquality{})
	r.Register(AnyOf{})
	return r
}

// Register adds or replaces a strategy under its own StrategyName.
func (r *AssertionRegistry) Register(s AssertionStrategy) {
	r.strategies[s.StrategyName()] = s
}

// Resolve looks up name, falling back to StrictEquality.
func (r *AssertionRegistry) Resolve(name string) AssertionStrategy {
	if name != "" {
		if s, ok := r.strategies[name]; ok {
			return s
		}
	}
	return r.strategies[strictEqualityName]
}

// AssertionOutcome is the result of Execute: Passed, and Message present
// iff Passed is false.
type AssertionOutcome struct {
	Passed  bool
	Message string
}

// Execute resolves name and runs the strategy against (data, expected, actual).
func (r *AssertionRegistry) Execute(name string, data, expected jsonvalue.Value, actual bool) AssertionOutcome {
	strategy := r.Resolve(name)
	passed := strategy.Evaluate(data, expected, actual)
	if passed {
		return AssertionOutcome{Passed: true}
	}
	return AssertionOutcome{Passed: false, Message: strategy.DescribeFailure(data, expected, actual)}
}

const strictEqualityName = "strict_equality"

// StrictEquality passes when expected and actual are the same boolean
// verdict. Its failure message canonicalizes both sides to "valid"/
// "invalid" via the truthy/falsy mapping (section 4.2), since expected may
// be a non-boolean raw value.
type StrictEquality struct{}

func (StrictEquality) StrategyName() string { return strictEqualityName }

func (StrictEquality) Evaluate(_ jsonvalue.Value, expected jsonvalue.Value, actual bool) bool {
	return expected.Truthy() == actual
}

func (StrictEquality) DescribeFailure(_ jsonvalue.Value, expected jsonvalue.Value, actual bool) string {
	return fmt.Sprintf(
		"Expected data to be %s, but validator returned %s",
		expected.TruthyLabel(),
		jsonvalue.NewBool(actual).TruthyLabel(),
	)
}

const anyOfName = "any_of"

// AnyOf passes when expected is an array and actual matches the truthiness
// of some element; when expected is not an array it behaves exactly like
// StrictEquality.
type AnyOf struct{}

func (AnyOf) StrategyName() string { return anyOfName }

func (AnyOf) Evaluate(_ jsonvalue.Value, expected jsonvalue.Value, actual bool) bool {
	if expected.Kind() != jsonvalue.Array {
		return expected.Truthy() == actual
	}
	for _, elem := range expected.AsArray() {
		if elem.Truthy() == actual {
			return true
		}
	}
	return false
}

func (AnyOf) DescribeFailure(_ jsonvalue.Value, expected jsonvalue.Value, actual bool) string {
	if expected.Kind() != jsonvalue.Array {
		return StrictEquality{}.DescribeFailure(jsonvalue.Value{}, expected, actual)
	}
	labels := make([]string, 0, len(expected.AsArray()))
	for _, elem := range expected.AsArray() {
		labels = append(labels, elem.TruthyLabel())
	}
	return fmt.Sprintf(
		"Expected data to be one of [%s], but validator returned %s",
		strings.Join(labels, ", "),
		jsonvalue.NewBool(actual).TruthyLabel(),
	)
}
