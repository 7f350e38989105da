package conformance

import (
	"fmt"
	"math"
	"math/rand"
	"strings"

	"github.com/schemaprism/prism/internal/jsonvalue"
)

// permissiveSchema is the trivially-permissive schema used for every fuzz
// invocation: literal JSON `true`, which every JSON Schema draft treats as
// matching any instance.
func permissiveSchema() jsonvalue.Value { return jsonvalue.NewBool(true) }

// fixedEdgeCases returns the 24 fixed edge-case values in the exact order
// §4.8 specifies.
func fixedEdgeCases() []jsonvalue.Value {
	return []jsonvalue.Value{
		jsonvalue.NewNull(),
		jsonvalue.NewBool(true),
		jsonvalue.NewBool(false),
		jsonvalue.NewInt(0),
		jsonvalue.NewInt(-1),
		jsonvalue.NewInt(1),
		jsonvalue.NewInt(math.MaxInt64),
		jsonvalue.NewInt(math.MinInt64),
		jsonvalue.NewFloat(0.0),
		jsonvalue.NewFloat(math.Copysign(0, -1)),
		jsonvalue.NewString(""),
		jsonvalue.NewString(" "),
		jsonvalue.NewString("\n"),
		jsonvalue.NewString("\t"),
		jsonvalue.NewString("a"),
		jsonvalue.NewString(strings.Repeat("a", 1000)),
		jsonvalue.NewString(strings.Repeat("a", 10000)),
		jsonvalue.NewArray(nil),
		jsonvalue.NewArray([]jsonvalue.Value{jsonvalue.NewNull()}),
		jsonvalue.NewArray([]jsonvalue.Value{jsonvalue.NewString("")}),
		jsonvalue.NewArray([]jsonvalue.Value{jsonvalue.NewInt(0)}),
		jsonvalue.NewArray([]jsonvalue.Value{jsonvalue.NewArray(nil)}),
		jsonvalue.NewObject([]string{"key"}, map[string]jsonvalue.Value{
			"key": jsonvalue.NewString("value"),
		}),
		jsonvalue.NewObject([]string{"nested"}, map[string]jsonvalue.Value{
			"nested": jsonvalue.NewObject([]string{"deep"}, map[string]jsonvalue.Value{
				"deep": jsonvalue.NewObject([]string{"value"}, map[string]jsonvalue.Value{
					"value": jsonvalue.NewBool(true),
				}),
			}),
		}),
	}
}

// FuzzEngine drives validators against a fixed edge-case corpus plus a
// configurable number of randomly generated cases.
type FuzzEngine struct {
	Adapter ValidatorAdapter
	Rand    *rand.Rand
}

// NewFuzzEngine returns a FuzzEngine seeded from a caller-supplied source;
// pass a deterministic *rand.Rand in tests for reproducible output.
func NewFuzzEngine(adapter ValidatorAdapter, src rand.Source) *FuzzEngine {
	return &FuzzEngine{Adapter: adapter, Rand: rand.New(src)}
}

// Fuzz runs the 24 fixed edge cases followed by iterations random cases and
// returns a suite named "<adapterName> (fuzzed)".
func (f *FuzzEngine) Fuzz(iterations int) *TestSuite {
	suite := &TestSuite{Name: fmt.Sprintf("%s (fuzzed)", f.Adapter.Name())}

	for i, data := range fixedEdgeCases() {
		suite.Results = append(suite.Results, f.runEdgeCase(i, data))
	}
	for i := 0; i < iterations; i++ {
		suite.Results = append(suite.Results, f.runRandomCase(i))
	}
	return suite
}

func (f *FuzzEngine) runEdgeCase(i int, data jsonvalue.Value) TestResult {
	result := TestResult{
		ID:    fmt.Sprintf("edge-case-%d", i),
		Group: "fuzzing",
		File:  "fuzzed",
		Data:  data,
		Tags:  []string{"fuzzed"},
	}

	validation, err := f.Adapter.Validate(data, permissiveSchema())
	if err != nil {
		result.Passed = false
		result.Expected = false
		result.Actual = false
		result.Error = err.Error()
		result.Tags = []string{"fuzzed", "error"}
		return result
	}

	result.Expected = true
	result.Actual = validation.IsValid()
	result.Passed = result.Expected == result.Actual
	return result
}

func (f *FuzzEngine) runRandomCase(i int) TestResult {
	data, hint := f.randomValue(0)

	result := TestResult{
		ID:          fmt.Sprintf("fuzz-%d", i),
		Group:       "fuzzing",
		File:        "fuzzed",
		Data:        data,
		Description: hint,
		Tags:        []string{"fuzzed"},
	}

	validation, err := f.Adapter.Validate(data, permissiveSchema())
	if err != nil {
		result.Passed = false
		result.Expected = false
		result.Actual = false
		result.Error = err.Error()
		result.Tags = []string{"fuzzed", "error"}
		return result
	}

	result.Expected = true
	result.Actual = validation.IsValid()
	result.Passed = result.Expected == result.Actual
	return result
}

const maxFuzzDepth = 4

// randomValue picks a JSON type uniformly at random and returns it along
// with its type-hint description string. Floats and objects deliberately
// fall through to "unknown" — not an oversight, per the Design Notes.
func (f *FuzzEngine) randomValue(depth int) (jsonvalue.Value, string) {
	switch f.Rand.Intn(6) {
	case 0:
		return jsonvalue.NewNull(), "null"
	case 1:
		return jsonvalue.NewBool(f.Rand.Intn(2) == 0), "boolean"
	case 2:
		return jsonvalue.NewInt(f.Rand.Int63()), "integer"
	case 3:
		return jsonvalue.NewFloat(f.Rand.Float64()), "unknown"
	case 4:
		n := f.Rand.Intn(101)
		return jsonvalue.NewString(randomString(f.Rand, n)), "string"
	default:
		return f.randomArray(depth)
	}
}

func (f *FuzzEngine) randomArray(depth int) (jsonvalue.Value, string) {
	n := f.Rand.Intn(11)
	if n == 0 {
		return jsonvalue.NewArray(nil), "empty array"
	}

	elems := make([]jsonvalue.Value, n)
	for i := range elems {
		if depth >= maxFuzzDepth {
			elems[i] = jsonvalue.NewNull()
			continue
		}
		elems[i], _ = f.randomValue(depth + 1)
	}
	return jsonvalue.NewArray(elems), fmt.Sprintf("array of %d elements", n)
}

func randomString(r *rand.Rand, n int) string {
	const alphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	b := make([]byte, n)
	for i := range b {
		b[i] = alphabet[r.Intn(len(alphabet))]
	}
	return string(b)
}
