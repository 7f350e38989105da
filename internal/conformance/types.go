// Package conformance implements the test harness engine: it discovers
// declarative JSON test files, decodes them into groups and cases,
// dispatches each case to a pluggable ValidatorAdapter, compares the
// observed verdict to the expected verdict through a pluggable assertion
// strategy, and aggregates the results into a suite. Execution modes
// (parallel, incremental, watch, fuzz, diff, snapshot/baseline, coverage)
// share this core loop.
//
// The package is grounded on the teacher's internal/conformance package,
// generalized from "does this cost plugin speak the gRPC protocol
// correctly" to "does this validator classify this fixture correctly".
package conformance

import "github.com/schemaprism/prism/internal/jsonvalue"

// TestCase is a single assertion instance: input data, the expected
// verdict, a human description, an optional tag set, and an optional
// named assertion strategy.
//
// Expected holds the raw decoded "valid" field rather than a coerced bool:
// the AnyOf assertion strategy needs to see an array of acceptable
// verdicts when one is present. Callers that need the canonical boolean
// invariant (TestResult.Expected) should use ExpectedBool, which applies
// the same truthy/falsy coercion the rest of the engine uses.
type TestCase struct {
	Data        jsonvalue.Value
	Expected    jsonvalue.Value
	Description string
	Tags        []string
	AssertionName string
}

// ExpectedBool coerces Expected to a boolean via the truthy/falsy mapping:
// false, null, 0, 0.0, "", [], {} are falsy.
func (tc TestCase) ExpectedBool() bool { return tc.Expected.Truthy() }

// TestGroup is a collection of cases sharing one schema, within one file.
type TestGroup struct {
	Description string
	Schema      jsonvalue.Value
	Cases       []TestCase
}

// TestFile is the decoded form of one corpus file: its path and its
// ordered groups.
type TestFile struct {
	Path   string
	Groups []TestGroup
}

// TestResult is the invariant record of one case execution.
type TestResult struct {
	// ID has the canonical form "<suite>:<fileStem>:<groupIndex>:<caseIndex>".
	ID          string
	File        string
	Group       string
	Description string
	Data        jsonvalue.Value
	Expected    bool
	Actual      bool
	// Passed is computed by the assertion strategy, not by direct
	// equality of Expected and Actual.
	Passed bool
	// Error is the failure description when Passed is false: a validator
	// adapter's exception text, or otherwise the assertion strategy's
	// message. Empty whenever Passed is true.
	Error string
	// Duration is wall-clock seconds spent validating plus asserting.
	Duration float64
	Tags     []string
}

// TestSuite is the ordered result of one validator run.
type TestSuite struct {
	Name     string
	Results  []TestResult
	Duration float64
}

// Total is the number of results in the suite.
func (s *TestSuite) Total() int { return len(s.Results) }

// Passed is the count of results with Passed == true.
func (s *TestSuite) Passed() int {
	n := 0
	for _, r := range s.Results {
		if r.Passed {
			n++
		}
	}
	return n
}

// Failed is Total() - Passed().
func (s *TestSuite) Failed() int { return s.Total() - s.Passed() }

// Summary is the aggregate count snapshot of a suite, independent of the
// individual results — used for reports and certification thresholds.
type Summary struct {
	Total  int `json:"total"`
	Passed int `json:"passed"`
	Failed int `json:"failed"`
}

// SummaryOf computes a Summary from a suite.
func SummaryOf(s *TestSuite) Summary {
	return Summary{Total: s.Total(), Passed: s.Passed(), Failed: s.Failed()}
}

// BaselineEntry is one suite's persisted timing record.
type BaselineEntry struct {
	TotalDuration float64            `json:"total_duration"`
	TotalTests    int                `json:"total_tests"`
	TestTimings   map[string]float64 `json:"test_timings"`
}

// Baseline maps suite name to its persisted timing record.
type Baseline map[string]BaselineEntry

// SnapshotResult is one case's persisted verdict.
type SnapshotResult struct {
	Passed   bool `json:"passed"`
	Expected bool `json:"expected"`
	Actual   bool `json:"actual"`
}

// SnapshotEntry is one suite's persisted verdict summary.
type SnapshotEntry struct {
	TotalTests  int                       `json:"total_tests"`
	PassedTests int                       `json:"passed_tests"`
	FailedTests int                       `json:"failed_tests"`
	PassRate    float64                   `json:"pass_rate"`
	Results     map[string]SnapshotResult `json:"results"`
}

// Snapshot maps suite name to its persisted verdict summary.
type Snapshot map[string]SnapshotEntry

// SnapshotOf builds a SnapshotEntry from a suite.
func SnapshotOf(s *TestSuite) SnapshotEntry {
	entry := SnapshotEntry{
		TotalTests:  s.Total(),
		PassedTests: s.Passed(),
		FailedTests: s.Failed(),
		Results:     make(map[string]SnapshotResult, s.Total()),
	}
	if entry.TotalTests > 0 {
		entry.PassRate = 100 * float64(entry.PassedTests) / float64(entry.TotalTests)
	}
	for _, r := range s.Results {
		entry.Results[r.ID] = SnapshotResult{Passed: r.Passed, Expected: r.Expected, Actual: r.Actual}
	}
	return entry
}

// BaselineOf builds a BaselineEntry from a suite.
func BaselineOf(s *TestSuite) BaselineEntry {
	entry := BaselineEntry{
		TotalDuration: s.Duration,
		TotalTests:    s.Total(),
		TestTimings:   make(map[string]float64, s.Total()),
	}
	for _, r := range s.Results {
		entry.TestTimings[r.ID] = r.Duration
	}
	return entry
}

// ValidationResult is what a ValidatorAdapter reports for one case.
type ValidationResult interface {
	IsValid() bool
	Errors() []string
}

// ValidatorAdapter wraps a concrete validator implementation. Adapters are
// the engine's only external collaborator: the engine never knows which
// schema dialect or library backs a given adapter.
type ValidatorAdapter interface {
	Name() string
	TestDirectory() string
	FilePatterns() []string
	ShouldIncludeFile(path string) bool
	Decode(content []byte) (jsonvalue.Value, error)
	Validate(data, schema jsonvalue.Value) (ValidationResult, error)
}

type simpleValidationResult struct {
	valid  bool
	errors []string
}

func (r simpleValidationResult) IsValid() bool    { return r.valid }
func (r simpleValidationResult) Errors() []string { return r.errors }

// NewValidationResult constructs a ValidationResult from a validity verdict
// and an optional list of validator error messages.
func NewValidationResult(valid bool, errs []string) ValidationResult {
	return simpleValidationResult{valid: valid, errors: errs}
}
