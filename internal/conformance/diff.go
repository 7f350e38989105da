package conformance

import (
	"fmt"
	"math"
	"sort"
	"strings"
)

// DiffEngine runs the same corpus through multiple adapters and reports
// where their verdicts disagree.
type DiffEngine struct {
	Runner *SequentialRunner
}

// DiscrepancyOutcome is one adapter's verdict for a discrepant case.
type DiscrepancyOutcome struct {
	Passed   bool `json:"passed"`
	Actual   bool `json:"actual"`
	Expected bool `json:"expected"`
}

// Discrepancy records one test id where adapters disagreed.
type Discrepancy struct {
	TestID      string                         `json:"test_id"`
	Description string                         `json:"description"`
	Outcomes    map[string]DiscrepancyOutcome `json:"outcomes"`
	Agreement   string                         `json:"agreement"`
}

// DiffResult is the full comparison report; Error is set instead of
// Discrepancies when fewer than two adapters were supplied.
type DiffResult struct {
	Error         string         `json:"error,omitempty"`
	Discrepancies []Discrepancy `json:"discrepancies"`
}

// Compare runs every adapter over its own corpus via runner and reports
// disagreements, aligned by a key that drops the suite-name prefix so ids
// line up across adapters with different Name()s.
func (e *DiffEngine) Compare(adapters map[string]ValidatorAdapter) DiffResult {
	if len(adapters) < 2 {
		return DiffResult{Error: "At least two validators required for comparison", Discrepancies: []Discrepancy{}}
	}

	type aligned struct {
		description string
		outcomes    map[string]DiscrepancyOutcome
	}
	byKey := make(map[string]*aligned)
	var order []string

	names := make([]string, 0, len(adapters))
	for name := range adapters {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		adapter := adapters[name]
		runner := &SequentialRunner{
			Adapter:  adapter,
			Registry: e.Runner.Registry,
			Filter:   e.Runner.Filter,
			Reporter: NoopReporter{},
		}
		suite, err := runner.Run(nil)
		if err != nil {
			continue
		}
		for _, r := range suite.Results {
			key := alignmentKey(r.ID)
			entry, ok := byKey[key]
			if !ok {
				entry = &aligned{description: r.Description, outcomes: make(map[string]DiscrepancyOutcome)}
				byKey[key] = entry
				order = append(order, key)
			}
			entry.outcomes[name] = DiscrepancyOutcome{Passed: r.Passed, Actual: r.Actual, Expected: r.Expected}
		}
	}

	result := DiffResult{Discrepancies: []Discrepancy{}}
	for _, key := range order {
		entry := byKey[key]
		if unanimous(entry.outcomes) {
			continue
		}
		result.Discrepancies = append(result.Discrepancies, Discrepancy{
			TestID:      key,
			Description: entry.description,
			Outcomes:    entry.outcomes,
			Agreement:   agreementPercent(entry.outcomes),
		})
	}
	return result
}

// alignmentKey drops the suite-name prefix from a canonical id, keeping
// "<fileStem>:<groupIndex>:<caseIndex>" so the same fixture aligns across
// adapters whose Name() differs.
func alignmentKey(id string) string {
	parts := strings.SplitN(id, ":", 2)
	if len(parts) == 2 {
		return parts[1]
	}
	return id
}

func unanimous(outcomes map[string]DiscrepancyOutcome) bool {
	seen := false
	var ref bool
	for _, o := range outcomes {
		if !seen {
			ref = o.Actual
			seen = true
			continue
		}
		if o.Actual != ref {
			return false
		}
	}
	return true
}

func agreementPercent(outcomes map[string]DiscrepancyOutcome) string {
	trueCount, falseCount := 0, 0
	for _, o := range outcomes {
		if o.Actual {
			trueCount++
		} else {
			falseCount++
		}
	}
	total := trueCount + falseCount
	maxCount := trueCount
	if falseCount > maxCount {
		maxCount = falseCount
	}
	pct := math.Round(float64(maxCount)/float64(total)*100*10) / 10
	return fmt.Sprintf("%.1f%%", pct)
}
