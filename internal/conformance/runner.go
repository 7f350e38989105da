package conformance

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"
	"time"
)

// SequentialRunner walks a corpus, invokes a ValidatorAdapter per case, and
// produces a TestSuite. It is the base case the parallel, watch and diff
// modes ultimately delegate to; fuzzing calls the adapter directly.
type SequentialRunner struct {
	Adapter  ValidatorAdapter
	Filter   FilterPolicy
	Registry *AssertionRegistry
	Reporter ProgressReporter
}

// NewSequentialRunner returns a runner with a default AssertionRegistry and
// a NoopReporter, ready for field overrides.
func NewSequentialRunner(adapter ValidatorAdapter) *SequentialRunner {
	return &SequentialRunner{
		Adapter:  adapter,
		Registry: NewAssertionRegistry(),
		Reporter: NoopReporter{},
	}
}

// DiscoverFiles recursively scans the adapter's corpus directory, keeping
// files matching any of its declared patterns, then applies the adapter's
// own filter and the FilterPolicy's, and returns the result sorted
// lexicographically.
func (r *SequentialRunner) DiscoverFiles() ([]string, error) {
	root := r.Adapter.TestDirectory()
	patterns := r.Adapter.FilePatterns()

	var files []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil //nolint:nilerr // unreadable entries are skipped, not fatal
		}
		if d.IsDir() {
			return nil
		}
		if !matchesAny(patterns, filepath.Base(path)) {
			return nil
		}
		if !r.Adapter.ShouldIncludeFile(path) {
			return nil
		}
		if !r.Filter.ShouldIncludeFile(path) {
			return nil
		}
		files = append(files, path)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("scanning corpus %q: %w", root, err)
	}

	sort.Strings(files)
	return files, nil
}

func matchesAny(patterns []string, name string) bool {
	if len(patterns) == 0 {
		return true
	}
	for _, p := range patterns {
		if ok, _ := filepath.Match(p, name); ok {
			return true
		}
	}
	return false
}

// Run executes the suite over an explicit file list, or over a freshly
// discovered list when files is nil.
func (r *SequentialRunner) Run(files []string) (*TestSuite, error) {
	if files == nil {
		discovered, err := r.DiscoverFiles()
		if err != nil {
			return nil, err
		}
		files = discovered
	}

	suiteName := r.Adapter.Name()
	suite := &TestSuite{Name: suiteName}

	total := r.countCases(files)
	r.Reporter.Start(total)

	suiteStart := time.Now()
	for _, file := range files {
		results := r.runFile(suiteName, file)
		for _, res := range results {
			if !r.Filter.ShouldIncludeCase(res) {
				continue
			}
			suite.Results = append(suite.Results, res)
			r.Reporter.Advance(res)
		}
	}
	suite.Duration = time.Since(suiteStart).Seconds()
	r.Reporter.Finish()

	return suite, nil
}

// runFile decodes one file and validates each surviving case.
func (r *SequentialRunner) runFile(suiteName, file string) []TestResult {
	loaded := LoadTestFile(file, r.Adapter.Decode)
	stem := fileStem(file)

	results := make([]TestResult, 0, len(loaded))
	for _, lc := range loaded {
		results = append(results, r.runCase(suiteName, stem, file, lc))
	}
	return results
}

func (r *SequentialRunner) runCase(suiteName, stem, file string, lc LoadedCase) TestResult {
	start := time.Now()
	id := canonicalID(suiteName, stem, lc.GroupIndex, lc.CaseIndex)

	result := TestResult{
		ID:          id,
		File:        file,
		Group:       lc.Group.Description,
		Description: lc.Case.Description,
		Data:        lc.Case.Data,
		Expected:    lc.Case.ExpectedBool(),
		Tags:        lc.Case.Tags,
	}

	validation, err := r.Adapter.Validate(lc.Case.Data, lc.Group.Schema)
	if err != nil {
		result.Actual = false
		result.Passed = false
		result.Error = err.Error()
		result.Duration = time.Since(start).Seconds()
		return result
	}

	result.Actual = validation.IsValid()
	outcome := r.Registry.Execute(lc.Case.AssertionName, lc.Case.Data, lc.Case.Expected, result.Actual)
	result.Passed = outcome.Passed
	result.Error = outcome.Message
	result.Duration = time.Since(start).Seconds()
	return result
}

// CountCases returns the number of well-formed cases in files without
// invoking the validator — used to size progress bars before work begins.
func (r *SequentialRunner) CountCases(files []string) int {
	return r.countCases(files)
}

func (r *SequentialRunner) countCases(files []string) int {
	n := 0
	for _, file := range files {
		n += len(LoadTestFile(file, r.Adapter.Decode))
	}
	return n
}

func canonicalID(suite, fileStem string, groupIndex, caseIndex int) string {
	return fmt.Sprintf("%s:%s:%d:%d", suite, fileStem, groupIndex, caseIndex)
}

func fileStem(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
