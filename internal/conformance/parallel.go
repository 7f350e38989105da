package conformance

import (
	"encoding/json"
	"math"
	"os"

	"golang.org/x/sync/errgroup"
)

// WorkerLauncher spawns one child worker process that runs a
// SequentialRunner over files and writes its TestResult list, as JSON, to
// outputPath. It is satisfied by internal/workerhost, which re-invokes the
// prism binary's hidden worker subcommand; ParallelRunner itself knows
// nothing about process management, matching §5's "parent holds only
// bookkeeping state."
type WorkerLauncher interface {
	Launch(adapterName string, files []string, outputPath string) error
}

// ParallelRunner batches a file list across W worker processes and
// aggregates their results, preserving the same file/group/case ordering a
// SequentialRunner would produce.
type ParallelRunner struct {
	Adapter  ValidatorAdapter
	Filter   FilterPolicy
	Reporter ProgressReporter
	Launcher WorkerLauncher
	Workers  int
}

// Run discovers files (or uses files if non-nil) and dispatches them across
// batches. With Workers <= 1, or a file list of one or zero files, it
// delegates straight to a SequentialRunner — no subprocess is spawned for
// trivial input.
func (p *ParallelRunner) Run(files []string) (*TestSuite, error) {
	seq := &SequentialRunner{Adapter: p.Adapter, Filter: p.Filter, Registry: NewAssertionRegistry(), Reporter: p.Reporter}

	if files == nil {
		discovered, err := seq.DiscoverFiles()
		if err != nil {
			return nil, err
		}
		files = discovered
	}

	if p.Workers <= 1 || len(files) <= 1 {
		return seq.Run(files)
	}

	batches := batchFiles(files, p.Workers)

	outputPaths := make([]string, len(batches))

	var group errgroup.Group
	for i, batch := range batches {
		i, batch := i, batch
		group.Go(func() error {
			out, err := os.CreateTemp("", "prism-worker-*.json")
			if err != nil {
				return nil //nolint:nilerr // a batch that can't even get a scratch file contributes zero results, per §4.5
			}
			path := out.Name()
			out.Close()
			outputPaths[i] = path

			// Launch errors are swallowed here too: a failed batch
			// contributes zero results rather than aborting the other
			// batches, matching SequentialRunner's per-case isolation.
			_ = p.Launcher.Launch(p.Adapter.Name(), batch, path)
			return nil
		})
	}
	_ = group.Wait() // every Go func above always returns nil; Wait only blocks until all finish

	suite := &TestSuite{Name: p.Adapter.Name()}
	for _, path := range outputPaths {
		results := readWorkerResults(path)
		suite.Results = append(suite.Results, results...)
		if path != "" {
			os.Remove(path)
		}
	}
	suite.Results = filterResults(suite.Results, p.Filter)

	return suite, nil
}

func filterResults(results []TestResult, filter FilterPolicy) []TestResult {
	kept := make([]TestResult, 0, len(results))
	for _, r := range results {
		if filter.ShouldIncludeCase(r) {
			kept = append(kept, r)
		}
	}
	return kept
}

// batchFiles splits a lexicographically sorted file list into
// ceil(N/W) contiguous runs; the number of batches may exceed W when the
// division is inexact, which §4.5 explicitly accepts.
func batchFiles(files []string, workers int) [][]string {
	n := len(files)
	size := int(math.Ceil(float64(n) / float64(workers)))
	if size < 1 {
		size = 1
	}

	var batches [][]string
	for i := 0; i < n; i += size {
		end := i + size
		if end > n {
			end = n
		}
		batches = append(batches, files[i:end])
	}
	return batches
}

// readWorkerResults deserializes a worker's output file into a TestResult
// list. Any failure — missing file, empty content, malformed JSON, or a
// non-array root — yields an empty contribution rather than aborting the
// whole aggregation, per §4.5's failure model.
func readWorkerResults(path string) []TestResult {
	if path == "" {
		return nil
	}
	content, err := os.ReadFile(path)
	if err != nil || len(content) == 0 {
		return nil
	}
	var results []TestResult
	if err := json.Unmarshal(content, &results); err != nil {
		return nil
	}
	return results
}
