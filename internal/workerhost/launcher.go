// Package workerhost spawns child prism processes to execute one batch of
// a ParallelRunner's work, grounded on the teacher's
// internal/pluginhost.ProcessLauncher but trading its gRPC-over-TCP dial
// handshake for a JSON-file handoff, per spec.md §4.5 and §5.
package workerhost

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/exec"
	"time"

	"github.com/rs/zerolog"

	"github.com/schemaprism/prism/internal/harnesserr"
)

const defaultTimeout = 0 // the core imposes no validator timeout, per §5

// WorkerArgs is the hidden "__worker" subcommand's decoded input: the
// adapter identifier the worker should reconstruct, and the file subset it
// owns.
type WorkerArgs struct {
	Adapter string   `json:"adapter"`
	Files   []string `json:"files"`
}

// ProcessLauncher spawns `<binary> __worker` once per batch, handing it a
// JSON input file and an output file path, and waits for it to exit.
type ProcessLauncher struct {
	// BinaryPath is the prism executable to re-invoke. Defaults to the
	// currently running executable via os.Executable when empty.
	BinaryPath string
	Timeout    time.Duration
	Log        zerolog.Logger
}

// NewProcessLauncher returns a launcher that re-invokes the current
// executable.
func NewProcessLauncher(log zerolog.Logger) *ProcessLauncher {
	return &ProcessLauncher{Timeout: defaultTimeout, Log: log}
}

// Launch implements conformance.WorkerLauncher. It writes a WorkerArgs
// input file, execs the worker subcommand, and waits for it to write
// outputPath. A nonzero exit or spawn failure is reported as a
// harnesserr.WorkerFail; the caller (ParallelRunner) treats that batch as
// contributing zero results rather than aborting the whole run.
func (p *ProcessLauncher) Launch(adapterName string, files []string, outputPath string) error {
	binary := p.BinaryPath
	if binary == "" {
		resolved, err := os.Executable()
		if err != nil {
			return harnesserr.New(harnesserr.IOFatal, "workerhost", fmt.Errorf("resolving binary path: %w", err))
		}
		binary = resolved
	}

	input, err := os.CreateTemp("", "prism-worker-input-*.json")
	if err != nil {
		return harnesserr.New(harnesserr.IOFatal, "workerhost", fmt.Errorf("creating worker input: %w", err))
	}
	defer os.Remove(input.Name())

	content, err := json.Marshal(WorkerArgs{Adapter: adapterName, Files: files})
	if err != nil {
		input.Close()
		return harnesserr.New(harnesserr.IOFatal, "workerhost", fmt.Errorf("encoding worker input: %w", err))
	}
	if _, err := input.Write(content); err != nil {
		input.Close()
		return harnesserr.New(harnesserr.IOFatal, "workerhost", fmt.Errorf("writing worker input: %w", err))
	}
	if err := input.Close(); err != nil {
		return harnesserr.New(harnesserr.IOFatal, "workerhost", err)
	}

	ctx := context.Background()
	var cancel context.CancelFunc
	if p.Timeout > 0 {
		ctx, cancel = context.WithTimeout(ctx, p.Timeout)
		defer cancel()
	}

	cmd := exec.CommandContext(ctx, binary, "__worker", "--input", input.Name(), "--output", outputPath)
	cmd.Stderr = os.Stderr

	p.Log.Debug().
		Str("component", "workerhost").
		Str("adapter", adapterName).
		Int("file_count", len(files)).
		Str("output", outputPath).
		Msg("launching worker process")

	if err := cmd.Run(); err != nil {
		p.Log.Warn().
			Str("component", "workerhost").
			Err(err).
			Msg("worker process failed")
		return harnesserr.New(harnesserr.WorkerFail, "workerhost", fmt.Errorf("worker process: %w", err))
	}
	return nil
}
