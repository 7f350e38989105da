package conformance

import (
	"context"
	"fmt"
	"io"
	"time"
)

// WatchLoop re-invokes a callback whenever the corpus's path→mtime snapshot
// changes, polling rather than using a filesystem-event API: §4.7 calls for
// cooperative, signal-driven cancellation rather than OS-level watch
// handles, which a poll loop gives for free across platforms.
type WatchLoop struct {
	Scan     func() ([]string, error)
	Callback func(files []string)
	Interval time.Duration
	Out      io.Writer
}

// Run announces watching, invokes the callback once against the initial
// file set, then polls until ctx is cancelled. A change is any new key,
// missing key, or changed mtime in the path→mtime snapshot. The loop is
// edge-triggered: a change observed mid-callback is picked up on the next
// poll rather than interrupting the running callback.
func (w *WatchLoop) Run(ctx context.Context) error {
	w.logf("watching for changes (interval %s)\n", w.Interval)

	files, err := w.Scan()
	if err != nil {
		return err
	}
	snapshot, err := w.snapshot(files)
	if err != nil {
		return err
	}
	w.Callback(files)

	ticker := time.NewTicker(w.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			newFiles, err := w.Scan()
			if err != nil {
				continue
			}
			newSnapshot, err := w.snapshot(newFiles)
			if err != nil {
				continue
			}
			if changed(snapshot, newSnapshot) {
				w.logf("change detected, re-running\n")
				snapshot = newSnapshot
				files = newFiles
				w.Callback(files)
			}
		}
	}
}

func (w *WatchLoop) snapshot(files []string) (map[string]string, error) {
	m := make(map[string]string, len(files))
	for _, f := range files {
		mtime, err := fileMTime(f)
		if err != nil {
			return nil, fmt.Errorf("stat %q: %w", f, err)
		}
		m[f] = fmt.Sprintf("%d", mtime)
	}
	return m, nil
}

func (w *WatchLoop) logf(format string, args ...any) {
	if w.Out == nil {
		return
	}
	fmt.Fprintf(w.Out, format, args...)
}

// changed reports whether b differs from a by any added key, removed key,
// or changed value.
func changed(a, b map[string]string) bool {
	if len(a) != len(b) {
		return true
	}
	for k, v := range a {
		if bv, ok := b[k]; !ok || bv != v {
			return true
		}
	}
	return false
}
