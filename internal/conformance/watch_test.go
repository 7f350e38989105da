package conformance

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWatchLoopInvokesCallbackInitiallyAndOnChange(t *testing.T) {
	dir := t.TempDir()
	f := filepath.Join(dir, "a.json")
	require.NoError(t, writeFile(f, `[]`))

	var calls int
	ctx, cancel := context.WithCancel(context.Background())

	loop := &WatchLoop{
		Scan:     func() ([]string, error) { return []string{f}, nil },
		Interval: 5 * time.Millisecond,
		Callback: func(files []string) {
			calls++
			if calls == 1 {
				// Mutate mtime so the next poll observes a change.
				require.NoError(t, chtimes(f, time.Now().Add(time.Hour)))
			}
			if calls == 2 {
				cancel()
			}
		},
	}

	done := make(chan error, 1)
	go func() { done <- loop.Run(ctx) }()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("watch loop did not exit")
	}

	assert.Equal(t, 2, calls)
}

func TestChangedDetectsAddedRemovedAndModifiedKeys(t *testing.T) {
	base := map[string]string{"a": "1", "b": "2"}

	assert.False(t, changed(base, map[string]string{"a": "1", "b": "2"}))
	assert.True(t, changed(base, map[string]string{"a": "1", "b": "3"}))
	assert.True(t, changed(base, map[string]string{"a": "1"}))
	assert.True(t, changed(base, map[string]string{"a": "1", "b": "2", "c": "4"}))
}
