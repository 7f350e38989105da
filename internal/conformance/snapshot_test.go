package conformance

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSnapshotStoreRoundTrip(t *testing.T) {
	store := SnapshotStore{Dir: t.TempDir()}

	suite := &TestSuite{Name: "demo", Results: []TestResult{
		{ID: "demo:a:0:0", Passed: true, Expected: true, Actual: true},
		{ID: "demo:a:0:1", Passed: false, Expected: true, Actual: false},
	}}
	entry := SnapshotOf(suite)
	require.NoError(t, store.Save("demo", entry))

	loaded := store.Load("demo")
	require.NotNil(t, loaded)
	assert.Equal(t, entry, *loaded)
}

func TestSnapshotStoreLoadMissingReturnsNil(t *testing.T) {
	store := SnapshotStore{Dir: t.TempDir()}
	assert.Nil(t, store.Load("nonexistent"))
}

func TestBaselineStoreRoundTrip(t *testing.T) {
	store := BaselineStore{Dir: t.TempDir()}

	suite := &TestSuite{Name: "demo", Duration: 1.5, Results: []TestResult{
		{ID: "demo:a:0:0", Duration: 0.5},
	}}
	entry := BaselineOf(suite)
	require.NoError(t, store.Save("demo", entry))

	loaded := store.Load("demo")
	require.NotNil(t, loaded)
	assert.Equal(t, entry, *loaded)
}
