package httpscribe

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestHistory_EvictsOldestBeyondCapacity tests the bounded retention of
// the history store.
func TestHistory_EvictsOldestBeyondCapacity(t *testing.T) {
	t.Parallel()

	hist, err := newHistory(2)
	require.NoError(t, err)

	first := &Exchange{ID: "first"}
	second := &Exchange{ID: "second"}
	third := &Exchange{ID: "third"}

	hist.record(first)
	hist.record(second)
	hist.record(third)

	recent := hist.recent()
	require.Len(t, recent, 2)
	assert.Equal(t, second, recent[0])
	assert.Equal(t, third, recent[1])

	_, ok := hist.lookup("first")
	assert.False(t, ok)

	found, ok := hist.lookup("third")
	require.True(t, ok)
	assert.Equal(t, third, found)
}

// TestNewHistory_RejectsNonPositiveSize tests the constructor's error
// path.
func TestNewHistory_RejectsNonPositiveSize(t *testing.T) {
	t.Parallel()

	_, err := newHistory(0)
	assert.Error(t, err)
}
