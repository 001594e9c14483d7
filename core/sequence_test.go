package core

import (
	"sort"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNextSequenceStartsAtOne(t *testing.T) {
	db := newTestDB(t)

	n, err := NextSequence(db, BarcodeCounter)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
}

func TestNextSequenceIsMonotonic(t *testing.T) {
	db := newTestDB(t)

	for want := int64(1); want <= 5; want++ {
		n, err := NextSequence(db, BarcodeCounter)
		require.NoError(t, err)
		assert.Equal(t, want, n)
	}
}

func TestNextSequenceIndependentCounters(t *testing.T) {
	db := newTestDB(t)

	_, err := NextSequence(db, BarcodeCounter)
	require.NoError(t, err)
	_, err = NextSequence(db, BarcodeCounter)
	require.NoError(t, err)

	n, err := NextSequence(db, "other")
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
}

func TestNextSequenceConcurrentAllocationsAreDistinct(t *testing.T) {
	db := newTestDB(t)

	const workers = 20
	results := make([]int64, workers)

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			n, err := NextSequence(db, BarcodeCounter)
			assert.NoError(t, err)
			results[i] = n
		}(i)
	}
	wg.Wait()

	sort.Slice(results, func(a, b int) bool { return results[a] < results[b] })
	for i, n := range results {
		assert.Equal(t, int64(i+1), n)
	}
}
