package mcssearch_test

import (
	"sync"
	"testing"

	"github.com/katalvlaran/mcsx/mcsdomain"
	"github.com/katalvlaran/mcsx/mcssearch"
	"github.com/stretchr/testify/require"
)

func TestAtomicIncumbentOnlyAcceptsStrictlyLarger(t *testing.T) {
	var inc mcssearch.AtomicIncumbent
	require.True(t, inc.Update(3))
	require.False(t, inc.Update(3))
	require.False(t, inc.Update(2))
	require.True(t, inc.Update(4))
	require.Equal(t, uint32(4), inc.Get())
}

func TestAtomicIncumbentConcurrentUpdatesConverge(t *testing.T) {
	var inc mcssearch.AtomicIncumbent
	var wg sync.WaitGroup
	for v := uint32(1); v <= 50; v++ {
		v := v
		wg.Add(1)
		go func() {
			defer wg.Done()
			inc.Update(v)
		}()
	}
	wg.Wait()
	require.Equal(t, uint32(50), inc.Get())
}

func TestIncumbentStoreKeepsLongestMapping(t *testing.T) {
	var store mcssearch.IncumbentStore
	short := []mcsdomain.VertexTuple{{0, 0}}
	long := []mcsdomain.VertexTuple{{0, 0}, {1, 1}, {2, 2}}

	require.True(t, store.Consider(short))
	require.True(t, store.Consider(long))
	require.False(t, store.Consider(short))
	require.Equal(t, long, store.Best())
}
