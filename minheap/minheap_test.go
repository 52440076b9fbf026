// Package minheap_test validates the indexed min-heap: ordering of
// extraction, the empty-heap sentinel, decrease-key semantics, and the
// position-index mirror invariant under randomized operation sequences.
package minheap_test

import (
	"math"
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/ridegraph/minheap"
)

// ------------------------------------------------------------------------
// 1. Basic operations.
// ------------------------------------------------------------------------

func TestExtractMin_EmptySentinel(t *testing.T) {
	h := minheap.New()
	e := h.ExtractMin()
	assert.Equal(t, -1, e.Vertex)
	assert.True(t, math.IsInf(e.Distance, 1), "empty extraction carries +Inf distance")
	assert.True(t, h.IsEmpty())
	assert.Equal(t, 0, h.Size())
}

func TestInsertExtract_SortedOrder(t *testing.T) {
	h := minheap.New()
	// Insert out of order; extraction must come back globally sorted.
	for v, d := range map[int]float64{4: 9.5, 1: 0.5, 7: 3.25, 2: 3.25, 9: 1.0} {
		h.Insert(v, d)
	}
	require.Equal(t, 5, h.Size())

	var got []float64
	for !h.IsEmpty() {
		got = append(got, h.ExtractMin().Distance)
	}
	assert.True(t, sort.Float64sAreSorted(got), "extraction order %v must be non-decreasing", got)
}

func TestContains_TracksMembership(t *testing.T) {
	h := minheap.New()
	h.Insert(3, 2.0)
	h.Insert(5, 1.0)

	assert.True(t, h.Contains(3))
	assert.True(t, h.Contains(5))
	assert.False(t, h.Contains(42))

	min := h.ExtractMin()
	require.Equal(t, 5, min.Vertex)
	assert.False(t, h.Contains(5), "extracted vertex must leave the index")
	assert.True(t, h.Contains(3))
}

// ------------------------------------------------------------------------
// 2. DecreaseKey semantics.
// ------------------------------------------------------------------------

func TestDecreaseKey_ReordersHeap(t *testing.T) {
	h := minheap.New()
	h.Insert(0, 10)
	h.Insert(1, 20)
	h.Insert(2, 30)

	// Vertex 2 jumps to the front.
	h.DecreaseKey(2, 5)
	assert.Equal(t, 2, h.ExtractMin().Vertex)
	assert.Equal(t, 0, h.ExtractMin().Vertex)
	assert.Equal(t, 1, h.ExtractMin().Vertex)
}

func TestDecreaseKey_AbsentVertexInserts(t *testing.T) {
	h := minheap.New()
	h.Insert(1, 4)

	// Vertex 9 was never inserted: DecreaseKey must behave as Insert.
	h.DecreaseKey(9, 2)
	assert.True(t, h.Contains(9))
	assert.Equal(t, 2, h.Size())
	assert.Equal(t, 9, h.ExtractMin().Vertex)
}

func TestDecreaseKey_KeepsSingleEntryPerVertex(t *testing.T) {
	h := minheap.New()
	h.Insert(7, 50)
	h.DecreaseKey(7, 40)
	h.DecreaseKey(7, 30)
	h.DecreaseKey(7, 1)

	// Unlike lazy decrease-key, repeated updates never create duplicates.
	assert.Equal(t, 1, h.Size())
	assert.Equal(t, minheap.Entry{Vertex: 7, Distance: 1}, h.ExtractMin())
	assert.True(t, h.IsEmpty())
}

// ------------------------------------------------------------------------
// 3. Property: the position index mirrors heap contents after any
//    sequence of insert / extract / decrease-key operations.
// ------------------------------------------------------------------------

func TestIndexInvariant_RandomizedOperations(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	h := minheap.New()

	// reference tracks each present vertex's current key.
	reference := make(map[int]float64)

	const rounds = 5000
	for i := 0; i < rounds; i++ {
		switch op := rng.Intn(3); {
		case op == 0 || h.IsEmpty():
			v := rng.Intn(200)
			d := rng.Float64() * 100
			if cur, ok := reference[v]; ok {
				// Already present: only a lowering update is legal.
				if d < cur {
					h.DecreaseKey(v, d)
					reference[v] = d
				}
			} else {
				h.Insert(v, d)
				reference[v] = d
			}
		case op == 1:
			e := h.ExtractMin()
			want := math.Inf(1)
			for _, d := range reference {
				if d < want {
					want = d
				}
			}
			require.Equal(t, want, e.Distance, "round %d: extracted distance must be the global minimum", i)
			delete(reference, e.Vertex)
		default:
			v := rng.Intn(200)
			d := rng.Float64() * 100
			cur, ok := reference[v]
			if !ok || d < cur {
				h.DecreaseKey(v, d)
				reference[v] = d
			}
		}

		require.True(t, h.IndexMirrorsEntries(), "round %d: position index drifted from heap contents", i)
		require.True(t, h.HeapOrdered(), "round %d: heap order violated", i)
		require.Equal(t, len(reference), h.Size(), "round %d: size mismatch", i)
	}
}

// ------------------------------------------------------------------------
// 4. Diagnostics.
// ------------------------------------------------------------------------

func TestLogs_BufferedByDefault(t *testing.T) {
	h := minheap.New()
	h.Insert(1, 2)
	h.ExtractMin()

	logs := h.Logs()
	require.Len(t, logs, 2)
	assert.Contains(t, logs[0], "Insert")
	assert.Contains(t, logs[1], "ExtractMin")

	h.ClearLogs()
	assert.Empty(t, h.Logs())
}

func TestLogs_SinkBypassesBuffer(t *testing.T) {
	var captured []string
	h := minheap.New(minheap.WithLogSink(func(line string) { captured = append(captured, line) }))
	h.Insert(1, 2)
	h.DecreaseKey(1, 1)

	assert.Empty(t, h.Logs(), "sink mode must not buffer internally")
	require.Len(t, captured, 2)
	assert.Contains(t, captured[1], "DecreaseKey")
}

func TestWithLogSink_PanicsOnNil(t *testing.T) {
	assert.Panics(t, func() { minheap.WithLogSink(nil) })
}

func TestString_RendersSlotOrder(t *testing.T) {
	h := minheap.New()
	h.Insert(3, 1.5)
	assert.Equal(t, "[(3:1.50)]", h.String())
}
