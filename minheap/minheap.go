// Package minheap implements the indexed binary min-heap used by the
// shortest-path engine.
package minheap

import (
	"fmt"
	"strings"
)

// Heap is an indexed binary min-heap of (vertex, distance) entries.
// The zero value is not usable; construct with New.
type Heap struct {
	entries   []Entry     // slice-backed binary heap, ordered by Distance
	positions map[int]int // vertex → current slot in entries
	opts      Options
	logs      []string // internal diagnostics buffer when no sink is set
}

// New returns an empty Heap configured by the given options.
func New(opts ...Option) *Heap {
	cfg := DefaultOptions()
	var opt Option
	for _, opt = range opts {
		opt(&cfg)
	}

	return &Heap{
		entries:   make([]Entry, 0, 64),
		positions: make(map[int]int, 64),
		opts:      cfg,
	}
}

// Size reports the number of entries currently present. O(1).
func (h *Heap) Size() int { return len(h.entries) }

// IsEmpty reports whether the heap holds no entries. O(1).
func (h *Heap) IsEmpty() bool { return len(h.entries) == 0 }

// Contains reports whether vertex currently has an entry. O(1).
func (h *Heap) Contains(vertex int) bool {
	_, ok := h.positions[vertex]

	return ok
}

// Insert appends a new (vertex, distance) entry and sifts it up to its
// heap position.
//
// Precondition: vertex is not already present. Inserting a duplicate
// would break the at-most-once invariant; callers that may hold the
// vertex already should use DecreaseKey, which branches on membership.
//
// Complexity: O(log n).
func (h *Heap) Insert(vertex int, distance float64) {
	h.logf("Insert: Adding vertex %d with distance %.2f", vertex, distance)

	// 1) Append at the last slot and record the position.
	h.entries = append(h.entries, Entry{Vertex: vertex, Distance: distance})
	h.positions[vertex] = len(h.entries) - 1

	// 2) Restore the heap order upward from the new slot.
	h.siftUp(len(h.entries) - 1)
}

// ExtractMin removes and returns the entry with the globally smallest
// distance. On an empty heap it returns EmptyEntry() instead of failing.
//
// Complexity: O(log n).
func (h *Heap) ExtractMin() Entry {
	if len(h.entries) == 0 {
		return EmptyEntry()
	}

	minEntry := h.entries[0]
	h.logf("ExtractMin: Removing vertex %d with distance %.2f", minEntry.Vertex, minEntry.Distance)

	// 1) Move the last entry to the root and fix its recorded position.
	last := len(h.entries) - 1
	h.entries[0] = h.entries[last]
	h.positions[h.entries[0].Vertex] = 0
	h.entries = h.entries[:last]

	// 2) The extracted vertex leaves the position index entirely.
	delete(h.positions, minEntry.Vertex)

	// 3) Restore the heap order downward from the root.
	if len(h.entries) > 0 {
		h.siftDown(0)
	}

	return minEntry
}

// DecreaseKey lowers the distance of vertex to newDistance and sifts the
// entry up. An absent vertex is treated as a fresh Insert.
//
// Precondition: newDistance does not exceed the vertex's current distance;
// raising a key is not supported and would violate the heap order below
// the touched slot.
//
// Complexity: O(log n).
func (h *Heap) DecreaseKey(vertex int, newDistance float64) {
	slot, ok := h.positions[vertex]
	if !ok {
		// Vertex not in heap: degrade to insertion.
		h.Insert(vertex, newDistance)
		return
	}

	h.logf("DecreaseKey: Updating vertex %d from distance %.2f to %.2f",
		vertex, h.entries[slot].Distance, newDistance)

	h.entries[slot].Distance = newDistance
	h.siftUp(slot)
}

// Logs returns a copy of the buffered diagnostics. Empty when a LogSink
// was configured (lines went to the sink instead).
func (h *Heap) Logs() []string {
	out := make([]string, len(h.logs))
	copy(out, h.logs)

	return out
}

// ClearLogs discards all buffered diagnostics.
func (h *Heap) ClearLogs() { h.logs = nil }

// String renders the heap array as "[(v:dist), …]" in slot order, for
// debugging. Slot order is heap order, not sorted order.
func (h *Heap) String() string {
	var b strings.Builder
	b.WriteByte('[')
	for i, e := range h.entries {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "(%d:%.2f)", e.Vertex, e.Distance)
	}
	b.WriteByte(']')

	return b.String()
}

// ------------------------------------------------------------------------
// internal: sift operations and index bookkeeping
// ------------------------------------------------------------------------

func parent(i int) int { return (i - 1) / 2 }
func left(i int) int   { return 2*i + 1 }
func right(i int) int  { return 2*i + 2 }

// swap exchanges slots i and j and mirrors the move in the position index.
// Every structural move goes through here so the index can never drift.
func (h *Heap) swap(i, j int) {
	h.positions[h.entries[i].Vertex] = j
	h.positions[h.entries[j].Vertex] = i
	h.entries[i], h.entries[j] = h.entries[j], h.entries[i]
}

// siftUp bubbles slot i toward the root while it is strictly smaller than
// its parent. Equal distances do not swap, preserving existing relative
// order on ties.
func (h *Heap) siftUp(i int) {
	for i > 0 && h.entries[parent(i)].Distance > h.entries[i].Distance {
		h.swap(i, parent(i))
		i = parent(i)
	}
}

// siftDown pushes slot i toward the leaves while a child is strictly
// smaller than it.
func (h *Heap) siftDown(i int) {
	for {
		smallest := i
		if l := left(i); l < len(h.entries) && h.entries[l].Distance < h.entries[smallest].Distance {
			smallest = l
		}
		if r := right(i); r < len(h.entries) && h.entries[r].Distance < h.entries[smallest].Distance {
			smallest = r
		}
		if smallest == i {
			return
		}
		h.swap(i, smallest)
		i = smallest
	}
}

// logf records one diagnostic line, routing to the sink when configured.
func (h *Heap) logf(format string, args ...interface{}) {
	line := fmt.Sprintf(format, args...)
	if h.opts.LogSink != nil {
		h.opts.LogSink(line)
		return
	}
	h.logs = append(h.logs, line)
}
