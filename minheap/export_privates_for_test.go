package minheap

// Test-only hooks exposing the internal invariant without widening the
// public API.

// IndexMirrorsEntries reports whether the position index exactly mirrors
// the heap array: every present vertex maps to the slot that holds it,
// every slot's vertex is indexed, and no vertex appears twice.
func (h *Heap) IndexMirrorsEntries() bool {
	if len(h.positions) != len(h.entries) {
		return false
	}
	for slot, e := range h.entries {
		if got, ok := h.positions[e.Vertex]; !ok || got != slot {
			return false
		}
	}

	return true
}

// HeapOrdered reports whether every parent's distance is ≤ both children.
func (h *Heap) HeapOrdered() bool {
	for i := 1; i < len(h.entries); i++ {
		if h.entries[parent(i)].Distance > h.entries[i].Distance {
			return false
		}
	}

	return true
}
