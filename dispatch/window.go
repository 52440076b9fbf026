package dispatch

// recentWindow is the bounded FIFO of the most recent accepted requests,
// used only for demand analytics. Oldest entries are evicted once the
// bound is exceeded; eviction is strictly first-in-first-out.
type recentWindow struct {
	entries  []Request
	capacity int
}

func newRecentWindow(capacity int) *recentWindow {
	return &recentWindow{entries: make([]Request, 0, capacity), capacity: capacity}
}

// push appends req, evicting from the front while over capacity.
func (w *recentWindow) push(req Request) {
	w.entries = append(w.entries, req)
	for len(w.entries) > w.capacity {
		w.entries = w.entries[1:]
	}
}

// size reports the number of requests currently windowed.
func (w *recentWindow) size() int { return len(w.entries) }

// snapshot returns a copy of the windowed requests, oldest first.
func (w *recentWindow) snapshot() []Request {
	out := make([]Request, len(w.entries))
	copy(out, w.entries)

	return out
}
