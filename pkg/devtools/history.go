package devtools

import "sync"

// History is a thread-safe ring buffer of recent pass reports.
// The oldest report is overwritten when the buffer is full.
type History struct {
	mu       sync.RWMutex
	entries  []Report
	head     int // next write position
	count    int
	capacity int
	nextSeq  uint64
}

// NewHistory creates a history holding up to capacity reports.
func NewHistory(capacity int) *History {
	if capacity <= 0 {
		capacity = 100
	}
	return &History{
		entries:  make([]Report, capacity),
		capacity: capacity,
		nextSeq:  1,
	}
}

// Add assigns the next sequence number to r, stores it and returns it.
func (h *History) Add(r Report) Report {
	h.mu.Lock()
	defer h.mu.Unlock()

	r.Seq = h.nextSeq
	h.nextSeq++

	h.entries[h.head] = r
	h.head = (h.head + 1) % h.capacity
	if h.count < h.capacity {
		h.count++
	}
	return r
}

// Since returns the buffered reports with a sequence number above seq,
// oldest first.
func (h *History) Since(seq uint64) []Report {
	h.mu.RLock()
	defer h.mu.RUnlock()

	out := make([]Report, 0, h.count)
	start := (h.head - h.count + h.capacity) % h.capacity
	for i := 0; i < h.count; i++ {
		r := h.entries[(start+i)%h.capacity]
		if r.Seq > seq {
			out = append(out, r)
		}
	}
	return out
}

// Len returns the number of buffered reports.
func (h *History) Len() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.count
}

// Latest returns the most recent report.
func (h *History) Latest() (Report, bool) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	if h.count == 0 {
		return Report{}, false
	}
	return h.entries[(h.head-1+h.capacity)%h.capacity], true
}
