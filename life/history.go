package life

// historySize is the number of recent hashes kept for cycle detection
const historySize = 5

// History keeps the hashes of recent generations
type History struct {
	hashes []string
}

// Push records a generation hash, dropping the oldest beyond historySize
func (h *History) Push(hash string) {
	h.hashes = append(h.hashes, hash)
	if len(h.hashes) > historySize {
		h.hashes = h.hashes[1:]
	}
}

// Repeats reports whether hash equals one of the last three recorded hashes,
// i.e. the grid is static or oscillating with period two or three.
func (h *History) Repeats(hash string) bool {
	n := len(h.hashes)
	for back := 1; back <= 3 && back <= n; back++ {
		if h.hashes[n-back] == hash {
			return true
		}
	}
	return false
}

// Reset forgets all recorded hashes
func (h *History) Reset() {
	h.hashes = nil
}

// Len returns the number of recorded hashes
func (h *History) Len() int {
	return len(h.hashes)
}
