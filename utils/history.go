package utils

// History keeps the digests of the most recent generations to spot oscillators.
// A period of 1 is a fixed point, which the engine already reports as stagnation.
type History struct {
	size   int
	hashes []string
}

// NewHistory keeps up to size digests
func NewHistory(size int) *History {
	return &History{size: max(1, size)}
}

// Push records the digest of the newest generation
func (h *History) Push(hash string) {
	h.hashes = append(h.hashes, hash)

	if len(h.hashes) > h.size {
		h.hashes = h.hashes[1:]
	}
}

// Period returns the shortest p such that the newest generation equals the one p steps before it,
// or 0 when no repetition is visible in the kept window
func (h *History) Period() int {
	n := len(h.hashes)
	if n < 2 {
		return 0
	}
	current := h.hashes[n-1]
	for p := 1; p < n; p++ {
		if h.hashes[n-1-p] == current {
			return p
		}
	}
	return 0
}
