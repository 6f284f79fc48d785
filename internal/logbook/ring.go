package logbook

// Ring keeps the newest entries of one session in memory.
type Ring struct {
	entries []Entry
	size    int
	total   int
}

// NewRing returns a ring holding at most size entries.
func NewRing(size int) *Ring {
	if size < 1 {
		size = 1
	}
	return &Ring{size: size}
}

// Add appends e, dropping the oldest entry once the ring is full.
func (r *Ring) Add(e Entry) {
	r.total++
	if len(r.entries) == r.size {
		copy(r.entries, r.entries[1:])
		r.entries[len(r.entries)-1] = e
		return
	}
	r.entries = append(r.entries, e)
}

// Entries returns the held entries, oldest first.
func (r *Ring) Entries() []Entry {
	out := make([]Entry, len(r.entries))
	copy(out, r.entries)
	return out
}

// Total counts every entry ever added, including dropped ones.
func (r *Ring) Total() int {
	return r.total
}
