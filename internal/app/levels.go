package app

// LevelRing is a circular buffer of per-frame ray levels.
type LevelRing struct {
	buf   []float64
	pos   int
	count int
}

// NewLevelRing creates a new circular buffer with the given capacity.
func NewLevelRing(capacity int) *LevelRing {
	return &LevelRing{
		buf: make([]float64, max(1, capacity)),
	}
}

// Push adds a value, overwriting the oldest once full.
func (r *LevelRing) Push(val float64) {
	r.buf[r.pos] = val
	r.pos = (r.pos + 1) % len(r.buf)
	if r.count < len(r.buf) {
		r.count++
	}
}

// Values returns all stored values in chronological order.
func (r *LevelRing) Values() []float64 {
	if r.count == 0 {
		return nil
	}
	result := make([]float64, r.count)
	if r.count < len(r.buf) {
		copy(result, r.buf[:r.count])
	} else {
		n := copy(result, r.buf[r.pos:])
		copy(result[n:], r.buf[:r.pos])
	}
	return result
}

// Last returns the most recent value, or 0 if empty.
func (r *LevelRing) Last() float64 {
	if r.count == 0 {
		return 0
	}
	return r.buf[(r.pos-1+len(r.buf))%len(r.buf)]
}

// Len returns the number of stored values.
func (r *LevelRing) Len() int {
	return r.count
}
