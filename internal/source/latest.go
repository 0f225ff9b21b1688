// Package source produces amplitude buffers for the ray effect. Producers
// run on their own goroutines and publish into a Latest, which the render
// loop polls once per ingesting frame.
package source

import "sync"

// Latest is a thread-safe holder for the most recently published buffer.
type Latest struct {
	mu        sync.RWMutex
	buf       []int
	paused    bool
	published uint64
}

// NewLatest creates an empty holder.
func NewLatest() *Latest {
	return &Latest{}
}

// Publish stores a copy of samples as the latest buffer.
func (l *Latest) Publish(samples []int) {
	cp := make([]int, len(samples))
	copy(cp, samples)

	l.mu.Lock()
	defer l.mu.Unlock()
	l.buf = cp
	l.published++
}

// Samples returns the latest buffer, or nil when nothing has been published
// or the holder is paused. Callers must not modify the returned slice.
func (l *Latest) Samples() []int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	if l.paused {
		return nil
	}
	return l.buf
}

// Pause makes Samples report nothing until Resume.
func (l *Latest) Pause() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.paused = true
}

// Resume undoes Pause.
func (l *Latest) Resume() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.paused = false
}

// Paused reports whether the holder is paused.
func (l *Latest) Paused() bool {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.paused
}

// Published returns the number of buffers published so far.
func (l *Latest) Published() uint64 {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.published
}
