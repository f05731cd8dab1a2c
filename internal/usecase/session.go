package usecase

import "sync/atomic"

// SearchSession tracks a monotonically increasing search generation. Each
// user-triggered search conceptually supersedes the previous one: a result
// is applied only if no newer search started while it was in flight, so a
// slow early response can never overwrite a later one.
type SearchSession struct {
	generation atomic.Uint64
}

// NewSearchSession creates a session starting at generation zero.
func NewSearchSession() *SearchSession {
	return &SearchSession{}
}

// Begin starts a new search and returns its generation id. Any search with
// a lower generation becomes stale immediately.
func (s *SearchSession) Begin() uint64 {
	return s.generation.Add(1)
}

// Current returns the most recently started generation.
func (s *SearchSession) Current() uint64 {
	return s.generation.Load()
}

// IsCurrent reports whether the given generation is still the latest.
func (s *SearchSession) IsCurrent(gen uint64) bool {
	return s.generation.Load() == gen
}
