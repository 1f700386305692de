// SPDX-License-Identifier: MIT
// Package: lvrange/steprange
//
// sequence.go — the lazy, pull-based sequence returned by the builders.
//
// Design:
//   • Explicit state machine: (current value, started, done) plus two
//     closures (advance, stop). No goroutines, no channels.
//   • The successor of an emitted value is computed only when the next
//     element is requested; abandoning a sequence costs nothing.
//   • A Sequence is consumed once, forward-only, by a single goroutine.

package steprange

import "iter"

// Sequence is a lazily produced, ordered series of Items.
// It always holds at least one element. It is not safe for concurrent use;
// distinct sequences never share state.
type Sequence[T any] struct {
	cur     T
	dir     Direction
	bounded bool
	started bool
	done    bool

	// advance returns the successor of v; nil for a single-element sequence.
	advance func(v T) T
	// stop reports whether next must not be emitted after prev; nil for an
	// unbounded sequence.
	stop func(prev, next T) bool
}

// single returns the one-element sequence [v].
func single[T any](v T) *Sequence[T] {
	return &Sequence[T]{cur: v, bounded: true}
}

// Next returns the next element and true, or the zero value and false once
// the sequence is exhausted.
//
// Complexity: O(1) — at most one add and two compares.
func (s *Sequence[T]) Next() (T, bool) {
	var zero T
	if s.done {
		return zero, false
	}
	if !s.started {
		s.started = true
		return s.cur, true
	}
	if s.advance == nil {
		s.done = true
		return zero, false
	}

	next := s.advance(s.cur)
	if s.stop != nil && s.stop(s.cur, next) {
		s.done = true
		return zero, false
	}
	s.cur = next

	return next, true
}

// Take consumes and returns up to n elements. n <= 0 returns nil.
func (s *Sequence[T]) Take(n int) []T {
	if n <= 0 {
		return nil
	}
	out := make([]T, 0, min(n, 16))
	for len(out) < n {
		v, ok := s.Next()
		if !ok {
			break
		}
		out = append(out, v)
	}

	return out
}

// Collect consumes the remaining elements into a slice.
// Returns ErrUnbounded, consuming nothing, for a sequence without an end.
func (s *Sequence[T]) Collect() ([]T, error) {
	if !s.bounded {
		return nil, rangeErrorf(MethodCollect, ErrUnbounded, "use Take to read a prefix")
	}
	var out []T
	for v, ok := s.Next(); ok; v, ok = s.Next() {
		out = append(out, v)
	}

	return out, nil
}

// All adapts the sequence to range-over-func. Iterating consumes it;
// breaking out early leaves the remaining elements for a later Next.
//
//	for v := range seq.All() { ... }
func (s *Sequence[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for v, ok := s.Next(); ok; v, ok = s.Next() {
			if !yield(v) {
				return
			}
		}
	}
}

// Bounded reports whether the sequence terminates on its own. Single-element
// sequences are bounded, including degenerate infinite ones.
func (s *Sequence[T]) Bounded() bool {
	return s.bounded
}

// Direction reports the direction of travel. Single-element sequences
// report Forward.
func (s *Sequence[T]) Direction() Direction {
	return s.dir
}
