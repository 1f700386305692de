// SPDX-License-Identifier: MIT
// Package: lvrange/steprange
//
// types.go — operation signatures, Ordering and Direction tags.
//
// Contract:
//   • Operations are supplied once per builder and never mutated.
//   • Correctness assumes deterministic operations consistent with a
//     total order; the package does not verify this.

package steprange

// Ordering is the outcome of comparing two Items.
type Ordering int

const (
	// LessThan reports a < b.
	LessThan Ordering = -1
	// Equal reports a == b under the caller's order.
	Equal Ordering = 0
	// GreaterThan reports a > b.
	GreaterThan Ordering = 1
)

// String implements fmt.Stringer.
func (o Ordering) String() string {
	switch o {
	case LessThan:
		return "LessThan"
	case Equal:
		return "Equal"
	case GreaterThan:
		return "GreaterThan"
	default:
		return "Ordering(?)"
	}
}

// Direction tells whether a sequence walks towards greater Items (Forward)
// or towards smaller Items (Backward), as judged by the compare operation.
type Direction int

const (
	// Forward walks from smaller to larger Items.
	Forward Direction = iota
	// Backward walks from larger to smaller Items.
	Backward
)

// String implements fmt.Stringer.
func (d Direction) String() string {
	if d == Backward {
		return "Backward"
	}

	return "Forward"
}

// ValidateFunc reports whether an Item may be used as an endpoint.
type ValidateFunc[T any] func(item T) bool

// NegateFunc returns the opposite of a step.
type NegateFunc[S any] func(step S) S

// AddFunc applies a step to an Item, producing the next Item.
type AddFunc[T, S any] func(item T, step S) T

// CompareFunc orders two Items.
type CompareFunc[T any] func(a, b T) Ordering

// FromCmp adapts a three-way int comparison (cmp.Compare, strings.Compare,
// time.Time.Compare and friends) to a CompareFunc.
// Panics on nil.
func FromCmp[T any](fn func(a, b T) int) CompareFunc[T] {
	if fn == nil {
		panic("steprange: FromCmp(nil)")
	}

	return func(a, b T) Ordering {
		switch c := fn(a, b); {
		case c < 0:
			return LessThan
		case c > 0:
			return GreaterThan
		default:
			return Equal
		}
	}
}

// RangeFunc builds a finite sequence from start to end (inclusive where
// reachable) using step, or fails with ErrInvalidEndpoint.
type RangeFunc[T, S any] func(start, end T, step S) (*Sequence[T], error)

// InfiniteFunc builds an unbounded sequence start, start+step, ...
// or fails with ErrInvalidEndpoint.
type InfiniteFunc[T, S any] func(start T, step S) (*Sequence[T], error)

// Ops groups the four operations of a domain.
//
// Fields:
//   - Validate — endpoint gate; false aborts construction.
//   - Negate   — step negation; required by Range only.
//   - Add      — applies a step to an Item.
//   - Compare  — total order on Items.
//
// Example:
//
//	ops := steprange.Ops[int, int]{
//	  Validate: func(int) bool { return true },
//	  Negate:   func(s int) int { return -s },
//	  Add:      func(a, s int) int { return a + s },
//	  Compare:  steprange.FromCmp(cmp.Compare[int]),
//	}
//	seq, err := ops.Range()(10, 5, 1) // 10 9 8 7 6 5
type Ops[T, S any] struct {
	Validate ValidateFunc[T]
	Negate   NegateFunc[S]
	Add      AddFunc[T, S]
	Compare  CompareFunc[T]
}

// Range is Build(o.Validate, o.Negate, o.Add, o.Compare).
func (o Ops[T, S]) Range() RangeFunc[T, S] {
	return Build(o.Validate, o.Negate, o.Add, o.Compare)
}

// Infinite is BuildInfinite(o.Validate, o.Add, o.Compare). Negate is unused
// and may be nil.
func (o Ops[T, S]) Infinite() InfiniteFunc[T, S] {
	return BuildInfinite(o.Validate, o.Add, o.Compare)
}
