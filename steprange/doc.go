// Package steprange builds lazy, stepped sequences ("ranges") between two
// values of any type, given four caller-supplied primitives.
//
// 🚀 What is a step range?
//
//	The familiar integer range 1..10 generalized to any totally ordered
//	domain for which "add a step" and "compare" make sense: integers,
//	floats, single characters, timestamps, custom domain values.
//
// ✨ Key features:
//   - direction inference: the sign of the step is corrected automatically,
//     so (10, 5, 1) walks 10,9,8,7,6,5;
//   - never empty: every successful construction yields at least the start;
//   - lazy: one add and one compare per element pulled, nothing precomputed;
//   - finite (Build) and unbounded (BuildInfinite) modes;
//   - one error kind, ErrInvalidEndpoint, reported before any element.
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/lvrange/steprange"
//
//	rng := steprange.Build(
//		func(int) bool { return true },              // validate
//		func(s int) int { return -s },               // negate step
//		func(a, s int) int { return a + s },         // add
//		steprange.FromCmp(cmp.Compare[int]),         // compare
//	)
//
//	seq, err := rng(2, 5, -2) // step corrected to +2
//	if err != nil {
//		// errors.Is(err, steprange.ErrInvalidEndpoint)
//	}
//	for v := range seq.All() {
//		fmt.Println(v) // 2, 4
//	}
//
// Degenerate steps:
//
//	A step that is a no-op in both signs (add(start, step) and
//	add(start, negate(step)) both compare Equal to start) yields the single
//	element [start] even when end differs from start. The endpoint is
//	silently discarded; this is kept for compatibility.
//
// Complexity:
//
//   - Construction: O(1), at most 2 validate, 2 add, 1 negate, 3 compare.
//   - Iteration:    O(1) per element (1 add, 2 compare).
//   - Memory:       O(1) per sequence.
//
// Ready-made operation bundles for common domains live in package stepops.
package steprange
