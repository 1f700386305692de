// Package lvrange is a small toolkit for lazy, stepped ranges over any
// ordered domain: integers, floats, characters, timestamps or your own types.
//
// 🚀 What is lvrange?
//
//	The 1..10 of other languages, generalized. You describe a domain with
//	four operations (validate, negate a step, add a step, compare) and get
//	back a constructor that turns (start, end, step) into a lazy sequence.
//
// ✨ Why lvrange?
//
//   - Direction inference: the step's sign is fixed for you
//   - Never empty: a successful range always holds its start
//   - Lazy: one add per element pulled, no precomputed slices
//   - Pure Go – no cgo, generics and iter.Seq throughout
//
// Packages:
//
//	steprange/   — the range builder: Build, BuildInfinite, Sequence
//	stepops/     — ready-made operation bundles (integers, floats, runes, chars, time)
//	cmd/lvrange/ — command-line front end
//
// Quick example:
//
//	seq, _ := stepops.Integer[int]().Range()(10, 5, 1)
//	fmt.Println(seq.Take(10)) // [10 9 8 7 6 5]
//
//	go get github.com/katalvlaran/lvrange/steprange
package lvrange
