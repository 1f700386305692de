// Package stepops provides ready-made operation bundles for steprange.
//
// Each constructor returns a steprange.Ops value wiring validate, negate,
// add and compare for one domain:
//
//	Integer[T] — any integer type, step of the same type.
//	Float[T]   — float32/float64; NaN and ±Inf are rejected as endpoints.
//	Rune       — Unicode code points, int step; invalid code points rejected,
//	             steps skip the surrogate block.
//	Char       — one-character strings, int step.
//	Time       — time.Time instants, time.Duration step; zero time rejected.
//
// Usage:
//
//	seq, err := stepops.Integer[int]().Range()(10, 1, 3) // 10 7 4 1
//	word, err := stepops.Char().Range()("a", "f", 2)     // a c e
//
// Unsigned integers negate by two's complement wrap-around, which addition
// undoes, so (uint(5), uint(0), 1) still walks 5 4 3 2 1 0.
package stepops
