package stepops

import (
	"cmp"
	"math"
	"time"
	"unicode/utf8"

	"golang.org/x/exp/constraints"

	"github.com/katalvlaran/lvrange/steprange"
)

// Compare orders two values by their natural order.
func Compare[T cmp.Ordered](a, b T) steprange.Ordering {
	return steprange.Ordering(cmp.Compare(a, b))
}

// Accept is a validator that accepts every value.
func Accept[T any](T) bool { return true }

// Integer returns the operations of integer type T with a step of type T.
func Integer[T constraints.Integer]() steprange.Ops[T, T] {
	return steprange.Ops[T, T]{
		Validate: Accept[T],
		Negate:   func(s T) T { return -s },
		Add:      func(a, s T) T { return a + s },
		Compare:  Compare[T],
	}
}

// Float returns the operations of float type T. Endpoints must be finite;
// NaN would break the total order.
func Float[T constraints.Float]() steprange.Ops[T, T] {
	return steprange.Ops[T, T]{
		Validate: func(v T) bool {
			f := float64(v)
			return !math.IsNaN(f) && !math.IsInf(f, 0)
		},
		Negate:  func(s T) T { return -s },
		Add:     func(a, s T) T { return a + s },
		Compare: Compare[T],
	}
}

// UTF-16 surrogate block; not valid code points on their own.
const (
	surrogateMin  rune = 0xD800
	surrogateMax  rune = 0xDFFF
	surrogateSpan      = surrogateMax - surrogateMin + 1
)

// Rune returns the operations of Unicode code points stepped by an int.
// Steps skip the surrogate block, so U+D7FF + 1 is U+E000.
func Rune() steprange.Ops[rune, int] {
	return steprange.Ops[rune, int]{
		Validate: utf8.ValidRune,
		Negate:   negInt,
		Add:      addCodePoint,
		Compare:  Compare[rune],
	}
}

// Char returns the operations of one-character strings stepped by an int.
// Comparison is by code point; steps skip the surrogate block as in Rune.
func Char() steprange.Ops[string, int] {
	return steprange.Ops[string, int]{
		Validate: isChar,
		Negate:   negInt,
		Add: func(c string, s int) string {
			r, _ := utf8.DecodeRuneInString(c)
			return string(addCodePoint(r, s))
		},
		Compare: func(a, b string) steprange.Ordering {
			ra, _ := utf8.DecodeRuneInString(a)
			rb, _ := utf8.DecodeRuneInString(b)
			return Compare(ra, rb)
		},
	}
}

// Time returns the operations of time instants stepped by a duration.
// The zero time is rejected as an endpoint.
func Time() steprange.Ops[time.Time, time.Duration] {
	return steprange.Ops[time.Time, time.Duration]{
		Validate: func(t time.Time) bool { return !t.IsZero() },
		Negate:   func(d time.Duration) time.Duration { return -d },
		Add:      time.Time.Add,
		Compare:  steprange.FromCmp(time.Time.Compare),
	}
}

func negInt(s int) int { return -s }

// addCodePoint adds s to r as if the surrogate block did not exist.
func addCodePoint(r rune, s int) rune {
	n := r + rune(s)
	switch {
	case r < surrogateMin && n >= surrogateMin:
		n += surrogateSpan
	case r > surrogateMax && n <= surrogateMax:
		n -= surrogateSpan
	}

	return n
}

// isChar reports whether s holds exactly one valid code point.
func isChar(s string) bool {
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 || size != len(s) {
		return false
	}

	return r != utf8.RuneError || size > 1
}
