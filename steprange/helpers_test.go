package steprange_test

import (
	"cmp"

	"github.com/katalvlaran/lvrange/steprange"
)

// intOps is the plain integer domain used across tests.
func intOps() steprange.Ops[int, int] {
	return steprange.Ops[int, int]{
		Validate: func(int) bool { return true },
		Negate:   func(s int) int { return -s },
		Add:      func(a, s int) int { return a + s },
		Compare:  steprange.FromCmp(cmp.Compare[int]),
	}
}

// countingOps wraps intOps and counts add and negate calls.
type countingOps struct {
	adds, negates int
}

func (c *countingOps) ops() steprange.Ops[int, int] {
	base := intOps()
	return steprange.Ops[int, int]{
		Validate: base.Validate,
		Negate: func(s int) int {
			c.negates++
			return base.Negate(s)
		},
		Add: func(a, s int) int {
			c.adds++
			return base.Add(a, s)
		},
		Compare: base.Compare,
	}
}

// collect drains a bounded sequence and panics on misuse; tests only.
func collect[T any](seq *steprange.Sequence[T]) []T {
	out, err := seq.Collect()
	if err != nil {
		panic(err)
	}
	return out
}
