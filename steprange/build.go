package steprange

// Build returns a finite range constructor closing over the four domain
// operations.
//
// Algorithm (per call of the returned RangeFunc):
//  1. validate(start) and validate(end); either false → ErrInvalidEndpoint.
//  2. compare(start, end) == Equal → [start], whatever the step.
//  3. Classify the raw step: compare(start, add(start, step)).
//     If Equal, classify negate(step) as well; Equal again means the step is
//     degenerate in both signs → [start], even when start != end.
//  4. Direction: start < end → Forward, start > end → Backward.
//  5. Pick the first of step, negate(step) that moves in that direction;
//     neither does → ErrInvalidEndpoint.
//  6. Return a lazy sequence emitting start, start+s, start+2s, ... and
//     stopping before the first value that passes end.
//
// The sign of step is irrelevant whenever one sign works: (10, 5, 1) and
// (10, 5, -1) both yield 10 9 8 7 6 5. A step that does not divide the
// distance stops at the last value not passing end: (2, 5, 2) → 2 4.
//
// Note the degenerate case in step 3: Build's result for (1, 9, 0) over
// integers is [1]. The end is dropped rather than rejected.
//
// Panics if any operation is nil.
//
// Complexity: O(1) per construction, O(1) per element.
func Build[T, S any](
	validate ValidateFunc[T],
	negate NegateFunc[S],
	add AddFunc[T, S],
	compare CompareFunc[T],
) RangeFunc[T, S] {
	switch {
	case validate == nil:
		panic("steprange: Build(nil validate)")
	case negate == nil:
		panic("steprange: Build(nil negate)")
	case add == nil:
		panic("steprange: Build(nil add)")
	case compare == nil:
		panic("steprange: Build(nil compare)")
	}

	return func(start, end T, step S) (*Sequence[T], error) {
		if !validate(start) {
			return nil, rangeErrorf(MethodBuild, ErrInvalidEndpoint, "start %v fails validation", start)
		}
		if !validate(end) {
			return nil, rangeErrorf(MethodBuild, ErrInvalidEndpoint, "end %v fails validation", end)
		}

		// Equal endpoints win over any step inspection.
		span := compare(start, end)
		if span == Equal {
			return single(start), nil
		}

		raw := compare(start, add(start, step))
		var (
			negated   S
			negMove   = Equal
			negTested bool
		)
		classifyNegated := func() Ordering {
			if !negTested {
				negated = negate(step)
				negMove = compare(start, add(start, negated))
				negTested = true
			}
			return negMove
		}

		if raw == Equal && classifyNegated() == Equal {
			return single(start), nil
		}

		// compare(start, next) == LessThan means next lies ahead of start,
		// i.e. the step moves Forward; GreaterThan means Backward.
		dir, want := Forward, LessThan
		if span == GreaterThan {
			dir, want = Backward, GreaterThan
		}

		var chosen S
		switch {
		case raw == want:
			chosen = step
		case classifyNegated() == want:
			chosen = negated
		default:
			return nil, rangeErrorf(MethodBuild, ErrInvalidEndpoint,
				"step %v cannot move %s from %v to %v", step, dir, start, end)
		}

		return bounded(start, end, chosen, dir, add, compare), nil
	}
}

// bounded wires the finite stop rule: Forward ends once a value compares
// GreaterThan end, Backward once it compares LessThan end.
func bounded[T, S any](start, end T, step S, dir Direction, add AddFunc[T, S], compare CompareFunc[T]) *Sequence[T] {
	past := GreaterThan
	if dir == Backward {
		past = LessThan
	}

	return &Sequence[T]{
		cur:     start,
		dir:     dir,
		bounded: true,
		advance: func(v T) T { return add(v, step) },
		stop: func(prev, next T) bool {
			return !progresses(compare(prev, next), dir) || compare(next, end) == past
		},
	}
}

// progresses reports whether prev→next, summarized as compare(prev, next),
// moved strictly in direction dir.
func progresses(o Ordering, dir Direction) bool {
	if dir == Forward {
		return o == LessThan
	}

	return o == GreaterThan
}
