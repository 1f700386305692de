package steprange

// BuildInfinite returns an unbounded range constructor. There is no end and
// no negation: the step is applied as given, forever.
//
// Per call of the returned InfiniteFunc:
//  1. validate(start) false → ErrInvalidEndpoint.
//  2. compare(start, add(start, step)) == Equal → [start]. A walk that never
//     progresses collapses to one element instead of repeating start.
//  3. Otherwise start, start+step, start+2·step, ... with no stop rule.
//     The step is applied as is after the first element: a wrapping add
//     (a clock, modular integers) keeps cycling.
//
// The caller bounds consumption (Take, or breaking out of All). Collect
// reports ErrUnbounded rather than running forever.
//
// Panics if any operation is nil.
func BuildInfinite[T, S any](
	validate ValidateFunc[T],
	add AddFunc[T, S],
	compare CompareFunc[T],
) InfiniteFunc[T, S] {
	switch {
	case validate == nil:
		panic("steprange: BuildInfinite(nil validate)")
	case add == nil:
		panic("steprange: BuildInfinite(nil add)")
	case compare == nil:
		panic("steprange: BuildInfinite(nil compare)")
	}

	return func(start T, step S) (*Sequence[T], error) {
		if !validate(start) {
			return nil, rangeErrorf(MethodBuildInfinite, ErrInvalidEndpoint, "start %v fails validation", start)
		}

		move := compare(start, add(start, step))
		if move == Equal {
			return single(start), nil
		}
		dir := Forward
		if move == GreaterThan {
			dir = Backward
		}

		return &Sequence[T]{
			cur:     start,
			dir:     dir,
			advance: func(v T) T { return add(v, step) },
		}, nil
	}
}
