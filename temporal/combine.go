package temporal

import "time"

// Combinators over sequences. Both take the sequences they combine as
// values; neither mutates its inputs.

// Nth picks the n-th instance (1-based) of win inside every instance
// of the enclosing sequence within: Nth(3, Days(), Months(), fuse) is
// the 3rd day of every month. Instances of within that do not fully
// contain an n-th sub-interval are skipped.
//
// fuse bounds how many instances of within a stream will examine over
// its lifetime. Combinations that can never produce a hit ("the 32nd
// day of a month") would otherwise search forever; when the bound is
// reached the stream reports exhaustion. The bound is deliberately a
// parameter, chosen by the caller per use, not a package constant.
//
// Win instances must not be longer than within instances; that is a
// configuration error and panics at combinator-build time.
func Nth(n int, win, within Seq, fuse int) Seq {
	if n < 1 {
		panic("temporal: Nth index must be 1 or greater")
	}
	probe := time.Date(2000, time.January, 1, 0, 0, 0, 0, time.UTC)
	w, _ := win(probe)()
	enclosing, _ := within(probe)()
	if w.Duration() > enclosing.Duration() {
		panic("temporal: Nth window is longer than its enclosing sequence")
	}
	return func(ref time.Time) Stream {
		outer := within(ref)
		first, _ := within(ref)()
		align := first.Start
		iterations := 0
		return func() (Range, bool) {
			for iterations < fuse {
				iterations++
				o, ok := outer()
				if !ok {
					return Range{}, false
				}
				// Restart win from the alignment point for every
				// outer instance; a running window stream could have
				// overflowed the previous instance and skipped hits.
				inner := win(align)
				x, ok := inner()
				for ok && x.Start.Before(o.Start) {
					x, ok = inner()
				}
				for k := 1; ok && k < n; k++ {
					x, ok = inner()
				}
				if !ok {
					continue
				}
				if !x.Start.Before(o.Start) && !x.End.After(o.End) && !x.End.Before(ref) {
					return x, true
				}
			}
			tracer().Debugf("sequence fused after %d instances", fuse)
			return Range{}, false
		}
	}
}

// Intersect narrows one sequence by another, yielding every instance
// of the finer-grained sequence that falls entirely inside an instance
// of the coarser one: Intersect(DayOfWeek(time.Monday),
// MonthOfYear(time.September)) is every Monday in September. Which
// argument is the finer one is decided by comparing first-instance
// durations.
func Intersect(a, b Seq) Seq {
	return func(ref time.Time) Stream {
		x, _ := a(ref)()
		y, _ := b(ref)()
		inner, outer := a, b
		if y.Duration() < x.Duration() {
			inner, outer = b, a
		}
		outerStream := outer(ref)
		var innerStream Stream
		var o Range
		active := false
		return func() (Range, bool) {
			for {
				if !active {
					var ok bool
					o, ok = outerStream()
					if !ok {
						return Range{}, false
					}
					innerStream = inner(ref)
					active = true
				}
				for {
					r, ok := innerStream()
					if !ok {
						active = false
						break
					}
					if r.Start.Before(o.Start) {
						continue
					}
					if r.End.After(o.End) {
						active = false
						break
					}
					return r, true
				}
			}
		}
	}
}
