/*
Package temporal generates lazy sequences of calendar intervals.

A Seq describes a recurring stretch of time — every day, every
Thursday, every February — independent of any concrete date. Applying
it to a reference time yields a Stream, a pull-based generator of
concrete Ranges moving forward from the reference. The first range of
every stream ends after the reference time, so "Thursday" evaluated on
a Thursday means today.

Sequences compose: Nth picks a sub-interval of every instance of an
enclosing sequence ("the 3rd day of every month"), Intersect narrows
one sequence by another ("Mondays in September"). Streams may be
infinite; callers pull as many ranges as they need.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2023–2026 The gramercy authors
*/
package temporal

import (
	"fmt"
	"time"

	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'gramercy.temporal'.
func tracer() tracing.Trace {
	return tracing.Select("gramercy.temporal")
}

// Grain is the calendar resolution of a Range.
type Grain int

// Granularity values.
const (
	Day Grain = iota
	Month
	Year
)

func (g Grain) String() string {
	switch g {
	case Day:
		return "day"
	case Month:
		return "month"
	case Year:
		return "year"
	}
	return fmt.Sprintf("grain(%d)", int(g))
}

// Range is one concrete interval: half-open, End exclusive.
type Range struct {
	Start time.Time
	End   time.Time
	Grain Grain
}

// Duration returns the length of the interval.
func (r Range) Duration() time.Duration {
	return r.End.Sub(r.Start)
}

func (r Range) String() string {
	return fmt.Sprintf("[%s…%s)/%s", r.Start.Format("2006-01-02"),
		r.End.Format("2006-01-02"), r.Grain)
}

// Stream is a pull-based generator of ranges, forward-only. A false
// return means the stream is exhausted and stays exhausted.
type Stream func() (Range, bool)

// Seq generates, for a reference time, the stream of its instances
// at and after that reference.
type Seq func(ref time.Time) Stream

// Days is the sequence of calendar days.
func Days() Seq {
	return func(ref time.Time) Stream {
		tm := StartOfDay(ref)
		n := 0
		return func() (Range, bool) {
			r := Range{
				Start: DateAdd(tm, 0, 0, n),
				End:   DateAdd(tm, 0, 0, n+1),
				Grain: Day,
			}
			n++
			return r, true
		}
	}
}

// DayOfWeek is the sequence of all days falling on the given weekday.
func DayOfWeek(w time.Weekday) Seq {
	return func(ref time.Time) Stream {
		tm := StartOfDay(ref)
		for tm.Weekday() != w {
			tm = DateAdd(tm, 0, 0, 1)
		}
		n := 0
		return func() (Range, bool) {
			r := Range{
				Start: DateAdd(tm, 0, 0, 7*n),
				End:   DateAdd(tm, 0, 0, 7*n+1),
				Grain: Day,
			}
			n++
			return r, true
		}
	}
}

// Months is the sequence of calendar months.
func Months() Seq {
	return func(ref time.Time) Stream {
		tm := StartOfMonth(ref)
		return func() (Range, bool) {
			t0 := tm
			tm = StartOfNextMonth(tm)
			return Range{Start: t0, End: tm, Grain: Month}, true
		}
	}
}

// MonthOfYear is the sequence of all months with the given name.
func MonthOfYear(m time.Month) Seq {
	return func(ref time.Time) Stream {
		tm := StartOfMonth(ref)
		return func() (Range, bool) {
			for tm.Month() != m {
				tm = StartOfNextMonth(tm)
			}
			t0 := tm
			tm = StartOfNextMonth(tm)
			return Range{Start: t0, End: tm, Grain: Month}, true
		}
	}
}

// Years is the sequence of calendar years.
func Years() Seq {
	return func(ref time.Time) Stream {
		tm := time.Date(ref.Year(), time.January, 1, 0, 0, 0, 0, ref.Location())
		return func() (Range, bool) {
			t0 := tm
			tm = StartOfNextYear(tm)
			return Range{Start: t0, End: tm, Grain: Year}, true
		}
	}
}
