package temporal

import "time"

// Calendar arithmetic helpers. These deliberately differ from
// time.AddDate, which normalizes overflowing dates (Jan 30 + 1 month
// becomes Mar 1 or 2). Recurring schedules want clamping instead:
// Jan 30 + 1 month is the last day of February.

// DaysInMonth returns the number of days of a month, honoring leap
// years.
func DaysInMonth(m time.Month, year int) int {
	dim := [12]int{31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}
	if m == time.February && year%4 == 0 && (year%100 != 0 || year%400 == 0) {
		return 29
	}
	return dim[m-1]
}

// DateAdd shifts a time by calendar days, months and years, in that
// order, clamping the day-of-month to the target month's length. The
// clock components are preserved. All offsets must be non-negative.
func DateAdd(t time.Time, years, months, days int) time.Time {
	if years < 0 || months < 0 || days < 0 {
		panic("temporal: DateAdd offsets must be non-negative")
	}
	day := t.Day()
	month := int(t.Month())
	year := t.Year()
	for days > 0 {
		diff := minInt(DaysInMonth(time.Month(month), year)-day, days)
		day += diff
		days -= diff
		if days > 0 {
			day = 0
			month++
			if month > 12 {
				year++
				month = 1
			}
		}
	}
	for months > 0 {
		diff := minInt(12-month, months)
		month += diff
		months -= diff
		if months > 0 {
			month = 0
			year++
		}
	}
	year += years
	if dim := DaysInMonth(time.Month(month), year); day > dim {
		day = dim
	}
	h, mi, s := t.Clock()
	return time.Date(year, time.Month(month), day, h, mi, s, t.Nanosecond(), t.Location())
}

// StartOfDay truncates a time to midnight.
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// StartOfMonth truncates a time to midnight of the first of its month.
func StartOfMonth(t time.Time) time.Time {
	y, m, _ := t.Date()
	return time.Date(y, m, 1, 0, 0, 0, 0, t.Location())
}

// StartOfNextMonth returns midnight of the first day of the following
// month.
func StartOfNextMonth(t time.Time) time.Time {
	y, m, _ := t.Date()
	if m == time.December {
		return time.Date(y+1, time.January, 1, 0, 0, 0, 0, t.Location())
	}
	return time.Date(y, m+1, 1, 0, 0, 0, 0, t.Location())
}

// StartOfNextYear returns midnight of January 1 of the following year.
func StartOfNextYear(t time.Time) time.Time {
	return time.Date(t.Year()+1, time.January, 1, 0, 0, 0, 0, t.Location())
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
