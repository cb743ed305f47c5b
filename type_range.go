package finance

import (
	"fmt"
	"iter"
	"time"
)

// Range represents a range of dates, both ends included.
//
// A Range whose From is after To is valid, it simply contains no day.
type Range struct{ From, To Date }

// NewRange creates a new date range.
func NewRange(from, to Date) Range {
	return Range{From: from, To: to}
}

// Contains return true date is included in the range (boundaries included)
func (r Range) Contains(date Date) bool { return !date.Before(r.From) && !date.After(r.To) }

// IsEmpty reports whether the range contains no day at all.
func (r Range) IsEmpty() bool { return r.From.After(r.To) }

// Days returns an iterator that yields each date within the range, inclusive.
func (r Range) Days() iter.Seq[Date] {
	return func(yield func(Date) bool) {
		for d := r.From; !d.After(r.To); d = d.Add(1) {
			if !yield(d) {
				return
			}
		}
	}
}

// Periods returns an iterator that yields each sequential range of a given
// period 'p' that contains at least one day within the original range 'r'.
func (r Range) Periods(p Period) iter.Seq[Range] {
	return func(yield func(Range) bool) {
		for current := r.From; !current.After(r.To); {
			periodRange := p.Range(current)
			if !yield(periodRange) {
				return
			}
			// Move to the day after the end of the yielded period to start the next iteration.
			current = periodRange.To.Add(1)
		}
	}
}

// Clip returns the intersection of r and x.
func (r Range) Clip(x Range) Range {
	if x.From.After(r.From) {
		r.From = x.From
	}
	if x.To.Before(r.To) {
		r.To = x.To
	}
	return r
}

// return the period of this range if it's a standard one.
func (r Range) Period() (p Period, ok bool) {
	switch {
	case r.From == r.To:
		return Daily, true
	case r.From.Weekday() == time.Monday && r.From.EndOf(Weekly) == r.To:
		return Weekly, true
	case r.From.Day() == 1 && r.From.EndOf(Monthly) == r.To:
		return Monthly, true
	case r.From.StartOf(Quarterly) == r.From && r.From.EndOf(Quarterly) == r.To:
		return Quarterly, true
	case r.From.StartOf(Yearly) == r.From && r.From.EndOf(Yearly) == r.To:
		return Yearly, true
	default:
		return Daily, false
	}
}

// Identifier compute a unique identifier for the Range.
// If the period is defined, use a short insighful name
func (r Range) Identifier() string {
	p, ok := r.Period()
	if !ok {
		return fmt.Sprintf("%s..%s", r.From, r.To)
	}

	switch p {
	case Daily:
		return r.From.String()
	case Weekly:
		_, week := r.From.time().ISOWeek()
		return fmt.Sprintf("%d-W%02d", r.From.Year(), week)
	case Monthly:
		return r.From.Format("January 2006")
	case Quarterly:
		return fmt.Sprintf("%d-Q%d", r.From.Year(), (r.From.Month()-1)/3+1)
	case Yearly:
		return r.From.Format("2006")
	default:
		panic("unknown period")
	}
}

func (r Range) String() string { return fmt.Sprintf("%s..%s", r.From, r.To) }
