package finance

import (
	"fmt"
	"strings"
)

// Period is a calendar unit used to select a range ending on a date, or to
// break a range down.
type Period int

const (
	Daily Period = iota
	Weekly
	Monthly
	Quarterly
	Yearly
)

// Periods lists every period, shortest first.
var Periods = []Period{Daily, Weekly, Monthly, Quarterly, Yearly}

var periodNames = [...]string{
	Daily:     "day",
	Weekly:    "week",
	Monthly:   "month",
	Quarterly: "quarter",
	Yearly:    "year",
}

// Name returns the singular noun of the period, as accepted on the command
// line: "day", "week", "month", "quarter" or "year".
func (p Period) Name() string {
	if p < Daily || p > Yearly {
		return "period"
	}
	return periodNames[p]
}

// Range returns the whole period containing d, e.g. the month of d.
func (p Period) Range(d Date) Range {
	return Range{From: d.StartOf(p), To: d.EndOf(p)}
}

// ParsePeriod parses a period name, case-insensitive. The adjective forms
// ("monthly") are accepted too.
func ParsePeriod(s string) (Period, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for _, p := range Periods {
		if name == p.Name() || name == p.adjective() {
			return p, nil
		}
	}
	names := make([]string, len(Periods))
	for i, p := range Periods {
		names[i] = p.Name()
	}
	return Daily, fmt.Errorf("unknown period %q, want one of %s", s, strings.Join(names, ", "))
}

func (p Period) adjective() string {
	if p == Daily {
		return "daily"
	}
	return p.Name() + "ly"
}
