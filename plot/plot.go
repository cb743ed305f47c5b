// Package plot draws the daily income and expense series of a query.
//
// Two collaborators are available: a spreadsheet with a line chart, and a
// chart drawn directly in the terminal.
package plot

import (
	"errors"
	"time"

	"github.com/etnz/finance"
)

// ErrNothingToPlot is returned when the series have no day at all.
var ErrNothingToPlot = errors.New("nothing to plot: the date range is empty")

// Plotter draws the income and expense series on a shared date axis.
type Plotter interface {
	Plot(income, expense finance.Series) error
}

// days returns the dates common to both series. Both series are expected to
// cover the same range, one point per day.
func days(income, expense finance.Series) ([]finance.Date, error) {
	s := income
	if expense.Len() > s.Len() {
		s = expense
	}
	if s.Len() == 0 {
		return nil, ErrNothingToPlot
	}
	dates := make([]finance.Date, 0, s.Len())
	for _, p := range s.Points {
		dates = append(dates, p.Date)
	}
	return dates, nil
}

// values returns the amount per date, zero when the series misses a date.
func values(s finance.Series, dates []finance.Date) []float64 {
	perDay := make(map[finance.Date]float64, s.Len())
	for _, p := range s.Points {
		perDay[p.Date] = p.Amount.InexactFloat64()
	}
	v := make([]float64, len(dates))
	for i, d := range dates {
		v[i] = perDay[d]
	}
	return v
}

func toTime(d finance.Date) time.Time {
	return time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, time.UTC)
}
