package plot

import (
	"fmt"
	"io"
	"math"

	tslc "github.com/NimbleMarkets/ntcharts/linechart/timeserieslinechart"
	"github.com/charmbracelet/lipgloss"
	"github.com/etnz/finance"
	"github.com/shopspring/decimal"
)

const (
	colorGreen lipgloss.Color = "#a6e3a1"
	colorRed   lipgloss.Color = "#f38ba8"
)

const (
	incomeDataSet  = "income"
	expenseDataSet = "expense"
)

// Terminal draws the series as a braille line chart.
type Terminal struct {
	Out    io.Writer
	Width  int  // in columns, 80 when zero
	Height int  // in rows, 16 when zero
	Color  bool // green income, red expense
}

// Plot draws the chart and its legend to t.Out.
func (t Terminal) Plot(income, expense finance.Series) error {
	dates, err := days(income, expense)
	if err != nil {
		return err
	}
	in, out := values(income, dates), values(expense, dates)

	width, height := t.Width, t.Height
	if width <= 0 {
		width = 80
	}
	if height <= 0 {
		height = 16
	}

	incomeStyle, expenseStyle := lipgloss.NewStyle(), lipgloss.NewStyle()
	if t.Color {
		incomeStyle = incomeStyle.Foreground(colorGreen)
		expenseStyle = expenseStyle.Foreground(colorRed)
	}

	start, end := toTime(dates[0]), toTime(dates[len(dates)-1])
	if !end.After(start) {
		end = start.AddDate(0, 0, 1)
	}
	yMax := math.Max(1, decimal.Max(income.Max(), expense.Max()).InexactFloat64())

	chart := tslc.New(width, height)
	chart.SetTimeRange(start, end)
	chart.SetViewTimeRange(start, end)
	chart.SetYRange(0, yMax)
	chart.SetViewYRange(0, yMax)
	chart.SetXStep(1)
	chart.SetDataSetStyle(incomeDataSet, incomeStyle)
	chart.SetDataSetStyle(expenseDataSet, expenseStyle)
	for i, d := range dates {
		chart.PushDataSet(incomeDataSet, tslc.TimePoint{Time: toTime(d), Value: in[i]})
		chart.PushDataSet(expenseDataSet, tslc.TimePoint{Time: toTime(d), Value: out[i]})
	}
	chart.DrawBrailleAll()

	if _, err := fmt.Fprintln(t.Out, chart.View()); err != nil {
		return err
	}
	_, err = fmt.Fprintf(t.Out, "%s income   %s expense   (%s to %s)\n",
		incomeStyle.Render("⣿⣿"), expenseStyle.Render("⣿⣿"), dates[0], dates[len(dates)-1])
	return err
}
