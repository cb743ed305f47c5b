package plot

import (
	"bytes"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/etnz/finance"
	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
)

func series() (income, expense finance.Series) {
	tx := func(on string, amount string, c finance.Category) finance.Transaction {
		return finance.NewTransaction(finance.MustParse(on), decimal.RequireFromString(amount), c, "")
	}
	txs := []finance.Transaction{
		tx("01-01-2025", "100", finance.Income),
		tx("02-01-2025", "40", finance.Expense),
		tx("04-01-2025", "12.5", finance.Expense),
	}
	q := finance.Query(txs, finance.NewRange(finance.MustParse("01-01-2025"), finance.MustParse("05-01-2025")))
	return q.Series()
}

func emptySeries() (income, expense finance.Series) {
	q := finance.Query(nil, finance.NewRange(finance.MustParse("05-01-2025"), finance.MustParse("01-01-2025")))
	return q.Series()
}

func TestXLSX_Plot(t *testing.T) {
	path := filepath.Join(t.TempDir(), "chart.xlsx")
	income, expense := series()

	var p Plotter = XLSX{Path: path}
	if err := p.Plot(income, expense); err != nil {
		t.Fatalf("Plot() unexpected error: %v", err)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		t.Fatalf("cannot open workbook: %v", err)
	}
	defer f.Close()

	rows, err := f.GetRows(SheetName)
	if err != nil {
		t.Fatalf("GetRows() unexpected error: %v", err)
	}
	if len(rows) != 6 {
		t.Fatalf("workbook has %d rows, want a header and 5 days", len(rows))
	}
	want := [][]string{
		{"Date", "Income", "Expense"},
		{"01-01-2025", "100", "0"},
		{"02-01-2025", "0", "40"},
		{"03-01-2025", "0", "0"},
		{"04-01-2025", "0", "12.5"},
		{"05-01-2025", "0", "0"},
	}
	for i := range want {
		if strings.Join(rows[i], ",") != strings.Join(want[i], ",") {
			t.Errorf("row #%d = %v, want %v", i, rows[i], want[i])
		}
	}
}

func TestTerminal_Plot(t *testing.T) {
	var buf bytes.Buffer
	income, expense := series()

	var p Plotter = Terminal{Out: &buf, Width: 60, Height: 12}
	if err := p.Plot(income, expense); err != nil {
		t.Fatalf("Plot() unexpected error: %v", err)
	}
	got := buf.String()
	if !strings.Contains(got, "income") || !strings.Contains(got, "expense") {
		t.Errorf("Plot() output has no legend:\n%s", got)
	}
	if !strings.Contains(got, "01-01-2025 to 05-01-2025") {
		t.Errorf("Plot() output has no date range:\n%s", got)
	}
	if lines := strings.Count(got, "\n"); lines < 12 {
		t.Errorf("Plot() drew %d lines, want at least the chart height", lines)
	}
}

func TestTerminal_Plot_SingleDay(t *testing.T) {
	var buf bytes.Buffer
	q := finance.Query(nil, finance.NewRange(finance.MustParse("01-01-2025"), finance.MustParse("01-01-2025")))
	income, expense := q.Series()

	if err := (Terminal{Out: &buf}).Plot(income, expense); err != nil {
		t.Fatalf("Plot() unexpected error: %v", err)
	}
}

func TestPlot_NothingToPlot(t *testing.T) {
	income, expense := emptySeries()
	var buf bytes.Buffer
	for name, p := range map[string]Plotter{
		"xlsx":     XLSX{Path: filepath.Join(t.TempDir(), "chart.xlsx")},
		"terminal": Terminal{Out: &buf},
	} {
		if err := p.Plot(income, expense); !errors.Is(err, ErrNothingToPlot) {
			t.Errorf("%s: Plot() error = %v, want %v", name, err, ErrNothingToPlot)
		}
	}
	if buf.Len() != 0 {
		t.Errorf("terminal plotter wrote %q on error", buf.String())
	}
}
