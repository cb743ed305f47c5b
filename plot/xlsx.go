package plot

import (
	"fmt"
	"os"

	"github.com/etnz/finance"
	"github.com/xuri/excelize/v2"
)

// SheetName is the name of the data sheet of the workbook.
const SheetName = "Series"

// XLSX writes the series in a workbook, with a line chart next to the data.
type XLSX struct {
	Path string
}

// Plot writes the workbook to x.Path, replacing any existing file.
func (x XLSX) Plot(income, expense finance.Series) error {
	buf, err := SeriesXLSX(income, expense)
	if err != nil {
		return err
	}
	if err := os.WriteFile(x.Path, buf, 0o644); err != nil {
		return fmt.Errorf("cannot write chart: %w", err)
	}
	return nil
}

// SeriesXLSX returns the workbook content: one row per day with the income
// and expense amounts, and a two series line chart.
func SeriesXLSX(income, expense finance.Series) ([]byte, error) {
	dates, err := days(income, expense)
	if err != nil {
		return nil, err
	}
	in, out := values(income, dates), values(expense, dates)

	xlsx := excelize.NewFile()
	defer xlsx.Close()

	_ = xlsx.SetAppProps(&excelize.AppProperties{
		Application: "github.com/etnz/finance",
	})

	sheet := xlsx.GetSheetName(xlsx.GetActiveSheetIndex())
	if err := xlsx.SetSheetName(sheet, SheetName); err != nil {
		return nil, err
	}
	sheet = SheetName

	if err := xlsx.SetSheetRow(sheet, "A1", &[]any{"Date", "Income", "Expense"}); err != nil {
		return nil, err
	}
	for i, d := range dates {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, err
		}
		if err := xlsx.SetSheetRow(sheet, cell, &[]any{d.String(), in[i], out[i]}); err != nil {
			return nil, err
		}
	}
	_ = xlsx.SetColWidth(sheet, "A", "A", 12)

	last := len(dates) + 1
	categories := fmt.Sprintf("%s!$A$2:$A$%d", sheet, last)
	err = xlsx.AddChart(sheet, "E2", &excelize.Chart{
		Type: excelize.Line,
		Series: []excelize.ChartSeries{
			{
				Name:       fmt.Sprintf("%s!$B$1", sheet),
				Categories: categories,
				Values:     fmt.Sprintf("%s!$B$2:$B$%d", sheet, last),
			},
			{
				Name:       fmt.Sprintf("%s!$C$1", sheet),
				Categories: categories,
				Values:     fmt.Sprintf("%s!$C$2:$C$%d", sheet, last),
			},
		},
		Title: []excelize.RichTextRun{
			{Text: fmt.Sprintf("Income and expense from %s to %s", dates[0], dates[len(dates)-1])},
		},
		Legend: excelize.ChartLegend{Position: "bottom"},
		Dimension: excelize.ChartDimension{
			Width:  720,
			Height: 400,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("cannot add chart: %w", err)
	}

	buf, err := xlsx.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
