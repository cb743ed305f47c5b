package renderer

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/etnz/finance"
	md "github.com/nao1215/markdown"
)

// NoTransactions is displayed when a query finds nothing.
const NoTransactions = "No transactions found in given date range"

// QueryMarkdown renders the transactions of a query and their summary.
func QueryMarkdown(q *finance.QueryResult, currency string) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Transactions from %s to %s", q.Range.From, q.Range.To))
	if q.IsEmpty() {
		doc.PlainText(NoTransactions)
		return doc.String()
	}

	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignRight,
			md.AlignLeft,
			md.AlignLeft,
		},
		Header: []string{"Date", "Amount", "Category", "Description"},
		Rows:   [][]string{},
	}
	for _, tx := range q.Transactions {
		table.Rows = append(table.Rows, []string{
			tx.Date.String(),
			finance.M(tx.Amount, currency).String(),
			tx.Category.String(),
			cell(tx.Description),
		})
	}
	doc.Table(table)

	doc.H2("Summary")
	doc.BulletList(
		fmt.Sprintf("Total income: %s", finance.M(q.Summary.Income, currency)),
		fmt.Sprintf("Total expense: %s", finance.M(q.Summary.Expense, currency)),
		fmt.Sprintf("Net savings: %s", finance.M(q.Summary.Net, currency)),
	)
	return doc.String()
}

// BreakdownMarkdown renders one summary row per period.
func BreakdownMarkdown(rows []finance.PeriodSummary, currency string) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	title := "Breakdown"
	if len(rows) > 0 {
		title += " by " + rows[0].Period.Name()
	}
	doc.H2(title)
	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
		},
		Header: []string{"Period", "Income", "Expense", "Net"},
		Rows:   [][]string{},
	}
	for _, row := range rows {
		table.Rows = append(table.Rows, []string{
			row.Label,
			finance.M(row.Summary.Income, currency).String(),
			finance.M(row.Summary.Expense, currency).String(),
			finance.M(row.Summary.Net, currency).SignedString(),
		})
	}
	doc.Table(table)
	return doc.String()
}

// ViewMarkdown renders a query followed by its breakdown. The breakdown is
// skipped when it would not tell more than the summary.
func ViewMarkdown(q *finance.QueryResult, rows []finance.PeriodSummary, currency string) string {
	var b strings.Builder
	b.WriteString(QueryMarkdown(q, currency))
	if !q.IsEmpty() && len(rows) > 1 {
		b.WriteString("\n")
		b.WriteString(BreakdownMarkdown(rows, currency))
	}
	return b.String()
}

// cell makes free text fit in a single table cell.
func cell(s string) string {
	s = strings.ReplaceAll(s, "\r\n", " ")
	s = strings.ReplaceAll(s, "\n", " ")
	return strings.ReplaceAll(s, "|", `\|`)
}
