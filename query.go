package finance

import (
	"github.com/shopspring/decimal"
)

// Summary aggregates the amounts of a set of transactions.
type Summary struct {
	Income  decimal.Decimal // sum of income amounts
	Expense decimal.Decimal // sum of expense amounts
	Net     decimal.Decimal // Income - Expense
	Count   int             // number of transactions
}

// QueryResult is the outcome of a date range query over a ledger.
type QueryResult struct {
	Range        Range
	Transactions []Transaction // in ledger order
	Summary      Summary
}

// IsEmpty reports whether no transaction was found in the range.
func (q *QueryResult) IsEmpty() bool { return len(q.Transactions) == 0 }

// Series returns the daily income and expense series over the query range.
func (q *QueryResult) Series() (income, expense Series) {
	return DailySeries(q.Transactions, q.Range, Income), DailySeries(q.Transactions, q.Range, Expense)
}

// Query filters txs on r and summarizes the result.
func Query(txs []Transaction, r Range) *QueryResult {
	filtered := FilterByRange(txs, r)
	return &QueryResult{
		Range:        r,
		Transactions: filtered,
		Summary:      Summarize(filtered),
	}
}

// FilterByRange returns the transactions dated within r, both ends included,
// in their original order.
func FilterByRange(txs []Transaction, r Range) []Transaction {
	filtered := make([]Transaction, 0)
	if r.IsEmpty() {
		return filtered
	}
	for _, tx := range txs {
		if r.Contains(tx.Date) {
			filtered = append(filtered, tx)
		}
	}
	return filtered
}

// Summarize computes the total income, total expense and net of txs.
func Summarize(txs []Transaction) Summary {
	s := Summary{Income: decimal.Zero, Expense: decimal.Zero}
	for _, tx := range txs {
		switch tx.Category {
		case Income:
			s.Income = s.Income.Add(tx.Amount)
		case Expense:
			s.Expense = s.Expense.Add(tx.Amount)
		}
	}
	s.Net = s.Income.Sub(s.Expense)
	s.Count = len(txs)
	return s
}

// Point is the amount of a single day.
type Point struct {
	Date   Date
	Amount decimal.Decimal
}

// Series is a daily series of amounts for one category.
type Series struct {
	Category Category
	Points   []Point // one per day, ordered by date
}

// Len returns the number of days in the series.
func (s Series) Len() int { return len(s.Points) }

// Max returns the largest daily amount, zero for an empty series.
func (s Series) Max() decimal.Decimal {
	m := decimal.Zero
	for _, p := range s.Points {
		if p.Amount.GreaterThan(m) {
			m = p.Amount
		}
	}
	return m
}

// DailySeries sums the amounts of the transactions of the given category per
// calendar day, for every day of r. Days without transactions are zero.
//
// Transactions of other categories, or outside r, are ignored.
func DailySeries(txs []Transaction, r Range, category Category) Series {
	s := Series{Category: category, Points: make([]Point, 0)}
	if r.IsEmpty() {
		return s
	}
	perDay := make(map[Date]decimal.Decimal)
	for _, tx := range txs {
		if tx.Category != category || !r.Contains(tx.Date) {
			continue
		}
		perDay[tx.Date] = perDay[tx.Date].Add(tx.Amount)
	}

	for day := range r.Days() {
		amount, ok := perDay[day]
		if !ok {
			amount = decimal.Zero
		}
		s.Points = append(s.Points, Point{Date: day, Amount: amount})
	}
	return s
}

// PeriodSummary is the summary of a slice of a query range.
type PeriodSummary struct {
	Period  Period
	Label   string // identifier of the whole period, e.g. "January 2025"
	Range   Range  // the period clipped to the query range
	Summary Summary
}

// Breakdown splits r into periods (e.g. months) and summarizes each of them.
// The first and last periods are clipped to r.
func Breakdown(txs []Transaction, r Range, p Period) []PeriodSummary {
	rows := make([]PeriodSummary, 0)
	for period := range r.Periods(p) {
		slice := period.Clip(r)
		rows = append(rows, PeriodSummary{
			Period:  p,
			Label:   period.Identifier(),
			Range:   slice,
			Summary: Summarize(FilterByRange(txs, slice)),
		})
	}
	return rows
}
