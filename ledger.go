package finance

import (
	"iter"
	"slices"
)

// Ledger represents the ordered list of transactions of a ledger file.
//
// In a Ledger transactions are kept in the physical order of the file, that
// is the order in which they were appended. They are not sorted by date.
type Ledger struct {
	transactions []Transaction
}

// NewLedger creates an empty ledger.
func NewLedger() *Ledger {
	return &Ledger{transactions: make([]Transaction, 0)}
}

// Append adds transactions at the end of the ledger.
func (l *Ledger) Append(txs ...Transaction) { l.transactions = append(l.transactions, txs...) }

// Len returns the number of transactions.
func (l *Ledger) Len() int { return len(l.transactions) }

// Transactions returns a copy of all transactions in ledger order.
func (l *Ledger) Transactions() []Transaction { return slices.Clone(l.transactions) }

// All iterates over the transactions in ledger order.
func (l *Ledger) All() iter.Seq2[int, Transaction] { return slices.All(l.transactions) }

// Span returns the smallest range containing every transaction of the ledger.
// ok is false for an empty ledger.
func (l *Ledger) Span() (r Range, ok bool) {
	for i, tx := range l.transactions {
		if i == 0 || tx.Date.Before(r.From) {
			r.From = tx.Date
		}
		if i == 0 || tx.Date.After(r.To) {
			r.To = tx.Date
		}
	}
	return r, len(l.transactions) > 0
}

// Query filters the ledger on r and summarizes the result.
func (l *Ledger) Query(r Range) *QueryResult { return Query(l.transactions, r) }
