package finance

import (
	"testing"
)

func TestLedger(t *testing.T) {
	l := NewLedger()
	if l.Len() != 0 {
		t.Errorf("Len() of an empty ledger = %d", l.Len())
	}

	first := tx("15-01-2025", "100", Income, "salary")
	second := tx("01-01-2025", "20", Expense, "older, but appended last")
	l.Append(first, second)

	if l.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", l.Len())
	}
	if last := l.Transactions()[1]; !sameTransaction(last, second) {
		t.Errorf("Transactions()[1] = %+v, want the last appended transaction", last)
	}

	// Transactions returns a copy.
	txs := l.Transactions()
	txs[0] = second
	if got := l.Transactions()[0]; !sameTransaction(got, first) {
		t.Errorf("modifying Transactions() changed the ledger")
	}

	var order []string
	for _, tx := range l.All() {
		order = append(order, tx.Description)
	}
	if order[0] != "salary" || order[1] != "older, but appended last" {
		t.Errorf("All() = %v, want ledger order", order)
	}
}
