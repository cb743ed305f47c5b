package renderer

import (
	"fmt"

	"github.com/etnz/finance"
)

// Transaction renders a transaction to a one line string.
func Transaction(tx finance.Transaction, currency string) string {
	amount := finance.M(tx.Amount, currency)
	var s string
	switch tx.Category {
	case finance.Income:
		s = fmt.Sprintf("Income of %s on %s", amount, tx.Date)
	case finance.Expense:
		s = fmt.Sprintf("Expense of %s on %s", amount, tx.Date)
	default:
		s = fmt.Sprintf("%s of %s on %s", tx.Category, amount, tx.Date)
	}
	if tx.Description != "" {
		s += ": " + tx.Description
	}
	return s
}
