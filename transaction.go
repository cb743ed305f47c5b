package finance

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// Transaction is a single dated income or expense. It is immutable once
// written to the ledger.
type Transaction struct {
	Date        Date
	Amount      decimal.Decimal // always positive, the Category gives the direction
	Category    Category
	Description string
}

// NewTransaction creates a new Transaction.
func NewTransaction(on Date, amount decimal.Decimal, category Category, description string) Transaction {
	return Transaction{
		Date:        on,
		Amount:      amount,
		Category:    category,
		Description: description,
	}
}

// Validate checks the transaction invariants and returns all failures at once.
func (t Transaction) Validate() error {
	var errs []error
	if t.Date.IsZero() {
		errs = append(errs, errors.New("missing date"))
	}
	if !t.Amount.IsPositive() {
		errs = append(errs, ErrNonPositiveAmount)
	}
	if !t.Category.IsValid() {
		errs = append(errs, fmt.Errorf("unknown category %q", t.Category))
	}
	return errors.Join(errs...)
}
