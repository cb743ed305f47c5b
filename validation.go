package finance

import (
	"strings"

	"github.com/shopspring/decimal"
)

// ValidateDate turns user input into a Date.
//
// When allowDefault is true an empty input means today.
func ValidateDate(input string, allowDefault bool) (Date, error) {
	s := strings.TrimSpace(input)
	if s == "" {
		if allowDefault {
			return Today(), nil
		}
		return Date{}, &ValidationError{Field: "date", Input: input, Err: ErrInvalidDate}
	}
	d, err := ParseDate(s)
	if err != nil {
		return Date{}, &ValidationError{Field: "date", Input: input, Err: ErrInvalidDate}
	}
	return d, nil
}

// ValidateAmount turns user input into a strictly positive amount.
func ValidateAmount(input string) (decimal.Decimal, error) {
	s := strings.TrimSpace(input)
	if s == "" {
		return decimal.Zero, &ValidationError{Field: "amount", Input: input, Err: ErrEmptyInput}
	}
	amount, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, &ValidationError{Field: "amount", Input: input, Err: ErrInvalidAmount}
	}
	if !amount.IsPositive() {
		return decimal.Zero, &ValidationError{Field: "amount", Input: input, Err: ErrNonPositiveAmount}
	}
	return amount, nil
}

// ValidateCategory turns user input into a Category: I for income, E for
// expense, case-insensitive. The full names are accepted too.
func ValidateCategory(input string) (Category, error) {
	c, ok := categoryFromCode(input)
	if !ok {
		return "", &ValidationError{Field: "category", Input: input, Err: ErrInvalidCategory}
	}
	return c, nil
}

// ValidateDescription normalizes a free text description: line breaks become
// "\n" and trailing ones are dropped. Any text is a valid description.
//
// The ledger codec reads a quoted "\r\n" back as "\n", only normalized
// descriptions are stored exactly.
func ValidateDescription(input string) string {
	input = strings.ReplaceAll(input, "\r\n", "\n")
	input = strings.ReplaceAll(input, "\r", "\n")
	return strings.TrimRight(input, "\n")
}
