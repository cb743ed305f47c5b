package finance

import (
	"fmt"
	"strings"
)

// Category classifies a transaction as income or expense.
type Category string

const (
	Income  Category = "income"
	Expense Category = "expense"
)

// Categories lists the valid categories, in display order.
var Categories = []Category{Income, Expense}

// categoryCodes maps the single letter codes used at entry time.
var categoryCodes = map[string]Category{
	"I": Income,
	"E": Expense,
}

// IsValid reports whether c is one of the known categories.
func (c Category) IsValid() bool { return c == Income || c == Expense }

func (c Category) String() string { return string(c) }

// Code returns the single letter typed at entry time, "I" or "E".
func (c Category) Code() string {
	for code, cat := range categoryCodes {
		if cat == c {
			return code
		}
	}
	return ""
}

// ParseCategory parses the literal category as written in the ledger file.
func ParseCategory(s string) (Category, error) {
	c := Category(s)
	if !c.IsValid() {
		return "", fmt.Errorf("unknown category %q want %q or %q", s, Income, Expense)
	}
	return c, nil
}

// categoryFromCode parses the user entry form: a case-insensitive single
// letter code (I or E) or the full category name.
func categoryFromCode(s string) (Category, bool) {
	s = strings.ToUpper(strings.TrimSpace(s))
	if c, ok := categoryCodes[s]; ok {
		return c, true
	}
	c := Category(strings.ToLower(s))
	return c, c.IsValid()
}
