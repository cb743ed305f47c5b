package finance

import (
	"errors"
	"fmt"
)

var (
	ErrEmptyInput          = errors.New("empty input")
	ErrInvalidDate         = errors.New("invalid date format, please enter the date in dd-mm-yyyy")
	ErrInvalidAmount       = errors.New("amount is not a number")
	ErrNonPositiveAmount   = errors.New("amount must be greater than 0")
	ErrInvalidCategory     = errors.New("invalid category, please enter I for income or E for expense")
	ErrMalformedHeader     = errors.New("malformed header")
	ErrMalformedRow        = errors.New("malformed row")
	ErrMissingLedgerHeader = errors.New("missing header")
)

// ValidationError reports user input that cannot be turned into a value.
//
// It is always recoverable: interactive front-ends ask again.
type ValidationError struct {
	Field string // "date", "amount", "category"...
	Input string // the raw input
	Err   error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s %q: %v", e.Field, e.Input, e.Err)
}

func (e *ValidationError) Unwrap() error { return e.Err }

// IOError reports that the ledger file could not be read or written.
type IOError struct {
	Op   string // "initialize", "append", "load"
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("cannot %s ledger %q: %v", e.Op, e.Path, e.Err)
}

func (e *IOError) Unwrap() error { return e.Err }

// ParseError reports corrupt ledger content. Line is 1-based, 0 when unknown.
type ParseError struct {
	Path string
	Line int
	Err  error
}

func (e *ParseError) Error() string {
	switch {
	case e.Path != "" && e.Line > 0:
		return fmt.Sprintf("%s:%d: %v", e.Path, e.Line, e.Err)
	case e.Line > 0:
		return fmt.Sprintf("line %d: %v", e.Line, e.Err)
	case e.Path != "":
		return fmt.Sprintf("%s: %v", e.Path, e.Err)
	default:
		return e.Err.Error()
	}
}

func (e *ParseError) Unwrap() error { return e.Err }
