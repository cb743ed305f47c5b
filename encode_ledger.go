package finance

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/shopspring/decimal"
)

// Columns is the canonical header of a ledger file.
var Columns = []string{"date", "amount", "category", "description"}

const utf8BOM = "\ufeff"

// EncodeHeader writes the canonical header row.
func EncodeHeader(w io.Writer) error {
	return writeRecords(w, Columns)
}

// EncodeTransaction writes a single transaction as one CSV row.
func EncodeTransaction(w io.Writer, tx Transaction) error {
	return writeRecords(w, encodeRecord(tx))
}

// EncodeLedger writes the header and every transaction of the ledger, in order.
func EncodeLedger(w io.Writer, l *Ledger) error {
	records := make([][]string, 0, l.Len()+1)
	records = append(records, Columns)
	for _, tx := range l.All() {
		records = append(records, encodeRecord(tx))
	}
	cw := csv.NewWriter(w)
	if err := cw.WriteAll(records); err != nil {
		return fmt.Errorf("cannot write ledger: %w", err)
	}
	return nil
}

func writeRecords(w io.Writer, records ...[]string) error {
	cw := csv.NewWriter(w)
	if err := cw.WriteAll(records); err != nil {
		return fmt.Errorf("cannot write record: %w", err)
	}
	return nil
}

func encodeRecord(tx Transaction) []string {
	return []string{
		tx.Date.String(),
		tx.Amount.String(),
		tx.Category.String(),
		tx.Description,
	}
}

// DecodeLedger decodes a ledger file from r.
//
// The first row must be the canonical header (see [Columns]). Decoding stops
// at the first malformed row and returns a *ParseError; partial ledgers are
// never returned.
func DecodeLedger(r io.Reader) (*Ledger, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = len(Columns)

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, &ParseError{Line: 1, Err: ErrMissingLedgerHeader}
	}
	if err != nil {
		var pe *csv.ParseError
		if errors.As(err, &pe) && errors.Is(pe.Err, csv.ErrFieldCount) {
			return nil, &ParseError{Line: pe.Line, Err: fmt.Errorf("%w: got %q want %q", ErrMalformedHeader, strings.Join(header, ","), strings.Join(Columns, ","))}
		}
		return nil, csvError(err)
	}
	if len(header) > 0 {
		header[0] = strings.TrimPrefix(header[0], utf8BOM)
	}
	if !slices.Equal(header, Columns) {
		return nil, &ParseError{Line: 1, Err: fmt.Errorf("%w: got %q want %q", ErrMalformedHeader, strings.Join(header, ","), strings.Join(Columns, ","))}
	}

	ledger := NewLedger()
	for {
		record, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, csvError(err)
		}
		tx, err := decodeRecord(record)
		if err != nil {
			line, _ := cr.FieldPos(0)
			return nil, &ParseError{Line: line, Err: err}
		}
		ledger.Append(tx)
	}
	return ledger, nil
}

// csvError converts errors from the csv reader into *ParseError.
func csvError(err error) error {
	var pe *csv.ParseError
	if errors.As(err, &pe) {
		return &ParseError{Line: pe.Line, Err: fmt.Errorf("%w: %v", ErrMalformedRow, pe.Err)}
	}
	return fmt.Errorf("error reading from input: %w", err)
}

func decodeRecord(record []string) (Transaction, error) {
	on, err := decodeDate(strings.TrimSpace(record[0]))
	if err != nil {
		return Transaction{}, fmt.Errorf("%w: %w", ErrMalformedRow, err)
	}
	amount, err := decimal.NewFromString(strings.TrimSpace(record[1]))
	if err != nil {
		return Transaction{}, fmt.Errorf("%w: invalid amount %q: %w", ErrMalformedRow, record[1], err)
	}
	category, err := ParseCategory(strings.TrimSpace(record[2]))
	if err != nil {
		return Transaction{}, fmt.Errorf("%w: %w", ErrMalformedRow, err)
	}
	return NewTransaction(on, amount, category, record[3]), nil
}
