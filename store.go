package finance

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// DefaultLedgerFile is the ledger file used when none is configured.
const DefaultLedgerFile = "finance_data.csv"

// Config holds the settings of a ledger.
type Config struct {
	Path     string `mapstructure:"path"`     // path to the CSV ledger file
	Currency string `mapstructure:"currency"` // ISO 4217 code used to display amounts
}

// DefaultConfig returns the configuration used when nothing is set.
func DefaultConfig() Config {
	return Config{
		Path:     DefaultLedgerFile,
		Currency: DefaultCurrency,
	}
}

// Validate validates the configuration and returns an error if invalid
func (c Config) Validate() error {
	var errs []string
	if strings.TrimSpace(c.Path) == "" {
		errs = append(errs, "ledger path cannot be empty")
	}
	if !IsKnownCurrency(c.Currency) {
		errs = append(errs, fmt.Sprintf("unknown currency %q: must be an ISO 4217 code", c.Currency))
	}
	if len(errs) > 0 {
		return fmt.Errorf("configuration validation failed:\n- %s", strings.Join(errs, "\n- "))
	}
	return nil
}

// Store is the Ledger Store: an append-only CSV file.
//
// Every operation opens, uses and closes the file. There is no locking, a
// Store assumes it is the only writer.
type Store struct {
	cfg Config
}

// NewStore returns a Store for the ledger described by cfg.
func NewStore(cfg Config) *Store {
	return &Store{cfg: cfg}
}

// Path returns the ledger file path.
func (s *Store) Path() string { return s.cfg.Path }

// Config returns the store configuration.
func (s *Store) Config() Config { return s.cfg }

// Initialize makes sure the ledger file exists and starts with the header.
//
// An existing, non empty file is left untouched.
func (s *Store) Initialize() (err error) {
	path := s.cfg.Path
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return &IOError{Op: "initialize", Path: path, Err: err}
		}
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0o644)
	if err != nil {
		return &IOError{Op: "initialize", Path: path, Err: err}
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = &IOError{Op: "initialize", Path: path, Err: cerr}
		}
	}()

	info, err := f.Stat()
	if err != nil {
		return &IOError{Op: "initialize", Path: path, Err: err}
	}
	if info.Size() > 0 {
		return nil
	}
	if err := EncodeHeader(f); err != nil {
		return &IOError{Op: "initialize", Path: path, Err: err}
	}
	return nil
}

// Append writes tx as the new last row of the ledger.
//
// The ledger is initialized first if needed. tx is written as is, callers are
// responsible for its validity.
func (s *Store) Append(tx Transaction) (err error) {
	if err := s.Initialize(); err != nil {
		return err
	}

	path := s.cfg.Path
	f, err := os.OpenFile(path, os.O_RDWR|os.O_APPEND, 0)
	if err != nil {
		return &IOError{Op: "append", Path: path, Err: err}
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = &IOError{Op: "append", Path: path, Err: cerr}
		}
	}()

	// A hand edited file might miss its final newline.
	if err := terminateLastLine(f); err != nil {
		return &IOError{Op: "append", Path: path, Err: err}
	}
	if err := EncodeTransaction(f, tx); err != nil {
		return &IOError{Op: "append", Path: path, Err: err}
	}
	return nil
}

func terminateLastLine(f *os.File) error {
	info, err := f.Stat()
	if err != nil {
		return err
	}
	if info.Size() == 0 {
		return nil
	}
	last := make([]byte, 1)
	if _, err := f.ReadAt(last, info.Size()-1); err != nil {
		return err
	}
	if last[0] == '\n' {
		return nil
	}
	_, err = f.Write([]byte{'\n'})
	return err
}

// LoadAll reads every transaction of the ledger, in file order.
//
// It fails with a *ParseError on corrupt content and with an *IOError if the
// file cannot be read (errors.Is(err, fs.ErrNotExist) when it is missing).
func (s *Store) LoadAll() (*Ledger, error) {
	path := s.cfg.Path
	f, err := os.Open(path)
	if err != nil {
		return nil, &IOError{Op: "load", Path: path, Err: err}
	}
	defer f.Close()

	ledger, err := DecodeLedger(f)
	if err != nil {
		var pe *ParseError
		if errors.As(err, &pe) {
			pe.Path = path
			return nil, pe
		}
		return nil, &IOError{Op: "load", Path: path, Err: err}
	}
	return ledger, nil
}
