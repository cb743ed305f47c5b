package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/etnz/finance"
	"github.com/google/subcommands"
)

type fmtCmd struct {
	outputFile string
}

func (*fmtCmd) Name() string { return "fmt" }
func (*fmtCmd) Synopsis() string {
	return "validates the ledger file and writes it in canonical form"
}
func (*fmtCmd) Usage() string {
	return `fin fmt [-o <file>]

  Validates the ledger file: every line must decode and every transaction must
  have a date, a positive amount and a known category. Then writes the ledger
  in canonical form (dates zero padded, amounts without trailing zeros) to the
  standard output or to a file. The ledger file itself is never modified.

Usage Examples:
$ fin fmt -o canonical.csv
`
}

func (p *fmtCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.outputFile, "o", "", "Write the canonical ledger to this file instead of the standard output.")
}

// validate returns every invalid transaction of the ledger, with its data
// line number.
func validate(ledger *finance.Ledger) error {
	var errs []error
	for i, tx := range ledger.All() {
		if err := tx.Validate(); err != nil {
			// the header is line 1
			errs = append(errs, fmt.Errorf("line %d: %w", i+2, err))
		}
	}
	return errors.Join(errs...)
}

// writeCanonical writes the canonical ledger to file, which must not be the
// ledger file itself, under any name.
func writeCanonical(file, ledgerPath string, ledger *finance.Ledger) error {
	if sameFile(file, ledgerPath) {
		return fmt.Errorf("refusing to overwrite the ledger %q", ledgerPath)
	}
	out, err := os.Create(file)
	if err != nil {
		return err
	}
	if err := finance.EncodeLedger(out, ledger); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}

// sameFile reports whether both paths name the same file. Symbolic links are
// followed, paths that do not exist yet are compared in absolute form.
func sameFile(a, b string) bool {
	ai, aerr := os.Stat(a)
	bi, berr := os.Stat(b)
	if aerr == nil && berr == nil {
		return os.SameFile(ai, bi)
	}
	absA, aerr := filepath.Abs(a)
	absB, berr := filepath.Abs(b)
	return aerr == nil && berr == nil && absA == absB
}

func (p *fmtCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store, err := OpenStore()
	if err != nil {
		return fail(err)
	}
	ledger, err := store.LoadAll()
	if err != nil {
		return fail(err)
	}
	if err := validate(ledger); err != nil {
		fmt.Fprintf(os.Stderr, "Error: invalid ledger %q:\n%v\n", store.Path(), err)
		return subcommands.ExitFailure
	}

	if p.outputFile == "" {
		err = finance.EncodeLedger(os.Stdout, ledger)
	} else {
		err = writeCanonical(p.outputFile, store.Path(), ledger)
	}
	if err != nil {
		return fail(err)
	}
	fmt.Fprintf(os.Stderr, "Ledger %q is valid: %d transactions.\n", store.Path(), ledger.Len())
	return subcommands.ExitSuccess
}
