// Package cmd implements the fin command line application.
package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"log"
	"os"
	"strings"

	"github.com/etnz/finance"
	"github.com/google/subcommands"
)

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var (
	ledgerFile = flag.String("ledger-file", "", "Path to the ledger file (CSV format). Overrides the configuration.")
	currency   = flag.String("currency", "", "ISO 4217 code of the currency used to display amounts. Overrides the configuration.")
	configFile = flag.String("config", "", "Path to the configuration file (TOML format).")
	Verbose    = flag.Bool("v", false, "Log what fin does on the standard error.")
)

// Commands lists every fin subcommand.
var Commands = []subcommands.Command{
	&menuCmd{},
	&initCmd{},
	&addCmd{},
	&viewCmd{},
	&fmtCmd{},
	&topicCmd{},
}

// logf logs only in verbose mode.
func logf(format string, args ...any) {
	if *Verbose {
		log.Printf(format, args...)
	}
}

// Config returns the effective configuration: command line flags over
// environment variables over the configuration file over defaults.
func Config() (finance.Config, error) {
	flags := finance.Config{
		Path:     *ledgerFile,
		Currency: strings.ToUpper(*currency),
	}
	return LoadConfig(*configFile, flags)
}

// OpenStore returns the ledger store of the effective configuration.
func OpenStore() (*finance.Store, error) {
	cfg, err := Config()
	if err != nil {
		return nil, err
	}
	logf("using ledger %q, amounts in %s", cfg.Path, cfg.Currency)
	return finance.NewStore(cfg), nil
}

// LoadLedger loads every transaction of the store. A ledger that does not
// exist yet is empty.
func LoadLedger(s *finance.Store) (*finance.Ledger, error) {
	ledger, err := s.LoadAll()
	if errors.Is(err, fs.ErrNotExist) {
		logf("warning, ledger %q does not exist, using an empty ledger instead", s.Path())
		return finance.NewLedger(), nil
	}
	if err != nil {
		return nil, err
	}
	logf("loaded %d transactions from %q", ledger.Len(), s.Path())
	return ledger, nil
}

// RunMenu runs the interactive menu. It is what fin does without a subcommand.
func RunMenu(ctx context.Context) subcommands.ExitStatus {
	c := &menuCmd{}
	return c.Execute(ctx, flag.NewFlagSet(c.Name(), flag.ExitOnError))
}

// fail prints err on the standard error and returns a failure status.
func fail(err error) subcommands.ExitStatus {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	return subcommands.ExitFailure
}
