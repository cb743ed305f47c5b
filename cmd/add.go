package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/etnz/finance"
	"github.com/etnz/finance/renderer"
	"github.com/google/subcommands"
)

type addCmd struct {
	date        string
	amount      string
	category    string
	description string
}

func (*addCmd) Name() string     { return "add" }
func (*addCmd) Synopsis() string { return "append a transaction to the ledger" }
func (*addCmd) Usage() string {
	return `fin add -a <amount> -c <I|E> [-d <date>] [-m <description>]

  Appends a transaction to the ledger, creating the ledger if needed.

Usage Examples:
$ fin add -a 100 -c I -m salary
$ fin add -d 20-01-2025 -a 12.50 -c E -m "coffee, beans"
`
}

func (c *addCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", "", "Date of the transaction (dd-mm-yyyy), today by default.")
	f.StringVar(&c.amount, "a", "", "Amount of the transaction, greater than 0.")
	f.StringVar(&c.category, "c", "", "Category: I for income, E for expense.")
	f.StringVar(&c.description, "m", "", "Description of the transaction.")
}

// transaction validates the flags.
func (c *addCmd) transaction() (finance.Transaction, error) {
	date, err := finance.ValidateDate(c.date, true)
	if err != nil {
		return finance.Transaction{}, err
	}
	amount, err := finance.ValidateAmount(c.amount)
	if err != nil {
		return finance.Transaction{}, err
	}
	category, err := finance.ValidateCategory(c.category)
	if err != nil {
		return finance.Transaction{}, err
	}
	return finance.NewTransaction(date, amount, category, finance.ValidateDescription(c.description)), nil
}

func (c *addCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	tx, err := c.transaction()
	if err != nil {
		return fail(err)
	}
	store, err := OpenStore()
	if err != nil {
		return fail(err)
	}
	if err := store.Append(tx); err != nil {
		return fail(err)
	}
	fmt.Printf("Entry added successfully: %s\n", renderer.Transaction(tx, store.Config().Currency))
	return subcommands.ExitSuccess
}
