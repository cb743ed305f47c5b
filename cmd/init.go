package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"
)

type initCmd struct{}

func (*initCmd) Name() string     { return "init" }
func (*initCmd) Synopsis() string { return "create the ledger file" }
func (*initCmd) Usage() string {
	return `fin init

  Creates the ledger file with its header. An existing ledger is left untouched.
`
}

func (c *initCmd) SetFlags(f *flag.FlagSet) {}

func (c *initCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store, err := OpenStore()
	if err != nil {
		return fail(err)
	}
	if err := store.Initialize(); err != nil {
		return fail(err)
	}
	fmt.Printf("Ledger ready: %s\n", store.Path())
	return subcommands.ExitSuccess
}
