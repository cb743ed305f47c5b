// Command fin records income and expense transactions in a CSV ledger and
// reports on date ranges of it.
package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/etnz/finance/cmd"
	"github.com/google/subcommands"
)

func main() {
	// Handles shell completion requests (COMP_LINE) and exits.
	cmd.Completion().Complete("fin")

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	commander.Register(commander.CommandsCommand(), "")
	for _, c := range cmd.Commands {
		commander.Register(c, "")
	}

	flag.Parse()
	ctx := context.Background()

	if flag.NArg() == 0 {
		os.Exit(int(cmd.RunMenu(ctx)))
	}
	if !isRegistered(commander, flag.Arg(0)) {
		if found, code := cmd.RunExtension(flag.Arg(0), flag.Args()[1:]); found {
			os.Exit(code)
		}
	}
	os.Exit(int(commander.Execute(ctx)))
}

// isRegistered reports whether name is one of the commander's commands.
func isRegistered(commander *subcommands.Commander, name string) bool {
	found := false
	commander.VisitCommands(func(_ *subcommands.CommandGroup, c subcommands.Command) {
		if c.Name() == name {
			found = true
		}
	})
	return found
}
