package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/etnz/finance"
	"github.com/etnz/finance/plot"
	"github.com/etnz/finance/renderer"
	"github.com/google/subcommands"
)

// Menu is the interactive front-end of a ledger.
type Menu struct {
	Store   *finance.Store
	Prompt  *Prompter
	Out     io.Writer
	Render  func(md string) // prints a report
	Plotter plot.Plotter
}

const menuText = `
1. Add a new transaction
2. View transactions and summary within a date range
3. Exit
`

// Run shows the menu until the user exits or the input is exhausted.
//
// Failures of the ledger are reported and the menu is shown again.
func (m *Menu) Run() error {
	if err := m.Store.Initialize(); err != nil {
		fmt.Fprintf(m.Out, "Error: %v\n", err)
	}
	for {
		fmt.Fprint(m.Out, menuText)
		choice, err := m.Prompt.Line("Enter your choice (1-3): ")
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}

		switch strings.TrimSpace(choice) {
		case "1":
			err = m.add()
		case "2":
			err = m.view()
		case "3":
			fmt.Fprintln(m.Out, "Exiting...")
			return nil
		default:
			fmt.Fprintln(m.Out, "Invalid choice. Enter 1, 2 or 3")
			continue
		}

		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			fmt.Fprintf(m.Out, "Error: %v\n", err)
		}
	}
}

func (m *Menu) add() error {
	date, err := Ask(m.Prompt, "Enter the date of the transaction (dd-mm-yyyy) or press enter for today: ", func(s string) (finance.Date, error) {
		return finance.ValidateDate(s, true)
	})
	if err != nil {
		return err
	}
	amount, err := Ask(m.Prompt, "Enter the amount: ", finance.ValidateAmount)
	if err != nil {
		return err
	}
	category, err := Ask(m.Prompt, "Enter the category (I for income or E for expense): ", finance.ValidateCategory)
	if err != nil {
		return err
	}
	description, err := m.Prompt.Line("Enter a description: ")
	if err != nil {
		return err
	}

	tx := finance.NewTransaction(date, amount, category, finance.ValidateDescription(description))
	if err := m.Store.Append(tx); err != nil {
		return err
	}
	logf("appended %s to %q", renderer.Transaction(tx, m.Store.Config().Currency), m.Store.Path())
	fmt.Fprintln(m.Out, "Entry added successfully")
	return nil
}

func (m *Menu) view() error {
	mandatory := func(s string) (finance.Date, error) { return finance.ValidateDate(s, false) }
	start, err := Ask(m.Prompt, "Enter the start date (dd-mm-yyyy): ", mandatory)
	if err != nil {
		return err
	}
	end, err := Ask(m.Prompt, "Enter the end date (dd-mm-yyyy): ", mandatory)
	if err != nil {
		return err
	}

	ledger, err := LoadLedger(m.Store)
	if err != nil {
		return err
	}
	q := ledger.Query(finance.NewRange(start, end))
	m.Render(renderer.QueryMarkdown(q, m.Store.Config().Currency))
	if q.IsEmpty() {
		return nil
	}

	answer, err := m.Prompt.Line("Do you want to see a plot? (y/n): ")
	if err != nil {
		return err
	}
	if strings.ToLower(strings.TrimSpace(answer)) != "y" {
		return nil
	}
	return m.Plotter.Plot(q.Series())
}

type menuCmd struct{}

func (*menuCmd) Name() string     { return "menu" }
func (*menuCmd) Synopsis() string { return "interactive menu to add and view transactions" }
func (*menuCmd) Usage() string {
	return `fin menu

  Starts the interactive menu, this is also what fin does when no command is
  given. Answers are read from the standard input, one per line.
`
}

func (c *menuCmd) SetFlags(f *flag.FlagSet) {}

func (c *menuCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store, err := OpenStore()
	if err != nil {
		return fail(err)
	}
	m := &Menu{
		Store:  store,
		Prompt: NewPrompter(os.Stdin, os.Stdout),
		Out:    os.Stdout,
		Render: printMarkdown,
		Plotter: plot.Terminal{
			Out:   os.Stdout,
			Width: terminalWidth(os.Stdout, 80),
			Color: isTerminal(os.Stdout),
		},
	}
	if err := m.Run(); err != nil {
		return fail(err)
	}
	return subcommands.ExitSuccess
}
