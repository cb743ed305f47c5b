package cmd

import (
	"flag"
	"slices"
	"testing"
)

func TestCompletion(t *testing.T) {
	c := Completion()

	for _, name := range []string{"ledger-file", "currency", "config", "v"} {
		if _, ok := c.Flags[name]; !ok {
			t.Errorf("global flag -%s is not completed", name)
		}
	}

	for _, cmd := range Commands {
		sub, ok := c.Sub[cmd.Name()]
		if !ok {
			t.Errorf("command %q is not completed", cmd.Name())
			continue
		}
		fs := flag.NewFlagSet(cmd.Name(), flag.ContinueOnError)
		cmd.SetFlags(fs)
		fs.VisitAll(func(f *flag.Flag) {
			if _, ok := sub.Flags[f.Name]; !ok {
				t.Errorf("flag -%s of %q is not completed", f.Name, cmd.Name())
			}
		})
	}

	if got := c.Sub["view"].Flags["by"].Predict(""); !slices.Contains(got, "quarter") {
		t.Errorf("-by predicts %v, want the period names", got)
	}
	if got := c.Sub["add"].Flags["c"].Predict(""); !slices.Contains(got, "I") || !slices.Contains(got, "E") {
		t.Errorf("-c predicts %v, want I and E", got)
	}

	if c.Sub["topic"].Args == nil {
		t.Errorf("topic arguments are not completed")
	}
}
