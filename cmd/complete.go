package cmd

import (
	"flag"
	"slices"

	"github.com/etnz/finance"
	"github.com/etnz/finance/docs"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

var (
	predictDate     = predict.Set{"0d", "-1d", "-1w", "-1m", "-1q", "-1y"}
	predictCurrency = predict.Set{"USD", "EUR", "GBP", "CHF", "JPY", "CAD", "AUD"}
)

func predictPeriod() predict.Set {
	var names predict.Set
	for _, p := range finance.Periods {
		names = append(names, p.Name())
	}
	return names
}

func predictCategory() predict.Set {
	var codes predict.Set
	for _, c := range finance.Categories {
		codes = append(codes, c.Code())
	}
	return codes
}

// predictFlag returns the predictor of a flag value.
func predictFlag(f *flag.Flag) complete.Predictor {
	if b, ok := f.Value.(interface{ IsBoolFlag() bool }); ok && b.IsBoolFlag() {
		return predict.Nothing
	}
	switch f.Name {
	case "ledger-file":
		return predict.Files("*.csv")
	case "config":
		return predict.Files("*.toml")
	case "xlsx":
		return predict.Files("*.xlsx")
	case "currency":
		return predictCurrency
	case "d", "s", "e":
		return predictDate
	case "p", "by":
		return predictPeriod()
	case "c":
		return predictCategory()
	default:
		return predict.Something
	}
}

// Completion returns the shell completion of fin, built from the flags of
// every command.
func Completion() *complete.Command {
	root := &complete.Command{
		Sub:   map[string]*complete.Command{},
		Flags: map[string]complete.Predictor{},
	}
	flag.CommandLine.VisitAll(func(f *flag.Flag) {
		root.Flags[f.Name] = predictFlag(f)
	})

	for _, c := range Commands {
		fs := flag.NewFlagSet(c.Name(), flag.ContinueOnError)
		c.SetFlags(fs)
		sub := &complete.Command{Flags: map[string]complete.Predictor{}}
		fs.VisitAll(func(f *flag.Flag) {
			sub.Flags[f.Name] = predictFlag(f)
		})
		root.Sub[c.Name()] = sub
	}

	if topics, err := docs.GetAllTopics(); err == nil {
		root.Sub["topic"].Args = predict.Set(append(slices.Clone(topics), "*"))
	}
	return root
}
