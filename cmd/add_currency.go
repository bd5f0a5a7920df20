package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/poverty-ledger/poverty"
)

type addCurrencyCmd struct {
	name   string
	note   string
	format string
	hidden bool
	def    bool
}

func (*addCurrencyCmd) Name() string     { return "add-currency" }
func (*addCurrencyCmd) Synopsis() string { return "declare a new currency" }
func (*addCurrencyCmd) Usage() string {
	return `poverty add-currency -n <name> [-format America|Europe|Sinosphere|India] [-default]

  Declares a currency. At most one currency may be the document default.
  Prints the assigned id.
`
}

func (c *addCurrencyCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "n", "", "Name of the currency (required).")
	f.StringVar(&c.note, "note", "", "Free-form note.")
	f.StringVar(&c.format, "format", "", "Display convention, defaults to America.")
	f.BoolVar(&c.hidden, "hidden", false, "Hide the currency from listings.")
	f.BoolVar(&c.def, "default", false, "Make this the document default currency.")
}

func (c *addCurrencyCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	p, err := Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	visible := !c.hidden
	id, err := p.InsertCurrency(poverty.Currency{
		Name:    c.name,
		Note:    c.note,
		Format:  poverty.CurrencyFormat(c.format),
		Visible: &visible,
		Default: c.def,
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	if err := Save(p); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	fmt.Println(id)
	return subcommands.ExitSuccess
}
