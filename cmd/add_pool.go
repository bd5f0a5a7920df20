package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/poverty-ledger/poverty"
	"github.com/shopspring/decimal"
)

type addPoolCmd struct {
	name     string
	currency string
	balance  string
	partial  bool
	note     string
}

func (*addPoolCmd) Name() string     { return "add-pool" }
func (*addPoolCmd) Synopsis() string { return "create a new pool" }
func (*addPoolCmd) Usage() string {
	return `poverty add-pool -n <name> [-currency <id>] [-balance <amount>]

  Creates a pool (a balance-holding account). Omitted fields take the
  document defaults. Prints the assigned id.
`
}

func (c *addPoolCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "n", "", "Name of the pool (required).")
	f.StringVar(&c.currency, "currency", "", "Currency id, defaults to the document default.")
	f.StringVar(&c.balance, "balance", "", "Initial balance, defaults to 0.")
	f.BoolVar(&c.partial, "partial", false, "Exclude the pool from totals.")
	f.StringVar(&c.note, "note", "", "Free-form note.")
}

func (c *addPoolCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	p, err := Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	total := !c.partial
	pool := poverty.Pool{
		Name:     c.name,
		Currency: c.currency,
		Total:    &total,
		Note:     c.note,
	}
	if c.balance != "" {
		balance, err := decimal.NewFromString(c.balance)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing balance: %v\n", err)
			return subcommands.ExitUsageError
		}
		pool.Balance = balance
	}

	id, err := p.InsertPool(pool)
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
