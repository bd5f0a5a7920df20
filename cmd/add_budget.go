package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/poverty-ledger/poverty"
)

type addBudgetCmd struct {
	name     string
	currency string
	period   string
	over     string
	account  string
}

func (*addBudgetCmd) Name() string     { return "add-budget" }
func (*addBudgetCmd) Synopsis() string { return "create a new budget" }
func (*addBudgetCmd) Usage() string {
	return `poverty add-budget -n <name> [-period weekly|monthly|annual] [-over return|keep] [-account <name>]

  Creates a budget, optionally with a first account. Omitted automation
  fields default to a monthly period starting now with the return policy.
  Prints the assigned id.
`
}

func (c *addBudgetCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "n", "", "Name of the budget (required).")
	f.StringVar(&c.currency, "currency", "", "Currency id, defaults to the document default.")
	f.StringVar(&c.period, "period", "", "Automation period, defaults to monthly.")
	f.StringVar(&c.over, "over", "", "Overflow policy, defaults to return.")
	f.StringVar(&c.account, "account", "", "Name of a first account to create inside the budget.")
}

func (c *addBudgetCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	p, err := Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	b := poverty.Budget{
		Name:     c.name,
		Currency: c.currency,
		Automation: poverty.Automation{
			Period: poverty.BudgetPeriod(c.period),
			Over:   poverty.BudgetOver(c.over),
		},
	}
	if c.account != "" {
		b.Accounts = []poverty.Account{{Name: c.account}}
	}

	id, err := p.InsertBudget(b)
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
