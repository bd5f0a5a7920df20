package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/google/subcommands"
	"github.com/poverty-ledger/poverty"
	"github.com/shopspring/decimal"
)

type addTxCmd struct {
	name     string
	txType   string
	price    string
	currency string
	note     string
	source   string
	target   string
	budget   string
	tags     string
	parent   string
}

func (*addTxCmd) Name() string     { return "add-tx" }
func (*addTxCmd) Synopsis() string { return "record a new transaction" }
func (*addTxCmd) Usage() string {
	return `poverty add-tx [-n <name>] [-price <amount>] [-source <pool>] [-target <pool>] [-budget <id>] [-tags a,b]

  Inserts a transaction. Omitted fields take the document defaults: type
  transfer, the default currency, the current time. Prints the assigned id.
`
}

func (c *addTxCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "n", "", "Name of the transaction.")
	f.StringVar(&c.txType, "type", "", "Type, transfer or balance.")
	f.StringVar(&c.price, "price", "", "Price as a decimal amount.")
	f.StringVar(&c.currency, "currency", "", "Currency id, defaults to the document default.")
	f.StringVar(&c.note, "note", "", "Free-form note.")
	f.StringVar(&c.source, "source", "", "Source pool id.")
	f.StringVar(&c.target, "target", "", "Target pool id.")
	f.StringVar(&c.budget, "budget", "", "Budget or budget-account id.")
	f.StringVar(&c.tags, "tags", "", "Comma-separated tags.")
	f.StringVar(&c.parent, "parent", "", "Parent transaction id.")
}

func (c *addTxCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	p, err := Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	tx := poverty.Transaction{
		Name:     c.name,
		Type:     poverty.TransactionType(c.txType),
		Currency: c.currency,
		Note:     c.note,
		Source:   c.source,
		Target:   c.target,
		Budget:   c.budget,
		Parent:   c.parent,
	}
	if c.price != "" {
		price, err := decimal.NewFromString(c.price)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing price: %v\n", err)
			return subcommands.ExitUsageError
		}
		tx.Price = &price
	}
	if c.tags != "" {
		tx.Tags = strings.Split(c.tags, ",")
	}

	id, err := p.InsertTransaction(tx)
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
