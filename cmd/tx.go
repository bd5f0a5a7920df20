package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/google/subcommands"
	"github.com/poverty-ledger/poverty"
)

type txCmd struct {
	head int
	tail int
}

func (*txCmd) Name() string     { return "tx" }
func (*txCmd) Synopsis() string { return "list all transactions in the document" }
func (*txCmd) Usage() string {
	return `poverty tx [-head <n>] [-tail <n>]

  Lists transactions, with options for limiting the output. Prices are
  rendered with the display convention of their currency.
`
}

func (c *txCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.head, "head", 0, "Show only the first N transactions.")
	f.IntVar(&c.tail, "tail", 0, "Show only the last N transactions.")
}

func (c *txCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.head > 0 && c.tail > 0 {
		fmt.Fprintln(os.Stderr, "Error: -head and -tail flags cannot be used together.")
		return subcommands.ExitUsageError
	}
	p, err := Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	txs := p.Document().Transactions
	if c.head > 0 && c.head < len(txs) {
		txs = txs[:c.head]
	}
	if c.tail > 0 && c.tail < len(txs) {
		txs = txs[len(txs)-c.tail:]
	}

	var b strings.Builder
	b.WriteString("| Time | Name | Type | Price | Source | Target |\n")
	b.WriteString("|---|---|---|---|---|---|\n")
	for _, tx := range txs {
		fmt.Fprintf(&b, "| %s | %s | %s | %s | %s | %s |\n",
			tx.Time, tx.Name, tx.Type,
			formatPrice(p, tx),
			poolName(p, tx.Source), poolName(p, tx.Target))
	}
	printMarkdown(b.String())
	return subcommands.ExitSuccess
}

func formatPrice(p *poverty.Poverty, tx poverty.Transaction) string {
	if tx.Price == nil {
		return ""
	}
	cur := p.Currency(tx.Currency)
	if cur == nil {
		return tx.Price.String()
	}
	return fmt.Sprintf("%s %s", cur.FormatAmount(*tx.Price), cur.Name)
}

func poolName(p *poverty.Poverty, id string) string {
	if id == "" {
		return ""
	}
	if pool := p.Pool(id); pool != nil {
		return pool.Name
	}
	return id
}
