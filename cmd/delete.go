package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type deleteCmd struct {
	kind string
}

func (*deleteCmd) Name() string     { return "delete" }
func (*deleteCmd) Synopsis() string { return "delete an entity by id" }
func (*deleteCmd) Usage() string {
	return `poverty delete -kind tx|currency|pool|budget|account <id>

  Deletes the entity. An entity still referenced by another one is
  protected and the delete is refused.
`
}

func (c *deleteCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.kind, "kind", "", "Kind of the entity to delete (required).")
}

func (c *deleteCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: exactly one id is expected.")
		return subcommands.ExitUsageError
	}
	id := f.Arg(0)

	p, err := Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	var del func(string) error
	switch c.kind {
	case "tx", "transaction":
		del = p.DeleteTransaction
	case "currency":
		del = p.DeleteCurrency
	case "pool":
		del = p.DeletePool
	case "budget":
		del = p.DeleteBudget
	case "account":
		del = p.DeleteAccount
	default:
		fmt.Fprintf(os.Stderr, "Error: unknown kind %q.\n", c.kind)
		return subcommands.ExitUsageError
	}

	if err := del(id); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	if err := Save(p); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	fmt.Fprintf(os.Stderr, "Deleted %s %q.\n", c.kind, id)
	return subcommands.ExitSuccess
}
