package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/poverty-ledger/poverty"
)

type initCmd struct {
	force bool
}

func (*initCmd) Name() string     { return "init" }
func (*initCmd) Synopsis() string { return "create an empty Poverty JSON document" }
func (*initCmd) Usage() string {
	return `poverty init [-force]

  Creates an empty document at the path given by -file. Refuses to overwrite
  an existing file unless -force is set.
`
}

func (c *initCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.force, "force", false, "Overwrite an existing document.")
}

func (c *initCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if !c.force {
		if _, err := os.Stat(DocumentFile()); err == nil {
			fmt.Fprintf(os.Stderr, "Error: %q already exists, use -force to overwrite.\n", DocumentFile())
			return subcommands.ExitUsageError
		}
	}
	if err := Save(poverty.New()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Created empty document %q.\n", DocumentFile())
	return subcommands.ExitSuccess
}
