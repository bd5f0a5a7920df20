package cmd

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/poverty-ledger/poverty"
)

type queryCmd struct{}

func (*queryCmd) Name() string     { return "query" }
func (*queryCmd) Synopsis() string { return "evaluate a jsonpath expression against the document" }
func (*queryCmd) Usage() string {
	return `poverty query <path>

  Evaluates a jsonpath expression against the document and prints the
  result as JSON.

Usage Examples:
$ poverty query '$.pools[*].name'
$ poverty query '$.currencies[?(@.default)].id'
`
}

func (*queryCmd) SetFlags(_ *flag.FlagSet) {}

func (*queryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: exactly one jsonpath expression is expected.")
		return subcommands.ExitUsageError
	}

	p, err := Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	result, err := poverty.Query(p.Document(), f.Arg(0))
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	out, err := json.MarshalIndent(result, "", "\t")
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	fmt.Println(string(out))
	return subcommands.ExitSuccess
}
