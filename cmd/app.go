// Package cmd implements the CLI application managing a Poverty JSON
// document.
package cmd

import (
	"flag"

	"github.com/google/subcommands"
	"github.com/poverty-ledger/poverty"
)

// Register the subcommands.
// A main package calls Register() to declare the commands, and Execute() on
// the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&initCmd{}, "document")
	c.Register(&fmtCmd{}, "document")
	c.Register(&queryCmd{}, "document")
	c.Register(&serveCmd{}, "document")

	c.Register(&txCmd{}, "transactions")
	c.Register(&addTxCmd{}, "transactions")

	c.Register(&addCurrencyCmd{}, "entities")
	c.Register(&addPoolCmd{}, "entities")
	c.Register(&addBudgetCmd{}, "entities")
	c.Register(&deleteCmd{}, "entities")

	c.Register(&topicCmd{}, "help")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to
// use global variables.

var documentFile = flag.String("file", "poverty.json", "Path to the Poverty JSON document")

// DocumentFile returns the path of the document the commands operate on.
func DocumentFile() string { return *documentFile }

// Load reads and validates the app document.
func Load() (*poverty.Poverty, error) {
	return poverty.LoadFile(DocumentFile())
}

// Save writes the app document back in canonical form.
func Save(p *poverty.Poverty) error {
	return poverty.SaveFile(DocumentFile(), p)
}
