// Command carteira keeps the book of a stock investor: accounts, wallets and
// purchase orders valued from the B3 historical quotes file.
package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/etnz/carteira/cmd"
	"github.com/google/subcommands"
)

func main() {
	cmd.RegisterFlags(flag.CommandLine)
	cmd.Completion(flag.CommandLine).Complete("carteira")

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	cmd.Register(commander)

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}
