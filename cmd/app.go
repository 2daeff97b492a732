// Package cmd implements the carteira command line: one subcommand per
// operation on accounts, wallets and orders, and an interactive menu.
package cmd

import (
	"flag"
	"sort"

	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

// groups lists the subcommands by group, in help order.
var groups = []struct {
	name     string
	commands []subcommands.Command
}{
	{"account", []subcommands.Command{&registerCmd{}, &accountCmd{}, &closeAccountCmd{}, &balanceCmd{}, &reportCmd{}}},
	{"wallets", []subcommands.Command{&walletsCmd{}, &addWalletCmd{}, &editWalletCmd{}, &removeWalletCmd{}}},
	{"orders", []subcommands.Command{&ordersCmd{}, &buyCmd{}, &removeOrderCmd{}, &datesCmd{}}},
	{"", []subcommands.Command{&menuCmd{}, &topicCmd{}}},
}

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(c.HelpCommand(), "")
	c.Register(c.FlagsCommand(), "")
	c.Register(c.CommandsCommand(), "")
	for _, g := range groups {
		for _, cmd := range g.commands {
			c.Register(cmd, g.name)
		}
	}
}

// flagPredictors suggest values for the flags of known domains.
var flagPredictors = map[string]complete.Predictor{
	"profile":      predict.Set{"Conservador", "Moderado", "Agressivo"},
	"prices":       predict.Files("*"),
	"log-level":    predict.Set{"debug", "info", "warn", "error", "disabled"},
	"password":     predict.Nothing,
	"new-password": predict.Nothing,
}

// Completion describes the command line for shell completion: global flags
// from global, and the flags of every registered subcommand.
func Completion(global *flag.FlagSet) *complete.Command {
	root := &complete.Command{
		Sub:   map[string]*complete.Command{},
		Flags: predictFlags(global),
	}
	for _, g := range groups {
		for _, cmd := range g.commands {
			fs := flag.NewFlagSet(cmd.Name(), flag.ContinueOnError)
			cmd.SetFlags(fs)
			sub := &complete.Command{Flags: predictFlags(fs)}
			if _, ok := cmd.(*topicCmd); ok {
				sub.Args = topicPredictor()
			}
			root.Sub[cmd.Name()] = sub
		}
	}
	return root
}

func predictFlags(fs *flag.FlagSet) map[string]complete.Predictor {
	flags := map[string]complete.Predictor{}
	fs.VisitAll(func(f *flag.Flag) {
		p, ok := flagPredictors[f.Name]
		if !ok {
			p = predict.Something
		}
		flags[f.Name] = p
	})
	return flags
}

func topicPredictor() complete.Predictor {
	topics, err := allTopics()
	if err != nil {
		return predict.Nothing
	}
	sort.Strings(topics)
	return predict.Set(topics)
}
