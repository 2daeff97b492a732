package cmd

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"

	"github.com/PaesslerAG/jsonpath"
	"github.com/etnz/carteira"
	"github.com/etnz/carteira/renderer"
	"github.com/google/subcommands"
)

type reportCmd struct {
	credentials
	path     string
	markdown bool
}

func (*reportCmd) Name() string     { return "report" }
func (*reportCmd) Synopsis() string { return "print the account statement" }
func (*reportCmd) Usage() string {
	return `carteira report [-path <jsonpath>] [-md]

  Prints the statement of the account as JSON: its wallets, their orders and
  all the balances. -path selects a part of it, e.g.

  $ carteira report -path '$.wallets[*].balance'
`
}

func (c *reportCmd) SetFlags(f *flag.FlagSet) {
	c.credentials.SetFlags(f)
	f.StringVar(&c.path, "path", "", "JSONPath expression applied to the statement")
	f.BoolVar(&c.markdown, "md", false, "print the statement as a markdown document")
}

func (c *reportCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.markdown && c.path != "" {
		return usage(f, "-md and -path cannot be used together")
	}
	return c.run(ctx, func(ctx context.Context, book *carteira.Book, a carteira.Account) error {
		s, err := book.Statement(ctx, a.CPF)
		if err != nil {
			return err
		}
		if c.markdown {
			printMarkdown(renderer.StatementMarkdown(s))
			return nil
		}
		out, err := selectJSON(s, c.path)
		if err != nil {
			return err
		}
		fmt.Fprintln(stdout, string(out))
		return nil
	})
}

// selectJSON marshals v and applies the JSONPath expression path, if any.
func selectJSON(v any, path string) ([]byte, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	var jobj any
	if err := json.Unmarshal(data, &jobj); err != nil {
		return nil, err
	}
	if path != "" {
		if jobj, err = jsonpath.Get(path, jobj); err != nil {
			return nil, fmt.Errorf("error evaluating %q: %w", path, err)
		}
	}
	return json.MarshalIndent(jobj, "", "  ")
}
