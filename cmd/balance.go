package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/etnz/carteira"
	"github.com/etnz/carteira/cotahist"
	"github.com/etnz/carteira/renderer"
	"github.com/google/subcommands"
)

// --- balance ---

type balanceCmd struct {
	credentials
	wallet carteira.Code
}

func (*balanceCmd) Name() string     { return "balance" }
func (*balanceCmd) Synopsis() string { return "show the balance of the account or of a wallet" }
func (*balanceCmd) Usage() string {
	return `carteira balance [-wallet <code>]

  Prints the sum of the order values of a wallet, or of all the wallets of the
  account. A wallet without orders, or an account without wallets, shows 0,01.
`
}

func (c *balanceCmd) SetFlags(f *flag.FlagSet) {
	c.credentials.SetFlags(f)
	f.Var(&c.wallet, "wallet", "wallet code, defaults to the whole account")
}

func (c *balanceCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return c.run(ctx, func(ctx context.Context, book *carteira.Book, a carteira.Account) error {
		if c.wallet.IsZero() {
			fmt.Fprintf(stdout, "R$ %s\n", book.AccountBalance(ctx, a.CPF))
			return nil
		}
		w, err := ownWallet(ctx, book, a, c.wallet)
		if err != nil {
			return err
		}
		fmt.Fprintf(stdout, "R$ %s\n", book.WalletBalance(ctx, w.Code))
		return nil
	})
}

// --- dates ---

type datesCmd struct {
	ticker tickerFlag
	raw    bool
}

func (*datesCmd) Name() string     { return "dates" }
func (*datesCmd) Synopsis() string { return "list the days with a reference price for a ticker" }
func (*datesCmd) Usage() string {
	return `carteira dates -ticker <symbol> [-raw]

  Lists the days of the reference price file that have a record for ticker.
  With -raw, prints every record of the ticker with its unparsed price field.
`
}

func (c *datesCmd) SetFlags(f *flag.FlagSet) {
	f.Var(&c.ticker, "ticker", "ticker symbol, e.g. PETR4")
	f.BoolVar(&c.raw, "raw", false, "print the raw records instead of the dates")
}

func (c *datesCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.ticker.IsZero() {
		return usage(f, "-ticker is required")
	}
	file := cotahist.NewFile(cfg.Prices)
	if c.raw {
		quotes, err := file.Quotes(c.ticker.String())
		if err != nil {
			return fail(err)
		}
		for _, q := range quotes {
			fmt.Fprintf(stdout, "%s\t%s\t%q\n", q.Date, q.Ticker, q.Price)
		}
		return subcommands.ExitSuccess
	}
	days, err := file.Dates(c.ticker.String())
	if err != nil {
		log := newLogger()
		log.Error().Err(err).Str("prices", cfg.Prices).Msg("cannot read reference prices")
		return fail(err)
	}
	printMarkdown(renderer.DatesMarkdown(c.ticker.Ticker, days))
	return subcommands.ExitSuccess
}
