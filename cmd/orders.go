package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/etnz/carteira"
	"github.com/etnz/carteira/renderer"
	"github.com/google/subcommands"
)

// --- orders ---

type ordersCmd struct {
	credentials
	wallet carteira.Code
}

func (*ordersCmd) Name() string     { return "orders" }
func (*ordersCmd) Synopsis() string { return "list the orders of a wallet" }
func (*ordersCmd) Usage() string {
	return `carteira orders -wallet <5 digits>

  Lists the orders of a wallet and its balance.
`
}

func (c *ordersCmd) SetFlags(f *flag.FlagSet) {
	c.credentials.SetFlags(f)
	f.Var(&c.wallet, "wallet", "wallet code")
}

func (c *ordersCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.wallet.IsZero() {
		return usage(f, "-wallet is required")
	}
	return c.run(ctx, func(ctx context.Context, book *carteira.Book, a carteira.Account) error {
		w, err := ownWallet(ctx, book, a, c.wallet)
		if err != nil {
			return err
		}
		orders, err := book.Orders(ctx, w.Code)
		if err != nil {
			return err
		}
		printMarkdown(renderer.OrdersMarkdown(w, orders, book.WalletBalance(ctx, w.Code)))
		return nil
	})
}

// --- buy ---

type buyCmd struct {
	credentials
	wallet   carteira.Code
	code     carteira.Code
	ticker   tickerFlag
	date     carteira.Date
	quantity carteira.Quantity
}

func (*buyCmd) Name() string     { return "buy" }
func (*buyCmd) Synopsis() string { return "record a purchase order" }
func (*buyCmd) Usage() string {
	return `carteira buy -wallet <code> -code <code> -ticker <symbol> [-date <YYYYMMDD>] -quantity <n>

  Records the purchase of shares into a wallet. The order value is the
  average price of the day in the reference file times the quantity.
  The date defaults to today.
`
}

func (c *buyCmd) SetFlags(f *flag.FlagSet) {
	c.credentials.SetFlags(f)
	c.date = carteira.Today()
	f.Var(&c.wallet, "wallet", "wallet code")
	f.Var(&c.code, "code", "order code, 5 digits")
	f.Var(&c.ticker, "ticker", "ticker symbol, e.g. PETR4")
	f.Var(&c.date, "date", "trading day, YYYYMMDD")
	f.Var(&c.quantity, "quantity", "number of shares, 1 to 1.000.000")
}

func (c *buyCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.wallet.IsZero() || c.code.IsZero() || c.ticker.IsZero() || c.quantity.IsZero() {
		return usage(f, "-wallet, -code, -ticker and -quantity are required")
	}
	return c.run(ctx, func(ctx context.Context, book *carteira.Book, a carteira.Account) error {
		if _, err := ownWallet(ctx, book, a, c.wallet); err != nil {
			return err
		}
		o, err := book.CreateOrder(ctx, c.wallet, c.code, c.ticker.Ticker, c.date, c.quantity)
		if err != nil {
			return err
		}
		fmt.Fprintf(stdout, "Order %s: %s x %s on %s for R$ %s.\n", o.Code, o.Quantity, o.Ticker.Symbol(), o.Date, o.Value)
		return nil
	})
}

// --- remove-order ---

type removeOrderCmd struct {
	credentials
	code carteira.Code
}

func (*removeOrderCmd) Name() string     { return "remove-order" }
func (*removeOrderCmd) Synopsis() string { return "delete an order" }
func (*removeOrderCmd) Usage() string {
	return `carteira remove-order -code <5 digits>

  Deletes an order.
`
}

func (c *removeOrderCmd) SetFlags(f *flag.FlagSet) {
	c.credentials.SetFlags(f)
	f.Var(&c.code, "code", "order code")
}

func (c *removeOrderCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.code.IsZero() {
		return usage(f, "-code is required")
	}
	return c.run(ctx, func(ctx context.Context, book *carteira.Book, a carteira.Account) error {
		if _, err := ownOrder(ctx, book, a, c.code); err != nil {
			return err
		}
		if err := book.DeleteOrder(ctx, c.code); err != nil {
			return err
		}
		fmt.Fprintf(stdout, "Order %s removed.\n", c.code)
		return nil
	})
}
