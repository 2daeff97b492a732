package cmd

import (
	"context"
	"flag"
	"fmt"
	"strings"

	"github.com/etnz/carteira"
	"github.com/google/subcommands"
)

// credentials are the -cpf and -password flags of account bound commands.
type credentials struct {
	cpf      string
	password string
}

func (c *credentials) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.cpf, "cpf", getEnv("CARTEIRA_CPF", ""), "account CPF, DDD.DDD.DDD-DD (env CARTEIRA_CPF)")
	f.StringVar(&c.password, "password", getEnv("CARTEIRA_PASSWORD", ""), "account password (env CARTEIRA_PASSWORD)")
}

// login authenticates against book.
func (c *credentials) login(ctx context.Context, book *carteira.Book) (carteira.Account, error) {
	cpf, err := carteira.ParseCPF(c.cpf)
	if err != nil {
		return carteira.Account{}, err
	}
	password, err := carteira.ParsePassword(c.password)
	if err != nil {
		return carteira.Account{}, err
	}
	return book.Authenticate(ctx, cpf, password)
}

// run opens the book, authenticates and calls fn with the account.
func (c *credentials) run(ctx context.Context, fn func(ctx context.Context, book *carteira.Book, a carteira.Account) error) subcommands.ExitStatus {
	book, closeBook, err := OpenBook(ctx)
	if err != nil {
		return fail(err)
	}
	defer closeBook()

	a, err := c.login(ctx, book)
	if err != nil {
		return fail(err)
	}
	if err := fn(ctx, book, a); err != nil {
		return fail(err)
	}
	return subcommands.ExitSuccess
}

// ownWallet returns the wallet code if it belongs to a. Wallets of other
// accounts are reported as not found.
func ownWallet(ctx context.Context, book *carteira.Book, a carteira.Account, code carteira.Code) (carteira.Wallet, error) {
	w, err := book.Wallet(ctx, code)
	if err != nil {
		return carteira.Wallet{}, err
	}
	if w.Owner != a.CPF {
		return carteira.Wallet{}, fmt.Errorf("wallet %s: %w", code, carteira.ErrNotFound)
	}
	return w, nil
}

// ownOrder returns the order code if its wallet belongs to a.
func ownOrder(ctx context.Context, book *carteira.Book, a carteira.Account, code carteira.Code) (carteira.Order, error) {
	o, err := book.Order(ctx, code)
	if err != nil {
		return carteira.Order{}, err
	}
	if _, err := ownWallet(ctx, book, a, o.Wallet); err != nil {
		return carteira.Order{}, fmt.Errorf("order %s: %w", code, carteira.ErrNotFound)
	}
	return o, nil
}

// padTicker upper cases a symbol such as "petr4" and pads it to
// carteira.TickerWidth.
func padTicker(symbol string) (carteira.Ticker, error) {
	symbol = strings.ToUpper(strings.TrimSpace(symbol))
	if len(symbol) < carteira.TickerWidth {
		symbol += strings.Repeat(" ", carteira.TickerWidth-len(symbol))
	}
	return carteira.ParseTicker(symbol)
}

// tickerFlag is a flag.Value accepting unpadded symbols.
type tickerFlag struct{ carteira.Ticker }

func (t *tickerFlag) Set(raw string) error {
	v, err := padTicker(raw)
	if err != nil {
		return err
	}
	t.Ticker = v
	return nil
}

func (t *tickerFlag) String() string { return t.Symbol() }
