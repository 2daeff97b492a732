package cmd

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/etnz/carteira"
	"github.com/etnz/carteira/renderer"
	"github.com/google/subcommands"
)

type menuCmd struct{}

func (*menuCmd) Name() string     { return "menu" }
func (*menuCmd) Synopsis() string { return "interactive text menu" }
func (*menuCmd) Usage() string {
	return `carteira menu

  Runs the interactive menu: log in or register, then manage the account,
  its wallets and their orders. End of input quits.
`
}

func (*menuCmd) SetFlags(*flag.FlagSet) {}

func (*menuCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	book, closeBook, err := OpenBook(ctx)
	if err != nil {
		return fail(err)
	}
	defer closeBook()

	m := &menu{in: bufio.NewScanner(stdin), out: stdout, book: book}
	if err := m.run(ctx); err != nil {
		return fail(err)
	}
	return subcommands.ExitSuccess
}

// menu is an interactive session over a line oriented input.
type menu struct {
	in      *bufio.Scanner
	out     io.Writer
	book    *carteira.Book
	account carteira.Account // zero when logged out
}

// action is a menu entry.
type action struct {
	label string
	run   func(ctx context.Context) error
}

// errQuit leaves the current menu level.
var errQuit = errors.New("quit")

// line prompts and reads one trimmed line. It returns io.EOF at end of input.
func (m *menu) line(prompt string) (string, error) {
	fmt.Fprintf(m.out, "%s: ", prompt)
	if !m.in.Scan() {
		if err := m.in.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return strings.TrimSpace(m.in.Text()), nil
}

// ask prompts until v accepts the input.
func (m *menu) ask(prompt string, v flag.Value) error {
	for {
		s, err := m.line(prompt)
		if err != nil {
			return err
		}
		if err := v.Set(s); err != nil {
			fmt.Fprintln(m.out, message(err))
			continue
		}
		return nil
	}
}

// askOptional is like ask but an empty input leaves v unchanged.
func (m *menu) askOptional(prompt string, v flag.Value) error {
	for {
		s, err := m.line(prompt + " (empty to keep)")
		if err != nil || s == "" {
			return err
		}
		if err := v.Set(s); err != nil {
			fmt.Fprintln(m.out, message(err))
			continue
		}
		return nil
	}
}

// choose shows actions and runs the chosen one until the user picks 0 or the
// action returns errQuit.
func (m *menu) choose(ctx context.Context, title string, actions []action) error {
	for {
		fmt.Fprintf(m.out, "\n%s\n", title)
		for i, a := range actions {
			fmt.Fprintf(m.out, "%2d) %s\n", i+1, a.label)
		}
		fmt.Fprintln(m.out, " 0) Back")

		s, err := m.line("Choice")
		if err != nil {
			return err
		}
		n, err := strconv.Atoi(s)
		if err != nil || n < 0 || n > len(actions) {
			fmt.Fprintf(m.out, "Unknown choice %q.\n", s)
			continue
		}
		if n == 0 {
			return nil
		}
		switch err := actions[n-1].run(ctx); {
		case errors.Is(err, errQuit):
			return nil
		case errors.Is(err, io.EOF):
			return err
		case err != nil:
			fmt.Fprintln(m.out, message(err))
		}
	}
}

// run is the top level loop. It returns nil at end of input.
func (m *menu) run(ctx context.Context) error {
	err := m.choose(ctx, "carteira", []action{
		{"Log in", m.login},
		{"Register", m.register},
	})
	if errors.Is(err, io.EOF) {
		fmt.Fprintln(m.out)
		return nil
	}
	return err
}

func (m *menu) login(ctx context.Context) error {
	var cpf carteira.CPF
	var password carteira.Password
	if err := m.ask("CPF", &cpf); err != nil {
		return err
	}
	if err := m.ask("Password", &password); err != nil {
		return err
	}
	a, err := m.book.Authenticate(ctx, cpf, password)
	if err != nil {
		return err
	}
	m.account = a
	defer func() { m.account = carteira.Account{} }()
	fmt.Fprintf(m.out, "Welcome %s.\n", a.Name)
	return m.session(ctx)
}

func (m *menu) register(ctx context.Context) error {
	var cpf carteira.CPF
	var name carteira.Name
	var password carteira.Password
	if err := m.ask("CPF", &cpf); err != nil {
		return err
	}
	if err := m.ask("Name", &name); err != nil {
		return err
	}
	if err := m.ask("Password", &password); err != nil {
		return err
	}
	a, err := m.book.Register(ctx, cpf, name, password)
	if err != nil {
		return err
	}
	fmt.Fprintf(m.out, "Account %s created.\n", a.CPF)
	return nil
}

// session is the menu of a logged in account.
func (m *menu) session(ctx context.Context) error {
	return m.choose(ctx, "Account "+m.account.CPF.String(), []action{
		{"Show account", m.showAccount},
		{"Edit account", m.editAccount},
		{"Close account", m.closeAccount},
		{"List wallets", m.listWallets},
		{"Add wallet", m.addWallet},
		{"Edit wallet", m.editWallet},
		{"Remove wallet", m.removeWallet},
		{"List orders", m.listOrders},
		{"Buy", m.buy},
		{"Remove order", m.removeOrder},
		{"Reference dates", m.dates},
	})
}

func (m *menu) print(doc string) {
	fmt.Fprint(m.out, doc)
	if !strings.HasSuffix(doc, "\n") {
		fmt.Fprintln(m.out)
	}
}

func (m *menu) showAccount(ctx context.Context) error {
	m.print(renderer.AccountMarkdown(m.account, m.book.AccountBalance(ctx, m.account.CPF)))
	return nil
}

func (m *menu) editAccount(ctx context.Context) error {
	var name carteira.Name
	var password carteira.Password
	if err := m.askOptional("Name", &name); err != nil {
		return err
	}
	if err := m.askOptional("Password", &password); err != nil {
		return err
	}
	a, err := m.book.UpdateAccount(ctx, m.account.CPF, name, password)
	if err != nil {
		return err
	}
	m.account = a
	fmt.Fprintln(m.out, "Account updated.")
	return nil
}

func (m *menu) closeAccount(ctx context.Context) error {
	if err := m.book.DeleteAccount(ctx, m.account.CPF); err != nil {
		return err
	}
	fmt.Fprintln(m.out, "Account closed.")
	return errQuit
}

func (m *menu) listWallets(ctx context.Context) error {
	rows, err := walletBalances(ctx, m.book, m.account)
	if err != nil {
		return err
	}
	m.print(renderer.WalletsMarkdown(m.account.CPF, rows))
	return nil
}

func (m *menu) addWallet(ctx context.Context) error {
	var code carteira.Code
	var name carteira.Name
	var profile carteira.Profile
	if err := m.ask("Wallet code", &code); err != nil {
		return err
	}
	if err := m.ask("Name", &name); err != nil {
		return err
	}
	if err := m.ask("Profile ("+strings.Join(carteira.Profiles, ", ")+")", &profile); err != nil {
		return err
	}
	w, err := m.book.CreateWallet(ctx, m.account.CPF, code, name, profile)
	if err != nil {
		return err
	}
	fmt.Fprintf(m.out, "Wallet %s created.\n", w.Code)
	return nil
}

// wallet asks for the code of one of the account wallets.
func (m *menu) wallet(ctx context.Context) (carteira.Wallet, error) {
	var code carteira.Code
	if err := m.ask("Wallet code", &code); err != nil {
		return carteira.Wallet{}, err
	}
	return ownWallet(ctx, m.book, m.account, code)
}

func (m *menu) editWallet(ctx context.Context) error {
	w, err := m.wallet(ctx)
	if err != nil {
		return err
	}
	var name carteira.Name
	var profile carteira.Profile
	if err := m.askOptional("Name", &name); err != nil {
		return err
	}
	if err := m.askOptional("Profile", &profile); err != nil {
		return err
	}
	if _, err := m.book.UpdateWallet(ctx, w.Code, name, profile); err != nil {
		return err
	}
	fmt.Fprintln(m.out, "Wallet updated.")
	return nil
}

func (m *menu) removeWallet(ctx context.Context) error {
	w, err := m.wallet(ctx)
	if err != nil {
		return err
	}
	if err := m.book.DeleteWallet(ctx, w.Code); err != nil {
		return err
	}
	fmt.Fprintf(m.out, "Wallet %s removed.\n", w.Code)
	return nil
}

func (m *menu) listOrders(ctx context.Context) error {
	w, err := m.wallet(ctx)
	if err != nil {
		return err
	}
	orders, err := m.book.Orders(ctx, w.Code)
	if err != nil {
		return err
	}
	m.print(renderer.OrdersMarkdown(w, orders, m.book.WalletBalance(ctx, w.Code)))
	return nil
}

func (m *menu) buy(ctx context.Context) error {
	w, err := m.wallet(ctx)
	if err != nil {
		return err
	}
	var code carteira.Code
	var ticker tickerFlag
	var day carteira.Date
	var qty carteira.Quantity
	if err := m.ask("Order code", &code); err != nil {
		return err
	}
	if err := m.ask("Ticker", &ticker); err != nil {
		return err
	}
	if err := m.ask("Date (YYYYMMDD)", &day); err != nil {
		return err
	}
	if err := m.ask("Quantity", &qty); err != nil {
		return err
	}
	o, err := m.book.CreateOrder(ctx, w.Code, code, ticker.Ticker, day, qty)
	if err != nil {
		return err
	}
	fmt.Fprintf(m.out, "Order %s recorded for R$ %s.\n", o.Code, o.Value)
	return nil
}

func (m *menu) removeOrder(ctx context.Context) error {
	var code carteira.Code
	if err := m.ask("Order code", &code); err != nil {
		return err
	}
	if _, err := ownOrder(ctx, m.book, m.account, code); err != nil {
		return err
	}
	if err := m.book.DeleteOrder(ctx, code); err != nil {
		return err
	}
	fmt.Fprintf(m.out, "Order %s removed.\n", code)
	return nil
}

func (m *menu) dates(ctx context.Context) error {
	var ticker tickerFlag
	if err := m.ask("Ticker", &ticker); err != nil {
		return err
	}
	days, err := m.book.AvailableDates(ticker.Ticker)
	if err != nil {
		return err
	}
	m.print(renderer.DatesMarkdown(ticker.Ticker, days))
	return nil
}
