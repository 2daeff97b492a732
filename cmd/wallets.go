package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/etnz/carteira"
	"github.com/etnz/carteira/renderer"
	"github.com/google/subcommands"
)

// walletBalances pairs each wallet of a with its balance.
func walletBalances(ctx context.Context, book *carteira.Book, a carteira.Account) ([]renderer.WalletBalance, error) {
	wallets, err := book.Wallets(ctx, a.CPF)
	if err != nil {
		return nil, err
	}
	rows := make([]renderer.WalletBalance, 0, len(wallets))
	for _, w := range wallets {
		rows = append(rows, renderer.WalletBalance{Wallet: w, Balance: book.WalletBalance(ctx, w.Code)})
	}
	return rows, nil
}

// --- wallets ---

type walletsCmd struct {
	credentials
}

func (*walletsCmd) Name() string     { return "wallets" }
func (*walletsCmd) Synopsis() string { return "list the wallets of the account" }
func (*walletsCmd) Usage() string {
	return `carteira wallets

  Lists the wallets of the account with their balances.
`
}

func (c *walletsCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return c.run(ctx, func(ctx context.Context, book *carteira.Book, a carteira.Account) error {
		rows, err := walletBalances(ctx, book, a)
		if err != nil {
			return err
		}
		printMarkdown(renderer.WalletsMarkdown(a.CPF, rows))
		return nil
	})
}

// --- add-wallet ---

type addWalletCmd struct {
	credentials
	code    carteira.Code
	name    carteira.Name
	profile carteira.Profile
}

func (*addWalletCmd) Name() string     { return "add-wallet" }
func (*addWalletCmd) Synopsis() string { return "create a wallet" }
func (*addWalletCmd) Usage() string {
	return `carteira add-wallet -code <5 digits> -name <name> -profile <Conservador|Moderado|Agressivo>

  Creates a wallet. An account has at most 5 wallets.
`
}

func (c *addWalletCmd) SetFlags(f *flag.FlagSet) {
	c.credentials.SetFlags(f)
	f.Var(&c.code, "code", "wallet code, 5 digits")
	f.Var(&c.name, "name", "wallet name")
	f.Var(&c.profile, "profile", "risk profile: Conservador, Moderado or Agressivo")
}

func (c *addWalletCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.code.IsZero() || c.name.IsZero() || c.profile.IsZero() {
		return usage(f, "-code, -name and -profile are required")
	}
	return c.run(ctx, func(ctx context.Context, book *carteira.Book, a carteira.Account) error {
		w, err := book.CreateWallet(ctx, a.CPF, c.code, c.name, c.profile)
		if err != nil {
			return err
		}
		fmt.Fprintf(stdout, "Wallet %s %s created.\n", w.Code, w.Name)
		return nil
	})
}

// --- edit-wallet ---

type editWalletCmd struct {
	credentials
	code    carteira.Code
	name    carteira.Name
	profile carteira.Profile
}

func (*editWalletCmd) Name() string     { return "edit-wallet" }
func (*editWalletCmd) Synopsis() string { return "rename a wallet or change its profile" }
func (*editWalletCmd) Usage() string {
	return `carteira edit-wallet -code <5 digits> [-name <name>] [-profile <profile>]

  Changes the name and/or the risk profile of a wallet. The code cannot change.
`
}

func (c *editWalletCmd) SetFlags(f *flag.FlagSet) {
	c.credentials.SetFlags(f)
	f.Var(&c.code, "code", "wallet code")
	f.Var(&c.name, "name", "new wallet name")
	f.Var(&c.profile, "profile", "new risk profile")
}

func (c *editWalletCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.code.IsZero() || (c.name.IsZero() && c.profile.IsZero()) {
		return usage(f, "-code and one of -name or -profile are required")
	}
	return c.run(ctx, func(ctx context.Context, book *carteira.Book, a carteira.Account) error {
		if _, err := ownWallet(ctx, book, a, c.code); err != nil {
			return err
		}
		w, err := book.UpdateWallet(ctx, c.code, c.name, c.profile)
		if err != nil {
			return err
		}
		fmt.Fprintf(stdout, "Wallet %s is now %s (%s).\n", w.Code, w.Name, w.Profile)
		return nil
	})
}

// --- remove-wallet ---

type removeWalletCmd struct {
	credentials
	code carteira.Code
}

func (*removeWalletCmd) Name() string     { return "remove-wallet" }
func (*removeWalletCmd) Synopsis() string { return "delete a wallet without orders" }
func (*removeWalletCmd) Usage() string {
	return `carteira remove-wallet -code <5 digits>

  Deletes a wallet. All its orders must be removed first.
`
}

func (c *removeWalletCmd) SetFlags(f *flag.FlagSet) {
	c.credentials.SetFlags(f)
	f.Var(&c.code, "code", "wallet code")
}

func (c *removeWalletCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.code.IsZero() {
		return usage(f, "-code is required")
	}
	return c.run(ctx, func(ctx context.Context, book *carteira.Book, a carteira.Account) error {
		if _, err := ownWallet(ctx, book, a, c.code); err != nil {
			return err
		}
		if err := book.DeleteWallet(ctx, c.code); err != nil {
			return err
		}
		fmt.Fprintf(stdout, "Wallet %s removed.\n", c.code)
		return nil
	})
}
