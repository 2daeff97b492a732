package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/etnz/carteira"
	"github.com/etnz/carteira/renderer"
	"github.com/google/subcommands"
)

// --- register ---

type registerCmd struct {
	cpf      carteira.CPF
	name     carteira.Name
	password carteira.Password
}

func (*registerCmd) Name() string     { return "register" }
func (*registerCmd) Synopsis() string { return "create an account" }
func (*registerCmd) Usage() string {
	return `carteira register -cpf <DDD.DDD.DDD-DD> -name <name> -password <password>

  Creates an account. The password has 6 distinct characters with an upper case
  letter, a lower case letter, a digit and one of #$%&.
`
}

func (c *registerCmd) SetFlags(f *flag.FlagSet) {
	f.Var(&c.cpf, "cpf", "CPF of the account owner")
	f.Var(&c.name, "name", "name of the account owner, at most 20 characters")
	f.Var(&c.password, "password", "account password")
}

func (c *registerCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.cpf.IsZero() || c.name.IsZero() || c.password.IsZero() {
		return usage(f, "-cpf, -name and -password are required")
	}
	book, closeBook, err := OpenBook(ctx)
	if err != nil {
		return fail(err)
	}
	defer closeBook()

	a, err := book.Register(ctx, c.cpf, c.name, c.password)
	if err != nil {
		return fail(err)
	}
	fmt.Fprintf(stdout, "Account %s created for %s.\n", a.CPF, a.Name)
	return subcommands.ExitSuccess
}

// --- account ---

type accountCmd struct {
	credentials
	name        carteira.Name
	newPassword carteira.Password
}

func (*accountCmd) Name() string     { return "account" }
func (*accountCmd) Synopsis() string { return "show or edit the account" }
func (*accountCmd) Usage() string {
	return `carteira account [-name <name>] [-new-password <password>]

  Shows the account and its balance. With -name or -new-password, updates the
  account first.
`
}

func (c *accountCmd) SetFlags(f *flag.FlagSet) {
	c.credentials.SetFlags(f)
	f.Var(&c.name, "name", "new name")
	f.Var(&c.newPassword, "new-password", "new password")
}

func (c *accountCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return c.run(ctx, func(ctx context.Context, book *carteira.Book, a carteira.Account) error {
		if !c.name.IsZero() || !c.newPassword.IsZero() {
			var err error
			if a, err = book.UpdateAccount(ctx, a.CPF, c.name, c.newPassword); err != nil {
				return err
			}
		}
		printMarkdown(renderer.AccountMarkdown(a, book.AccountBalance(ctx, a.CPF)))
		return nil
	})
}

// --- close-account ---

type closeAccountCmd struct {
	credentials
}

func (*closeAccountCmd) Name() string     { return "close-account" }
func (*closeAccountCmd) Synopsis() string { return "delete an account without wallets" }
func (*closeAccountCmd) Usage() string {
	return `carteira close-account

  Deletes the account. All its wallets must be removed first.
`
}

func (c *closeAccountCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return c.run(ctx, func(ctx context.Context, book *carteira.Book, a carteira.Account) error {
		if err := book.DeleteAccount(ctx, a.CPF); err != nil {
			return err
		}
		fmt.Fprintf(stdout, "Account %s closed.\n", a.CPF)
		return nil
	})
}
