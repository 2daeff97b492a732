package cmd

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/etnz/carteira"
	"github.com/google/subcommands"
)

// Standard streams, replaced by tests.
var (
	stdin  io.Reader = os.Stdin
	stdout io.Writer = os.Stdout
	stderr io.Writer = os.Stderr
)

// printMarkdown renders doc for the terminal, or prints it as is with -plain
// or when rendering fails.
func printMarkdown(doc string) {
	if !cfg.Plain {
		r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(100))
		if err == nil {
			if out, err := r.Render(doc); err == nil {
				fmt.Fprint(stdout, out)
				return
			}
		}
	}
	fmt.Fprint(stdout, doc)
	if !strings.HasSuffix(doc, "\n") {
		fmt.Fprintln(stdout)
	}
}

// message turns an error into the text shown to the user.
func message(err error) string {
	switch {
	case errors.Is(err, carteira.ErrUnauthorized):
		return "CPF or password incorrect."
	case errors.Is(err, carteira.ErrWalletLimit):
		return fmt.Sprintf("An account cannot have more than %d wallets.", carteira.MaxWallets)
	case errors.Is(err, carteira.ErrHasChildren):
		return fmt.Sprintf("Cannot delete, remove its content first (%v).", err)
	case errors.Is(err, carteira.ErrPriceMissing):
		return fmt.Sprintf("No reference price for that ticker on that date (%v).", err)
	case errors.Is(err, carteira.ErrDuplicate):
		return fmt.Sprintf("Already exists (%v).", err)
	case errors.Is(err, carteira.ErrNotFound):
		return fmt.Sprintf("Not found (%v).", err)
	case errors.Is(err, carteira.ErrInvalid):
		var verr *carteira.ValidationError
		if errors.As(err, &verr) {
			return fmt.Sprintf("Invalid %s: %s.", verr.Type, verr.Rule)
		}
		return fmt.Sprintf("Invalid input (%v).", err)
	case errors.Is(err, carteira.ErrStorageUnavailable):
		return fmt.Sprintf("Storage unavailable (%v).", err)
	}
	return fmt.Sprintf("Error: %v", err)
}

// fail reports err and returns the failure status.
func fail(err error) subcommands.ExitStatus {
	fmt.Fprintln(stderr, message(err))
	return subcommands.ExitFailure
}

// usage reports a usage error.
func usage(f *flag.FlagSet, format string, args ...any) subcommands.ExitStatus {
	fmt.Fprintf(stderr, format+"\n", args...)
	f.Usage()
	return subcommands.ExitUsageError
}
