// Package renderer formats carteira records as markdown documents.
package renderer

import (
	"bytes"
	"fmt"

	"github.com/etnz/carteira"
	md "github.com/nao1215/markdown"
)

// AccountMarkdown renders an account and its balance.
func AccountMarkdown(a carteira.Account, balance carteira.Money) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Account %s", a.CPF))
	doc.Table(md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight},
		Header:    []string{"Field", "Value"},
		Rows: [][]string{
			{"Name", a.Name.String()},
			{"CPF", a.CPF.String()},
			{md.Bold("Balance"), md.Bold(reais(balance))},
		},
	})
	return doc.String()
}

// WalletBalance pairs a wallet with its balance.
type WalletBalance struct {
	Wallet  carteira.Wallet
	Balance carteira.Money
}

// WalletsMarkdown renders the wallets of an account with their balances.
func WalletsMarkdown(owner carteira.CPF, wallets []WalletBalance) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Wallets of %s", owner))
	if len(wallets) == 0 {
		doc.PlainText("No wallet yet.")
		return doc.String()
	}
	table := md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignLeft, md.AlignLeft, md.AlignRight},
		Header:    []string{"Code", "Name", "Profile", "Balance"},
		Rows:      [][]string{},
	}
	for _, w := range wallets {
		table.Rows = append(table.Rows, []string{
			w.Wallet.Code.String(),
			w.Wallet.Name.String(),
			w.Wallet.Profile.String(),
			reais(w.Balance),
		})
	}
	doc.Table(table)
	doc.PlainText(fmt.Sprintf("%d of %d wallets.", len(wallets), carteira.MaxWallets))
	return doc.String()
}

// OrdersMarkdown renders the orders of a wallet and its balance.
func OrdersMarkdown(w carteira.Wallet, orders []carteira.Order, balance carteira.Money) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Wallet %s %s", w.Code, w.Name))
	doc.PlainText(fmt.Sprintf("Profile: %s", w.Profile))
	writeOrders(doc, orders)
	doc.PlainText(fmt.Sprintf("Balance: %s", md.Bold(reais(balance))))
	return doc.String()
}

func writeOrders(doc *md.Markdown, orders []carteira.Order) {
	if len(orders) == 0 {
		doc.PlainText("No order yet.")
		return
	}
	table := md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignLeft, md.AlignLeft, md.AlignRight, md.AlignRight},
		Header:    []string{"Code", "Ticker", "Date", "Quantity", "Value"},
		Rows:      [][]string{},
	}
	for _, o := range orders {
		table.Rows = append(table.Rows, []string{
			o.Code.String(),
			o.Ticker.Symbol(),
			brDate(o.Date),
			o.Quantity.String(),
			reais(o.Value),
		})
	}
	doc.Table(table)
}

// DatesMarkdown renders the days with a reference price for ticker.
func DatesMarkdown(ticker carteira.Ticker, days []string) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Reference dates for %s", ticker.Symbol()))
	if len(days) == 0 {
		doc.PlainText(fmt.Sprintf("No reference price for %s.", ticker.Symbol()))
		return doc.String()
	}
	items := make([]string, 0, len(days))
	for _, d := range days {
		if day, err := carteira.ParseDate(d); err == nil {
			items = append(items, fmt.Sprintf("%s (%s)", d, brDate(day)))
			continue
		}
		items = append(items, d)
	}
	doc.OrderedList(items...)
	return doc.String()
}
