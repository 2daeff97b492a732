package renderer

import (
	"bytes"
	"fmt"

	"github.com/etnz/carteira"
	md "github.com/nao1215/markdown"
)

// StatementMarkdown renders a full account statement: the account, a summary
// of its wallets, then the orders of each wallet.
func StatementMarkdown(s *carteira.Statement) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Statement of %s", s.Account.Name))
	doc.PlainText(fmt.Sprintf("CPF %s, %d wallet(s), balance %s", s.Account.CPF, len(s.Wallets), md.Bold(reais(s.Balance))))

	if len(s.Wallets) == 0 {
		return doc.String()
	}

	summary := md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignLeft, md.AlignLeft, md.AlignRight, md.AlignRight},
		Header:    []string{"Code", "Name", "Profile", "Orders", "Balance"},
		Rows:      [][]string{},
	}
	for _, w := range s.Wallets {
		summary.Rows = append(summary.Rows, []string{
			w.Wallet.Code.String(),
			w.Wallet.Name.String(),
			w.Wallet.Profile.String(),
			fmt.Sprint(len(w.Orders)),
			reais(w.Balance),
		})
	}
	summary.Rows = append(summary.Rows, []string{md.Bold("Total"), "", "", "", md.Bold(reais(s.Balance))})
	doc.H2("Wallets")
	doc.Table(summary)

	for _, w := range s.Wallets {
		doc.H2(fmt.Sprintf("%s %s", w.Wallet.Code, w.Wallet.Name))
		writeOrders(doc, w.Orders)
	}
	return doc.String()
}
