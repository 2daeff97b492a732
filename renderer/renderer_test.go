package renderer

import (
	"testing"

	"github.com/etnz/carteira"
	"github.com/stretchr/testify/assert"
)

var (
	ana = carteira.Account{CPF: carteira.MustCPF("529.982.247-25"), Name: carteira.MustName("Ana Souza")}
	acoes = carteira.Wallet{
		Code:    carteira.MustCode("00001"),
		Name:    carteira.MustName("Ações"),
		Profile: carteira.MustProfile(carteira.Aggressive),
		Owner:   ana.CPF,
	}
	buy = carteira.Order{
		Code:     carteira.MustCode("00010"),
		Ticker:   carteira.MustTicker("PETR4       "),
		Date:     carteira.MustDate("20240102"),
		Value:    carteira.MustMoney("3.745,00"),
		Quantity: carteira.MustQuantity("100"),
		Wallet:   acoes.Code,
	}
)

func TestAccountMarkdown(t *testing.T) {
	got := AccountMarkdown(ana, carteira.NoFunds)
	assert.Contains(t, got, "# Account 529.982.247-25")
	assert.Contains(t, got, "Ana Souza")
	assert.Contains(t, got, "R$ 0,01")
}

func TestWalletsMarkdown(t *testing.T) {
	got := WalletsMarkdown(ana.CPF, nil)
	assert.Contains(t, got, "No wallet yet.")

	got = WalletsMarkdown(ana.CPF, []WalletBalance{{Wallet: acoes, Balance: carteira.MustMoney("3.745,00")}})
	assert.Contains(t, got, "00001")
	assert.Contains(t, got, "Ações")
	assert.Contains(t, got, "Agressivo")
	assert.Contains(t, got, "R$ 3.745,00")
	assert.Contains(t, got, "1 of 5 wallets.")
}

func TestOrdersMarkdown(t *testing.T) {
	got := OrdersMarkdown(acoes, nil, carteira.NoFunds)
	assert.Contains(t, got, "No order yet.")
	assert.Contains(t, got, "R$ 0,01")

	got = OrdersMarkdown(acoes, []carteira.Order{buy}, buy.Value)
	assert.Contains(t, got, "# Wallet 00001 Ações")
	assert.Contains(t, got, "PETR4")
	assert.NotContains(t, got, "PETR4       ", "tickers are shown without padding")
	assert.Contains(t, got, "02/01/2024")
	assert.Contains(t, got, "R$ 3.745,00")
}

func TestDatesMarkdown(t *testing.T) {
	ticker := carteira.MustTicker("VALE3       ")
	got := DatesMarkdown(ticker, nil)
	assert.Contains(t, got, "No reference price for VALE3.")

	got = DatesMarkdown(ticker, []string{"20240102", "20240103"})
	assert.Contains(t, got, "20240102 (02/01/2024)")
	assert.Contains(t, got, "20240103 (03/01/2024)")
}

func TestStatementMarkdown(t *testing.T) {
	empty := &carteira.Statement{Account: ana, Balance: carteira.NoFunds}
	got := StatementMarkdown(empty)
	assert.Contains(t, got, "# Statement of Ana Souza")
	assert.Contains(t, got, "0 wallet(s)")
	assert.NotContains(t, got, "## Wallets")

	s := &carteira.Statement{
		Account: ana,
		Balance: carteira.MustMoney("3.745,01"),
		Wallets: []carteira.WalletStatement{
			{Wallet: acoes, Balance: buy.Value, Orders: []carteira.Order{buy}},
			{Wallet: carteira.Wallet{Code: carteira.MustCode("00002"), Name: carteira.MustName("Reserva"), Profile: carteira.MustProfile(carteira.Conservative)}, Balance: carteira.NoFunds},
		},
	}
	got = StatementMarkdown(s)
	assert.Contains(t, got, "## Wallets")
	assert.Contains(t, got, "## 00001 Ações")
	assert.Contains(t, got, "## 00002 Reserva")
	assert.Contains(t, got, "No order yet.")
	assert.Contains(t, got, "R$ 3.745,01")
}

func TestBrDate(t *testing.T) {
	assert.Equal(t, "29/02/2024", brDate(carteira.MustDate("20240229")))
	assert.Equal(t, "", brDate(carteira.Date{}))
}
