package carteira_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/etnz/carteira"
	"github.com/etnz/carteira/sqlstore"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func init() { carteira.PasswordCost = bcrypt.MinCost }

// prices is an in-memory PriceSource keyed by ticker then day.
type prices map[string]map[string]float64

func (p prices) FindPrice(ticker, day string) (float64, bool, error) {
	v, ok := p[ticker][day]
	return v, ok, nil
}

func (p prices) Dates(ticker string) ([]string, error) {
	var days []string
	for d := range p[ticker] {
		days = append(days, d)
	}
	return days, nil
}

// brokenPrices fails every query.
type brokenPrices struct{}

func (brokenPrices) FindPrice(string, string) (float64, bool, error) {
	return 0, false, errors.New("disk on fire")
}
func (brokenPrices) Dates(string) ([]string, error) { return nil, errors.New("disk on fire") }

var (
	cpf      = carteira.MustCPF("529.982.247-25")
	password = carteira.MustPassword("Ab1#cd")
	petr4    = carteira.MustTicker("PETR4       ")
	vale3    = carteira.MustTicker("VALE3       ")
	itub4    = carteira.MustTicker("ITUB4       ")
	jan2     = carteira.MustDate("20240102")
	jan3     = carteira.MustDate("20240103")
)

// setupBook returns a Book over an in-memory database with one registered
// account and a few reference prices.
func setupBook(t *testing.T) *carteira.Book {
	t.Helper()
	store, err := sqlstore.Open(context.Background(), ":memory:", zerolog.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	book := carteira.NewBook(store, prices{
		petr4.String(): {jan2.String(): 37.45, jan3.String(): 38.01},
		vale3.String(): {jan2.String(): 68.90},
		itub4.String(): {jan2.String(): 250.00},
	}, zerolog.Nop())
	_, err = book.Register(context.Background(), cpf, carteira.MustName("Ana Souza"), password)
	require.NoError(t, err)
	return book
}

func code(s string) carteira.Code { return carteira.MustCode(s) }

func TestBook_Register(t *testing.T) {
	ctx := context.Background()
	book := setupBook(t)

	_, err := book.Register(ctx, cpf, carteira.MustName("Other"), password)
	assert.ErrorIs(t, err, carteira.ErrDuplicate)

	a, err := book.Authenticate(ctx, cpf, password)
	require.NoError(t, err)
	assert.Equal(t, "Ana Souza", a.Name.String())
	assert.NotContains(t, string(a.PasswordHash), password.String(), "passwords are hashed")

	_, err = book.Authenticate(ctx, cpf, carteira.MustPassword("Zz9$yx"))
	assert.ErrorIs(t, err, carteira.ErrUnauthorized)
	_, err = book.Authenticate(ctx, carteira.MustCPF("111.444.777-35"), password)
	assert.ErrorIs(t, err, carteira.ErrUnauthorized)
}

func TestBook_UpdateAccount(t *testing.T) {
	ctx := context.Background()
	book := setupBook(t)
	newPassword := carteira.MustPassword("Zz9$yx")

	a, err := book.UpdateAccount(ctx, cpf, carteira.Name{}, newPassword)
	require.NoError(t, err)
	assert.Equal(t, "Ana Souza", a.Name.String(), "a zero name keeps the current one")

	_, err = book.Authenticate(ctx, cpf, password)
	assert.ErrorIs(t, err, carteira.ErrUnauthorized)
	_, err = book.Authenticate(ctx, cpf, newPassword)
	assert.NoError(t, err)

	a, err = book.UpdateAccount(ctx, cpf, carteira.MustName("Ana"), carteira.Password{})
	require.NoError(t, err)
	assert.Equal(t, "Ana", a.Name.String())

	_, err = book.UpdateAccount(ctx, carteira.MustCPF("111.444.777-35"), carteira.MustName("X"), carteira.Password{})
	assert.ErrorIs(t, err, carteira.ErrNotFound)
}

func TestBook_Wallets(t *testing.T) {
	ctx := context.Background()
	book := setupBook(t)
	name := carteira.MustName("Aposentadoria")
	profile := carteira.MustProfile(carteira.Conservative)

	_, err := book.CreateWallet(ctx, carteira.MustCPF("111.444.777-35"), code("00001"), name, profile)
	assert.ErrorIs(t, err, carteira.ErrNotFound, "owner must exist")

	for _, c := range []string{"00001", "00002", "00003", "00004", "00005"} {
		_, err := book.CreateWallet(ctx, cpf, code(c), name, profile)
		require.NoError(t, err)
	}
	_, err = book.CreateWallet(ctx, cpf, code("00006"), name, profile)
	assert.ErrorIs(t, err, carteira.ErrWalletLimit)

	require.NoError(t, book.DeleteWallet(ctx, code("00005")))
	_, err = book.CreateWallet(ctx, cpf, code("00001"), name, profile)
	assert.ErrorIs(t, err, carteira.ErrDuplicate)

	w, err := book.UpdateWallet(ctx, code("00001"), carteira.Name{}, carteira.MustProfile(carteira.Aggressive))
	require.NoError(t, err)
	assert.Equal(t, "Aposentadoria", w.Name.String())
	assert.Equal(t, carteira.Aggressive, w.Profile.String())

	wallets, err := book.Wallets(ctx, cpf)
	require.NoError(t, err)
	assert.Len(t, wallets, 4)

	assert.ErrorIs(t, book.DeleteWallet(ctx, code("00009")), carteira.ErrNotFound)
}

func TestBook_CreateOrder(t *testing.T) {
	ctx := context.Background()
	book := setupBook(t)
	_, err := book.CreateWallet(ctx, cpf, code("00001"), carteira.MustName("Ações"), carteira.MustProfile(carteira.Moderate))
	require.NoError(t, err)

	o, err := book.CreateOrder(ctx, code("00001"), code("00010"), petr4, jan2, carteira.MustQuantity("100"))
	require.NoError(t, err)
	assert.Equal(t, "3.745,00", o.Value.String())

	_, err = book.CreateOrder(ctx, code("00001"), code("00010"), petr4, jan3, carteira.MustQuantity("1"))
	assert.ErrorIs(t, err, carteira.ErrDuplicate)

	_, err = book.CreateOrder(ctx, code("00009"), code("00011"), petr4, jan2, carteira.MustQuantity("1"))
	assert.ErrorIs(t, err, carteira.ErrNotFound)

	_, err = book.CreateOrder(ctx, code("00001"), code("00012"), vale3, jan3, carteira.MustQuantity("1"))
	assert.ErrorIs(t, err, carteira.ErrPriceMissing)
	_, err = book.Order(ctx, code("00012"))
	assert.ErrorIs(t, err, carteira.ErrNotFound, "nothing is stored when the price is missing")

	_, err = book.CreateOrder(ctx, code("00001"), code("00013"), itub4, jan2, carteira.MustQuantity("1.000.000"))
	assert.ErrorIs(t, err, carteira.ErrInvalid, "250.000.000,00 is out of range")
	_, err = book.Order(ctx, code("00013"))
	assert.ErrorIs(t, err, carteira.ErrNotFound)

	orders, err := book.Orders(ctx, code("00001"))
	require.NoError(t, err)
	assert.Len(t, orders, 1)
}

func TestBook_CreateOrder_PriceSourceError(t *testing.T) {
	ctx := context.Background()
	store, err := sqlstore.Open(ctx, ":memory:", zerolog.Nop())
	require.NoError(t, err)
	defer store.Close()
	book := carteira.NewBook(store, brokenPrices{}, zerolog.Nop())

	_, err = book.Register(ctx, cpf, carteira.MustName("Ana"), password)
	require.NoError(t, err)
	_, err = book.CreateWallet(ctx, cpf, code("00001"), carteira.MustName("A"), carteira.MustProfile(carteira.Moderate))
	require.NoError(t, err)

	_, err = book.CreateOrder(ctx, code("00001"), code("00010"), petr4, jan2, carteira.MustQuantity("1"))
	require.Error(t, err)
	assert.NotErrorIs(t, err, carteira.ErrPriceMissing)
	_, err = book.Order(ctx, code("00010"))
	assert.ErrorIs(t, err, carteira.ErrNotFound)
}

func TestBook_DeleteGuards(t *testing.T) {
	ctx := context.Background()
	book := setupBook(t)
	_, err := book.CreateWallet(ctx, cpf, code("00001"), carteira.MustName("A"), carteira.MustProfile(carteira.Moderate))
	require.NoError(t, err)
	_, err = book.CreateOrder(ctx, code("00001"), code("00010"), petr4, jan2, carteira.MustQuantity("10"))
	require.NoError(t, err)

	assert.ErrorIs(t, book.DeleteAccount(ctx, cpf), carteira.ErrHasChildren)
	assert.ErrorIs(t, book.DeleteWallet(ctx, code("00001")), carteira.ErrHasChildren)

	require.NoError(t, book.DeleteOrder(ctx, code("00010")))
	assert.ErrorIs(t, book.DeleteOrder(ctx, code("00010")), carteira.ErrNotFound)
	require.NoError(t, book.DeleteWallet(ctx, code("00001")))
	require.NoError(t, book.DeleteAccount(ctx, cpf))

	_, err = book.Account(ctx, cpf)
	assert.ErrorIs(t, err, carteira.ErrNotFound)
	assert.ErrorIs(t, book.DeleteAccount(ctx, cpf), carteira.ErrNotFound)
}

func TestBook_Balances(t *testing.T) {
	ctx := context.Background()
	book := setupBook(t)

	assert.Equal(t, carteira.NoFunds, book.AccountBalance(ctx, cpf), "no wallets")

	_, err := book.CreateWallet(ctx, cpf, code("00001"), carteira.MustName("A"), carteira.MustProfile(carteira.Moderate))
	require.NoError(t, err)
	_, err = book.CreateWallet(ctx, cpf, code("00002"), carteira.MustName("B"), carteira.MustProfile(carteira.Moderate))
	require.NoError(t, err)
	assert.Equal(t, "0,01", book.WalletBalance(ctx, code("00001")).String())

	_, err = book.CreateOrder(ctx, code("00001"), code("00010"), petr4, jan2, carteira.MustQuantity("100")) // 3.745,00
	require.NoError(t, err)
	_, err = book.CreateOrder(ctx, code("00001"), code("00011"), vale3, jan2, carteira.MustQuantity("1.000")) // 68.900,00
	require.NoError(t, err)

	assert.Equal(t, "72.645,00", book.WalletBalance(ctx, code("00001")).String())
	// the empty wallet counts for 0,01.
	assert.Equal(t, "72.645,01", book.AccountBalance(ctx, cpf).String())
	assert.Equal(t, "0,01", book.WalletBalance(ctx, code("00099")).String())

	s, err := book.Statement(ctx, cpf)
	require.NoError(t, err)
	require.Len(t, s.Wallets, 2)
	assert.Equal(t, "72.645,01", s.Balance.String())
	assert.Len(t, s.Wallets[0].Orders, 2)
	assert.Equal(t, "0,01", s.Wallets[1].Balance.String())

	data, err := json.Marshal(s)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "hash")
	assert.Contains(t, string(data), `"ticker":"PETR4"`)
}

func TestBook_NoStore(t *testing.T) {
	ctx := context.Background()
	book := carteira.NewBook(nil, prices{}, zerolog.Nop())

	_, err := book.Register(ctx, cpf, carteira.MustName("Ana"), password)
	assert.ErrorIs(t, err, carteira.ErrStorageUnavailable)
	_, err = book.Wallets(ctx, cpf)
	assert.ErrorIs(t, err, carteira.ErrStorageUnavailable)
	assert.Equal(t, carteira.NoFunds, book.WalletBalance(ctx, code("00001")))
	assert.Equal(t, carteira.NoFunds, book.AccountBalance(ctx, cpf))
}

func TestBook_AvailableDates(t *testing.T) {
	book := setupBook(t)
	days, err := book.AvailableDates(vale3)
	require.NoError(t, err)
	assert.Equal(t, []string{"20240102"}, days)
}
