// Package storetest checks that a carteira.Store honours the Store contract.
// Every Store implementation runs Run from its own tests.
package storetest

import (
	"context"
	"testing"

	"github.com/etnz/carteira"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Open returns a new empty store. It is called once per subtest.
type Open func(t *testing.T) carteira.Store

var (
	alice = carteira.Account{
		CPF:          carteira.MustCPF("529.982.247-25"),
		Name:         carteira.MustName("Alice"),
		PasswordHash: []byte("$2a$04$hash"),
	}
	bob = carteira.Account{
		CPF:  carteira.MustCPF("111.444.777-35"),
		Name: carteira.MustName("Bob"),
	}
)

func wallet(code string, owner carteira.Account) carteira.Wallet {
	return carteira.Wallet{
		Code:    carteira.MustCode(code),
		Name:    carteira.MustName("Wallet " + code),
		Profile: carteira.MustProfile(carteira.Moderate),
		Owner:   owner.CPF,
	}
}

func order(code, wallet string) carteira.Order {
	return carteira.Order{
		Code:     carteira.MustCode(code),
		Ticker:   carteira.MustTicker("PETR4       "),
		Date:     carteira.MustDate("20240102"),
		Value:    carteira.MustMoney("3.745,00"),
		Quantity: carteira.MustQuantity("100"),
		Wallet:   carteira.MustCode(wallet),
	}
}

// Run runs the contract suite against stores returned by open.
func Run(t *testing.T, open Open) {
	tests := []struct {
		name string
		run  func(t *testing.T, s carteira.Store)
	}{
		{"Accounts", testAccounts},
		{"Wallets", testWallets},
		{"Orders", testOrders},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := open(t)
			t.Cleanup(func() { s.Close() })
			tt.run(t, s)
		})
	}
}

func testAccounts(t *testing.T, s carteira.Store) {
	ctx := context.Background()

	_, err := s.FindAccount(ctx, alice.CPF)
	assert.ErrorIs(t, err, carteira.ErrNotFound)

	require.NoError(t, s.InsertAccount(ctx, alice))
	assert.ErrorIs(t, s.InsertAccount(ctx, alice), carteira.ErrDuplicate)

	got, err := s.FindAccount(ctx, alice.CPF)
	require.NoError(t, err)
	assert.Equal(t, alice, got)

	renamed := alice
	renamed.Name = carteira.MustName("Alice Souza")
	require.NoError(t, s.UpdateAccount(ctx, renamed))
	got, err = s.FindAccount(ctx, alice.CPF)
	require.NoError(t, err)
	assert.Equal(t, "Alice Souza", got.Name.String())
	assert.Equal(t, alice.PasswordHash, got.PasswordHash)

	assert.ErrorIs(t, s.UpdateAccount(ctx, bob), carteira.ErrNotFound)
	assert.ErrorIs(t, s.DeleteAccount(ctx, bob.CPF), carteira.ErrNotFound)

	require.NoError(t, s.DeleteAccount(ctx, alice.CPF))
	_, err = s.FindAccount(ctx, alice.CPF)
	assert.ErrorIs(t, err, carteira.ErrNotFound)
}

func testWallets(t *testing.T, s carteira.Store) {
	ctx := context.Background()
	require.NoError(t, s.InsertAccount(ctx, alice))
	require.NoError(t, s.InsertAccount(ctx, bob))

	wallets, err := s.ListWallets(ctx, alice.CPF)
	require.NoError(t, err)
	assert.Empty(t, wallets)

	// inserted out of order, listed by code.
	for _, w := range []carteira.Wallet{wallet("00003", alice), wallet("00001", alice), wallet("00002", bob)} {
		require.NoError(t, s.InsertWallet(ctx, w))
	}
	assert.ErrorIs(t, s.InsertWallet(ctx, wallet("00001", bob)), carteira.ErrDuplicate)

	wallets, err = s.ListWallets(ctx, alice.CPF)
	require.NoError(t, err)
	require.Len(t, wallets, 2)
	assert.Equal(t, wallet("00001", alice), wallets[0])
	assert.Equal(t, wallet("00003", alice), wallets[1])

	w := wallet("00001", alice)
	w.Profile = carteira.MustProfile(carteira.Aggressive)
	require.NoError(t, s.UpdateWallet(ctx, w))
	got, err := s.FindWallet(ctx, w.Code)
	require.NoError(t, err)
	assert.Equal(t, w, got)

	assert.ErrorIs(t, s.UpdateWallet(ctx, wallet("00009", alice)), carteira.ErrNotFound)
	_, err = s.FindWallet(ctx, carteira.MustCode("00009"))
	assert.ErrorIs(t, err, carteira.ErrNotFound)

	has, err := s.WalletHasOrders(ctx, w.Code)
	require.NoError(t, err)
	assert.False(t, has)

	require.NoError(t, s.DeleteWallet(ctx, w.Code))
	assert.ErrorIs(t, s.DeleteWallet(ctx, w.Code), carteira.ErrNotFound)
}

func testOrders(t *testing.T, s carteira.Store) {
	ctx := context.Background()
	require.NoError(t, s.InsertAccount(ctx, alice))
	require.NoError(t, s.InsertWallet(ctx, wallet("00001", alice)))
	require.NoError(t, s.InsertWallet(ctx, wallet("00002", alice)))

	require.NoError(t, s.InsertOrder(ctx, order("00020", "00001")))
	require.NoError(t, s.InsertOrder(ctx, order("00010", "00001")))
	require.NoError(t, s.InsertOrder(ctx, order("00030", "00002")))
	assert.ErrorIs(t, s.InsertOrder(ctx, order("00010", "00002")), carteira.ErrDuplicate)

	got, err := s.FindOrder(ctx, carteira.MustCode("00010"))
	require.NoError(t, err)
	assert.Equal(t, order("00010", "00001"), got)
	assert.Equal(t, "PETR4       ", got.Ticker.String(), "ticker padding is kept")

	orders, err := s.ListOrders(ctx, carteira.MustCode("00001"))
	require.NoError(t, err)
	require.Len(t, orders, 2)
	assert.Equal(t, "00010", orders[0].Code.String())
	assert.Equal(t, "00020", orders[1].Code.String())

	has, err := s.WalletHasOrders(ctx, carteira.MustCode("00002"))
	require.NoError(t, err)
	assert.True(t, has)

	require.NoError(t, s.DeleteOrder(ctx, carteira.MustCode("00030")))
	assert.ErrorIs(t, s.DeleteOrder(ctx, carteira.MustCode("00030")), carteira.ErrNotFound)
	_, err = s.FindOrder(ctx, carteira.MustCode("00030"))
	assert.ErrorIs(t, err, carteira.ErrNotFound)

	has, err = s.WalletHasOrders(ctx, carteira.MustCode("00002"))
	require.NoError(t, err)
	assert.False(t, has)
}
