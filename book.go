package carteira

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// Book is the bookkeeping service: it enforces the rules between accounts,
// wallets and orders, prices orders and computes balances.
//
// Balances are never stored, they are recomputed from the orders on every
// call.
type Book struct {
	store  Store
	prices PriceSource
	log    zerolog.Logger
}

// NewBook returns a Book over store and prices. A nil store makes every
// operation fail with ErrStorageUnavailable.
func NewBook(store Store, prices PriceSource, log zerolog.Logger) *Book {
	return &Book{
		store:  store,
		prices: prices,
		log:    log.With().Str("component", "book").Logger(),
	}
}

func (b *Book) ready() error {
	if b.store == nil {
		return ErrStorageUnavailable
	}
	return nil
}

// exists reports whether find succeeds, treating ErrNotFound as false.
func exists[T any](v T, err error) (bool, error) {
	if err == nil {
		return true, nil
	}
	if errors.Is(err, ErrNotFound) {
		return false, nil
	}
	return false, err
}

// --- accounts ---

// Register creates an account.
func (b *Book) Register(ctx context.Context, cpf CPF, name Name, password Password) (Account, error) {
	if err := b.ready(); err != nil {
		return Account{}, err
	}
	found, err := exists(b.store.FindAccount(ctx, cpf))
	if err != nil {
		return Account{}, err
	}
	if found {
		return Account{}, fmt.Errorf("account %s: %w", cpf, ErrDuplicate)
	}
	a, err := NewAccount(cpf, name, password)
	if err != nil {
		return Account{}, err
	}
	if err := b.store.InsertAccount(ctx, a); err != nil {
		return Account{}, err
	}
	b.log.Info().Str("cpf", cpf.String()).Msg("account registered")
	return a, nil
}

// Authenticate returns the account of cpf if password matches.
// Unknown accounts and wrong passwords both fail with ErrUnauthorized.
func (b *Book) Authenticate(ctx context.Context, cpf CPF, password Password) (Account, error) {
	if err := b.ready(); err != nil {
		return Account{}, err
	}
	a, err := b.store.FindAccount(ctx, cpf)
	if errors.Is(err, ErrNotFound) {
		b.log.Debug().Str("cpf", cpf.String()).Msg("authentication of unknown account")
		return Account{}, ErrUnauthorized
	}
	if err != nil {
		return Account{}, err
	}
	if !a.CheckPassword(password) {
		b.log.Debug().Str("cpf", cpf.String()).Msg("authentication with wrong password")
		return Account{}, ErrUnauthorized
	}
	return a, nil
}

// Account returns the account of cpf.
func (b *Book) Account(ctx context.Context, cpf CPF) (Account, error) {
	if err := b.ready(); err != nil {
		return Account{}, err
	}
	return b.store.FindAccount(ctx, cpf)
}

// UpdateAccount changes the name and/or the password of an account. Zero
// values leave the field unchanged.
func (b *Book) UpdateAccount(ctx context.Context, cpf CPF, name Name, password Password) (Account, error) {
	if err := b.ready(); err != nil {
		return Account{}, err
	}
	a, err := b.store.FindAccount(ctx, cpf)
	if err != nil {
		return Account{}, err
	}
	if !name.IsZero() {
		a.Name = name
	}
	if !password.IsZero() {
		if err := a.SetPassword(password); err != nil {
			return Account{}, err
		}
	}
	if err := b.store.UpdateAccount(ctx, a); err != nil {
		return Account{}, err
	}
	return a, nil
}

// DeleteAccount deletes an account that owns no wallet.
func (b *Book) DeleteAccount(ctx context.Context, cpf CPF) error {
	if err := b.ready(); err != nil {
		return err
	}
	if _, err := b.store.FindAccount(ctx, cpf); err != nil {
		return err
	}
	wallets, err := b.store.ListWallets(ctx, cpf)
	if err != nil {
		return err
	}
	if len(wallets) > 0 {
		return fmt.Errorf("account %s owns %d wallet(s): %w", cpf, len(wallets), ErrHasChildren)
	}
	if err := b.store.DeleteAccount(ctx, cpf); err != nil {
		return err
	}
	b.log.Info().Str("cpf", cpf.String()).Msg("account deleted")
	return nil
}

// --- wallets ---

// CreateWallet creates a wallet for owner.
func (b *Book) CreateWallet(ctx context.Context, owner CPF, code Code, name Name, profile Profile) (Wallet, error) {
	if err := b.ready(); err != nil {
		return Wallet{}, err
	}
	if _, err := b.store.FindAccount(ctx, owner); err != nil {
		return Wallet{}, err
	}
	wallets, err := b.store.ListWallets(ctx, owner)
	if err != nil {
		return Wallet{}, err
	}
	if len(wallets) >= MaxWallets {
		return Wallet{}, fmt.Errorf("account %s has %d wallets: %w", owner, len(wallets), ErrWalletLimit)
	}
	found, err := exists(b.store.FindWallet(ctx, code))
	if err != nil {
		return Wallet{}, err
	}
	if found {
		return Wallet{}, fmt.Errorf("wallet %s: %w", code, ErrDuplicate)
	}
	w := Wallet{Code: code, Name: name, Profile: profile, Owner: owner}
	if err := b.store.InsertWallet(ctx, w); err != nil {
		return Wallet{}, err
	}
	b.log.Info().Str("wallet", code.String()).Str("cpf", owner.String()).Msg("wallet created")
	return w, nil
}

// Wallet returns the wallet identified by code.
func (b *Book) Wallet(ctx context.Context, code Code) (Wallet, error) {
	if err := b.ready(); err != nil {
		return Wallet{}, err
	}
	return b.store.FindWallet(ctx, code)
}

// Wallets returns the wallets of owner.
func (b *Book) Wallets(ctx context.Context, owner CPF) ([]Wallet, error) {
	if err := b.ready(); err != nil {
		return nil, err
	}
	return b.store.ListWallets(ctx, owner)
}

// UpdateWallet changes the name and/or the profile of a wallet. Zero values
// leave the field unchanged. The code cannot change.
func (b *Book) UpdateWallet(ctx context.Context, code Code, name Name, profile Profile) (Wallet, error) {
	if err := b.ready(); err != nil {
		return Wallet{}, err
	}
	w, err := b.store.FindWallet(ctx, code)
	if err != nil {
		return Wallet{}, err
	}
	if !name.IsZero() {
		w.Name = name
	}
	if !profile.IsZero() {
		w.Profile = profile
	}
	if err := b.store.UpdateWallet(ctx, w); err != nil {
		return Wallet{}, err
	}
	return w, nil
}

// DeleteWallet deletes a wallet without orders.
func (b *Book) DeleteWallet(ctx context.Context, code Code) error {
	if err := b.ready(); err != nil {
		return err
	}
	if _, err := b.store.FindWallet(ctx, code); err != nil {
		return err
	}
	has, err := b.store.WalletHasOrders(ctx, code)
	if err != nil {
		return err
	}
	if has {
		return fmt.Errorf("wallet %s has orders: %w", code, ErrHasChildren)
	}
	if err := b.store.DeleteWallet(ctx, code); err != nil {
		return err
	}
	b.log.Info().Str("wallet", code.String()).Msg("wallet deleted")
	return nil
}

// --- orders ---

// CreateOrder records the purchase of qty shares of ticker on day into
// wallet, valued at the reference average price of that day.
//
// Nothing is stored when any step fails.
func (b *Book) CreateOrder(ctx context.Context, wallet, code Code, ticker Ticker, day Date, qty Quantity) (Order, error) {
	if err := b.ready(); err != nil {
		return Order{}, err
	}
	if _, err := b.store.FindWallet(ctx, wallet); err != nil {
		return Order{}, err
	}
	found, err := exists(b.store.FindOrder(ctx, code))
	if err != nil {
		return Order{}, err
	}
	if found {
		return Order{}, fmt.Errorf("order %s: %w", code, ErrDuplicate)
	}

	price, ok, err := b.prices.FindPrice(ticker.String(), day.String())
	if err != nil {
		return Order{}, fmt.Errorf("cannot read reference prices: %w", err)
	}
	if !ok {
		return Order{}, fmt.Errorf("%s on %s: %w", ticker.Symbol(), day, ErrPriceMissing)
	}
	value, err := OrderValue(price, qty)
	if err != nil {
		return Order{}, err
	}

	o := Order{Code: code, Ticker: ticker, Date: day, Value: value, Quantity: qty, Wallet: wallet}
	if err := b.store.InsertOrder(ctx, o); err != nil {
		return Order{}, err
	}
	b.log.Info().
		Str("order", code.String()).
		Str("wallet", wallet.String()).
		Str("ticker", ticker.Symbol()).
		Str("date", day.String()).
		Float64("price", price).
		Str("value", value.String()).
		Msg("order created")
	return o, nil
}

var (
	minValue = decimal.New(MinCents, -2)
	maxValue = decimal.New(MaxCents, -2)
)

// OrderValue computes price × qty rounded to the cent.
//
// price comes from the reference file as hundredths divided by 100, so its
// shortest decimal form is exact and the product needs no float arithmetic.
func OrderValue(price float64, qty Quantity) (Money, error) {
	total := decimal.NewFromFloat(price).Mul(decimal.NewFromInt(qty.Int())).Round(2)
	if total.LessThan(minValue) || total.GreaterThan(maxValue) {
		return Money{}, invalid("money", total.StringFixed(2), "order value must be between 0,01 and 100.000.000,00")
	}
	return FromCents(total.Shift(2).IntPart()), nil
}

// Order returns the order identified by code.
func (b *Book) Order(ctx context.Context, code Code) (Order, error) {
	if err := b.ready(); err != nil {
		return Order{}, err
	}
	return b.store.FindOrder(ctx, code)
}

// Orders returns the orders of wallet.
func (b *Book) Orders(ctx context.Context, wallet Code) ([]Order, error) {
	if err := b.ready(); err != nil {
		return nil, err
	}
	return b.store.ListOrders(ctx, wallet)
}

// DeleteOrder deletes an order.
func (b *Book) DeleteOrder(ctx context.Context, code Code) error {
	if err := b.ready(); err != nil {
		return err
	}
	if err := b.store.DeleteOrder(ctx, code); err != nil {
		return err
	}
	b.log.Info().Str("order", code.String()).Msg("order deleted")
	return nil
}

// AvailableDates returns the days with a reference record for ticker.
func (b *Book) AvailableDates(ticker Ticker) ([]string, error) {
	return b.prices.Dates(ticker.String())
}

// --- balances ---

// WalletBalance returns the sum of the values of the wallet orders, or
// NoFunds if there are none or they cannot be listed.
func (b *Book) WalletBalance(ctx context.Context, wallet Code) Money {
	orders, err := b.Orders(ctx, wallet)
	if err != nil {
		b.log.Warn().Err(err).Str("wallet", wallet.String()).Msg("cannot list orders, balance defaults to no funds")
		return NoFunds
	}
	if len(orders) == 0 {
		return NoFunds
	}
	var total int64
	for _, o := range orders {
		total += ToCents(o.Value)
	}
	return FromCents(total)
}

// AccountBalance returns the sum of the balances of the account wallets, or
// NoFunds if they cannot be listed.
//
// Each empty wallet counts for its NoFunds balance.
func (b *Book) AccountBalance(ctx context.Context, cpf CPF) Money {
	wallets, err := b.Wallets(ctx, cpf)
	if err != nil {
		b.log.Warn().Err(err).Str("cpf", cpf.String()).Msg("cannot list wallets, balance defaults to no funds")
		return NoFunds
	}
	var total int64
	for _, w := range wallets {
		total += ToCents(b.WalletBalance(ctx, w.Code))
	}
	return FromCents(total)
}
