package carteira

import "context"

// Store persists accounts, wallets and orders.
//
// Find*, Update* and Delete* return an error wrapping ErrNotFound when the key
// is absent, Insert* an error wrapping ErrDuplicate when it is taken. Store
// does not enforce ownership rules: Book does.
type Store interface {
	FindAccount(ctx context.Context, cpf CPF) (Account, error)
	InsertAccount(ctx context.Context, a Account) error
	UpdateAccount(ctx context.Context, a Account) error
	DeleteAccount(ctx context.Context, cpf CPF) error

	FindWallet(ctx context.Context, code Code) (Wallet, error)
	// ListWallets returns the wallets of owner ordered by code.
	ListWallets(ctx context.Context, owner CPF) ([]Wallet, error)
	InsertWallet(ctx context.Context, w Wallet) error
	UpdateWallet(ctx context.Context, w Wallet) error
	DeleteWallet(ctx context.Context, code Code) error
	WalletHasOrders(ctx context.Context, code Code) (bool, error)

	FindOrder(ctx context.Context, code Code) (Order, error)
	// ListOrders returns the orders of wallet ordered by code.
	ListOrders(ctx context.Context, wallet Code) ([]Order, error)
	InsertOrder(ctx context.Context, o Order) error
	DeleteOrder(ctx context.Context, code Code) error

	Close() error
}

// PriceSource answers reference price queries.
//
// ticker is the 12 characters padded ticker, day is YYYYMMDD.
type PriceSource interface {
	// FindPrice returns the average price of ticker on day, and false if
	// there is none.
	FindPrice(ticker, day string) (float64, bool, error)
	// Dates returns the days with a record for ticker, empty if none.
	Dates(ticker string) ([]string, error)
}
