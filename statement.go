package carteira

import "context"

// Statement is the state of an account at a point in time: its wallets, their
// orders and all the balances.
type Statement struct {
	Account Account
	Balance Money
	Wallets []WalletStatement
}

// WalletStatement is a wallet with its orders and balance.
type WalletStatement struct {
	Wallet  Wallet
	Balance Money
	Orders  []Order
}

// Statement computes the statement of the account of cpf.
func (b *Book) Statement(ctx context.Context, cpf CPF) (*Statement, error) {
	a, err := b.Account(ctx, cpf)
	if err != nil {
		return nil, err
	}
	wallets, err := b.Wallets(ctx, cpf)
	if err != nil {
		return nil, err
	}
	s := &Statement{Account: a, Balance: b.AccountBalance(ctx, cpf)}
	for _, w := range wallets {
		orders, err := b.Orders(ctx, w.Code)
		if err != nil {
			return nil, err
		}
		s.Wallets = append(s.Wallets, WalletStatement{
			Wallet:  w,
			Balance: b.WalletBalance(ctx, w.Code),
			Orders:  orders,
		})
	}
	return s, nil
}

func (s Statement) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.EmbedFrom(s.Account)
	w.Append("balance", s.Balance)
	wallets := s.Wallets
	if wallets == nil {
		wallets = []WalletStatement{}
	}
	w.Append("wallets", wallets)
	return w.MarshalJSON()
}

func (s WalletStatement) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.EmbedFrom(Wallet{Code: s.Wallet.Code, Name: s.Wallet.Name, Profile: s.Wallet.Profile})
	w.Append("balance", s.Balance)
	orders := make([]Order, 0, len(s.Orders))
	for _, o := range s.Orders {
		o.Wallet = Code{}
		orders = append(orders, o)
	}
	w.Append("orders", orders)
	return w.MarshalJSON()
}
