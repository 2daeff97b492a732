package sqlstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/etnz/carteira"
)

func scanWallet(row rowScanner) (carteira.Wallet, error) {
	var code, name, profile, owner string
	if err := row.Scan(&code, &name, &profile, &owner); err != nil {
		return carteira.Wallet{}, err
	}
	var w carteira.Wallet
	if err := errors.Join(
		w.Code.Set(code),
		w.Name.Set(name),
		w.Profile.Set(profile),
		w.Owner.Set(owner),
	); err != nil {
		return carteira.Wallet{}, fmt.Errorf("corrupt wallet record %s: %w", code, err)
	}
	return w, nil
}

// FindWallet returns the wallet identified by code.
func (s *Store) FindWallet(ctx context.Context, code carteira.Code) (carteira.Wallet, error) {
	row := s.queryRow(ctx, `SELECT code, name, profile, owner FROM wallets WHERE code = ?`, code.String())
	w, err := scanWallet(row)
	if errors.Is(err, sql.ErrNoRows) {
		return carteira.Wallet{}, fmt.Errorf("wallet %s: %w", code, carteira.ErrNotFound)
	}
	if err != nil {
		return carteira.Wallet{}, fmt.Errorf("failed to get wallet: %w", err)
	}
	return w, nil
}

// ListWallets returns the wallets of owner ordered by code.
func (s *Store) ListWallets(ctx context.Context, owner carteira.CPF) ([]carteira.Wallet, error) {
	rows, err := s.query(ctx, `SELECT code, name, profile, owner FROM wallets WHERE owner = ? ORDER BY code`, owner.String())
	if err != nil {
		return nil, fmt.Errorf("failed to query wallets: %w", err)
	}
	defer rows.Close()

	var wallets []carteira.Wallet
	for rows.Next() {
		w, err := scanWallet(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan wallet: %w", err)
		}
		wallets = append(wallets, w)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating wallets: %w", err)
	}
	return wallets, nil
}

// InsertWallet creates a wallet.
func (s *Store) InsertWallet(ctx context.Context, w carteira.Wallet) error {
	res, err := s.exec(ctx,
		`INSERT INTO wallets (code, name, profile, owner) VALUES (?, ?, ?, ?) ON CONFLICT (code) DO NOTHING`,
		w.Code.String(), w.Name.String(), w.Profile.String(), w.Owner.String())
	if err != nil {
		return fmt.Errorf("failed to create wallet: %w", err)
	}
	return affected(res, fmt.Errorf("wallet %s: %w", w.Code, carteira.ErrDuplicate))
}

// UpdateWallet replaces the name and profile of a wallet.
func (s *Store) UpdateWallet(ctx context.Context, w carteira.Wallet) error {
	res, err := s.exec(ctx,
		`UPDATE wallets SET name = ?, profile = ? WHERE code = ?`,
		w.Name.String(), w.Profile.String(), w.Code.String())
	if err != nil {
		return fmt.Errorf("failed to update wallet: %w", err)
	}
	return affected(res, fmt.Errorf("wallet %s: %w", w.Code, carteira.ErrNotFound))
}

// DeleteWallet deletes a wallet.
func (s *Store) DeleteWallet(ctx context.Context, code carteira.Code) error {
	res, err := s.exec(ctx, `DELETE FROM wallets WHERE code = ?`, code.String())
	if err != nil {
		return fmt.Errorf("failed to delete wallet: %w", err)
	}
	return affected(res, fmt.Errorf("wallet %s: %w", code, carteira.ErrNotFound))
}

// WalletHasOrders reports whether at least one order references the wallet.
func (s *Store) WalletHasOrders(ctx context.Context, code carteira.Code) (bool, error) {
	var n int
	if err := s.queryRow(ctx, `SELECT COUNT(*) FROM orders WHERE wallet = ?`, code.String()).Scan(&n); err != nil {
		return false, fmt.Errorf("failed to count orders: %w", err)
	}
	return n > 0, nil
}
