package sqlstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/etnz/carteira"
)

func scanOrder(row rowScanner) (carteira.Order, error) {
	var code, ticker, day, value, quantity, wallet string
	if err := row.Scan(&code, &ticker, &day, &value, &quantity, &wallet); err != nil {
		return carteira.Order{}, err
	}
	var o carteira.Order
	if err := errors.Join(
		o.Code.Set(code),
		o.Ticker.Set(ticker),
		o.Date.Set(day),
		o.Value.Set(value),
		o.Quantity.Set(quantity),
		o.Wallet.Set(wallet),
	); err != nil {
		return carteira.Order{}, fmt.Errorf("corrupt order record %s: %w", code, err)
	}
	return o, nil
}

// FindOrder returns the order identified by code.
func (s *Store) FindOrder(ctx context.Context, code carteira.Code) (carteira.Order, error) {
	row := s.queryRow(ctx, `SELECT code, ticker, day, value, quantity, wallet FROM orders WHERE code = ?`, code.String())
	o, err := scanOrder(row)
	if errors.Is(err, sql.ErrNoRows) {
		return carteira.Order{}, fmt.Errorf("order %s: %w", code, carteira.ErrNotFound)
	}
	if err != nil {
		return carteira.Order{}, fmt.Errorf("failed to get order: %w", err)
	}
	return o, nil
}

// ListOrders returns the orders of wallet ordered by code.
func (s *Store) ListOrders(ctx context.Context, wallet carteira.Code) ([]carteira.Order, error) {
	rows, err := s.query(ctx,
		`SELECT code, ticker, day, value, quantity, wallet FROM orders WHERE wallet = ? ORDER BY code`,
		wallet.String())
	if err != nil {
		return nil, fmt.Errorf("failed to query orders: %w", err)
	}
	defer rows.Close()

	var orders []carteira.Order
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan order: %w", err)
		}
		orders = append(orders, o)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating orders: %w", err)
	}
	return orders, nil
}

// InsertOrder creates an order.
func (s *Store) InsertOrder(ctx context.Context, o carteira.Order) error {
	res, err := s.exec(ctx,
		`INSERT INTO orders (code, ticker, day, value, quantity, wallet) VALUES (?, ?, ?, ?, ?, ?) ON CONFLICT (code) DO NOTHING`,
		o.Code.String(), o.Ticker.String(), o.Date.String(), o.Value.String(), o.Quantity.String(), o.Wallet.String())
	if err != nil {
		return fmt.Errorf("failed to create order: %w", err)
	}
	if err := affected(res, fmt.Errorf("order %s: %w", o.Code, carteira.ErrDuplicate)); err != nil {
		return err
	}
	s.log.Debug().Str("order", o.Code.String()).Msg("order inserted")
	return nil
}

// DeleteOrder deletes an order.
func (s *Store) DeleteOrder(ctx context.Context, code carteira.Code) error {
	res, err := s.exec(ctx, `DELETE FROM orders WHERE code = ?`, code.String())
	if err != nil {
		return fmt.Errorf("failed to delete order: %w", err)
	}
	return affected(res, fmt.Errorf("order %s: %w", code, carteira.ErrNotFound))
}
