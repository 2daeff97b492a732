package sqlstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/etnz/carteira"
)

// rowScanner is implemented by *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanAccount(row rowScanner) (carteira.Account, error) {
	var cpf, name, hash string
	if err := row.Scan(&cpf, &name, &hash); err != nil {
		return carteira.Account{}, err
	}
	var a carteira.Account
	if err := a.CPF.Set(cpf); err != nil {
		return carteira.Account{}, fmt.Errorf("corrupt account record: %w", err)
	}
	if err := a.Name.Set(name); err != nil {
		return carteira.Account{}, fmt.Errorf("corrupt account record %s: %w", cpf, err)
	}
	a.PasswordHash = []byte(hash)
	return a, nil
}

// FindAccount returns the account of cpf.
func (s *Store) FindAccount(ctx context.Context, cpf carteira.CPF) (carteira.Account, error) {
	row := s.queryRow(ctx, `SELECT cpf, name, password_hash FROM accounts WHERE cpf = ?`, cpf.String())
	a, err := scanAccount(row)
	if errors.Is(err, sql.ErrNoRows) {
		return carteira.Account{}, fmt.Errorf("account %s: %w", cpf, carteira.ErrNotFound)
	}
	if err != nil {
		return carteira.Account{}, fmt.Errorf("failed to get account: %w", err)
	}
	return a, nil
}

// InsertAccount creates an account.
func (s *Store) InsertAccount(ctx context.Context, a carteira.Account) error {
	res, err := s.exec(ctx,
		`INSERT INTO accounts (cpf, name, password_hash) VALUES (?, ?, ?) ON CONFLICT (cpf) DO NOTHING`,
		a.CPF.String(), a.Name.String(), string(a.PasswordHash))
	if err != nil {
		return fmt.Errorf("failed to create account: %w", err)
	}
	return affected(res, fmt.Errorf("account %s: %w", a.CPF, carteira.ErrDuplicate))
}

// UpdateAccount replaces the name and password hash of an account.
func (s *Store) UpdateAccount(ctx context.Context, a carteira.Account) error {
	res, err := s.exec(ctx,
		`UPDATE accounts SET name = ?, password_hash = ? WHERE cpf = ?`,
		a.Name.String(), string(a.PasswordHash), a.CPF.String())
	if err != nil {
		return fmt.Errorf("failed to update account: %w", err)
	}
	return affected(res, fmt.Errorf("account %s: %w", a.CPF, carteira.ErrNotFound))
}

// DeleteAccount deletes the account of cpf.
func (s *Store) DeleteAccount(ctx context.Context, cpf carteira.CPF) error {
	res, err := s.exec(ctx, `DELETE FROM accounts WHERE cpf = ?`, cpf.String())
	if err != nil {
		return fmt.Errorf("failed to delete account: %w", err)
	}
	return affected(res, fmt.Errorf("account %s: %w", cpf, carteira.ErrNotFound))
}

// affected returns none if the statement changed no row.
func affected(res sql.Result, none error) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to count affected rows: %w", err)
	}
	if n == 0 {
		return none
	}
	return nil
}
