package carteira

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// PasswordCost is the bcrypt cost used to hash passwords.
var PasswordCost = bcrypt.DefaultCost

// Account is the owner of wallets, identified by a CPF.
type Account struct {
	CPF          CPF
	Name         Name
	PasswordHash []byte // bcrypt hash, the password itself is never stored.
}

// NewAccount returns an account with password hashed.
func NewAccount(cpf CPF, name Name, password Password) (Account, error) {
	a := Account{CPF: cpf, Name: name}
	if err := a.SetPassword(password); err != nil {
		return Account{}, err
	}
	return a, nil
}

// SetPassword replaces the account password hash.
func (a *Account) SetPassword(p Password) error {
	h, err := bcrypt.GenerateFromPassword([]byte(p.String()), PasswordCost)
	if err != nil {
		return fmt.Errorf("cannot hash password: %w", err)
	}
	a.PasswordHash = h
	return nil
}

// CheckPassword reports whether p is the account password.
func (a Account) CheckPassword(p Password) bool {
	return bcrypt.CompareHashAndPassword(a.PasswordHash, []byte(p.String())) == nil
}

// MarshalJSON never includes the password hash.
func (a Account) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("cpf", a.CPF)
	w.Append("name", a.Name)
	return w.MarshalJSON()
}
