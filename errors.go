package carteira

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalid is matched by every *ValidationError.
	ErrInvalid = errors.New("invalid value")
	// ErrNotFound is returned when a referenced account, wallet or order does not exist.
	ErrNotFound = errors.New("not found")
	// ErrDuplicate is returned when a key is already in use.
	ErrDuplicate = errors.New("already exists")
	// ErrHasChildren is returned when deleting a record that still owns records.
	ErrHasChildren = errors.New("still referenced")
	// ErrPriceMissing is returned when the reference file has no price for a ticker on a date.
	ErrPriceMissing = errors.New("no reference price")
	// ErrStorageUnavailable is returned when the store is not connected.
	ErrStorageUnavailable = errors.New("storage unavailable")
	// ErrWalletLimit is returned when an account already owns MaxWallets wallets.
	ErrWalletLimit = errors.New("wallet limit reached")
	// ErrUnauthorized is returned when a CPF/password pair does not authenticate.
	ErrUnauthorized = errors.New("invalid cpf or password")
)

// ValidationError reports a raw string rejected by a domain value.
type ValidationError struct {
	Type  string // domain type name, e.g. "cpf"
	Value string // rejected input
	Rule  string // violated rule, human readable
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s %q: %s", e.Type, e.Value, e.Rule)
}

// Is makes errors.Is(err, ErrInvalid) true for any validation error.
func (e *ValidationError) Is(target error) bool { return target == ErrInvalid }

// invalid is a shorthand to build a *ValidationError.
func invalid(typ, value, rule string) error {
	return &ValidationError{Type: typ, Value: value, Rule: rule}
}
