package carteira

import (
	"strings"
	"unicode/utf8"
)

// passwordSymbols are the symbols a Password may contain.
const passwordSymbols = "#$%&"

// Password is a 6 characters secret made of distinct letters, digits and
// symbols. It needs at least one of each: upper case, lower case, digit and
// symbol among #$%&.
type Password struct{ value string }

// ParsePassword validates raw as a Password.
func ParsePassword(raw string) (Password, error) {
	// errors never echo a password.
	if utf8.RuneCountInString(raw) != 6 {
		return Password{}, invalid("password", "******", "want exactly 6 characters")
	}
	var upper, lower, digit, symbol bool
	for i := 0; i < len(raw); i++ {
		c := raw[i]
		switch {
		case isUpper(c):
			upper = true
		case isLower(c):
			lower = true
		case isDigit(c):
			digit = true
		case strings.IndexByte(passwordSymbols, c) >= 0:
			symbol = true
		default:
			return Password{}, invalid("password", "******", "only letters, digits and #$%& are allowed")
		}
		if strings.IndexByte(raw[:i], c) >= 0 {
			return Password{}, invalid("password", "******", "characters must all be different")
		}
	}
	if !(upper && lower && digit && symbol) {
		return Password{}, invalid("password", "******", "needs an upper case letter, a lower case letter, a digit and one of #$%&")
	}
	return Password{raw}, nil
}

// MustPassword is like ParsePassword but panics on error.
func MustPassword(raw string) Password { return must(ParsePassword(raw)) }

// Set implements flag.Value.
func (p *Password) Set(raw string) error { return set(p, ParsePassword, raw) }

// String returns the password in clear.
func (p Password) String() string { return p.value }

// IsZero reports whether the password is unset.
func (p Password) IsZero() bool { return p.value == "" }
