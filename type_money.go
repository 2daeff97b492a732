package carteira

import (
	"regexp"
	"strings"
)

// Money bounds, in cents.
const (
	MinCents int64 = 1
	MaxCents int64 = 100_000_000_00
)

// NoFunds is the balance shown for a wallet or an account without orders.
//
// It is the smallest valid Money, not zero: Money cannot represent zero.
var NoFunds = Money{"0,01"}

// moneyPattern rejects leading zeros: "0,50" but not "00,50" nor "0.500,00".
var moneyPattern = regexp.MustCompile(`^(0|[1-9]\d{0,2}(\.\d{3})*),\d{2}$`)

// Money is an amount of reais in Brazilian notation: "." groups thousands and
// "," separates exactly two decimals, e.g. "1.234,56".
type Money struct{ value string }

// ParseMoney validates raw as Money between 0,01 and 100.000.000,00.
func ParseMoney(raw string) (Money, error) {
	if !moneyPattern.MatchString(raw) {
		return Money{}, invalid("money", raw, "want format #.###.###,## with exactly 2 decimals")
	}
	whole, _, _ := strings.Cut(raw, ",")
	if len(strings.ReplaceAll(whole, ".", "")) > 9 {
		return Money{}, invalid("money", raw, "must be between 0,01 and 100.000.000,00")
	}
	if c := ToCents(Money{raw}); c < MinCents || c > MaxCents {
		return Money{}, invalid("money", raw, "must be between 0,01 and 100.000.000,00")
	}
	return Money{raw}, nil
}

// MustMoney is like ParseMoney but panics on error.
func MustMoney(raw string) Money { return must(ParseMoney(raw)) }

// Set implements flag.Value.
func (m *Money) Set(raw string) error { return set(m, ParseMoney, raw) }

// String returns the amount in Brazilian notation.
func (m Money) String() string { return m.value }

// Cents returns the amount as an integer number of cents.
func (m Money) Cents() int64 { return ToCents(m) }

// IsZero reports whether the amount is unset.
func (m Money) IsZero() bool { return m.value == "" }

func (m Money) MarshalText() ([]byte, error) { return []byte(m.value), nil }
func (m *Money) UnmarshalText(b []byte) error { return m.Set(string(b)) }
