package carteira

import (
	"regexp"
	"strconv"
	"strings"
)

// MaxQuantity is the largest quantity of a single order.
const MaxQuantity = 1_000_000

var quantityPattern = regexp.MustCompile(`^([1-9]\d*|[1-9]\d{0,2}(\.\d{3})+)$`)

// Quantity is a number of shares, written with plain digits ("1000") or with
// "." grouping thousands ("1.000").
type Quantity struct{ value string }

// ParseQuantity validates raw as a Quantity between 1 and 1.000.000.
func ParseQuantity(raw string) (Quantity, error) {
	if !quantityPattern.MatchString(raw) {
		return Quantity{}, invalid("quantity", raw, "want digits, optionally grouped by thousands with '.'")
	}
	if n := quantityValue(raw); n < 1 || n > MaxQuantity {
		return Quantity{}, invalid("quantity", raw, "must be between 1 and 1.000.000")
	}
	return Quantity{raw}, nil
}

// quantityValue returns the integer value of a well formed quantity, or -1 if
// it does not fit.
func quantityValue(raw string) int64 {
	digits := strings.TrimLeft(strings.ReplaceAll(raw, ".", ""), "0")
	if digits == "" {
		return 0
	}
	if len(digits) > 18 {
		return -1
	}
	n, err := strconv.ParseInt(digits, 10, 64)
	if err != nil {
		return -1
	}
	return n
}

// MustQuantity is like ParseQuantity but panics on error.
func MustQuantity(raw string) Quantity { return must(ParseQuantity(raw)) }

// Set implements flag.Value.
func (q *Quantity) Set(raw string) error { return set(q, ParseQuantity, raw) }

// String returns the quantity as entered.
func (q Quantity) String() string { return q.value }

// Int returns the number of shares.
func (q Quantity) Int() int64 {
	if q.value == "" {
		return 0
	}
	return quantityValue(q.value)
}

// IsZero reports whether the quantity is unset.
func (q Quantity) IsZero() bool { return q.value == "" }

func (q Quantity) MarshalText() ([]byte, error) { return []byte(q.value), nil }
func (q *Quantity) UnmarshalText(b []byte) error { return q.Set(string(b)) }
