package carteira

import (
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// brl formats cents the Brazilian way, without the currency symbol.
var brl = money.NewFormatter(2, ",", ".", "", "1")

// ToCents converts an amount to an integer number of cents.
//
// Thousands separators are dropped, an empty integer part counts as 0 and the
// fraction is truncated or padded to 2 digits. No floating point is involved.
func ToCents(m Money) int64 {
	whole, frac, _ := strings.Cut(strings.ReplaceAll(m.value, ".", ""), ",")
	if whole == "" {
		whole = "0"
	}
	frac = (frac + "00")[:2]
	d, err := decimal.NewFromString(whole + "." + frac)
	if err != nil {
		return 0
	}
	return d.Shift(2).IntPart()
}

// FromCents formats an integer number of cents, e.g. 123456 is "1.234,56".
//
// Zero is formatted as NoFunds ("0,01"). The result is a display value: sums
// may exceed the range accepted by ParseMoney.
func FromCents(c int64) Money {
	if c == 0 {
		return NoFunds
	}
	return Money{brl.Format(c)}
}
