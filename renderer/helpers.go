package renderer

import (
	"fmt"

	"github.com/etnz/carteira"
)

// brDate formats a date as DD/MM/YYYY.
func brDate(d carteira.Date) string {
	if d.IsZero() {
		return ""
	}
	day := d.Day()
	return fmt.Sprintf("%02d/%02d/%04d", day.Day(), day.Month(), day.Year())
}

// reais formats an amount with its currency symbol.
func reais(m carteira.Money) string { return "R$ " + m.String() }
