package carteira

import "strings"

// TickerWidth is the fixed width of a ticker as stored in the B3 quotes file.
const TickerWidth = 12

// Ticker is an exchange ticker right-padded with spaces to TickerWidth bytes,
// e.g. "PETR4       ".
type Ticker struct{ value string }

// ParseTicker validates raw as a Ticker. Padding is the caller's job.
func ParseTicker(raw string) (Ticker, error) {
	if len(raw) != TickerWidth {
		return Ticker{}, invalid("ticker", raw, "want exactly 12 characters, padded with spaces")
	}
	blank := true
	for i := 0; i < len(raw); i++ {
		c := raw[i]
		switch {
		case c == ' ':
		case isDigit(c) || isUpper(c) || isLower(c):
			blank = false
		default:
			return Ticker{}, invalid("ticker", raw, "only letters, digits and spaces are allowed")
		}
	}
	if blank {
		return Ticker{}, invalid("ticker", raw, "must not be blank")
	}
	return Ticker{raw}, nil
}

// MustTicker is like ParseTicker but panics on error.
func MustTicker(raw string) Ticker { return must(ParseTicker(raw)) }

// Set implements flag.Value.
func (t *Ticker) Set(raw string) error { return set(t, ParseTicker, raw) }

// String returns the padded ticker.
func (t Ticker) String() string { return t.value }

// Symbol returns the ticker without its padding.
func (t Ticker) Symbol() string { return strings.TrimRight(t.value, " ") }

// IsZero reports whether the ticker is unset.
func (t Ticker) IsZero() bool { return t.value == "" }

func (t Ticker) MarshalText() ([]byte, error) { return []byte(t.value), nil }
func (t *Ticker) UnmarshalText(b []byte) error { return t.Set(string(b)) }
