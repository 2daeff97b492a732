package carteira

// Code identifies a wallet or an order: exactly 5 ASCII digits.
type Code struct{ value string }

// ParseCode validates raw as a Code.
func ParseCode(raw string) (Code, error) {
	if len(raw) != 5 || !allDigits(raw) {
		return Code{}, invalid("code", raw, "want exactly 5 digits")
	}
	return Code{raw}, nil
}

// MustCode is like ParseCode but panics on error.
func MustCode(raw string) Code { return must(ParseCode(raw)) }

// Set implements flag.Value.
func (c *Code) Set(raw string) error { return set(c, ParseCode, raw) }

// String returns the validated code, or "" if unset.
func (c Code) String() string { return c.value }

// IsZero reports whether the code is unset.
func (c Code) IsZero() bool { return c.value == "" }

func (c Code) MarshalText() ([]byte, error) { return []byte(c.value), nil }
func (c *Code) UnmarshalText(b []byte) error { return c.Set(string(b)) }
