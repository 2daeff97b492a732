package carteira

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// MaxNameLength is the maximum number of characters of a Name.
const MaxNameLength = 20

// Name is a person or wallet name: letters, digits and single spaces.
type Name struct{ value string }

// ParseName validates raw as a Name.
func ParseName(raw string) (Name, error) {
	if !utf8.ValidString(raw) {
		return Name{}, invalid("name", raw, "not valid UTF-8")
	}
	n := utf8.RuneCountInString(raw)
	if n == 0 {
		return Name{}, invalid("name", raw, "must not be empty")
	}
	if n > MaxNameLength {
		return Name{}, invalid("name", raw, "at most 20 characters")
	}
	for _, r := range raw {
		if r != ' ' && !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			return Name{}, invalid("name", raw, "only letters, digits and spaces are allowed")
		}
	}
	if strings.Contains(raw, "  ") {
		return Name{}, invalid("name", raw, "no consecutive spaces")
	}
	return Name{raw}, nil
}

// MustName is like ParseName but panics on error.
func MustName(raw string) Name { return must(ParseName(raw)) }

// Set implements flag.Value.
func (n *Name) Set(raw string) error { return set(n, ParseName, raw) }

// String returns the name.
func (n Name) String() string { return n.value }

// IsZero reports whether the name is unset.
func (n Name) IsZero() bool { return n.value == "" }

func (n Name) MarshalText() ([]byte, error) { return []byte(n.value), nil }
func (n *Name) UnmarshalText(b []byte) error { return n.Set(string(b)) }
