package carteira

import (
	"github.com/etnz/carteira/date"
)

// Date is a calendar day written YYYYMMDD, the layout of the B3 quotes file.
type Date struct{ value string }

// ParseDate validates raw as a YYYYMMDD calendar date, leap years included.
func ParseDate(raw string) (Date, error) {
	if _, err := date.ParseCompact(raw); err != nil {
		return Date{}, invalid("date", raw, err.Error())
	}
	return Date{raw}, nil
}

// MustDate is like ParseDate but panics on error.
func MustDate(raw string) Date { return must(ParseDate(raw)) }

// Today returns the current date.
func Today() Date { return Date{date.Today().Compact()} }

// Set implements flag.Value.
func (d *Date) Set(raw string) error { return set(d, ParseDate, raw) }

// String returns the YYYYMMDD date.
func (d Date) String() string { return d.value }

// Day returns the calendar day, or the zero date.Date if unset.
func (d Date) Day() date.Date {
	if d.value == "" {
		return date.Date{}
	}
	return date.MustParseCompact(d.value)
}

// IsZero reports whether the date is unset.
func (d Date) IsZero() bool { return d.value == "" }

func (d Date) MarshalText() ([]byte, error) { return []byte(d.value), nil }
func (d *Date) UnmarshalText(b []byte) error { return d.Set(string(b)) }
