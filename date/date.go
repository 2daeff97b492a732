// Package date implements the calendar rules used by carteira: compact YYYYMMDD
// dates as found in the B3 historical quotes file, Gregorian leap years and
// month lengths.
package date

import (
	"errors"
	"fmt"
	"time"
)

// CompactFormat is the layout of dates in the reference price file and in the
// book: YYYYMMDD.
const CompactFormat = "20060102"

// DateFormat is the ISO-8601 layout used for display.
const DateFormat = "2006-01-02"

var (
	// ErrFormat is returned when a compact date is not made of exactly 8 digits.
	ErrFormat = errors.New("want exactly 8 digits YYYYMMDD")
	// ErrMonth is returned when the month is not in 1..12.
	ErrMonth = errors.New("month must be between 01 and 12")
	// ErrDay is returned when the day does not exist in the month.
	ErrDay = errors.New("day does not exist in that month")
)

// Date represent a date with no lower than day granularity.
type Date struct {
	y int
	m time.Month
	d int
}

// monthDays lists the length of each month in a common year.
var monthDays = [12]int{31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}

// IsLeap reports whether year is a leap year in the Gregorian calendar.
func IsLeap(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// DaysIn returns the number of days of month m in year.
// It returns 0 for an invalid month.
func DaysIn(year int, m time.Month) int {
	if m < time.January || m > time.December {
		return 0
	}
	if m == time.February && IsLeap(year) {
		return 29
	}
	return monthDays[m-1]
}

// time returns a time.Time that is a canonical representation of that day (at midnight UTC).
func (d Date) time() time.Time { return time.Date(d.y, d.m, d.d, 0, 0, 0, 0, time.UTC) }

// New returns a normalized Date for the given year, month, and day.
func New(year int, month time.Month, day int) Date {
	d := Date{year, month, day}
	d.y, d.m, d.d = d.time().Date()
	return d
}

// Today returns the current date.
func Today() Date { return New(time.Now().Date()) }

// Year returns current year.
func (d Date) Year() int { return d.y }

// Month returns the month of the date.
func (d Date) Month() time.Month { return d.m }

// Day returns current day of the month.
func (d Date) Day() int { return d.d }

// IsZero reports whether d is the zero Date.
func (d Date) IsZero() bool { return d == Date{} }

// String format the date in its ISO format.
func (d Date) String() string { return fmt.Sprintf("%04d-%02d-%02d", d.y, d.m, d.d) }

// Compact formats the date as YYYYMMDD.
func (d Date) Compact() string { return fmt.Sprintf("%04d%02d%02d", d.y, d.m, d.d) }

// ParseCompact parses a strict YYYYMMDD date.
//
// Unlike time.Parse it never normalizes: "20230229" is an error, not March 1st.
// Any 4 digits are accepted as a year.
func ParseCompact(s string) (Date, error) {
	if len(s) != 8 {
		return Date{}, ErrFormat
	}
	var n [8]int
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c < '0' || c > '9' {
			return Date{}, ErrFormat
		}
		n[i] = int(c - '0')
	}
	year := n[0]*1000 + n[1]*100 + n[2]*10 + n[3]
	month := time.Month(n[4]*10 + n[5])
	day := n[6]*10 + n[7]

	if month < time.January || month > time.December {
		return Date{}, ErrMonth
	}
	if day < 1 || day > DaysIn(year, month) {
		return Date{}, ErrDay
	}
	return Date{year, month, day}, nil
}

// MustParseCompact is like ParseCompact but panics on error.
func MustParseCompact(s string) Date {
	d, err := ParseCompact(s)
	if err != nil {
		panic(fmt.Sprintf("invalid date %q: %v", s, err))
	}
	return d
}
