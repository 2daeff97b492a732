// Package cotahist reads reference prices from a B3 historical quotes file
// (COTAHIST): one fixed-width record per line, fields located by byte offset.
//
// Two consumers read the same file with different layouts, Shallow and
// Pricing. They only differ in where the price field is read; both are kept
// verbatim since the record layout belongs to the data provider.
package cotahist

import (
	"strconv"
	"strings"
)

// CommentMarker starts a line that is not a record.
const CommentMarker = '#'

// Field is the half-open byte range [Start, End) of a field in a record.
type Field struct{ Start, End int }

func (f Field) of(line []byte) string { return string(line[f.Start:f.End]) }

// Layout locates the fields of a record. Lines shorter than MinWidth are not
// records.
type Layout struct {
	Name     string
	Date     Field
	Ticker   Field
	Price    Field
	MinWidth int
}

var (
	// Shallow is the layout of the date listing: price field at [24,34).
	Shallow = Layout{Name: "shallow", Date: Field{2, 10}, Ticker: Field{12, 24}, Price: Field{24, 34}, MinWidth: 34}
	// Pricing is the layout of order pricing: the average price (PREMED) at
	// [113,126), in hundredths.
	Pricing = Layout{Name: "pricing", Date: Field{2, 10}, Ticker: Field{12, 24}, Price: Field{113, 126}, MinWidth: 126}
)

// Record holds the fields of a line as read by a Layout.
type Record struct {
	Date   string // YYYYMMDD
	Ticker string // trailing spaces trimmed
	Price  string // raw field
}

// Extract reads the fields of line. It returns false when line is a comment or
// too short for l.
func (l Layout) Extract(line []byte) (Record, bool) {
	if len(line) < l.MinWidth || line[0] == CommentMarker {
		return Record{}, false
	}
	return Record{
		Date:   l.Date.of(line),
		Ticker: strings.TrimRight(l.Ticker.of(line), " "),
		Price:  l.Price.of(line),
	}, true
}

// Hundredths parses the price field as a non negative integer number of
// hundredths.
func (r Record) Hundredths() (int64, bool) {
	n, err := strconv.ParseInt(strings.TrimSpace(r.Price), 10, 64)
	if err != nil || n < 0 {
		return 0, false
	}
	return n, true
}

// Matches reports whether r is about ticker, ignoring trailing spaces.
func (r Record) Matches(ticker string) bool {
	return r.Ticker == strings.TrimRight(ticker, " ")
}
