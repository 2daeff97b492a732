package cotahist

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// record builds a 245 bytes COTAHIST line.
func record(day, ticker, shallow string, premed int64) string {
	b := []byte(strings.Repeat(" ", 245))
	copy(b[0:], "01")
	copy(b[2:], day)
	copy(b[10:], "02")
	copy(b[12:], fmt.Sprintf("%-12s", ticker))
	copy(b[24:], fmt.Sprintf("%-10s", shallow))
	copy(b[113:], fmt.Sprintf("%013d", premed))
	return string(b)
}

func writeFile(t *testing.T, lines ...string) *File {
	t.Helper()
	path := filepath.Join(t.TempDir(), "COTAHIST.TXT")
	require.NoError(t, os.WriteFile(path, []byte(strings.Join(lines, "\n")+"\n"), 0o644))
	return NewFile(path)
}

func TestLayout_Extract(t *testing.T) {
	line := []byte(record("20240229", "PETR4", "0100000123", 3745))

	rec, ok := Pricing.Extract(line)
	require.True(t, ok)
	assert.Equal(t, "20240229", rec.Date)
	assert.Equal(t, "PETR4", rec.Ticker)
	assert.Equal(t, "0000000003745", rec.Price)

	rec, ok = Shallow.Extract(line)
	require.True(t, ok)
	assert.Equal(t, "0100000123", rec.Price)

	_, ok = Pricing.Extract(line[:125])
	assert.False(t, ok, "a line shorter than 126 bytes is not a pricing record")

	rec, ok = Shallow.Extract(line[:34])
	assert.True(t, ok, "34 bytes are enough for the shallow layout")
	assert.Equal(t, "PETR4", rec.Ticker)

	_, ok = Shallow.Extract([]byte("#" + string(line[1:])))
	assert.False(t, ok, "comments are skipped")

	_, ok = Shallow.Extract(nil)
	assert.False(t, ok)
}

func TestRecord_Hundredths(t *testing.T) {
	tests := []struct {
		price string
		want  int64
		ok    bool
	}{
		{"0000000003745", 3745, true},
		{"0000000000000", 0, true},
		{"  12", 12, true},
		{"00000000037A5", 0, false},
		{"-000000000001", 0, false},
		{"             ", 0, false},
	}
	for _, tt := range tests {
		got, ok := Record{Price: tt.price}.Hundredths()
		assert.Equal(t, tt.ok, ok, tt.price)
		assert.Equal(t, tt.want, got, tt.price)
	}
}

func TestRecord_Matches(t *testing.T) {
	r := Record{Ticker: "VALE3"}
	assert.True(t, r.Matches("VALE3       "))
	assert.True(t, r.Matches("VALE3"))
	assert.False(t, r.Matches("VALE"))
	assert.False(t, r.Matches(" VALE3"))
}

func TestFile_FindPrice(t *testing.T) {
	f := writeFile(t,
		"00COTAHIST.2024BOVESPA 20240102",
		"# a comment line "+strings.Repeat("x", 200),
		record("20240102", "PETR4", "", 3745),
		record("20240102", "VALE3", "", 6890),
		record("20240103", "PETR4", "", 3801),
		record("20240103", "PETR4", "", 9999), // duplicates: first one wins
		record("20240104", "PETR4", "", 0)[:120],
		record("20240105", "BAD", "", 0)[:113]+"0000000000X12"+strings.Repeat(" ", 119),
	)

	price, ok, err := f.FindPrice("PETR4       ", "20240102")
	require.NoError(t, err)
	require.True(t, ok)
	assert.InDelta(t, 37.45, price, 1e-9)

	price, ok, err = f.FindPrice("PETR4       ", "20240103")
	require.NoError(t, err)
	require.True(t, ok)
	assert.InDelta(t, 38.01, price, 1e-9)

	_, ok, err = f.FindPrice("PETR4       ", "20240104")
	require.NoError(t, err)
	assert.False(t, ok, "line too short for the pricing layout")

	_, ok, err = f.FindPrice("BAD         ", "20240105")
	require.NoError(t, err)
	assert.False(t, ok, "malformed price is skipped")

	_, ok, err = f.FindPrice("ITUB4       ", "20240102")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestFile_Dates(t *testing.T) {
	f := writeFile(t,
		record("20240103", "PETR4", "", 1),
		record("20240102", "PETR4", "", 1),
		record("20240102", "VALE3", "", 1),
		record("20240103", "PETR4", "", 1),
		record("20240104", "PETR4", "", 1)[:40],
	)

	dates, err := f.Dates("PETR4       ")
	require.NoError(t, err)
	assert.Equal(t, []string{"20240103", "20240102", "20240104"}, dates)

	dates, err = f.Dates("ITUB4       ")
	require.NoError(t, err)
	assert.Empty(t, dates)
}

func TestFile_Quotes(t *testing.T) {
	f := writeFile(t,
		record("20240102", "PETR4", "0000003745", 1),
		record("20240102", "VALE3", "0000006890", 1),
	)
	quotes, err := f.Quotes("VALE3")
	require.NoError(t, err)
	require.Len(t, quotes, 1)
	assert.Equal(t, Record{Date: "20240102", Ticker: "VALE3", Price: "0000006890"}, quotes[0])
}

func TestFile_Missing(t *testing.T) {
	f := NewFile(filepath.Join(t.TempDir(), "missing.txt"))
	_, _, err := f.FindPrice("PETR4       ", "20240102")
	assert.ErrorIs(t, err, os.ErrNotExist)
	_, err = f.Dates("PETR4       ")
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestScan_CRLF(t *testing.T) {
	in := record("20240102", "PETR4", "", 3745) + "\r\n" + record("20240103", "PETR4", "", 3801) + "\r\n"
	var got []string
	err := Scan(strings.NewReader(in), Pricing, func(r Record) bool {
		got = append(got, r.Date)
		return true
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"20240102", "20240103"}, got)
}

func TestFile_LongLine(t *testing.T) {
	f := writeFile(t,
		record("20240102", "PETR4", "", 3745),
		strings.Repeat("9", 70*1024),
		record("20240103", "PETR4", "", 3801),
	)

	price, ok, err := f.FindPrice("PETR4       ", "20240103")
	require.NoError(t, err)
	require.True(t, ok, "records after an over-long line are still read")
	assert.InDelta(t, 38.01, price, 1e-9)

	dates, err := f.Dates("PETR4       ")
	require.NoError(t, err)
	assert.Equal(t, []string{"20240102", "20240103"}, dates)
}

func TestScan_LongLastLine(t *testing.T) {
	in := record("20240102", "PETR4", "", 1) + "\n" + strings.Repeat("x", maxLine+10)
	var got []string
	err := Scan(strings.NewReader(in), Pricing, func(r Record) bool {
		got = append(got, r.Date)
		return true
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"20240102"}, got)
}

func TestScan_NoTrailingNewline(t *testing.T) {
	in := record("20240102", "PETR4", "", 1) + "\n" + record("20240103", "PETR4", "", 1)
	var got []string
	err := Scan(strings.NewReader(in), Pricing, func(r Record) bool {
		got = append(got, r.Date)
		return true
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"20240102", "20240103"}, got)
}

func TestScan_Stop(t *testing.T) {
	in := record("20240102", "PETR4", "", 1) + "\n" + record("20240103", "PETR4", "", 1) + "\n"
	n := 0
	err := Scan(strings.NewReader(in), Pricing, func(Record) bool {
		n++
		return false
	})
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}
