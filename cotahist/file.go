package cotahist

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"
)

// maxLine bounds the length of a line. COTAHIST records are 245 bytes; longer
// lines are skipped whole.
const maxLine = 64 * 1024

// Scan calls fn for each record of r read with layout l, in file order, until
// fn returns false.
func Scan(r io.Reader, l Layout, fn func(Record) bool) error {
	br := bufio.NewReaderSize(r, maxLine)
	for {
		line, err := br.ReadSlice('\n')
		if err == bufio.ErrBufferFull {
			err = skipLine(br)
			if err == io.EOF {
				return nil
			}
			if err != nil {
				return err
			}
			continue
		}
		if err != nil && err != io.EOF {
			return err
		}
		line = bytes.TrimSuffix(bytes.TrimSuffix(line, []byte("\n")), []byte("\r"))
		if rec, ok := l.Extract(line); ok && !fn(rec) {
			return nil
		}
		if err == io.EOF {
			return nil
		}
	}
}

// skipLine discards the rest of the current line.
func skipLine(br *bufio.Reader) error {
	for {
		_, err := br.ReadSlice('\n')
		if err != bufio.ErrBufferFull {
			return err
		}
	}
}

// File is a reference price file on disk.
//
// The file is read again on each query: it is an append-only input owned by
// the data provider and is never cached nor written.
type File struct {
	Path string
}

// NewFile returns the reference file at path.
func NewFile(path string) *File { return &File{Path: path} }

func (f *File) scan(l Layout, fn func(Record) bool) error {
	r, err := os.Open(f.Path)
	if err != nil {
		return fmt.Errorf("cannot open reference prices %q: %w", f.Path, err)
	}
	defer r.Close()
	if err := Scan(r, l, fn); err != nil {
		return fmt.Errorf("cannot read reference prices %q: %w", f.Path, err)
	}
	return nil
}

// FindPrice returns the average price of ticker on day (YYYYMMDD) using the
// Pricing layout. The first matching record wins; records with a malformed
// price are skipped.
func (f *File) FindPrice(ticker, day string) (price float64, found bool, err error) {
	err = f.scan(Pricing, func(r Record) bool {
		if r.Date != day || !r.Matches(ticker) {
			return true
		}
		n, ok := r.Hundredths()
		if !ok {
			return true
		}
		price, found = float64(n)/100.0, true
		return false
	})
	return price, found, err
}

// Dates returns the distinct days with a record for ticker using the Shallow
// layout, in file order. It is empty when the ticker is unknown.
func (f *File) Dates(ticker string) ([]string, error) {
	var dates []string
	seen := make(map[string]bool)
	err := f.scan(Shallow, func(r Record) bool {
		if r.Matches(ticker) && !seen[r.Date] {
			seen[r.Date] = true
			dates = append(dates, r.Date)
		}
		return true
	})
	return dates, err
}

// Quotes returns the records of ticker using the Shallow layout.
func (f *File) Quotes(ticker string) ([]Record, error) {
	var quotes []Record
	err := f.scan(Shallow, func(r Record) bool {
		if r.Matches(ticker) {
			quotes = append(quotes, r)
		}
		return true
	})
	return quotes, err
}
