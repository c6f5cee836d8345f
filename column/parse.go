package column

import (
	"bufio"
	"bytes"
	"errors"
	"io"
	"strconv"
)

const (
	fixedDigits = 5
	// fixedWidth is the length of a reference record: DDDDD<sep>DDDDD.
	fixedWidth = fixedDigits*2 + 1

	// maxLine bounds a single record when reading from a stream.
	maxLine = 1 << 20

	maxErrText = 64
)

var errFieldCount = errors.New("expected two fields")

// Parse reads all records from r.
func Parse(r io.Reader) (Columns, error) {
	var cols Columns

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLine)

	line := 0
	for sc.Scan() {
		line++
		if err := parseRecord(&cols, sc.Bytes(), line); err != nil {
			return Columns{}, err
		}
	}
	if err := sc.Err(); err != nil {
		if errors.Is(err, bufio.ErrTooLong) {
			return Columns{}, &ParseError{Line: line + 1, Err: err}
		}
		return Columns{}, err
	}
	return cols, nil
}

// ParseBytes parses records from an in-memory buffer, such as a mapped file.
// The returned columns do not reference data.
func ParseBytes(data []byte) (Columns, error) {
	var cols Columns
	cols.grow(len(data) / (fixedWidth + 1))

	line := 0
	for len(data) > 0 {
		line++
		rec := data
		if i := bytes.IndexByte(data, '\n'); i >= 0 {
			rec, data = data[:i], data[i+1:]
		} else {
			data = nil
		}
		if err := parseRecord(&cols, rec, line); err != nil {
			return Columns{}, err
		}
	}
	return cols, nil
}

func parseRecord(cols *Columns, rec []byte, line int) error {
	if n := len(rec); n > 0 && rec[n-1] == '\r' {
		rec = rec[:n-1]
	}

	if l, r, ok := parseFixed(rec); ok {
		cols.append(l, r)
		return nil
	}

	fields := bytes.Fields(rec)
	switch len(fields) {
	case 0:
		return nil
	case 2:
	default:
		return newParseError(line, rec, errFieldCount)
	}

	l, err := strconv.ParseInt(string(fields[0]), 10, 64)
	if err != nil {
		return newParseError(line, rec, err)
	}
	r, err := strconv.ParseInt(string(fields[1]), 10, 64)
	if err != nil {
		return newParseError(line, rec, err)
	}
	cols.append(l, r)
	return nil
}

// parseFixed decodes the reference layout without allocating.
func parseFixed(rec []byte) (int64, int64, bool) {
	if len(rec) != fixedWidth {
		return 0, 0, false
	}
	if sep := rec[fixedDigits]; sep != ' ' && sep != '\t' {
		return 0, 0, false
	}
	l, ok := digits5(rec[:fixedDigits])
	if !ok {
		return 0, 0, false
	}
	r, ok := digits5(rec[fixedDigits+1:])
	if !ok {
		return 0, 0, false
	}
	return l, r, true
}

func digits5(b []byte) (int64, bool) {
	_ = b[4]
	var v int64
	for i := range 5 {
		d := b[i] - '0'
		if d > 9 {
			return 0, false
		}
		v = v*10 + int64(d)
	}
	return v, true
}

func newParseError(line int, rec []byte, err error) *ParseError {
	text := string(rec)
	if len(text) > maxErrText {
		text = text[:maxErrText] + "..."
	}
	var numErr *strconv.NumError
	if errors.As(err, &numErr) {
		err = numErr.Err
	}
	return &ParseError{Line: line, Text: text, Err: err}
}
