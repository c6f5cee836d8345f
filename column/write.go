package column

import (
	"bufio"
	"errors"
	"io"
	"math/rand/v2"
	"strconv"

	"github.com/hupe1980/sortdist/distance"
)

// Write encodes cols as text records.
func Write(w io.Writer, cols Columns) error {
	if len(cols.Left) != len(cols.Right) {
		return &distance.LengthMismatchError{Left: len(cols.Left), Right: len(cols.Right)}
	}

	bw := bufio.NewWriterSize(w, 64*1024)
	buf := make([]byte, 0, 48)
	for i := range cols.Left {
		buf = appendRecord(buf[:0], cols.Left[i], cols.Right[i])
		if _, err := bw.Write(buf); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// Generate writes n records whose values are drawn uniformly from d.
// A five-digit domain produces records in the reference layout.
func Generate(w io.Writer, n int, d distance.Domain, rng *rand.Rand) error {
	if n < 0 {
		return errors.New("record count must not be negative")
	}
	if err := d.Validate(); err != nil {
		return err
	}

	span := d.Range()
	bw := bufio.NewWriterSize(w, 64*1024)
	buf := make([]byte, 0, 48)
	for range n {
		l := d.Min + rng.Int64N(span)
		r := d.Min + rng.Int64N(span)
		buf = appendRecord(buf[:0], l, r)
		if _, err := bw.Write(buf); err != nil {
			return err
		}
	}
	return bw.Flush()
}

func appendRecord(buf []byte, l, r int64) []byte {
	buf = strconv.AppendInt(buf, l, 10)
	buf = append(buf, ' ')
	buf = strconv.AppendInt(buf, r, 10)
	return append(buf, '\n')
}
