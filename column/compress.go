package column

import (
	"fmt"
	"io"
	"path"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

// Compression identifies the codec of an input file.
type Compression uint8

const (
	// CompressionNone indicates plain text.
	CompressionNone Compression = iota
	// CompressionZstd indicates a zstd stream (".zst").
	CompressionZstd
	// CompressionLZ4 indicates an lz4 frame (".lz4").
	CompressionLZ4
	// CompressionGzip indicates a gzip stream (".gz").
	CompressionGzip
)

func (c Compression) String() string {
	switch c {
	case CompressionNone:
		return "none"
	case CompressionZstd:
		return "zstd"
	case CompressionLZ4:
		return "lz4"
	case CompressionGzip:
		return "gzip"
	default:
		return fmt.Sprintf("Unknown(%d)", c)
	}
}

// Ext returns the file extension of the codec, including the dot.
func (c Compression) Ext() string {
	switch c {
	case CompressionZstd:
		return ".zst"
	case CompressionLZ4:
		return ".lz4"
	case CompressionGzip:
		return ".gz"
	default:
		return ""
	}
}

// ParseCompression parses a codec name as printed by String.
// The empty string selects CompressionNone.
func ParseCompression(s string) (Compression, error) {
	switch strings.ToLower(s) {
	case "", "none":
		return CompressionNone, nil
	case "zstd", "zst":
		return CompressionZstd, nil
	case "lz4":
		return CompressionLZ4, nil
	case "gzip", "gz":
		return CompressionGzip, nil
	default:
		return CompressionNone, fmt.Errorf("unknown compression %q", s)
	}
}

// DetectCompression returns the codec implied by the extension of name.
func DetectCompression(name string) Compression {
	switch strings.ToLower(path.Ext(name)) {
	case ".zst":
		return CompressionZstd
	case ".lz4":
		return CompressionLZ4
	case ".gz":
		return CompressionGzip
	default:
		return CompressionNone
	}
}

// Decompress wraps r with a decoder for c. Closing the result releases the
// decoder but does not close r.
func Decompress(r io.Reader, c Compression) (io.ReadCloser, error) {
	switch c {
	case CompressionNone:
		return io.NopCloser(r), nil
	case CompressionZstd:
		dec, err := zstd.NewReader(r, zstd.WithDecoderConcurrency(0))
		if err != nil {
			return nil, err
		}
		return dec.IOReadCloser(), nil
	case CompressionLZ4:
		return io.NopCloser(lz4.NewReader(r)), nil
	case CompressionGzip:
		zr, err := gzip.NewReader(r)
		if err != nil {
			return nil, err
		}
		return zr, nil
	default:
		return nil, fmt.Errorf("unsupported compression: %s", c)
	}
}

// Compress wraps w with an encoder for c. The encoder must be closed to
// flush the stream. Closing it does not close w.
func Compress(w io.Writer, c Compression) (io.WriteCloser, error) {
	switch c {
	case CompressionNone:
		return nopWriteCloser{w}, nil
	case CompressionZstd:
		enc, err := zstd.NewWriter(w, zstd.WithEncoderLevel(zstd.SpeedDefault))
		if err != nil {
			return nil, err
		}
		return enc, nil
	case CompressionLZ4:
		return lz4.NewWriter(w), nil
	case CompressionGzip:
		zw, err := gzip.NewWriterLevel(w, gzip.DefaultCompression)
		if err != nil {
			return nil, err
		}
		return zw, nil
	default:
		return nil, fmt.Errorf("unsupported compression: %s", c)
	}
}

type nopWriteCloser struct {
	io.Writer
}

func (nopWriteCloser) Close() error { return nil }
