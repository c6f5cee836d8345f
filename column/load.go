package column

import (
	"context"
	"fmt"
	"io"

	"github.com/hupe1980/sortdist/blobstore"
	"github.com/hupe1980/sortdist/resource"
)

// LoadOptions configures Load.
type LoadOptions struct {
	// Controller rate-limits reads from the store. Nil means unlimited.
	Controller *resource.Controller
}

// Stats describes a loaded input.
type Stats struct {
	Records     int
	Bytes       int64
	Compression Compression
	// Mapped reports whether the input was parsed in place from a mapping.
	Mapped bool
}

// Load opens name in store and parses it into columns.
//
// Uncompressed blobs that support memory mapping are parsed in place unless
// an IO limit is configured. Everything else is streamed through the
// decoder picked by DetectCompression.
func Load(ctx context.Context, store blobstore.BlobStore, name string, opts LoadOptions) (Columns, Stats, error) {
	stats := Stats{Compression: DetectCompression(name)}

	blob, err := store.Open(ctx, name)
	if err != nil {
		return Columns{}, stats, err
	}
	defer func() { _ = blob.Close() }()

	stats.Bytes = blob.Size()

	if m, ok := blob.(blobstore.Mappable); ok && stats.Compression == CompressionNone &&
		opts.Controller.Config().IOLimitBytesPerSec == 0 {
		data, err := m.Bytes()
		if err != nil {
			return Columns{}, stats, err
		}
		if err := ctx.Err(); err != nil {
			return Columns{}, stats, err
		}
		cols, err := ParseBytes(data)
		if err != nil {
			return Columns{}, stats, fmt.Errorf("parse %s: %w", name, err)
		}
		stats.Records = cols.Len()
		stats.Mapped = true
		return cols, stats, nil
	}

	rc, err := blobstore.NewReader(ctx, blob)
	if err != nil {
		return Columns{}, stats, err
	}
	defer func() { _ = rc.Close() }()

	var r io.Reader = ctxReader{ctx: ctx, r: rc}
	r = resource.Throttle(ctx, r, opts.Controller)

	dec, err := Decompress(r, stats.Compression)
	if err != nil {
		return Columns{}, stats, fmt.Errorf("open %s decoder for %s: %w", stats.Compression, name, err)
	}
	defer func() { _ = dec.Close() }()

	cols, err := Parse(dec)
	if err != nil {
		return Columns{}, stats, fmt.Errorf("parse %s: %w", name, err)
	}
	stats.Records = cols.Len()
	return cols, stats, nil
}

// ctxReader stops a long read once ctx is done.
type ctxReader struct {
	ctx context.Context
	r   io.Reader
}

func (c ctxReader) Read(p []byte) (int, error) {
	if err := c.ctx.Err(); err != nil {
		return 0, err
	}
	return c.r.Read(p)
}
