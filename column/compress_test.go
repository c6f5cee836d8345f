package column

import (
	"bytes"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetectCompression(t *testing.T) {
	tests := []struct {
		name string
		want Compression
	}{
		{"input_1k.txt", CompressionNone},
		{"input_1k", CompressionNone},
		{"input_1k.txt.zst", CompressionZstd},
		{"input_1k.txt.lz4", CompressionLZ4},
		{"input_1k.txt.gz", CompressionGzip},
		{"dir.gz/input_1k.txt", CompressionNone},
		{"INPUT.ZST", CompressionZstd},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DetectCompression(tt.name))
		})
	}
}

func TestCompression_StringAndParse(t *testing.T) {
	for _, c := range []Compression{CompressionNone, CompressionZstd, CompressionLZ4, CompressionGzip} {
		parsed, err := ParseCompression(c.String())
		require.NoError(t, err)
		assert.Equal(t, c, parsed)
		assert.Equal(t, c, DetectCompression("x.txt"+c.Ext()))
	}

	assert.Equal(t, "Unknown(9)", Compression(9).String())

	_, err := ParseCompression("brotli")
	assert.Error(t, err)
}

func TestCompressDecompress(t *testing.T) {
	payload := bytes.Repeat([]byte("12345 67890\n"), 1000)

	for _, c := range []Compression{CompressionNone, CompressionZstd, CompressionLZ4, CompressionGzip} {
		t.Run(c.String(), func(t *testing.T) {
			var buf bytes.Buffer
			w, err := Compress(&buf, c)
			require.NoError(t, err)
			_, err = w.Write(payload)
			require.NoError(t, err)
			require.NoError(t, w.Close())

			if c != CompressionNone {
				assert.Less(t, buf.Len(), len(payload))
			}

			r, err := Decompress(&buf, c)
			require.NoError(t, err)
			got, err := io.ReadAll(r)
			require.NoError(t, err)
			require.NoError(t, r.Close())
			assert.Equal(t, payload, got)
		})
	}
}

func TestCompress_Unsupported(t *testing.T) {
	_, err := Compress(io.Discard, Compression(42))
	assert.Error(t, err)

	_, err = Decompress(bytes.NewReader(nil), Compression(42))
	assert.Error(t, err)
}
