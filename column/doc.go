// Package column reads and writes two-column integer inputs.
//
// An input holds one record per line with two base-10 integers separated by
// whitespace:
//
//	12345 67890
//	54321 09876
//
// The left values form one column and the right values the other. Blank
// lines are skipped. Records in the reference layout (two five-digit numbers
// and a single separator byte) take a fixed-width fast path; every other
// record is split on whitespace and parsed with strconv.
//
// Inputs may be compressed. The codec is chosen from the file extension:
// ".zst" (zstd), ".lz4" (lz4 frame) and ".gz" (gzip).
package column
