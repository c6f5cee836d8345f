// Package blobstore provides the storage abstraction input files are read
// from and generated files are written to.
//
// BlobStore is the interface for reading, writing and listing named blobs.
// Implementations must be safe for concurrent use.
//
// # Built-in Implementations
//
//   - LocalStore: local filesystem, reads through mmap
//   - MemoryStore: in-memory, for tests
//   - s3.Store: Amazon S3 with range reads and multipart uploads
//   - minio.Store: MinIO and other S3-compatible services
//
// # Reading a Whole Blob
//
// Inputs are consumed front to back. NewReader returns a sequential reader
// that is zero-copy for Mappable blobs and a single ranged GET otherwise:
//
//	b, err := store.Open(ctx, "input_1m.txt")
//	if err != nil { ... }
//	defer b.Close()
//
//	r, err := blobstore.NewReader(ctx, b)
package blobstore
