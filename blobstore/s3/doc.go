// Package s3 provides an S3 implementation of the blobstore.BlobStore interface.
//
// # Usage
//
//	store, err := s3.New(ctx, "my-bucket",
//	    s3.WithPrefix("datasets/"),
//	    s3.WithRegion("us-east-1"),
//	)
//
//	runner, err := sortdist.New(store)
//
// # Features
//
//   - Range reads for inputs
//   - Multipart uploads (feature/s3/manager) for generated datasets
//   - Automatic pagination for listing
//   - Custom endpoints with path-style addressing for S3-compatible services
package s3
