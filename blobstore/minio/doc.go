// Package minio provides a BlobStore backed by MinIO or any other
// S3-compatible server, using the MinIO Go client.
//
// # Basic Usage
//
//	store, err := minio.New(minio.Config{
//	    Endpoint:  "localhost:9000",
//	    AccessKey: "minioadmin",
//	    SecretKey: "minioadmin",
//	    Bucket:    "datasets",
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// Input files are then addressed by name relative to Config.Prefix.
//
// An existing client can be wrapped directly:
//
//	store := minio.NewStore(client, "datasets", "inputs/")
package minio
