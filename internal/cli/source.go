package cli

import (
	"context"

	"github.com/hupe1980/sortdist/blobstore"
	"github.com/hupe1980/sortdist/blobstore/minio"
	"github.com/hupe1980/sortdist/blobstore/s3"
	"github.com/hupe1980/sortdist/internal/config"
	"github.com/hupe1980/sortdist/resource"
)

// openStore builds the blob store selected by cfg.Source.
func openStore(ctx context.Context, cfg *config.Config) (blobstore.BlobStore, error) {
	src := cfg.Source

	switch src.Type {
	case config.SourceS3:
		var opts []s3.Option
		if src.Prefix != "" {
			opts = append(opts, s3.WithPrefix(src.Prefix))
		}
		if src.Region != "" {
			opts = append(opts, s3.WithRegion(src.Region))
		}
		if src.Endpoint != "" {
			opts = append(opts, s3.WithEndpoint(src.Endpoint))
		}
		store, err := s3.New(ctx, src.Bucket, opts...)
		if err != nil {
			return nil, WrapExitError(ExitCommandError, "failed to open s3 source", err)
		}
		return store, nil

	case config.SourceMinIO:
		store, err := minio.New(minio.Config{
			Endpoint:  src.Endpoint,
			AccessKey: src.AccessKey,
			SecretKey: src.SecretKey,
			Bucket:    src.Bucket,
			Prefix:    src.Prefix,
			Region:    src.Region,
			Secure:    src.Secure,
		})
		if err != nil {
			return nil, WrapExitError(ExitCommandError, "failed to open minio source", err)
		}
		return store, nil

	default:
		return blobstore.NewLocalStore(cfg.DataDir), nil
	}
}

// newController returns nil when no limit is configured.
func newController(cfg *config.Config) *resource.Controller {
	r := cfg.Resources
	if r.MemoryLimitBytes == 0 && r.MaxWorkers == 0 && r.IOLimitBytesPerSec == 0 {
		return nil
	}
	return resource.NewController(resource.Config{
		MemoryLimitBytes:   r.MemoryLimitBytes,
		MaxWorkers:         r.MaxWorkers,
		IOLimitBytesPerSec: r.IOLimitBytesPerSec,
	})
}
