// Package sortdist computes the L1 distance between two integer columns
// after each has been sorted, without sorting either of them.
//
// The distance is Σ|sorted(A)[k] − sorted(B)[k]|. When every value lies in a
// bounded domain [MIN, MAX], both columns are tallied into counting buckets
// and a single monotone walk pairs the buckets in order, in
// O(N + MAX − MIN) time. The kernels themselves live in package distance;
// this package wires them to input files.
//
// # Quick Start
//
// Compute the distance of two in-memory columns:
//
//	d, err := distance.Counting(left, right, distance.DefaultDomain)
//
// Process input files from a directory:
//
//	runner, err := sortdist.New(blobstore.NewLocalStore("./data"))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer runner.Close()
//
//	err = runner.Run(ctx, sortdist.DefaultInputs, func(r sortdist.Result) {
//	    fmt.Println(r.Name, r.Distance, r.Elapsed)
//	})
//
// Inputs can also come from Amazon S3 or MinIO:
//
//	store, _ := s3.New(ctx, "my-bucket", s3.WithPrefix("inputs/"))
//	runner, _ := sortdist.New(store, sortdist.WithKernel(distance.KernelSparse))
//
// # Kernels
//
// KernelCounting is the default. KernelSparse walks only the occupied
// buckets and suits columns much shorter than the domain. KernelSort sorts
// copies of both columns and is the choice for domains too wide for
// buckets. WithShards tallies large columns on several goroutines.
//
// # Resources
//
// A resource.Controller bounds the memory reserved for bucket tables, the
// number of inputs processed at once and the read throughput:
//
//	rc := resource.NewController(resource.Config{
//	    MemoryLimitBytes:   64 << 20,
//	    MaxWorkers:         2,
//	    IOLimitBytesPerSec: 200 << 20,
//	})
//	runner, _ := sortdist.New(store, sortdist.WithResourceController(rc), sortdist.WithParallelism(2))
//
// # Observability
//
// Operations are logged through a slog-based Logger and reported to a
// MetricsCollector. Both default to no-ops.
package sortdist
