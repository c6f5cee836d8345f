// Package resource bounds the memory, concurrency and read throughput of a
// distance run.
//
// Bucket tables are reserved with AcquireMemory before allocation, inputs
// take a worker slot with AcquireWorker, and loaders wrap their readers with
// Throttle. All methods are safe on a nil *Controller, which imposes no
// limits.
package resource
