// Package mmap provides read-only memory-mapped file access.
//
// Input files are parsed in one sequential pass. Mapping them avoids copying
// every byte through a read buffer, and the AccessSequential hint lets the
// kernel read ahead aggressively.
//
// # Usage
//
//	m, err := mmap.Open("input_1m.txt")
//	if err != nil { ... }
//	defer m.Close()
//
//	_ = m.Advise(mmap.AccessSequential)
//	data := m.Bytes()
//
// # Platform Support
//
//   - Unix (Linux, macOS, BSD): mmap(2) with madvise(2) for access hints
//   - Windows: CreateFileMapping/MapViewOfFile (Advise is a no-op)
//
// Close is idempotent. Callers must not touch the slice returned by Bytes
// after Close returns.
package mmap
