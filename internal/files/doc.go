// Package files provides file-related functionality organized into sub-packages.
//
//   - filesystem: Filesystem abstraction interfaces and implementations (OS and in-memory)
//
// Corpus discovery builds on top of this abstraction in internal/corpus,
// which is where metadata files are decoded into snapshot records.
package files
