// Package filesystem abstracts file discovery behind small interfaces
// so corpus scanning and author lookup can run against an in-memory
// tree in tests.
//
// Provider opens directories and reads files; Directory walks a tree;
// File exposes metadata plus lazily-read content. OSFileSystem is the
// production implementation, MemoryFileSystem the test double.
package filesystem
