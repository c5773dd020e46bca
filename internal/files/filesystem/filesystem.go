package filesystem

import (
	"io/fs"
)

// FileInfo aliases fs.FileInfo so callers stay compatible with the
// standard library while depending only on this package.
type FileInfo = fs.FileInfo

// File is one discovered file. Content is read on demand, not at
// discovery time.
type File interface {
	// Path returns the absolute path to the file.
	Path() string

	// RelativePath returns the path relative to the corpus root. Record
	// identifiers in violations are derived from it.
	RelativePath() string

	// Info returns file metadata.
	Info() FileInfo

	// ReadContent returns the file's content.
	ReadContent() ([]byte, error)
}

// Directory is a traversable directory tree.
type Directory interface {
	// Path returns the absolute path to the directory.
	Path() string

	// Walk calls fn for every file and directory under the root,
	// including the root itself. A non-nil error from fn stops the walk
	// and is returned.
	Walk(fn func(File, error) error) error
}

// Provider abstracts the filesystem so the scanner and the author
// loader can run against an in-memory tree in tests.
type Provider interface {
	// Open opens a directory at the specified path.
	Open(path string) (Directory, error)

	// ReadFile reads a specific file at the given path.
	ReadFile(path string) ([]byte, error)

	// ReadDir returns the direct children of a directory, without the
	// recursive Walk machinery.
	ReadDir(path string) ([]FileInfo, error)

	// Stat returns file information for the given path.
	Stat(path string) (FileInfo, error)
}
