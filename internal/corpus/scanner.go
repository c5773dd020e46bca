package corpus

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/qdocs/demolint/internal/checksum"
	"github.com/qdocs/demolint/internal/files/filesystem"
	"github.com/qdocs/demolint/pkg/demolint"
)

// Scanner discovers per-demo metadata files in a corpus directory and
// builds the immutable Snapshot the validator consumes.
// Scanner is safe for concurrent use by multiple goroutines as long as
// the provided calculator and fsProvider are also thread-safe.
type Scanner struct {
	calculator checksum.Calculator
	fsProvider filesystem.Provider
}

// NewScanner creates a new corpus scanner with the given checksum calculator.
// Uses OS filesystem by default.
// Panics if calculator is nil.
func NewScanner(calculator checksum.Calculator) *Scanner {
	if calculator == nil {
		panic("calculator cannot be nil")
	}
	return &Scanner{
		calculator: calculator,
		fsProvider: filesystem.NewOSFileSystem(),
	}
}

// NewScannerWithFS creates a new corpus scanner with a custom filesystem provider.
// This is primarily useful for testing with in-memory filesystems.
// Panics if calculator or fsProvider is nil.
func NewScannerWithFS(calculator checksum.Calculator, fsProvider filesystem.Provider) *Scanner {
	if calculator == nil {
		panic("calculator cannot be nil")
	}
	if fsProvider == nil {
		panic("fsProvider cannot be nil")
	}
	return &Scanner{
		calculator: calculator,
		fsProvider: fsProvider,
	}
}

// ScanDirectory recursively scans a corpus directory and returns a
// Snapshot of every metadata file found.
//
// Files that are not valid JSON, or whose top-level value is not an
// object, become corpus-level violations on the Snapshot rather than
// errors: one bad file must not stop the rest of the corpus from being
// validated. The only error condition is failing to enumerate or read
// the corpus itself, reported as demolint.ErrCorpusUnreadable.
//
// The exclude list holds Unix-style relative path prefixes (e.g. an
// authors directory nested inside the corpus) whose files are skipped.
func (s *Scanner) ScanDirectory(sourcePath string, exclude ...string) (demolint.Snapshot, error) {
	dir, err := s.fsProvider.Open(sourcePath)
	if err != nil {
		return demolint.Snapshot{}, fmt.Errorf("failed to open corpus: %v: %w", err, demolint.ErrCorpusUnreadable)
	}

	var snap demolint.Snapshot
	contents := make(map[string][]byte)

	err = dir.Walk(func(file filesystem.File, err error) error {
		if err != nil {
			return fmt.Errorf("error walking corpus: %w", err)
		}

		if file.Info().IsDir() {
			return nil
		}

		unixPath := normalizePath(file.RelativePath())

		if !strings.HasSuffix(strings.ToLower(unixPath), demolint.MetadataFileSuffix) {
			return nil
		}
		if filepath.Base(unixPath) == demolint.RulesFileName {
			return nil
		}
		if isExcluded(unixPath, exclude) {
			return nil
		}

		content, err := file.ReadContent()
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", unixPath, err)
		}
		contents[unixPath] = content

		record, violation := decodeFile(unixPath, content)
		if violation != nil {
			snap.FileViolations = append(snap.FileViolations, *violation)
			return nil
		}

		snap.Records = append(snap.Records, record)
		return nil
	})

	if err != nil {
		return demolint.Snapshot{}, fmt.Errorf("%v: %w", err, demolint.ErrCorpusUnreadable)
	}

	snap.Checksum = checksum.CorpusFingerprint(s.calculator, contents)
	return snap, nil
}

// decodeFile parses one metadata file. A file that cannot be decoded
// into a JSON object yields a corpus-level violation instead of a record.
func decodeFile(unixPath string, content []byte) (demolint.RawRecord, *demolint.Violation) {
	var top any
	if err := json.Unmarshal(content, &top); err != nil {
		return demolint.RawRecord{}, &demolint.Violation{
			Record:  unixPath,
			Kind:    demolint.KindWrongType,
			Message: fmt.Sprintf("file is not parseable as JSON: %v", err),
		}
	}

	obj, ok := top.(map[string]any)
	if !ok {
		return demolint.RawRecord{}, &demolint.Violation{
			Record:  unixPath,
			Kind:    demolint.KindWrongType,
			Message: "top-level JSON value must be an object",
		}
	}

	return demolint.RawRecord{
		Slug:   SlugForPath(unixPath),
		Path:   unixPath,
		Object: obj,
	}, nil
}

// SlugForPath derives a record's slug from its file path: the basename
// without the metadata suffix. Related-content links of type
// demonstration resolve against these slugs.
func SlugForPath(unixPath string) string {
	base := filepath.Base(unixPath)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// normalizePath converts a relative path to Unix style with a ./ prefix,
// the form used for record identifiers in corpus-level violations.
func normalizePath(relPath string) string {
	unixPath := filepath.ToSlash(relPath)
	if !strings.HasPrefix(unixPath, "./") {
		unixPath = "./" + unixPath
	}
	return unixPath
}

func isExcluded(unixPath string, exclude []string) bool {
	trimmed := strings.TrimPrefix(unixPath, "./")
	for _, prefix := range exclude {
		prefix = strings.TrimPrefix(filepath.ToSlash(prefix), "./")
		if prefix == "" {
			continue
		}
		if !strings.HasSuffix(prefix, "/") {
			prefix += "/"
		}
		if strings.HasPrefix(trimmed, prefix) {
			return true
		}
	}
	return false
}
