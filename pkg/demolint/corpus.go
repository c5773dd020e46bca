package demolint

// RawRecord is one metadata file as loaded from disk, before shape
// validation. Object is the decoded top-level JSON object, or nil when
// the file could not be parsed (the loader records a corpus-level
// violation instead).
type RawRecord struct {
	// Slug is the file basename without extension, the corpus-wide
	// identity used by demonstration-typed related-content links.
	Slug string

	// Path is the Unix-style path relative to the corpus root.
	Path string

	Object map[string]any
}

// Snapshot is an immutable view of the whole corpus handed to the
// validator. The validator never mutates it; building a new Snapshot is
// the only way to observe changes.
type Snapshot struct {
	// Records holds every parseable metadata file, in walk order.
	Records []RawRecord

	// FileViolations carries one corpus-level violation per file that
	// could not be parsed as JSON at all.
	FileViolations []Violation

	// Checksum fingerprints the corpus content, for change detection.
	Checksum string
}

// Slugs returns the set of demonstration slugs present in the corpus.
// Built once per validation pass and used as the lookup table for
// related-content resolution.
func (s Snapshot) Slugs() StringSet {
	set := make(StringSet, len(s.Records))
	for _, r := range s.Records {
		set[r.Slug] = struct{}{}
	}
	return set
}
