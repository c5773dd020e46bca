package validator

import (
	"fmt"

	"github.com/qdocs/demolint/pkg/demolint"
)

// Corpus validates the whole corpus snapshot: it runs the single-record
// checks on every record, then the cross-record checks that need the
// full picture: slug and canonical-URL uniqueness, related-content
// resolution, and author-id resolution when an author directory was
// supplied.
//
// The result is every violation found, ordered by record identifier,
// then field path, then discovery order. An empty result means the
// corpus is publishable. Corpus is a pure function of the snapshot: it
// holds no state and running it twice yields identical output.
func Corpus(snap demolint.Snapshot, rules demolint.Rules) []demolint.Violation {
	violations := make([]demolint.Violation, 0, len(snap.FileViolations))
	violations = append(violations, snap.FileViolations...)

	// Per-record shape checks, collecting best-effort typed records for
	// the cross-record pass. Slug collisions are caught here: two files
	// with the same basename would silently shadow each other in the
	// related-content lookup table.
	records := make([]demolint.DemoRecord, 0, len(snap.Records))
	slugPaths := make(map[string]string, len(snap.Records))
	for _, raw := range snap.Records {
		if firstPath, dup := slugPaths[raw.Slug]; dup {
			violations = append(violations, demolint.Violation{
				Record:  raw.Slug,
				Kind:    demolint.KindDuplicateKey,
				Message: fmt.Sprintf("slug %q is defined by both %s and %s", raw.Slug, firstPath, raw.Path),
			})
		} else {
			slugPaths[raw.Slug] = raw.Path
		}

		rec, recViolations := checkRecord(raw, rules)
		violations = append(violations, recViolations...)
		records = append(records, rec)
	}

	violations = append(violations, checkCanonicalURLs(records)...)

	slugs := snap.Slugs()
	for _, rec := range records {
		violations = append(violations, resolveRelatedContent(rec, slugs, rules)...)
		violations = append(violations, resolveAuthors(rec, rules)...)
	}

	demolint.SortViolations(violations)
	return violations
}

// checkCanonicalURLs enforces corpus-wide canonical-URL uniqueness.
// Records whose canonicalURL already failed shape validation are
// skipped; they reported a violation of their own.
func checkCanonicalURLs(records []demolint.DemoRecord) []demolint.Violation {
	var violations []demolint.Violation
	firstBy := make(map[string]string, len(records))
	for _, rec := range records {
		if rec.CanonicalURL == "" {
			continue
		}
		if firstSlug, dup := firstBy[rec.CanonicalURL]; dup {
			violations = append(violations, demolint.Violation{
				Record: rec.Slug,
				Field:  "canonicalURL",
				Kind:   demolint.KindDuplicateKey,
				Message: fmt.Sprintf("canonical URL %q is also used by record %q",
					rec.CanonicalURL, firstSlug),
			})
			continue
		}
		firstBy[rec.CanonicalURL] = rec.Slug
	}
	return violations
}

// resolveRelatedContent checks that every related-content link points at
// a real target of its stated type. Demonstrations resolve against the
// corpus slugs; papers and apps resolve against the optional directories
// in the rules, and are skipped when no directory was supplied. Entries
// whose type or id already failed shape validation are skipped.
func resolveRelatedContent(rec demolint.DemoRecord, slugs demolint.StringSet, rules demolint.Rules) []demolint.Violation {
	var violations []demolint.Violation
	for i, rel := range rec.RelatedContent {
		if rel.Type == "" || rel.ID == "" {
			continue
		}

		var directory demolint.StringSet
		switch rel.Type {
		case demolint.RelatedDemonstration:
			directory = slugs
		case demolint.RelatedPaper:
			directory = rules.Papers
		case demolint.RelatedApp:
			directory = rules.Apps
		}
		if directory == nil {
			continue
		}

		if !directory.Contains(rel.ID) {
			violations = append(violations, demolint.Violation{
				Record:  rec.Slug,
				Field:   fmt.Sprintf("relatedContent[%d].id", i),
				Kind:    demolint.KindDanglingReference,
				Message: fmt.Sprintf("no %s named %q exists", rel.Type, rel.ID),
			})
		}
	}
	return violations
}

// resolveAuthors checks author ids against the supplied author
// directory. Without a directory only shape was validated.
func resolveAuthors(rec demolint.DemoRecord, rules demolint.Rules) []demolint.Violation {
	if rules.Authors == nil {
		return nil
	}
	var violations []demolint.Violation
	for i, author := range rec.Authors {
		if author.ID == "" {
			continue
		}
		if !rules.Authors.Contains(author.ID) {
			violations = append(violations, demolint.Violation{
				Record:  rec.Slug,
				Field:   fmt.Sprintf("authors[%d].id", i),
				Kind:    demolint.KindDanglingReference,
				Message: fmt.Sprintf("author %q is not in the author directory", author.ID),
			})
		}
	}
	return violations
}
