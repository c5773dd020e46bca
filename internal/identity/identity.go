// Package identity derives stable, deterministic record identifiers.
//
// JSON reports need a record key that survives file moves and renames so
// downstream systems (search indexing, analytics) can join on it. The
// canonical URL is unique across the corpus, so a UUID v5 of it is both
// stable and collision-free.
package identity

import (
	"strings"

	"github.com/google/uuid"
)

// NamespaceRecordIdentity is the fixed UUID namespace for generating
// deterministic record identities from canonical URLs. Derived from the
// string "demolint/record-identity/v1" under the standard URL namespace,
// computed once at package load.
var NamespaceRecordIdentity = uuid.NewSHA1(uuid.NameSpaceURL, []byte("demolint/record-identity/v1"))

// RecordID creates a deterministic UUID v5 from a record's canonical URL.
//
// URL normalization:
//  1. Lowercase (canonical URLs are case-insensitive in practice)
//  2. Trailing slash removed (consistent reference to the same page)
//
// The same canonical URL always yields the same UUID, across machines
// and runs.
func RecordID(canonicalURL string) uuid.UUID {
	normalized := normalizeURL(canonicalURL)
	return uuid.NewSHA1(NamespaceRecordIdentity, []byte(normalized))
}

func normalizeURL(u string) string {
	normalized := strings.ToLower(strings.TrimSpace(u))
	if len(normalized) > 1 {
		normalized = strings.TrimSuffix(normalized, "/")
	}
	return normalized
}
