package report

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/qdocs/demolint/internal/identity"
	"github.com/qdocs/demolint/pkg/demolint"
)

// RecordSummary identifies one scanned record in the JSON report.
// RecordID is a deterministic UUID derived from the canonical URL, so
// downstream systems can join report rows across runs and file renames.
// It is empty when the record has no usable canonicalURL.
type RecordSummary struct {
	Slug     string `json:"slug"`
	Path     string `json:"path"`
	RecordID string `json:"record_id,omitempty"`
}

// Document is the machine-readable validation report.
type Document struct {
	CorpusChecksum  string                `json:"corpus_checksum"`
	TotalRecords    int                   `json:"total_records"`
	Passed          bool                  `json:"passed"`
	Records         []RecordSummary       `json:"records"`
	Violations      []demolint.Violation  `json:"violations"`
	ViolationCounts map[demolint.Kind]int `json:"violation_counts"`
}

// Build assembles the JSON report document from a snapshot and its
// sorted violations.
func Build(snap demolint.Snapshot, violations []demolint.Violation) Document {
	records := make([]RecordSummary, 0, len(snap.Records))
	for _, raw := range snap.Records {
		summary := RecordSummary{
			Slug: raw.Slug,
			Path: raw.Path,
		}
		if canonical, ok := raw.Object["canonicalURL"].(string); ok && canonical != "" {
			summary.RecordID = identity.RecordID(canonical).String()
		}
		records = append(records, summary)
	}

	// Violations marshals as [] rather than null for empty results.
	if violations == nil {
		violations = []demolint.Violation{}
	}

	return Document{
		CorpusChecksum:  snap.Checksum,
		TotalRecords:    len(snap.Records),
		Passed:          len(violations) == 0,
		Records:         records,
		Violations:      violations,
		ViolationCounts: demolint.CountByKind(violations),
	}
}

// WriteJSON renders the report document as indented JSON.
func WriteJSON(w io.Writer, doc Document) error {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal report: %w", err)
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}
