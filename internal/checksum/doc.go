// Package checksum provides content hashing with normalization support.
//
// The package implements demolint's dual checksum strategy:
//
//   - Raw checksum: Hash of the exact file content (detects all changes)
//   - Normalized checksum: Hash after stripping whitespace outside JSON
//     string literals (formatting-independent content identity)
//
// Watch mode uses CorpusFingerprint to decide whether a filesystem event
// actually changed the corpus: reformatting a metadata file without
// changing its content does not trigger a re-report.
//
// # Example Usage
//
//	calculator := checksum.New()
//	rawChecksum := calculator.CalculateRaw(fileContent)
//	normalizedChecksum := calculator.CalculateNormalized(fileContent)
//
// # Thread Safety
//
// SHA256 is safe for concurrent use by multiple goroutines.
package checksum
