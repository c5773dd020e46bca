// Package validator checks demo metadata records against the corpus
// invariants.
//
// # Contract
//
// Given the full corpus snapshot, produce an ordered list of violations;
// an empty list means the corpus is publishable. Two entry points:
//
//   - Record: single-record shape checks (required fields, types, date
//     ordering, vocabulary membership, reference-id uniqueness). Needs
//     no corpus context.
//   - Corpus: runs Record on everything, then the cross-record checks:
//     canonical-URL and slug uniqueness, related-content resolution,
//     optional author resolution.
//
// # Accumulate, never abort
//
// Validation must not short-circuit on the first error: authors fix the
// whole corpus in one round-trip instead of replaying CI per mistake.
// Nothing in this package returns an error or panics on malformed input;
// anything that cannot be interpreted according to the expected shape
// becomes a WrongType or MissingField violation.
//
// # Determinism
//
// Violations are ordered by record identifier, then field path, then
// discovery order, so two runs over the same snapshot are
// byte-identical. CI diffs of validation reports stay meaningful.
//
// # Violation kinds
//
// The taxonomy is fixed: MissingField, WrongType, EmptyValue,
// DateOrderViolation, DuplicateKey, DanglingReference, UnknownCategory.
// Values that are present and correctly typed but unparseable (bad
// date-times, malformed URIs) or out of bounds report WrongType; values
// outside a controlled set (categories, image types, related-content
// types) report UnknownCategory.
package validator
