package demolint

import (
	"fmt"
	"sort"
)

// Kind is the fixed taxonomy of violation kinds.
type Kind string

const (
	KindMissingField       Kind = "MissingField"
	KindWrongType          Kind = "WrongType"
	KindEmptyValue         Kind = "EmptyValue"
	KindDateOrderViolation Kind = "DateOrderViolation"
	KindDuplicateKey       Kind = "DuplicateKey"
	KindDanglingReference  Kind = "DanglingReference"
	KindUnknownCategory    Kind = "UnknownCategory"
)

// Violation is one reported failure of a corpus invariant. Violations
// are data, never errors: the validator records them and keeps going.
type Violation struct {
	// Record is the offending record's canonical identifier (its slug),
	// or the relative file path for corpus-level parse failures.
	Record string `json:"record"`

	// Field is the dotted path of the offending field, e.g.
	// "relatedContent[2].weight". Empty for whole-file violations.
	Field string `json:"field"`

	Kind    Kind   `json:"kind"`
	Message string `json:"message"`
}

// String formats a violation for one-line reports.
func (v Violation) String() string {
	if v.Field == "" {
		return fmt.Sprintf("%s: %s: %s", v.Record, v.Kind, v.Message)
	}
	return fmt.Sprintf("%s: %s: %s: %s", v.Record, v.Field, v.Kind, v.Message)
}

// SortViolations orders violations by record identifier, then field
// path, then discovery order. Two runs over the same snapshot produce
// byte-identical reports, so CI diffs stay stable.
func SortViolations(violations []Violation) {
	sort.SliceStable(violations, func(i, j int) bool {
		if violations[i].Record != violations[j].Record {
			return violations[i].Record < violations[j].Record
		}
		return violations[i].Field < violations[j].Field
	})
}

// CountByKind tallies violations per kind for report summaries.
func CountByKind(violations []Violation) map[Kind]int {
	counts := make(map[Kind]int)
	for _, v := range violations {
		counts[v.Kind]++
	}
	return counts
}
