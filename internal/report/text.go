// Package report renders validation results for humans and machines.
//
// The text renderer groups violations by record and colors them for
// terminals; the JSON renderer emits a stable machine-readable document
// for CI systems. Both show identical content in identical order.
package report

import (
	"fmt"
	"io"

	"github.com/qdocs/demolint/pkg/demolint"
)

// WriteText renders a human-readable report. Violations must already be
// in their canonical order (validator.Corpus returns them sorted).
func WriteText(w io.Writer, snap demolint.Snapshot, violations []demolint.Violation) {
	if len(violations) == 0 {
		fmt.Fprintf(w, "%s %s\n",
			successStyle.Render(symbolCheck),
			fmt.Sprintf("corpus is publishable (%d records)", len(snap.Records)))
		return
	}

	lastRecord := ""
	affected := 0
	for _, v := range violations {
		if v.Record != lastRecord {
			if lastRecord != "" {
				fmt.Fprintln(w)
			}
			fmt.Fprintf(w, "%s\n", recordStyle.Render(v.Record))
			lastRecord = v.Record
			affected++
		}

		location := ""
		if v.Field != "" {
			location = fieldStyle.Render(v.Field) + ": "
		}
		fmt.Fprintf(w, "  %s %s%s: %s\n",
			errorStyle.Render(symbolCross),
			location,
			kindStyle.Render(string(v.Kind)),
			v.Message)
	}

	fmt.Fprintln(w)
	fmt.Fprintf(w, "%s\n", summaryStyle.Render(
		fmt.Sprintf("%s %d violation(s) across %d record(s), %d record(s) scanned",
			symbolCross, len(violations), affected, len(snap.Records))))

	counts := demolint.CountByKind(violations)
	for _, kind := range []demolint.Kind{
		demolint.KindMissingField,
		demolint.KindWrongType,
		demolint.KindEmptyValue,
		demolint.KindDateOrderViolation,
		demolint.KindDuplicateKey,
		demolint.KindDanglingReference,
		demolint.KindUnknownCategory,
	} {
		if n := counts[kind]; n > 0 {
			fmt.Fprintf(w, "  %s %s: %d\n", symbolBullet, kind, n)
		}
	}
}
