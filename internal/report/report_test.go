package report

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qdocs/demolint/pkg/demolint"
)

func testSnapshot() demolint.Snapshot {
	return demolint.Snapshot{
		Records: []demolint.RawRecord{
			{
				Slug:   "tutorial_vqe",
				Path:   "./tutorial_vqe.json",
				Object: map[string]any{"canonicalURL": "/qml/demos/tutorial_vqe"},
			},
			{
				Slug:   "no_url_demo",
				Path:   "./no_url_demo.json",
				Object: map[string]any{},
			},
		},
		Checksum: "abc123",
	}
}

func TestWriteText_CleanCorpus(t *testing.T) {
	var buf bytes.Buffer
	WriteText(&buf, testSnapshot(), nil)

	out := buf.String()
	assert.Contains(t, out, "publishable")
	assert.Contains(t, out, "2 records")
}

func TestWriteText_GroupsByRecord(t *testing.T) {
	violations := []demolint.Violation{
		{Record: "a_demo", Field: "title", Kind: demolint.KindMissingField, Message: "required field is missing"},
		{Record: "a_demo", Field: "categories[0]", Kind: demolint.KindUnknownCategory, Message: "unknown"},
		{Record: "b_demo", Field: "canonicalURL", Kind: demolint.KindDuplicateKey, Message: "duplicate"},
	}

	var buf bytes.Buffer
	WriteText(&buf, testSnapshot(), violations)
	out := buf.String()

	// Each record heading appears once even with multiple violations.
	assert.Equal(t, 1, strings.Count(out, "a_demo"))
	assert.Equal(t, 1, strings.Count(out, "b_demo"))
	assert.Contains(t, out, "MissingField")
	assert.Contains(t, out, "3 violation(s) across 2 record(s)")
}

func TestWriteText_PerKindCounts(t *testing.T) {
	violations := []demolint.Violation{
		{Record: "a", Field: "title", Kind: demolint.KindMissingField, Message: "m"},
		{Record: "a", Field: "doi", Kind: demolint.KindMissingField, Message: "m"},
		{Record: "b", Field: "canonicalURL", Kind: demolint.KindWrongType, Message: "m"},
	}

	var buf bytes.Buffer
	WriteText(&buf, testSnapshot(), violations)
	out := buf.String()

	assert.Contains(t, out, "MissingField: 2")
	assert.Contains(t, out, "WrongType: 1")
	assert.NotContains(t, out, "DuplicateKey:")
}

func TestBuild_Document(t *testing.T) {
	violations := []demolint.Violation{
		{Record: "tutorial_vqe", Field: "title", Kind: demolint.KindMissingField, Message: "m"},
	}

	doc := Build(testSnapshot(), violations)
	assert.Equal(t, "abc123", doc.CorpusChecksum)
	assert.Equal(t, 2, doc.TotalRecords)
	assert.False(t, doc.Passed)
	assert.Equal(t, 1, doc.ViolationCounts[demolint.KindMissingField])

	require.Len(t, doc.Records, 2)
	assert.Equal(t, "tutorial_vqe", doc.Records[0].Slug)
	assert.NotEmpty(t, doc.Records[0].RecordID, "record with a canonical URL gets a stable id")
	assert.Empty(t, doc.Records[1].RecordID, "record without a canonical URL gets none")
}

func TestBuild_RecordIDStable(t *testing.T) {
	a := Build(testSnapshot(), nil)
	b := Build(testSnapshot(), nil)
	assert.Equal(t, a.Records[0].RecordID, b.Records[0].RecordID)
}

func TestBuild_PassedWithNilViolations(t *testing.T) {
	doc := Build(testSnapshot(), nil)
	assert.True(t, doc.Passed)
	assert.NotNil(t, doc.Violations)
}

func TestWriteJSON_RoundTrip(t *testing.T) {
	doc := Build(testSnapshot(), []demolint.Violation{
		{Record: "tutorial_vqe", Field: "title", Kind: demolint.KindMissingField, Message: "m"},
	})

	var buf bytes.Buffer
	require.NoError(t, WriteJSON(&buf, doc))

	var decoded Document
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, doc.CorpusChecksum, decoded.CorpusChecksum)
	assert.Equal(t, doc.Passed, decoded.Passed)
	require.Len(t, decoded.Violations, 1)
	assert.Equal(t, demolint.KindMissingField, decoded.Violations[0].Kind)
}

func TestWriteJSON_EmptyViolationsMarshalAsArray(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteJSON(&buf, Build(testSnapshot(), nil)))
	assert.Contains(t, buf.String(), `"violations": []`)
}
