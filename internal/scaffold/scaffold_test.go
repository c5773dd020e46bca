package scaffold

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qdocs/demolint/internal/config"
	"github.com/qdocs/demolint/internal/validator"
	"github.com/qdocs/demolint/pkg/demolint"
)

func TestRender_ValidJSON(t *testing.T) {
	content, err := Render(Record{Slug: "tutorial_qubit_rotation"})
	require.NoError(t, err)

	var obj map[string]any
	require.NoError(t, json.Unmarshal(content, &obj))
	assert.Equal(t, "Tutorial qubit rotation", obj["title"])
	assert.Equal(t, "/qml/demos/tutorial_qubit_rotation", obj["canonicalURL"])
}

func TestRender_PassesValidation(t *testing.T) {
	content, err := Render(Record{Slug: "tutorial_vqe", Now: time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)})
	require.NoError(t, err)

	var obj map[string]any
	require.NoError(t, json.Unmarshal(content, &obj))

	raw := demolint.RawRecord{Slug: "tutorial_vqe", Path: "./tutorial_vqe.json", Object: obj}
	violations := validator.Record(raw, config.Default().Rules())
	assert.Empty(t, violations, "a scaffolded record must be clean out of the box")
}

func TestRender_ExplicitTitleAndAuthor(t *testing.T) {
	content, err := Render(Record{
		Slug:     "tutorial_vqe",
		Title:    "A variational quantum eigensolver",
		AuthorID: "alain_delgado",
	})
	require.NoError(t, err)

	var obj map[string]any
	require.NoError(t, json.Unmarshal(content, &obj))
	assert.Equal(t, "A variational quantum eigensolver", obj["title"])

	authorList, ok := obj["authors"].([]any)
	require.True(t, ok)
	require.Len(t, authorList, 1)
	author, ok := authorList[0].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "alain_delgado", author["id"])
}

func TestRender_EmptySlug(t *testing.T) {
	_, err := Render(Record{})
	assert.Error(t, err)
}

func TestCreate_WritesFile(t *testing.T) {
	dir := t.TempDir()
	path, err := Create(dir, Record{Slug: "tutorial_vqe"})
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "tutorial_vqe.json"), path)

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(content), "tutorial_vqe")
}

func TestCreate_RefusesOverwrite(t *testing.T) {
	dir := t.TempDir()
	existing := filepath.Join(dir, "tutorial_vqe.json")
	require.NoError(t, os.WriteFile(existing, []byte("{}"), 0644))

	_, err := Create(dir, Record{Slug: "tutorial_vqe"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")
}

func TestHumanizeSlug(t *testing.T) {
	tests := []struct {
		slug string
		want string
	}{
		{"tutorial_qubit_rotation", "Tutorial qubit rotation"},
		{"how-to-catalyst", "How to catalyst"},
		{"vqe", "Vqe"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, humanizeSlug(tt.slug))
	}
}
