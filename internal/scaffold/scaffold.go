// Package scaffold generates starter metadata records from embedded
// templates so new demos begin life with a record that already passes
// validation.
package scaffold

import (
	"embed"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode"

	"github.com/qdocs/demolint/pkg/demolint"
)

//go:embed all:templates
var templatesFS embed.FS

// GetTemplatesFS returns the embedded templates filesystem for testing purposes.
func GetTemplatesFS() embed.FS {
	return templatesFS
}

// Record holds the values substituted into a metadata template.
type Record struct {
	Slug     string
	Title    string
	AuthorID string
	Now      time.Time
}

// Render produces the metadata file content for a new demo. The title
// defaults to a humanized form of the slug and the author id to
// "unknown_author" so the generated record is structurally complete.
func Render(rec Record) ([]byte, error) {
	if rec.Slug == "" {
		return nil, fmt.Errorf("slug must not be empty")
	}

	content, err := templatesFS.ReadFile("templates/demo/metadata.json")
	if err != nil {
		return nil, fmt.Errorf("failed to read metadata template: %w", err)
	}

	title := rec.Title
	if title == "" {
		title = humanizeSlug(rec.Slug)
	}
	authorID := rec.AuthorID
	if authorID == "" {
		authorID = "unknown_author"
	}
	now := rec.Now
	if now.IsZero() {
		now = time.Now()
	}

	out := string(content)
	out = strings.ReplaceAll(out, "{{SLUG}}", rec.Slug)
	out = strings.ReplaceAll(out, "{{TITLE}}", title)
	out = strings.ReplaceAll(out, "{{AUTHOR_ID}}", authorID)
	out = strings.ReplaceAll(out, "{{DATE}}", now.UTC().Format(time.RFC3339))
	return []byte(out), nil
}

// Create writes the rendered metadata record into the corpus directory,
// refusing to overwrite an existing file.
func Create(corpusPath string, rec Record) (string, error) {
	content, err := Render(rec)
	if err != nil {
		return "", err
	}

	targetPath := filepath.Join(corpusPath, rec.Slug+demolint.MetadataFileSuffix)
	if _, err := os.Stat(targetPath); err == nil {
		return "", fmt.Errorf("metadata file already exists: %s", targetPath)
	} else if !os.IsNotExist(err) {
		return "", fmt.Errorf("failed to check target path: %w", err)
	}

	if err := os.WriteFile(targetPath, content, 0644); err != nil {
		return "", fmt.Errorf("failed to write metadata file: %w", err)
	}
	return targetPath, nil
}

// humanizeSlug turns "tutorial_qubit_rotation" into "Tutorial qubit rotation".
func humanizeSlug(slug string) string {
	words := strings.FieldsFunc(slug, func(r rune) bool {
		return r == '_' || r == '-'
	})
	if len(words) == 0 {
		return slug
	}
	first := []rune(words[0])
	first[0] = unicode.ToUpper(first[0])
	words[0] = string(first)
	return strings.Join(words, " ")
}
