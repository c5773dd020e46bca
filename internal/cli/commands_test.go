package cli

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/qdocs/demolint/internal/logging"
	"github.com/qdocs/demolint/pkg/demolint"
)

const cleanRecord = `{
  "title": "Basic tutorial: qubit rotation",
  "authors": [{"id": "josh_izaac"}],
  "dateOfPublication": "2019-10-01T00:00:00+00:00",
  "dateOfLastModification": "2024-10-07T00:00:00+00:00",
  "categories": ["Getting Started"],
  "tags": [],
  "seoDescription": "Rotate a qubit with gradient descent.",
  "canonicalURL": "/qml/demos/tutorial_qubit_rotation"
}`

func writeCorpus(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, content := range files {
		path := filepath.Join(dir, name)
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			t.Fatal(err)
		}
	}
	return dir
}

func clearEnvOverrides(t *testing.T) {
	t.Helper()
	for _, envVar := range []string{"DEMOLINT_CONFIG", "DEMOLINT_AUTHORS_DIR"} {
		t.Setenv(envVar, "")
	}
}

func TestValidateCmd_ArgsValidation(t *testing.T) {
	err := validateCmd.Args(validateCmd, []string{})
	if err == nil {
		t.Fatal("Expected error for missing args")
	}
	if exitCode := demolint.ExitCodeForError(err); exitCode != demolint.ExitUsageError {
		t.Errorf("Expected exit code %d (usage), got %d for: %v", demolint.ExitUsageError, exitCode, err)
	}
}

func TestValidateCorpus_CleanCorpus(t *testing.T) {
	clearEnvOverrides(t)
	dir := writeCorpus(t, map[string]string{
		"tutorial_qubit_rotation.json": cleanRecord,
	})

	snap, violations, err := validateCorpus(dir, corpusFlags{}, logging.NewNullLogger())
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if len(snap.Records) != 1 {
		t.Errorf("Expected 1 record, got %d", len(snap.Records))
	}
	if len(violations) != 0 {
		t.Errorf("Expected no violations, got %v", violations)
	}
}

func TestValidateCorpus_BrokenRecord(t *testing.T) {
	clearEnvOverrides(t)
	dir := writeCorpus(t, map[string]string{
		"broken_demo.json": `{"title": ""}`,
	})

	_, violations, err := validateCorpus(dir, corpusFlags{}, logging.NewNullLogger())
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if len(violations) == 0 {
		t.Fatal("Expected violations for a broken record")
	}
}

func TestValidateCorpus_MissingDirectory(t *testing.T) {
	clearEnvOverrides(t)
	_, _, err := validateCorpus("/nonexistent/path/abc123", corpusFlags{}, logging.NewNullLogger())
	if err == nil {
		t.Fatal("Expected error for nonexistent corpus")
	}
	if !errors.Is(err, demolint.ErrCorpusUnreadable) {
		t.Errorf("Expected ErrCorpusUnreadable, got: %v", err)
	}
	if exitCode := demolint.ExitCodeForError(err); exitCode != demolint.ExitCorpusError {
		t.Errorf("Expected exit code %d, got %d", demolint.ExitCorpusError, exitCode)
	}
}

func TestValidateCorpus_RulesFromCorpusRoot(t *testing.T) {
	clearEnvOverrides(t)
	dir := writeCorpus(t, map[string]string{
		"demo.json": `{
  "title": "A demo",
  "authors": [{"id": "a"}],
  "dateOfPublication": "2024-01-01",
  "dateOfLastModification": "2024-01-02",
  "categories": ["Custom Category"],
  "seoDescription": "d",
  "canonicalURL": "/d"
}`,
		demolint.RulesFileName: "vocabulary:\n  categories:\n    - Custom Category\n",
	})

	_, violations, err := validateCorpus(dir, corpusFlags{}, logging.NewNullLogger())
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if len(violations) != 0 {
		t.Errorf("Expected custom vocabulary to apply, got %v", violations)
	}
}

func TestValidateCorpus_InvalidRulesFile(t *testing.T) {
	clearEnvOverrides(t)
	dir := writeCorpus(t, map[string]string{
		"demo.json":            cleanRecord,
		demolint.RulesFileName: "vocabulary:\n  categories: []\n",
	})

	_, _, err := validateCorpus(dir, corpusFlags{}, logging.NewNullLogger())
	if err == nil {
		t.Fatal("Expected error for invalid rules file")
	}
	if exitCode := demolint.ExitCodeForError(err); exitCode != demolint.ExitConfigError {
		t.Errorf("Expected exit code %d, got %d", demolint.ExitConfigError, exitCode)
	}
}

func TestValidateCorpus_AuthorsDirFlag(t *testing.T) {
	clearEnvOverrides(t)
	dir := writeCorpus(t, map[string]string{
		"demo.json":                cleanRecord,
		"_authors/alice.json":      `{}`,
		"_authors/josh_izaac.json": `{}`,
	})

	flags := corpusFlags{authorsDir: "_authors"}
	snap, violations, err := validateCorpus(dir, flags, logging.NewNullLogger())
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	// The author directory is excluded from the record scan.
	if len(snap.Records) != 1 {
		t.Errorf("Expected 1 record, got %d", len(snap.Records))
	}
	if len(violations) != 0 {
		t.Errorf("Expected josh_izaac to resolve, got %v", violations)
	}
}

func TestValidateCorpus_DanglingAuthor(t *testing.T) {
	clearEnvOverrides(t)
	dir := writeCorpus(t, map[string]string{
		"demo.json":           cleanRecord,
		"_authors/alice.json": `{}`,
	})

	flags := corpusFlags{authorsDir: "_authors"}
	_, violations, err := validateCorpus(dir, flags, logging.NewNullLogger())
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if len(violations) != 1 {
		t.Fatalf("Expected 1 violation, got %v", violations)
	}
	if violations[0].Kind != demolint.KindDanglingReference {
		t.Errorf("Expected DanglingReference, got %s", violations[0].Kind)
	}
}

func TestValidateCorpus_ConfigEnvVar(t *testing.T) {
	clearEnvOverrides(t)
	rulesPath := filepath.Join(t.TempDir(), "rules.yaml")
	if err := os.WriteFile(rulesPath, []byte("vocabulary:\n  categories:\n    - Env Category\n"), 0644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("DEMOLINT_CONFIG", rulesPath)

	dir := writeCorpus(t, map[string]string{
		"demo.json": `{
  "title": "A demo",
  "authors": [{"id": "a"}],
  "dateOfPublication": "2024-01-01",
  "dateOfLastModification": "2024-01-02",
  "categories": ["Env Category"],
  "seoDescription": "d",
  "canonicalURL": "/d"
}`,
	})

	_, violations, err := validateCorpus(dir, corpusFlags{}, logging.NewNullLogger())
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if len(violations) != 0 {
		t.Errorf("Expected the env-supplied rules to apply, got %v", violations)
	}
}

func TestCommandsRegistered(t *testing.T) {
	names := make(map[string]bool)
	for _, cmd := range rootCmd.Commands() {
		names[cmd.Name()] = true
	}
	for _, want := range []string{"validate", "browse", "watch", "scaffold", "version"} {
		if !names[want] {
			t.Errorf("Expected command %q to be registered", want)
		}
	}
}
