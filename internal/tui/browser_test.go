package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/qdocs/demolint/pkg/demolint"
)

func testViolations() []demolint.Violation {
	return []demolint.Violation{
		{Record: "a_demo", Field: "title", Kind: demolint.KindMissingField, Message: "required field is missing"},
		{Record: "a_demo", Field: "canonicalURL", Kind: demolint.KindDuplicateKey, Message: "duplicate"},
		{Record: "b_demo", Field: "authors[0].id", Kind: demolint.KindDanglingReference, Message: "unknown author"},
	}
}

func keyMsg(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestBrowser_ViewShowsAllViolations(t *testing.T) {
	b := NewBrowser("3 violation(s)", testViolations())
	view := b.View()

	if !strings.Contains(view, "a_demo") || !strings.Contains(view, "b_demo") {
		t.Errorf("Expected both records in view, got:\n%s", view)
	}
	if !strings.Contains(view, "3/3 shown") {
		t.Errorf("Expected '3/3 shown', got:\n%s", view)
	}
	// Detail line shows the selected violation's message.
	if !strings.Contains(view, "required field is missing") {
		t.Errorf("Expected the first message in the detail box, got:\n%s", view)
	}
}

func TestBrowser_CursorMoves(t *testing.T) {
	b := NewBrowser("t", testViolations())

	model, _ := b.Update(keyMsg("j"))
	b = model.(Browser)
	if b.cursor != 1 {
		t.Errorf("Expected cursor 1 after j, got %d", b.cursor)
	}

	model, _ = b.Update(keyMsg("k"))
	b = model.(Browser)
	if b.cursor != 0 {
		t.Errorf("Expected cursor 0 after k, got %d", b.cursor)
	}

	// Cursor clamps at the top.
	model, _ = b.Update(keyMsg("k"))
	b = model.(Browser)
	if b.cursor != 0 {
		t.Errorf("Expected cursor to clamp at 0, got %d", b.cursor)
	}
}

func TestBrowser_FilterCyclesKinds(t *testing.T) {
	b := NewBrowser("t", testViolations())

	// First press filters to MissingField.
	model, _ := b.Update(keyMsg("f"))
	b = model.(Browser)

	view := b.View()
	if !strings.Contains(view, "1/3 shown") {
		t.Errorf("Expected 1/3 shown under MissingField filter, got:\n%s", view)
	}
	if !strings.Contains(view, "MissingField only") {
		t.Errorf("Expected filter named in the header, got:\n%s", view)
	}
}

func TestBrowser_FilterWithNoMatches(t *testing.T) {
	b := NewBrowser("t", []demolint.Violation{
		{Record: "a", Field: "title", Kind: demolint.KindMissingField, Message: "m"},
	})

	// Cycle to WrongType: nothing matches.
	model, _ := b.Update(keyMsg("f"))
	model, _ = model.(Browser).Update(keyMsg("f"))
	b = model.(Browser)

	if !strings.Contains(b.View(), "no violations under this filter") {
		t.Errorf("Expected empty-filter notice, got:\n%s", b.View())
	}
}

func TestBrowser_QuitKeys(t *testing.T) {
	b := NewBrowser("t", testViolations())

	for _, msg := range []tea.KeyMsg{
		keyMsg("q"),
		{Type: tea.KeyCtrlC},
		{Type: tea.KeyEsc},
	} {
		_, cmd := b.Update(msg)
		if cmd == nil {
			t.Errorf("Expected quit command for %v", msg)
		}
	}
}

func TestDetectMode_EnvOverrides(t *testing.T) {
	t.Setenv("DEMOLINT_NON_INTERACTIVE", "1")
	if DetectMode() != ModeNonInteractive {
		t.Error("Expected non-interactive with DEMOLINT_NON_INTERACTIVE=1")
	}
}

func TestDetectMode_CI(t *testing.T) {
	t.Setenv("DEMOLINT_NON_INTERACTIVE", "")
	t.Setenv("CI", "true")
	if DetectMode() != ModeNonInteractive {
		t.Error("Expected non-interactive under CI")
	}
}
