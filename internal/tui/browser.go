package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/qdocs/demolint/pkg/demolint"
)

// kindCycle is the filter rotation order: all violations first, then
// each kind in taxonomy order.
var kindCycle = []demolint.Kind{
	"",
	demolint.KindMissingField,
	demolint.KindWrongType,
	demolint.KindEmptyValue,
	demolint.KindDateOrderViolation,
	demolint.KindDuplicateKey,
	demolint.KindDanglingReference,
	demolint.KindUnknownCategory,
}

type browserKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Filter key.Binding
	Quit   key.Binding
}

func defaultBrowserKeyMap() browserKeyMap {
	return browserKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Filter: key.NewBinding(
			key.WithKeys("f"),
			key.WithHelp("f", "filter kind"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c", "esc"),
			key.WithHelp("q/esc", "quit"),
		),
	}
}

// Browser is an interactive viewer over a sorted violation list. It
// never mutates the corpus; it exists so an author can walk a long
// report without losing the terminal scrollback.
type Browser struct {
	title      string
	violations []demolint.Violation

	visible []int // indexes into violations under the active filter
	cursor  int
	filter  int // index into kindCycle
	height  int
	keyMap  browserKeyMap
}

// NewBrowser creates a browser over violations, which must already be
// in their canonical order.
func NewBrowser(title string, violations []demolint.Violation) Browser {
	b := Browser{
		title:      title,
		violations: violations,
		height:     24,
		keyMap:     defaultBrowserKeyMap(),
	}
	b.applyFilter()
	return b
}

func (b *Browser) applyFilter() {
	kind := kindCycle[b.filter]
	b.visible = b.visible[:0]
	for i, v := range b.violations {
		if kind == "" || v.Kind == kind {
			b.visible = append(b.visible, i)
		}
	}
	if b.cursor >= len(b.visible) {
		b.cursor = 0
	}
}

// Init implements tea.Model.
func (b Browser) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (b Browser) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, b.keyMap.Up):
			if b.cursor > 0 {
				b.cursor--
			}
		case key.Matches(msg, b.keyMap.Down):
			if b.cursor < len(b.visible)-1 {
				b.cursor++
			}
		case key.Matches(msg, b.keyMap.Filter):
			b.filter = (b.filter + 1) % len(kindCycle)
			b.cursor = 0
			b.applyFilter()
		case key.Matches(msg, b.keyMap.Quit):
			return b, tea.Quit
		}
	case tea.WindowSizeMsg:
		b.height = msg.Height
	}
	return b, nil
}

// View implements tea.Model.
func (b Browser) View() string {
	var out strings.Builder

	header := b.title
	if kind := kindCycle[b.filter]; kind != "" {
		header += fmt.Sprintf(" [%s only]", kind)
	}
	out.WriteString(TitleStyle.Render(header))
	out.WriteString("\n\n")

	if len(b.visible) == 0 {
		out.WriteString(UnselectedStyle.Render("no violations under this filter"))
		out.WriteString("\n")
	}

	// Keep the cursor inside the visible window on short terminals.
	window := b.height - 8
	if window < 3 {
		window = 3
	}
	start := 0
	if b.cursor >= window {
		start = b.cursor - window + 1
	}

	for pos := start; pos < len(b.visible) && pos < start+window; pos++ {
		v := b.violations[b.visible[pos]]
		line := fmt.Sprintf("%s  %s", v.Record, KindStyle.Render(string(v.Kind)))
		if v.Field != "" {
			line = fmt.Sprintf("%s  %s  %s", v.Record, v.Field, KindStyle.Render(string(v.Kind)))
		}

		if pos == b.cursor {
			out.WriteString(SelectedStyle.Render(SymbolSelected + " " + line))
		} else {
			out.WriteString(UnselectedStyle.Render(SymbolUnselected + " " + line))
		}
		out.WriteString("\n")
	}

	if b.cursor < len(b.visible) {
		v := b.violations[b.visible[b.cursor]]
		out.WriteString(DetailStyle.Render(fmt.Sprintf("%s %s", SymbolCross, v.Message)))
		out.WriteString("\n")
	}

	out.WriteString(HelpStyle.Render(fmt.Sprintf(
		"%d/%d shown • ↑/↓ navigate • f filter kind • q quit",
		len(b.visible), len(b.violations))))

	return out.String()
}

// Run displays the browser and blocks until the user quits.
func Run(b Browser) error {
	program := tea.NewProgram(b)
	_, err := program.Run()
	return err
}
