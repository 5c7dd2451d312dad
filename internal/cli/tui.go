package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/matzehuels/proofgen/pkg/diagram/archetype"
)

var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listNormalStyle   = lipgloss.NewStyle().Foreground(colorWhite)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
	tableHeaderStyle  = lipgloss.NewStyle().Foreground(colorGray).Bold(true)
)

// =============================================================================
// TemplatePickerModel - interactive template selection for generate -i
// =============================================================================

// TemplatePickerModel lets the user pick a diagram template when no system
// type was given.
type TemplatePickerModel struct {
	Kinds    []archetype.Kind
	Cursor   int
	Selected *archetype.Kind
}

// NewTemplatePickerModel lists every template, generic last.
func NewTemplatePickerModel() TemplatePickerModel {
	return TemplatePickerModel{Kinds: archetype.Kinds()}
}

func (m TemplatePickerModel) Init() tea.Cmd {
	return nil
}

func (m TemplatePickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch key.String() {
	case "q", "ctrl+c", "esc":
		return m, tea.Quit
	case "up", "k":
		if m.Cursor > 0 {
			m.Cursor--
		}
	case "down", "j":
		if m.Cursor < len(m.Kinds)-1 {
			m.Cursor++
		}
	case "enter":
		k := m.Kinds[m.Cursor]
		m.Selected = &k
		return m, tea.Quit
	}
	return m, nil
}

func (m TemplatePickerModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Select Template"))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  ⏎ select  q quit"))
	b.WriteString("\n\n")

	for i, k := range m.Kinds {
		cursor := "  "
		if i == m.Cursor {
			cursor = "▸ "
		}
		tpl := archetype.ForKind(k, "")
		line := fmt.Sprintf("%s%-12s %s", cursor, k, tpl.Title)
		if i == m.Cursor {
			b.WriteString(listSelectedStyle.Render(line))
		} else {
			b.WriteString(listNormalStyle.Render(line))
		}
		b.WriteString("\n")
	}

	if m.Cursor < len(m.Kinds) {
		tpl := archetype.ForKind(m.Kinds[m.Cursor], "")
		labels := make([]string, len(tpl.Nodes))
		for i, n := range tpl.Nodes {
			labels[i] = n.Label
		}
		b.WriteString("\n")
		b.WriteString(listDimStyle.Render("  " + strings.Join(labels, " → ")))
		b.WriteString("\n")
	}
	return b.String()
}

// systemTypeFor returns the system type string that selects k.
func systemTypeFor(k archetype.Kind) string {
	return archetype.Keyword(k)
}

// =============================================================================
// Templates table
// =============================================================================

// templatesTable renders the built-in templates as a bordered table.
func templatesTable() string {
	rows := [][]string{}
	for _, k := range archetype.Kinds() {
		tpl := archetype.ForKind(k, "")
		keyword := archetype.Keyword(k)
		if keyword == "" {
			keyword = "(anything else)"
		}
		rows = append(rows, []string{k.String(), keyword, tpl.Title, fmt.Sprintf("%d", len(tpl.Nodes))})
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("Template", "Matches", "Title", "Boxes").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return tableHeaderStyle
			}
			if col == 0 {
				return lipgloss.NewStyle().Foreground(colorCyan)
			}
			if col == 1 {
				return lipgloss.NewStyle().Foreground(colorDim)
			}
			return lipgloss.NewStyle()
		})
	return t.Render()
}
