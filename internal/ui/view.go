package ui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/five82/bookshelf/internal/editor"
)

// View renders the book screen.
func (m Model) View() string {
	l := m.layout()
	if m.showHelp {
		return m.renderHelp(l)
	}

	lines := make([]string, 0, l.height)
	lines = append(lines,
		m.renderHeader(l),
		"",
		m.renderForm(l),
		"",
		m.renderTableHeader(l),
		m.theme.Styles().FaintText.Render(strings.Repeat("─", max(l.width-2*marginX, 0))),
	)
	lines = append(lines, m.renderRows(l)...)
	for len(lines) < l.height-footerRows {
		lines = append(lines, "")
	}
	lines = append(lines, "", m.renderFooter(l))

	indent := strings.Repeat(" ", marginX)
	for i, line := range lines {
		if i == headerRow || line == "" {
			continue
		}
		lines[i] = clipRendered(indent+line, l.width)
	}
	return strings.Join(lines, "\n")
}

func (m Model) renderForm(l layout) string {
	s := m.theme.Styles()
	input := func(ti string, focused bool, w int) string {
		style := s.Input
		if focused {
			style = s.InputOn
		}
		return style.Width(w).MaxWidth(w).Render(ti)
	}

	var b strings.Builder
	b.WriteString(s.MutedText.Render(formTitleLabel))
	b.WriteString(input(m.formTitle.View(), m.focus == focusFormTitle, l.formTitle.W))
	b.WriteString(strings.Repeat(" ", colGap))
	b.WriteString(s.MutedText.Render(formYearLabel))
	b.WriteString(input(m.formYear.View(), m.focus == focusFormYear, l.formYear.W))
	b.WriteString(strings.Repeat(" ", colGap))
	b.WriteString(s.Button.Render(addLabel))
	return b.String()
}

func (m Model) renderTableHeader(l layout) string {
	s := m.theme.Styles()
	return s.Column.Render(fit("Title", l.titleW)) +
		strings.Repeat(" ", colGap) +
		s.Column.Render(fit("Release Year", l.yearW))
}

func (m Model) renderRows(l layout) []string {
	s := m.theme.Styles()
	books := m.ctrl.Books()
	if len(books) == 0 {
		msg := "No books yet. Press a to add one."
		if !m.snapshot.HasBooks {
			msg = "Loading books..."
		}
		return []string{s.MutedText.Render(msg)}
	}

	end := min(l.offset+l.visible, len(books))
	rows := make([]string, 0, max(end-l.offset, 0))
	for i := l.offset; i < end; i++ {
		b := books[i]
		title := m.renderCell(editor.Cell{ID: b.ID, Field: editor.FieldTitle}, b.Title, l.titleW)
		year := m.renderCell(editor.Cell{ID: b.ID, Field: editor.FieldYear}, strconv.Itoa(b.ReleaseYear), l.yearW)
		row := title + strings.Repeat(" ", colGap) + year + strings.Repeat(" ", colGap) + s.Delete.Render(deleteLabel)
		if i == m.cursor && m.focus == focusTable && !m.ctrl.AnyEditing() {
			row = s.Selected.Render(fit(b.Title, l.titleW)+strings.Repeat(" ", colGap)+fit(strconv.Itoa(b.ReleaseYear), l.yearW)) +
				strings.Repeat(" ", colGap) + s.Delete.Render(deleteLabel)
		}
		rows = append(rows, row)
	}
	return rows
}

// renderCell draws a displayed value, or its input when the field is open.
func (m Model) renderCell(cell editor.Cell, value string, width int) string {
	s := m.theme.Styles()
	if !m.ctrl.IsEditing(cell) {
		return s.Text.Render(fit(value, width))
	}
	if m.editBound && m.editCell == cell {
		return s.InputOn.Width(width).MaxWidth(width).Render(m.edit.View())
	}
	return s.Editing.Render(fit(m.ctrl.DraftText(cell), width))
}

func (m Model) renderFooter(l layout) string {
	bindings := m.keys.ShortHelp()
	switch {
	case m.editBound:
		bindings = m.keys.editingHelp()
	case m.focus != focusTable:
		bindings = m.keys.formHelp()
	}
	return lipgloss.NewStyle().MaxWidth(max(l.width-2*marginX, 1)).Render(m.help.ShortHelpView(bindings))
}

func (m Model) countLabel() string {
	n := m.ctrl.Len()
	if n == 1 {
		return "1 book"
	}
	return fmt.Sprintf("%d books", n)
}
