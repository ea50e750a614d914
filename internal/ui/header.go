package ui

import "strings"

// renderHeader renders the status bar: app name, mode, API root, book count
// and the time of the last applied list. Failures never show here; they go to
// the diagnostic log.
func (m Model) renderHeader(l layout) string {
	styles := m.theme.Styles()
	bg := NewBgStyle(m.theme.Surface)

	parts := []string{bg.Render("bookshelf", styles.Logo)}
	if m.mode != "" {
		parts = append(parts, bg.Render(strings.ToUpper(m.mode), styles.AccentText))
	}
	if m.baseURL != "" {
		parts = append(parts, bg.Render(truncateMiddle(m.baseURL, 40), styles.MutedText))
	}

	if m.snapshot.HasBooks {
		parts = append(parts, bg.Render(m.countLabel(), styles.SuccessText))
	} else {
		parts = append(parts, bg.Render("Connecting...", styles.WarningText.Bold(true)))
	}
	if !m.snapshot.LastUpdated.IsZero() {
		parts = append(parts, bg.Render(m.snapshot.LastUpdated.Format("15:04:05"), styles.FaintText))
	}

	return bg.FillLine(bg.Join(parts, "  "), l.width)
}
