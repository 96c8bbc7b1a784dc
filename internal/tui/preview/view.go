package preview

import (
	"fmt"
	"strings"
)

// View renders the preview.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if !m.ready {
		return mutedStyle.Render("starting preview...")
	}

	var b strings.Builder
	b.WriteString(m.header())
	b.WriteString("\n")
	b.WriteString(m.viewport.View())
	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))
	return b.String()
}

func (m Model) header() string {
	name := m.path
	if m.doc != nil {
		name = m.doc.Name
	}
	status := statusStyle.Render(fmt.Sprintf("theme: %s", m.ThemeName()))
	if m.err != nil {
		status = errorStyle.Render("error")
	}
	if m.notice != "" {
		status += "  " + mutedStyle.Render(m.notice)
	}
	return fmt.Sprintf("%s  %s", titleStyle.Render(name), status)
}
