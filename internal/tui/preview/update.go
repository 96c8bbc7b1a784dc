package preview

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

// Update handles Bubbletea messages and updates model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		height := m.viewportHeight()
		if !m.ready {
			m.viewport = viewport.New(msg.Width, height)
			m.ready = true
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = height
		}
		m.refresh()
		return m, nil

	case LayoutLoadedMsg:
		m.doc = msg.Doc
		m.err = nil
		m.notice = ""
		m.log.Debug("layout loaded", "path", m.path)
		m.refresh()
		return m, nil

	case LayoutErrorMsg:
		m.err = msg.Err
		m.notice = ""
		m.log.Warn("layout reload failed", "path", m.path, "error", msg.Err.Error())
		m.refresh()
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyPress(msg)
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Reload):
		if !m.reloads.Allow() {
			m.notice = "reload throttled"
			return m, nil
		}
		m.notice = "reloading"
		return m, loadCmd(m.path, m.load)

	case key.Matches(msg, m.keys.Theme):
		m.toggleTheme()
		m.refresh()
		return m, nil

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		if m.ready {
			m.viewport.Height = m.viewportHeight()
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}
