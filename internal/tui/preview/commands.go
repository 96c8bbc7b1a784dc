package preview

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/selectorui/internal/layout"
)

// Loader reads and validates a layout file.
type Loader func(path string) (*layout.Document, error)

// loadCmd loads the layout at path asynchronously.
func loadCmd(path string, load Loader) tea.Cmd {
	return func() tea.Msg {
		doc, err := load(path)
		if err != nil {
			return LayoutErrorMsg{Err: err}
		}
		return LayoutLoadedMsg{Doc: doc}
	}
}
