// Package preview implements an interactive terminal preview of a layout
// file with live reload and theme switching.
package preview

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/time/rate"

	"github.com/alexisbeaulieu97/selectorui/internal/layout"
	"github.com/alexisbeaulieu97/selectorui/internal/logger"
	"github.com/alexisbeaulieu97/selectorui/internal/ui/components"
)

// headerHeight is the number of lines taken by the header.
const headerHeight = 1

// Options configures a preview Model.
type Options struct {
	Path    string
	Theme   string
	Load    Loader
	Builder *layout.Builder
	Logger  *logger.Logger

	// ReloadsPerSecond caps manual reloads; zero or less means unlimited.
	ReloadsPerSecond float64
}

// Model is the Bubbletea state of the layout preview.
type Model struct {
	path    string
	load    Loader
	builder *layout.Builder
	log     *logger.Logger
	reloads *rate.Limiter

	doc       *layout.Document
	themeName string
	err       error
	notice    string

	viewport viewport.Model
	help     help.Model
	keys     keyMap
	ready    bool
	quitting bool

	width  int
	height int
}

// NewModel constructs a preview for opts.Path. A nil Load reads from disk.
func NewModel(opts Options) Model {
	load := opts.Load
	if load == nil {
		load = layout.ParseFile
	}
	builder := opts.Builder
	if builder == nil {
		builder = layout.NewBuilder(opts.Logger)
	}

	limit := rate.Inf
	if opts.ReloadsPerSecond > 0 {
		limit = rate.Limit(opts.ReloadsPerSecond)
	}

	return Model{
		path:      opts.Path,
		load:      load,
		builder:   builder,
		log:       opts.Logger,
		reloads:   rate.NewLimiter(limit, 1),
		themeName: opts.Theme,
		help:      help.New(),
		keys:      defaultKeyMap(),
	}
}

// Init loads the layout.
func (m Model) Init() tea.Cmd {
	return loadCmd(m.path, m.load)
}

// Document returns the last successfully loaded layout.
func (m Model) Document() *layout.Document {
	return m.doc
}

// Notice returns the transient status shown in the header.
func (m Model) Notice() string {
	return m.notice
}

// Err returns the last load or render error.
func (m Model) Err() error {
	return m.err
}

// ThemeName returns the theme used for rendering: the explicit choice, then
// the document theme, then the default.
func (m Model) ThemeName() string {
	if m.themeName != "" {
		return m.themeName
	}
	if m.doc != nil && m.doc.Theme != "" {
		return m.doc.Theme
	}
	return components.ThemeDefault
}

func (m *Model) toggleTheme() {
	if m.ThemeName() == components.ThemeDark {
		m.themeName = components.ThemeDefault
	} else {
		m.themeName = components.ThemeDark
	}
}

// content renders the current layout for the viewport.
func (m *Model) content() string {
	if m.err != nil {
		return errorStyle.Render(m.err.Error())
	}
	if m.doc == nil {
		return mutedStyle.Render("loading " + m.path)
	}

	ctx, err := layout.Context(m.doc, m.ThemeName(), m.viewport.Width)
	if err != nil {
		return errorStyle.Render(err.Error())
	}
	out, err := m.builder.Render(m.doc, ctx)
	if err != nil {
		return errorStyle.Render(err.Error())
	}
	return out
}

// viewportHeight is the window height left after the header and the help
// footer, which grows when the full help is shown.
func (m Model) viewportHeight() int {
	return max(m.height-headerHeight-lipgloss.Height(m.help.View(m.keys)), 1)
}

func (m *Model) refresh() {
	if !m.ready {
		return
	}
	m.viewport.SetContent(m.content())
}
