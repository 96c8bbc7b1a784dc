package components

import (
	"github.com/charmbracelet/lipgloss"
)

// Header is a heading with an optional subtitle line. Level 1 takes the
// title typography, level 2 the emphasis typography and deeper levels the
// base typography. Own appliers and appended styles override the preset.
type Header struct {
	BaseComponent
	title    string
	subtitle string
	level    int
}

// NewHeader creates a level 1 header with the given title.
func NewHeader(title string) *Header {
	return &Header{
		BaseComponent: NewBaseComponent(),
		title:         title,
		level:         1,
	}
}

// View renders the header.
func (h *Header) View() string {
	return h.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the header with the given theme context.
func (h *Header) ViewWithContext(ctx RenderContext) string {
	style := h.ComputeStyle(ctx.Theme)
	if h.subtitle == "" {
		return style.Render(h.title)
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		style.Render(h.title),
		style.Bold(false).Faint(true).Render(h.subtitle),
	)
}

// ComputeStyle fills the header's style from its level preset before the
// appended styles run.
func (h *Header) ComputeStyle(theme Theme) lipgloss.Style {
	style := h.ownStyle(theme).Inherit(TypographyStyle(theme, headingTypography(h.level)))
	return h.decorate(style, theme)
}

func headingTypography(level int) TypographyVariant {
	switch level {
	case 1:
		return TypographyVariantTitle
	case 2:
		return TypographyVariantEmphasis
	default:
		return TypographyVariantBase
	}
}

// Restyle returns a copy of the header with styles appended.
func (h *Header) Restyle(styles ...StyleFunc) Element {
	clone := *h
	clone.BaseComponent = h.BaseComponent.extended(styles)
	return &clone
}

// WithStyle sets the header style.
func (h *Header) WithStyle(style lipgloss.Style) *Header {
	h.SetStyle(style)
	return h
}

// WithAppliers sets theme-based style modifiers.
func (h *Header) WithAppliers(appliers ...StyleFunc) *Header {
	h.SetAppliers(appliers...)
	return h
}

// WithSubtitle adds a subtitle line below the title.
func (h *Header) WithSubtitle(subtitle string) *Header {
	h.subtitle = subtitle
	return h
}

// WithLevel sets the header level, clamped to 1-6 like HTML h1-h6.
func (h *Header) WithLevel(level int) *Header {
	h.level = min(max(level, 1), 6)
	return h
}

// Title returns the header title.
func (h *Header) Title() string {
	return h.title
}

// Subtitle returns the header subtitle.
func (h *Header) Subtitle() string {
	return h.subtitle
}

// Level returns the header level.
func (h *Header) Level() int {
	return h.level
}
