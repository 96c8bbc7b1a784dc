package components

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/selectorui/internal/ui"
)

// Panel groups related content into a section. Unlike Card it has no
// border by default and sits on the surface colour.
type Panel struct {
	section
}

// NewPanel creates a panel around children.
func NewPanel(children ...ui.Renderable) *Panel {
	return &Panel{section: section{
		frame: NewContainer().
			WithPadding(SymmetricSpacing(0, 1)).
			WithAppliers(Background(PaletteSurface)),
		children: children,
	}}
}

// View renders the panel.
func (p *Panel) View() string {
	return p.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the panel with the given context.
func (p *Panel) ViewWithContext(ctx RenderContext) string {
	return p.view(ctx)
}

// Restyle returns a copy of the panel whose frame has styles appended.
func (p *Panel) Restyle(styles ...StyleFunc) Element {
	return &Panel{section: p.restyled(styles)}
}

// WithHeader replaces the header.
func (p *Panel) WithHeader(header ui.Renderable) *Panel {
	p.header = header
	return p
}

// WithTitle sets a title header.
func (p *Panel) WithTitle(title string) *Panel {
	return p.WithHeader(NewHeader(title))
}

// WithFooter replaces the footer.
func (p *Panel) WithFooter(footer ui.Renderable) *Panel {
	p.footer = footer
	return p
}

// WithBorder adds a border to the panel.
func (p *Panel) WithBorder(border lipgloss.Border) *Panel {
	p.frame.WithBorder(border)
	return p
}

// WithBorderColor sets the border colour.
func (p *Panel) WithBorderColor(color string) *Panel {
	p.frame.WithBorderColor(color)
	return p
}

// Add appends body children.
func (p *Panel) Add(children ...ui.Renderable) *Panel {
	p.children = append(p.children, children...)
	return p
}

// Children returns the body children.
func (p *Panel) Children() []ui.Renderable {
	return p.children
}

// AsContainer returns the frame for advanced customization.
func (p *Panel) AsContainer() *Container {
	return p.frame
}
