package components

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/selectorui/internal/ui"
)

// section is a framed block of content with an optional header and footer,
// each separated from the body by a divider. Card and Panel are sections
// with different frames.
type section struct {
	frame    *Container
	header   ui.Renderable
	children []ui.Renderable
	footer   ui.Renderable
}

// compose lays out header, body and footer for rendering.
func (s section) compose() []ui.Renderable {
	parts := make([]ui.Renderable, 0, len(s.children)+4)
	if s.header != nil {
		parts = append(parts, s.header, NewDivider().WithAppliers(Faint(true)))
	}
	parts = append(parts, s.children...)
	if s.footer != nil {
		parts = append(parts, NewDivider().WithAppliers(Faint(true)), s.footer)
	}
	return parts
}

func (s section) view(ctx RenderContext) string {
	return s.frame.withChildren(s.compose()).ViewWithContext(ctx)
}

func (s section) restyled(styles []StyleFunc) section {
	s.frame = s.frame.Restyle(styles...).(*Container)
	s.children = append([]ui.Renderable(nil), s.children...)
	return s
}

// Card is a rounded, padded box for a self-contained piece of content.
type Card struct {
	section
}

// NewCard creates a card around children.
func NewCard(children ...ui.Renderable) *Card {
	return &Card{section: section{
		frame: NewContainer().
			WithBorder(lipgloss.RoundedBorder()).
			WithPadding(SymmetricSpacing(0, 1)),
		children: children,
	}}
}

// View renders the card.
func (c *Card) View() string {
	return c.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the card with the given context.
func (c *Card) ViewWithContext(ctx RenderContext) string {
	return c.view(ctx)
}

// Restyle returns a copy of the card whose frame has styles appended.
func (c *Card) Restyle(styles ...StyleFunc) Element {
	return &Card{section: c.restyled(styles)}
}

// WithTitle puts a title header above the body.
func (c *Card) WithTitle(title string) *Card {
	c.header = NewHeader(title)
	return c
}

// WithFooter puts footer below the body.
func (c *Card) WithFooter(footer ui.Renderable) *Card {
	c.footer = footer
	return c
}

// WithBorder replaces the rounded border.
func (c *Card) WithBorder(border lipgloss.Border) *Card {
	c.frame.WithBorder(border)
	return c
}

// WithBorderColor sets the border colour.
func (c *Card) WithBorderColor(color string) *Card {
	c.frame.WithBorderColor(color)
	return c
}

// Add appends body children.
func (c *Card) Add(children ...ui.Renderable) *Card {
	c.children = append(c.children, children...)
	return c
}

// Children returns the body children.
func (c *Card) Children() []ui.Renderable {
	return c.children
}

// AsContainer returns the frame for advanced customization.
func (c *Card) AsContainer() *Container {
	return c.frame
}
