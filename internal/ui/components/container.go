package components

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/selectorui/internal/ui"
)

// Container is a box around a stack of children with border, padding,
// margin and styling.
type Container struct {
	BaseComponent
	layout      *Stack
	border      lipgloss.Border
	borderColor string
	padding     Spacing
	margin      Spacing
}

// NewContainer creates a container laying its children out vertically.
func NewContainer(children ...ui.Renderable) *Container {
	return &Container{
		BaseComponent: NewBaseComponent(),
		layout:        VStack(children...),
	}
}

// View renders the container and its children.
func (c *Container) View() string {
	return c.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the container with layout context. Borders and
// spacing render even without children.
func (c *Container) ViewWithContext(ctx RenderContext) string {
	var content string
	if len(c.layout.Children()) > 0 {
		content = c.layout.ViewWithContext(ctx)
	}
	return c.frameStyle(ctx.Theme).Render(content)
}

func (c *Container) frameStyle(theme Theme) lipgloss.Style {
	style := c.ownStyle(theme)

	if c.border.Top != "" {
		style = style.BorderStyle(c.border)
		if c.borderColor != "" {
			style = style.BorderForeground(lipgloss.Color(c.borderColor))
		}
	}
	if !c.padding.IsZero() {
		style = style.Padding(c.padding.Top, c.padding.Right, c.padding.Bottom, c.padding.Left)
	}
	if !c.margin.IsZero() {
		style = style.Margin(c.margin.Top, c.margin.Right, c.margin.Bottom, c.margin.Left)
	}

	return c.decorate(style, theme)
}

// Restyle returns a copy of the container with styles appended.
func (c *Container) Restyle(styles ...StyleFunc) Element {
	clone := c.clone()
	clone.BaseComponent = c.BaseComponent.extended(styles)
	return clone
}

// clone copies the container and its layout so the copy can take new
// children without touching c.
func (c *Container) clone() *Container {
	clone := *c
	layout := *c.layout
	layout.children = append([]ui.Renderable(nil), c.layout.children...)
	clone.layout = &layout
	return &clone
}

// withChildren returns a copy of c holding children instead of its own.
func (c *Container) withChildren(children []ui.Renderable) *Container {
	clone := c.clone()
	clone.layout.children = children
	return clone
}

// WithBorder sets the border style.
func (c *Container) WithBorder(border lipgloss.Border) *Container {
	c.border = border
	return c
}

// WithBorderColor sets the border colour.
func (c *Container) WithBorderColor(color string) *Container {
	c.borderColor = color
	return c
}

// WithPadding sets the padding.
func (c *Container) WithPadding(padding Spacing) *Container {
	c.padding = padding
	return c
}

// WithMargin sets the margin.
func (c *Container) WithMargin(margin Spacing) *Container {
	c.margin = margin
	return c
}

// WithStyle sets the container style.
func (c *Container) WithStyle(style lipgloss.Style) *Container {
	c.SetStyle(style)
	return c
}

// WithAppliers sets theme-based style modifiers.
func (c *Container) WithAppliers(appliers ...StyleFunc) *Container {
	c.SetAppliers(appliers...)
	return c
}

// WithDirection sets the layout direction.
func (c *Container) WithDirection(dir Direction) *Container {
	c.layout.WithDirection(dir)
	return c
}

// WithGap sets the gap between children.
func (c *Container) WithGap(gap int) *Container {
	c.layout.WithGap(gap)
	return c
}

// WithCrossAlign sets the cross-axis alignment.
func (c *Container) WithCrossAlign(align CrossAxisAlignment) *Container {
	c.layout.WithCrossAlign(align)
	return c
}

// Add appends children to the container.
func (c *Container) Add(children ...ui.Renderable) *Container {
	c.layout.Add(children...)
	return c
}

// Children returns the child renderables.
func (c *Container) Children() []ui.Renderable {
	return c.layout.Children()
}

// Padding returns the container padding.
func (c *Container) Padding() Spacing {
	return c.padding
}

// Border returns the container border.
func (c *Container) Border() lipgloss.Border {
	return c.border
}
