package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const defaultDividerWidth = 40

// Divider renders a horizontal separator line.
type Divider struct {
	BaseComponent
	char  string
	width int
}

// NewDivider creates a divider drawn with "─". A zero width follows the
// render constraints.
func NewDivider() *Divider {
	return &Divider{
		BaseComponent: NewBaseComponent(),
		char:          "─",
	}
}

// View renders the divider.
func (d *Divider) View() string {
	return d.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the divider, sizing it from the constraints when
// no explicit width is set.
func (d *Divider) ViewWithContext(ctx RenderContext) string {
	width := d.width
	if width <= 0 && ctx.Constraints.MaxWidth > 0 {
		width = ctx.Constraints.MaxWidth
	}
	if width <= 0 {
		width = defaultDividerWidth
	}
	return d.ComputeStyle(ctx.Theme).Render(strings.Repeat(d.char, width))
}

// Restyle returns a copy of the divider with styles appended.
func (d *Divider) Restyle(styles ...StyleFunc) Element {
	clone := *d
	clone.BaseComponent = d.BaseComponent.extended(styles)
	return &clone
}

// WithChar sets the character used for the divider.
func (d *Divider) WithChar(char string) *Divider {
	if char != "" {
		d.char = char
	}
	return d
}

// WithWidth sets an explicit width.
func (d *Divider) WithWidth(width int) *Divider {
	d.width = width
	return d
}

// WithStyle sets the divider style.
func (d *Divider) WithStyle(style lipgloss.Style) *Divider {
	d.SetStyle(style)
	return d
}

// WithAppliers sets theme-based style modifiers.
func (d *Divider) WithAppliers(appliers ...StyleFunc) *Divider {
	d.SetAppliers(appliers...)
	return d
}

// Width returns the explicit divider width.
func (d *Divider) Width() int {
	return d.width
}
