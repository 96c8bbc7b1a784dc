package components

import (
	"strings"
)

// Spacer renders a block of blank cells. Appended styles apply to the
// blank area, so a background colour paints it.
type Spacer struct {
	BaseComponent
	width  int
	height int
}

// NewSpacer creates a spacer with the given dimensions. Negative values
// count as zero.
func NewSpacer(width, height int) *Spacer {
	return &Spacer{
		BaseComponent: NewBaseComponent(),
		width:         max(width, 0),
		height:        max(height, 0),
	}
}

// HorizontalSpacer creates a one line spacer.
func HorizontalSpacer(width int) *Spacer {
	return NewSpacer(width, 1)
}

// VerticalSpacer creates a spacer of blank lines one cell wide.
func VerticalSpacer(height int) *Spacer {
	return NewSpacer(1, height)
}

// View renders the spacer.
func (s *Spacer) View() string {
	return s.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the spacer. A zero sized spacer renders nothing.
func (s *Spacer) ViewWithContext(ctx RenderContext) string {
	if s.width == 0 || s.height == 0 {
		return ""
	}

	line := strings.Repeat(" ", s.width)
	lines := make([]string, s.height)
	for i := range lines {
		lines[i] = line
	}
	return s.ComputeStyle(ctx.Theme).Render(strings.Join(lines, "\n"))
}

// Restyle returns a copy of the spacer with styles appended.
func (s *Spacer) Restyle(styles ...StyleFunc) Element {
	clone := *s
	clone.BaseComponent = s.BaseComponent.extended(styles)
	return &clone
}

// WithWidth sets the spacer width.
func (s *Spacer) WithWidth(width int) *Spacer {
	s.width = max(width, 0)
	return s
}

// WithHeight sets the spacer height.
func (s *Spacer) WithHeight(height int) *Spacer {
	s.height = max(height, 0)
	return s
}

// WithAppliers sets theme-based style modifiers.
func (s *Spacer) WithAppliers(appliers ...StyleFunc) *Spacer {
	s.SetAppliers(appliers...)
	return s
}

// Width returns the spacer width.
func (s *Spacer) Width() int {
	return s.width
}

// Height returns the spacer height.
func (s *Spacer) Height() int {
	return s.height
}
