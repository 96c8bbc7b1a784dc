package components

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/selectorui/internal/ui"
)

// Selector is a container that styles its children by position. Child styles
// are resolved on every render against the valid children only, so plain text
// and nil entries neither receive styles nor count toward index and length.
//
// Example:
//
//	list := NewSelector(rows...).WithChildrenStyle(
//		FirstChild(Bold(true)),
//		Odd(Faint(true)),
//		LastChild(Foreground(PaletteDanger)),
//	)
type Selector struct {
	frame         *Container
	children      []ui.Renderable
	childrenStyle ChildStyle
}

// NewSelector creates a selector over children with no children style.
func NewSelector(children ...ui.Renderable) *Selector {
	return &Selector{
		frame:    NewContainer(),
		children: children,
	}
}

// Resolve filters children to the valid elements and restyles each with the
// flattened style evaluated at its position. Inputs are not modified.
func Resolve(children []ui.Renderable, root ChildStyle) []Element {
	valid := ValidChildren(children)
	styles := Flatten(root)
	length := len(valid)

	resolved := make([]Element, length)
	for index, child := range valid {
		applied := make([]StyleFunc, len(styles))
		for i, style := range styles {
			applied[i] = style.Resolve(index, length)
		}
		resolved[index] = child.Restyle(applied...)
	}
	return resolved
}

// View renders the selector with the default context.
func (s *Selector) View() string {
	return s.ViewWithContext(DefaultContext())
}

// ViewWithContext resolves the children and renders them inside the frame.
func (s *Selector) ViewWithContext(ctx RenderContext) string {
	resolved := s.ResolvedChildren()
	children := make([]ui.Renderable, len(resolved))
	for i, child := range resolved {
		children[i] = child
	}
	return s.frame.withChildren(children).ViewWithContext(ctx)
}

// ResolvedChildren returns the restyled valid children for the current
// children style.
func (s *Selector) ResolvedChildren() []Element {
	return Resolve(s.children, s.childrenStyle)
}

// Restyle returns a copy of the selector whose frame has styles appended.
func (s *Selector) Restyle(styles ...StyleFunc) Element {
	clone := *s
	clone.frame = s.frame.Restyle(styles...).(*Container)
	clone.children = append([]ui.Renderable(nil), s.children...)
	return &clone
}

// WithChildrenStyle sets the children style. A single argument is used as
// is; several are grouped in order.
func (s *Selector) WithChildrenStyle(styles ...ChildStyle) *Selector {
	switch len(styles) {
	case 0:
		s.childrenStyle = ChildStyle{}
	case 1:
		s.childrenStyle = styles[0]
	default:
		s.childrenStyle = Group(styles...)
	}
	return s
}

// ChildrenStyle returns the current children style.
func (s *Selector) ChildrenStyle() ChildStyle {
	return s.childrenStyle
}

// Add appends children.
func (s *Selector) Add(children ...ui.Renderable) *Selector {
	s.children = append(s.children, children...)
	return s
}

// Children returns the children as given, valid or not.
func (s *Selector) Children() []ui.Renderable {
	return s.children
}

// Frame returns the container the children render in.
func (s *Selector) Frame() *Container {
	return s.frame
}

// The setters below forward to the frame.

func (s *Selector) WithBorder(border lipgloss.Border) *Selector {
	s.frame.WithBorder(border)
	return s
}

func (s *Selector) WithBorderColor(color string) *Selector {
	s.frame.WithBorderColor(color)
	return s
}

func (s *Selector) WithPadding(padding Spacing) *Selector {
	s.frame.WithPadding(padding)
	return s
}

func (s *Selector) WithMargin(margin Spacing) *Selector {
	s.frame.WithMargin(margin)
	return s
}

func (s *Selector) WithDirection(dir Direction) *Selector {
	s.frame.WithDirection(dir)
	return s
}

func (s *Selector) WithGap(gap int) *Selector {
	s.frame.WithGap(gap)
	return s
}

func (s *Selector) WithCrossAlign(align CrossAxisAlignment) *Selector {
	s.frame.WithCrossAlign(align)
	return s
}

func (s *Selector) WithStyle(style lipgloss.Style) *Selector {
	s.frame.WithStyle(style)
	return s
}

func (s *Selector) WithAppliers(appliers ...StyleFunc) *Selector {
	s.frame.WithAppliers(appliers...)
	return s
}
