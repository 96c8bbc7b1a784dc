package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/selectorui/internal/ui"
)

// Direction specifies the layout direction for a Stack.
type Direction int

const (
	DirectionVertical Direction = iota
	DirectionHorizontal
)

// Stack arranges children in a single direction.
type Stack struct {
	BaseComponent
	children    []ui.Renderable
	direction   Direction
	gap         int
	crossAlign  CrossAxisAlignment
	constraints Constraints
}

// NewStack creates a vertical stack.
func NewStack(children ...ui.Renderable) *Stack {
	return &Stack{
		BaseComponent: NewBaseComponent(),
		children:      children,
		direction:     DirectionVertical,
		crossAlign:    CrossStart,
		constraints:   Unconstrained(),
	}
}

// VStack creates a vertical stack.
func VStack(children ...ui.Renderable) *Stack {
	return NewStack(children...)
}

// HStack creates a horizontal stack.
func HStack(children ...ui.Renderable) *Stack {
	return NewStack(children...).WithDirection(DirectionHorizontal)
}

// View renders the stack and its children.
func (s *Stack) View() string {
	return s.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the stack with layout context.
func (s *Stack) ViewWithContext(ctx RenderContext) string {
	style := s.ComputeStyle(ctx.Theme)
	effective := s.mergeConstraints(ctx.Constraints)
	childCtx := ctx.WithConstraints(s.deriveChildConstraints(effective))

	views := make([]string, 0, len(s.children))
	for _, child := range s.children {
		if isNil(child) {
			continue
		}
		if view := renderChild(child, childCtx); view != "" {
			views = append(views, view)
		}
	}
	if len(views) == 0 {
		return style.Render("")
	}

	var content string
	if s.direction == DirectionHorizontal {
		content = s.join(views, strings.Repeat(" ", s.gap), lipgloss.JoinHorizontal)
	} else {
		content = s.join(views, strings.Repeat("\n", s.gap), lipgloss.JoinVertical)
	}

	if effective.MaxWidth > 0 {
		style = style.MaxWidth(effective.MaxWidth)
	}
	if effective.MaxHeight > 0 {
		style = style.MaxHeight(effective.MaxHeight)
	}
	return style.Render(content)
}

// Restyle returns a copy of the stack with styles appended. Children are
// shared, not copied; they are never mutated by rendering.
func (s *Stack) Restyle(styles ...StyleFunc) Element {
	clone := *s
	clone.BaseComponent = s.BaseComponent.extended(styles)
	clone.children = append([]ui.Renderable(nil), s.children...)
	return &clone
}

func (s *Stack) join(views []string, spacer string, joiner func(lipgloss.Position, ...string) string) string {
	pos := s.crossAlign.toLipglossPosition()
	if s.gap == 0 {
		return joiner(pos, views...)
	}
	parts := make([]string, 0, len(views)*2-1)
	for i, view := range views {
		if i > 0 {
			parts = append(parts, spacer)
		}
		parts = append(parts, view)
	}
	return joiner(pos, parts...)
}

// mergeConstraints keeps whichever of the stack and parent limits is tighter.
func (s *Stack) mergeConstraints(parent Constraints) Constraints {
	result := parent
	if s.constraints.MaxWidth > 0 && (result.MaxWidth <= 0 || s.constraints.MaxWidth < result.MaxWidth) {
		result.MaxWidth = s.constraints.MaxWidth
	}
	if s.constraints.MaxHeight > 0 && (result.MaxHeight <= 0 || s.constraints.MaxHeight < result.MaxHeight) {
		result.MaxHeight = s.constraints.MaxHeight
	}
	if s.constraints.MinWidth > result.MinWidth {
		result.MinWidth = s.constraints.MinWidth
	}
	if s.constraints.MinHeight > result.MinHeight {
		result.MinHeight = s.constraints.MinHeight
	}
	return result
}

// deriveChildConstraints splits the available width among horizontal children.
func (s *Stack) deriveChildConstraints(parent Constraints) Constraints {
	child := parent
	if s.direction == DirectionHorizontal && parent.MaxWidth > 0 && len(s.children) > 0 {
		available := parent.MaxWidth - s.gap*(len(s.children)-1)
		if available > 0 {
			child.MaxWidth = available / len(s.children)
		}
	}
	return child
}

// WithDirection sets the layout direction.
func (s *Stack) WithDirection(dir Direction) *Stack {
	s.direction = dir
	return s
}

// WithGap sets the spacing between children.
func (s *Stack) WithGap(gap int) *Stack {
	if gap < 0 {
		gap = 0
	}
	s.gap = gap
	return s
}

// WithCrossAlign sets the cross axis alignment.
func (s *Stack) WithCrossAlign(align CrossAxisAlignment) *Stack {
	s.crossAlign = align
	return s
}

// WithStyle sets the stack style.
func (s *Stack) WithStyle(style lipgloss.Style) *Stack {
	s.SetStyle(style)
	return s
}

// WithAppliers sets theme-based style modifiers.
func (s *Stack) WithAppliers(appliers ...StyleFunc) *Stack {
	s.SetAppliers(appliers...)
	return s
}

// WithConstraints sets sizing constraints.
func (s *Stack) WithConstraints(constraints Constraints) *Stack {
	s.constraints = constraints
	return s
}

// Add appends children to the stack.
func (s *Stack) Add(children ...ui.Renderable) *Stack {
	s.children = append(s.children, children...)
	return s
}

// Children returns the child renderables.
func (s *Stack) Children() []ui.Renderable {
	return s.children
}

// SetChildren replaces all children.
func (s *Stack) SetChildren(children []ui.Renderable) *Stack {
	s.children = children
	return s
}

// Direction returns the layout direction.
func (s *Stack) Direction() Direction {
	return s.direction
}
