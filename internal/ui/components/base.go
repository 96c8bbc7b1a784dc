package components

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/selectorui/internal/ui"
)

// StyleFunc transforms a lipgloss style using data from a Theme.
// A nil StyleFunc is the absent style and leaves its input untouched.
type StyleFunc func(lipgloss.Style, Theme) lipgloss.Style

// StyleStrategy defines how styling is applied to a component.
type StyleStrategy interface {
	Apply(base lipgloss.Style, theme Theme) lipgloss.Style
}

// CompositeStrategy applies StyleFuncs in sequence, skipping nil entries.
type CompositeStrategy struct {
	funcs []StyleFunc
}

// Apply applies all style functions in order. Later functions override
// properties set by earlier ones.
func (c CompositeStrategy) Apply(base lipgloss.Style, theme Theme) lipgloss.Style {
	for _, fn := range c.funcs {
		if fn == nil {
			continue
		}
		base = fn(base, theme)
	}
	return base
}

// Len reports how many style functions the strategy holds, nil entries included.
func (c CompositeStrategy) Len() int {
	return len(c.funcs)
}

// NewCompositeStrategy creates a strategy from multiple style functions.
func NewCompositeStrategy(funcs ...StyleFunc) StyleStrategy {
	return CompositeStrategy{funcs: funcs}
}

// BaseComponent carries the style state every component shares: a raw lipgloss
// style, the component's own strategy, and the styles appended by an enclosing
// container through Restyle. Embed it in component structs.
type BaseComponent struct {
	style       lipgloss.Style
	strategy    StyleStrategy
	childStyles []StyleFunc
}

// NewBaseComponent creates a base component with an empty style.
func NewBaseComponent() BaseComponent {
	return BaseComponent{
		style:    lipgloss.NewStyle(),
		strategy: CompositeStrategy{},
	}
}

// ComputeStyle returns the component's own style followed by any appended
// child styles.
func (b *BaseComponent) ComputeStyle(theme Theme) lipgloss.Style {
	return b.decorate(b.ownStyle(theme), theme)
}

// ownStyle is the style before container-appended styles are applied.
func (b *BaseComponent) ownStyle(theme Theme) lipgloss.Style {
	if b.strategy == nil {
		return b.style
	}
	return b.strategy.Apply(b.style, theme)
}

// decorate applies the appended child styles on top of style. Components that
// layer extra styling (variants) call it last so appended styles win.
func (b *BaseComponent) decorate(style lipgloss.Style, theme Theme) lipgloss.Style {
	for _, fn := range b.childStyles {
		if fn == nil {
			continue
		}
		style = fn(style, theme)
	}
	return style
}

// ChildStyles returns a copy of the styles appended through Restyle.
func (b *BaseComponent) ChildStyles() []StyleFunc {
	out := make([]StyleFunc, len(b.childStyles))
	copy(out, b.childStyles)
	return out
}

// SetStyle replaces the raw lipgloss style.
func (b *BaseComponent) SetStyle(style lipgloss.Style) {
	b.style = style
}

// SetStrategy replaces the style strategy.
func (b *BaseComponent) SetStrategy(strategy StyleStrategy) {
	b.strategy = strategy
}

// SetAppliers sets the style strategy from style functions.
func (b *BaseComponent) SetAppliers(appliers ...StyleFunc) {
	b.strategy = NewCompositeStrategy(appliers...)
}

// AddAppliers appends style functions to the component's own strategy.
// A custom strategy is wrapped so that it still runs first.
func (b *BaseComponent) AddAppliers(appliers ...StyleFunc) {
	if existing, ok := b.strategy.(CompositeStrategy); ok {
		funcs := make([]StyleFunc, len(existing.funcs), len(existing.funcs)+len(appliers))
		copy(funcs, existing.funcs)
		b.strategy = CompositeStrategy{funcs: append(funcs, appliers...)}
		return
	}

	current := b.strategy
	wrapper := func(base lipgloss.Style, theme Theme) lipgloss.Style {
		if current != nil {
			base = current.Apply(base, theme)
		}
		return CompositeStrategy{funcs: appliers}.Apply(base, theme)
	}
	b.strategy = NewCompositeStrategy(wrapper)
}

// extended returns a copy of b whose child styles are followed by styles.
// The receiver's slice is never shared with the copy.
func (b BaseComponent) extended(styles []StyleFunc) BaseComponent {
	next := make([]StyleFunc, 0, len(b.childStyles)+len(styles))
	next = append(next, b.childStyles...)
	next = append(next, styles...)
	b.childStyles = next
	return b
}

// Spacing represents padding or margin around a component in CSS order:
// Top, Right, Bottom, Left.
type Spacing struct {
	Top    int
	Right  int
	Bottom int
	Left   int
}

// UniformSpacing creates spacing with the same value on all sides.
func UniformSpacing(size int) Spacing {
	return Spacing{Top: size, Right: size, Bottom: size, Left: size}
}

// SymmetricSpacing creates spacing with different vertical and horizontal values.
func SymmetricSpacing(vertical, horizontal int) Spacing {
	return Spacing{Top: vertical, Right: horizontal, Bottom: vertical, Left: horizontal}
}

// CustomSpacing creates spacing with explicit values (top, right, bottom, left).
func CustomSpacing(top, right, bottom, left int) Spacing {
	return Spacing{Top: top, Right: right, Bottom: bottom, Left: left}
}

// SpacingFromValues expands 1, 2 or 4 values using CSS shorthand rules.
// Any other count yields zero spacing.
func SpacingFromValues(values ...int) Spacing {
	switch len(values) {
	case 1:
		return UniformSpacing(values[0])
	case 2:
		return SymmetricSpacing(values[0], values[1])
	case 4:
		return CustomSpacing(values[0], values[1], values[2], values[3])
	default:
		return Spacing{}
	}
}

// IsZero returns true if all spacing values are zero.
func (s Spacing) IsZero() bool {
	return s.Top == 0 && s.Right == 0 && s.Bottom == 0 && s.Left == 0
}

// Horizontal returns the total horizontal spacing (left + right).
func (s Spacing) Horizontal() int {
	return s.Left + s.Right
}

// Constraints defines sizing constraints for layout calculations.
// A negative maximum means unlimited.
type Constraints struct {
	MinWidth  int
	MaxWidth  int
	MinHeight int
	MaxHeight int
}

// Unconstrained returns constraints with no limits.
func Unconstrained() Constraints {
	return Constraints{MaxWidth: -1, MaxHeight: -1}
}

// WithMaxWidth creates constraints with a maximum width.
func WithMaxWidth(maxWidth int) Constraints {
	return Constraints{MaxWidth: maxWidth, MaxHeight: -1}
}

// HasWidth returns true if there's a width constraint.
func (c Constraints) HasWidth() bool {
	return c.MinWidth > 0 || c.MaxWidth >= 0
}

// RenderContext carries the theme and layout constraints through a render pass.
type RenderContext struct {
	Theme       Theme
	Constraints Constraints
}

// DefaultContext returns a render context with the default theme and no constraints.
func DefaultContext() RenderContext {
	return RenderContext{
		Theme:       DefaultTheme(),
		Constraints: Unconstrained(),
	}
}

// WithTheme returns a new context with the specified theme.
func (r RenderContext) WithTheme(theme Theme) RenderContext {
	r.Theme = theme
	return r
}

// WithConstraints returns a new context with the given constraints.
func (r RenderContext) WithConstraints(c Constraints) RenderContext {
	r.Constraints = c
	return r
}

// ContextualRenderable is a component that can receive render context.
type ContextualRenderable interface {
	ui.Renderable
	ViewWithContext(ctx RenderContext) string
}

// renderChild renders child with ctx when it accepts context.
func renderChild(child ui.Renderable, ctx RenderContext) string {
	if contextual, ok := child.(ContextualRenderable); ok {
		return contextual.ViewWithContext(ctx)
	}
	return child.View()
}

// CrossAxisAlignment specifies how children are aligned along the cross axis.
type CrossAxisAlignment int

const (
	CrossStart CrossAxisAlignment = iota
	CrossCenter
	CrossEnd
)

func (c CrossAxisAlignment) toLipglossPosition() lipgloss.Position {
	switch c {
	case CrossCenter:
		return lipgloss.Center
	case CrossEnd:
		return lipgloss.Right
	default:
		return lipgloss.Left
	}
}
