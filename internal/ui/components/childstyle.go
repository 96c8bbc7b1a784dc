package components

// Resolver maps a child's position among its valid siblings to a style.
// A nil result applies nothing.
type Resolver func(index, length int) StyleFunc

type childStyleKind int

const (
	childStyleStatic childStyleKind = iota
	childStyleDynamic
	childStyleGroup
)

// ChildStyle is the style tree for the children of a Selector. It is
// either a static style, a position-dependent Resolver, or an ordered group of
// further ChildStyles nested to any depth. The zero value is a static nil
// style, which applies nothing.
type ChildStyle struct {
	kind     childStyleKind
	style    StyleFunc
	resolver Resolver
	group    []ChildStyle
}

// Static wraps a style applied to every child.
func Static(style StyleFunc) ChildStyle {
	return ChildStyle{kind: childStyleStatic, style: style}
}

// Dynamic wraps a resolver evaluated per child.
func Dynamic(resolver Resolver) ChildStyle {
	return ChildStyle{kind: childStyleDynamic, resolver: resolver}
}

// Group nests several child styles. Order is preserved when flattening.
func Group(styles ...ChildStyle) ChildStyle {
	group := make([]ChildStyle, len(styles))
	copy(group, styles)
	return ChildStyle{kind: childStyleGroup, group: group}
}

// Props is a shorthand for Static(props.Func()).
func Props(props StyleProps) ChildStyle {
	return Static(props.Func())
}

// IsGroup reports whether c is a Group.
func (c ChildStyle) IsGroup() bool {
	return c.kind == childStyleGroup
}

// Resolve evaluates a non-group child style for the child at index among
// length valid children. Groups resolve to nil; flatten them first.
func (c ChildStyle) Resolve(index, length int) StyleFunc {
	switch c.kind {
	case childStyleDynamic:
		if c.resolver == nil {
			return nil
		}
		return c.resolver(index, length)
	case childStyleStatic:
		return c.style
	default:
		return nil
	}
}

// Flatten returns the leaves of root in depth-first order. A non-group root is
// returned as a single-element slice. Empty groups contribute nothing.
func Flatten(root ChildStyle) []ChildStyle {
	if !root.IsGroup() {
		return []ChildStyle{root}
	}

	leaves := make([]ChildStyle, 0, len(root.group))
	// Explicit stack of pending siblings, top of stack is the next to visit.
	stack := [][]ChildStyle{root.group}
	for len(stack) > 0 {
		top := stack[len(stack)-1]
		if len(top) == 0 {
			stack = stack[:len(stack)-1]
			continue
		}
		next := top[0]
		stack[len(stack)-1] = top[1:]

		if next.IsGroup() {
			stack = append(stack, next.group)
			continue
		}
		leaves = append(leaves, next)
	}
	return leaves
}
