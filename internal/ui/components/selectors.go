package components

// Predicate reports whether a child at index among length valid children matches.
type Predicate func(index, length int) bool

// Select turns a predicate into a child style factory: the returned function
// wraps a style so that it only applies to matching children.
//
// Example:
//
//	evenRows := Select(func(i, _ int) bool { return i%2 == 0 })
//	sel := NewSelector(rows...).WithChildrenStyle(evenRows(Background(PaletteSurface)))
func Select(predicate Predicate) func(StyleFunc) ChildStyle {
	return func(style StyleFunc) ChildStyle {
		return Dynamic(func(index, length int) StyleFunc {
			if predicate(index, length) {
				return style
			}
			return nil
		})
	}
}

var (
	FirstChild    = Select(func(index, _ int) bool { return index == 0 })
	NotFirstChild = Select(func(index, _ int) bool { return index != 0 })
	LastChild     = Select(func(index, length int) bool { return index == length-1 })
	NotLastChild  = Select(func(index, length int) bool { return index != length-1 })
	Even          = Select(func(index, _ int) bool { return index%2 == 0 })
	Odd           = Select(func(index, _ int) bool { return index%2 != 0 })
	OnlyChild     = Select(func(_, length int) bool { return length == 1 })
)

// NthChild applies style to the child at index n (zero-based).
func NthChild(n int, style StyleFunc) ChildStyle {
	return Select(func(index, _ int) bool { return index == n })(style)
}

// NotNthChild applies style to every child except the one at index n.
func NotNthChild(n int, style StyleFunc) ChildStyle {
	return Select(func(index, _ int) bool { return index != n })(style)
}

// NthLastChild applies style to the child n positions from the end;
// NthLastChild(0, s) targets the last child.
func NthLastChild(n int, style StyleFunc) ChildStyle {
	return Select(func(index, length int) bool { return index == length-n-1 })(style)
}

// NotNthLastChild applies style to every child except the one n positions from the end.
func NotNthLastChild(n int, style StyleFunc) ChildStyle {
	return Select(func(index, length int) bool { return index != length-n-1 })(style)
}

// NthOfEvery matches indexes offset, offset+step, offset+2*step and so on,
// like the CSS an+b form. A step of zero or less only matches offset.
func NthOfEvery(step, offset int, style StyleFunc) ChildStyle {
	return Select(func(index, _ int) bool {
		if step <= 0 {
			return index == offset
		}
		return index >= offset && (index-offset)%step == 0
	})(style)
}
