// Package components provides a theme-aware component library for terminal
// applications built on lipgloss, with position-aware child styling.
//
// # Styling
//
// Every component embeds BaseComponent: a raw lipgloss style plus a chain of
// StyleFunc modifiers evaluated against the Theme in the RenderContext.
// StyleFuncs apply in order, so later ones override earlier ones.
//
//	text := NewText("ready").WithAppliers(Foreground(PaletteSuccess), Bold(true))
//
// StyleProps is the plain form, a set of optional keys:
//
//	props := StyleProps{Bold: Ptr(true), Foreground: lipgloss.Color("#ff0000")}
//
// # Selector
//
// Selector wraps children in a Container and appends ChildStyles to each
// element child. A ChildStyle is Static, Dynamic (a Resolver of index and
// length) or a Group nesting more ChildStyles. The predicate helpers build
// Dynamic styles from CSS-like rules:
//
//	NewSelector(a, b, c).WithChildrenStyle(
//		FirstChild(Bold(true)),
//		Group(Even(Faint(true)), NthLastChild(0, Foreground(PaletteDanger))),
//	)
//
// Every component is an Element. Card, Panel and Alert apply appended
// styles to their frame.
//
// Only Elements count as children. Nil entries and plain ui.Raw text render
// nothing and do not shift positions.
package components
