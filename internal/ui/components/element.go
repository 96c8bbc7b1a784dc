package components

import (
	"reflect"

	"github.com/alexisbeaulieu97/selectorui/internal/ui"
)

// Element is a styled component that can be re-rendered with extra styles.
// Restyle returns a new element whose style is the receiver's style followed
// by styles; the receiver is left untouched.
type Element interface {
	ContextualRenderable
	Restyle(styles ...StyleFunc) Element
}

var (
	_ Element = (*Text)(nil)
	_ Element = (*Badge)(nil)
	_ Element = (*Divider)(nil)
	_ Element = (*Stack)(nil)
	_ Element = (*Container)(nil)
	_ Element = (*Selector)(nil)
	_ Element = (*Header)(nil)
	_ Element = (*Spacer)(nil)
	_ Element = (*Card)(nil)
	_ Element = (*Panel)(nil)
	_ Element = (*Alert)(nil)
	_ Element = (*Button)(nil)
)

// ValidChildren returns the children that are elements, in their original
// order. Nil entries, typed nil pointers and plain renderables such as ui.Raw
// are dropped.
func ValidChildren(children []ui.Renderable) []Element {
	valid := make([]Element, 0, len(children))
	for _, child := range children {
		if isNil(child) {
			continue
		}
		if el, ok := child.(Element); ok {
			valid = append(valid, el)
		}
	}
	return valid
}

func isNil(child ui.Renderable) bool {
	if child == nil {
		return true
	}
	v := reflect.ValueOf(child)
	switch v.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Func, reflect.Map, reflect.Slice:
		return v.IsNil()
	default:
		return false
	}
}
