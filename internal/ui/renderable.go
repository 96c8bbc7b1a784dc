// Package ui defines the rendering contract shared by every component.
package ui

// Renderable is anything that can render itself to a terminal string.
type Renderable interface {
	View() string
}

// Raw is plain text that renders verbatim. It carries no style and is not an
// element, so position-aware containers skip it when counting children.
type Raw string

// View returns the text unchanged.
func (r Raw) View() string {
	return string(r)
}

// RenderFunc adapts a function to the Renderable interface.
type RenderFunc func() string

// View calls f.
func (f RenderFunc) View() string {
	if f == nil {
		return ""
	}
	return f()
}
