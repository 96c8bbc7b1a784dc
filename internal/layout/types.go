// Package layout loads YAML layout documents and builds component trees
// from them.
package layout

// Node kinds.
const (
	KindText     = "text"
	KindBadge    = "badge"
	KindDivider  = "divider"
	KindStack    = "stack"
	KindSelector = "selector"
	KindRaw      = "raw"
	KindHeader   = "header"
	KindSpacer   = "spacer"
	KindCard     = "card"
	KindPanel    = "panel"
	KindAlert    = "alert"
	KindButton   = "button"
)

// Selector rule kinds.
const (
	SelectAlways     = "always"
	SelectFirst      = "first"
	SelectNotFirst   = "not_first"
	SelectLast       = "last"
	SelectNotLast    = "not_last"
	SelectEven       = "even"
	SelectOdd        = "odd"
	SelectOnly       = "only"
	SelectNth        = "nth"
	SelectNotNth     = "not_nth"
	SelectNthLast    = "nth_last"
	SelectNotNthLast = "not_nth_last"
	SelectEvery      = "every"
)

// Document is a complete layout file.
type Document struct {
	Version     string `yaml:"version" validate:"required,semver"`
	Name        string `yaml:"name" validate:"required,min=1,max=100"`
	Description string `yaml:"description,omitempty"`
	Theme       string `yaml:"theme,omitempty" validate:"omitempty,theme_name"`
	Width       int    `yaml:"width,omitempty" validate:"omitempty,min=1,max=1000"`
	Root        Node   `yaml:"root"`
}

// Node describes one component in the tree.
type Node struct {
	Kind string `yaml:"kind" validate:"required,node_kind"`

	// text, badge, header, alert, button
	Text    string `yaml:"text,omitempty"`
	Variant string `yaml:"variant,omitempty" validate:"omitempty,oneof=default primary secondary success warning error info muted"`

	// button
	Active   bool `yaml:"active,omitempty"`
	Disabled bool `yaml:"disabled,omitempty"`

	// header
	Subtitle string `yaml:"subtitle,omitempty"`
	Level    int    `yaml:"level,omitempty" validate:"min=0,max=6"`

	// card, panel, alert
	Title  string `yaml:"title,omitempty"`
	Icon   string `yaml:"icon,omitempty" validate:"omitempty,max=4"`
	Footer *Node  `yaml:"footer,omitempty"`

	// divider, spacer
	Char   string `yaml:"char,omitempty" validate:"omitempty,max=4"`
	Width  int    `yaml:"width,omitempty" validate:"min=0,max=1000"`
	Height int    `yaml:"height,omitempty" validate:"min=0,max=100"`

	// stack, selector
	Direction  string `yaml:"direction,omitempty" validate:"omitempty,oneof=vertical horizontal"`
	Gap        int    `yaml:"gap,omitempty" validate:"min=0,max=20"`
	CrossAlign string `yaml:"cross_align,omitempty" validate:"omitempty,oneof=start center end"`

	// selector frame; card and panel take border and border_color too
	Border      string `yaml:"border,omitempty" validate:"omitempty,oneof=none normal rounded thick double"`
	BorderColor string `yaml:"border_color,omitempty" validate:"omitempty,term_color"`
	Padding     []int  `yaml:"padding,omitempty" validate:"omitempty,spacing"`
	Margin      []int  `yaml:"margin,omitempty" validate:"omitempty,spacing"`

	Style         *StyleDoc `yaml:"style,omitempty"`
	ChildrenStyle []Rule    `yaml:"children_style,omitempty" validate:"omitempty,dive"`
	ChildrenCSS   string    `yaml:"children_css,omitempty"`
	Children      []Node    `yaml:"children,omitempty" validate:"omitempty,dive"`
}

// Rule is one entry of a selector's children_style. Exactly one of Select
// and Group is set.
type Rule struct {
	Select string    `yaml:"select,omitempty" validate:"omitempty,selector_kind"`
	N      *int      `yaml:"n,omitempty"`
	Step   int       `yaml:"step,omitempty"`
	Offset int       `yaml:"offset,omitempty" validate:"min=0"`
	Style  *StyleDoc `yaml:"style,omitempty"`
	Group  []Rule    `yaml:"group,omitempty" validate:"omitempty,dive"`
}

// StyleDoc is the YAML form of components.StyleProps.
type StyleDoc struct {
	Foreground       string `yaml:"foreground,omitempty" validate:"omitempty,term_color"`
	Background       string `yaml:"background,omitempty" validate:"omitempty,term_color"`
	BorderForeground string `yaml:"border_foreground,omitempty" validate:"omitempty,term_color"`

	Bold          *bool `yaml:"bold,omitempty"`
	Italic        *bool `yaml:"italic,omitempty"`
	Faint         *bool `yaml:"faint,omitempty"`
	Underline     *bool `yaml:"underline,omitempty"`
	Strikethrough *bool `yaml:"strikethrough,omitempty"`
	Reverse       *bool `yaml:"reverse,omitempty"`

	Padding []int  `yaml:"padding,omitempty" validate:"omitempty,spacing"`
	Margin  []int  `yaml:"margin,omitempty" validate:"omitempty,spacing"`
	Border  string `yaml:"border,omitempty" validate:"omitempty,oneof=none normal rounded thick double"`
	Width   int    `yaml:"width,omitempty" validate:"omitempty,min=1,max=1000"`
	Align   string `yaml:"align,omitempty" validate:"omitempty,oneof=left center right"`
}

// requiresN reports whether the selector kind needs an n argument.
func requiresN(kind string) bool {
	switch kind {
	case SelectNth, SelectNotNth, SelectNthLast, SelectNotNthLast:
		return true
	default:
		return false
	}
}

// hasChildren reports whether nodes of kind can hold children.
func hasChildren(kind string) bool {
	switch kind {
	case KindStack, KindSelector, KindCard, KindPanel:
		return true
	default:
		return false
	}
}

// hasFrame reports whether nodes of kind draw a configurable border.
func hasFrame(kind string) bool {
	return kind == KindSelector || kind == KindCard || kind == KindPanel
}
