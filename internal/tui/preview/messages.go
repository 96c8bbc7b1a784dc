package preview

import "github.com/alexisbeaulieu97/selectorui/internal/layout"

// LayoutLoadedMsg carries a freshly parsed layout.
type LayoutLoadedMsg struct {
	Doc *layout.Document
}

// LayoutErrorMsg reports that the layout could not be loaded.
type LayoutErrorMsg struct {
	Err error
}
