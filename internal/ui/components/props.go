package components

import "github.com/charmbracelet/lipgloss"

// StyleProps is a plain style description: a set of optional style keys.
// Unset (nil) keys leave the underlying style alone, so applying several
// StyleProps in order merges them with the last one winning per key.
type StyleProps struct {
	Foreground       lipgloss.TerminalColor
	Background       lipgloss.TerminalColor
	BorderForeground lipgloss.TerminalColor

	Bold          *bool
	Italic        *bool
	Faint         *bool
	Underline     *bool
	Strikethrough *bool
	Reverse       *bool

	Padding *Spacing
	Margin  *Spacing
	Border  *lipgloss.Border // the zero Border removes any border
	Width   *int
	Align   *lipgloss.Position
}

// Ptr returns a pointer to v, for filling optional StyleProps keys.
func Ptr[T any](v T) *T {
	return &v
}

// IsZero reports whether no key is set.
func (p StyleProps) IsZero() bool {
	return p.Foreground == nil && p.Background == nil && p.BorderForeground == nil &&
		p.Bold == nil && p.Italic == nil && p.Faint == nil && p.Underline == nil &&
		p.Strikethrough == nil && p.Reverse == nil &&
		p.Padding == nil && p.Margin == nil && p.Border == nil && p.Width == nil && p.Align == nil
}

// Apply writes every set key onto base.
func (p StyleProps) Apply(base lipgloss.Style, _ Theme) lipgloss.Style {
	if p.Foreground != nil {
		base = base.Foreground(p.Foreground)
	}
	if p.Background != nil {
		base = base.Background(p.Background)
	}
	if p.Bold != nil {
		base = base.Bold(*p.Bold)
	}
	if p.Italic != nil {
		base = base.Italic(*p.Italic)
	}
	if p.Faint != nil {
		base = base.Faint(*p.Faint)
	}
	if p.Underline != nil {
		base = base.Underline(*p.Underline)
	}
	if p.Strikethrough != nil {
		base = base.Strikethrough(*p.Strikethrough)
	}
	if p.Reverse != nil {
		base = base.Reverse(*p.Reverse)
	}
	if p.Padding != nil {
		s := *p.Padding
		base = base.Padding(s.Top, s.Right, s.Bottom, s.Left)
	}
	if p.Margin != nil {
		s := *p.Margin
		base = base.Margin(s.Top, s.Right, s.Bottom, s.Left)
	}
	if p.Border != nil {
		if *p.Border == (lipgloss.Border{}) {
			base = base.UnsetBorderStyle().
				UnsetBorderTop().UnsetBorderRight().UnsetBorderBottom().UnsetBorderLeft()
		} else {
			base = base.Border(*p.Border)
		}
	}
	if p.BorderForeground != nil {
		base = base.BorderForeground(p.BorderForeground)
	}
	if p.Width != nil {
		base = base.Width(*p.Width)
	}
	if p.Align != nil {
		base = base.Align(*p.Align)
	}
	return base
}

// Func returns p as a StyleFunc. An empty StyleProps yields nil, the absent style.
func (p StyleProps) Func() StyleFunc {
	if p.IsZero() {
		return nil
	}
	return p.Apply
}

var _ StyleStrategy = StyleProps{}
