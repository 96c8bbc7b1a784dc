package components

import (
	"github.com/charmbracelet/lipgloss"
)

// Badge is a small status indicator.
type Badge struct {
	BaseComponent
	text    string
	variant BadgeVariant
}

// BadgeVariant specifies the visual style of a badge.
type BadgeVariant int

const (
	BadgeVariantDefault BadgeVariant = iota
	BadgeVariantPrimary
	BadgeVariantSuccess
	BadgeVariantWarning
	BadgeVariantError
	BadgeVariantInfo
)

// NewBadge creates a default badge with the given text.
func NewBadge(text string) *Badge {
	return &Badge{
		BaseComponent: NewBaseComponent(),
		text:          text,
		variant:       BadgeVariantDefault,
	}
}

// View renders the badge.
func (b *Badge) View() string {
	return b.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the badge with the given theme context.
func (b *Badge) ViewWithContext(ctx RenderContext) string {
	return b.ComputeStyle(ctx.Theme).Render(b.text)
}

// ComputeStyle layers the variant strategy between the badge's own style and
// the appended child styles.
func (b *Badge) ComputeStyle(theme Theme) lipgloss.Style {
	style := b.ownStyle(theme)
	if strategy := theme.Variants.Get(b.variant); strategy != nil {
		style = strategy.Apply(style, theme)
	}
	return b.decorate(style, theme)
}

// Restyle returns a copy of the badge with styles appended.
func (b *Badge) Restyle(styles ...StyleFunc) Element {
	clone := *b
	clone.BaseComponent = b.BaseComponent.extended(styles)
	return &clone
}

// WithVariant sets the badge variant.
func (b *Badge) WithVariant(variant BadgeVariant) *Badge {
	b.variant = variant
	return b
}

// WithAppliers adds theme-based style modifiers.
func (b *Badge) WithAppliers(appliers ...StyleFunc) *Badge {
	b.AddAppliers(appliers...)
	return b
}

// Text returns the badge text.
func (b *Badge) Text() string {
	return b.text
}

// Variant returns the badge variant.
func (b *Badge) Variant() BadgeVariant {
	return b.variant
}

// PrimaryBadge creates a primary badge.
func PrimaryBadge(text string) *Badge {
	return NewBadge(text).WithVariant(BadgeVariantPrimary)
}

// SuccessBadge creates a success badge.
func SuccessBadge(text string) *Badge {
	return NewBadge(text).WithVariant(BadgeVariantSuccess)
}

// WarningBadge creates a warning badge.
func WarningBadge(text string) *Badge {
	return NewBadge(text).WithVariant(BadgeVariantWarning)
}

// ErrorBadge creates an error badge.
func ErrorBadge(text string) *Badge {
	return NewBadge(text).WithVariant(BadgeVariantError)
}
