package components

import (
	"github.com/charmbracelet/lipgloss"
)

// ButtonVariant selects the palette slot a button is drawn in.
type ButtonVariant int

const (
	ButtonVariantPrimary ButtonVariant = iota
	ButtonVariantSecondary
	ButtonVariantSuccess
	ButtonVariantError
	ButtonVariantWarning
	ButtonVariantInfo
	ButtonVariantMuted
)

// Button is a padded label drawn in a variant colour. Disabled buttons are
// faint and active ones bold and underlined; appended styles override both.
type Button struct {
	BaseComponent
	label    string
	variant  ButtonVariant
	disabled bool
	active   bool
}

// NewButton creates a primary button.
func NewButton(label string) *Button {
	return &Button{
		BaseComponent: NewBaseComponent(),
		label:         label,
		variant:       ButtonVariantPrimary,
	}
}

// View renders the button.
func (b *Button) View() string {
	return b.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the button with the given theme context.
func (b *Button) ViewWithContext(ctx RenderContext) string {
	return b.ComputeStyle(ctx.Theme).Render(b.label)
}

// ComputeStyle layers variant and state between the button's own style
// and the appended styles.
func (b *Button) ComputeStyle(theme Theme) lipgloss.Style {
	style := b.ownStyle(theme)
	if strategy := theme.Variants.Get(b.variant); strategy != nil {
		style = strategy.Apply(style, theme)
	}
	if b.disabled {
		style = style.Faint(true)
	}
	if b.active {
		style = style.Bold(true).Underline(true)
	}
	return b.decorate(style, theme)
}

// Restyle returns a copy of the button with styles appended.
func (b *Button) Restyle(styles ...StyleFunc) Element {
	clone := *b
	clone.BaseComponent = b.BaseComponent.extended(styles)
	return &clone
}

// WithVariant sets the button variant.
func (b *Button) WithVariant(variant ButtonVariant) *Button {
	b.variant = variant
	return b
}

// WithDisabled sets the disabled state.
func (b *Button) WithDisabled(disabled bool) *Button {
	b.disabled = disabled
	return b
}

// WithActive sets the active state.
func (b *Button) WithActive(active bool) *Button {
	b.active = active
	return b
}

// WithAppliers adds theme-based style modifiers.
func (b *Button) WithAppliers(appliers ...StyleFunc) *Button {
	b.AddAppliers(appliers...)
	return b
}

// Label returns the button label.
func (b *Button) Label() string {
	return b.label
}

// Variant returns the button variant.
func (b *Button) Variant() ButtonVariant {
	return b.variant
}

// IsDisabled reports whether the button is disabled.
func (b *Button) IsDisabled() bool {
	return b.disabled
}

// IsActive reports whether the button is active.
func (b *Button) IsActive() bool {
	return b.active
}

// SecondaryButton creates a secondary button.
func SecondaryButton(label string) *Button {
	return NewButton(label).WithVariant(ButtonVariantSecondary)
}

// ErrorButton creates a danger button.
func ErrorButton(label string) *Button {
	return NewButton(label).WithVariant(ButtonVariantError)
}

// MutedButton creates a neutral button.
func MutedButton(label string) *Button {
	return NewButton(label).WithVariant(ButtonVariantMuted)
}
