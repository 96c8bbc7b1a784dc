package components

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/selectorui/internal/ui"
)

// AlertVariant selects the icon and border colour of an alert.
type AlertVariant int

const (
	AlertVariantInfo AlertVariant = iota
	AlertVariantSuccess
	AlertVariantWarning
	AlertVariantError
)

var alertIcons = map[AlertVariant]string{
	AlertVariantInfo:    "ℹ",
	AlertVariantSuccess: "✓",
	AlertVariantWarning: "⚠",
	AlertVariantError:   "✗",
}

// Alert is a bordered notification with an icon, a message and an optional
// title. Own appliers and appended styles apply to the frame after the
// variant, so a selector can recolour the border.
type Alert struct {
	BaseComponent
	message string
	title   string
	icon    string
	variant AlertVariant
}

// NewAlert creates an info alert.
func NewAlert(message string) *Alert {
	return &Alert{
		BaseComponent: NewBaseComponent(),
		message:       message,
		variant:       AlertVariantInfo,
		icon:          alertIcons[AlertVariantInfo],
	}
}

// View renders the alert.
func (a *Alert) View() string {
	return a.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the alert with the provided render context.
func (a *Alert) ViewWithContext(ctx RenderContext) string {
	children := make([]ui.Renderable, 0, 2)
	if a.title != "" {
		children = append(children, EmphasisText(a.title))
	}
	children = append(children, NewText(a.icon+" "+a.message))

	frame := NewContainer(children...).
		WithBorder(lipgloss.NormalBorder()).
		WithPadding(SymmetricSpacing(0, 1))

	variant := ctx.Theme.Variants.Get(a.variant)
	own := a.BaseComponent
	frame.WithAppliers(func(base lipgloss.Style, theme Theme) lipgloss.Style {
		if variant != nil {
			base = variant.Apply(base, theme)
		}
		if own.strategy != nil {
			base = own.strategy.Apply(base, theme)
		}
		return own.decorate(base, theme)
	})
	return frame.ViewWithContext(ctx)
}

// Restyle returns a copy of the alert with styles appended.
func (a *Alert) Restyle(styles ...StyleFunc) Element {
	clone := *a
	clone.BaseComponent = a.BaseComponent.extended(styles)
	return &clone
}

// WithVariant sets the variant and its default icon.
func (a *Alert) WithVariant(variant AlertVariant) *Alert {
	a.variant = variant
	if icon, ok := alertIcons[variant]; ok {
		a.icon = icon
	}
	return a
}

// WithIcon sets a custom icon.
func (a *Alert) WithIcon(icon string) *Alert {
	a.icon = icon
	return a
}

// WithTitle adds a bold title line.
func (a *Alert) WithTitle(title string) *Alert {
	a.title = title
	return a
}

// WithAppliers adds theme-based style modifiers.
func (a *Alert) WithAppliers(appliers ...StyleFunc) *Alert {
	a.AddAppliers(appliers...)
	return a
}

// Message returns the alert message.
func (a *Alert) Message() string {
	return a.message
}

// Variant returns the alert variant.
func (a *Alert) Variant() AlertVariant {
	return a.variant
}

// SuccessAlert creates a success alert.
func SuccessAlert(message string) *Alert {
	return NewAlert(message).WithVariant(AlertVariantSuccess)
}

// WarningAlert creates a warning alert.
func WarningAlert(message string) *Alert {
	return NewAlert(message).WithVariant(AlertVariantWarning)
}

// ErrorAlert creates an error alert.
func ErrorAlert(message string) *Alert {
	return NewAlert(message).WithVariant(AlertVariantError)
}
