package components

import (
	"github.com/charmbracelet/lipgloss"
)

// SpacingSize enumerates supported spacing size tokens.
type SpacingSize int

const (
	SpacingSizeNone SpacingSize = iota
	SpacingSizeExtraSmall
	SpacingSizeSmall
	SpacingSizeMedium
	SpacingSizeLarge
)

const spacingSizeCount = int(SpacingSizeLarge) + 1

type spacingTable [spacingSizeCount]int

// SpacingConfig stores distinct spacing scales for padding and margin.
type SpacingConfig struct {
	Margin  spacingTable
	Padding spacingTable
}

// TypographyVariant represents a typography token.
type TypographyVariant int

const (
	TypographyVariantBase TypographyVariant = iota
	TypographyVariantTitle
	TypographyVariantSubtitle
	TypographyVariantCode
	TypographyVariantEmphasis
)

// BorderVariant selects one of the theme borders.
type BorderVariant int

const (
	BorderVariantNone BorderVariant = iota
	BorderVariantNormal
	BorderVariantThick
	BorderVariantRounded
	BorderVariantDouble
)

// ColourSet is a semantic colour combination:
//
//   - Base: background or brand colour
//   - OnBase: text colour that contrasts with Base
//   - Muted: a desaturated Base for subtle accents
//
// All colours are adaptive, carrying light and dark variants.
type ColourSet struct {
	Base   lipgloss.AdaptiveColor
	OnBase lipgloss.AdaptiveColor
	Muted  lipgloss.AdaptiveColor
}

// Palette describes semantic colour slots used by components.
type Palette struct {
	Primary   ColourSet
	Secondary ColourSet
	Surface   ColourSet
	Success   ColourSet
	Warning   ColourSet
	Danger    ColourSet
	Info      ColourSet
	Neutral   ColourSet
}

// BorderSet groups reusable border definitions.
type BorderSet struct {
	None    lipgloss.Border
	Normal  lipgloss.Border
	Rounded lipgloss.Border
	Thick   lipgloss.Border
	Double  lipgloss.Border
}

// TypographyScale contains semantic typography presets.
type TypographyScale struct {
	Base     lipgloss.Style
	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Code     lipgloss.Style
	Emphasis lipgloss.Style
}

// VariantRegistry maps component variants to their styling strategies.
type VariantRegistry struct {
	strategies map[interface{}]StyleStrategy
}

// NewVariantRegistry creates an empty variant registry.
func NewVariantRegistry() *VariantRegistry {
	return &VariantRegistry{strategies: make(map[interface{}]StyleStrategy)}
}

// Register adds a variant-to-strategy mapping.
func (vr *VariantRegistry) Register(variant interface{}, strategy StyleStrategy) {
	vr.strategies[variant] = strategy
}

// Get retrieves the strategy for a variant, or nil if not found.
func (vr *VariantRegistry) Get(variant interface{}) StyleStrategy {
	if vr == nil {
		return nil
	}
	return vr.strategies[variant]
}

// Theme is an immutable styling theme. Modifications return new values.
type Theme struct {
	Name       string
	Palette    Palette
	Borders    BorderSet
	Spacing    SpacingConfig
	Typography TypographyScale
	Variants   *VariantRegistry
}

// Theme names accepted by ThemeByName.
const (
	ThemeDefault = "default"
	ThemeDark    = "dark"
)

// ThemeByName returns the named theme and whether the name was known.
// Unknown names fall back to the default theme.
func ThemeByName(name string) (Theme, bool) {
	switch name {
	case "", ThemeDefault:
		return DefaultTheme(), true
	case ThemeDark:
		return DarkTheme(), true
	default:
		return DefaultTheme(), false
	}
}

func defaultSpacingTable() spacingTable {
	return spacingTable{
		SpacingSizeNone:       0,
		SpacingSizeExtraSmall: 1,
		SpacingSizeSmall:      2,
		SpacingSizeMedium:     3,
		SpacingSizeLarge:      4,
	}
}

// DefaultTheme returns the default theme for components.
func DefaultTheme() Theme {
	ac := func(light, dark string) lipgloss.AdaptiveColor {
		return lipgloss.AdaptiveColor{Light: light, Dark: dark}
	}

	palette := Palette{
		Primary:   ColourSet{Base: ac("#3b82f6", "#60a5fa"), OnBase: ac("#f8fafc", "#0b1120"), Muted: ac("#2563eb", "#1d4ed8")},
		Secondary: ColourSet{Base: ac("#a855f7", "#c084fc"), OnBase: ac("#f8fafc", "#1f2937"), Muted: ac("#7c3aed", "#6b21a8")},
		Surface:   ColourSet{Base: ac("#f9fafb", "#111827"), OnBase: ac("#111827", "#f9fafb"), Muted: ac("#e2e8f0", "#1f2937")},
		Success:   ColourSet{Base: ac("#22c55e", "#4ade80"), OnBase: ac("#052e16", "#022c22"), Muted: ac("#16a34a", "#15803d")},
		Warning:   ColourSet{Base: ac("#eab308", "#facc15"), OnBase: ac("#422006", "#422006"), Muted: ac("#ca8a04", "#a16207")},
		Danger:    ColourSet{Base: ac("#ef4444", "#f87171"), OnBase: ac("#7f1d1d", "#450a0a"), Muted: ac("#dc2626", "#b91c1c")},
		Info:      ColourSet{Base: ac("#06b6d4", "#22d3ee"), OnBase: ac("#083344", "#04121a"), Muted: ac("#0891b2", "#0e7490")},
		Neutral:   ColourSet{Base: ac("#64748b", "#94a3b8"), OnBase: ac("#f1f5f9", "#0f172a"), Muted: ac("#475569", "#334155")},
	}

	theme := Theme{
		Name:    ThemeDefault,
		Palette: palette,
		Borders: BorderSet{
			None:    lipgloss.Border{},
			Normal:  lipgloss.NormalBorder(),
			Rounded: lipgloss.RoundedBorder(),
			Thick:   lipgloss.ThickBorder(),
			Double:  lipgloss.DoubleBorder(),
		},
		Spacing:    SpacingConfig{Padding: defaultSpacingTable(), Margin: defaultSpacingTable()},
		Typography: defaultTypography(palette),
		Variants:   defaultVariants(),
	}
	return theme
}

// DarkTheme returns the default theme with darker surfaces.
func DarkTheme() Theme {
	theme := DefaultTheme()
	theme.Name = ThemeDark

	theme.Palette.Surface = ColourSet{
		Base:   lipgloss.AdaptiveColor{Light: "#111827", Dark: "#0b1120"},
		OnBase: lipgloss.AdaptiveColor{Light: "#f9fafb", Dark: "#e5e7eb"},
		Muted:  lipgloss.AdaptiveColor{Light: "#1f2937", Dark: "#111827"},
	}
	theme.Palette.Neutral = ColourSet{
		Base:   lipgloss.AdaptiveColor{Light: "#475569", Dark: "#334155"},
		OnBase: lipgloss.AdaptiveColor{Light: "#e5e7eb", Dark: "#cbd5f5"},
		Muted:  lipgloss.AdaptiveColor{Light: "#374151", Dark: "#1f2937"},
	}
	theme.Typography = defaultTypography(theme.Palette)
	theme.Variants = defaultVariants()

	return theme
}

func defaultVariants() *VariantRegistry {
	registry := NewVariantRegistry()
	registerBadgeVariants(registry)
	registerAlertVariants(registry)
	registerButtonVariants(registry)
	return registry
}

func registerBadgeVariants(registry *VariantRegistry) {
	slots := map[BadgeVariant]PaletteSlot{
		BadgeVariantDefault: PaletteNeutral,
		BadgeVariantPrimary: PalettePrimary,
		BadgeVariantSuccess: PaletteSuccess,
		BadgeVariantWarning: PaletteWarning,
		BadgeVariantError:   PaletteDanger,
		BadgeVariantInfo:    PaletteInfo,
	}
	for variant, slot := range slots {
		registry.Register(variant, NewCompositeStrategy(
			Background(slot),
			PaddingX(SpacingSizeExtraSmall),
		))
	}
}

func registerButtonVariants(registry *VariantRegistry) {
	slots := map[ButtonVariant]PaletteSlot{
		ButtonVariantPrimary:   PalettePrimary,
		ButtonVariantSecondary: PaletteSecondary,
		ButtonVariantSuccess:   PaletteSuccess,
		ButtonVariantError:     PaletteDanger,
		ButtonVariantWarning:   PaletteWarning,
		ButtonVariantInfo:      PaletteInfo,
		ButtonVariantMuted:     PaletteNeutral,
	}
	for variant, slot := range slots {
		registry.Register(variant, NewCompositeStrategy(
			Background(slot),
			PaddingX(SpacingSizeSmall),
		))
	}
}

func registerAlertVariants(registry *VariantRegistry) {
	slots := map[AlertVariant]PaletteSlot{
		AlertVariantInfo:    PaletteInfo,
		AlertVariantSuccess: PaletteSuccess,
		AlertVariantWarning: PaletteWarning,
		AlertVariantError:   PaletteDanger,
	}
	for variant, slot := range slots {
		registry.Register(variant, NewCompositeStrategy(func(base lipgloss.Style, theme Theme) lipgloss.Style {
			return base.BorderForeground(slot(theme.Palette).Base)
		}))
	}
}

func defaultTypography(p Palette) TypographyScale {
	base := lipgloss.NewStyle().Foreground(p.Surface.OnBase)

	return TypographyScale{
		Base:     base,
		Title:    base.Bold(true).Foreground(p.Primary.Base),
		Subtitle: base.Foreground(p.Secondary.Muted).Faint(true),
		Code:     base.Foreground(p.Secondary.Base).Background(p.Surface.Muted).Padding(0, 1),
		Emphasis: base.Bold(true),
	}
}

// BorderForVariant returns the border style for the given variant.
func BorderForVariant(theme Theme, variant BorderVariant) lipgloss.Border {
	switch variant {
	case BorderVariantNormal:
		return theme.Borders.Normal
	case BorderVariantThick:
		return theme.Borders.Thick
	case BorderVariantDouble:
		return theme.Borders.Double
	case BorderVariantRounded:
		return theme.Borders.Rounded
	default:
		return theme.Borders.None
	}
}

// TypographyStyle returns the typography preset for variant.
func TypographyStyle(theme Theme, variant TypographyVariant) lipgloss.Style {
	typo := theme.Typography
	switch variant {
	case TypographyVariantTitle:
		return typo.Title
	case TypographyVariantSubtitle:
		return typo.Subtitle
	case TypographyVariantCode:
		return typo.Code
	case TypographyVariantEmphasis:
		return typo.Emphasis
	default:
		return typo.Base
	}
}

func spacingLookup(table spacingTable, size SpacingSize) int {
	index := int(size)
	if index < 0 || index >= len(table) {
		index = int(SpacingSizeMedium)
	}
	return table[index]
}

// PaletteSlot selects a semantic colour set from a Palette.
type PaletteSlot func(Palette) ColourSet

var (
	PalettePrimary   PaletteSlot = func(p Palette) ColourSet { return p.Primary }
	PaletteSecondary PaletteSlot = func(p Palette) ColourSet { return p.Secondary }
	PaletteSurface   PaletteSlot = func(p Palette) ColourSet { return p.Surface }
	PaletteSuccess   PaletteSlot = func(p Palette) ColourSet { return p.Success }
	PaletteWarning   PaletteSlot = func(p Palette) ColourSet { return p.Warning }
	PaletteDanger    PaletteSlot = func(p Palette) ColourSet { return p.Danger }
	PaletteInfo      PaletteSlot = func(p Palette) ColourSet { return p.Info }
	PaletteNeutral   PaletteSlot = func(p Palette) ColourSet { return p.Neutral }
)

// Background applies a semantic background colour with its matching foreground.
//
// Example:
//
//	row := NewText("ok").WithAppliers(Background(PaletteSuccess))
func Background(slot PaletteSlot) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		cs := slot(theme.Palette)
		return base.Background(cs.Base).Foreground(cs.OnBase)
	}
}

// Foreground applies a semantic foreground colour without touching the background.
func Foreground(slot PaletteSlot) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		return base.Foreground(slot(theme.Palette).Base)
	}
}

// Border applies a border style from the theme.
func Border(variant BorderVariant) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		return base.Border(BorderForVariant(theme, variant))
	}
}

func Padding(size SpacingSize) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		return base.Padding(spacingLookup(theme.Spacing.Padding, size))
	}
}

func PaddingX(size SpacingSize) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		value := spacingLookup(theme.Spacing.Padding, size)
		return base.PaddingLeft(value).PaddingRight(value)
	}
}

func MarginY(size SpacingSize) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		value := spacingLookup(theme.Spacing.Margin, size)
		return base.MarginTop(value).MarginBottom(value)
	}
}

// Typography fills unset properties from a typography preset.
func Typography(variant TypographyVariant) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		return base.Inherit(TypographyStyle(theme, variant))
	}
}

// Bold sets or clears the bold attribute.
func Bold(on bool) StyleFunc {
	return func(base lipgloss.Style, _ Theme) lipgloss.Style {
		return base.Bold(on)
	}
}

// Faint sets or clears the faint attribute.
func Faint(on bool) StyleFunc {
	return func(base lipgloss.Style, _ Theme) lipgloss.Style {
		return base.Faint(on)
	}
}

// Chain combines style functions into one, applied in order.
func Chain(funcs ...StyleFunc) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		return CompositeStrategy{funcs: funcs}.Apply(base, theme)
	}
}
