package layout

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/selectorui/internal/logger"
	"github.com/alexisbeaulieu97/selectorui/internal/ui"
	"github.com/alexisbeaulieu97/selectorui/internal/ui/components"
	layouterrors "github.com/alexisbeaulieu97/selectorui/pkg/errors"
)

var (
	borders = map[string]lipgloss.Border{
		"none":    {},
		"normal":  lipgloss.NormalBorder(),
		"rounded": lipgloss.RoundedBorder(),
		"thick":   lipgloss.ThickBorder(),
		"double":  lipgloss.DoubleBorder(),
	}

	badgeVariants = map[string]components.BadgeVariant{
		"":        components.BadgeVariantDefault,
		"default": components.BadgeVariantDefault,
		"primary": components.BadgeVariantPrimary,
		"success": components.BadgeVariantSuccess,
		"warning": components.BadgeVariantWarning,
		"error":   components.BadgeVariantError,
		"info":    components.BadgeVariantInfo,
	}

	alertVariants = map[string]components.AlertVariant{
		"":        components.AlertVariantInfo,
		"info":    components.AlertVariantInfo,
		"success": components.AlertVariantSuccess,
		"warning": components.AlertVariantWarning,
		"error":   components.AlertVariantError,
	}

	buttonVariants = map[string]components.ButtonVariant{
		"":          components.ButtonVariantPrimary,
		"primary":   components.ButtonVariantPrimary,
		"secondary": components.ButtonVariantSecondary,
		"success":   components.ButtonVariantSuccess,
		"warning":   components.ButtonVariantWarning,
		"error":     components.ButtonVariantError,
		"info":      components.ButtonVariantInfo,
		"muted":     components.ButtonVariantMuted,
	}

	alignments = map[string]lipgloss.Position{
		"left":   lipgloss.Left,
		"center": lipgloss.Center,
		"right":  lipgloss.Right,
	}

	crossAlignments = map[string]components.CrossAxisAlignment{
		"":       components.CrossStart,
		"start":  components.CrossStart,
		"center": components.CrossCenter,
		"end":    components.CrossEnd,
	}
)

// Builder turns layout documents into component trees.
type Builder struct {
	log *logger.Logger
}

// NewBuilder creates a builder. A nil logger disables logging.
func NewBuilder(log *logger.Logger) *Builder {
	return &Builder{log: log}
}

// Build converts the document root into a renderable. The document is
// expected to be valid; structural problems found anyway are reported as
// BuildErrors naming the offending node.
func (b *Builder) Build(doc *Document) (ui.Renderable, error) {
	if doc == nil {
		return nil, layouterrors.NewBuildError("", fmt.Errorf("layout is nil"))
	}
	b.log.Debug("building layout", "layout", doc.Name)
	return b.buildNode(doc.Root, "root")
}

// Context returns the render context for doc: its theme and, when width is
// positive, a width limit. An explicit themeName overrides the document.
func Context(doc *Document, themeName string, width int) (components.RenderContext, error) {
	ctx := components.DefaultContext()

	name := themeName
	if name == "" && doc != nil {
		name = doc.Theme
	}
	if name != "" {
		theme, ok := components.ThemeByName(name)
		if !ok {
			return ctx, layouterrors.NewValidationError("theme", fmt.Sprintf("unknown theme %q", name), nil)
		}
		ctx = ctx.WithTheme(theme)
	}

	if width <= 0 && doc != nil {
		width = doc.Width
	}
	if width > 0 {
		ctx = ctx.WithConstraints(components.WithMaxWidth(width))
	}
	return ctx, nil
}

// Render builds doc and renders it in ctx.
func (b *Builder) Render(doc *Document, ctx components.RenderContext) (string, error) {
	root, err := b.Build(doc)
	if err != nil {
		return "", err
	}
	if contextual, ok := root.(components.ContextualRenderable); ok {
		return contextual.ViewWithContext(ctx), nil
	}
	return root.View(), nil
}

func (b *Builder) buildNode(node Node, path string) (ui.Renderable, error) {
	style, err := styleFunc(node.Style)
	if err != nil {
		return nil, layouterrors.NewBuildError(path+".style", err)
	}

	switch node.Kind {
	case KindText:
		return components.NewText(node.Text).WithAppliers(style), nil

	case KindRaw:
		return ui.Raw(node.Text), nil

	case KindBadge:
		variant, ok := badgeVariants[node.Variant]
		if !ok {
			return nil, layouterrors.NewBuildError(path, fmt.Errorf("unknown badge variant %q", node.Variant))
		}
		return components.NewBadge(node.Text).WithVariant(variant).WithAppliers(style), nil

	case KindDivider:
		return components.NewDivider().
			WithWidth(node.Width).
			WithChar(node.Char).
			WithAppliers(style), nil

	case KindStack:
		children, err := b.buildChildren(node.Children, path)
		if err != nil {
			return nil, err
		}
		stack := components.NewStack(children...).
			WithDirection(direction(node.Direction)).
			WithGap(node.Gap).
			WithAppliers(style)
		align, err := crossAlign(node.CrossAlign)
		if err != nil {
			return nil, layouterrors.NewBuildError(path, err)
		}
		return stack.WithCrossAlign(align), nil

	case KindSelector:
		return b.buildSelector(node, path, style)

	case KindHeader:
		header := components.NewHeader(node.Text).WithSubtitle(node.Subtitle).WithAppliers(style)
		if node.Level > 0 {
			header.WithLevel(node.Level)
		}
		return header, nil

	case KindSpacer:
		return components.NewSpacer(max(node.Width, 1), max(node.Height, 1)).WithAppliers(style), nil

	case KindCard, KindPanel:
		return b.buildSection(node, path, style)

	case KindAlert:
		variant, ok := alertVariants[node.Variant]
		if !ok {
			return nil, layouterrors.NewBuildError(path, fmt.Errorf("unknown alert variant %q", node.Variant))
		}
		alert := components.NewAlert(node.Text).WithVariant(variant).WithTitle(node.Title).WithAppliers(style)
		if node.Icon != "" {
			alert.WithIcon(node.Icon)
		}
		return alert, nil

	case KindButton:
		variant, ok := buttonVariants[node.Variant]
		if !ok {
			return nil, layouterrors.NewBuildError(path, fmt.Errorf("unknown button variant %q", node.Variant))
		}
		return components.NewButton(node.Text).
			WithVariant(variant).
			WithActive(node.Active).
			WithDisabled(node.Disabled).
			WithAppliers(style), nil

	default:
		return nil, layouterrors.NewBuildError(path, fmt.Errorf("unknown node kind %q", node.Kind))
	}
}

func (b *Builder) buildSelector(node Node, path string, style components.StyleFunc) (ui.Renderable, error) {
	children, err := b.buildChildren(node.Children, path)
	if err != nil {
		return nil, err
	}

	rules := make([]components.ChildStyle, 0, len(node.ChildrenStyle))
	for i, rule := range node.ChildrenStyle {
		childStyle, err := buildRule(rule, fmt.Sprintf("%s.children_style[%d]", path, i))
		if err != nil {
			return nil, err
		}
		rules = append(rules, childStyle)
	}
	if node.ChildrenCSS != "" {
		sheet, err := ParseChildrenCSS(node.ChildrenCSS)
		if err != nil {
			return nil, layouterrors.NewBuildError(path+".children_css", err)
		}
		rules = append(rules, sheet...)
	}

	align, err := crossAlign(node.CrossAlign)
	if err != nil {
		return nil, layouterrors.NewBuildError(path, err)
	}

	selector := components.NewSelector(children...).
		WithChildrenStyle(rules...).
		WithDirection(direction(node.Direction)).
		WithGap(node.Gap).
		WithCrossAlign(align).
		WithAppliers(style)

	if node.Border != "" {
		border, ok := borders[node.Border]
		if !ok {
			return nil, layouterrors.NewBuildError(path+".border", fmt.Errorf("unknown border %q", node.Border))
		}
		selector.WithBorder(border)
	}
	if node.BorderColor != "" {
		selector.WithBorderColor(node.BorderColor)
	}
	if len(node.Padding) > 0 {
		selector.WithPadding(components.SpacingFromValues(node.Padding...))
	}
	if len(node.Margin) > 0 {
		selector.WithMargin(components.SpacingFromValues(node.Margin...))
	}

	b.log.Debug("built selector", "node", path, "children", len(children), "rules", len(rules))
	return selector, nil
}

// buildSection builds card and panel nodes. Their own style applies to the
// frame.
func (b *Builder) buildSection(node Node, path string, style components.StyleFunc) (ui.Renderable, error) {
	children, err := b.buildChildren(node.Children, path)
	if err != nil {
		return nil, err
	}

	var footer ui.Renderable
	if node.Footer != nil {
		if footer, err = b.buildNode(*node.Footer, path+".footer"); err != nil {
			return nil, err
		}
	}

	var border *lipgloss.Border
	if node.Border != "" {
		named, ok := borders[node.Border]
		if !ok {
			return nil, layouterrors.NewBuildError(path+".border", fmt.Errorf("unknown border %q", node.Border))
		}
		border = &named
	}

	if node.Kind == KindCard {
		card := components.NewCard(children...).WithFooter(footer)
		if node.Title != "" {
			card.WithTitle(node.Title)
		}
		if border != nil {
			card.WithBorder(*border)
		}
		if node.BorderColor != "" {
			card.WithBorderColor(node.BorderColor)
		}
		card.AsContainer().AddAppliers(style)
		return card, nil
	}

	panel := components.NewPanel(children...).WithFooter(footer)
	if node.Title != "" {
		panel.WithTitle(node.Title)
	}
	if border != nil {
		panel.WithBorder(*border)
	}
	if node.BorderColor != "" {
		panel.WithBorderColor(node.BorderColor)
	}
	panel.AsContainer().AddAppliers(style)
	return panel, nil
}

func (b *Builder) buildChildren(nodes []Node, path string) ([]ui.Renderable, error) {
	children := make([]ui.Renderable, 0, len(nodes))
	for i, child := range nodes {
		built, err := b.buildNode(child, fmt.Sprintf("%s.children[%d]", path, i))
		if err != nil {
			return nil, err
		}
		children = append(children, built)
	}
	return children, nil
}

// buildRule maps a rule onto the selector helpers. Group rules recurse.
func buildRule(rule Rule, path string) (components.ChildStyle, error) {
	if len(rule.Group) > 0 {
		group := make([]components.ChildStyle, 0, len(rule.Group))
		for i, child := range rule.Group {
			built, err := buildRule(child, fmt.Sprintf("%s.group[%d]", path, i))
			if err != nil {
				return components.ChildStyle{}, err
			}
			group = append(group, built)
		}
		return components.Group(group...), nil
	}

	style, err := styleFunc(rule.Style)
	if err != nil {
		return components.ChildStyle{}, layouterrors.NewBuildError(path+".style", err)
	}

	n := 0
	if requiresN(rule.Select) {
		if rule.N == nil {
			return components.ChildStyle{}, layouterrors.NewBuildError(path, fmt.Errorf("selector %q requires n", rule.Select))
		}
		n = *rule.N
	}

	switch rule.Select {
	case SelectAlways:
		return components.Static(style), nil
	case SelectFirst:
		return components.FirstChild(style), nil
	case SelectNotFirst:
		return components.NotFirstChild(style), nil
	case SelectLast:
		return components.LastChild(style), nil
	case SelectNotLast:
		return components.NotLastChild(style), nil
	case SelectEven:
		return components.Even(style), nil
	case SelectOdd:
		return components.Odd(style), nil
	case SelectOnly:
		return components.OnlyChild(style), nil
	case SelectNth:
		return components.NthChild(n, style), nil
	case SelectNotNth:
		return components.NotNthChild(n, style), nil
	case SelectNthLast:
		return components.NthLastChild(n, style), nil
	case SelectNotNthLast:
		return components.NotNthLastChild(n, style), nil
	case SelectEvery:
		return components.NthOfEvery(rule.Step, rule.Offset, style), nil
	default:
		return components.ChildStyle{}, layouterrors.NewBuildError(path, fmt.Errorf("unknown selector %q", rule.Select))
	}
}

// Props converts a StyleDoc into StyleProps. A nil doc gives empty props.
func Props(doc *StyleDoc) (components.StyleProps, error) {
	var props components.StyleProps
	if doc == nil {
		return props, nil
	}

	if doc.Foreground != "" {
		props.Foreground = lipgloss.Color(doc.Foreground)
	}
	if doc.Background != "" {
		props.Background = lipgloss.Color(doc.Background)
	}
	if doc.BorderForeground != "" {
		props.BorderForeground = lipgloss.Color(doc.BorderForeground)
	}

	props.Bold = doc.Bold
	props.Italic = doc.Italic
	props.Faint = doc.Faint
	props.Underline = doc.Underline
	props.Strikethrough = doc.Strikethrough
	props.Reverse = doc.Reverse

	if len(doc.Padding) > 0 {
		props.Padding = components.Ptr(components.SpacingFromValues(doc.Padding...))
	}
	if len(doc.Margin) > 0 {
		props.Margin = components.Ptr(components.SpacingFromValues(doc.Margin...))
	}
	if doc.Border != "" {
		border, ok := borders[doc.Border]
		if !ok {
			return props, fmt.Errorf("unknown border %q", doc.Border)
		}
		props.Border = components.Ptr(border)
	}
	if doc.Width > 0 {
		props.Width = components.Ptr(doc.Width)
	}
	if doc.Align != "" {
		align, ok := alignments[doc.Align]
		if !ok {
			return props, fmt.Errorf("unknown align %q", doc.Align)
		}
		props.Align = components.Ptr(align)
	}
	return props, nil
}

func styleFunc(doc *StyleDoc) (components.StyleFunc, error) {
	props, err := Props(doc)
	if err != nil {
		return nil, err
	}
	return props.Func(), nil
}

func direction(name string) components.Direction {
	if name == "horizontal" {
		return components.DirectionHorizontal
	}
	return components.DirectionVertical
}

func crossAlign(name string) (components.CrossAxisAlignment, error) {
	align, ok := crossAlignments[name]
	if !ok {
		return components.CrossStart, fmt.Errorf("unknown cross_align %q", name)
	}
	return align, nil
}
