package layout

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/selectorui/internal/logger"
	"github.com/alexisbeaulieu97/selectorui/internal/ui"
	"github.com/alexisbeaulieu97/selectorui/internal/ui/components"
	layouterrors "github.com/alexisbeaulieu97/selectorui/pkg/errors"
)

type computed interface {
	ComputeStyle(components.Theme) lipgloss.Style
}

func buildSample(t *testing.T) *components.Selector {
	t.Helper()

	doc, err := Parse([]byte(sampleLayout), "layout.yaml")
	require.NoError(t, err)

	root, err := NewBuilder(logger.Nop()).Build(doc)
	require.NoError(t, err)

	selector, ok := root.(*components.Selector)
	require.True(t, ok, "root should be a selector, got %T", root)
	return selector
}

func TestBuildSelectorRules(t *testing.T) {
	t.Parallel()

	selector := buildSample(t)
	require.Len(t, selector.Children(), 4)

	resolved := selector.ResolvedChildren()
	require.Len(t, resolved, 3, "raw text is not a styled child")

	theme := components.DefaultTheme()
	styles := make([]lipgloss.Style, len(resolved))
	for i, child := range resolved {
		c, ok := child.(computed)
		require.True(t, ok)
		styles[i] = c.ComputeStyle(theme)
	}

	assert.True(t, styles[0].GetBold(), "first child is bold")
	assert.False(t, styles[1].GetBold())
	assert.False(t, styles[0].GetFaint())
	assert.True(t, styles[1].GetFaint(), "odd child is faint")
	assert.False(t, styles[2].GetFaint())
	assert.Equal(t, lipgloss.Color("#ff0000"), styles[2].GetForeground(), "last child is red")

	badge, ok := resolved[1].(*components.Badge)
	require.True(t, ok)
	assert.Equal(t, components.BadgeVariantSuccess, badge.Variant())
}

func TestBuildSelectorFrame(t *testing.T) {
	t.Parallel()

	selector := buildSample(t)
	frame := selector.Frame()
	assert.Equal(t, lipgloss.RoundedBorder(), frame.Border())
	assert.Equal(t, components.SymmetricSpacing(0, 1), frame.Padding())
}

func TestBuildNodeKinds(t *testing.T) {
	t.Parallel()

	b := NewBuilder(nil)

	raw, err := b.buildNode(Node{Kind: KindRaw, Text: "plain"}, "root")
	require.NoError(t, err)
	assert.Equal(t, ui.Raw("plain"), raw)

	divider, err := b.buildNode(Node{Kind: KindDivider, Char: "=", Width: 3}, "root")
	require.NoError(t, err)
	assert.Equal(t, "===", divider.View())

	stack, err := b.buildNode(Node{
		Kind:      KindStack,
		Direction: "horizontal",
		Gap:       1,
		Children:  []Node{{Kind: KindText, Text: "a"}, {Kind: KindText, Text: "b"}},
	}, "root")
	require.NoError(t, err)
	assert.Equal(t, "a b", stack.View())
}

func TestBuildCompositeKinds(t *testing.T) {
	t.Parallel()

	b := NewBuilder(nil)

	header, err := b.buildNode(Node{Kind: KindHeader, Text: "Services", Subtitle: "eu-west", Level: 2}, "root")
	require.NoError(t, err)
	require.IsType(t, &components.Header{}, header)
	assert.Equal(t, 2, header.(*components.Header).Level())
	assert.Contains(t, header.View(), "eu-west")

	spacer, err := b.buildNode(Node{Kind: KindSpacer, Height: 2}, "root")
	require.NoError(t, err)
	assert.Equal(t, " \n ", spacer.View())

	card, err := b.buildNode(Node{
		Kind:     KindCard,
		Title:    "gateway",
		Border:   "double",
		Children: []Node{{Kind: KindText, Text: "up"}},
		Footer:   &Node{Kind: KindBadge, Text: "v2"},
	}, "root")
	require.NoError(t, err)
	require.IsType(t, &components.Card{}, card)
	assert.Equal(t, lipgloss.DoubleBorder(), card.(*components.Card).AsContainer().Border())
	view := card.View()
	for _, want := range []string{"╔", "gateway", "up", "v2"} {
		assert.Contains(t, view, want)
	}

	panel, err := b.buildNode(Node{Kind: KindPanel, Title: "notes", Children: []Node{{Kind: KindText, Text: "body"}}}, "root")
	require.NoError(t, err)
	require.IsType(t, &components.Panel{}, panel)
	assert.Contains(t, panel.View(), "notes")

	alert, err := b.buildNode(Node{Kind: KindAlert, Text: "disk full", Variant: "error", Icon: "!"}, "root")
	require.NoError(t, err)
	require.IsType(t, &components.Alert{}, alert)
	assert.Equal(t, components.AlertVariantError, alert.(*components.Alert).Variant())
	assert.Contains(t, alert.View(), "! disk full")

	button, err := b.buildNode(Node{Kind: KindButton, Text: "deploy", Variant: "muted", Disabled: true}, "root")
	require.NoError(t, err)
	require.IsType(t, &components.Button{}, button)
	assert.Equal(t, components.ButtonVariantMuted, button.(*components.Button).Variant())
	assert.True(t, button.(*components.Button).IsDisabled())
}

func TestBuildSelectorOverCompositeChildren(t *testing.T) {
	t.Parallel()

	root, err := NewBuilder(nil).Build(&Document{Root: Node{
		Kind:          KindSelector,
		ChildrenStyle: []Rule{{Select: SelectLast, Style: &StyleDoc{Bold: components.Ptr(true)}}},
		Children: []Node{
			{Kind: KindHeader, Text: "title"},
			{Kind: KindSpacer},
			{Kind: KindAlert, Text: "last"},
		},
	}})
	require.NoError(t, err)

	resolved := root.(*components.Selector).ResolvedChildren()
	require.Len(t, resolved, 3)
	assert.Empty(t, resolved[1].(*components.Spacer).ChildStyles())
	assert.Len(t, resolved[2].(*components.Alert).ChildStyles(), 1)
}

func TestBuildSelectorChildrenCSS(t *testing.T) {
	t.Parallel()

	root, err := NewBuilder(nil).Build(&Document{Root: Node{
		Kind:          KindSelector,
		ChildrenStyle: []Rule{{Select: SelectAlways, Style: &StyleDoc{Bold: components.Ptr(true)}}},
		ChildrenCSS:   ":last-child { font-weight: normal; text-decoration: underline }",
		Children:      []Node{{Kind: KindText, Text: "a"}, {Kind: KindText, Text: "b"}},
	}})
	require.NoError(t, err)

	resolved := root.(*components.Selector).ResolvedChildren()
	theme := components.DefaultTheme()
	first := resolved[0].(*components.Text).ComputeStyle(theme)
	last := resolved[1].(*components.Text).ComputeStyle(theme)

	assert.True(t, first.GetBold())
	assert.False(t, first.GetUnderline())
	assert.False(t, last.GetBold(), "stylesheet rules apply after children_style")
	assert.True(t, last.GetUnderline())
}

func TestBuildErrors(t *testing.T) {
	t.Parallel()

	b := NewBuilder(nil)

	_, err := b.Build(nil)
	var buildErr *layouterrors.BuildError
	require.ErrorAs(t, err, &buildErr)

	_, err = b.Build(&Document{Root: Node{
		Kind:     KindStack,
		Children: []Node{{Kind: KindText}, {Kind: "box"}},
	}})
	require.ErrorAs(t, err, &buildErr)
	assert.Equal(t, "root.children[1]", buildErr.Node)

	_, err = b.Build(&Document{Root: Node{
		Kind:          KindSelector,
		ChildrenStyle: []Rule{{Group: []Rule{{Select: SelectNth}}}},
	}})
	require.ErrorAs(t, err, &buildErr)
	assert.Equal(t, "root.children_style[0].group[0]", buildErr.Node)

	_, err = b.Build(&Document{Root: Node{Kind: KindText, Style: &StyleDoc{Align: "justify"}}})
	require.ErrorAs(t, err, &buildErr)
	assert.Equal(t, "root.style", buildErr.Node)
}

func TestProps(t *testing.T) {
	t.Parallel()

	props, err := Props(nil)
	require.NoError(t, err)
	assert.True(t, props.IsZero())

	bold := true
	props, err = Props(&StyleDoc{
		Background: "236",
		Bold:       &bold,
		Padding:    []int{1},
		Border:     "thick",
		Width:      20,
		Align:      "center",
	})
	require.NoError(t, err)
	assert.Equal(t, lipgloss.Color("236"), props.Background)
	assert.Equal(t, components.UniformSpacing(1), *props.Padding)
	assert.Equal(t, lipgloss.ThickBorder(), *props.Border)
	assert.Equal(t, 20, *props.Width)
	assert.Equal(t, lipgloss.Center, *props.Align)
	assert.Nil(t, props.Foreground)
	assert.Nil(t, props.Italic)
}

func TestContext(t *testing.T) {
	t.Parallel()

	doc := &Document{Theme: "dark", Width: 60}

	ctx, err := Context(doc, "", 0)
	require.NoError(t, err)
	assert.Equal(t, components.ThemeDark, ctx.Theme.Name)
	assert.Equal(t, 60, ctx.Constraints.MaxWidth)

	ctx, err = Context(doc, "default", 30)
	require.NoError(t, err)
	assert.Equal(t, components.ThemeDefault, ctx.Theme.Name)
	assert.Equal(t, 30, ctx.Constraints.MaxWidth)

	_, err = Context(doc, "neon", 0)
	var validationErr *layouterrors.ValidationError
	require.ErrorAs(t, err, &validationErr)
}

func TestRender(t *testing.T) {
	t.Parallel()

	doc, err := Parse([]byte(sampleLayout), "layout.yaml")
	require.NoError(t, err)

	ctx, err := Context(doc, "", 0)
	require.NoError(t, err)

	out, err := NewBuilder(nil).Render(doc, ctx)
	require.NoError(t, err)
	assert.Contains(t, out, "╭")
	assert.Contains(t, out, "alpha")
	assert.NotContains(t, out, "-- note --", "raw children of a selector are dropped")
	assert.Contains(t, out, "gamma")
}

func TestRenderKeepsRawTextInStacks(t *testing.T) {
	t.Parallel()

	doc := &Document{Root: Node{
		Kind: KindStack,
		Children: []Node{
			{Kind: KindText, Text: "above"},
			{Kind: KindRaw, Text: "-- note --"},
			{Kind: KindText, Text: "below"},
		},
	}}

	out, err := NewBuilder(nil).Render(doc, components.DefaultContext())
	require.NoError(t, err)
	assert.Contains(t, out, "-- note --")
}

func TestRenderExampleLayoutKeepsSeparator(t *testing.T) {
	t.Parallel()

	doc, err := ParseFile("../../examples/layouts/services.yaml")
	require.NoError(t, err)

	ctx, err := Context(doc, "", 0)
	require.NoError(t, err)

	out, err := NewBuilder(nil).Render(doc, ctx)
	require.NoError(t, err)
	assert.Contains(t, out, "internal")
	assert.Contains(t, out, "search")
}
