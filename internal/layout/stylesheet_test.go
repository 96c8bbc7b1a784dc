package layout

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/multierr"

	"github.com/alexisbeaulieu97/selectorui/internal/ui"
	"github.com/alexisbeaulieu97/selectorui/internal/ui/components"
)

func matches(t *testing.T, selector string, length int) []int {
	t.Helper()
	predicate, err := parseChildSelector(selector)
	require.NoError(t, err, selector)

	var out []int
	for i := 0; i < length; i++ {
		if predicate(i, length) {
			out = append(out, i)
		}
	}
	return out
}

func TestParseChildSelector(t *testing.T) {
	t.Parallel()

	cases := []struct {
		selector string
		want     []int
	}{
		{"*", []int{0, 1, 2, 3, 4}},
		{":first-child", []int{0}},
		{":last-child", []int{4}},
		{":nth-child(2)", []int{1}},
		{":nth-child(odd)", []int{0, 2, 4}},
		{":nth-child(even)", []int{1, 3}},
		{":nth-child(2n+1)", []int{0, 2, 4}},
		{":nth-child(3n)", []int{2}},
		{":nth-child(n+4)", []int{3, 4}},
		{":nth-child(-n+2)", []int{0, 1}},
		{":nth-child( 2n - 1 )", []int{0, 2, 4}},
		{":nth-last-child(1)", []int{4}},
		{":nth-last-child(2n)", []int{1, 3}},
		{":not(:first-child)", []int{1, 2, 3, 4}},
		{":not(:nth-last-child(1))", []int{0, 1, 2, 3}},
		{":NTH-CHILD(ODD)", []int{0, 2, 4}},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.selector, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, matches(t, tc.selector, 5))
		})
	}

	assert.Equal(t, []int{0}, matches(t, ":only-child", 1))
	assert.Empty(t, matches(t, ":only-child", 2))
}

func TestParseChildSelectorRejects(t *testing.T) {
	t.Parallel()

	for _, selector := range []string{"li", ":hover", ":nth-child()", ":nth-child(2x)", ":nth-child(2n1)", ":not(:first-child"} {
		_, err := parseChildSelector(selector)
		assert.Error(t, err, selector)
	}
}

func TestParseChildSelectorRejectsCompound(t *testing.T) {
	t.Parallel()

	for _, selector := range []string{
		":nth-child(n+2):not(:last-child)",
		":first-child:last-child",
		":not(:first-child):last-child",
		":not(:first-child:last-child)",
	} {
		_, err := parseChildSelector(selector)
		require.Error(t, err, selector)
		assert.Contains(t, err.Error(), "compound selectors are not supported", selector)
	}
}

func TestMatchANB(t *testing.T) {
	t.Parallel()

	assert.True(t, matchANB(0, 3, 3))
	assert.False(t, matchANB(0, 3, 4))
	assert.True(t, matchANB(2, 1, 5))
	assert.False(t, matchANB(2, 1, 4))
	assert.False(t, matchANB(3, 5, 2), "n must not be negative")
	assert.True(t, matchANB(-1, 3, 1))
	assert.False(t, matchANB(-1, 3, 4))
}

func TestParseChildrenCSS(t *testing.T) {
	t.Parallel()

	styles, err := ParseChildrenCSS(`
:first-child { font-weight: bold; color: #ff0000 }
:nth-child(even), :last-child { font-style: italic; padding: 0 1 }
`)
	require.NoError(t, err)
	require.Len(t, styles, 3)

	children := []ui.Renderable{
		components.NewText("a"),
		components.NewText("b"),
		components.NewText("c"),
	}
	resolved := components.Resolve(children, components.Group(styles...))
	theme := components.DefaultTheme()

	first := resolved[0].(*components.Text).ComputeStyle(theme)
	assert.True(t, first.GetBold())
	assert.Equal(t, lipgloss.Color("#ff0000"), first.GetForeground())
	assert.False(t, first.GetItalic())

	second := resolved[1].(*components.Text).ComputeStyle(theme)
	assert.True(t, second.GetItalic())
	assert.Equal(t, 1, second.GetPaddingLeft())
	assert.False(t, second.GetBold())

	third := resolved[2].(*components.Text).ComputeStyle(theme)
	assert.True(t, third.GetItalic())
}

func TestParseChildrenCSSEmpty(t *testing.T) {
	t.Parallel()

	styles, err := ParseChildrenCSS("")
	require.NoError(t, err)
	assert.Empty(t, styles)
}

func TestParseChildrenCSSCollectsErrors(t *testing.T) {
	t.Parallel()

	_, err := ParseChildrenCSS(`strong { color: blue; width: 0 }`)
	require.Error(t, err)

	errs := multierr.Errors(err)
	require.Len(t, errs, 3)
	assert.Contains(t, errs[0].Error(), "color")
	assert.Contains(t, errs[1].Error(), "width")
	assert.Contains(t, errs[2].Error(), "strong")
}

func TestApplyDeclaration(t *testing.T) {
	t.Parallel()

	var props components.StyleProps
	require.NoError(t, applyDeclaration(&props, "text-decoration", []string{"underline", "line-through"}))
	require.NoError(t, applyDeclaration(&props, "border-style", []string{"solid"}))
	require.NoError(t, applyDeclaration(&props, "text-align", []string{"right"}))
	require.NoError(t, applyDeclaration(&props, "margin", []string{"1", "2", "3", "4"}))
	require.NoError(t, applyDeclaration(&props, "font-weight", []string{"lighter"}))

	assert.True(t, *props.Underline)
	assert.True(t, *props.Strikethrough)
	assert.Equal(t, lipgloss.NormalBorder(), *props.Border)
	assert.Equal(t, lipgloss.Right, *props.Align)
	assert.Equal(t, components.CustomSpacing(1, 2, 3, 4), *props.Margin)
	assert.True(t, *props.Faint)

	assert.Error(t, applyDeclaration(&props, "padding", []string{"1", "2", "3"}))
	assert.Error(t, applyDeclaration(&props, "color", []string{"#fff", "#000"}))
	assert.Error(t, applyDeclaration(&props, "opacity", []string{"1"}))
	assert.Error(t, applyDeclaration(&props, "color", nil))
}
