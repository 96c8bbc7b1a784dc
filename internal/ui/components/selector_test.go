package components

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/selectorui/internal/ui"
)

type styled interface {
	ComputeStyle(Theme) lipgloss.Style
}

func styleOf(t *testing.T, el Element) lipgloss.Style {
	t.Helper()
	s, ok := el.(styled)
	require.True(t, ok, "element %T does not expose ComputeStyle", el)
	return s.ComputeStyle(DefaultTheme())
}

func foreground(color string) StyleFunc {
	return StyleProps{Foreground: lipgloss.Color(color)}.Func()
}

func TestSelectorWithoutChildrenStyleLeavesChildrenUnchanged(t *testing.T) {
	t.Parallel()

	children := []ui.Renderable{
		NewText("a").WithAppliers(foreground("#111111")),
		NewText("b"),
		NewText("c").WithAppliers(Bold(true)),
	}

	resolved := NewSelector(children...).ResolvedChildren()
	require.Len(t, resolved, 3)

	for i, el := range resolved {
		original := children[i].(*Text).ComputeStyle(DefaultTheme())
		got := styleOf(t, el)
		assert.Equal(t, original.GetForeground(), got.GetForeground())
		assert.Equal(t, original.GetBold(), got.GetBold())
		assert.Equal(t, original.Render("x"), got.Render("x"))
	}
}

func TestSelectorSingleChildIsFirstAndLast(t *testing.T) {
	t.Parallel()

	a := StyleProps{Foreground: lipgloss.Color("#aa0000"), Bold: Ptr(true)}.Func()
	b := StyleProps{Foreground: lipgloss.Color("#0000bb")}.Func()

	sel := NewSelector(NewText("only")).WithChildrenStyle(FirstChild(a), LastChild(b))
	resolved := sel.ResolvedChildren()
	require.Len(t, resolved, 1)

	style := styleOf(t, resolved[0])
	assert.Equal(t, lipgloss.Color("#0000bb"), style.GetForeground(), "later style wins on conflicting keys")
	assert.True(t, style.GetBold(), "earlier style keeps its non-conflicting keys")
}

func TestSelectorLastChildMarksOnlyFinalIndex(t *testing.T) {
	t.Parallel()

	children := make([]ui.Renderable, 4)
	for i := range children {
		children[i] = NewText("row")
	}

	resolved := NewSelector(children...).WithChildrenStyle(LastChild(Bold(true))).ResolvedChildren()
	for i, el := range resolved {
		assert.Equal(t, i == len(children)-1, styleOf(t, el).GetBold(), "index %d", i)
	}
}

func TestSelectorNthChildOverFiveChildren(t *testing.T) {
	t.Parallel()

	children := make([]ui.Renderable, 5)
	for i := range children {
		children[i] = NewText("row")
	}

	resolved := Resolve(children, Group(NthChild(2, Bold(true)), NthLastChild(0, Faint(true))))
	for i, el := range resolved {
		style := styleOf(t, el)
		assert.Equal(t, i == 2, style.GetBold(), "bold at index %d", i)
		assert.Equal(t, i == 4, style.GetFaint(), "faint at index %d", i)
	}
}

func TestSelectorCountsOnlyValidChildren(t *testing.T) {
	t.Parallel()

	var missing *Text
	children := []ui.Renderable{
		ui.Raw("   "),
		NewText("first"),
		nil,
		NewBadge("second"),
		missing,
		ui.Raw("loose text"),
		NewText("third"),
	}

	var lengths []int
	spy := Dynamic(func(index, length int) StyleFunc {
		lengths = append(lengths, length)
		return nil
	})

	resolved := NewSelector(children...).WithChildrenStyle(spy, LastChild(Bold(true)), FirstChild(Faint(true))).ResolvedChildren()
	require.Len(t, resolved, 3)
	assert.Equal(t, []int{3, 3, 3}, lengths)

	assert.True(t, styleOf(t, resolved[0]).GetFaint())
	assert.False(t, styleOf(t, resolved[1]).GetBold())
	assert.True(t, styleOf(t, resolved[2]).GetBold())
	assert.Equal(t, "third", resolved[2].(*Text).Content())
}

func TestSelectorDoesNotMutateChildren(t *testing.T) {
	t.Parallel()

	child := NewText("row")
	sel := NewSelector(child).WithChildrenStyle(Static(Bold(true)))

	first := sel.View()
	second := sel.View()

	assert.Equal(t, first, second)
	assert.Empty(t, child.ChildStyles())
	assert.False(t, child.ComputeStyle(DefaultTheme()).GetBold())
}

func TestSelectorRendersOnlyValidChildren(t *testing.T) {
	t.Parallel()

	view := NewSelector(NewText("kept"), ui.Raw("dropped"), nil).View()

	assert.Contains(t, view, "kept")
	assert.NotContains(t, view, "dropped")
}

func TestSelectorForwardsContainerProperties(t *testing.T) {
	t.Parallel()

	sel := NewSelector(NewText("one"), NewText("two")).
		WithBorder(lipgloss.RoundedBorder()).
		WithPadding(SymmetricSpacing(0, 1)).
		WithDirection(DirectionHorizontal).
		WithGap(2)

	view := sel.View()
	assert.Contains(t, view, "╭")
	assert.Contains(t, view, "one  two")
	assert.Equal(t, SymmetricSpacing(0, 1), sel.Frame().Padding())
	assert.Empty(t, sel.Frame().Children(), "frame keeps no children between renders")
}

func TestSelectorPropagatesResolverPanics(t *testing.T) {
	t.Parallel()

	sel := NewSelector(NewText("boom")).WithChildrenStyle(Dynamic(func(int, int) StyleFunc {
		panic("resolver failed")
	}))

	assert.PanicsWithValue(t, "resolver failed", func() { _ = sel.View() })
}

func TestNestedSelectorsStyleIndependently(t *testing.T) {
	t.Parallel()

	inner := NewSelector(NewText("a"), NewText("b")).WithChildrenStyle(LastChild(Bold(true)))
	outer := NewSelector(NewText("title"), inner).WithChildrenStyle(NotFirstChild(Faint(true)))

	resolved := outer.ResolvedChildren()
	require.Len(t, resolved, 2)

	restyledInner, ok := resolved[1].(*Selector)
	require.True(t, ok)
	assert.Len(t, restyledInner.Frame().ChildStyles(), 1)
	assert.Empty(t, inner.Frame().ChildStyles())

	innerChildren := restyledInner.ResolvedChildren()
	require.Len(t, innerChildren, 2)
	assert.True(t, styleOf(t, innerChildren[1]).GetBold())
	assert.False(t, styleOf(t, innerChildren[0]).GetBold())
}

func TestSelectorEmpty(t *testing.T) {
	t.Parallel()

	sel := NewSelector()
	assert.Empty(t, sel.ResolvedChildren())
	assert.Equal(t, "", strings.TrimSpace(sel.View()))
}

func TestSelectorStylesBadgesAfterVariant(t *testing.T) {
	t.Parallel()

	badge := SuccessBadge("ok")
	resolved := Resolve([]ui.Renderable{badge}, Static(foreground("#123456")))

	style := styleOf(t, resolved[0])
	assert.Equal(t, lipgloss.Color("#123456"), style.GetForeground())
	assert.Equal(t, DefaultTheme().Palette.Success.Base, style.GetBackground())
}
