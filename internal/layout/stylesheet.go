package layout

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	parse "github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
	"go.uber.org/multierr"

	"github.com/alexisbeaulieu97/selectorui/internal/ui/components"
)

// ParseChildrenCSS turns a stylesheet of child pseudo-class selectors into
// child styles, one per selector in source order:
//
//	:first-child, :last-child { font-weight: bold }
//	:nth-child(2n+1) { color: #888888 }
//	:not(:nth-last-child(1)) { text-decoration: underline }
//
// Positions are 1-based as in CSS. Every problem in the sheet is reported
// in the returned error.
func ParseChildrenCSS(source string) ([]components.ChildStyle, error) {
	input := parse.NewInput(bytes.NewReader([]byte(source)))
	parser := css.NewParser(input, false)

	var (
		styles []components.ChildStyle
		errs   error
	)

	for {
		gt, _, data := parser.Next()

		switch gt {
		case css.ErrorGrammar:
			if err := parser.Err(); err != nil && !errors.Is(err, io.EOF) {
				errs = multierr.Append(errs, fmt.Errorf("css: %w", err))
			}
			return styles, errs

		case css.BeginRulesetGrammar:
			selectors := splitSelectors(data, parser.Values())
			props, err := parseDeclarations(parser)
			errs = multierr.Append(errs, err)

			style := props.Func()
			for _, selector := range selectors {
				predicate, err := parseChildSelector(selector)
				if err != nil {
					errs = multierr.Append(errs, err)
					continue
				}
				styles = append(styles, components.Select(predicate)(style))
			}

		case css.BeginAtRuleGrammar:
			errs = multierr.Append(errs, fmt.Errorf("css: %s is not supported", data))
			skipBlock(parser)

		case css.AtRuleGrammar:
			errs = multierr.Append(errs, fmt.Errorf("css: %s is not supported", data))

		case css.DeclarationGrammar, css.CustomPropertyGrammar:
			errs = multierr.Append(errs, fmt.Errorf("css: declaration %q outside a ruleset", data))
		}
	}
}

// splitSelectors rebuilds the selector prelude and splits it on commas.
func splitSelectors(data []byte, values []css.Token) []string {
	var sb strings.Builder
	sb.Write(data)
	for _, v := range values {
		sb.Write(v.Data)
	}

	var selectors []string
	for _, s := range strings.Split(sb.String(), ",") {
		if s = strings.TrimSpace(s); s != "" {
			selectors = append(selectors, s)
		}
	}
	return selectors
}

func skipBlock(parser *css.Parser) {
	depth := 1
	for depth > 0 {
		gt, _, _ := parser.Next()
		switch gt {
		case css.ErrorGrammar:
			return
		case css.BeginAtRuleGrammar, css.BeginRulesetGrammar:
			depth++
		case css.EndAtRuleGrammar, css.EndRulesetGrammar:
			depth--
		}
	}
}

func parseDeclarations(parser *css.Parser) (components.StyleProps, error) {
	var (
		props components.StyleProps
		errs  error
	)

	for {
		gt, _, data := parser.Next()

		switch gt {
		case css.ErrorGrammar, css.EndRulesetGrammar:
			return props, errs

		case css.DeclarationGrammar:
			name := strings.ToLower(string(data))
			if err := applyDeclaration(&props, name, words(parser.Values())); err != nil {
				errs = multierr.Append(errs, fmt.Errorf("css: %s: %w", name, err))
			}

		case css.CustomPropertyGrammar:
			errs = multierr.Append(errs, fmt.Errorf("css: custom property %s is not supported", data))
		}
	}
}

func words(tokens []css.Token) []string {
	out := make([]string, 0, len(tokens))
	for _, t := range tokens {
		if t.TokenType == css.WhitespaceToken {
			continue
		}
		out = append(out, strings.ToLower(string(t.Data)))
	}
	return out
}

var cssBorders = map[string]string{
	"none":    "none",
	"hidden":  "none",
	"solid":   "normal",
	"normal":  "normal",
	"rounded": "rounded",
	"thick":   "thick",
	"double":  "double",
}

func applyDeclaration(props *components.StyleProps, name string, values []string) error {
	if len(values) == 0 {
		return fmt.Errorf("missing value")
	}

	single := func() (string, error) {
		if len(values) != 1 {
			return "", fmt.Errorf("expects one value, got %d", len(values))
		}
		return values[0], nil
	}
	color := func() (lipgloss.TerminalColor, error) {
		value, err := single()
		if err != nil {
			return nil, err
		}
		if !isTermColor(value) {
			return nil, fmt.Errorf("invalid colour %q", value)
		}
		return lipgloss.Color(value), nil
	}

	var err error
	switch name {
	case "color":
		props.Foreground, err = color()
	case "background", "background-color":
		props.Background, err = color()
	case "border-color":
		props.BorderForeground, err = color()

	case "font-weight":
		var value string
		if value, err = single(); err != nil {
			return err
		}
		switch value {
		case "bold", "bolder":
			props.Bold = components.Ptr(true)
		case "lighter":
			props.Faint = components.Ptr(true)
		case "normal":
			props.Bold = components.Ptr(false)
			props.Faint = components.Ptr(false)
		default:
			return fmt.Errorf("unsupported value %q", value)
		}

	case "font-style":
		var value string
		if value, err = single(); err != nil {
			return err
		}
		switch value {
		case "italic", "oblique":
			props.Italic = components.Ptr(true)
		case "normal":
			props.Italic = components.Ptr(false)
		default:
			return fmt.Errorf("unsupported value %q", value)
		}

	case "text-decoration", "text-decoration-line":
		for _, value := range values {
			switch value {
			case "underline":
				props.Underline = components.Ptr(true)
			case "line-through":
				props.Strikethrough = components.Ptr(true)
			case "none":
				props.Underline = components.Ptr(false)
				props.Strikethrough = components.Ptr(false)
			default:
				return fmt.Errorf("unsupported value %q", value)
			}
		}

	case "padding", "margin":
		var spacing components.Spacing
		if spacing, err = parseSpacing(values); err != nil {
			return err
		}
		if name == "padding" {
			props.Padding = components.Ptr(spacing)
		} else {
			props.Margin = components.Ptr(spacing)
		}

	case "width":
		var value string
		if value, err = single(); err != nil {
			return err
		}
		width, convErr := strconv.Atoi(value)
		if convErr != nil || width < 1 {
			return fmt.Errorf("expects a positive number of cells, got %q", value)
		}
		props.Width = components.Ptr(width)

	case "text-align":
		var value string
		if value, err = single(); err != nil {
			return err
		}
		align, ok := alignments[value]
		if !ok {
			return fmt.Errorf("unsupported value %q", value)
		}
		props.Align = components.Ptr(align)

	case "border", "border-style":
		var value string
		if value, err = single(); err != nil {
			return err
		}
		named, ok := cssBorders[value]
		if !ok {
			return fmt.Errorf("unsupported value %q", value)
		}
		props.Border = components.Ptr(borders[named])

	default:
		return fmt.Errorf("unsupported property")
	}
	return err
}

func parseSpacing(values []string) (components.Spacing, error) {
	switch len(values) {
	case 1, 2, 4:
	default:
		return components.Spacing{}, fmt.Errorf("expects 1, 2 or 4 values, got %d", len(values))
	}
	ints := make([]int, len(values))
	for i, value := range values {
		n, err := strconv.Atoi(value)
		if err != nil || n < 0 {
			return components.Spacing{}, fmt.Errorf("expects non-negative cell counts, got %q", value)
		}
		ints[i] = n
	}
	return components.SpacingFromValues(ints...), nil
}

// parseChildSelector maps one selector onto a position predicate.
func parseChildSelector(selector string) (components.Predicate, error) {
	s := strings.ToLower(strings.Join(strings.Fields(selector), ""))

	if s == "*" {
		return func(int, int) bool { return true }, nil
	}
	if compound(s) {
		return nil, fmt.Errorf("css: %q: compound selectors are not supported", selector)
	}

	if inner, ok := strings.CutPrefix(s, ":not("); ok {
		inner, ok = strings.CutSuffix(inner, ")")
		if !ok {
			return nil, fmt.Errorf("css: unbalanced selector %q", selector)
		}
		if compound(inner) {
			return nil, fmt.Errorf("css: %q: compound selectors are not supported", selector)
		}
		predicate, err := parsePseudoClass(inner, selector)
		if err != nil {
			return nil, err
		}
		return func(index, length int) bool { return !predicate(index, length) }, nil
	}

	return parsePseudoClass(s, selector)
}

// compound reports whether s chains several simple selectors, such as
// :nth-child(n+2):not(:last-child), by looking for a second pseudo-class
// outside parentheses.
func compound(s string) bool {
	depth := 0
	for i, r := range s {
		switch r {
		case '(':
			depth++
		case ')':
			depth--
		case ':':
			if depth == 0 && i > 0 {
				return true
			}
		}
	}
	return false
}

func parsePseudoClass(s, selector string) (components.Predicate, error) {
	switch s {
	case ":first-child":
		return func(index, _ int) bool { return index == 0 }, nil
	case ":last-child":
		return func(index, length int) bool { return index == length-1 }, nil
	case ":only-child":
		return func(_, length int) bool { return length == 1 }, nil
	}

	if arg, ok := functionArg(s, ":nth-child("); ok {
		a, b, err := parseANB(arg)
		if err != nil {
			return nil, fmt.Errorf("css: %q: %w", selector, err)
		}
		return func(index, _ int) bool { return matchANB(a, b, index+1) }, nil
	}

	if arg, ok := functionArg(s, ":nth-last-child("); ok {
		a, b, err := parseANB(arg)
		if err != nil {
			return nil, fmt.Errorf("css: %q: %w", selector, err)
		}
		return func(index, length int) bool { return matchANB(a, b, length-index) }, nil
	}

	return nil, fmt.Errorf("css: unsupported selector %q", selector)
}

func functionArg(s, prefix string) (string, bool) {
	rest, ok := strings.CutPrefix(s, prefix)
	if !ok {
		return "", false
	}
	return strings.CutSuffix(rest, ")")
}

// parseANB parses the An+B microsyntax, including odd and even.
func parseANB(arg string) (a, b int, err error) {
	switch arg {
	case "odd":
		return 2, 1, nil
	case "even":
		return 2, 0, nil
	case "":
		return 0, 0, fmt.Errorf("missing argument")
	}

	idx := strings.IndexByte(arg, 'n')
	if idx < 0 {
		b, err = strconv.Atoi(arg)
		if err != nil {
			return 0, 0, fmt.Errorf("invalid position %q", arg)
		}
		return 0, b, nil
	}

	switch coefficient := arg[:idx]; coefficient {
	case "", "+":
		a = 1
	case "-":
		a = -1
	default:
		if a, err = strconv.Atoi(coefficient); err != nil {
			return 0, 0, fmt.Errorf("invalid step %q", coefficient)
		}
	}

	offset := arg[idx+1:]
	if offset == "" {
		return a, 0, nil
	}
	if offset[0] != '+' && offset[0] != '-' {
		return 0, 0, fmt.Errorf("invalid offset %q", offset)
	}
	if b, err = strconv.Atoi(offset); err != nil {
		return 0, 0, fmt.Errorf("invalid offset %q", offset)
	}
	return a, b, nil
}

// matchANB reports whether the 1-based position equals a*n+b for some n >= 0.
func matchANB(a, b, position int) bool {
	if a == 0 {
		return position == b
	}
	diff := position - b
	return diff%a == 0 && diff/a >= 0
}
