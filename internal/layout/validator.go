package layout

import (
	"fmt"
	"reflect"
	"regexp"
	"strconv"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/alexisbeaulieu97/selectorui/internal/ui/components"
	layouterrors "github.com/alexisbeaulieu97/selectorui/pkg/errors"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate

	semverPattern   = regexp.MustCompile(`^\d+\.\d+(?:\.\d+)?(?:-[0-9A-Za-z-.]+)?(?:\+[0-9A-Za-z-.]+)?$`)
	hexColorPattern = regexp.MustCompile(`^#(?:[0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)

	nodeKinds = map[string]struct{}{
		KindText: {}, KindBadge: {}, KindDivider: {}, KindStack: {}, KindSelector: {}, KindRaw: {},
		KindHeader: {}, KindSpacer: {}, KindCard: {}, KindPanel: {}, KindAlert: {}, KindButton: {},
	}
	selectorKinds = map[string]struct{}{
		SelectAlways: {}, SelectFirst: {}, SelectNotFirst: {}, SelectLast: {}, SelectNotLast: {},
		SelectEven: {}, SelectOdd: {}, SelectOnly: {}, SelectNth: {}, SelectNotNth: {},
		SelectNthLast: {}, SelectNotNthLast: {}, SelectEvery: {},
	}
)

// validatorInstance configures and returns the shared validator used by the layout package.
func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("yaml"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})

		_ = v.RegisterValidation("semver", func(fl validator.FieldLevel) bool {
			return semverPattern.MatchString(fl.Field().String())
		})

		_ = v.RegisterValidation("node_kind", func(fl validator.FieldLevel) bool {
			_, ok := nodeKinds[fl.Field().String()]
			return ok
		})

		_ = v.RegisterValidation("selector_kind", func(fl validator.FieldLevel) bool {
			_, ok := selectorKinds[fl.Field().String()]
			return ok
		})

		_ = v.RegisterValidation("theme_name", func(fl validator.FieldLevel) bool {
			_, ok := components.ThemeByName(fl.Field().String())
			return ok
		})

		_ = v.RegisterValidation("term_color", func(fl validator.FieldLevel) bool {
			return isTermColor(fl.Field().String())
		})

		_ = v.RegisterValidation("spacing", func(fl validator.FieldLevel) bool {
			field := fl.Field()
			if field.Kind() != reflect.Slice {
				return false
			}
			switch field.Len() {
			case 1, 2, 4:
			default:
				return false
			}
			for i := 0; i < field.Len(); i++ {
				if field.Index(i).Int() < 0 {
					return false
				}
			}
			return true
		})

		validateInst = v
	})

	return validateInst
}

// isTermColor accepts #rgb and #rrggbb hex colours and ANSI indexes 0-255.
func isTermColor(value string) bool {
	if hexColorPattern.MatchString(value) {
		return true
	}
	n, err := strconv.Atoi(value)
	return err == nil && n >= 0 && n <= 255
}

// Validate performs schema and cross-field validation on a layout document.
func Validate(doc *Document) error {
	if doc == nil {
		return layouterrors.NewValidationError("layout", "layout is nil", nil)
	}

	if err := validatorInstance().Struct(doc); err != nil {
		return convertValidationError(err)
	}

	return validateNode(doc.Root, "root")
}

func validateNode(node Node, path string) error {
	switch node.Kind {
	case KindBadge, KindHeader, KindAlert, KindButton:
		if node.Text == "" {
			return layouterrors.NewValidationError(path+".text", node.Kind+" text is required", nil)
		}
	}

	if err := validateVariant(node, path); err != nil {
		return err
	}

	if (node.Active || node.Disabled) && node.Kind != KindButton {
		return layouterrors.NewValidationError(path, "active and disabled are only allowed on button nodes", nil)
	}

	if node.Footer != nil {
		if node.Kind != KindCard && node.Kind != KindPanel {
			return layouterrors.NewValidationError(path+".footer", "footer is only allowed on card and panel nodes", nil)
		}
		if err := validateNode(*node.Footer, path+".footer"); err != nil {
			return err
		}
	}

	if len(node.Children) > 0 && !hasChildren(node.Kind) {
		return layouterrors.NewValidationError(path+".children", fmt.Sprintf("%s nodes cannot have children", node.Kind), nil)
	}

	if len(node.ChildrenStyle) > 0 && node.Kind != KindSelector {
		return layouterrors.NewValidationError(path+".children_style", "children_style is only allowed on selector nodes", nil)
	}

	if node.ChildrenCSS != "" {
		if node.Kind != KindSelector {
			return layouterrors.NewValidationError(path+".children_css", "children_css is only allowed on selector nodes", nil)
		}
		if _, err := ParseChildrenCSS(node.ChildrenCSS); err != nil {
			return layouterrors.NewValidationError(path+".children_css", err.Error(), err)
		}
	}

	if !hasFrame(node.Kind) && (node.Border != "" || node.BorderColor != "") {
		return layouterrors.NewValidationError(path, "border and border_color are only allowed on selector, card and panel nodes; use style", nil)
	}
	if node.Kind != KindSelector && (len(node.Padding) > 0 || len(node.Margin) > 0) {
		return layouterrors.NewValidationError(path, "padding and margin are only allowed on selector nodes; use style", nil)
	}

	for i, rule := range node.ChildrenStyle {
		if err := validateRule(rule, fmt.Sprintf("%s.children_style[%d]", path, i)); err != nil {
			return err
		}
	}

	for i, child := range node.Children {
		if err := validateNode(child, fmt.Sprintf("%s.children[%d]", path, i)); err != nil {
			return err
		}
	}

	return nil
}

// validateVariant checks the variant against the set the node kind supports.
func validateVariant(node Node, path string) error {
	if node.Variant == "" {
		return nil
	}

	var ok bool
	switch node.Kind {
	case KindBadge:
		_, ok = badgeVariants[node.Variant]
	case KindAlert:
		_, ok = alertVariants[node.Variant]
	case KindButton:
		_, ok = buttonVariants[node.Variant]
	default:
		return layouterrors.NewValidationError(path+".variant", fmt.Sprintf("%s nodes do not take a variant", node.Kind), nil)
	}
	if !ok {
		return layouterrors.NewValidationError(path+".variant", fmt.Sprintf("%s nodes do not support variant %q", node.Kind, node.Variant), nil)
	}
	return nil
}

func validateRule(rule Rule, path string) error {
	hasSelect := rule.Select != ""
	hasGroup := len(rule.Group) > 0

	switch {
	case hasSelect && hasGroup:
		return layouterrors.NewValidationError(path, "rule must set either select or group, not both", nil)
	case !hasSelect && !hasGroup:
		return layouterrors.NewValidationError(path, "rule must set select or group", nil)
	}

	if hasGroup {
		if rule.Style != nil {
			return layouterrors.NewValidationError(path+".style", "group rules cannot carry a style", nil)
		}
		for i, child := range rule.Group {
			if err := validateRule(child, fmt.Sprintf("%s.group[%d]", path, i)); err != nil {
				return err
			}
		}
		return nil
	}

	if requiresN(rule.Select) {
		if rule.N == nil {
			return layouterrors.NewValidationError(path+".n", fmt.Sprintf("selector %q requires n", rule.Select), nil)
		}
		if *rule.N < 0 {
			return layouterrors.NewValidationError(path+".n", "n must not be negative", nil)
		}
	} else if rule.N != nil {
		return layouterrors.NewValidationError(path+".n", fmt.Sprintf("selector %q does not take n", rule.Select), nil)
	}

	if rule.Select == SelectEvery && rule.Step < 1 {
		return layouterrors.NewValidationError(path+".step", "every requires a positive step", nil)
	}

	return nil
}

func convertValidationError(err error) error {
	if err == nil {
		return nil
	}

	if ves, ok := err.(validator.ValidationErrors); ok {
		ve := ves[0]
		field := yamlishFieldName(ve)
		msg := fmt.Sprintf("%s failed validation for tag '%s'", field, ve.Tag())
		return layouterrors.NewValidationError(field, msg, err)
	}

	return layouterrors.NewValidationError("layout", err.Error(), err)
}

// yamlishFieldName drops the root struct name from the namespace, leaving
// the YAML path, e.g. root.children[1].kind.
func yamlishFieldName(fe validator.FieldError) string {
	ns := fe.Namespace()
	if idx := strings.Index(ns, "."); idx >= 0 {
		ns = ns[idx+1:]
	}
	return ns
}
