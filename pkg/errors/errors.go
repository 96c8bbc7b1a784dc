// Package errors defines the typed errors returned while loading and building
// layout documents.
package errors

import (
	"fmt"
)

// ParseError represents an unreadable or syntactically invalid layout file.
type ParseError struct {
	Path    string
	Line    int
	Message string
	Err     error
}

// NewParseError constructs a ParseError. Line is zero when unknown.
func NewParseError(path string, line int, err error) error {
	message := ""
	if err != nil {
		message = err.Error()
	}
	return &ParseError{Path: path, Line: line, Message: message, Err: err}
}

func (e *ParseError) Error() string {
	if e == nil {
		return ""
	}
	if e.Line > 0 {
		return fmt.Sprintf("parse error: %s:%d: %s", e.Path, e.Line, e.Message)
	}
	return fmt.Sprintf("parse error: %s: %s", e.Path, e.Message)
}

// Unwrap exposes the underlying error.
func (e *ParseError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// ValidationError captures a layout schema violation.
type ValidationError struct {
	Field   string
	Message string
	Err     error
}

// NewValidationError constructs a ValidationError.
func NewValidationError(field, message string, err error) error {
	return &ValidationError{Field: field, Message: message, Err: err}
}

func (e *ValidationError) Error() string {
	if e == nil {
		return ""
	}
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// Unwrap exposes the underlying error.
func (e *ValidationError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// BuildError reports a node that could not be turned into a component.
type BuildError struct {
	Node string
	Err  error
}

// NewBuildError constructs a BuildError for the node at the given path.
func NewBuildError(node string, err error) error {
	return &BuildError{Node: node, Err: err}
}

func (e *BuildError) Error() string {
	if e == nil {
		return ""
	}
	if e.Node != "" {
		return fmt.Sprintf("build error at %s: %v", e.Node, e.Err)
	}
	return fmt.Sprintf("build error: %v", e.Err)
}

// Unwrap exposes the root error.
func (e *BuildError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}
