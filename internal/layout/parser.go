package layout

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"regexp"

	"gopkg.in/yaml.v3"

	layouterrors "github.com/alexisbeaulieu97/selectorui/pkg/errors"
)

var yamlLineRegex = regexp.MustCompile(`line (\d+)`)

// ParseFile loads a layout file from disk, validates it, and returns the document.
func ParseFile(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, layouterrors.NewParseError(path, 0, err)
	}
	return Parse(data, path)
}

// Parse decodes and validates a layout document. Unknown keys are rejected.
// The path is only used in error messages.
func Parse(data []byte, path string) (*Document, error) {
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)

	var doc Document
	if err := decoder.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, layouterrors.NewParseError(path, 0, fmt.Errorf("layout is empty"))
		}
		return nil, layouterrors.NewParseError(path, extractLine(err), err)
	}

	if err := Validate(&doc); err != nil {
		return nil, err
	}

	return &doc, nil
}

func extractLine(err error) int {
	if err == nil {
		return 0
	}

	matches := yamlLineRegex.FindStringSubmatch(err.Error())
	if len(matches) != 2 {
		return 0
	}

	var line int
	_, scanErr := fmt.Sscanf(matches[1], "%d", &line)
	if scanErr != nil {
		return 0
	}

	return line
}
