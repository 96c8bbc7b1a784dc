package layout

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	layouterrors "github.com/alexisbeaulieu97/selectorui/pkg/errors"
)

const sampleLayout = `version: "1.0"
name: services
theme: dark
root:
  kind: selector
  border: rounded
  padding: [0, 1]
  children_style:
    - select: first
      style:
        bold: true
    - group:
        - select: odd
          style:
            faint: true
        - select: nth_last
          n: 0
          style:
            foreground: "#ff0000"
  children:
    - kind: text
      text: alpha
    - kind: raw
      text: "-- note --"
    - kind: badge
      text: beta
      variant: success
    - kind: text
      text: gamma
`

func TestParse(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name     string
		contents string
		assert   func(t *testing.T, doc *Document, err error)
	}{
		{
			name:     "valid layout is parsed",
			contents: sampleLayout,
			assert: func(t *testing.T, doc *Document, err error) {
				require.NoError(t, err)
				require.NotNil(t, doc)
				require.Equal(t, "services", doc.Name)
				require.Equal(t, "dark", doc.Theme)
				require.Equal(t, KindSelector, doc.Root.Kind)
				require.Len(t, doc.Root.Children, 4)
				require.Len(t, doc.Root.ChildrenStyle, 2)
				require.Len(t, doc.Root.ChildrenStyle[1].Group, 2)
				require.NotNil(t, doc.Root.ChildrenStyle[1].Group[1].N)
				require.Equal(t, 0, *doc.Root.ChildrenStyle[1].Group[1].N)
			},
		},
		{
			name:     "invalid yaml returns parse error",
			contents: "version: [1, 0]\nname: broken\n",
			assert: func(t *testing.T, doc *Document, err error) {
				var parseErr *layouterrors.ParseError
				require.ErrorAs(t, err, &parseErr)
				require.Nil(t, doc)
				require.Equal(t, 1, parseErr.Line)
				require.Contains(t, parseErr.Message, "cannot unmarshal")
			},
		},
		{
			name:     "unknown keys are rejected",
			contents: "version: \"1.0\"\nname: typo\nroot:\n  kind: text\n  colour: red\n",
			assert: func(t *testing.T, doc *Document, err error) {
				var parseErr *layouterrors.ParseError
				require.ErrorAs(t, err, &parseErr)
				require.Equal(t, 5, parseErr.Line)
				require.Contains(t, parseErr.Message, "colour")
			},
		},
		{
			name:     "empty document returns parse error",
			contents: "",
			assert: func(t *testing.T, doc *Document, err error) {
				var parseErr *layouterrors.ParseError
				require.ErrorAs(t, err, &parseErr)
				require.Contains(t, parseErr.Message, "empty")
			},
		},
		{
			name:     "schema violations return validation error",
			contents: "version: beta\nname: bad\nroot:\n  kind: text\n",
			assert: func(t *testing.T, doc *Document, err error) {
				var validationErr *layouterrors.ValidationError
				require.ErrorAs(t, err, &validationErr)
				require.Equal(t, "version", validationErr.Field)
			},
		},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			doc, err := Parse([]byte(tc.contents), "layout.yaml")
			tc.assert(t, doc, err)
		})
	}
}

func TestParseFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "layout.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sampleLayout), 0o600))

	doc, err := ParseFile(path)
	require.NoError(t, err)
	require.Equal(t, "services", doc.Name)

	_, err = ParseFile(filepath.Join(dir, "missing.yaml"))
	var parseErr *layouterrors.ParseError
	require.ErrorAs(t, err, &parseErr)
	require.Equal(t, 0, parseErr.Line)
	require.Contains(t, err.Error(), "missing.yaml")
}

func TestExtractLine(t *testing.T) {
	t.Parallel()

	require.Equal(t, 0, extractLine(nil))
	require.Equal(t, 0, extractLine(os.ErrNotExist))
	require.Equal(t, 12, extractLine(&layouterrors.ParseError{Message: "yaml: line 12: did not find expected key"}))
}

func TestParseFileExampleLayout(t *testing.T) {
	t.Parallel()

	doc, err := ParseFile(filepath.Join("..", "..", "examples", "layouts", "services.yaml"))
	require.NoError(t, err)
	require.Equal(t, "services", doc.Name)

	_, err = NewBuilder(nil).Build(doc)
	require.NoError(t, err)
}
