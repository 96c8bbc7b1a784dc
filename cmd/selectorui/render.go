package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/selectorui/internal/layout"
)

type renderOptions struct {
	width int
	theme string
}

func newRenderCmd(root *rootFlags) *cobra.Command {
	opts := &renderOptions{}

	cmd := &cobra.Command{
		Use:   "render <layout-file>",
		Short: "Render a layout file to stdout",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(cmd, root, args[0], opts)
		},
	}

	cmd.Flags().IntVar(&opts.width, "width", 0, "Maximum render width (defaults to the layout width, then the terminal width)")
	cmd.Flags().StringVar(&opts.theme, "theme", "", "Theme override: default or dark")

	return cmd
}

func runRender(cmd *cobra.Command, root *rootFlags, path string, opts *renderOptions) error {
	if err := validateLayoutPath(path); err != nil {
		return newCommandError("render", "checking layout path", err, "Pass the path of an existing layout file.")
	}

	log, err := root.logger(cmd)
	if err != nil {
		return newCommandError("render", "creating logger", err, "Report this issue.")
	}

	doc, err := layout.ParseFile(path)
	if err != nil {
		return newCommandError("render", fmt.Sprintf("loading %s", path), err, "Run 'selectorui validate' on the file for details.")
	}

	width := opts.width
	if width <= 0 && doc.Width == 0 {
		width = terminalWidth(cmd.OutOrStdout())
	}

	ctx, err := layout.Context(doc, opts.theme, width)
	if err != nil {
		return newCommandError("render", "selecting theme", err, "Use --theme default or --theme dark.")
	}

	out, err := layout.NewBuilder(log).Render(doc, ctx)
	if err != nil {
		return newCommandError("render", fmt.Sprintf("building %s", doc.Name), err, "Check the node named in the error.")
	}

	log.Debug("rendered layout", "layout", doc.Name, "theme", ctx.Theme.Name, "width", ctx.Constraints.MaxWidth)
	fmt.Fprintln(cmd.OutOrStdout(), out)
	return nil
}
