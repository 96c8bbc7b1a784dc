package main

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/selectorui/internal/layout"
	"github.com/alexisbeaulieu97/selectorui/internal/tui/preview"
)

const reloadsPerSecond = 4

func newPreviewCmd(root *rootFlags) *cobra.Command {
	var theme string

	cmd := &cobra.Command{
		Use:   "preview <layout-file>",
		Short: "Open an interactive preview of a layout file",
		Long:  "Open an interactive preview. Press r to reload the file, t to toggle the theme and q to quit.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPreview(cmd, root, args[0], theme)
		},
	}

	cmd.Flags().StringVar(&theme, "theme", "", "Initial theme: default or dark")

	return cmd
}

func runPreview(cmd *cobra.Command, root *rootFlags, path, theme string) error {
	if err := validateLayoutPath(path); err != nil {
		return newCommandError("preview", "checking layout path", err, "Pass the path of an existing layout file.")
	}

	log, err := root.logger(cmd)
	if err != nil {
		return newCommandError("preview", "creating logger", err, "Report this issue.")
	}

	m := preview.NewModel(preview.Options{
		Path:             path,
		Theme:            theme,
		Load:             layout.ParseFile,
		Builder:          layout.NewBuilder(log),
		Logger:           log,
		ReloadsPerSecond: reloadsPerSecond,
	})

	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		log.Error(err, "preview failed", "path", path)
		return fmt.Errorf("failed to run preview: %w", err)
	}
	return nil
}
