package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/selectorui/internal/layout"
)

func newValidateCmd(root *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "validate <layout-file>",
		Short: "Check a layout file without rendering it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(cmd, root, args[0])
		},
	}
}

func runValidate(cmd *cobra.Command, root *rootFlags, path string) error {
	if err := validateLayoutPath(path); err != nil {
		return newCommandError("validate", "checking layout path", err, "Pass the path of an existing layout file.")
	}

	log, err := root.logger(cmd)
	if err != nil {
		return newCommandError("validate", "creating logger", err, "Report this issue.")
	}

	doc, err := layout.ParseFile(path)
	if err != nil {
		return newCommandError("validate", fmt.Sprintf("loading %s", path), err, "Fix the field named in the error and try again.")
	}

	// Building catches problems the schema cannot express.
	if _, err := layout.NewBuilder(log).Build(doc); err != nil {
		return newCommandError("validate", fmt.Sprintf("building %s", doc.Name), err, "Check the node named in the error.")
	}

	fmt.Fprintf(cmd.OutOrStdout(), "layout %s is valid\n", doc.Name)
	return nil
}
