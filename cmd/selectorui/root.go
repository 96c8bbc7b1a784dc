package main

import (
	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/selectorui/internal/logger"
)

type rootFlags struct {
	verbose bool
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "selectorui",
		Short:         "Render terminal layouts with position-aware child styles",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable verbose logging")

	cmd.AddCommand(newRenderCmd(flags))
	cmd.AddCommand(newValidateCmd(flags))
	cmd.AddCommand(newPreviewCmd(flags))
	cmd.AddCommand(newVersionCmd())

	return cmd
}

// logger builds the command logger on stderr. Only warnings are shown
// unless --verbose is set.
func (f *rootFlags) logger(cmd *cobra.Command) (*logger.Logger, error) {
	level := "warn"
	if f.verbose {
		level = "debug"
	}
	return logger.New(logger.Options{
		Level:         level,
		HumanReadable: true,
		Writer:        cmd.ErrOrStderr(),
		Component:     cmd.Name(),
	})
}
