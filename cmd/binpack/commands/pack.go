package commands

import (
	"github.com/spf13/cobra"
)

func (c *CLI) newPackCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "pack [project]",
		Short: "Package a project's build output into <project>.zip",
		Long: "Package collects the .dll, .xml and .config files from the project's " +
			"bin/Debug directory and zips them into <project>.zip next to them. " +
			"The project argument is a project file or a directory containing exactly one.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var path string
			if len(args) > 0 {
				path = args[0]
			}
			return c.app.Pack(cmd.Context(), path)
		},
	}
}
