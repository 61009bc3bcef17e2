package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/binpack/internal/app"
)

func (c *CLI) newWatchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "watch [project]",
		Short: "Repackage whenever the build output changes",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var path string
			if len(args) > 0 {
				path = args[0]
			}
			debounce, _ := cmd.Flags().GetDuration("debounce")

			return c.app.Watch(cmd.Context(), path, app.WatchOptions{
				Debounce: debounce,
			})
		},
	}
	cmd.Flags().Duration("debounce", app.DefaultDebounce, "Quiet window before repacking after a change")
	return cmd
}
