package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

func (c *CLI) newInfoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info [project]",
		Short: "Show the manifest of the last packaging run",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var path string
			if len(args) > 0 {
				path = args[0]
			}

			info, err := c.app.Info(cmd.Context(), path)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if info == nil {
				_, _ = fmt.Fprintln(out, "no package recorded")
				return nil
			}

			_, _ = fmt.Fprintf(out, "Project:  %s\n", info.ProjectName)
			_, _ = fmt.Fprintf(out, "Archive:  %s\n", info.ArchivePath)
			_, _ = fmt.Fprintf(out, "Files:    %d\n", info.FileCount)
			_, _ = fmt.Fprintf(out, "Hash:     %s\n", info.ContentHash)
			_, _ = fmt.Fprintf(out, "Created:  %s\n", info.CreatedAt.Format(time.RFC3339))
			return nil
		},
	}
}
