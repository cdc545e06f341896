package commands

import (
	"github.com/spf13/cobra"
)

func (c *CLI) newStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show the last recorded outcome of each phase",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			status, err := c.app.Status(cmd.Context(), runOptions(cmd))
			if err != nil {
				return err
			}
			status.Render(cmd.OutOrStdout())
			return nil
		},
	}
}
