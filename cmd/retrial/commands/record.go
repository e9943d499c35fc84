package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/retrial/internal/app"
)

func (c *CLI) newRecordCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "record",
		Short: "Record the checksums of all live dependencies as the new baseline",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			configPath, _ := cmd.Flags().GetString("config")
			jsonLogs, _ := cmd.Flags().GetBool("json")

			return c.app.Record(cmd.Context(), app.RecordOptions{
				ConfigPath: configPath,
				JSON:       jsonLogs,
			})
		},
	}
	cmd.Flags().Bool("json", false, "Write logs as JSON")
	return cmd
}
