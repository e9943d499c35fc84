package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/retrial/internal/app"
)

func (c *CLI) newShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print the saved baseline",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			configPath, _ := cmd.Flags().GetString("config")
			format, _ := cmd.Flags().GetString("format")

			return c.app.Show(cmd.Context(), app.ShowOptions{
				ConfigPath: configPath,
				Format:     format,
			}, cmd.OutOrStdout())
		},
	}
	cmd.Flags().StringP("format", "f", app.FormatText, "Output format: text or json")
	return cmd
}
