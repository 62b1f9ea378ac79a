package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var refreshCmd = &cobra.Command{
	Use:   "refresh",
	Short: "Reload the registry from the server",
	Long: `Fetches the full registry again and clears any search term or date
bounds, so subsequent commands see the complete list.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		if err := app.FetchAll(cmd.Context()); err != nil {
			color.Red(app.Session().StatusMessage)
			return err
		}

		color.Green(fmt.Sprintf("Registry reloaded: %d records", len(app.Displayed())))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(refreshCmd)
}
