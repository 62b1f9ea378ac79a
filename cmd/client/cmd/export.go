package cmd

import (
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var (
	exportSearch string
	exportFrom   string
	exportTo     string
	exportOut    string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the displayed records as an xlsx workbook",
	Long: `Fetches the registry, applies the same --search/--from/--to narrowing
as "gatepost list", and writes the result to an xlsx workbook named after
the active date bounds and today's date.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		if err := app.FetchAll(cmd.Context()); err != nil {
			color.Red(app.Session().StatusMessage)
			return err
		}

		app.Search(exportSearch)
		app.SetDateRange(exportFrom, exportTo)

		if exportOut != "" {
			cfg.ExportDir = exportOut
		}

		if _, err := app.ExportCurrent(); err != nil {
			color.Red(app.Session().StatusMessage)
			return err
		}

		color.Green(app.Session().StatusMessage)
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVar(&exportSearch, "search", "", "search term across the six text fields")
	exportCmd.Flags().StringVar(&exportFrom, "from", "", "start of the date range (YYYY-MM-DD, inclusive)")
	exportCmd.Flags().StringVar(&exportTo, "to", "", "end of the date range (YYYY-MM-DD, inclusive)")
	exportCmd.Flags().StringVar(&exportOut, "out", "", "directory for the workbook (defaults to EXPORT_DIR)")

	rootCmd.AddCommand(exportCmd)
}
