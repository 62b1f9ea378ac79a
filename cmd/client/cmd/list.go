package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"gatepost/internal/domain/transit"
)

var (
	listSearch string
	listFrom   string
	listTo     string
	listFormat string
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List transit records, newest first",
	Long: `Fetches the registry and prints it newest first. The --search term
matches case-insensitively against name, plate number, unit, person type,
permit giver and vehicle model; --from/--to bound the record date
inclusively.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		if err := app.FetchAll(cmd.Context()); err != nil {
			color.Red(app.Session().StatusMessage)
			return err
		}

		app.Search(listSearch)
		app.SetDateRange(listFrom, listTo)

		records := app.Displayed()
		switch listFormat {
		case "json":
			return printRecordsJSON(records)
		default:
			return printRecordsTable(records)
		}
	},
}

func printRecordsTable(records []transit.Record) error {
	if len(records) == 0 {
		fmt.Println("No records found")
		return nil
	}

	fmt.Printf("Records: %d\n\n", len(records))

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "NO.\tID\tNAME\tCAR MODEL\tCAR NUMBER\tUNIT\tTYPE\tPERMIT GIVER\tENTRY\tEXIT\tDATE\tNOTES")
	for i, rec := range records {
		fmt.Fprintf(w, "%d\t%d\t%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			i+1, rec.ID,
			orDash(rec.PersonName), orDash(rec.CarModel), orDash(rec.CarNumber),
			orDash(rec.Unit), orDash(rec.PersonType), orDash(rec.PermitGiver),
			transit.FormatInstant(rec.EntryTime), transit.FormatInstant(rec.ExitTime),
			orDash(rec.Date), orDash(rec.Notes),
		)
	}
	return w.Flush()
}

func printRecordsJSON(records []transit.Record) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(records)
}

func orDash(s string) string {
	if s == "" {
		return transit.Placeholder
	}
	return s
}

func init() {
	listCmd.Flags().StringVar(&listSearch, "search", "", "search term across the six text fields")
	listCmd.Flags().StringVar(&listFrom, "from", "", "start of the date range (YYYY-MM-DD, inclusive)")
	listCmd.Flags().StringVar(&listTo, "to", "", "end of the date range (YYYY-MM-DD, inclusive)")
	listCmd.Flags().StringVar(&listFormat, "format", "table", "output format: table or json")

	rootCmd.AddCommand(listCmd)
}
