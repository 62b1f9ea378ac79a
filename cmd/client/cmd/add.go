package cmd

import (
	"fmt"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"gatepost/internal/domain/transit"
)

var (
	addPersonName  string
	addCarModel    string
	addCarNumber   string
	addUnit        string
	addPersonType  string
	addPermitGiver string
	addNotes       string
	addEntry       string
	addExit        string
	addDate        string
)

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Register a new transit",
	Long: `Registers an entry event. All fields are optional: a missing entry
time defaults to the current checkpoint time and a missing date to that
day. The exit time is normally left for a later "gatepost exit".`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		draft := transit.Draft{
			PersonName:  addPersonName,
			CarModel:    addCarModel,
			CarNumber:   addCarNumber,
			Unit:        addUnit,
			PersonType:  addPersonType,
			PermitGiver: addPermitGiver,
			Notes:       addNotes,
			Date:        addDate,
		}

		if addEntry != "" {
			t, err := parseInstant(addEntry)
			if err != nil {
				return fmt.Errorf("invalid --entry value: %w", err)
			}
			draft.EntryTime = &t
		}
		if addExit != "" {
			t, err := parseInstant(addExit)
			if err != nil {
				return fmt.Errorf("invalid --exit value: %w", err)
			}
			draft.ExitTime = &t
		}

		app.Session().Draft = draft
		if err := app.Submit(cmd.Context()); err != nil {
			color.Red(app.Session().StatusMessage)
			return err
		}

		color.Green(app.Session().StatusMessage)
		return nil
	},
}

// parseInstant accepts RFC3339 or the shorter datetime-local shape.
func parseInstant(value string) (time.Time, error) {
	for _, layout := range []string{time.RFC3339, "2006-01-02T15:04"} {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized time %q, want RFC3339 or YYYY-MM-DDTHH:MM", value)
}

func init() {
	addCmd.Flags().StringVar(&addPersonName, "name", "", "person name")
	addCmd.Flags().StringVar(&addCarModel, "car-model", "", "vehicle model")
	addCmd.Flags().StringVar(&addCarNumber, "car-number", "", "plate number")
	addCmd.Flags().StringVar(&addUnit, "unit", "", "unit or battalion")
	addCmd.Flags().StringVar(&addPersonType, "person-type", "", "person type (soldier, guest, worker, ...)")
	addCmd.Flags().StringVar(&addPermitGiver, "permit-giver", "", "who authorized the transit")
	addCmd.Flags().StringVar(&addNotes, "notes", "", "free-form notes")
	addCmd.Flags().StringVar(&addEntry, "entry", "", "manual entry time (optional)")
	addCmd.Flags().StringVar(&addExit, "exit", "", "manual exit time (optional)")
	addCmd.Flags().StringVar(&addDate, "date", "", "record-keeping day YYYY-MM-DD (optional)")

	rootCmd.AddCommand(addCmd)
}
