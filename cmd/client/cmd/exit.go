package cmd

import (
	"fmt"
	"strconv"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var exitCmd = &cobra.Command{
	Use:   "exit <id>",
	Short: "Record the exit for a transit",
	Long: `Stamps the current checkpoint time as the exit of the given record.
A record whose exit is already stamped is left untouched and the command
fails.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid record id %q", args[0])
		}

		if err := app.RecordExit(cmd.Context(), id); err != nil {
			color.Red(app.Session().StatusMessage)
			return err
		}

		color.Green(app.Session().StatusMessage)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(exitCmd)
}
