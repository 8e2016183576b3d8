package main

import (
	"fmt"

	"github.com/mark3labs/tripwise/internal/trip"
	"github.com/spf13/cobra"
)

var durationCmd = &cobra.Command{
	Use:   "duration <start-date> <end-date>",
	Short: "Print the number of days between two YYYY-MM-DD dates",
	Long: `Print the number of days between two YYYY-MM-DD dates.

Partial days round up. An end date before the start date gives a negative
count.`,
	Args: cobra.ExactArgs(2),
	RunE: runDuration,
}

func runDuration(cmd *cobra.Command, args []string) error {
	days, err := trip.DurationDays(args[0], args[1])
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), days)
	return err
}
