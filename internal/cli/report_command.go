package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

// newReportCommand creates the new-report command
func newReportCommand(root *RootCommand) *cobra.Command {
	var wellID, sectionID int64
	var date string

	cmd := &cobra.Command{
		Use:   "new-report",
		Short: "Create a daily report with derived report number and rig day",
		RunE: func(cmd *cobra.Command, args []string) error {
			reportDate, err := time.Parse(root.config.Display.DateFormat, date)
			if err != nil {
				return fmt.Errorf("invalid report date %q: %w", date, err)
			}

			report, notes, err := root.api.NewReport(cmd.Context(), wellID, sectionID, reportDate)
			if err != nil {
				return err
			}

			fmt.Printf("Created report %d for %s (report no. %d, rig day %d)\n",
				report.ID, report.ReportDate.Format(root.config.Display.DateFormat),
				report.ReportNumber, report.RigDay)
			for _, note := range notes {
				fmt.Printf("Note: %s\n", note)
			}
			return nil
		},
	}

	cmd.Flags().Int64Var(&wellID, "well", 0, "well ID")
	cmd.Flags().Int64Var(&sectionID, "section", 0, "section ID")
	cmd.Flags().StringVar(&date, "date", "", "report date (YYYY-MM-DD)")
	cmd.MarkFlagRequired("well")
	cmd.MarkFlagRequired("section")
	cmd.MarkFlagRequired("date")

	return cmd
}
