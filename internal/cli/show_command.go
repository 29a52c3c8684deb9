package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"rigreport/internal/domain"
)

// newShowCommand creates the show command
func newShowCommand(root *RootCommand) *cobra.Command {
	var reportID int64

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print a report's header, time logs, and totals",
		RunE: func(cmd *cobra.Command, args []string) error {
			report, err := root.api.LoadReport(cmd.Context(), reportID)
			if err != nil {
				return err
			}

			fmt.Printf("Report %d  %s  (report no. %d, rig day %d)\n",
				report.ID, report.ReportDate.Format(root.config.Display.DateFormat),
				report.ReportNumber, report.RigDay)
			fmt.Printf("Depth: %.1f - %.1f m  Status: %s\n", report.DepthStart, report.DepthEnd, report.Status)
			if report.Summary != "" {
				fmt.Printf("Summary: %s\n", report.Summary)
			}

			printLog(report.FullDay, "Time log (24h)")
			printLog(report.MorningTour, "Morning tour (6h)")

			totals := root.api.Aggregate(report)
			fmt.Printf("\nTotal %.2fh  NPT %.2fh  Productivity %.2f%%\n",
				totals.TotalHours, totals.NPTHours, totals.ProductivityPct)
			for _, note := range totals.Notes {
				fmt.Printf("Note: %s\n", note.Message)
			}
			return nil
		},
	}

	cmd.Flags().Int64Var(&reportID, "report", 0, "report ID")
	cmd.MarkFlagRequired("report")

	return cmd
}

func printLog(log *domain.Log, title string) {
	fmt.Printf("\n%s\n", title)
	if len(log.Entries) == 0 {
		fmt.Println("  (no entries)")
		return
	}
	for i, entry := range log.Entries {
		npt := ""
		if entry.IsNPT {
			npt = "  [NPT]"
		}
		fmt.Printf("  %2d. %s-%s  %5.2fh  %s %s/%s%s  %s\n",
			i+1, entry.From, entry.To, entry.DurationHours,
			entry.MainPhase, entry.MainCode, entry.SubCode, npt, entry.Description)
	}
}
