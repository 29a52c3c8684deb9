package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// newCheckCommand creates the check command
func newCheckCommand(root *RootCommand) *cobra.Command {
	var reportID int64

	cmd := &cobra.Command{
		Use:   "check",
		Short: "List budget warnings for a report",
		Long: `Checks both time logs of a report against their hour budgets.
Warnings are advisory; a report with warnings still saves.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			report, err := root.api.LoadReport(cmd.Context(), reportID)
			if err != nil {
				return err
			}

			warnings := root.api.ValidateLog(report.FullDay)
			warnings = append(warnings, root.api.ValidateLog(report.MorningTour)...)

			if len(warnings) == 0 {
				fmt.Println("No warnings.")
				return nil
			}
			for _, warning := range warnings {
				fmt.Printf("[%s] %s: %s\n", warning.LogKind, warning.Kind, warning.Message)
			}
			return nil
		},
	}

	cmd.Flags().Int64Var(&reportID, "report", 0, "report ID")
	cmd.MarkFlagRequired("report")

	return cmd
}
