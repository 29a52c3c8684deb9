package cli

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"
)

// newExportCommand creates the export command
func newExportCommand(root *RootCommand) *cobra.Command {
	var reportID int64
	var out string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export a report to an Excel workbook",
		RunE: func(cmd *cobra.Command, args []string) error {
			path := out
			if path == "" {
				path = filepath.Join(root.config.Export.Dir, fmt.Sprintf("report-%d.xlsx", reportID))
			}

			if err := root.api.ExportReport(cmd.Context(), reportID, path); err != nil {
				return err
			}

			fmt.Printf("Exported report %d to %s\n", reportID, path)
			return nil
		},
	}

	cmd.Flags().Int64Var(&reportID, "report", 0, "report ID")
	cmd.Flags().StringVar(&out, "out", "", "output path (default: export dir)")
	cmd.MarkFlagRequired("report")

	return cmd
}
