package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

// newAddWellCommand creates the add-well command
func newAddWellCommand(root *RootCommand) *cobra.Command {
	var name string
	var spud string

	cmd := &cobra.Command{
		Use:   "add-well",
		Short: "Register a well, optionally with its spud date",
		RunE: func(cmd *cobra.Command, args []string) error {
			var spudDate *time.Time
			if spud != "" {
				parsed, err := time.Parse(root.config.Display.DateFormat, spud)
				if err != nil {
					return fmt.Errorf("invalid spud date %q: %w", spud, err)
				}
				spudDate = &parsed
			}

			well, err := root.api.CreateWell(cmd.Context(), name, spudDate)
			if err != nil {
				return err
			}

			fmt.Printf("Created well %d: %s\n", well.ID, well.Name)
			if well.SpudDate == nil {
				fmt.Println("No spud date set; report numbers stay unassigned until one is recorded.")
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "well name")
	cmd.Flags().StringVar(&spud, "spud", "", "spud date (YYYY-MM-DD)")
	cmd.MarkFlagRequired("name")

	return cmd
}
