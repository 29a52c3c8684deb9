package cli

import (
	"github.com/spf13/cobra"

	"rigreport/internal/api"
	"rigreport/internal/config"
)

// RootCommand represents the base command when called without any subcommands
type RootCommand struct {
	cmd    *cobra.Command
	api    api.API
	config *config.Config
}

// NewRootCommand creates the root cobra command with all subcommands attached
func NewRootCommand(apiInstance api.API, cfg *config.Config) *RootCommand {
	root := &RootCommand{
		api:    apiInstance,
		config: cfg,
	}

	root.cmd = &cobra.Command{
		Use:   "rigreport",
		Short: "Daily drilling report and time-log accounting",
		Long: `rigreport manages daily drilling reports: wells, per-day time logs
with budget accounting, and report sequencing (report number, rig day).

EXAMPLES:
  rigreport add-well --name "Well A-12" --spud 2024-01-01
  rigreport new-report --well 1 --section 1 --date 2024-01-10
  rigreport show --report 1                  # Header, logs, totals
  rigreport check --report 1                 # Budget warnings only
  rigreport export --report 1 --out day10.xlsx

CONFIGURATION:
  Read from rigreport.yaml (working directory or ~/.rigreport),
  overridable via RIGREPORT_* environment variables:
    RIGREPORT_DATABASE_DIR        Database directory (default: ~/.rigreport)
    RIGREPORT_DATABASE_FILENAME   Database filename (default: rigreport.db)
    RIGREPORT_EXPORT_DIR          Default export directory
    RIGREPORT_LOG_LEVEL           Log level (default: info)
    RIGREPORT_LOG_FORMAT          console or json (default: console)`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.cmd.AddCommand(
		newAddWellCommand(root),
		newReportCommand(root),
		newShowCommand(root),
		newCheckCommand(root),
		newExportCommand(root),
	)

	return root
}

// Execute runs the root command
func (r *RootCommand) Execute() error {
	return r.cmd.Execute()
}
