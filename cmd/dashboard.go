package cmd

import (
	"github.com/spf13/cobra"

	"github.com/manav03panchal/habitflare/internal/tui"
)

// dashboardCmd represents the dashboard command.
var dashboardCmd = &cobra.Command{
	Use:     "dashboard",
	Aliases: []string{"dash", "tui"},
	Short:   "Open the interactive TUI dashboard",
	Long: `Open an interactive terminal dashboard to view and manage habits.

The dashboard shows:
  - The current week with one completion indicator per day
  - Every habit with its streak and today's status
  - The 30-day completion rate and best streak

Keyboard Controls:
  j/k   - Move between habits
  space - Toggle today's completion for the selected habit
  d     - Delete the selected habit (press y to confirm)
  r     - Refresh data
  q     - Quit dashboard

Examples:
  habitflare dashboard
  habitflare dash`,
	Args: cobra.NoArgs,
	RunE: runDashboard,
}

func init() {
	rootCmd.AddCommand(dashboardCmd)
}

func runDashboard(cmd *cobra.Command, args []string) error {
	return tui.Run(tui.DashboardConfig{
		HabitRepo: ctx.HabitRepo,
	})
}
