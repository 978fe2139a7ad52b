package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/manav03panchal/habitflare/internal/output"
	"github.com/manav03panchal/habitflare/internal/storage"
)

// Reset command flags.
var resetFlagYes bool

// resetCmd represents the reset command.
var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Delete all habits and restore default settings",
	Long: `Wipe every habit, its history, and all preferences in one step.
This cannot be undone.`,
	RunE: runReset,
}

func init() {
	resetCmd.Flags().BoolVarP(&resetFlagYes, "yes", "y", false,
		"Skip the confirmation prompt")

	rootCmd.AddCommand(resetCmd)
}

func runReset(cmd *cobra.Command, args []string) error {
	cli := ctx.CLIFormatter()

	if !resetFlagYes && !ctx.IsJSON() {
		count, err := ctx.HabitRepo.Count()
		if err != nil {
			return err
		}
		cli.Warning(fmt.Sprintf("Delete all %d habit(s) and reset settings? This cannot be undone. [y/N] ", count))
		var answer string
		fmt.Fscanln(cmd.InOrStdin(), &answer)
		if answer != "y" && answer != "Y" && answer != "yes" {
			cli.Muted("Cancelled.")
			return nil
		}
	}

	if err := storage.ResetAll(ctx.DB); err != nil {
		return err
	}

	if ctx.IsJSON() {
		return ctx.JSONFormatter().JSON(output.ResetResponse{Status: "reset"})
	}

	cli.Success("All data wiped. Fresh start!")
	return nil
}
