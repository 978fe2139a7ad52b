package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/manav03panchal/habitflare/internal/output"
)

// Delete command flags.
var deleteFlagYes bool

// deleteCmd represents the delete command.
var deleteCmd = &cobra.Command{
	Use:     "delete HABIT",
	Aliases: []string{"del", "rm"},
	Short:   "Delete a habit and its entire history",
	Long: `Delete a habit. The completion history goes with it; there is no undo.

Examples:
  habitflare delete gym
  habitflare delete gym --yes`,
	Args: cobra.ExactArgs(1),
	RunE: runDelete,
}

func init() {
	deleteCmd.Flags().BoolVarP(&deleteFlagYes, "yes", "y", false,
		"Skip the confirmation prompt")

	rootCmd.AddCommand(deleteCmd)
}

func runDelete(cmd *cobra.Command, args []string) error {
	collection, err := ctx.HabitRepo.List()
	if err != nil {
		return err
	}

	habit, err := resolveHabit(collection, args[0])
	if err != nil {
		return err
	}

	cli := ctx.CLIFormatter()

	if !deleteFlagYes && !ctx.IsJSON() {
		cli.Warning(fmt.Sprintf("Delete %q and its %d recorded day(s)? [y/N] ", habit.Name, len(habit.History)))
		var answer string
		fmt.Fscanln(cmd.InOrStdin(), &answer)
		if answer != "y" && answer != "Y" && answer != "yes" {
			cli.Muted("Cancelled.")
			return nil
		}
	}

	removed, err := ctx.HabitRepo.Delete(habit.ID)
	if err != nil {
		return err
	}

	if ctx.IsJSON() {
		status := "deleted"
		if !removed {
			status = "not_found"
		}
		return ctx.JSONFormatter().JSON(output.DeleteResponse{Status: status, ID: habit.ID})
	}

	if removed {
		cli.Success(fmt.Sprintf("Deleted %s", cli.HabitName(habit.Name)))
	} else {
		cli.Muted("Nothing to delete.")
	}
	return nil
}
