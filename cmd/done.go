package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/manav03panchal/habitflare/internal/dateutil"
	"github.com/manav03panchal/habitflare/internal/errors"
	"github.com/manav03panchal/habitflare/internal/habits"
	"github.com/manav03panchal/habitflare/internal/output"
)

// doneCmd represents the done command.
var doneCmd = &cobra.Command{
	Use:     "done HABIT [DATE]",
	Aliases: []string{"do", "toggle", "check"},
	Short:   "Toggle a habit's completion for a day",
	Long: `Mark a habit done for a day, or un-mark it if it was already done.
DATE defaults to today and accepts natural language.

Examples:
  habitflare done read
  habitflare done read yesterday
  habitflare done gym "last monday"
  habitflare done gym 2026-08-20`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runDone,
}

func init() {
	rootCmd.AddCommand(doneCmd)
}

func runDone(cmd *cobra.Command, args []string) error {
	collection, err := ctx.HabitRepo.List()
	if err != nil {
		return err
	}

	habit, err := resolveHabit(collection, args[0])
	if err != nil {
		return err
	}

	day := todayDay()
	if len(args) == 2 {
		day, err = dateutil.ParseDay(args[1])
		if err != nil {
			return errors.NewUserErrorWithField("date", args[1],
				"Could not understand that date",
				"Use YYYY-MM-DD or phrases like 'yesterday' or 'last monday'")
		}
	}

	// The engine accepts any date; refusing the future is UI policy.
	if day > todayDay() {
		return errors.NewUserErrorWithField("date", day,
			"Cannot complete habits for future dates",
			"Pick today or a past date")
	}

	toggled := habits.Toggle(habit, day)
	if err := ctx.HabitRepo.Update(toggled); err != nil {
		return err
	}

	status := "unmarked"
	if toggled.CompletedOn(day) {
		status = "completed"
	}

	if ctx.IsJSON() {
		return ctx.JSONFormatter().JSON(output.ToggleResponse{
			Status: status,
			Date:   day,
			Habit:  output.NewHabitOutput(toggled, todayDay()),
		})
	}

	cli := ctx.CLIFormatter()
	streak := habits.Streak(toggled.History, todayDay())
	if status == "completed" {
		cli.Success(fmt.Sprintf("%s %s on %s — streak %s",
			cli.HabitName(toggled.Name), status, day,
			cli.Streak(fmt.Sprintf("%d🔥", streak))))
	} else {
		cli.Warning(fmt.Sprintf("%s %s on %s — streak %s",
			cli.HabitName(toggled.Name), status, day,
			cli.Streak(fmt.Sprintf("%d🔥", streak))))
	}
	return nil
}
