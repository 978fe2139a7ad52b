package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/manav03panchal/habitflare/internal/habits"
	"github.com/manav03panchal/habitflare/internal/output"
)

// listCmd represents the list command.
var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls", "l"},
	Short:   "Show your habits and current streaks",
	RunE:    runList,
}

func init() {
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	collection, err := ctx.HabitRepo.List()
	if err != nil {
		return err
	}

	today := todayDay()

	if ctx.IsJSON() {
		resp := output.ListResponse{Date: today, Habits: make([]*output.HabitOutput, 0, len(collection))}
		for _, h := range collection {
			resp.Habits = append(resp.Habits, output.NewHabitOutput(h, today))
		}
		return ctx.JSONFormatter().JSON(resp)
	}

	cli := ctx.CLIFormatter()
	cli.Title(fmt.Sprintf("Habits (%s)", today))
	cli.Println("")

	if len(collection) == 0 {
		cli.Muted("No habits yet. Add one with 'habitflare add NAME'.")
		return nil
	}

	active := habits.ActiveStreakCount(collection, today)

	for _, h := range collection {
		mark := " "
		if h.CompletedOn(today) {
			mark = "✓"
		}
		streak := habits.Streak(h.History, today)

		// Pad before styling: ANSI codes would count toward %-24s.
		name := fmt.Sprintf("%-24s", h.Name)
		line := fmt.Sprintf("[%s] %s %s %s  %s",
			mark,
			output.IconGlyph(h.Icon),
			cli.HabitNameColored(name, h.Color),
			cli.Streak(fmt.Sprintf("%3d🔥", streak)),
			describeDays(h.Frequency))
		cli.Println(line)
	}

	cli.Println("")
	cli.Muted(fmt.Sprintf("%d habit(s), %d active streak(s)", len(collection), active))
	return nil
}
