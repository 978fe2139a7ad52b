package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/manav03panchal/habitflare/internal/habits"
	"github.com/manav03panchal/habitflare/internal/output"
)

// statsCmd represents the stats command.
var statsCmd = &cobra.Command{
	Use:     "stats",
	Aliases: []string{"stat", "st"},
	Short:   "Show completion statistics",
	Long: `Show each habit's 30-day completion rate, the overall rate, and the
best current streak. Rates are recomputed from raw history on every run.`,
	RunE: runStats,
}

func init() {
	rootCmd.AddCommand(statsCmd)
}

func runStats(cmd *cobra.Command, args []string) error {
	collection, err := ctx.HabitRepo.List()
	if err != nil {
		return err
	}

	today := todayDay()
	overall := habits.OverallCompletionRate(collection, today)
	best := habits.BestStreakHabit(collection, today)

	if ctx.IsJSON() {
		resp := output.StatsResponse{
			Date:        today,
			OverallRate: overall,
			Habits:      make([]output.StatsHabit, 0, len(collection)),
		}
		if best != nil {
			resp.BestHabit = best.Name
			resp.BestStreak = habits.Streak(best.History, today)
		}
		for _, h := range collection {
			resp.Habits = append(resp.Habits, output.StatsHabit{
				ID:     h.ID,
				Name:   h.Name,
				Streak: habits.Streak(h.History, today),
				Rate30: habits.CompletionRate30(h, today),
			})
		}
		return ctx.JSONFormatter().JSON(resp)
	}

	cli := ctx.CLIFormatter()
	cli.Title("Statistics — last 30 days")
	cli.Println("")

	if len(collection) == 0 {
		cli.Muted("No habits to analyze yet.")
		return nil
	}

	cli.Printf("Completion rate: %d%%\n", overall)
	if best != nil {
		cli.Printf("Best streak:     %s (%s)\n",
			cli.Streak(fmt.Sprintf("%d days", habits.Streak(best.History, today))),
			cli.HabitName(best.Name))
	}
	cli.Println("")

	maxNameLen := 12
	for _, h := range collection {
		if len(h.Name) > maxNameLen {
			maxNameLen = len(h.Name)
		}
	}

	for _, h := range collection {
		rate := habits.CompletionRate30(h, today)
		streak := habits.Streak(h.History, today)
		bar := renderBar(rate, 20)
		cli.Printf("%s %-*s %s %3d%%  %s\n",
			output.IconGlyph(h.Icon), maxNameLen, h.Name, bar, rate,
			cli.Streak(fmt.Sprintf("%d🔥", streak)))
	}
	return nil
}

// renderBar draws a fixed-width progress bar for a 0-100 rate.
func renderBar(rate, width int) string {
	filled := rate * width / 100
	return "[" + strings.Repeat("█", filled) + strings.Repeat("░", width-filled) + "]"
}
