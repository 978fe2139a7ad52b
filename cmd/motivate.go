package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/manav03panchal/habitflare/internal/habits"
	"github.com/manav03panchal/habitflare/internal/motivate"
	"github.com/manav03panchal/habitflare/internal/output"
)

// motivateCmd represents the motivate command.
var motivateCmd = &cobra.Command{
	Use:     "motivate [HABIT]",
	Aliases: []string{"mot", "hype"},
	Short:   "Get a motivational message for a streak",
	Long: `Fetch a short encouragement for the named habit's streak, or for your
best streak when no habit is given. Needs GEMINI_API_KEY for generated
messages; without it (or offline) a built-in message is used instead.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runMotivate,
}

func init() {
	rootCmd.AddCommand(motivateCmd)
}

func runMotivate(cmd *cobra.Command, args []string) error {
	collection, err := ctx.HabitRepo.List()
	if err != nil {
		return err
	}

	today := todayDay()

	habitName := ""
	streak := 0
	if len(args) == 1 {
		habit, err := resolveHabit(collection, args[0])
		if err != nil {
			return err
		}
		habitName = habit.Name
		streak = habits.Streak(habit.History, today)
	} else if best := habits.BestStreakHabit(collection, today); best != nil {
		habitName = best.Name
		streak = habits.Streak(best.History, today)
	}

	reqCtx, cancel := context.WithTimeout(cmd.Context(), 15*time.Second)
	defer cancel()

	// NewGeminiProvider returns nil without a key; Fetch handles that.
	var provider motivate.Provider
	if p := motivate.NewGeminiProvider(); p != nil {
		provider = p
	}
	message := motivate.Fetch(reqCtx, provider, streak, habitName)

	if ctx.IsJSON() {
		return ctx.JSONFormatter().JSON(output.MotivateResponse{
			Habit:   habitName,
			Streak:  streak,
			Message: message,
		})
	}

	cli := ctx.CLIFormatter()
	if habitName != "" {
		cli.Muted(habitName + " — " + cli.Streak(streakLabel(streak)))
	}
	cli.Println(message)
	return nil
}

func streakLabel(streak int) string {
	if streak == 1 {
		return "1 day streak"
	}
	return fmt.Sprintf("%d day streak", streak)
}
