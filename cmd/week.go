package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/manav03panchal/habitflare/internal/dateutil"
	"github.com/manav03panchal/habitflare/internal/errors"
	"github.com/manav03panchal/habitflare/internal/habits"
	"github.com/manav03panchal/habitflare/internal/output"
)

// weekCmd represents the week command.
var weekCmd = &cobra.Command{
	Use:     "week [DATE]",
	Aliases: []string{"w"},
	Short:   "Show this week's completion strip",
	Long: `Show the Sunday-started week containing DATE (default today), with a
completion indicator per day: all scheduled habits done, some done, or none.

Examples:
  habitflare week
  habitflare week "last monday"`,
	Args: cobra.MaximumNArgs(1),
	RunE: runWeek,
}

func init() {
	rootCmd.AddCommand(weekCmd)
}

func runWeek(cmd *cobra.Command, args []string) error {
	day := todayDay()
	if len(args) == 1 {
		var err error
		day, err = dateutil.ParseDay(args[0])
		if err != nil {
			return errors.NewUserErrorWithField("date", args[0],
				"Could not understand that date",
				"Use YYYY-MM-DD or phrases like 'last monday'")
		}
	}

	collection, err := ctx.HabitRepo.List()
	if err != nil {
		return err
	}

	week := dateutil.WeekOf(day)

	if ctx.IsJSON() {
		cells := make([]output.DayCell, 0, 7)
		for _, d := range week {
			cells = append(cells, output.DayCell{
				Date:   d,
				Status: output.IndicatorString(habits.WeekDayIndicator(d, collection)),
			})
		}
		return ctx.JSONFormatter().JSON(struct {
			Week []output.DayCell `json:"week"`
		}{Week: cells})
	}

	cli := ctx.CLIFormatter()
	cli.Title(fmt.Sprintf("Week of %s", week[0]))
	cli.Println("")

	var names, dates, dots []string
	for weekday, d := range week {
		label := dateutil.DayName(weekday)
		if d == todayDay() {
			label = strings.ToUpper(label)
		}
		names = append(names, fmt.Sprintf("%-4s", label))
		dates = append(dates, fmt.Sprintf("%-4s", d[8:]))
		// Styled strings carry ANSI codes, so pad around them by hand.
		dots = append(dots, cli.IndicatorDot(habits.WeekDayIndicator(d, collection))+"   ")
	}
	cli.Println(strings.Join(names, ""))
	cli.Println(strings.Join(dates, ""))
	cli.Println(strings.Join(dots, ""))
	cli.Println("")
	cli.Muted("● all done   ◐ partly done   · nothing done / not scheduled")
	return nil
}
