package cmd

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/manav03panchal/habitflare/internal/dateutil"
	"github.com/manav03panchal/habitflare/internal/errors"
	"github.com/manav03panchal/habitflare/internal/habits"
	"github.com/manav03panchal/habitflare/internal/output"
)

// calendarCmd represents the calendar command.
var calendarCmd = &cobra.Command{
	Use:     "calendar [YYYY-MM]",
	Aliases: []string{"cal", "heatmap"},
	Short:   "Show a month as a completion heatmap",
	Long: `Render a month grid where each day is shaded by how many of that day's
scheduled habits were completed.

Examples:
  habitflare calendar
  habitflare calendar 2026-07`,
	Args: cobra.MaximumNArgs(1),
	RunE: runCalendar,
}

func init() {
	rootCmd.AddCommand(calendarCmd)
}

func runCalendar(cmd *cobra.Command, args []string) error {
	now := time.Now()
	year, month := now.Year(), now.Month()

	if len(args) == 1 {
		parsed, err := time.ParseInLocation("2006-01", args[0], time.Local)
		if err != nil {
			return errors.NewUserErrorWithField("month", args[0],
				"Invalid month",
				"Use YYYY-MM, e.g. 2026-07")
		}
		year, month = parsed.Year(), parsed.Month()
	}

	collection, err := ctx.HabitRepo.List()
	if err != nil {
		return err
	}

	if ctx.IsJSON() {
		var cells []output.DayCell
		for day := range dateutil.MonthGrid(year, month) {
			if day == "" {
				continue
			}
			cells = append(cells, output.DayCell{
				Date:   day,
				Status: output.StatusString(habits.DayStatus(day, collection)),
			})
		}
		return ctx.JSONFormatter().JSON(struct {
			Month string           `json:"month"`
			Days  []output.DayCell `json:"days"`
		}{
			Month: fmt.Sprintf("%04d-%02d", year, month),
			Days:  cells,
		})
	}

	cli := ctx.CLIFormatter()
	cli.Title(fmt.Sprintf("%s %d", month, year))
	cli.Println("")

	// Wide cells when the terminal has room, like the timer view does.
	cellWidth := 4
	if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w < 7*4+2 {
		cellWidth = 3
	}

	var header strings.Builder
	for weekday := 0; weekday < 7; weekday++ {
		header.WriteString(fmt.Sprintf("%-*s", cellWidth, dateutil.DayName(weekday)[:2]))
	}
	cli.Muted(header.String())

	var row strings.Builder
	col := 0
	flush := func() {
		if row.Len() > 0 {
			cli.Println(row.String())
			row.Reset()
		}
		col = 0
	}

	for day := range dateutil.MonthGrid(year, month) {
		if day == "" {
			row.WriteString(strings.Repeat(" ", cellWidth))
		} else {
			status := habits.DayStatus(day, collection)
			cell := fmt.Sprintf("%2s", day[8:])
			if day == todayDay() {
				cell = "»" + day[9:]
			}
			row.WriteString(cli.HeatCell(status, cell))
			row.WriteString(strings.Repeat(" ", cellWidth-2))
		}
		col++
		if col == 7 {
			flush()
		}
	}
	flush()

	cli.Println("")
	cli.Muted("shading: none · low · high · full (share of scheduled habits done)")
	return nil
}
