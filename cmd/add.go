package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/manav03panchal/habitflare/internal/errors"
	"github.com/manav03panchal/habitflare/internal/habits"
	"github.com/manav03panchal/habitflare/internal/output"
	"github.com/manav03panchal/habitflare/internal/validate"
)

// Add command flags.
var (
	addFlagIcon  string
	addFlagColor string
	addFlagDays  string
	addFlagAlarm string
)

// addCmd represents the add command.
var addCmd = &cobra.Command{
	Use:     "add NAME",
	Aliases: []string{"a", "new"},
	Short:   "Create a new habit",
	Long: `Create a new habit with a schedule of weekdays it should be done on.

Examples:
  habitflare add "Read 30 mins"
  habitflare add Gym --icon fitness --color emerald --days mon,wed,fri
  habitflare add Meditate --days all --alarm 07:30
  habitflare add "Weekly review" --days sun`,
	Args: cobra.ExactArgs(1),
	RunE: runAdd,
}

func init() {
	addCmd.Flags().StringVar(&addFlagIcon, "icon", "fitness",
		"Icon key ("+strings.Join(output.IconKeys, ", ")+")")
	addCmd.Flags().StringVar(&addFlagColor, "color", "brand",
		"Color key ("+strings.Join(output.ColorKeys, ", ")+")")
	addCmd.Flags().StringVar(&addFlagDays, "days", "all",
		"Scheduled weekdays: comma list (sun,mon,...), 'all', 'weekdays', 'weekends', or 'none'")
	addCmd.Flags().StringVar(&addFlagAlarm, "alarm", "",
		"Optional reminder time in 24-hour HH:MM")

	rootCmd.AddCommand(addCmd)
}

func runAdd(cmd *cobra.Command, args []string) error {
	name := args[0]

	if err := validate.HabitName(name); err != nil {
		return err
	}
	if err := validate.AlarmTime(addFlagAlarm); err != nil {
		return err
	}

	frequency, err := parseDays(addFlagDays)
	if err != nil {
		return err
	}

	collection, err := ctx.HabitRepo.List()
	if err != nil {
		return err
	}

	_, habit, err := habits.Add(collection, habits.Draft{
		Name:      name,
		Icon:      addFlagIcon,
		Color:     addFlagColor,
		Frequency: frequency,
		AlarmTime: addFlagAlarm,
	})
	if err != nil {
		return err
	}

	if err := ctx.HabitRepo.Create(habit); err != nil {
		return err
	}

	if ctx.IsJSON() {
		return ctx.JSONFormatter().JSON(output.NewHabitOutput(habit, todayDay()))
	}

	cli := ctx.CLIFormatter()
	cli.Success(fmt.Sprintf("Added habit %s %s", output.IconGlyph(habit.Icon), cli.HabitName(habit.Name)))
	cli.Muted("  scheduled: " + describeDays(habit.Frequency))
	if habit.AlarmTime != "" {
		cli.Muted("  reminder:  " + habit.AlarmTime)
	}
	return nil
}

var dayAliases = map[string]int{
	"sun": 0, "sunday": 0,
	"mon": 1, "monday": 1,
	"tue": 2, "tuesday": 2,
	"wed": 3, "wednesday": 3,
	"thu": 4, "thursday": 4,
	"fri": 5, "friday": 5,
	"sat": 6, "saturday": 6,
}

// parseDays turns the --days flag into a weekday index set.
func parseDays(spec string) ([]int, error) {
	switch strings.ToLower(strings.TrimSpace(spec)) {
	case "", "all", "daily":
		return []int{0, 1, 2, 3, 4, 5, 6}, nil
	case "weekdays":
		return []int{1, 2, 3, 4, 5}, nil
	case "weekends":
		return []int{0, 6}, nil
	case "none":
		return []int{}, nil
	}

	var frequency []int
	for _, part := range strings.Split(spec, ",") {
		part = strings.ToLower(strings.TrimSpace(part))
		if part == "" {
			continue
		}
		if weekday, ok := dayAliases[part]; ok {
			frequency = append(frequency, weekday)
			continue
		}
		if weekday, err := strconv.Atoi(part); err == nil && weekday >= 0 && weekday <= 6 {
			frequency = append(frequency, weekday)
			continue
		}
		return nil, errors.NewUserErrorWithField("days", part,
			"Unknown weekday",
			"Use day names (sun..sat), indices 0-6, or 'all'/'weekdays'/'weekends'")
	}
	return habits.NormalizeFrequency(frequency)
}
