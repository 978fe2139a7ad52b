// HabitFlare - A command-line habit tracker
//
// Habits live entirely on the local machine. The CLI records daily
// completions and derives streaks, heatmaps, and statistics from the
// raw completion history.

package main

import (
	"os"

	"github.com/manav03panchal/habitflare/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
