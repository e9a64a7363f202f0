package commands

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/punchtrack/punch/internal/filter"
	"github.com/punchtrack/punch/internal/models"
	"github.com/punchtrack/punch/internal/tui"
)

// filterNames maps the CLI spelling to a filter type. Unknown spellings fall
// through to "all" inside filter.New.
var filterNames = map[string]models.FilterType{
	"all":        models.FilterAll,
	"this-week":  models.FilterThisWeek,
	"last-week":  models.FilterLastWeek,
	"last-month": models.FilterLastMonth,
}

var historyCmd = &cobra.Command{
	Use:     "history",
	Aliases: []string{"ls"},
	Short:   "List recorded sessions",
	Long:    "List recorded sessions, most recent first, optionally narrowed to a date window.",
	Run: withStore(func(e *env, cmd *cobra.Command, args []string) {
		_, sessions := e.adapter.LoadStoredData()

		if useUI, _ := cmd.Flags().GetBool("ui"); useUI {
			if err := tui.RunHistoryTUI(e.adapter, e.cfg.WeekStart()); err != nil {
				fmt.Printf("Error: %v\n", err)
			}
			return
		}

		name, _ := cmd.Flags().GetString("filter")
		now := time.Now()
		shown := filter.Apply(sessions, filter.New(filterNames[name], now, e.cfg.WeekStart()))

		if len(shown) == 0 {
			fmt.Println("No sessions found. Use 'punch in' to start tracking.")
			return
		}

		// Most recent first for display; stored order breaks date ties.
		sorted := make([]models.Session, len(shown))
		copy(sorted, shown)
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].Date > sorted[j].Date
		})

		rate, hasRate := e.adapter.LoadHourlyRate()

		header := fmt.Sprintf("%-24s %-12s %-7s %-7s %7s", "ID", "DATE", "IN", "OUT", "HOURS")
		if hasRate {
			header += fmt.Sprintf(" %9s", "EARNED")
		}
		fmt.Println(header)
		fmt.Println(strings.Repeat("-", len(header)))

		var totalHours float64
		for _, s := range sorted {
			row := fmt.Sprintf("%-24s %-12s %-7s %-7s %7.2f",
				s.ID, s.Date, localClock(s.ClockIn), localClock(s.ClockOut), s.Hours)
			if hasRate {
				row += fmt.Sprintf(" %9.2f", s.Hours*rate)
			}
			fmt.Println(row)
			totalHours += s.Hours
		}

		counts := filter.CountSessions(sessions, now)
		fmt.Printf("\nShown: %d sessions, %.2f hours", len(sorted), totalHours)
		if hasRate {
			fmt.Printf(", %.2f earned", totalHours*rate)
		}
		fmt.Printf("\nTotals: %d all · %d last 7 days · %d last month\n",
			counts.All, counts.LastWeek, counts.LastMonth)
	}),
}

// localClock renders a stored UTC timestamp as a local HH:MM, or "?" when it
// does not parse (history entries are validated on load, so this is rare).
func localClock(iso string) string {
	t, err := time.Parse(time.RFC3339, iso)
	if err != nil {
		return "?"
	}
	return t.Local().Format("15:04")
}

func init() {
	historyCmd.Flags().StringP("filter", "f", "all", "Date window: all, this-week, last-week, last-month")
	historyCmd.Flags().Bool("ui", false, "Open the interactive history browser")
}
