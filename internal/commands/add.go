package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/punchtrack/punch/internal/models"
	"github.com/punchtrack/punch/internal/parser"
	"github.com/punchtrack/punch/internal/tui"
)

var (
	addDate string
	addIn   string
	addOut  string
)

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a session manually",
	Long: `Add a completed session manually. Opens an interactive form by default;
pass --date/--in/--out to add without the UI.

Examples:
  punch add                                      # Interactive form
  punch add --date 2026-08-20 --in 09:00 --out 17:30`,
	Run: withStore(func(e *env, cmd *cobra.Command, args []string) {
		if addDate == "" && addIn == "" && addOut == "" {
			if err := tui.RunAddSessionTUI(e.adapter); err != nil {
				fmt.Printf("Error: %v\n", err)
			}
			return
		}

		if addDate == "" || addIn == "" || addOut == "" {
			fmt.Println("Error: --date, --in and --out must all be given.")
			return
		}

		clockIn, clockOut, err := parser.ParseSessionTimes(addDate, addIn, addOut)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		session := models.NewSession(clockIn, clockOut)
		if err := e.adapter.SaveSession(session); err != nil {
			fmt.Printf("Error: could not save session: %v\n", err)
			return
		}
		fmt.Printf("✅ Session added: %s, %.2f hours\n", session.Date, session.Hours)
	}),
}

func init() {
	addCmd.Flags().StringVar(&addDate, "date", "", "Session date (yyyy-mm-dd)")
	addCmd.Flags().StringVar(&addIn, "in", "", "Clock-in time (HH:MM)")
	addCmd.Flags().StringVar(&addOut, "out", "", "Clock-out time (HH:MM)")
}
