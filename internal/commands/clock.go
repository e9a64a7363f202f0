package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/punchtrack/punch/internal/models"
	"github.com/punchtrack/punch/internal/parser"
	"github.com/punchtrack/punch/internal/timecalc"
	"github.com/punchtrack/punch/internal/tui"
)

var inCmd = &cobra.Command{
	Use:   "in",
	Short: "Clock in and start a work session",
	Long: `Clock in and start a work session.

Examples:
  punch in                     # Clock in now
  punch in --at 09:00          # Clock in at 9:00 today
  punch in --at "1 hour ago"   # Backdated clock-in
  punch in --ui                # Clock in and open the live clock`,
	Run: withStore(func(e *env, cmd *cobra.Command, args []string) {
		state, _ := e.adapter.LoadStoredData()
		if start, ok := state.ClockInAt(); ok {
			fmt.Printf("Error: already clocked in since %s. Use 'punch out' first.\n",
				start.Local().Format("15:04:05"))
			return
		}

		at, _ := cmd.Flags().GetString("at")
		clockIn, err := parser.ParseWhen(at, time.Now())
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		if err := e.adapter.SaveCurrentState(models.ClockedIn(clockIn)); err != nil {
			fmt.Printf("Error: could not save clock state: %v\n", err)
			return
		}

		fmt.Printf("🕘 Clocked in at %s\n", clockIn.Format("15:04:05"))

		if useUI, _ := cmd.Flags().GetBool("ui"); useUI {
			if err := tui.RunClockTUI(e.adapter, clockIn); err != nil {
				fmt.Printf("Error: %v\n", err)
			}
		}
	}),
}

var outCmd = &cobra.Command{
	Use:   "out",
	Short: "Clock out and record the session",
	Run: withStore(func(e *env, cmd *cobra.Command, args []string) {
		state, _ := e.adapter.LoadStoredData()
		clockIn, ok := state.ClockInAt()
		if !ok {
			fmt.Println("Error: not clocked in. Use 'punch in' first.")
			return
		}

		at, _ := cmd.Flags().GetString("at")
		clockOut, err := parser.ParseWhen(at, time.Now())
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		if !clockOut.After(clockIn) {
			fmt.Printf("Error: clock-out time %s is not after clock-in time %s\n",
				clockOut.Format("15:04:05"), clockIn.Local().Format("15:04:05"))
			return
		}

		session := models.NewSession(clockIn.Local(), clockOut)
		if err := e.adapter.BatchSaveClockOut(models.ClockedOut(), session); err != nil {
			fmt.Printf("Error: could not save session: %v\n", err)
			return
		}

		fmt.Printf("🕔 Clocked out at %s\n", clockOut.Format("15:04:05"))
		fmt.Printf("Session recorded: %s, %.2f hours (%s)\n",
			session.Date, session.Hours, timecalc.FormatElapsed(clockOut.Sub(clockIn)))
		if rate, ok := e.adapter.LoadHourlyRate(); ok {
			fmt.Printf("Earned: %.2f\n", session.Hours*rate)
		}
	}),
}

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the current clock state",
	Run: withStore(func(e *env, cmd *cobra.Command, args []string) {
		state, sessions := e.adapter.LoadStoredData()
		clockIn, ok := state.ClockInAt()
		if !ok {
			fmt.Println("Not clocked in.")
			fmt.Printf("Recorded sessions: %d\n", len(sessions))
			return
		}

		fmt.Printf("🕘 Clocked in since %s\n", clockIn.Local().Format("15:04:05"))
		fmt.Printf("Elapsed: %s\n", timecalc.FormatElapsed(time.Since(clockIn)))
	}),
}

func init() {
	inCmd.Flags().String("at", "", "Clock-in time (HH:MM, yyyy-mm-dd HH:MM, or 'X minutes ago')")
	inCmd.Flags().Bool("ui", false, "Open the interactive clock after clocking in")
	outCmd.Flags().String("at", "", "Clock-out time (HH:MM, yyyy-mm-dd HH:MM, or 'X minutes ago')")
}
