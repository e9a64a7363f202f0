package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

var rateCmd = &cobra.Command{
	Use:   "rate [amount]",
	Short: "Show or set the hourly rate",
	Long: `Show or set the hourly rate used for the earnings column in history.

Examples:
  punch rate         # Show the current rate
  punch rate 85.50   # Set the rate`,
	Args: cobra.MaximumNArgs(1),
	Run: withStore(func(e *env, cmd *cobra.Command, args []string) {
		if len(args) == 0 {
			rate, ok := e.adapter.LoadHourlyRate()
			if !ok {
				fmt.Println("No hourly rate set. Use 'punch rate <amount>' to set one.")
				return
			}
			fmt.Printf("Hourly rate: %.2f\n", rate)
			return
		}

		rate, err := strconv.ParseFloat(args[0], 64)
		if err != nil || rate < 0 {
			fmt.Printf("Error: invalid rate %q, expected a non-negative number\n", args[0])
			return
		}
		if err := e.adapter.SaveHourlyRate(rate); err != nil {
			fmt.Printf("Error: could not save rate: %v\n", err)
			return
		}
		fmt.Printf("Hourly rate set to %.2f\n", rate)
	}),
}
