package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

var deleteCmd = &cobra.Command{
	Use:   "delete <session-id>",
	Short: "Delete a session from the history",
	Args:  cobra.ExactArgs(1),
	Run: withStore(func(e *env, cmd *cobra.Command, args []string) {
		if err := e.adapter.DeleteSession(args[0]); err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		fmt.Printf("🗑  Deleted session %s\n", args[0])
	}),
}

var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete the clock state and all recorded sessions",
	Run: withStore(func(e *env, cmd *cobra.Command, args []string) {
		force, _ := cmd.Flags().GetBool("force")
		if !force {
			fmt.Println("This removes the clock state and every recorded session.")
			fmt.Println("Re-run with --force to confirm.")
			return
		}
		if err := e.adapter.ClearStoredData(); err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		fmt.Println("🗑  All tracking data cleared.")
	}),
}

func init() {
	clearCmd.Flags().Bool("force", false, "Skip the confirmation prompt")
}
