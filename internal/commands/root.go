package commands

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/punchtrack/punch/internal/config"
	"github.com/punchtrack/punch/internal/kv"
	"github.com/punchtrack/punch/internal/storage"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "punch",
	Short: "A clock-in/clock-out time tracker",
	Long: `punch is a command-line time tracker built around a single clock:
punch in when you start working, punch out when you stop, and browse
your session history with date-range filters.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if verbose {
			zerolog.SetGlobalLevel(zerolog.DebugLevel)
		} else {
			zerolog.SetGlobalLevel(zerolog.WarnLevel)
		}
	},
}

// env bundles what every command needs: the loaded config and the
// persistence adapter over the opened store.
type env struct {
	cfg     config.Config
	adapter *storage.Adapter
}

// withStore wraps a command function with config loading and store setup,
// closing the store when the command returns.
func withStore(fn func(*env, *cobra.Command, []string)) func(*cobra.Command, []string) {
	return func(cmd *cobra.Command, args []string) {
		cfg, err := config.Load()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: %v (using defaults)\n", err)
		}

		store, err := kv.Open(cfg.DatabasePath())
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		defer store.Close()

		adapter := storage.NewAdapter(store, cfg.HistoryCap, storage.Policy{
			Attempts: cfg.RetryAttempts,
			Delay:    cfg.RetryDelay(),
		})
		fn(&env{cfg: cfg, adapter: adapter}, cmd, args)
	}
}

// SetVersion sets the version information
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("punch %s (commit %s, built %s)\n", version, commit, date)
	},
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	rootCmd.AddCommand(inCmd)
	rootCmd.AddCommand(outCmd)
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(deleteCmd)
	rootCmd.AddCommand(clearCmd)
	rootCmd.AddCommand(rateCmd)
	rootCmd.AddCommand(versionCmd)
}
