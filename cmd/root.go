package cmd

import (
	"context"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/abhisek/geoquest/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "geoquest",
	Short: "Gamified geometry practice in the terminal",
	Long: `GeoQuest turns geometry practice into quests and battles.

Pick a topic, stake a multiplier on timed or cheat-sheet-free runs and
earn coins, or wager coins against a rival in a five-task battle.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	return rootCmd.ExecuteContext(ctx)
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides GEOQUEST_DB env var)")
	rootCmd.PersistentFlags().StringP("user", "u", "", "Player name (overrides GEOQUEST_USER env var)")
	rootCmd.PersistentFlags().String("log-level", "", "Log level: trace, debug, info, warn, error")
	rootCmd.PersistentFlags().Bool("log-stderr", false, "Log to stderr instead of the log file (subcommands only)")

	rootCmd.AddCommand(questCmd)
	rootCmd.AddCommand(battleCmd)
	rootCmd.AddCommand(previewCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(leaderboardCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then the configured path, then the default XDG path.
func resolveDBPath(cmd *cobra.Command, configured string) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	if configured != "" {
		return configured, store.EnsureDir(configured)
	}
	return store.DefaultDBPath()
}
