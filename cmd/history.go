package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/geoquest/internal/screens/history"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List finished quests and battles",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		limit, _ := cmd.Flags().GetInt("limit")
		verbose, _ := cmd.Flags().GetBool("verbose")
		activity, _ := cmd.Flags().GetBool("activity")

		d, err := openDeps(cmd)
		if err != nil {
			return err
		}
		defer d.Close()

		if activity {
			return printActivity(cmd, d, limit)
		}

		entries, err := history.Load(ctx, d.store.EventRepo(), d.player.ID, limit)
		if err != nil {
			return err
		}
		if len(entries) == 0 {
			fmt.Println("No quests or battles yet.")
			return nil
		}
		for _, e := range entries {
			mark := "✗"
			if e.Won {
				mark = "✓"
			}
			fmt.Printf("%s  %s %s\n", e.Timestamp.Local().Format("2006-01-02 15:04"), mark, e.Summary)
			if verbose {
				for _, line := range e.Details {
					fmt.Printf("%18s%s\n", "", line)
				}
			}
		}
		return nil
	},
}

func printActivity(cmd *cobra.Command, d *deps, limit int) error {
	entries, err := d.store.ActivityRepo().RecentActivity(cmd.Context(), limit)
	if err != nil {
		return fmt.Errorf("query activity: %w", err)
	}
	if len(entries) == 0 {
		fmt.Println("No activity recorded yet.")
		return nil
	}

	fmt.Printf("%-19s  %-14s  %-18s  %s\n", "Timestamp", "User", "Action", "Details")
	fmt.Println(strings.Repeat("─", 80))
	for _, a := range entries {
		fmt.Printf("%-19s  %-14s  %-18s  %s\n",
			a.Timestamp.Local().Format("2006-01-02 15:04:05"),
			truncate(a.Username, 14),
			a.Action,
			a.Details,
		)
	}
	return nil
}

func init() {
	historyCmd.Flags().IntP("limit", "n", 20, "Number of entries to show")
	historyCmd.Flags().BoolP("verbose", "v", false, "Show details of each entry")
	historyCmd.Flags().Bool("activity", false, "Show the raw activity log of all players instead")
}
