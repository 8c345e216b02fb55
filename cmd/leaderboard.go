package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/geoquest/internal/rewards"
)

var leaderboardCmd = &cobra.Command{
	Use:   "leaderboard",
	Short: "Show the top players and the latest broadcasts",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		limit, _ := cmd.Flags().GetInt("limit")
		feed, _ := cmd.Flags().GetInt("feed")

		d, err := openDeps(cmd)
		if err != nil {
			return err
		}
		defer d.Close()

		users, err := d.store.UserRepo().Leaderboard(ctx, limit)
		if err != nil {
			return fmt.Errorf("query leaderboard: %w", err)
		}

		fmt.Printf("%-4s  %-20s  %-22s  %8s\n", "#", "Player", "Level", "XP")
		fmt.Println(strings.Repeat("─", 60))
		for i, u := range users {
			lvl := rewards.LevelFor(u.XP)
			name := truncate(u.Avatar+" "+u.Username, 20)
			you := ""
			if u.ID == d.player.ID {
				you = "  ← you"
			}
			fmt.Printf("%-4d  %-20s  %-22s  %8d%s\n", i+1, name, truncate(lvl.Icon+" "+lvl.Title, 22), u.XP, you)
		}

		if feed <= 0 {
			return nil
		}
		msgs, err := d.store.MessageRepo().RecentMessages(ctx, feed)
		if err != nil {
			return fmt.Errorf("query messages: %w", err)
		}
		if len(msgs) == 0 {
			return nil
		}
		fmt.Println()
		fmt.Println("Latest")
		fmt.Println(strings.Repeat("─", 60))
		for _, m := range msgs {
			fmt.Printf("%s  %s %s\n", m.Timestamp.Local().Format("01-02 15:04"), m.Username, m.Text)
		}
		return nil
	},
}

func init() {
	leaderboardCmd.Flags().IntP("limit", "n", 10, "Number of players to show")
	leaderboardCmd.Flags().Int("feed", 6, "Number of broadcast messages to show (0 hides the feed)")
}
