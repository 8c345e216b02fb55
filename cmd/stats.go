package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/geoquest/internal/battle"
	"github.com/abhisek/geoquest/internal/rewards"
	"github.com/abhisek/geoquest/internal/store"
	"github.com/abhisek/geoquest/internal/topics"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show the player's level, balance and results",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		d, err := openDeps(cmd)
		if err != nil {
			return err
		}
		defer d.Close()

		p := d.player
		events := d.store.EventRepo()
		quests, err := events.QueryQuestEvents(ctx, store.QueryOpts{UserID: p.ID})
		if err != nil {
			return fmt.Errorf("query quests: %w", err)
		}
		battles, err := events.QueryBattleEvents(ctx, store.QueryOpts{UserID: p.ID})
		if err != nil {
			return fmt.Errorf("query battles: %w", err)
		}
		completed, err := d.store.UserRepo().CompletedTopics(ctx, p.ID)
		if err != nil {
			return fmt.Errorf("query completed topics: %w", err)
		}

		var perfect int
		for _, q := range quests {
			if q.Perfect {
				perfect++
			}
		}
		var won, lost int
		for _, b := range battles {
			if b.Status != string(battle.StatusCompleted) {
				continue
			}
			if b.WinnerID == p.ID {
				won++
			} else {
				lost++
			}
		}

		lvl := rewards.LevelFor(p.XP)
		inLevel, maxed := rewards.Progress(p.XP)
		progress := fmt.Sprintf("%d/%d XP to next level", inLevel, rewards.XPPerLevel)
		if maxed {
			progress = "max level"
		}

		sep := strings.Repeat("─", 40)
		fmt.Printf("%s %s\n", p.Avatar, p.Username)
		fmt.Println(sep)
		fmt.Printf("Level:        %s %s (%s)\n", lvl.Icon, lvl.Title, progress)
		fmt.Printf("XP:           %d\n", p.XP)
		fmt.Printf("Coins:        ● %d (earned %d in total)\n", p.Coins, p.TotalEarned)
		fmt.Printf("Quests:       %d played, %d perfect\n", len(quests), perfect)
		fmt.Printf("Battles:      %d won, %d lost\n", won, lost)
		fmt.Println(sep)

		done := make(map[string]bool, len(completed))
		for _, id := range completed {
			done[id] = true
		}
		for _, t := range topics.All() {
			mark := "○"
			if done[t.ID] {
				mark = "✓"
			}
			fmt.Printf("  %s %s  %s\n", mark, t.ID, t.Title)
		}
		return nil
	},
}
