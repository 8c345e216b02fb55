package cmd

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/abhisek/geoquest/internal/battle"
	"github.com/abhisek/geoquest/internal/hints"
	"github.com/abhisek/geoquest/internal/quest"
	"github.com/abhisek/geoquest/internal/randx"
	"github.com/abhisek/geoquest/internal/rewards"
	"github.com/abhisek/geoquest/internal/run"
	"github.com/abhisek/geoquest/internal/taskgen"
	"github.com/abhisek/geoquest/internal/topics"
)

var questCmd = &cobra.Command{
	Use:   "quest",
	Short: "Play a quest without the full-screen interface",
	Long: `Play five tasks of a topic on a plain terminal, one answer per line.

Type the option number for choices, the value for calculations and "?"
for a hint. Rewards are saved exactly as in the full-screen game.`,
	RunE: runQuest,
}

var battleCmd = &cobra.Command{
	Use:   "battle",
	Short: "Challenge a rival without the full-screen interface",
	RunE:  runBattle,
}

func init() {
	questCmd.Flags().StringP("topic", "t", "", "Topic ID or title (required)")
	questCmd.Flags().Bool("timed", false, "Give every task a 60s countdown (x3)")
	questCmd.Flags().Bool("no-cheat-sheet", false, "Hide the reference sheet (x2)")
	questCmd.Flags().Uint64("seed", 0, "Seed for task generation (0 = random)")
	_ = questCmd.MarkFlagRequired("topic")

	battleCmd.Flags().StringP("topic", "t", "", "Topic ID or title (required)")
	battleCmd.Flags().StringP("opponent", "o", "bot1", "Opponent ID or name")
	battleCmd.Flags().Uint64("seed", 0, "Seed for task generation and the opponent draw (0 = random)")
	_ = battleCmd.MarkFlagRequired("topic")
}

func runQuest(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	topicVal, _ := cmd.Flags().GetString("topic")
	timed, _ := cmd.Flags().GetBool("timed")
	noSheet, _ := cmd.Flags().GetBool("no-cheat-sheet")
	seed, _ := cmd.Flags().GetUint64("seed")

	topic, err := resolveTopic(topicVal)
	if err != nil {
		return err
	}
	d, err := openDeps(cmd)
	if err != nil {
		return err
	}
	defer d.Close()

	cfg := quest.Config{Timed: timed, NoCheatSheet: noSheet}
	tasks := taskgen.Generate(topic.ID, taskgen.DefaultCount, seededRand(seed))
	changed, notify := notifier()
	q, err := quest.New(topic.ID, tasks, cfg, run.WithNotify(notify))
	if err != nil {
		return err
	}
	defer q.Close()
	log := d.log.With().Str("run_id", q.ID()).Str("topic", topic.ID).Logger()
	log.Info().Str("modifiers", cfg.Label()).Msg("quest started")

	fmt.Printf("Quest: %s (%s)\n", topic.Title, cfg.Label())
	fmt.Printf("Potential reward: ● %d  x%d\n", cfg.PotentialReward(), cfg.Multiplier())
	if q.CheatSheetAvailable() {
		printReference(topic)
	}
	fmt.Println()

	player := d.rewardsPlayer()
	svc := d.rewardsService(nil)
	defer svc.Wait()

	sess := &lineSession{
		runner:  q,
		changed: changed,
		lines:   readLines(os.Stdin),
		out:     os.Stdout,
	}
	if hp := d.hintProvider(ctx); hp != nil {
		sess.hint = questHint(q, hp, topic, func(src hints.Source) {
			svc.HintRequested(ctx, player, topic.ID, string(src))
		})
	}

	if err := sess.play(ctx); err != nil {
		log.Info().Err(err).Msg("quest abandoned")
		if errors.Is(err, errCancelled) || errors.Is(err, context.Canceled) {
			fmt.Println("\nQuest cancelled. No reward.")
			return nil
		}
		return err
	}

	out, err := q.Outcome()
	if err != nil {
		return err
	}
	sum := q.Summary()
	delta := svc.QuestCompleted(ctx, player, topic.Title, out, sum)
	svc.Wait()
	log.Info().Int("correct", out.Correct).Int("pot", out.Pot).Msg("quest completed")

	heading := "Quest complete!"
	if out.Perfect {
		heading = "Perfect quest!"
	}
	fmt.Printf("── %s %d/%d correct in %s ──\n", heading, out.Correct, out.Total, sum.Duration.Round(time.Second))
	return printBalance(ctx, d, delta)
}

// questHint uses the quest's single hint for the current task.
func questHint(q *quest.Quest, hp hints.Provider, topic topics.Topic, onHint func(hints.Source)) func(context.Context, run.State) (string, error) {
	return func(ctx context.Context, st run.State) (string, error) {
		if err := q.UseHint(); err != nil {
			if errors.Is(err, run.ErrHintUsed) {
				return "", errors.New("you already used the hint for this task")
			}
			return "", err
		}
		ctx, cancel := context.WithTimeout(ctx, 20*time.Second)
		defer cancel()
		h, err := hp.Hint(ctx, topic.Title, st.Task.Common().Question)
		if err != nil {
			return "", err
		}
		onHint(h.Source)
		return h.Text, nil
	}
}

func runBattle(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	topicVal, _ := cmd.Flags().GetString("topic")
	oppVal, _ := cmd.Flags().GetString("opponent")
	seed, _ := cmd.Flags().GetUint64("seed")

	topic, err := resolveTopic(topicVal)
	if err != nil {
		return err
	}
	opp, err := resolveOpponent(oppVal)
	if err != nil {
		return err
	}
	d, err := openDeps(cmd)
	if err != nil {
		return err
	}
	defer d.Close()

	req, err := battle.NewRequest(battle.Challenger{
		ID:       d.player.ID,
		Username: d.player.Username,
		Coins:    d.player.Coins,
	}, opp, topic)
	if err != nil {
		if errors.Is(err, battle.ErrInsufficientCoins) {
			fmt.Printf("You need ● %d coins to challenge (you have ● %d). Complete a quest first!\n",
				battle.Wager, d.player.Coins)
			return nil
		}
		return err
	}

	r := seededRand(seed)
	tasks := taskgen.Generate(topic.ID, battle.TaskCount, r)
	changed, notify := notifier()
	b, err := battle.New(req, tasks, run.WithNotify(notify))
	if err != nil {
		return err
	}
	defer b.Close()

	player := d.rewardsPlayer()
	svc := d.rewardsService(nil)
	defer svc.Wait()
	svc.BattleStarted(ctx, player, req)
	log := d.log.With().Str("battle_id", req.ID).Str("opponent", opp.ID).Logger()
	log.Info().Str("topic", topic.ID).Msg("battle started")

	fmt.Printf("⚔ %s vs %s %s\n", player.Username, opp.Avatar, opp.Name)
	fmt.Printf("Topic: %s · Wager: ● %d · %ds per task\n\n", topic.Title, req.Wager, int(battle.TaskTimeout.Seconds()))

	sess := &lineSession{
		runner:  b,
		changed: changed,
		lines:   readLines(os.Stdin),
		out:     os.Stdout,
	}
	if err := sess.play(ctx); err != nil {
		log.Info().Err(err).Msg("battle abandoned")
		if errors.Is(err, errCancelled) || errors.Is(err, context.Canceled) {
			fmt.Println("\nBattle abandoned.")
			return nil
		}
		return err
	}

	st, err := b.Settle(battle.DefaultSkills(), battle.UniformDraw(r))
	if err != nil {
		return err
	}
	delta := svc.BattleSettled(ctx, player, req, st)
	svc.Wait()
	log.Info().Bool("win", st.Win).Int("player", st.PlayerScore).Int("opponent", st.OpponentScore).Msg("battle settled")

	heading := "Defeat"
	if st.Win {
		heading = "Victory!"
	}
	fmt.Printf("── %s You %d : %d %s ──\n", heading, st.PlayerScore, st.OpponentScore, opp.Name)
	return printBalance(ctx, d, delta)
}

func printBalance(ctx context.Context, d *deps, delta rewards.Delta) error {
	if err := d.refreshPlayer(ctx); err != nil {
		return err
	}
	lvl := rewards.LevelFor(d.player.XP)
	fmt.Printf("● %+d coins  ✦ %+d XP\n", delta.Coins, delta.XP)
	fmt.Printf("Balance: ● %d · %s %s (%d XP)\n", d.player.Coins, lvl.Icon, lvl.Title, d.player.XP)
	return nil
}

func printReference(t topics.Topic) {
	ref := t.Reference
	fmt.Printf("\n%s\n  %s\n", ref.Title, ref.Formula)
	for _, term := range ref.Terms {
		fmt.Printf("  • %s\n", term)
	}
}

// resolveTopic finds a topic by ID first, then by a unique title or
// keyword match.
func resolveTopic(val string) (topics.Topic, error) {
	if t, err := topics.Get(val); err == nil {
		return t, nil
	}

	matches := topics.Search(val)
	switch len(matches) {
	case 0:
		return topics.Topic{}, fmt.Errorf("no topic found for %q (known: %s)", val, strings.Join(topics.IDs(), ", "))
	case 1:
		return matches[0], nil
	default:
		var ids []string
		for _, t := range matches {
			ids = append(ids, t.ID)
		}
		return topics.Topic{}, fmt.Errorf("multiple topics match %q: %s; use --topic with a specific ID",
			val, strings.Join(ids, ", "))
	}
}

func resolveOpponent(val string) (battle.Opponent, error) {
	var names []string
	for _, o := range battle.DefaultOpponents() {
		if strings.EqualFold(o.ID, val) || strings.EqualFold(o.Name, val) {
			return o, nil
		}
		names = append(names, o.ID+" ("+o.Name+")")
	}
	return battle.Opponent{}, fmt.Errorf("unknown opponent %q (known: %s)", val, strings.Join(names, ", "))
}

func seededRand(seed uint64) *rand.Rand {
	if seed == 0 {
		return randx.Fresh()
	}
	return randx.New(seed)
}
