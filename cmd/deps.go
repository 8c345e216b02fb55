package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/abhisek/geoquest/internal/battle"
	"github.com/abhisek/geoquest/internal/config"
	"github.com/abhisek/geoquest/internal/hints"
	"github.com/abhisek/geoquest/internal/llm"
	"github.com/abhisek/geoquest/internal/logger"
	"github.com/abhisek/geoquest/internal/rewards"
	"github.com/abhisek/geoquest/internal/store"
)

// deps are the services shared by commands that touch the database.
type deps struct {
	cfg     *config.Config
	store   *store.Store
	log     zerolog.Logger
	logFile *os.File
	player  *store.User
}

// openDeps loads configuration, opens the log and the store, seeds the
// bots and makes sure the player exists.
func openDeps(cmd *cobra.Command) (*deps, error) {
	cfg := config.Load()
	if u, _ := cmd.Flags().GetString("user"); u != "" {
		cfg.User = u
	}
	if l, _ := cmd.Flags().GetString("log-level"); l != "" {
		cfg.LogLevel = l
	}

	dbPath, err := resolveDBPath(cmd, cfg.DBPath)
	if err != nil {
		return nil, fmt.Errorf("resolve DB path: %w", err)
	}

	d := &deps{cfg: cfg}
	if toStderr, _ := cmd.Flags().GetBool("log-stderr"); toStderr {
		d.log = logger.Setup(cfg.LogLevel, "pretty", os.Stderr)
	} else {
		path := cfg.LogFile
		if path == "" {
			path = filepath.Join(filepath.Dir(dbPath), "geoquest.log")
		}
		f, err := logger.OpenFile(path)
		if err != nil {
			return nil, fmt.Errorf("open log file: %w", err)
		}
		d.logFile = f
		d.log = logger.Setup(cfg.LogLevel, cfg.LogFormat, f)
	}

	st, err := store.Open(dbPath)
	if err != nil {
		d.Close()
		return nil, fmt.Errorf("open store: %w", err)
	}
	d.store = st

	ctx := cmd.Context()
	users := st.UserRepo()
	if err := users.SeedBots(ctx, botUsers()); err != nil {
		d.Close()
		return nil, fmt.Errorf("seed bots: %w", err)
	}
	player, err := users.EnsureUser(ctx, cfg.User, cfg.StartingCoins)
	if err != nil {
		d.Close()
		return nil, fmt.Errorf("load player: %w", err)
	}
	d.player = player
	d.log = d.log.With().Str("user", player.Username).Logger()
	d.log.Debug().Str("db", dbPath).Msg("store opened")
	return d, nil
}

// Close flushes and closes the store and the log file.
func (d *deps) Close() {
	if d.store != nil {
		d.store.Close()
	}
	if d.logFile != nil {
		d.logFile.Close()
	}
}

func (d *deps) rewardsPlayer() rewards.Player {
	return rewards.Player{ID: d.player.ID, Username: d.player.Username}
}

// llmProvider returns the configured provider, or nil when none is set up
// or it fails to initialize.
func (d *deps) llmProvider(ctx context.Context) llm.Provider {
	if !d.cfg.LLM.Enabled() {
		return nil
	}
	p, err := llm.NewProvider(ctx, d.cfg.LLM, d.store.EventRepo(), d.log)
	if err != nil {
		d.log.Warn().Err(err).Msg("LLM provider unavailable")
		fmt.Fprintln(os.Stderr, "LLM provider not configured:", err)
		fmt.Fprintln(os.Stderr, "Hints will come from the reference sheets.")
		return nil
	}
	return p
}

// hintProvider returns the hint service, or nil when hints are disabled.
func (d *deps) hintProvider(ctx context.Context) hints.Provider {
	if !d.cfg.HintsEnabled {
		return nil
	}
	return hints.NewService(d.llmProvider(ctx), hints.DefaultConfig(), d.log)
}

func (d *deps) rewardsService(onApplied func(rewards.Balance)) *rewards.Service {
	opts := []rewards.Option{
		rewards.WithEvents(d.store.EventRepo()),
		rewards.WithActivity(d.store.ActivityRepo()),
		rewards.WithLogger(d.log),
	}
	if onApplied != nil {
		opts = append(opts, rewards.WithOnApplied(onApplied))
	}
	return rewards.NewService(
		rewards.StoreSink{Users: d.store.UserRepo()},
		rewards.MessageSink{Messages: d.store.MessageRepo()},
		opts...,
	)
}

// refreshPlayer reloads the player row after rewards were applied.
func (d *deps) refreshPlayer(ctx context.Context) error {
	u, err := d.store.UserRepo().Get(ctx, d.player.ID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return fmt.Errorf("player %s disappeared", d.player.Username)
		}
		return err
	}
	d.player = u
	return nil
}

func botUsers() []store.User {
	opponents := battle.DefaultOpponents()
	bots := make([]store.User, 0, len(opponents))
	for _, o := range opponents {
		bots = append(bots, store.User{
			ID:       o.ID,
			Username: o.Name,
			Avatar:   o.Avatar,
			XP:       o.XP,
			IsBot:    true,
		})
	}
	return bots
}
