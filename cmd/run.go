package cmd

import (
	"github.com/spf13/cobra"

	"github.com/abhisek/geoquest/internal/app"
	"github.com/abhisek/geoquest/internal/clock"
	"github.com/abhisek/geoquest/internal/rewards"
	"github.com/abhisek/geoquest/internal/screen"
)

// runApp opens the store, builds dependencies, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	ctx := cmd.Context()
	d, err := openDeps(cmd)
	if err != nil {
		return err
	}
	defer d.Close()

	bus := &screen.Bus{}
	env := &screen.Env{
		Player:   d.rewardsPlayer(),
		Users:    d.store.UserRepo(),
		Events:   d.store.EventRepo(),
		Messages: d.store.MessageRepo(),
		Activity: d.store.ActivityRepo(),
		Hints:    d.hintProvider(ctx),
		Clock:    clock.Real(),
		Log:      d.log,
		Bus:      bus,
	}
	env.Rewards = d.rewardsService(func(b rewards.Balance) {
		bus.Send(screen.BalanceMsg{Coins: b.Coins, XP: b.XP})
	})

	d.log.Info().Msg("starting tui")
	return app.Run(ctx, env)
}
