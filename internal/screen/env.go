package screen

import (
	"math/rand/v2"
	"sync"

	tea "charm.land/bubbletea/v2"
	"github.com/rs/zerolog"

	"github.com/abhisek/geoquest/internal/battle"
	"github.com/abhisek/geoquest/internal/clock"
	"github.com/abhisek/geoquest/internal/hints"
	"github.com/abhisek/geoquest/internal/randx"
	"github.com/abhisek/geoquest/internal/rewards"
	"github.com/abhisek/geoquest/internal/store"
)

// Env holds the services screens share. Nil repos and services disable
// the features that need them.
type Env struct {
	Player rewards.Player

	Users    store.UserRepo
	Events   store.EventRepo
	Messages store.MessageRepo
	Activity store.ActivityRepo

	Rewards *rewards.Service
	Hints   hints.Provider
	Skills  battle.SkillTable

	// Draw picks synthetic opponent scores. Defaults to a uniform draw.
	Draw battle.Draw
	// Rand returns the source for a new task batch. Defaults to randx.Fresh.
	Rand  func() *rand.Rand
	Clock clock.Clock
	Log   zerolog.Logger

	Bus *Bus
}

// NewRand returns a random source for one batch.
func (e *Env) NewRand() *rand.Rand {
	if e.Rand != nil {
		return e.Rand()
	}
	return randx.Fresh()
}

// SkillTable returns the configured skills or the defaults.
func (e *Env) SkillTable() battle.SkillTable {
	if e.Skills != nil {
		return e.Skills
	}
	return battle.DefaultSkills()
}

// OpponentDraw returns the configured draw or a uniform one.
func (e *Env) OpponentDraw() battle.Draw {
	if e.Draw != nil {
		return e.Draw
	}
	return battle.UniformDraw(e.NewRand())
}

// GetClock returns the configured clock or the real one.
func (e *Env) GetClock() clock.Clock {
	if e.Clock != nil {
		return e.Clock
	}
	return clock.Real()
}

// Bus delivers messages from background goroutines (timers, settlement
// dispatch) into the running program. Sends before Attach are dropped.
type Bus struct {
	mu   sync.RWMutex
	send func(tea.Msg)
}

// Attach routes subsequent sends to f, typically tea.Program.Send.
func (b *Bus) Attach(f func(tea.Msg)) {
	b.mu.Lock()
	b.send = f
	b.mu.Unlock()
}

// Send posts msg without blocking the caller. Safe on a nil Bus.
func (b *Bus) Send(msg tea.Msg) {
	if b == nil {
		return
	}
	b.mu.RLock()
	f := b.send
	b.mu.RUnlock()
	if f != nil {
		go f(msg)
	}
}
