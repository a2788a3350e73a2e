// Package gameplay runs a play-through: it owns the session, applies player
// intents to it and produces snapshots for the renderers.
package gameplay

import (
	"time"

	"github.com/leonelquinteros/gotext"

	"solitaire/pkg/engine/schedule"
	"solitaire/pkg/game/catalog"
	"solitaire/pkg/game/shuffle"
	"solitaire/pkg/game/state"
)

// Default celebration timings.
const (
	DefaultRecycleFor   = 4 * time.Second
	DefaultCelebrateFor = 8 * time.Second
)

// Options tune a Controller. Zero values take the defaults.
type Options struct {
	RecycleFor   time.Duration
	CelebrateFor time.Duration
	ShareURL     string
	Clock        func() time.Time
}

// Controller is the session state machine: Idle, Playing, Completed.
// It is not safe for concurrent use; every call is expected on the game loop.
type Controller struct {
	catalog  *catalog.Catalog
	shuffler *shuffle.Shuffler
	opts     Options

	session *state.Session // nil while Idle
	epoch   uint64
	timers  *schedule.Queue
}

// New creates an idle controller.
func New(c *catalog.Catalog, s *shuffle.Shuffler, opts Options) *Controller {
	if opts.RecycleFor <= 0 {
		opts.RecycleFor = DefaultRecycleFor
	}
	if opts.CelebrateFor <= 0 {
		opts.CelebrateFor = DefaultCelebrateFor
	}
	if opts.Clock == nil {
		opts.Clock = time.Now
	}
	return &Controller{
		catalog:  c,
		shuffler: s,
		opts:     opts,
		timers:   schedule.NewQueue(),
	}
}

// Phase returns the current phase.
func (c *Controller) Phase() state.Phase {
	if c.session == nil {
		return state.Idle
	}
	return c.session.Phase
}

// Epoch increases every time the board is started over. Scheduled effects
// from an older epoch are dropped.
func (c *Controller) Epoch() uint64 {
	return c.epoch
}

// Puzzles lists the selectable journeys.
func (c *Controller) Puzzles() []*catalog.Puzzle {
	return c.catalog.List()
}

// Snapshot returns the renderer view of the current state.
func (c *Controller) Snapshot() state.Snapshot {
	if c.session == nil {
		return state.IdleSnapshot(c.catalog.List())
	}
	return c.session.Snapshot(c.catalog.List())
}

// Tick runs every scheduled effect that is due at now.
func (c *Controller) Tick(now time.Time) int {
	return c.timers.Advance(now)
}

// Pending returns the number of scheduled effects not yet run.
func (c *Controller) Pending() int {
	return c.timers.Len()
}

// dynamicGet looks up translations whose arguments are filled in at runtime.
// A function variable keeps go vet's printf check quiet.
var dynamicGet = gotext.Get

// logMessage adds a translated entry to the session's activity log
func (c *Controller) logMessage(key string, a ...any) {
	if c.session == nil {
		return
	}
	c.session.AddLog(dynamicGet(key, a...))
}

// playing returns the session if intents that change the board are allowed.
func (c *Controller) playing() (*state.Session, bool) {
	if c.session == nil || c.session.Phase != state.Playing {
		return nil, false
	}
	return c.session, true
}
