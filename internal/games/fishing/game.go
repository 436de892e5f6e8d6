// Package fishing implements the fishing minigame on top of the simulation
// core. It turns platform ticks into the time signal, the reel action into
// the held signal, and draws the committed state into a screen buffer.
package fishing

import (
	"fmt"

	"github.com/vovakirdan/tui-fishing/internal/config"
	"github.com/vovakirdan/tui-fishing/internal/core"
	"github.com/vovakirdan/tui-fishing/internal/sim"
)

// Game implements the fishing minigame.
type Game struct {
	state   *sim.State
	cfg     config.FishingConfig
	runtime core.RuntimeConfig
	dt      float64 // Fixed tick duration in seconds
	ticks   int     // Ticks since the session started
	elapsed float64 // Simulated seconds since the session started
	over    bool    // Overlap signal of the last tick
}

// New creates a session from a validated configuration.
// The bar and the fish are spawned here and live as long as the Game.
func New(cfg config.FishingConfig, rc core.RuntimeConfig) (*Game, error) {
	state, err := sim.NewState(cfg.Setup(rc.Seed))
	if err != nil {
		return nil, fmt.Errorf("fishing: %w", err)
	}
	return &Game{
		state:   state,
		cfg:     cfg,
		runtime: rc,
		dt:      rc.TickSeconds(),
	}, nil
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "fishing"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Fishing"
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.ticks++
	// Derived from the tick count so long sessions do not accumulate drift.
	g.elapsed = float64(g.ticks) * g.dt

	res := g.state.Step(sim.TickInput{
		Held:    in.Has(core.ActionReel),
		Dt:      g.dt,
		Elapsed: g.elapsed,
	})
	g.over = res.OverFish

	return core.StepResult{State: g.State()}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Progress: g.state.Progress,
		OverFish: g.over,
		Ticks:    g.ticks,
		Elapsed:  g.elapsed,
	}
}

// Snapshot returns the committed simulation state.
func (g *Game) Snapshot() sim.Snapshot {
	return g.state.Snapshot()
}

// FishSpeed returns the speed the fish was spawned with.
func (g *Game) FishSpeed() float64 {
	return g.state.Fish.Speed
}

// Velocities returns the current bar and fish velocities.
func (g *Game) Velocities() (bar, fish float64) {
	return g.state.Bar.VY, g.state.Fish.VY
}
