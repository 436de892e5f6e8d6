package sim

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/vovakirdan/tui-fishing/internal/core"
)

// Physics holds the setup-time tuning constants of the simulation.
type Physics struct {
	Gravity          float64 // Downward acceleration, negative
	TerminalVelocity float64 // Lowest velocity gravity can reach, negative
	PlayerAccel      float64 // Upward thrust while the input is held
	BounceDampening  float64
	SnapThreshold    float64

	OscillationFrequency float64 // Radians per simulated second
	AccelModifier        float64

	FillRate  float64 // Progress per second while over the fish, positive
	DrainRate float64 // Progress per second otherwise, negative
}

// Setup describes the session created by NewState.
type Setup struct {
	Column Column

	BarHalfHeight float64
	BarStartY     float64

	FishType       FishType
	Behaviour      Behaviour
	FishHalfHeight float64
	CaptureOffset  float64
	FishStartY     float64
	Speed          SpeedRange

	InitialProgress float64
	Physics         Physics
	Seed            int64
}

// DefaultSetup returns the stock session: a 256 unit column, a 64 unit bar
// resting on the bottom and a simple fish in the middle.
func DefaultSetup() Setup {
	col := Column{Lower: -128, Upper: 128}
	return Setup{
		Column:          col,
		BarHalfHeight:   32,
		BarStartY:       col.Lower + 32,
		FishType:        FishSimple,
		Behaviour:       FishSimple.Behaviour(),
		FishHalfHeight:  8,
		CaptureOffset:   0,
		FishStartY:      FishSimple.DefaultY(),
		Speed:           FishSimple.SpeedRange(),
		InitialProgress: 0.25,
		Physics: Physics{
			Gravity:              -400,
			TerminalVelocity:     -300,
			PlayerAccel:          800,
			BounceDampening:      0.5,
			SnapThreshold:        5,
			OscillationFrequency: 1.0,
			AccelModifier:        0.05,
			FillRate:             0.2,
			DrainRate:            -0.1,
		},
	}
}

// TickInput carries the per-tick signals supplied by the caller.
type TickInput struct {
	Held    bool    // Capture input held this tick
	Dt      float64 // Tick duration in seconds
	Elapsed float64 // Simulated seconds since the session started
}

// TickResult is what a tick produced.
type TickResult struct {
	OverFish bool
	Progress float64
}

// State is the whole simulation: one bar, one fish, the column and the
// catch progress. It is owned by the loop driving the ticks.
type State struct {
	Column   Column
	Bar      Bar
	Fish     Fish
	Progress float64

	physics Physics
	bounce  Bounce
}

// NewState validates the setup and spawns the bar and the fish.
// A degenerate column is reported as ErrDegenerateColumn.
func NewState(s Setup) (*State, error) {
	col, err := NewColumn(s.Column.Lower, s.Column.Upper)
	if err != nil {
		return nil, err
	}
	if !col.Fits(s.BarHalfHeight) {
		return nil, fmt.Errorf("%w: bar half-height %v does not fit column of size %v",
			ErrInvalidSetup, s.BarHalfHeight, col.Size())
	}
	if !col.Fits(s.FishHalfHeight) {
		return nil, fmt.Errorf("%w: fish half-height %v does not fit column of size %v",
			ErrInvalidSetup, s.FishHalfHeight, col.Size())
	}
	if !s.Behaviour.Implemented() {
		return nil, fmt.Errorf("%w: %s", ErrBehaviourUnimplemented, s.Behaviour)
	}
	if s.Speed.Min < 0 || s.Speed.Max < s.Speed.Min {
		return nil, fmt.Errorf("%w: speed range [%v, %v]", ErrInvalidSetup, s.Speed.Min, s.Speed.Max)
	}
	if s.Physics.TerminalVelocity >= 0 {
		return nil, fmt.Errorf("%w: terminal velocity %v must be negative",
			ErrInvalidSetup, s.Physics.TerminalVelocity)
	}

	barLo, barHi := col.Bounds(s.BarHalfHeight)
	fishLo, fishHi := col.Bounds(s.FishHalfHeight)

	st := &State{
		Column: col,
		Bar: Bar{
			Body: Body{
				Y:          core.ClampF(s.BarStartY, barLo, barHi),
				HalfHeight: s.BarHalfHeight,
				Gravity:    true,
			},
		},
		Fish: Fish{
			Body: Body{
				Y:          core.ClampF(s.FishStartY, fishLo, fishHi),
				HalfHeight: s.FishHalfHeight,
			},
			Type:          s.FishType,
			Behaviour:     s.Behaviour,
			Speed:         drawSpeed(s.Speed, s.Seed),
			CaptureOffset: s.CaptureOffset,
		},
		Progress: core.ClampF(s.InitialProgress, 0, 1),
		physics:  s.Physics,
		bounce: Bounce{
			Dampening:     s.Physics.BounceDampening,
			SnapThreshold: s.Physics.SnapThreshold,
			MaxSpeed:      math.Abs(s.Physics.TerminalVelocity),
		},
	}
	return st, nil
}

// drawSpeed picks the fish speed once from the range.
func drawSpeed(r SpeedRange, seed int64) float64 {
	if r.Max <= r.Min {
		return r.Min
	}
	rng := rand.New(rand.NewSource(seed))
	return r.Min + rng.Float64()*(r.Max-r.Min)
}

// Step runs one tick. Stages run in a fixed order and each one sees the
// state committed by the stages before it.
func (s *State) Step(in TickInput) TickResult {
	p := s.physics

	s.Bar.committed = false
	s.Fish.committed = false

	ApplyGravity(&s.Bar.Body, p.Gravity, p.TerminalVelocity, in.Dt)
	ApplyGravity(&s.Fish.Body, p.Gravity, p.TerminalVelocity, in.Dt)
	ApplyPlayerAccel(&s.Bar, in.Held, p.PlayerAccel, in.Dt)
	ResolveBarBounds(&s.Bar, s.Column, s.bounce, in.Dt)
	DriveFish(&s.Fish, in.Elapsed, p.OscillationFrequency, p.AccelModifier)
	ResolveFishBounds(&s.Fish, s.Column, in.Dt)
	IntegrateVelocity(in.Dt, &s.Bar.Body, &s.Fish.Body)

	over := DetectOverlap(s.Bar, s.Fish)
	if over {
		s.Bar.Visual = BarOverFish
	} else {
		s.Bar.Visual = BarNormal
	}
	s.Progress = AccrueProgress(s.Progress, over, p.FillRate, p.DrainRate, in.Dt)

	return TickResult{OverFish: over, Progress: s.Progress}
}

// Depth layers assigned to the rendered entities.
const (
	LayerColumn = 0
	LayerBar    = 1
	LayerFish   = 2
)

// Transform places an entity for a renderer. X is fixed per entity.
type Transform struct {
	X, Y, Z float64
}

// Snapshot is the committed end-of-tick state read by renderers.
type Snapshot struct {
	Column         Column
	Bar            Transform
	BarHalfHeight  float64
	BarVisual      BarVisual
	Fish           Transform
	FishHalfHeight float64
	Progress       float64
}

// Snapshot returns the state as seen by rendering collaborators.
func (s *State) Snapshot() Snapshot {
	return Snapshot{
		Column:         s.Column,
		Bar:            Transform{X: 0, Y: s.Bar.Y, Z: LayerBar},
		BarHalfHeight:  s.Bar.HalfHeight,
		BarVisual:      s.Bar.Visual,
		Fish:           Transform{X: 0, Y: s.Fish.Y, Z: LayerFish},
		FishHalfHeight: s.Fish.HalfHeight,
		Progress:       s.Progress,
	}
}
