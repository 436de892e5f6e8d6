package sim

import (
	"fmt"
	"math"

	"github.com/vovakirdan/tui-fishing/internal/core"
)

// Bounce controls the bar's response to hitting a column bound.
type Bounce struct {
	Dampening     float64 // Fraction of speed kept after reversal
	SnapThreshold float64 // Speeds below this after a bounce become zero
	MaxSpeed      float64 // Magnitude cap applied before resolving
}

// ApplyGravity accelerates a gravity-affected body downwards, saturating at
// the terminal velocity. Bodies already at or past terminal are left alone.
// Gravity and terminal are negative (downwards).
func ApplyGravity(b *Body, gravity, terminal, dt float64) {
	if !b.Gravity {
		return
	}
	if b.VY <= terminal {
		return
	}
	b.VY = math.Max(b.VY+gravity*dt, terminal)
}

// ApplyPlayerAccel adds thrust to the bar while the capture input is held.
func ApplyPlayerAccel(bar *Bar, held bool, accel, dt float64) {
	if held {
		bar.VY += accel * dt
	}
}

// ResolveBarBounds moves the bar for this tick and commits its position.
// On contact with either bound the position is clamped and the velocity is
// reversed and damped; a damped speed under the snap threshold becomes zero.
func ResolveBarBounds(bar *Bar, col Column, bounce Bounce, dt float64) {
	if bounce.MaxSpeed > 0 {
		bar.VY = core.ClampF(bar.VY, -bounce.MaxSpeed, bounce.MaxSpeed)
	}

	lo, hi := col.Bounds(bar.HalfHeight)
	next := bar.Y + bar.VY*dt

	bounced := false
	switch {
	case next > hi:
		next = hi
		bounced = true
	case next < lo:
		next = lo
		bounced = true
	}

	if bounced {
		bar.VY = -bar.VY * bounce.Dampening
		if math.Abs(bar.VY) < bounce.SnapThreshold {
			bar.VY = 0
		}
	}

	bar.Y = next
	bar.committed = true
}

// DriveFish updates the fish velocity from its behaviour. The oscillator is
// sampled at the absolute elapsed time, so motion is a function of
// simulation time rather than of accumulated phase.
func DriveFish(f *Fish, elapsed, frequency, modifier float64) {
	switch f.Behaviour {
	case BehaviourSmooth:
		accel := f.Speed * math.Sin(elapsed*frequency) * modifier
		f.VY = core.ClampF(f.VY+accel, -f.Speed, f.Speed)
	case BehaviourDart, BehaviourSinker, BehaviourWobble, BehaviourRunner, BehaviourPuffer:
		// Rejected by NewState, so a running simulation never gets here.
		panic(fmt.Sprintf("sim: no motion generator for behaviour %s", f.Behaviour))
	default:
		panic(fmt.Sprintf("sim: unknown behaviour %d", int(f.Behaviour)))
	}
}

// ResolveFishBounds moves the fish for this tick and commits its position.
// The fish stops dead at a bound instead of bouncing.
func ResolveFishBounds(f *Fish, col Column, dt float64) {
	lo, hi := col.Bounds(f.HalfHeight)
	next := f.Y + f.VY*dt

	if next > hi || next < lo {
		next = core.ClampF(next, lo, hi)
		f.VY = 0
	}

	f.Y = next
	f.committed = true
}

// IntegrateVelocity applies velocity to every body whose position has not
// been committed by a boundary resolver this tick.
func IntegrateVelocity(dt float64, bodies ...*Body) {
	for _, b := range bodies {
		if b.committed {
			continue
		}
		b.Y += b.VY * dt
		b.committed = true
	}
}

// DetectOverlap reports whether the fish's capture point lies within the
// bar's extent. Both edges count as covered.
func DetectOverlap(bar Bar, f Fish) bool {
	p := f.CapturePoint()
	return bar.Y-bar.HalfHeight <= p && p <= bar.Y+bar.HalfHeight
}

// AccrueProgress fills progress while over the fish and drains it otherwise.
// The result is clamped to [0, 1].
func AccrueProgress(progress float64, over bool, fillRate, drainRate, dt float64) float64 {
	rate := drainRate
	if over {
		rate = fillRate
	}
	return core.ClampF(progress+rate*dt, 0, 1)
}
