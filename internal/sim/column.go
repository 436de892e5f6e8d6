// Package sim implements the fixed-timestep simulation of the fishing
// minigame: a player-driven bar and an oscillating fish share a bounded
// column, and catch progress fills while the bar covers the fish.
//
// The package has no dependency on rendering or input devices. Callers
// supply a "held" flag, the tick duration and the elapsed simulation time
// for every tick, and read positions and progress back after Step.
package sim

import (
	"errors"
	"fmt"
)

var (
	// ErrDegenerateColumn is returned when a column's upper extent does not
	// exceed its lower extent.
	ErrDegenerateColumn = errors.New("sim: column upper extent must exceed lower extent")

	// ErrInvalidSetup is returned for setup values that make the simulation
	// undefined (non-positive sizes, entities that do not fit the column).
	ErrInvalidSetup = errors.New("sim: invalid setup")
)

// Column is the bounded vertical range the bar and the fish move in.
type Column struct {
	Lower float64
	Upper float64
}

// NewColumn validates and returns a column.
func NewColumn(lower, upper float64) (Column, error) {
	if !(upper > lower) {
		return Column{}, fmt.Errorf("%w (lower=%v, upper=%v)", ErrDegenerateColumn, lower, upper)
	}
	return Column{Lower: lower, Upper: upper}, nil
}

// Size returns the height of the column.
func (c Column) Size() float64 {
	return c.Upper - c.Lower
}

// Bounds returns the range a center point may occupy for an entity with the
// given half extent.
func (c Column) Bounds(halfExtent float64) (lo, hi float64) {
	return c.Lower + halfExtent, c.Upper - halfExtent
}

// Fits reports whether an entity with the given half extent fits inside.
func (c Column) Fits(halfExtent float64) bool {
	return halfExtent > 0 && 2*halfExtent <= c.Size()
}
