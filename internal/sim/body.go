package sim

// Body is the vertical kinematic state shared by the bar and the fish.
type Body struct {
	Y          float64 // Center position
	VY         float64 // Vertical velocity, positive is up
	HalfHeight float64
	Gravity    bool // Whether the gravity stage acts on this body

	// committed is set when a boundary resolver has already written this
	// tick's position. The velocity integrator skips committed bodies.
	committed bool
}

// BarVisual is the derived display state of the bar.
type BarVisual int

const (
	BarNormal BarVisual = iota
	BarOverFish
)

// String returns the visual state name.
func (v BarVisual) String() string {
	if v == BarOverFish {
		return "over-fish"
	}
	return "normal"
}

// Bar is the player-controlled segment.
type Bar struct {
	Body
	Visual BarVisual
}

// Fish is the autonomously moving target.
type Fish struct {
	Body
	Type          FishType
	Behaviour     Behaviour
	Speed         float64 // Drawn once at spawn, also the velocity cap
	CaptureOffset float64 // Offset of the capture point from the fish center
}

// CapturePoint returns the y coordinate tested against the bar.
func (f Fish) CapturePoint() float64 {
	return f.Y + f.CaptureOffset
}
