// Package config provides YAML-based configuration loading and validation
// for the fishing minigame.
package config

import (
	"time"

	"github.com/vovakirdan/tui-fishing/internal/sim"
)

// FishingConfig contains all setup-time configuration for a session.
type FishingConfig struct {
	Column   ColumnConfig   `yaml:"column"`
	Bar      BarConfig      `yaml:"bar"`
	Physics  PhysicsConfig  `yaml:"physics"`
	Fish     FishConfig     `yaml:"fish"`
	Progress ProgressConfig `yaml:"progress"`
	Input    InputConfig    `yaml:"input"`
}

// ColumnConfig defines the playable vertical range.
type ColumnConfig struct {
	Lower float64 `yaml:"lower"`
	Upper float64 `yaml:"upper"`
}

// BarConfig defines the player bar.
type BarConfig struct {
	HalfHeight float64 `yaml:"half_height"`
	StartY     float64 `yaml:"start_y"`
}

// PhysicsConfig defines gravity, thrust and bounce parameters.
type PhysicsConfig struct {
	Gravity          float64 `yaml:"gravity"`
	TerminalVelocity float64 `yaml:"terminal_velocity"`
	PlayerAccel      float64 `yaml:"player_accel"`
	BounceDampening  float64 `yaml:"bounce_dampening"`
	SnapThreshold    float64 `yaml:"snap_threshold"`
}

// FishConfig defines the fish and its motion generator.
type FishConfig struct {
	Type                 string  `yaml:"type"`
	Behaviour            string  `yaml:"behaviour"`
	HalfHeight           float64 `yaml:"half_height"`
	CaptureOffset        float64 `yaml:"capture_offset"`
	StartY               float64 `yaml:"start_y"`
	SpeedMin             float64 `yaml:"speed_min"`
	SpeedMax             float64 `yaml:"speed_max"`
	OscillationFrequency float64 `yaml:"oscillation_frequency"`
	AccelModifier        float64 `yaml:"accel_modifier"`
}

// ProgressConfig defines catch progress rates.
type ProgressConfig struct {
	Initial   float64 `yaml:"initial"`
	FillRate  float64 `yaml:"fill_rate"`
	DrainRate float64 `yaml:"drain_rate"`
}

// InputConfig defines how key presses become a held signal.
type InputConfig struct {
	HoldWindowMS int `yaml:"hold_window_ms"`
}

// HoldWindow returns the hold latch duration.
func (c InputConfig) HoldWindow() time.Duration {
	return time.Duration(c.HoldWindowMS) * time.Millisecond
}

// Setup converts a validated config into a simulation setup.
// Call Validate first; unknown names fall back to the zero variants here.
func (c FishingConfig) Setup(seed int64) sim.Setup {
	fishType, _ := sim.ParseFishType(c.Fish.Type)
	behaviour, ok := sim.ParseBehaviour(c.Fish.Behaviour)
	if !ok {
		behaviour = fishType.Behaviour()
	}

	return sim.Setup{
		Column:          sim.Column{Lower: c.Column.Lower, Upper: c.Column.Upper},
		BarHalfHeight:   c.Bar.HalfHeight,
		BarStartY:       c.Bar.StartY,
		FishType:        fishType,
		Behaviour:       behaviour,
		FishHalfHeight:  c.Fish.HalfHeight,
		CaptureOffset:   c.Fish.CaptureOffset,
		FishStartY:      c.Fish.StartY,
		Speed:           sim.SpeedRange{Min: c.Fish.SpeedMin, Max: c.Fish.SpeedMax},
		InitialProgress: c.Progress.Initial,
		Physics: sim.Physics{
			Gravity:              c.Physics.Gravity,
			TerminalVelocity:     c.Physics.TerminalVelocity,
			PlayerAccel:          c.Physics.PlayerAccel,
			BounceDampening:      c.Physics.BounceDampening,
			SnapThreshold:        c.Physics.SnapThreshold,
			OscillationFrequency: c.Fish.OscillationFrequency,
			AccelModifier:        c.Fish.AccelModifier,
			FillRate:             c.Progress.FillRate,
			DrainRate:            c.Progress.DrainRate,
		},
		Seed: seed,
	}
}
