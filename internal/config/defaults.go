package config

import (
	_ "embed"

	"github.com/vovakirdan/tui-fishing/internal/sim"
)

//go:embed defaults/fishing.yaml
var defaultFishingYAML []byte

// DefaultHoldWindowMS is how long one key press keeps the reel held. It
// must cover the terminal's initial key-repeat delay (typically 500-660ms)
// so a held key does not drop out before auto-repeat starts.
const DefaultHoldWindowMS = 700

// DefaultFishingConfig returns the default fishing configuration. The
// simulation values come from sim.DefaultSetup.
func DefaultFishingConfig() FishingConfig {
	s := sim.DefaultSetup()
	return FishingConfig{
		Column: ColumnConfig{
			Lower: s.Column.Lower,
			Upper: s.Column.Upper,
		},
		Bar: BarConfig{
			HalfHeight: s.BarHalfHeight,
			StartY:     s.BarStartY,
		},
		Physics: PhysicsConfig{
			Gravity:          s.Physics.Gravity,
			TerminalVelocity: s.Physics.TerminalVelocity,
			PlayerAccel:      s.Physics.PlayerAccel,
			BounceDampening:  s.Physics.BounceDampening,
			SnapThreshold:    s.Physics.SnapThreshold,
		},
		Fish: FishConfig{
			Type:                 s.FishType.String(),
			Behaviour:            s.Behaviour.String(),
			HalfHeight:           s.FishHalfHeight,
			CaptureOffset:        s.CaptureOffset,
			StartY:               s.FishStartY,
			SpeedMin:             s.Speed.Min,
			SpeedMax:             s.Speed.Max,
			OscillationFrequency: s.Physics.OscillationFrequency,
			AccelModifier:        s.Physics.AccelModifier,
		},
		Progress: ProgressConfig{
			Initial:   s.InitialProgress,
			FillRate:  s.Physics.FillRate,
			DrainRate: s.Physics.DrainRate,
		},
		Input: InputConfig{
			HoldWindowMS: DefaultHoldWindowMS,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultFishingYAML
}
