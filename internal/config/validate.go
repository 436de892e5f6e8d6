package config

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"

	"github.com/vovakirdan/tui-fishing/internal/sim"
)

// ErrNotFinite is returned for numeric settings that are NaN or infinite.
var ErrNotFinite = errors.New("value must be a finite number")

// Validate checks the configuration before a session is created.
// A degenerate column wraps sim.ErrDegenerateColumn and a declared but
// unimplemented behaviour wraps sim.ErrBehaviourUnimplemented.
func (c FishingConfig) Validate() error {
	// NaN and Inf pass every ordered comparison below or poison the
	// integrators, so they are rejected before anything else.
	if err := c.checkFinite(); err != nil {
		return err
	}

	col, err := sim.NewColumn(c.Column.Lower, c.Column.Upper)
	if err != nil {
		return err
	}

	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf(format, args...))
		}
	}

	check(col.Fits(c.Bar.HalfHeight), "bar.half_height %v must be positive and fit a column of size %v", c.Bar.HalfHeight, col.Size())
	check(col.Fits(c.Fish.HalfHeight), "fish.half_height %v must be positive and fit a column of size %v", c.Fish.HalfHeight, col.Size())
	check(c.Physics.Gravity < 0, "physics.gravity %v must be negative", c.Physics.Gravity)
	check(c.Physics.TerminalVelocity < 0, "physics.terminal_velocity %v must be negative", c.Physics.TerminalVelocity)
	check(c.Physics.PlayerAccel > 0, "physics.player_accel %v must be positive", c.Physics.PlayerAccel)
	check(c.Physics.BounceDampening >= 0 && c.Physics.BounceDampening <= 1, "physics.bounce_dampening %v must be within [0, 1]", c.Physics.BounceDampening)
	check(c.Physics.SnapThreshold >= 0, "physics.snap_threshold %v must not be negative", c.Physics.SnapThreshold)
	check(c.Fish.SpeedMin >= 0 && c.Fish.SpeedMin <= c.Fish.SpeedMax, "fish speed range [%v, %v] is invalid", c.Fish.SpeedMin, c.Fish.SpeedMax)
	check(c.Fish.OscillationFrequency > 0, "fish.oscillation_frequency %v must be positive", c.Fish.OscillationFrequency)
	check(c.Fish.AccelModifier >= 0, "fish.accel_modifier %v must not be negative", c.Fish.AccelModifier)
	check(c.Progress.Initial >= 0 && c.Progress.Initial <= 1, "progress.initial %v must be within [0, 1]", c.Progress.Initial)
	check(c.Progress.FillRate > 0, "progress.fill_rate %v must be positive", c.Progress.FillRate)
	check(c.Progress.DrainRate < 0, "progress.drain_rate %v must be negative", c.Progress.DrainRate)
	check(c.Progress.FillRate > -c.Progress.DrainRate, "progress.fill_rate %v must outpace progress.drain_rate %v", c.Progress.FillRate, c.Progress.DrainRate)
	check(c.Input.HoldWindowMS > 0, "input.hold_window_ms %d must be positive", c.Input.HoldWindowMS)

	if _, ok := sim.ParseFishType(c.Fish.Type); !ok {
		errs = append(errs, unknownName("fish.type", c.Fish.Type, sim.FishTypeNames()))
	}

	if c.Fish.Behaviour != "" {
		b, ok := sim.ParseBehaviour(c.Fish.Behaviour)
		switch {
		case !ok:
			errs = append(errs, unknownName("fish.behaviour", c.Fish.Behaviour, sim.BehaviourNames()))
		case !b.Implemented():
			errs = append(errs, fmt.Errorf("fish.behaviour %q: %w", c.Fish.Behaviour, sim.ErrBehaviourUnimplemented))
		}
	}

	return errors.Join(errs...)
}

// checkFinite rejects NaN and infinite values in every numeric field.
func (c FishingConfig) checkFinite() error {
	fields := []struct {
		name string
		val  float64
	}{
		{"column.lower", c.Column.Lower},
		{"column.upper", c.Column.Upper},
		{"bar.half_height", c.Bar.HalfHeight},
		{"bar.start_y", c.Bar.StartY},
		{"physics.gravity", c.Physics.Gravity},
		{"physics.terminal_velocity", c.Physics.TerminalVelocity},
		{"physics.player_accel", c.Physics.PlayerAccel},
		{"physics.bounce_dampening", c.Physics.BounceDampening},
		{"physics.snap_threshold", c.Physics.SnapThreshold},
		{"fish.half_height", c.Fish.HalfHeight},
		{"fish.capture_offset", c.Fish.CaptureOffset},
		{"fish.start_y", c.Fish.StartY},
		{"fish.speed_min", c.Fish.SpeedMin},
		{"fish.speed_max", c.Fish.SpeedMax},
		{"fish.oscillation_frequency", c.Fish.OscillationFrequency},
		{"fish.accel_modifier", c.Fish.AccelModifier},
		{"progress.initial", c.Progress.Initial},
		{"progress.fill_rate", c.Progress.FillRate},
		{"progress.drain_rate", c.Progress.DrainRate},
	}

	var errs []error
	for _, f := range fields {
		if math.IsNaN(f.val) || math.IsInf(f.val, 0) {
			errs = append(errs, fmt.Errorf("%s: %w (got %v)", f.name, ErrNotFinite, f.val))
		}
	}
	return errors.Join(errs...)
}

// unknownName builds an error for a name that matches nothing, suggesting
// the closest candidate when one is near enough.
func unknownName(field, got string, candidates []string) error {
	if suggestion, ok := Suggest(got, candidates); ok {
		return fmt.Errorf("%s: unknown value %q (did you mean %q?)", field, got, suggestion)
	}
	return fmt.Errorf("%s: unknown value %q (expected one of %s)", field, got, strings.Join(candidates, ", "))
}

// Suggest returns the candidate closest to name by edit distance, provided
// the distance is small relative to the candidate length.
func Suggest(name string, candidates []string) (string, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return "", false
	}

	type scored struct {
		val  string
		dist int
	}
	var results []scored
	for _, cand := range candidates {
		dist := levenshtein.ComputeDistance(name, cand)
		if dist > suggestLimit(len(cand)) {
			continue
		}
		results = append(results, scored{val: cand, dist: dist})
	}
	if len(results) == 0 {
		return "", false
	}

	sort.SliceStable(results, func(i, j int) bool {
		if results[i].dist == results[j].dist {
			return results[i].val < results[j].val
		}
		return results[i].dist < results[j].dist
	})
	return results[0].val, true
}

func suggestLimit(length int) int {
	switch {
	case length <= 4:
		return 1
	case length <= 8:
		return 2
	default:
		return 3
	}
}
