package sim

import (
	"errors"
	"fmt"
	"strings"
)

// ErrBehaviourUnimplemented is returned when a fish is configured with a
// behaviour that has no motion generator.
var ErrBehaviourUnimplemented = errors.New("sim: fish behaviour not implemented")

// Behaviour selects the motion generator of a fish.
type Behaviour int

const (
	BehaviourSmooth Behaviour = iota
	BehaviourDart
	BehaviourSinker
	BehaviourWobble
	BehaviourRunner
	BehaviourPuffer
)

var behaviourNames = [...]string{
	BehaviourSmooth: "smooth",
	BehaviourDart:   "dart",
	BehaviourSinker: "sinker",
	BehaviourWobble: "wobble",
	BehaviourRunner: "runner",
	BehaviourPuffer: "puffer",
}

// String returns the lower-case behaviour name.
func (b Behaviour) String() string {
	if b < 0 || int(b) >= len(behaviourNames) {
		return fmt.Sprintf("behaviour(%d)", int(b))
	}
	return behaviourNames[b]
}

// Implemented reports whether the behaviour has a motion generator.
func (b Behaviour) Implemented() bool {
	switch b {
	case BehaviourSmooth:
		return true
	case BehaviourDart, BehaviourSinker, BehaviourWobble, BehaviourRunner, BehaviourPuffer:
		return false
	default:
		return false
	}
}

// BehaviourNames returns every declared behaviour name in declaration order.
func BehaviourNames() []string {
	return append([]string(nil), behaviourNames[:]...)
}

// ParseBehaviour looks a behaviour up by name, case-insensitively.
func ParseBehaviour(name string) (Behaviour, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	for i, n := range behaviourNames {
		if n == name {
			return Behaviour(i), true
		}
	}
	return 0, false
}

// SpeedRange is the closed interval a fish's speed is drawn from.
type SpeedRange struct {
	Min float64
	Max float64
}

// FishType identifies a kind of fish and its spawn defaults.
type FishType int

const (
	FishSimple FishType = iota
)

var fishTypeNames = [...]string{
	FishSimple: "simple",
}

// String returns the lower-case type name.
func (t FishType) String() string {
	if t < 0 || int(t) >= len(fishTypeNames) {
		return fmt.Sprintf("fish(%d)", int(t))
	}
	return fishTypeNames[t]
}

// SpeedRange returns the speed interval for the type.
func (t FishType) SpeedRange() SpeedRange {
	return SpeedRange{Min: 20, Max: 40}
}

// Behaviour returns the behaviour a fish of this type swims with.
func (t FishType) Behaviour() Behaviour {
	return BehaviourSmooth
}

// DefaultY returns the spawn position for the type.
func (t FishType) DefaultY() float64 {
	return 0
}

// FishTypeNames returns every fish type name.
func FishTypeNames() []string {
	return append([]string(nil), fishTypeNames[:]...)
}

// ParseFishType looks a fish type up by name, case-insensitively.
func ParseFishType(name string) (FishType, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	for i, n := range fishTypeNames {
		if n == name {
			return FishType(i), true
		}
	}
	return 0, false
}
