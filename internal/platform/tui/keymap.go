package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
)

// KeyMap defines the key bindings for the game screen.
type KeyMap struct {
	Reel key.Binding
	Help key.Binding
	Quit key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Reel, k.Help, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Reel},
		{k.Help, k.Quit},
	}
}

// DefaultKeyMap returns default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Reel: key.NewBinding(
			key.WithKeys(" ", "up", "w"),
			key.WithHelp("space/up/w", "hold to reel (lift the bar)"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "toggle help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// HoldLatch turns discrete key presses into a per-tick held signal.
// Terminals report presses and auto-repeats but no releases, so the input
// counts as held until a full window passes without a press.
type HoldLatch struct {
	window    int // Window length in ticks
	remaining int
}

// NewHoldLatch creates a latch whose window is the given duration at the
// given tick rate. The window is at least one tick.
func NewHoldLatch(window time.Duration, tickRate int) *HoldLatch {
	if tickRate <= 0 {
		tickRate = 60
	}
	// Ceiling of window*tickRate/1s in integer nanoseconds.
	ticks := int((int64(window)*int64(tickRate) + int64(time.Second) - 1) / int64(time.Second))
	if ticks < 1 {
		ticks = 1
	}
	return &HoldLatch{window: ticks}
}

// Press reopens the latch for a full window.
func (h *HoldLatch) Press() {
	h.remaining = h.window
}

// Tick reports whether the input is held this tick and advances the latch.
func (h *HoldLatch) Tick() bool {
	if h.remaining <= 0 {
		return false
	}
	h.remaining--
	return true
}
