package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-fishing/internal/core"
	"github.com/vovakirdan/tui-fishing/internal/games/fishing"
	"github.com/vovakirdan/tui-fishing/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in this terminal",
	Long: `Start a fishing session in the current terminal.

Controls:
  Space/Up/W - Hold to reel (lifts the bar)
  ?          - Toggle help
  Q/Ctrl+C   - Quit

Terminals report key repeats rather than key releases, so the reel stays
held for input.hold_window_ms after the last repeat.

Examples:
  fishing play
  fishing play --seed 42
  fishing play --config ./my-fishing.yaml`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func runPlay(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	// Get terminal size
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	rc := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     resolveSeed(),
	}

	game, err := fishing.New(cfg, rc)
	if err != nil {
		return err
	}
	logger.Debug("session created", "seed", rc.Seed, "fish_speed", game.FishSpeed())

	if err := tui.Run(game, rc, cfg.Input.HoldWindow()); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}
