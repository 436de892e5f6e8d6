package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-fishing/internal/config"
	"github.com/vovakirdan/tui-fishing/internal/core"
	"github.com/vovakirdan/tui-fishing/internal/games/fishing"
)

var (
	flagTicks int
	flagHold  string
	flagEvery int
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Run the simulation headless",
	Long: `Run a session without a terminal UI, driving the reel input from a
scripted pattern, and print a trace of the bar, the fish and the catch
progress.

Hold patterns:
  always   - reel held every tick
  never    - reel never held
  ON/OFF   - held for ON ticks, then released for OFF ticks, repeating

Examples:
  fishing sim --ticks 3600 --hold 20/20
  fishing sim --seed 7 --hold never --every 30`,
	Args: cobra.NoArgs,
	RunE: runSim,
}

func init() {
	simCmd.Flags().IntVar(&flagTicks, "ticks", 600, "Number of ticks to simulate")
	simCmd.Flags().StringVar(&flagHold, "hold", "20/20", "Reel input pattern: always, never or ON/OFF")
	simCmd.Flags().IntVar(&flagEvery, "every", 60, "Print a trace line every N ticks (0 = summary only)")
}

func runSim(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	hold, err := parseHoldPattern(flagHold)
	if err != nil {
		return err
	}
	if flagTicks <= 0 {
		return fmt.Errorf("--ticks must be positive, got %d", flagTicks)
	}

	rc := core.DefaultConfig()
	rc.TickRate = flagFPS
	rc.Seed = resolveSeed()

	summary, err := simulate(cmd.OutOrStdout(), cfg, rc, hold, flagTicks, flagEvery)
	if err != nil {
		return err
	}
	logger.Info("simulation finished",
		"seed", rc.Seed,
		"ticks", summary.Ticks,
		"over_fish", summary.OverTicks,
		"final_progress", fmt.Sprintf("%.3f", summary.FinalProgress),
		"peak_progress", fmt.Sprintf("%.3f", summary.PeakProgress),
	)
	return nil
}

// simSummary aggregates a headless run.
type simSummary struct {
	Ticks         int
	OverTicks     int
	FinalProgress float64
	PeakProgress  float64
	FishSpeed     float64
}

// simulate runs ticks of the game, writing a trace line every `every` ticks.
func simulate(w io.Writer, cfg config.FishingConfig, rc core.RuntimeConfig, hold func(int) bool, ticks, every int) (simSummary, error) {
	game, err := fishing.New(cfg, rc)
	if err != nil {
		return simSummary{}, err
	}

	summary := simSummary{FishSpeed: game.FishSpeed()}
	fmt.Fprintf(w, "fish speed %.2f, tick rate %d\n", summary.FishSpeed, rc.TickRate)
	if every > 0 {
		fmt.Fprintf(w, "  %-6s  %-7s  %-4s  %8s  %8s  %8s  %8s  %-4s  %s\n",
			"Tick", "Time", "Reel", "BarY", "BarVY", "FishY", "FishVY", "Over", "Progress")
	}

	in := core.NewInputFrame()
	for i := 0; i < ticks; i++ {
		in.Clear()
		held := hold(i)
		if held {
			in.Set(core.ActionReel)
		}

		state := game.Step(in).State
		summary.Ticks++
		if state.OverFish {
			summary.OverTicks++
		}
		if state.Progress > summary.PeakProgress {
			summary.PeakProgress = state.Progress
		}
		summary.FinalProgress = state.Progress

		logger.Debug("tick", "n", state.Ticks, "held", held, "over", state.OverFish, "progress", state.Progress)

		if every > 0 && (i+1)%every == 0 {
			snap := game.Snapshot()
			barVY, fishVY := game.Velocities()
			fmt.Fprintf(w, "  %-6d  %-7.2f  %-4s  %8.2f  %8.2f  %8.2f  %8.2f  %-4s  %.3f\n",
				state.Ticks, state.Elapsed, yesNo(held), snap.Bar.Y, barVY, snap.Fish.Y, fishVY,
				yesNo(state.OverFish), state.Progress)
		}
	}

	return summary, nil
}

// parseHoldPattern turns a pattern flag into a per-tick held function.
func parseHoldPattern(pattern string) (func(int) bool, error) {
	switch strings.ToLower(strings.TrimSpace(pattern)) {
	case "always":
		return func(int) bool { return true }, nil
	case "never", "":
		return func(int) bool { return false }, nil
	}

	on, off, ok := strings.Cut(pattern, "/")
	if !ok {
		return nil, fmt.Errorf("invalid hold pattern %q: expected always, never or ON/OFF", pattern)
	}
	onTicks, err := strconv.Atoi(strings.TrimSpace(on))
	if err != nil || onTicks < 0 {
		return nil, fmt.Errorf("invalid hold pattern %q: bad ON count", pattern)
	}
	offTicks, err := strconv.Atoi(strings.TrimSpace(off))
	if err != nil || offTicks < 0 {
		return nil, fmt.Errorf("invalid hold pattern %q: bad OFF count", pattern)
	}
	period := onTicks + offTicks
	if period == 0 {
		return nil, fmt.Errorf("invalid hold pattern %q: empty period", pattern)
	}

	return func(tick int) bool {
		return tick%period < onTicks
	}, nil
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
