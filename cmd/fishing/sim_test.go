package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/vovakirdan/tui-fishing/internal/config"
	"github.com/vovakirdan/tui-fishing/internal/core"
)

func TestParseHoldPattern(t *testing.T) {
	tests := []struct {
		pattern  string
		expected []bool
	}{
		{"always", []bool{true, true, true, true}},
		{"never", []bool{false, false, false, false}},
		{"2/1", []bool{true, true, false, true, true, false}},
		{"0/3", []bool{false, false, false, false}},
		{" 1 / 1 ", []bool{true, false, true, false}},
	}

	for _, tc := range tests {
		t.Run(tc.pattern, func(t *testing.T) {
			hold, err := parseHoldPattern(tc.pattern)
			if err != nil {
				t.Fatalf("parseHoldPattern(%q) failed: %v", tc.pattern, err)
			}
			for i, want := range tc.expected {
				if got := hold(i); got != want {
					t.Errorf("tick %d: held = %v, expected %v", i, got, want)
				}
			}
		})
	}
}

func TestParseHoldPatternErrors(t *testing.T) {
	for _, pattern := range []string{"sometimes", "a/2", "2/b", "0/0", "-1/2"} {
		if _, err := parseHoldPattern(pattern); err == nil {
			t.Errorf("parseHoldPattern(%q) should fail", pattern)
		}
	}
}

func TestSimulate(t *testing.T) {
	hold, err := parseHoldPattern("20/20")
	if err != nil {
		t.Fatal(err)
	}
	rc := core.DefaultConfig()
	rc.Seed = 3

	var out bytes.Buffer
	summary, err := simulate(&out, config.DefaultFishingConfig(), rc, hold, 600, 60)
	if err != nil {
		t.Fatalf("simulate() failed: %v", err)
	}

	if summary.Ticks != 600 {
		t.Errorf("Ticks = %d, expected 600", summary.Ticks)
	}
	if summary.FinalProgress < 0 || summary.FinalProgress > 1 {
		t.Errorf("FinalProgress = %v out of range", summary.FinalProgress)
	}
	if summary.PeakProgress < summary.FinalProgress {
		t.Errorf("PeakProgress %v below final %v", summary.PeakProgress, summary.FinalProgress)
	}
	if summary.FishSpeed < 20 || summary.FishSpeed > 40 {
		t.Errorf("FishSpeed = %v outside [20, 40]", summary.FishSpeed)
	}

	// Header + column header + one line per 60 ticks
	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	if len(lines) != 12 {
		t.Errorf("Expected 12 output lines, got %d:\n%s", len(lines), out.String())
	}
}

func TestSimulateRejectsDegenerateColumn(t *testing.T) {
	cfg := config.DefaultFishingConfig()
	cfg.Column.Lower = 200

	var out bytes.Buffer
	if _, err := simulate(&out, cfg, core.DefaultConfig(), func(int) bool { return false }, 10, 0); err == nil {
		t.Error("simulate() should fail for a degenerate column")
	}
	if out.Len() != 0 {
		t.Error("Nothing should be written when setup fails")
	}
}

func TestPortOf(t *testing.T) {
	if got := portOf(":23234"); got != "23234" {
		t.Errorf("portOf(\":23234\") = %q", got)
	}
	if got := portOf("localhost:2222"); got != "2222" {
		t.Errorf("portOf(\"localhost:2222\") = %q", got)
	}
}
