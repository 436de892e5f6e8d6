package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-fishing/internal/core"
)

// HUD layout constants
const (
	hudHeight        = 2 // Progress line and help line
	progressMaxWidth = 40
	progressLabel    = "Catch "
)

var (
	labelStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
	onFishStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	offFishStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
)

// HUD draws the catch progress indicator and the key help below the game.
type HUD struct {
	progress progress.Model
	help     help.Model
}

// NewHUD creates a HUD sized for the given terminal width.
func NewHUD(width int) HUD {
	h := HUD{
		progress: progress.New(progress.WithSolidFill("#3fbf3f")),
		help:     help.New(),
	}
	h.SetWidth(width)
	return h
}

// SetWidth adapts the HUD to a new terminal width.
func (h *HUD) SetWidth(width int) {
	w := width - len(progressLabel) - 12
	if w > progressMaxWidth {
		w = progressMaxWidth
	}
	if w < 10 {
		w = 10
	}
	h.progress.Width = w
	h.help.Width = width
}

// ToggleHelp switches between short and full help.
func (h *HUD) ToggleHelp() {
	h.help.ShowAll = !h.help.ShowAll
}

// View renders the HUD for the given game state.
func (h HUD) View(state core.GameState, keys KeyMap) string {
	marker := offFishStyle.Render(" ·")
	if state.OverFish {
		marker = onFishStyle.Render(" ◆")
	}

	bar := lipgloss.JoinHorizontal(lipgloss.Center,
		labelStyle.Render(progressLabel),
		h.progress.ViewAs(state.Progress),
		marker,
	)
	return lipgloss.JoinVertical(lipgloss.Left, bar, h.help.View(keys))
}
