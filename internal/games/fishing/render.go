package fishing

import (
	"fmt"
	"sort"

	"github.com/vovakirdan/tui-fishing/internal/core"
	"github.com/vovakirdan/tui-fishing/internal/sim"
)

// Layout and glyphs
const (
	ColumnWidth = 9 // Including the box border
	ColumnLeft  = 4
	MinHeight   = 8

	WaterChar = '░'
	BarChar   = '█'
	FishGlyph = "><>"
)

// sprite is one drawable entity on a depth layer.
type sprite struct {
	z    float64
	draw func(dst *core.Screen, area core.Rect, col sim.Column)
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	w, h := dst.Width(), dst.Height()
	if h < MinHeight || w < ColumnLeft+ColumnWidth {
		dst.DrawText(0, 0, "Terminal too small")
		return
	}

	dst.DrawText(ColumnLeft, 0, g.Title())

	box := core.NewRect(ColumnLeft, 1, ColumnWidth, h-1)
	dst.DrawBox(box, core.ColorGray)
	area := core.NewRect(box.X+1, box.Y+1, box.W-2, box.H-2)

	snap := g.state.Snapshot()
	sprites := []sprite{
		{z: sim.LayerColumn, draw: drawWater},
		{z: snap.Bar.Z, draw: func(dst *core.Screen, area core.Rect, col sim.Column) {
			drawBar(dst, area, col, snap)
		}},
		{z: snap.Fish.Z, draw: func(dst *core.Screen, area core.Rect, col sim.Column) {
			drawFish(dst, area, col, snap)
		}},
	}
	sort.SliceStable(sprites, func(i, j int) bool { return sprites[i].z < sprites[j].z })
	for _, s := range sprites {
		s.draw(dst, area, snap.Column)
	}

	g.drawStatus(dst, box.Right()+2, 2, snap)
}

// rowOf maps a world y into the playfield rows.
func rowOf(y float64, area core.Rect, col sim.Column) int {
	return core.WorldToRow(y, col.Lower, col.Upper, area.Y, area.Bottom()-1)
}

func drawWater(dst *core.Screen, area core.Rect, _ sim.Column) {
	for x := area.X; x < area.Right(); x++ {
		dst.DrawVLine(x, area.Y, area.H, WaterChar, core.ColorBlue)
	}
}

func drawBar(dst *core.Screen, area core.Rect, col sim.Column, snap sim.Snapshot) {
	color := core.ColorBrightRed
	if snap.BarVisual == sim.BarOverFish {
		color = core.ColorGreen
	}

	top := rowOf(snap.Bar.Y+snap.BarHalfHeight, area, col)
	bottom := rowOf(snap.Bar.Y-snap.BarHalfHeight, area, col)
	for x := area.X; x < area.Right(); x++ {
		dst.DrawVLine(x, top, bottom-top+1, BarChar, color)
	}
}

func drawFish(dst *core.Screen, area core.Rect, col sim.Column, snap sim.Snapshot) {
	row := rowOf(snap.Fish.Y, area, col)
	x := area.X + (area.W-len(FishGlyph))/2
	dst.DrawTextColored(x, row, FishGlyph, core.ColorBrightCyan)
}

// drawStatus writes the text panel right of the column.
func (g *Game) drawStatus(dst *core.Screen, x, y int, snap sim.Snapshot) {
	status := "waiting"
	statusColor := core.ColorGray
	if snap.BarVisual == sim.BarOverFish {
		status = "ON FISH"
		statusColor = core.ColorGreen
	}

	dst.DrawText(x, y, fmt.Sprintf("Catch   %3.0f%%", snap.Progress*100))
	dst.DrawText(x, y+1, "Status  ")
	dst.DrawTextColored(x+8, y+1, status, statusColor)
	dst.DrawText(x, y+2, fmt.Sprintf("Fish    %s, %.1f/s", g.state.Fish.Type, g.state.Fish.Speed))
	dst.DrawText(x, y+3, fmt.Sprintf("Time    %.1fs", g.elapsed))
}
