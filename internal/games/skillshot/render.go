package skillshot

import (
	"fmt"

	"github.com/vovakirdan/skillshot/internal/core"
)

// Visual characters for rendering
const (
	TargetChar     = '█'
	ProjectileChar = '●'
	OriginChar     = '▲'
)

// HUD layout
const (
	hudRow    = 0
	arenaTop  = 1 // First row of the arena border
	minArenaW = 3
	minArenaH = 3
)

// ArenaViewport returns the mapping between the arena and the cells inside
// the arena border for a screen of the given size. The top row is reserved
// for the heads-up overlay.
func ArenaViewport(screenW, screenH int, arena core.Size) core.Viewport {
	box := core.NewRect(0, arenaTop, max(minArenaW, screenW), max(minArenaH, screenH-arenaTop))
	return core.Viewport{Arena: arena, Cells: box.Inset(1)}
}

// HUDText formats the score overlay.
func HUDText(snap Snapshot) string {
	return fmt.Sprintf(" Score: %d  Shots: %d  Accuracy: %.1f%% ", snap.Score, snap.ShotsFired, snap.Accuracy)
}

// HUDLines formats the overlay of the window adapter, one counter per line.
func HUDLines(snap Snapshot) []string {
	return []string{
		fmt.Sprintf("Score: %d", snap.Score),
		fmt.Sprintf("Accuracy: %.1f%%", snap.Accuracy),
	}
}

// Render draws a snapshot into the screen buffer.
func Render(dst *core.Screen, snap Snapshot) {
	dst.Clear()

	vp := ArenaViewport(dst.Width(), dst.Height(), snap.Arena)
	dst.DrawBox(vp.Cells.Inset(-1), core.ColorGray)

	if snap.FixedOrigin {
		x, y := vp.ToCell(snap.Origin)
		dst.SetColored(x, y, OriginChar, core.ColorGreen)
	}

	drawDisc(dst, vp, snap.Target, TargetChar, core.ColorBrightRed)
	for _, p := range snap.Projectiles {
		drawDisc(dst, vp, p, ProjectileChar, core.ColorBrightBlue)
	}

	dst.DrawTextColored(0, hudRow, HUDText(snap), core.ColorWhite)
}

// drawDisc fills every cell whose center lies within the body. A body
// smaller than a cell still occupies the cell under its center.
func drawDisc(dst *core.Screen, vp core.Viewport, b Body, r rune, c core.Color) {
	x0, y0 := vp.ToCell(b.Position.Sub(core.V(b.Radius, b.Radius)))
	x1, y1 := vp.ToCell(b.Position.Add(core.V(b.Radius, b.Radius)))

	drawn := false
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			if vp.ToWorld(x, y).Distance(b.Position) <= b.Radius {
				dst.SetColored(x, y, r, c)
				drawn = true
			}
		}
	}
	if !drawn {
		x, y := vp.ToCell(b.Position)
		dst.SetColored(x, y, r, c)
	}
}
