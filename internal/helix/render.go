package helix

import (
	"fmt"
	"math"

	"github.com/vovakirdan/tui-helix/internal/core"
)

// Rendering constants. The tower is drawn as an unrolled cylinder: screen
// columns map to angles, rows map to world height. The ball stays in the
// center column and the ring patterns shift sideways as the tower rotates.
const (
	rowsPerUnit  = 2.0 // Screen rows per world unit of height
	maxTowerCols = 60  // Cap on the unrolled strip width
	poleCol      = 1   // Column of the schematic pole sidebar

	ballChar   = '●'
	safeChar   = '█'
	deadlyChar = '█'
	finishChar = '█'
	poleChar   = '║'
)

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	w, h := dst.Width(), dst.Height()
	towerW := core.Min(w-8, maxTowerCols)
	if towerW < 8 {
		towerW = core.Min(w, 8)
	}
	towerX := (w - towerW) / 2
	centerCol := towerX + towerW/2
	camRow := h / 3

	g.drawPole(dst, camRow, h)
	g.drawRings(dst, towerX, towerW, centerCol, camRow, h)

	// Ball
	ballRow := g.worldToRow(g.ballY, camRow)
	dst.SetCell(centerCol, ballRow, ballChar, core.ColorBrightYellow)

	g.drawHUD(dst)

	switch {
	case g.phase == PhaseCountdown:
		n := int(math.Ceil(g.countdownLeft))
		g.drawCenteredMessage(dst, fmt.Sprintf("%d", n), "Get ready...  A/D or arrows rotate")
	case g.paused:
		g.drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	case g.phase == PhaseGameOver:
		sub := fmt.Sprintf("Score: %d  |  Press R to restart", g.ledger.Score())
		if g.newBest {
			sub = fmt.Sprintf("NEW BEST: %d  |  Press R to restart", g.ledger.Score())
		}
		g.drawCenteredMessage(dst, "GAME OVER", sub)
	case g.phase == PhaseLevelComplete:
		sub := fmt.Sprintf("Score: %d in %.1fs  |  Press R to replay", g.ledger.Score(), g.elapsed)
		g.drawCenteredMessage(dst, "LEVEL COMPLETE", sub)
	}
}

// worldToRow maps a world height to a screen row relative to the camera.
func (g *Game) worldToRow(y float64, camRow int) int {
	return camRow + int(math.Round((g.cameraY-y)*rowsPerUnit))
}

// drawRings draws every pool ring that falls inside the viewport.
func (g *Game) drawRings(dst *core.Screen, towerX, towerW, centerCol, camRow, h int) {
	degPerCol := 360.0 / float64(towerW)
	for _, ring := range g.pool.Rings() {
		row := g.worldToRow(ring.Y, camRow)
		if row < 0 || row >= h {
			continue
		}
		for c := 0; c < towerW; c++ {
			// Column -> world angle, with the ball's angle at centerCol.
			angle := float64(towerX+c-centerCol) * degPerCol
			kind := ring.KindAt(angle - g.yaw)
			switch kind {
			case KindSafe:
				dst.SetCell(towerX+c, row, safeChar, core.ColorCyan)
			case KindDeadly:
				dst.SetCell(towerX+c, row, deadlyChar, core.ColorBrightRed)
			case KindFinish:
				dst.SetCell(towerX+c, row, finishChar, core.ColorBrightGreen)
			}
		}
	}
}

// drawPole draws the cylinder segments as a schematic sidebar, alternating
// shades per segment so transfers are visible.
func (g *Game) drawPole(dst *core.Screen, camRow, h int) {
	segRows := int(g.pole.SegmentHeight() * rowsPerUnit)
	if segRows < 1 {
		segRows = 1
	}
	for i, y := range g.pole.Segments() {
		top := g.worldToRow(y, camRow)
		color := core.ColorGray
		if i%2 == 0 {
			color = core.ColorWhite
		}
		for r := top; r < top+segRows; r++ {
			if r >= 0 && r < h {
				dst.SetCell(poleCol, r, poleChar, color)
			}
		}
	}
}

// drawHUD draws score and session info along the top row.
func (g *Game) drawHUD(dst *core.Screen) {
	hud := fmt.Sprintf(" Score: %d ", g.ledger.Score())
	if g.cfg.Score.ComboEnabled && g.ledger.Combo() > 1 {
		hud += fmt.Sprintf(" Combo x%d ", g.ledger.Combo())
	}
	if best, ok := g.ledger.Best(); ok {
		hud += fmt.Sprintf(" Best: %d ", best.Score)
	}
	dst.DrawText(2, 0, hud)

	right := fmt.Sprintf(" %s  %.1fs ", g.tier, g.elapsed)
	dst.DrawTextColored(dst.Width()-len(right)-1, 0, right, core.ColorGray)
}

// drawCenteredMessage draws a message box in the center of the screen.
func (g *Game) drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := core.Max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ')
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))

	titleX := boxX + (boxW-len(title))/2
	dst.DrawText(titleX, boxY+1, title)

	subtitleX := boxX + (boxW-len(subtitle))/2
	dst.DrawText(subtitleX, boxY+3, subtitle)
}
