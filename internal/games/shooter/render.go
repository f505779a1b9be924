package shooter

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/battleship-shooter/internal/core"
	"github.com/vovakirdan/battleship-shooter/internal/games/shooter/sim"
)

// Layout
const (
	hudRows = 2
	minCols = 30
	minRows = hudRows + 8
)

// Visual characters for rendering
const (
	PlayerChar     = '█'
	PlayerNoseChar = '▲'
	EnemyChar      = '▓'
	ProjectileChar = '|'
	PowerUpChar    = '★'
	SmallStarChar  = '.'
	LargeStarChar  = '*'
)

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if g.session == nil {
		return
	}

	w, h := dst.Width(), dst.Height()
	if w < minCols || h < minRows {
		dst.DrawTextCentered(h/2, "Terminal too small")
		return
	}

	snap := g.session.Snapshot()
	field := viewport{
		srcW: snap.Width, srcH: snap.Height,
		area: core.NewRect(0, hudRows, w, h-hudRows),
	}

	for _, e := range snap.Entities {
		drawEntity(dst, field, e)
	}

	top, bottom := hudLines(snap.HUD)
	dst.DrawTextColor(1, 0, top, core.ColorBrightWhite)
	dst.DrawTextColor(1, 1, bottom, core.ColorBrightYellow)

	switch {
	case snap.Outcome == sim.OutcomeLoss:
		drawCenteredMessage(dst, "GAME OVER",
			fmt.Sprintf("Kills: %d  |  Press R to restart", snap.HUD.Kills), core.ColorBrightRed)
	case g.paused:
		drawCenteredMessage(dst, "PAUSED", "Press P to resume", core.ColorBrightCyan)
	}
}

// viewport maps playfield pixels onto a screen area.
type viewport struct {
	srcW, srcH int
	area       core.Rect
}

// project returns the screen cells covered by r, clipped to the area.
func (v viewport) project(r core.Rect) (core.Rect, bool) {
	s := r.ScaleTo(v.srcW, v.srcH, v.area.W, v.area.H)
	s.Translate(v.area.X, v.area.Y)

	x0 := core.Max(s.X, v.area.X)
	y0 := core.Max(s.Y, v.area.Y)
	x1 := core.Min(s.Right(), v.area.Right())
	y1 := core.Min(s.Bottom(), v.area.Bottom())
	if x1 <= x0 || y1 <= y0 {
		return core.Rect{}, false
	}
	return core.NewRect(x0, y0, x1-x0, y1-y0), true
}

func drawEntity(dst *core.Screen, v viewport, e sim.EntityView) {
	cells, ok := v.project(e.Rect)
	if !ok {
		return
	}

	switch e.Kind {
	case sim.KindStar:
		ch := SmallStarChar
		if e.Rect.W > 2 {
			ch = LargeStarChar
		}
		cx, cy := cells.Center()
		dst.SetWithColor(cx, cy, ch, core.ColorGray)
	case sim.KindPowerUp:
		cx, cy := cells.Center()
		dst.SetWithColor(cx, cy, PowerUpChar, core.ColorBrightYellow)
	case sim.KindEnemy:
		dst.DrawRect(cells, EnemyChar, core.ColorRed)
	case sim.KindProjectile:
		cx := cells.CenterX()
		for y := cells.Y; y < cells.Bottom(); y++ {
			dst.SetWithColor(cx, y, ProjectileChar, core.ColorBrightCyan)
		}
	case sim.KindPlayer:
		dst.DrawRect(cells, PlayerChar, core.ColorGray)
		dst.SetWithColor(cells.CenterX(), cells.Y, PlayerNoseChar, core.ColorBrightBlue)
	}
}

// hudLines formats the two status rows.
func hudLines(h sim.HUD) (string, string) {
	top := fmt.Sprintf("Kills: %d  Shots: %d", h.Kills, h.Shots)
	if !h.PowerUpsEnabled {
		return top, "Classic: single shot"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Double %d/%d", h.DoubleStarsCollected, h.DoubleGoal)
	switch {
	case h.DoubleIsPermanent:
		b.WriteString(" PERMANENT")
	case h.DoubleActive:
		fmt.Fprintf(&b, " %.1fs", h.DoubleSecondsRemaining)
	}

	fmt.Fprintf(&b, "   Triple %d/%d", h.TripleStarsProgress, h.TripleGoal)
	if h.TripleActive {
		fmt.Fprintf(&b, " ACTIVE %.1fs", h.TripleSecondsRemaining)
	}
	return top, b.String()
}

// drawCenteredMessage draws a message box in the center of the screen.
func drawCenteredMessage(dst *core.Screen, title, subtitle string, c core.Color) {
	w := dst.Width()
	h := dst.Height()

	titleLen := len([]rune(title))
	subLen := len([]rune(subtitle))

	boxW := core.Max(titleLen, subLen) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ', core.ColorDefault)
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))

	dst.DrawTextColor(boxX+(boxW-titleLen)/2, boxY+1, title, c)
	dst.DrawText(boxX+(boxW-subLen)/2, boxY+3, subtitle)
}
