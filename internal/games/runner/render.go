package runner

import (
	"fmt"

	"github.com/vovakirdan/tui-runner/internal/assets"
	"github.com/vovakirdan/tui-runner/internal/core"
)

// The top row is reserved for the HUD; the playfield maps below it.
const hudRows = 1

// viewport maps world pixels onto screen cells. The world is logically
// 800x240 px regardless of terminal size; the viewport rescales per frame so
// resizes just work.
type viewport struct {
	sx, sy float64
	top    int
}

func newViewport(snap Snapshot, dst *core.Screen) viewport {
	playRows := dst.Height() - hudRows
	if playRows < 1 {
		playRows = 1
	}
	return viewport{
		sx:  float64(dst.Width()) / snap.WorldW,
		sy:  float64(playRows) / snap.WorldH,
		top: hudRows,
	}
}

// cell converts a world-px point to a screen cell.
func (v viewport) cell(x, y float64) (int, int) {
	return int(x * v.sx), v.top + int(y*v.sy)
}

// span converts a world-px rect to a cell rect of at least 1x1.
func (v viewport) span(x, y, w, h float64) core.Rect {
	cx, cy := v.cell(x, y)
	cw := core.Max(1, int(w*v.sx))
	ch := core.Max(1, int(h*v.sy))
	return core.NewRect(cx, cy, cw, ch)
}

// Render draws the current frame onto the screen buffer. The game-over
// overlay belongs to the platform layer; Render only handles the playfield,
// HUD, and the pause overlay.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	snap := g.Snapshot()
	v := newViewport(snap, dst)

	g.drawGround(dst, v, snap)
	for _, o := range snap.Obstacles {
		g.drawObstacle(dst, v, o)
	}
	for _, c := range snap.Coins {
		g.drawCoin(dst, v, c)
	}
	for _, p := range snap.PowerUps {
		g.drawPowerUp(dst, v, p)
	}
	g.drawPlayer(dst, v, snap.Player)
	for _, pt := range snap.Particles {
		x, y := v.cell(pt.X, pt.Y)
		dst.SetCell(x, y, pt.Glyph, pt.Color)
	}

	g.drawHUD(dst, snap.HUD)

	if snap.Paused {
		dst.DrawTextCentered(dst.Height()/2, "══ PAUSED ══")
	}
}

func (g *Game) drawGround(dst *core.Screen, v viewport, snap Snapshot) {
	_, gy := v.cell(0, snap.GroundY)
	gy = core.Min(gy, dst.Height()-1)
	for x := 0; x < dst.Width(); x++ {
		dst.SetCell(x, gy, '═', core.ColorGray)
	}
}

func (g *Game) drawObstacle(dst *core.Screen, v viewport, o ObstacleView) {
	color := core.ColorGreen
	if o.Variant == VariantFlying {
		color = core.ColorBrightBlue
	}

	r := v.span(o.X, o.Y, o.W, o.H)
	if sp := g.deps.Assets.Get("obstacle_" + o.Variant.String()); sp != nil {
		drawSprite(dst, sp, r.X, r.Bottom()-1, color)
		return
	}
	dst.DrawRectColored(r, '█', color)
}

func (g *Game) drawCoin(dst *core.Screen, v viewport, c CoinView) {
	x, y := v.cell(c.X, c.Y)
	if sp := g.deps.Assets.Get("coin"); sp != nil {
		drawSprite(dst, sp, x, y, core.ColorBrightYellow)
		return
	}
	dst.SetCell(x, y, '●', core.ColorBrightYellow)
}

func (g *Game) drawPowerUp(dst *core.Screen, v viewport, p PowerUpView) {
	x, y := v.cell(p.X, p.Y)
	if sp := g.deps.Assets.Get("powerup_" + p.Kind.String()); sp != nil {
		drawSprite(dst, sp, x, y, core.ColorBrightMagenta)
		return
	}
	dst.SetCell(x, y, '◆', core.ColorBrightMagenta)
}

func (g *Game) drawPlayer(dst *core.Screen, v viewport, p PlayerView) {
	// Flicker during the post-hit invincibility window.
	if p.Invincible && !p.Shielded && p.AnimFrame%2 == 1 {
		return
	}

	color := core.ColorBrightWhite
	if p.Shielded {
		color = core.ColorBrightCyan
	}
	if p.Dead {
		color = core.ColorBrightRed
	}

	key := fmt.Sprintf("player_run_%d", p.AnimFrame)
	switch {
	case p.Sliding:
		key = "player_slide"
	case !p.OnGround:
		key = "player_jump"
	}

	r := v.span(p.X, p.Y, p.W, p.H)
	if sp := g.deps.Assets.Get(key); sp != nil {
		drawSprite(dst, sp, r.X, r.Bottom()-1, color)
		return
	}
	dst.DrawRectColored(r, '@', color)
}

// drawSprite paints a sprite anchored at its bottom-left cell. Spaces are
// transparent so sprites can overlap the ground line cleanly.
func drawSprite(dst *core.Screen, sp *assets.Sprite, left, bottom int, color core.Color) {
	top := bottom - sp.Height() + 1
	for dy, row := range sp.Rows {
		for dx, r := range []rune(row) {
			if r == ' ' {
				continue
			}
			dst.SetCell(left+dx, top+dy, r, color)
		}
	}
}

func (g *Game) drawHUD(dst *core.Screen, hud HUDView) {
	line := fmt.Sprintf(" SCORE %06d  COINS %d  BEST %06d", hud.Score, hud.Coins, hud.Best)
	if hud.Multiplier > 1 {
		line += fmt.Sprintf("  x%d", hud.Multiplier)
	}
	line += fmt.Sprintf("  SPD %.0f", hud.ScrollSpeed)
	dst.DrawTextColored(0, 0, line, core.ColorBrightWhite)

	if hud.Power != PowerNone {
		tag := fmt.Sprintf("[%s %.1fs]", hud.Power.Title(), hud.PowerRemaining)
		dst.DrawTextColored(dst.Width()-len(tag)-1, 0, tag, core.ColorBrightMagenta)
	}
}
