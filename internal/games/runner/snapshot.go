package runner

import (
	"github.com/vovakirdan/tui-runner/internal/core"
)

// Snapshot is the read-only view of the simulation handed to the renderer.
// It copies only what drawing needs; the renderer can never mutate the run
// through it.
type Snapshot struct {
	Player    PlayerView
	Obstacles []ObstacleView
	Coins     []CoinView
	PowerUps  []PowerUpView
	Particles []ParticleView
	HUD       HUDView

	Paused   bool
	GameOver bool

	WorldW  float64
	WorldH  float64
	GroundY float64
}

// PlayerView is the avatar's drawable state.
type PlayerView struct {
	X, Y       float64
	W, H       float64
	OnGround   bool
	Sliding    bool
	Dead       bool
	Shielded   bool
	Invincible bool
	AnimFrame  int
}

// ObstacleView is one obstacle's drawable state.
type ObstacleView struct {
	X, Y    float64
	W, H    float64
	Variant ObstacleVariant
}

// CoinView is one coin's drawable state.
type CoinView struct {
	X, Y float64
}

// PowerUpView is one pickup's drawable state.
type PowerUpView struct {
	X, Y float64
	Kind PowerKind
}

// ParticleView is one particle's drawable state.
type ParticleView struct {
	X, Y  float64
	Glyph rune
	Color core.Color
}

// HUDView carries the numbers shown in the status line.
type HUDView struct {
	Score      int
	Coins      int
	Best       int
	Multiplier int

	Distance    float64
	Difficulty  float64
	ScrollSpeed float64

	Power          PowerKind
	PowerRemaining float64
}

// Snapshot builds the current frame's view. Safe to call at any state,
// including before the first Reset completes a tick.
func (g *Game) Snapshot() Snapshot {
	snap := Snapshot{
		Paused:   g.paused,
		GameOver: g.gameOver,
		WorldW:   g.cfg.World.Width,
		WorldH:   g.cfg.World.Height,
		GroundY:  g.cfg.World.GroundY,
	}

	p := g.player
	snap.Player = PlayerView{
		X:          p.X,
		Y:          p.Y,
		W:          g.cfg.Player.Width,
		H:          g.cfg.Player.Height,
		OnGround:   p.OnGround,
		Sliding:    p.Sliding,
		Dead:       p.Dead,
		Shielded:   p.Shielded,
		Invincible: p.Invincible(),
		AnimFrame:  p.AnimFrame,
	}
	if p.Sliding {
		snap.Player.Y = g.cfg.World.GroundY - g.cfg.Player.SlideHeight
		snap.Player.H = g.cfg.Player.SlideHeight
	}

	for _, o := range g.obstacles.Active() {
		snap.Obstacles = append(snap.Obstacles, ObstacleView{
			X: o.X, Y: o.Y, W: o.W, H: o.H, Variant: o.Variant,
		})
	}
	for _, c := range g.coins.Active() {
		snap.Coins = append(snap.Coins, CoinView{X: c.X, Y: c.Y})
	}
	for _, pu := range g.powerups.Active() {
		snap.PowerUps = append(snap.PowerUps, PowerUpView{X: pu.X, Y: pu.Y, Kind: pu.Kind})
	}
	for _, pt := range g.particles.Active() {
		snap.Particles = append(snap.Particles, ParticleView{
			X: pt.X, Y: pt.Y, Glyph: pt.Glyph, Color: pt.Color,
		})
	}

	snap.HUD = HUDView{
		Score:          g.session.Score,
		Coins:          g.session.Coins,
		Best:           g.best,
		Multiplier:     g.session.Multiplier,
		Distance:       g.session.Distance,
		Difficulty:     g.session.Difficulty,
		ScrollSpeed:    g.session.ScrollSpeed,
		Power:          g.session.ActivePower,
		PowerRemaining: g.session.PowerTimer,
	}

	return snap
}
