package runner

import (
	"math"
	"math/rand"
	"time"

	"github.com/vovakirdan/tui-runner/internal/audio"
	"github.com/vovakirdan/tui-runner/internal/config"
	"github.com/vovakirdan/tui-runner/internal/core"
)

// maxTickDelta clamps the wall-clock delta so physics cannot blow up after a
// host stall or tab suspend.
const maxTickDelta = 0.05

// Game is the simulation controller. It owns the player, the spawn policy,
// the three entity pools, the particle emitter, and the run session, and it
// advances all of them once per host tick. All collaborator I/O happens at
// run boundaries; the tick itself never blocks.
//
// Within one tick, player physics resolve before collision tests, and pools
// collide in a fixed order: obstacles, then coins, then power-ups. Pool
// active lists are mutated only here, iterated in reverse index order for
// safe in-place removal.
type Game struct {
	cfg     config.RunnerConfig
	curve   *config.Curve
	runtime core.RuntimeConfig
	rng     *rand.Rand
	deps    Deps

	player    *Player
	spawner   *Spawner
	particles *Emitter
	session   *Session

	obstacles *core.Pool[*Obstacle]
	coins     *core.Pool[*Coin]
	powerups  *core.Pool[*PowerUp]

	paused   bool
	gameOver bool
	tick     uint64
	best     int
	summary  Summary
}

// New creates the controller with its collaborators. Nil collaborators are
// replaced with silent no-ops.
func New(cfg config.RunnerConfig, deps Deps) *Game {
	return &Game{
		cfg:  cfg,
		deps: deps.fill(),
	}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "runner"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Endless Runner"
}

// SetPresenter wires the presentation collaborator after construction. The
// platform layer creates its presenter alongside the UI model.
func (g *Game) SetPresenter(p Presenter) {
	if p == nil {
		g.deps.Presenter = nopPresenter{}
		return
	}
	g.deps.Presenter = p
}

// Reset initializes or restarts a run.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	seed := runtime.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	g.rng = rand.New(rand.NewSource(seed))

	g.curve = config.NewCurve(g.cfg.Difficulty, g.cfg.Speed)

	if g.obstacles == nil {
		pc := g.cfg.Pools
		g.obstacles = core.NewPool(pc.Obstacles, pc.FreeListCap, func() *Obstacle { return &Obstacle{} })
		g.coins = core.NewPool(pc.Coins, pc.FreeListCap, func() *Coin { return &Coin{} })
		g.powerups = core.NewPool(pc.PowerUps, pc.FreeListCap, func() *PowerUp { return &PowerUp{} })
	} else {
		g.obstacles.Clear()
		g.coins.Clear()
		g.powerups.Clear()
	}

	if g.player == nil {
		g.player = NewPlayer(&g.cfg, g.deps.Audio)
	} else {
		g.player.Reset()
	}

	if g.spawner == nil {
		g.spawner = NewSpawner(&g.cfg, g.rng)
	} else {
		g.spawner.rng = g.rng
		g.spawner.Reset()
	}

	if g.particles == nil {
		g.particles = NewEmitter(g.cfg.Pools.Particles, g.cfg.Pools.FreeListCap, g.rng)
	} else {
		g.particles.rng = g.rng
		g.particles.Reset()
	}

	g.session = NewSession(&g.cfg, g.curve, g.loadMultiplier())

	best, _ := g.deps.Store.Stat(StatBestScore)
	g.best = int(best)

	g.paused = false
	g.gameOver = false
	g.tick = 0
	g.summary = Summary{}

	g.deps.Audio.StartMusic()
}

// loadMultiplier derives the score multiplier from purchased upgrades.
func (g *Game) loadMultiplier() int {
	owned, err := g.deps.Store.Purchases()
	if err != nil || !owned[PurchaseDoubleScore] {
		return 1
	}
	return 2
}

// Tick advances the simulation by one frame. rawDelta is the wall-clock
// seconds since the previous tick; intents arrive in the input frame.
// Intents are idempotent no-ops outside the playing state.
func (g *Game) Tick(rawDelta float64, in core.InputFrame) core.StepResult {
	if g.gameOver {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	// Clamp the wall delta, then derive the gameplay delta. Countdown timers
	// run on wall time so power-up and slow-mo durations stay real-time.
	wallDt := core.ClampF(rawDelta, 0, maxTickDelta)
	dt := wallDt
	if g.session.SlowMoActive() {
		dt *= g.cfg.PowerUps.SlowMoFactor
	}

	if expired := g.session.TickPower(wallDt); expired != PowerNone {
		g.deactivatePower(expired)
	}

	if in.Has(core.ActionJump) {
		g.player.Jump()
	}
	if in.Has(core.ActionSlide) {
		g.player.Slide()
	}

	g.session.Advance(dt, wallDt)

	if g.session.MagnetActive() {
		g.pullCoins()
	}

	g.player.Update(dt, wallDt)
	g.spawner.Update(dt, g.session.Difficulty, g.obstacles, g.coins, g.powerups)

	if !g.updateObstacles(dt) {
		// Death ends the tick immediately; remaining pools keep their state.
		return core.StepResult{State: g.State()}
	}
	g.updateCoins(dt)
	g.updatePowerUps(dt)

	g.particles.Update(dt)
	g.tick++

	return core.StepResult{State: g.State()}
}

// pullCoins interpolates every coin near the player a fixed fraction toward
// the player center each tick, producing a visible homing arc rather than an
// instantaneous snap.
func (g *Game) pullCoins() {
	px, py := g.player.Hitbox().Center()
	radius := g.cfg.PowerUps.MagnetRadius
	pull := g.cfg.PowerUps.MagnetPull

	for _, c := range g.coins.Active() {
		cx, cy := c.Center()
		if math.Hypot(px-cx, py-cy) > radius {
			continue
		}
		c.X += (px - cx) * pull
		c.Y += (py - cy) * pull
	}
}

// updateObstacles advances and collides the obstacle pool. Returns false if
// the run ended on a lethal hit.
func (g *Game) updateObstacles(dt float64) bool {
	speed := g.session.ScrollSpeed
	hitbox := g.player.Hitbox()

	active := g.obstacles.Active()
	for i := len(active) - 1; i >= 0; i-- {
		o := active[i]
		o.X -= speed * dt

		if o.Bounds().Intersects(hitbox) {
			if g.player.TakeDamage() == DamageDied {
				g.die()
				return false
			}
			// Shield consumed one obstacle, not one hit-duration: the
			// obstacle is released so it cannot hit again next tick.
			cx, cy := o.Bounds().Center()
			g.particles.Burst(cx, cy, 10, '✦', core.ColorBrightCyan)
			g.deps.Audio.Play(audio.SoundShield)
			g.obstacles.ReleaseAt(i)
			continue
		}

		if o.X+o.W < 0 {
			g.obstacles.ReleaseAt(i)
		}
	}
	return true
}

// updateCoins advances and collides the coin pool.
func (g *Game) updateCoins(dt float64) {
	speed := g.session.ScrollSpeed
	hitbox := g.player.Hitbox()

	active := g.coins.Active()
	for i := len(active) - 1; i >= 0; i-- {
		c := active[i]
		c.X -= speed * dt

		if c.Bounds().Intersects(hitbox) {
			g.session.AddCoin()
			cx, cy := c.Center()
			g.particles.Burst(cx, cy, 5, '·', core.ColorBrightYellow)
			g.deps.Audio.Play(audio.SoundCoin)
			g.coins.ReleaseAt(i)
			continue
		}

		if c.X+coinSize < 0 {
			g.coins.ReleaseAt(i)
		}
	}
}

// updatePowerUps advances and collides the power-up pool.
func (g *Game) updatePowerUps(dt float64) {
	speed := g.session.ScrollSpeed
	hitbox := g.player.Hitbox()

	active := g.powerups.Active()
	for i := len(active) - 1; i >= 0; i-- {
		p := active[i]
		p.X -= speed * dt

		if p.Bounds().Intersects(hitbox) {
			g.activatePower(p.Kind)
			cx, cy := p.Bounds().Center()
			g.particles.Burst(cx, cy, 8, '*', core.ColorBrightMagenta)
			g.deps.Audio.Play(audio.SoundPowerUp)
			g.deps.Presenter.Notify(p.Kind.Title() + "!")
			g.powerups.ReleaseAt(i)
			continue
		}

		if p.X+powerUpSize < 0 {
			g.powerups.ReleaseAt(i)
		}
	}
}

// activatePower arms an effect. Only one effect window exists; collecting a
// new power-up first deactivates the previous effect's state explicitly so
// nothing leaks past the shared timer.
func (g *Game) activatePower(kind PowerKind) {
	if prev := g.session.ActivePower; prev != PowerNone && prev != kind {
		g.deactivatePower(prev)
	}
	g.session.ActivatePower(kind)

	switch kind {
	case PowerShield:
		g.player.SetShield(true)
	case PowerDoubleJump:
		g.player.HasDoubleJump = true
	}
	// Slow-mo and magnet are derived from the session's active kind.
}

// deactivatePower clears the state a power-up kind left on the player.
func (g *Game) deactivatePower(kind PowerKind) {
	switch kind {
	case PowerShield:
		g.player.SetShield(false)
	case PowerDoubleJump:
		g.player.HasDoubleJump = false
	}
}

// die finalizes the run: freeze, feedback, persistence, achievements, and
// the game-over hand-off to the presenter. Persistence is best-effort; a
// failing store never interrupts the transition.
func (g *Game) die() {
	g.gameOver = true

	if kind := g.session.ActivePower; kind != PowerNone {
		g.session.ClearPower()
		g.deactivatePower(kind)
	}

	px, py := g.player.Hitbox().Center()
	g.particles.Burst(px, py, 24, '✸', core.ColorBrightRed)
	g.deps.Audio.Play(audio.SoundDeath)
	g.deps.Audio.StopMusic()

	store := g.deps.Store
	score := g.session.Score

	totalCoins, _ := store.UpdateStat(StatTotalCoins, func(v int64) int64 { return v + int64(g.session.Coins) })
	totalJumps, _ := store.UpdateStat(StatTotalJumps, func(v int64) int64 { return v + int64(g.player.Jumps) })
	totalGames, _ := store.UpdateStat(StatTotalGames, func(v int64) int64 { return v + 1 })

	newRecord := score > g.best
	if newRecord {
		g.best = score
		store.SetStat(StatBestScore, int64(score)) //nolint:errcheck // best-effort
	}
	store.RecordScore(score) //nolint:errcheck // best-effort

	unlocked, _ := store.Achievements()
	earned := evaluateAchievements(AchievementStats{
		RunScore:    score,
		RunDistance: g.session.Distance,
		TotalCoins:  totalCoins,
		TotalJumps:  totalJumps,
		TotalGames:  totalGames,
	}, unlocked)
	for _, a := range earned {
		store.UnlockAchievement(a.ID) //nolint:errcheck // best-effort
		g.deps.Presenter.Notify("Achievement unlocked: " + a.Title)
	}

	g.summary = Summary{
		Score:     score,
		Coins:     g.session.Coins,
		Jumps:     g.player.Jumps,
		Best:      g.best,
		NewRecord: newRecord,
	}
	g.deps.Presenter.GameOver(g.summary)
}

// State returns the externally visible run state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.session.Score,
		Coins:    g.session.Coins,
		GameOver: g.gameOver,
		Paused:   g.paused,
	}
}

// Summary returns the end-of-run report; zero until the run ends.
func (g *Game) Summary() Summary {
	return g.summary
}
