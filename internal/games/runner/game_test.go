package runner

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-runner/internal/config"
	"github.com/vovakirdan/tui-runner/internal/core"
)

type fakeStore struct {
	stats     map[string]int64
	scores    []int
	unlocked  map[string]bool
	purchases map[string]bool
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		stats:     map[string]int64{},
		unlocked:  map[string]bool{},
		purchases: map[string]bool{},
	}
}

func (f *fakeStore) Stat(key string) (int64, error) { return f.stats[key], nil }
func (f *fakeStore) SetStat(key string, v int64) error {
	f.stats[key] = v
	return nil
}
func (f *fakeStore) UpdateStat(key string, fn func(int64) int64) (int64, error) {
	f.stats[key] = fn(f.stats[key])
	return f.stats[key], nil
}
func (f *fakeStore) RecordScore(score int) error {
	f.scores = append(f.scores, score)
	return nil
}
func (f *fakeStore) Achievements() (map[string]bool, error) { return f.unlocked, nil }
func (f *fakeStore) UnlockAchievement(id string) error {
	f.unlocked[id] = true
	return nil
}
func (f *fakeStore) Purchases() (map[string]bool, error) { return f.purchases, nil }

type fakeAudio struct {
	played  []string
	musicOn bool
}

func (f *fakeAudio) Play(sound string) { f.played = append(f.played, sound) }
func (f *fakeAudio) StartMusic()       { f.musicOn = true }
func (f *fakeAudio) StopMusic()        { f.musicOn = false }

func (f *fakeAudio) count(sound string) int {
	n := 0
	for _, s := range f.played {
		if s == sound {
			n++
		}
	}
	return n
}

type fakePresenter struct {
	notices   []string
	summaries []Summary
}

func (f *fakePresenter) Notify(text string) { f.notices = append(f.notices, text) }
func (f *fakePresenter) GameOver(s Summary) { f.summaries = append(f.summaries, s) }

// quietConfig pushes all spawn intervals far out so tests control exactly
// which entities exist.
func quietConfig() config.RunnerConfig {
	cfg := config.DefaultRunnerConfig()
	cfg.Spawn.GapMinBase = 10000
	cfg.Spawn.GapMaxBase = 10000
	cfg.Spawn.GapFloorMin = 10000
	cfg.Spawn.GapFloorMax = 10000
	cfg.Spawn.CoinMinInterval = 10000
	cfg.Spawn.CoinMaxInterval = 10000
	cfg.Spawn.PowerUpMinInterval = 10000
	cfg.Spawn.PowerUpMaxInterval = 10000
	return cfg
}

func newTestGame(cfg config.RunnerConfig, deps Deps) *Game {
	g := New(cfg, deps)
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 1})
	return g
}

// placeObstacleOnPlayer parks an obstacle overlapping the player's hitbox.
func placeObstacleOnPlayer(g *Game) {
	hb := g.player.Hitbox()
	g.obstacles.Acquire(func(o *Obstacle) {
		o.X = hb.X
		o.Y = hb.Y
		o.W = 30
		o.H = 45
		o.Variant = VariantNormal
	})
}

func TestScoreMonotonicallyIncreases(t *testing.T) {
	g := newTestGame(quietConfig(), Deps{})

	prev := 0
	in := core.NewInputFrame()
	for i := 0; i < 600; i++ {
		st := g.Tick(1.0/60, in).State
		if st.Score < prev {
			t.Fatalf("score decreased: %d -> %d at tick %d", prev, st.Score, i)
		}
		prev = st.Score
	}
	if prev == 0 {
		t.Fatal("score never accrued over 10 simulated seconds")
	}
}

func TestDeltaClampBoundsCatchUp(t *testing.T) {
	g := newTestGame(quietConfig(), Deps{})

	in := core.NewInputFrame()
	g.Tick(5.0, in) // a 5s stall is clamped to maxTickDelta
	if d := g.session.Distance; d > g.cfg.Speed.Base*maxTickDelta+1 {
		t.Errorf("distance after stalled tick = %v, want <= %v", d, g.cfg.Speed.Base*maxTickDelta)
	}
}

func TestCoinPickupWithMultiplier(t *testing.T) {
	store := newFakeStore()
	store.purchases[PurchaseDoubleScore] = true
	audioFake := &fakeAudio{}
	g := newTestGame(quietConfig(), Deps{Store: store, Audio: audioFake})

	if g.session.Multiplier != 2 {
		t.Fatalf("multiplier = %d, want 2 with the upgrade purchased", g.session.Multiplier)
	}

	hb := g.player.Hitbox()
	g.coins.Acquire(func(c *Coin) {
		cx, cy := hb.Center()
		c.X = cx
		c.Y = cy
	})

	before := g.session.Score
	st := g.Tick(0.001, core.NewInputFrame()).State

	if st.Coins != 1 {
		t.Fatalf("coins = %d, want 1", st.Coins)
	}
	want := before + g.cfg.Score.CoinValue*2
	if st.Score != want {
		t.Errorf("score = %d, want %d", st.Score, want)
	}
	if g.coins.Len() != 0 {
		t.Error("collected coin should be released")
	}
	if audioFake.count("coin") != 1 {
		t.Error("coin pickup should play the coin sound")
	}
}

func TestLethalHitEndsRun(t *testing.T) {
	store := newFakeStore()
	audioFake := &fakeAudio{}
	presenter := &fakePresenter{}
	g := newTestGame(quietConfig(), Deps{Store: store, Audio: audioFake, Presenter: presenter})

	// Accumulate some coins and jumps first.
	g.session.Coins = 4
	g.player.Jumps = 2
	placeObstacleOnPlayer(g)

	st := g.Tick(0.016, core.NewInputFrame()).State
	if !st.GameOver {
		t.Fatal("run should be over")
	}

	if audioFake.musicOn {
		t.Error("music should be stopped on death")
	}
	if audioFake.count("death") != 1 {
		t.Error("death sound should play once")
	}
	if store.stats[StatTotalGames] != 1 {
		t.Errorf("total_games = %d, want 1", store.stats[StatTotalGames])
	}
	if store.stats[StatTotalCoins] != 4 {
		t.Errorf("total_coins = %d, want 4", store.stats[StatTotalCoins])
	}
	if store.stats[StatTotalJumps] != 2 {
		t.Errorf("total_jumps = %d, want 2", store.stats[StatTotalJumps])
	}
	if len(store.scores) != 1 {
		t.Fatalf("recorded scores = %d, want 1", len(store.scores))
	}
	if len(presenter.summaries) != 1 {
		t.Fatalf("game-over summaries = %d, want 1", len(presenter.summaries))
	}
	if presenter.summaries[0].Coins != 4 {
		t.Errorf("summary coins = %d, want 4", presenter.summaries[0].Coins)
	}
	if !store.unlocked["first_run"] {
		t.Error("first_run achievement should unlock after the first death")
	}
	found := false
	for _, n := range presenter.notices {
		if strings.Contains(n, "First Steps") {
			found = true
		}
	}
	if !found {
		t.Error("achievement unlock should be announced")
	}

	// Further ticks are inert.
	st2 := g.Tick(0.016, core.NewInputFrame()).State
	if st2.Score != st.Score || !st2.GameOver {
		t.Error("post-death ticks should not change state")
	}
}

func TestShieldConsumesObstacle(t *testing.T) {
	audioFake := &fakeAudio{}
	g := newTestGame(quietConfig(), Deps{Audio: audioFake})

	g.activatePower(PowerShield)
	if !g.player.Shielded {
		t.Fatal("shield power-up should raise the shield")
	}

	placeObstacleOnPlayer(g)
	st := g.Tick(0.016, core.NewInputFrame()).State

	if st.GameOver {
		t.Fatal("shielded hit must not end the run")
	}
	if g.player.Shielded {
		t.Error("shield should be consumed")
	}
	if g.obstacles.Len() != 0 {
		t.Error("the hit obstacle should be released")
	}
	if audioFake.count("shield") != 1 {
		t.Error("shield break should play its sound")
	}
}

func TestMagnetPullsNearbyCoins(t *testing.T) {
	g := newTestGame(quietConfig(), Deps{})
	g.activatePower(PowerMagnet)

	px, py := g.player.Hitbox().Center()
	g.coins.Acquire(func(c *Coin) {
		c.X = px + 100
		c.Y = py - 100
	})
	far := g.coins.Active()[0]
	farY := far.Y

	g.Tick(0.001, core.NewInputFrame())

	if far.Y <= farY {
		t.Error("coin inside the magnet radius should home toward the player")
	}

	// A coin outside the radius stays on its lane.
	g.coins.Acquire(func(c *Coin) {
		c.X = px + 400
		c.Y = py - 100
	})
	outside := g.coins.Active()[g.coins.Len()-1]
	outsideY := outside.Y
	g.Tick(0.001, core.NewInputFrame())
	if outside.Y != outsideY {
		t.Error("coin outside the magnet radius must not move vertically")
	}
}

func TestPowerUpExpiresOnWallClock(t *testing.T) {
	g := newTestGame(quietConfig(), Deps{})

	g.activatePower(PowerDoubleJump)
	if !g.player.HasDoubleJump {
		t.Fatal("double jump should be granted")
	}

	// 8s window at the clamped max delta.
	in := core.NewInputFrame()
	for i := 0; i < 170; i++ {
		g.Tick(maxTickDelta, in)
	}

	if g.session.ActivePower != PowerNone {
		t.Error("effect window should have expired")
	}
	if g.player.HasDoubleJump {
		t.Error("double jump should be revoked on expiry")
	}
}

func TestNewPowerUpReplacesActiveOne(t *testing.T) {
	g := newTestGame(quietConfig(), Deps{})

	g.activatePower(PowerDoubleJump)
	g.session.PowerTimer = 2 // partially elapsed

	g.activatePower(PowerSlowMo)
	if g.player.HasDoubleJump {
		t.Error("replaced effect's state should be deactivated")
	}
	if g.session.ActivePower != PowerSlowMo {
		t.Errorf("active power = %v, want slow motion", g.session.ActivePower)
	}
	if g.session.PowerTimer != g.cfg.PowerUps.Duration {
		t.Errorf("timer = %v, want full window %v", g.session.PowerTimer, g.cfg.PowerUps.Duration)
	}
}

func TestSlowMotionDilatesGameplayOnly(t *testing.T) {
	g := newTestGame(quietConfig(), Deps{})

	g.activatePower(PowerSlowMo)
	in := core.NewInputFrame()
	g.Tick(0.04, in)

	// Distance runs on wall time, so slow motion does not slow the ramp.
	wantDist := g.cfg.Speed.Base * 0.04
	if d := g.session.Distance; d < wantDist*0.99 || d > wantDist*1.01 {
		t.Errorf("distance = %v, want about %v", d, wantDist)
	}

	// But entities scroll on dilated time.
	g.obstacles.Acquire(func(o *Obstacle) {
		o.X = 700
		o.Y = 100
		o.W = 30
		o.H = 45
	})
	o := g.obstacles.Active()[0]
	g.Tick(0.04, in)
	moved := 700 - o.X
	full := g.session.ScrollSpeed * 0.04
	if moved > full*0.5 {
		t.Errorf("obstacle moved %v under slow motion, want well below %v", moved, full)
	}
}

func TestPauseFreezesSimulation(t *testing.T) {
	g := newTestGame(quietConfig(), Deps{})

	in := core.NewInputFrame()
	g.Tick(0.016, in)
	distBefore := g.session.Distance

	pause := core.NewInputFrame()
	pause.Set(core.ActionPause)
	st := g.Tick(0.016, pause).State
	if !st.Paused {
		t.Fatal("pause intent should pause")
	}

	for i := 0; i < 10; i++ {
		g.Tick(0.016, in)
	}
	if g.session.Distance != distBefore {
		t.Error("no simulation time may elapse while paused")
	}

	st = g.Tick(0.016, pause).State
	if st.Paused {
		t.Fatal("second pause intent should resume")
	}
}

func TestJumpIntentReachesPlayer(t *testing.T) {
	g := newTestGame(quietConfig(), Deps{})

	in := core.NewInputFrame()
	in.Set(core.ActionJump)
	g.Tick(0.016, in)
	if g.player.OnGround {
		t.Fatal("jump intent should launch the player")
	}
}

func TestResetClearsRunState(t *testing.T) {
	store := newFakeStore()
	g := newTestGame(quietConfig(), Deps{Store: store})

	placeObstacleOnPlayer(g)
	g.Tick(0.016, core.NewInputFrame())
	if !g.gameOver {
		t.Fatal("setup: run should be over")
	}

	g.Reset(core.RuntimeConfig{Seed: 2})
	if g.gameOver || g.paused {
		t.Error("reset should clear the end state")
	}
	if g.session.Score != 0 || g.session.Coins != 0 {
		t.Error("reset should zero the session")
	}
	if g.obstacles.Len() != 0 || g.coins.Len() != 0 || g.powerups.Len() != 0 {
		t.Error("reset should clear all pools")
	}
	if g.best == 0 && store.stats[StatBestScore] != 0 {
		t.Error("reset should reload the best score")
	}
}

func TestOffscreenEntitiesAreReleased(t *testing.T) {
	g := newTestGame(quietConfig(), Deps{})

	g.obstacles.Acquire(func(o *Obstacle) {
		o.X = -100
		o.Y = 100
		o.W = 30
		o.H = 45
	})
	g.coins.Acquire(func(c *Coin) {
		c.X = -100
		c.Y = 100
	})
	g.powerups.Acquire(func(p *PowerUp) {
		p.X = -100
		p.Y = 100
		p.Kind = PowerShield
	})

	g.Tick(0.016, core.NewInputFrame())

	if g.obstacles.Len() != 0 || g.coins.Len() != 0 || g.powerups.Len() != 0 {
		t.Error("entities past the left edge should be released")
	}
}

func TestDeterministicWithSameSeed(t *testing.T) {
	run := func() (int, float64) {
		g := newTestGame(config.DefaultRunnerConfig(), Deps{})
		in := core.NewInputFrame()
		for i := 0; i < 300; i++ {
			jump := core.NewInputFrame()
			if i%37 == 0 {
				jump.Set(core.ActionJump)
				g.Tick(1.0/60, jump)
				continue
			}
			g.Tick(1.0/60, in)
		}
		return g.session.Score, g.session.Distance
	}

	s1, d1 := run()
	s2, d2 := run()
	if s1 != s2 || d1 != d2 {
		t.Errorf("same seed diverged: (%d, %v) vs (%d, %v)", s1, d1, s2, d2)
	}
}

func TestRenderProducesFrame(t *testing.T) {
	g := newTestGame(config.DefaultRunnerConfig(), Deps{})
	g.Tick(0.016, core.NewInputFrame())

	screen := core.NewScreen(80, 24)
	g.Render(screen)

	out := screen.String()
	if !strings.Contains(out, "SCORE") {
		t.Error("frame should contain the HUD")
	}
	if !strings.Contains(out, "═") {
		t.Error("frame should contain the ground line")
	}
}
