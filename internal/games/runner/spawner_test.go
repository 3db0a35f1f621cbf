package runner

import (
	"math/rand"
	"testing"

	"github.com/vovakirdan/tui-runner/internal/core"
)

func newTestPools(t *testing.T) (obstacles *core.Pool[*Obstacle], coins *core.Pool[*Coin], powerups *core.Pool[*PowerUp]) {
	t.Helper()
	c := testConfig()
	obstacles = core.NewPool(c.Pools.Obstacles, c.Pools.FreeListCap, func() *Obstacle { return &Obstacle{} })
	coins = core.NewPool(c.Pools.Coins, c.Pools.FreeListCap, func() *Coin { return &Coin{} })
	powerups = core.NewPool(c.Pools.PowerUps, c.Pools.FreeListCap, func() *PowerUp { return &PowerUp{} })
	return obstacles, coins, powerups
}

func TestGapRangeShrinksWithDifficulty(t *testing.T) {
	cfg := testConfig()
	s := NewSpawner(&cfg, rand.New(rand.NewSource(1)))

	min0, max0 := s.gapRange(0)
	if min0 != 1.8 || max0 != 3.2 {
		t.Errorf("gapRange(0) = %v, %v; want 1.8, 3.2", min0, max0)
	}

	min5, max5 := s.gapRange(5)
	if min5 >= min0 || max5 >= max0 {
		t.Error("gap range should shrink as difficulty rises")
	}

	// At extreme difficulty both bounds sit on their floors.
	minHi, maxHi := s.gapRange(100)
	if minHi != 0.9 || maxHi != 1.4 {
		t.Errorf("gapRange(100) = %v, %v; want floors 0.9, 1.4", minHi, maxHi)
	}

	if minHi > maxHi {
		t.Error("min gap must never exceed max gap")
	}
}

func TestVariantCandidatesByDifficulty(t *testing.T) {
	for _, tc := range []struct {
		difficulty float64
		want       map[ObstacleVariant]bool
	}{
		{0, map[ObstacleVariant]bool{VariantNormal: true}},
		{4, map[ObstacleVariant]bool{VariantNormal: true, VariantSmall: true, VariantTall: true}},
		{7, map[ObstacleVariant]bool{VariantNormal: true, VariantSmall: true, VariantTall: true, VariantFlying: true}},
	} {
		got := map[ObstacleVariant]bool{}
		for _, v := range variantCandidates(tc.difficulty) {
			got[v] = true
		}
		for v := range tc.want {
			if !got[v] {
				t.Errorf("difficulty %v: missing variant %v", tc.difficulty, v)
			}
		}
		for v := range got {
			if !tc.want[v] {
				t.Errorf("difficulty %v: unexpected variant %v", tc.difficulty, v)
			}
		}
	}
}

func TestVariantNormalKeepsTripleWeight(t *testing.T) {
	candidates := variantCandidates(12)
	normals := 0
	for _, v := range candidates {
		if v == VariantNormal {
			normals++
		}
	}
	if normals != 3 {
		t.Errorf("normal weight = %d, want 3", normals)
	}
}

func TestVariantRunCap(t *testing.T) {
	cfg := testConfig()
	s := NewSpawner(&cfg, rand.New(rand.NewSource(42)))

	// At difficulty 12 the candidate set is diverse, so the anti-repetition
	// redraw should keep identical-variant runs at three or fewer.
	run, maxRun := 0, 0
	last := ObstacleVariant(-1)
	for i := 0; i < 500; i++ {
		v := s.pickVariant(12)
		if v == last {
			run++
		} else {
			run = 1
			last = v
		}
		if run > maxRun {
			maxRun = run
		}
	}
	if maxRun > 3 {
		t.Errorf("max identical-variant run = %d, want <= 3", maxRun)
	}
}

func TestSpawnObstaclePlacement(t *testing.T) {
	cfg := testConfig()
	s := NewSpawner(&cfg, rand.New(rand.NewSource(7)))
	obstacles, _, _ := newTestPools(t)

	s.spawnObstacle(0, obstacles)
	if obstacles.Len() != 1 {
		t.Fatalf("obstacle count = %d, want 1", obstacles.Len())
	}

	o := obstacles.Active()[0]
	if o.X <= cfg.World.Width {
		t.Errorf("obstacle X = %v, want beyond right edge %v", o.X, cfg.World.Width)
	}
	if o.Y+o.H > cfg.World.GroundY {
		t.Errorf("obstacle bottom %v extends below ground %v", o.Y+o.H, cfg.World.GroundY)
	}
}

func TestFlyingObstacleClearsSlidingPlayer(t *testing.T) {
	cfg := testConfig()
	_, _, clearance := variantSize(VariantFlying)
	bottom := cfg.World.GroundY - clearance

	// The sliding hitbox top must sit below the flying obstacle's bottom.
	slideTop := cfg.World.GroundY - cfg.Player.SlideHeight + cfg.Player.HitInsetY
	if slideTop <= bottom {
		t.Errorf("sliding player top %v does not clear flying obstacle bottom %v", slideTop, bottom)
	}
}

func TestCoinClusterSizeAndPlacement(t *testing.T) {
	cfg := testConfig()
	s := NewSpawner(&cfg, rand.New(rand.NewSource(3)))
	_, coins, _ := newTestPools(t)

	for trial := 0; trial < 50; trial++ {
		coins.Clear()
		s.spawnCoinCluster(coins)
		n := coins.Len()
		if n < cfg.Spawn.CoinClusterMin || n > cfg.Spawn.CoinClusterMax {
			t.Fatalf("cluster size = %d, want %d..%d", n, cfg.Spawn.CoinClusterMin, cfg.Spawn.CoinClusterMax)
		}
		for _, c := range coins.Active() {
			if c.Y+coinSize > cfg.World.GroundY {
				t.Errorf("coin at Y %v sits below ground", c.Y)
			}
			if c.Y < 0 {
				t.Errorf("coin at Y %v above the world", c.Y)
			}
		}
	}
}

func TestCoinClusterStopsAtPoolCap(t *testing.T) {
	cfg := testConfig()
	s := NewSpawner(&cfg, rand.New(rand.NewSource(9)))
	coins := core.NewPool(5, 8, func() *Coin { return &Coin{} })

	s.spawnCoinCluster(coins)
	s.spawnCoinCluster(coins)
	if coins.Len() > 5 {
		t.Errorf("coin count = %d exceeds pool cap 5", coins.Len())
	}
}

func TestPowerUpSpawnSkippedWhenSaturated(t *testing.T) {
	cfg := testConfig()
	s := NewSpawner(&cfg, rand.New(rand.NewSource(11)))
	_, _, powerups := newTestPools(t)

	s.spawnPowerUp(powerups)
	s.spawnPowerUp(powerups)
	if powerups.Len() != 2 {
		t.Fatalf("power-up count = %d, want 2", powerups.Len())
	}

	// Two already on screen: further spawns are skipped.
	s.spawnPowerUp(powerups)
	if powerups.Len() != 2 {
		t.Errorf("power-up count = %d after saturated spawn, want 2", powerups.Len())
	}
}

func TestPowerUpKindsNeverNone(t *testing.T) {
	cfg := testConfig()
	s := NewSpawner(&cfg, rand.New(rand.NewSource(13)))
	powerups := core.NewPool(100, 8, func() *PowerUp { return &PowerUp{} })
	cfg.Spawn.MaxActivePowerUps = 100
	for i := 0; i < 100; i++ {
		s.spawnPowerUp(powerups)
	}
	for _, p := range powerups.Active() {
		if p.Kind == PowerNone {
			t.Fatal("spawned power-up with kind none")
		}
	}
}

func TestSpawnerTimersFire(t *testing.T) {
	cfg := testConfig()
	s := NewSpawner(&cfg, rand.New(rand.NewSource(21)))
	obstacles, coins, powerups := newTestPools(t)

	// 30 simulated seconds covers every interval's upper bound.
	for i := 0; i < 30*60; i++ {
		s.Update(1.0/60, 0, obstacles, coins, powerups)
	}
	if obstacles.Len() == 0 {
		t.Error("no obstacles spawned in 30s")
	}
	if coins.Len() == 0 && coins.FreeLen() == 0 {
		t.Error("no coins spawned in 30s")
	}
	if powerups.Len() == 0 {
		t.Error("no power-ups spawned in 30s")
	}
}

func TestUniformBounds(t *testing.T) {
	cfg := testConfig()
	s := NewSpawner(&cfg, rand.New(rand.NewSource(17)))
	for i := 0; i < 1000; i++ {
		v := s.uniform(0.9, 1.4)
		if v < 0.9 || v >= 1.4 {
			t.Fatalf("uniform(0.9, 1.4) = %v out of range", v)
		}
	}
	if got := s.uniform(2, 2); got != 2 {
		t.Errorf("degenerate range = %v, want 2", got)
	}
	if got := s.uniform(3, 1); got != 3 {
		t.Errorf("inverted range = %v, want lo", got)
	}
}
