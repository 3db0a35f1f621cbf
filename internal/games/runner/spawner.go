package runner

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/tui-runner/internal/config"
	"github.com/vovakirdan/tui-runner/internal/core"
)

// variantRedrawCap bounds the anti-repetition rejection sampling. Ten
// attempts is a deliberate fairness/performance tradeoff: it caps runs of an
// identical obstacle variant at three in practice while keeping the worst
// case bounded, after which whatever was drawn is accepted.
const variantRedrawCap = 10

// Spawn margins ahead of the visible window, in world px.
const (
	obstacleSpawnMargin = 40
	powerUpSpawnMargin  = 60
	coinSpacing         = 24
	powerUpHeight       = 110 // above ground, jump-reachable
)

// Spawner is the procedural generation policy: three independent interval
// timers (obstacle, coin, power-up), each redrawing a randomized next-fire
// time after firing. The policy never blocks; when a pool is saturated the
// spawn attempt is silently dropped and retried at the next scheduled fire.
type Spawner struct {
	cfg *config.RunnerConfig
	rng *rand.Rand

	obstacleIn float64 // seconds until next obstacle
	coinIn     float64
	powerIn    float64

	lastVariant ObstacleVariant
	lastRun     int // consecutive spawns of lastVariant
}

// NewSpawner creates the policy with its own RNG stream.
func NewSpawner(cfg *config.RunnerConfig, rng *rand.Rand) *Spawner {
	s := &Spawner{cfg: cfg, rng: rng}
	s.Reset()
	return s
}

// Reset redraws all fire timers for a new run.
func (s *Spawner) Reset() {
	minGap, maxGap := s.gapRange(0)
	s.obstacleIn = s.uniform(minGap, maxGap)
	s.coinIn = s.uniform(s.cfg.Spawn.CoinMinInterval, s.cfg.Spawn.CoinMaxInterval)
	s.powerIn = s.uniform(s.cfg.Spawn.PowerUpMinInterval, s.cfg.Spawn.PowerUpMaxInterval)
	s.lastVariant = VariantNormal
	s.lastRun = 0
}

// Update advances the three timers by the gameplay delta and fires any that
// elapse, populating the pools.
func (s *Spawner) Update(
	dt, difficulty float64,
	obstacles *core.Pool[*Obstacle],
	coins *core.Pool[*Coin],
	powerups *core.Pool[*PowerUp],
) {
	s.obstacleIn -= dt
	if s.obstacleIn <= 0 {
		s.spawnObstacle(difficulty, obstacles)
		minGap, maxGap := s.gapRange(difficulty)
		s.obstacleIn = s.uniform(minGap, maxGap)
	}

	s.coinIn -= dt
	if s.coinIn <= 0 {
		s.spawnCoinCluster(coins)
		s.coinIn = s.uniform(s.cfg.Spawn.CoinMinInterval, s.cfg.Spawn.CoinMaxInterval)
	}

	s.powerIn -= dt
	if s.powerIn <= 0 {
		s.spawnPowerUp(powerups)
		s.powerIn = s.uniform(s.cfg.Spawn.PowerUpMinInterval, s.cfg.Spawn.PowerUpMaxInterval)
	}
}

// gapRange returns the obstacle gap bounds in seconds for a difficulty level.
// The gap shrinks as difficulty rises but never below the configured floors.
func (s *Spawner) gapRange(difficulty float64) (minGap, maxGap float64) {
	sp := s.cfg.Spawn
	minGap = math.Max(sp.GapFloorMin, sp.GapMinBase-sp.GapShrink*difficulty)
	maxGap = math.Max(sp.GapFloorMax, sp.GapMaxBase-sp.GapShrink*difficulty)
	return minGap, maxGap
}

// variantCandidates builds the weighted candidate set for a difficulty
// level. Normal keeps triple weight; higher difficulty appends harder
// variants, biasing draws toward variety.
func variantCandidates(difficulty float64) []ObstacleVariant {
	candidates := []ObstacleVariant{VariantNormal, VariantNormal, VariantNormal}
	if difficulty > 3 {
		candidates = append(candidates, VariantSmall, VariantTall)
	}
	if difficulty > 6 {
		candidates = append(candidates, VariantFlying)
	}
	if difficulty > 10 {
		candidates = append(candidates, VariantTall, VariantFlying)
	}
	return candidates
}

// pickVariant draws a variant with anti-repetition rejection sampling:
// a draw matching a variant that already spawned twice in a row is redrawn,
// up to variantRedrawCap attempts, then accepted as-is.
func (s *Spawner) pickVariant(difficulty float64) ObstacleVariant {
	candidates := variantCandidates(difficulty)

	v := candidates[s.rng.Intn(len(candidates))]
	for attempt := 0; attempt < variantRedrawCap && v == s.lastVariant && s.lastRun >= 2; attempt++ {
		v = candidates[s.rng.Intn(len(candidates))]
	}

	if v == s.lastVariant {
		s.lastRun++
	} else {
		s.lastVariant = v
		s.lastRun = 1
	}
	return v
}

// spawnObstacle places one obstacle just beyond the right edge.
func (s *Spawner) spawnObstacle(difficulty float64, obstacles *core.Pool[*Obstacle]) {
	variant := s.pickVariant(difficulty)
	w, h, clearance := variantSize(variant)

	obstacles.Acquire(func(o *Obstacle) {
		o.X = s.cfg.World.Width + obstacleSpawnMargin
		o.Y = s.cfg.World.GroundY - h - clearance
		o.W = w
		o.H = h
		o.Variant = variant
	})
}

// Coin cluster layouts.
const (
	layoutLine = iota
	layoutArc
	layoutScatter
	layoutCount
)

// spawnCoinCluster places 3-7 coins in a line, arc, or scattered cluster.
// Acquire fails silently once the coin pool hits its cap; excess coins in a
// cluster are simply not spawned.
func (s *Spawner) spawnCoinCluster(coins *core.Pool[*Coin]) {
	sp := s.cfg.Spawn
	count := sp.CoinClusterMin + s.rng.Intn(sp.CoinClusterMax-sp.CoinClusterMin+1)
	layout := s.rng.Intn(layoutCount)

	startX := s.cfg.World.Width + obstacleSpawnMargin
	baseY := s.cfg.World.GroundY - (40 + s.rng.Float64()*90)

	for i := 0; i < count; i++ {
		x := startX + float64(i)*coinSpacing
		y := baseY

		switch layout {
		case layoutArc:
			// Sine-interpolated height across the cluster
			t := 0.0
			if count > 1 {
				t = float64(i) / float64(count-1)
			}
			y = baseY - 50*math.Sin(math.Pi*t)
		case layoutScatter:
			x += s.uniform(-10, 10)
			// Jitter stays inside the playable band; the coin bottom may
			// touch the ground line but never cross it.
			y = core.ClampF(y+s.uniform(-40, 40), coinSize, s.cfg.World.GroundY-coinSize)
		}

		if _, ok := coins.Acquire(func(c *Coin) {
			c.X = x
			c.Y = y
		}); !ok {
			return
		}
	}
}

// spawnPowerUp places one power-up ahead of the visible window at a fixed
// height, skipped while enough power-ups are already on screen.
func (s *Spawner) spawnPowerUp(powerups *core.Pool[*PowerUp]) {
	if powerups.Len() >= s.cfg.Spawn.MaxActivePowerUps {
		return
	}

	kind := PowerKind(1 + s.rng.Intn(4))
	powerups.Acquire(func(p *PowerUp) {
		p.X = s.cfg.World.Width + powerUpSpawnMargin
		p.Y = s.cfg.World.GroundY - powerUpHeight
		p.Kind = kind
	})
}

// uniform draws from [lo, hi).
func (s *Spawner) uniform(lo, hi float64) float64 {
	if hi <= lo {
		return lo
	}
	return lo + s.rng.Float64()*(hi-lo)
}
