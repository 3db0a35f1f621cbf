package runner

import (
	"math"

	"github.com/vovakirdan/tui-runner/internal/config"
)

// Session tracks one run's progression: score, coins, distance, the derived
// difficulty scalar and scroll speed, and the single active power-up window.
// Score is monotonically non-decreasing within a run; difficulty is a pure
// function of distance; scroll speed is a pure clamped function of
// difficulty.
type Session struct {
	Score      int
	Coins      int
	Multiplier int // score multiplier from purchased upgrades, >= 1

	Distance    float64 // world px traveled
	Difficulty  float64
	ScrollSpeed float64 // px/s

	ActivePower PowerKind // at most one concurrently active
	PowerTimer  float64   // real-time seconds remaining

	scoreAcc float64 // fractional score carried between ticks

	cfg   *config.RunnerConfig
	curve *config.Curve
}

// NewSession creates a run session with the given score multiplier.
func NewSession(cfg *config.RunnerConfig, curve *config.Curve, multiplier int) *Session {
	if multiplier < 1 {
		multiplier = 1
	}
	s := &Session{
		Multiplier: multiplier,
		cfg:        cfg,
		curve:      curve,
	}
	s.Difficulty = curve.Level(0)
	s.ScrollSpeed = curve.ScrollSpeed(s.Difficulty)
	return s
}

// Advance accrues score and distance for one tick and recomputes difficulty
// and scroll speed. dt is the gameplay delta (dilated under slow motion);
// rawDt is the clamped wall-clock delta. Distance runs on wall time so a
// slow-motion run does not stretch the difficulty ramp.
//
// The per-tick score increment is well below 1 at typical frame deltas, so
// the fraction accumulates and Score only takes the whole part.
func (s *Session) Advance(dt, rawDt float64) {
	s.scoreAcc += s.ScrollSpeed * dt * s.cfg.Score.Rate * float64(s.Multiplier)
	if whole := math.Floor(s.scoreAcc); whole >= 1 {
		s.Score += int(whole)
		s.scoreAcc -= whole
	}
	s.Distance += s.ScrollSpeed * rawDt

	s.Difficulty = s.curve.Level(s.Distance)
	s.ScrollSpeed = s.curve.ScrollSpeed(s.Difficulty)
}

// AddCoin credits one collected coin and returns the score gained.
func (s *Session) AddCoin() int {
	gained := s.cfg.Score.CoinValue * s.Multiplier
	s.Score += gained
	s.Coins++
	return gained
}

// ActivatePower arms the shared effect window for the given kind.
func (s *Session) ActivatePower(kind PowerKind) {
	s.ActivePower = kind
	s.PowerTimer = s.cfg.PowerUps.Duration
}

// TickPower counts the effect window down on wall-clock time. Returns the
// kind that just expired, or PowerNone.
func (s *Session) TickPower(wallDt float64) PowerKind {
	if s.ActivePower == PowerNone {
		return PowerNone
	}
	s.PowerTimer -= wallDt
	if s.PowerTimer > 0 {
		return PowerNone
	}
	expired := s.ActivePower
	s.ActivePower = PowerNone
	s.PowerTimer = 0
	return expired
}

// ClearPower drops the active effect window without reporting an expiry.
func (s *Session) ClearPower() {
	s.ActivePower = PowerNone
	s.PowerTimer = 0
}

// MagnetActive reports whether coins should home toward the player.
func (s *Session) MagnetActive() bool {
	return s.ActivePower == PowerMagnet
}

// SlowMoActive reports whether gameplay time is dilated.
func (s *Session) SlowMoActive() bool {
	return s.ActivePower == PowerSlowMo
}
