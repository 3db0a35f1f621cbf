package config

import (
	_ "embed"
)

//go:embed defaults/runner.yaml
var defaultRunnerYAML []byte

// DefaultRunnerConfig returns the hardcoded default configuration, used as a
// last resort when the embedded YAML cannot be parsed.
func DefaultRunnerConfig() RunnerConfig {
	return RunnerConfig{
		World: WorldConfig{
			Width:   800,
			Height:  240,
			GroundY: 200,
		},
		Physics: PhysicsConfig{
			Gravity:          2200,
			JumpImpulse:      -760,
			DoubleJumpFactor: 0.85,
			MaxFallSpeed:     1400,
			SlideDuration:    0.6,
			InvulnGrace:      1.5,
		},
		Player: PlayerConfig{
			X:           96,
			Width:       34,
			Height:      48,
			SlideHeight: 24,
			HitInsetX:   6,
			HitInsetY:   4,
		},
		Speed: SpeedConfig{
			Base: 320,
			Max:  650,
			Gain: 25,
		},
		Spawn: SpawnConfig{
			GapMinBase:         1.8,
			GapMaxBase:         3.2,
			GapShrink:          0.04,
			GapFloorMin:        0.9,
			GapFloorMax:        1.4,
			CoinMinInterval:    0.8,
			CoinMaxInterval:    2.6,
			CoinClusterMin:     3,
			CoinClusterMax:     7,
			PowerUpMinInterval: 10,
			PowerUpMaxInterval: 20,
			MaxActivePowerUps:  2,
		},
		PowerUps: PowerUpConfig{
			Duration:     8,
			MagnetRadius: 180,
			MagnetPull:   0.12,
			SlowMoFactor: 0.35,
		},
		Score: ScoreConfig{
			Rate:      0.03,
			CoinValue: 10,
		},
		Pools: PoolConfig{
			Obstacles:   12,
			Coins:       30,
			PowerUps:    4,
			Particles:   120,
			FreeListCap: 32,
		},
		Difficulty: DifficultyConfig{
			Enabled:          true,
			InitialLevel:     0.0,
			DistancePerLevel: 1500,
		},
	}
}
