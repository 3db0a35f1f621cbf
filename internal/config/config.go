// Package config provides YAML-based game configuration loading and the
// difficulty curve for the runner.
package config

// RunnerConfig contains all tunable parameters of the simulation. Values are
// in world pixels and seconds unless noted otherwise.
type RunnerConfig struct {
	World      WorldConfig      `yaml:"world"`
	Physics    PhysicsConfig    `yaml:"physics"`
	Player     PlayerConfig     `yaml:"player"`
	Speed      SpeedConfig      `yaml:"speed"`
	Spawn      SpawnConfig      `yaml:"spawn"`
	PowerUps   PowerUpConfig    `yaml:"powerups"`
	Score      ScoreConfig      `yaml:"score"`
	Pools      PoolConfig       `yaml:"pools"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// WorldConfig defines the simulated world extents. The renderer maps world
// pixels onto terminal cells; the simulation itself never sees cells.
type WorldConfig struct {
	Width   float64 `yaml:"width"`    // Visible world width in px
	Height  float64 `yaml:"height"`   // World height in px
	GroundY float64 `yaml:"ground_y"` // Y of the ground line in px
}

// PhysicsConfig defines vertical physics parameters.
type PhysicsConfig struct {
	Gravity          float64 `yaml:"gravity"`            // px/s^2, positive down
	JumpImpulse      float64 `yaml:"jump_impulse"`       // px/s, negative up
	DoubleJumpFactor float64 `yaml:"double_jump_factor"` // fraction of the base impulse
	MaxFallSpeed     float64 `yaml:"max_fall_speed"`     // px/s
	SlideDuration    float64 `yaml:"slide_duration"`     // seconds
	InvulnGrace      float64 `yaml:"invuln_grace"`       // post-shield-hit window, seconds
}

// PlayerConfig defines the avatar's placement and collision bounds.
type PlayerConfig struct {
	X           float64 `yaml:"x"`            // Fixed horizontal position
	Width       float64 `yaml:"width"`        // Sprite width
	Height      float64 `yaml:"height"`       // Sprite height standing
	SlideHeight float64 `yaml:"slide_height"` // Hitbox height while sliding
	HitInsetX   float64 `yaml:"hit_inset_x"`  // Fairness inset, horizontal
	HitInsetY   float64 `yaml:"hit_inset_y"`  // Fairness inset, vertical
}

// SpeedConfig defines the scroll speed ramp. Scroll speed is a pure clamped
// function of the difficulty scalar: base + difficulty*gain, never above max.
type SpeedConfig struct {
	Base float64 `yaml:"base"` // px/s at difficulty 0
	Max  float64 `yaml:"max"`  // px/s cap
	Gain float64 `yaml:"gain"` // px/s added per difficulty level
}

// SpawnConfig defines the procedural spawn pacing.
type SpawnConfig struct {
	// Obstacle gap range shrinks with difficulty:
	// minGap = max(GapFloorMin, GapMinBase - GapShrink*difficulty)
	// maxGap = max(GapFloorMax, GapMaxBase - GapShrink*difficulty)
	GapMinBase  float64 `yaml:"gap_min_base"`
	GapMaxBase  float64 `yaml:"gap_max_base"`
	GapShrink   float64 `yaml:"gap_shrink"`
	GapFloorMin float64 `yaml:"gap_floor_min"`
	GapFloorMax float64 `yaml:"gap_floor_max"`

	CoinMinInterval float64 `yaml:"coin_min_interval"`
	CoinMaxInterval float64 `yaml:"coin_max_interval"`
	CoinClusterMin  int     `yaml:"coin_cluster_min"`
	CoinClusterMax  int     `yaml:"coin_cluster_max"`

	PowerUpMinInterval float64 `yaml:"powerup_min_interval"`
	PowerUpMaxInterval float64 `yaml:"powerup_max_interval"`
	MaxActivePowerUps  int     `yaml:"max_active_powerups"` // skip spawn at this many on screen
}

// PowerUpConfig defines power-up effect parameters.
type PowerUpConfig struct {
	Duration     float64 `yaml:"duration"`      // shared effect window, seconds
	MagnetRadius float64 `yaml:"magnet_radius"` // px from player center
	MagnetPull   float64 `yaml:"magnet_pull"`   // fraction of distance closed per tick
	SlowMoFactor float64 `yaml:"slowmo_factor"` // gameplay time dilation
}

// ScoreConfig defines score accrual.
type ScoreConfig struct {
	Rate      float64 `yaml:"rate"`       // score per px scrolled (before multiplier)
	CoinValue int     `yaml:"coin_value"` // base score per coin
}

// PoolConfig defines entity pool caps.
type PoolConfig struct {
	Obstacles   int `yaml:"obstacles"`
	Coins       int `yaml:"coins"`
	PowerUps    int `yaml:"powerups"`
	Particles   int `yaml:"particles"`
	FreeListCap int `yaml:"free_list_cap"` // per-pool retained free entities
}

// DifficultyConfig defines the distance-driven difficulty scalar.
// difficulty = initial_level + distance/distance_per_level (when enabled).
type DifficultyConfig struct {
	Enabled          bool    `yaml:"enabled"`
	InitialLevel     float64 `yaml:"initial_level"`
	DistancePerLevel float64 `yaml:"distance_per_level"`
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// InitialLevelForPreset returns the starting difficulty for a preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 1.5
	case DifficultyHard:
		return 4.0
	default:
		return 0.0
	}
}

// ApplyRunnerPreset modifies the config based on a difficulty preset.
func ApplyRunnerPreset(cfg *RunnerConfig, preset DifficultyPreset) {
	if preset == DifficultyFixed {
		cfg.Difficulty.Enabled = false
		return
	}
	cfg.Difficulty.Enabled = true
	cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
}
