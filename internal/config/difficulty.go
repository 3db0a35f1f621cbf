package config

// Curve maps distance traveled to the difficulty scalar and the scroll speed.
// Both are pure functions: difficulty is linear in distance, speed is a
// clamped linear function of difficulty. Spawn pacing and obstacle variety
// consume the same scalar.
type Curve struct {
	diff  DifficultyConfig
	speed SpeedConfig
}

// NewCurve creates a curve from the difficulty and speed configuration.
func NewCurve(diff DifficultyConfig, speed SpeedConfig) *Curve {
	return &Curve{diff: diff, speed: speed}
}

// Level returns the difficulty scalar for the given distance in px.
// With progression disabled the level stays at the configured initial value.
func (c *Curve) Level(distance float64) float64 {
	if !c.diff.Enabled {
		return c.diff.InitialLevel
	}
	per := c.diff.DistancePerLevel
	if per <= 0 {
		per = 1 // Prevent division by zero
	}
	return c.diff.InitialLevel + distance/per
}

// ScrollSpeed returns the horizontal world speed in px/s for a difficulty
// level. Clamped to [base, max] regardless of run length.
func (c *Curve) ScrollSpeed(level float64) float64 {
	s := c.speed.Base + level*c.speed.Gain
	if s < c.speed.Base {
		return c.speed.Base
	}
	if s > c.speed.Max {
		return c.speed.Max
	}
	return s
}
