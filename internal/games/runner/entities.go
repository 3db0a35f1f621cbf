package runner

import (
	"github.com/vovakirdan/tui-runner/internal/core"
)

// ObstacleVariant tags the obstacle shapes the spawn policy chooses from.
type ObstacleVariant int

const (
	VariantNormal ObstacleVariant = iota
	VariantSmall
	VariantTall
	VariantFlying
)

// String returns the variant name, also used as the sprite key suffix.
func (v ObstacleVariant) String() string {
	switch v {
	case VariantNormal:
		return "normal"
	case VariantSmall:
		return "small"
	case VariantTall:
		return "tall"
	case VariantFlying:
		return "flying"
	default:
		return "unknown"
	}
}

// variantSize returns the obstacle extents in world px and the bottom-edge
// clearance above the ground. Flying obstacles hover high enough that a
// sliding player passes underneath.
func variantSize(v ObstacleVariant) (w, h, clearance float64) {
	switch v {
	case VariantSmall:
		return 24, 28, 0
	case VariantTall:
		return 34, 70, 0
	case VariantFlying:
		return 38, 30, 30
	default:
		return 30, 45, 0
	}
}

// Obstacle is a pooled hazard scrolling toward the player.
type Obstacle struct {
	X, Y    float64 // Top-left in world px
	W, H    float64
	Variant ObstacleVariant
	active  bool
}

// SetPoolActive implements core.Poolable.
func (o *Obstacle) SetPoolActive(active bool) { o.active = active }

// Active reports whether the obstacle participates in update/collision/draw.
func (o *Obstacle) Active() bool { return o.active }

// Bounds returns the collision rectangle.
func (o *Obstacle) Bounds() core.RectF {
	return core.NewRectF(o.X, o.Y, o.W, o.H)
}

// Coin size in world px.
const coinSize = 16

// Coin is a pooled collectible.
type Coin struct {
	X, Y   float64 // Top-left in world px
	active bool
}

// SetPoolActive implements core.Poolable.
func (c *Coin) SetPoolActive(active bool) { c.active = active }

// Active reports whether the coin participates in update/collision/draw.
func (c *Coin) Active() bool { return c.active }

// Bounds returns the collision rectangle.
func (c *Coin) Bounds() core.RectF {
	return core.NewRectF(c.X, c.Y, coinSize, coinSize)
}

// Center returns the coin center in world px.
func (c *Coin) Center() (float64, float64) {
	return c.X + coinSize/2, c.Y + coinSize/2
}

// PowerKind tags the power-up effects.
type PowerKind int

const (
	PowerNone PowerKind = iota
	PowerShield
	PowerSlowMo
	PowerMagnet
	PowerDoubleJump
)

// String returns the effect name, also used as the sprite key suffix.
func (k PowerKind) String() string {
	switch k {
	case PowerShield:
		return "shield"
	case PowerSlowMo:
		return "slowmo"
	case PowerMagnet:
		return "magnet"
	case PowerDoubleJump:
		return "doublejump"
	default:
		return "none"
	}
}

// Title returns the display name shown in pickup notifications.
func (k PowerKind) Title() string {
	switch k {
	case PowerShield:
		return "Shield"
	case PowerSlowMo:
		return "Slow Motion"
	case PowerMagnet:
		return "Coin Magnet"
	case PowerDoubleJump:
		return "Double Jump"
	default:
		return "?"
	}
}

// Power-up size in world px.
const powerUpSize = 24

// PowerUp is a pooled pickup granting a timed effect.
type PowerUp struct {
	X, Y   float64 // Top-left in world px
	Kind   PowerKind
	active bool
}

// SetPoolActive implements core.Poolable.
func (p *PowerUp) SetPoolActive(active bool) { p.active = active }

// Active reports whether the power-up participates in update/collision/draw.
func (p *PowerUp) Active() bool { return p.active }

// Bounds returns the collision rectangle.
func (p *PowerUp) Bounds() core.RectF {
	return core.NewRectF(p.X, p.Y, powerUpSize, powerUpSize)
}
