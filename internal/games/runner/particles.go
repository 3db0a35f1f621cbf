package runner

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/tui-runner/internal/core"
)

// Particle is a pooled ephemeral visual entity. Particles are purely
// cosmetic: they never collide with anything and gameplay never reads them.
type Particle struct {
	X, Y   float64
	VelX   float64
	VelY   float64
	Life   float64 // seconds remaining
	Glyph  rune
	Color  core.Color
	active bool
}

// SetPoolActive implements core.Poolable.
func (p *Particle) SetPoolActive(active bool) { p.active = active }

// Emitter spawns and advances particle bursts for collision feedback.
type Emitter struct {
	pool *core.Pool[*Particle]
	rng  *rand.Rand
}

// NewEmitter creates an emitter with a bounded particle pool.
func NewEmitter(capacity, freeCap int, rng *rand.Rand) *Emitter {
	return &Emitter{
		pool: core.NewPool(capacity, freeCap, func() *Particle { return &Particle{} }),
		rng:  rng,
	}
}

// Reset releases all live particles.
func (e *Emitter) Reset() {
	e.pool.Clear()
}

// Burst spawns count particles radiating from (x, y). Saturated spawns are
// silently dropped; feedback is best-effort.
func (e *Emitter) Burst(x, y float64, count int, glyph rune, color core.Color) {
	for i := 0; i < count; i++ {
		angle := e.rng.Float64() * 2 * math.Pi
		speed := 40 + e.rng.Float64()*120
		life := 0.3 + e.rng.Float64()*0.5

		_, ok := e.pool.Acquire(func(p *Particle) {
			p.X = x
			p.Y = y
			p.VelX = math.Cos(angle) * speed
			p.VelY = math.Sin(angle)*speed - 60 // slight upward bias
			p.Life = life
			p.Glyph = glyph
			p.Color = color
		})
		if !ok {
			return
		}
	}
}

// Update advances all particles and releases expired ones. Iterates in
// reverse index order to remove in place.
func (e *Emitter) Update(dt float64) {
	active := e.pool.Active()
	for i := len(active) - 1; i >= 0; i-- {
		p := active[i]
		p.Life -= dt
		if p.Life <= 0 {
			e.pool.ReleaseAt(i)
			continue
		}
		p.VelY += 300 * dt // light gravity so bursts arc down
		p.X += p.VelX * dt
		p.Y += p.VelY * dt
	}
}

// Active returns the live particles for rendering.
func (e *Emitter) Active() []*Particle {
	return e.pool.Active()
}

// Len returns the live particle count.
func (e *Emitter) Len() int {
	return e.pool.Len()
}
