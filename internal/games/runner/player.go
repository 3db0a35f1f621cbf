package runner

import (
	"github.com/vovakirdan/tui-runner/internal/audio"
	"github.com/vovakirdan/tui-runner/internal/config"
	"github.com/vovakirdan/tui-runner/internal/core"
)

// DamageResult is the outcome of an obstacle hit.
type DamageResult int

const (
	DamageSurvived DamageResult = iota
	DamageDied
)

// Player is the avatar state machine. X is fixed; only Y moves. The state
// space is {ground, airborne(jumpCount 1..2)} x {sliding} x {shielded} x
// {invincible} x {dead}, with dead terminal: once set, physics freeze.
//
// Invariants: OnGround implies VelY == 0 and Y == groundY - Height;
// Sliding implies OnGround; JumpCount resets to 0 only on landing.
type Player struct {
	X, Y float64 // Top-left in world px
	VelY float64 // px/s, positive down

	OnGround      bool
	Sliding       bool
	Dead          bool
	Shielded      bool
	HasDoubleJump bool

	JumpCount int // 0 on ground, 1 after jump, 2 after double jump
	Jumps     int // cumulative jumps this run

	AnimFrame int // 0..3 running animation cycle

	slideTimer  float64
	invulnTimer float64
	animTimer   float64

	cfg   *config.RunnerConfig
	audio AudioPlayer
}

// NewPlayer creates the avatar for a run. A nil audio player is replaced
// with a silent no-op.
func NewPlayer(cfg *config.RunnerConfig, audioPlayer AudioPlayer) *Player {
	if audioPlayer == nil {
		audioPlayer = nopAudio{}
	}
	p := &Player{cfg: cfg, audio: audioPlayer}
	p.Reset()
	return p
}

// Reset restores the run-start state: grounded, no effects.
func (p *Player) Reset() {
	p.X = p.cfg.Player.X
	p.Y = p.groundTop()
	p.VelY = 0
	p.OnGround = true
	p.Sliding = false
	p.Dead = false
	p.Shielded = false
	p.HasDoubleJump = false
	p.JumpCount = 0
	p.Jumps = 0
	p.AnimFrame = 0
	p.slideTimer = 0
	p.invulnTimer = 0
	p.animTimer = 0
}

// groundTop returns the Y of the sprite top when standing on the ground.
func (p *Player) groundTop() float64 {
	return p.cfg.World.GroundY - p.cfg.Player.Height
}

// Jump handles the jump intent. While sliding it cancels the slide instead of
// jumping. On the ground it launches; airborne it performs the reduced-impulse
// double jump when that capability is granted and only one jump has been
// spent. Anything else is a silent no-op.
func (p *Player) Jump() {
	if p.Dead {
		return
	}

	if p.Sliding {
		p.Sliding = false
		p.slideTimer = 0
		return
	}

	if p.OnGround {
		p.VelY = p.cfg.Physics.JumpImpulse
		p.OnGround = false
		p.JumpCount = 1
		p.Jumps++
		p.audio.Play(audio.SoundJump)
		return
	}

	if p.HasDoubleJump && p.JumpCount < 2 {
		p.VelY = p.cfg.Physics.JumpImpulse * p.cfg.Physics.DoubleJumpFactor
		p.JumpCount++
		p.Jumps++
		p.audio.Play(audio.SoundJump)
	}
}

// Slide handles the slide intent: valid only on the ground and not already
// sliding. The slide runs for a fixed duration and shrinks the hitbox.
func (p *Player) Slide() {
	if p.Dead || !p.OnGround || p.Sliding {
		return
	}
	p.Sliding = true
	p.slideTimer = p.cfg.Physics.SlideDuration
	p.audio.Play(audio.SoundSlide)
}

// SetShield toggles the shield. Turning it on also grants the temporary
// invincibility window so the pickup flash cannot be interrupted by a hit.
func (p *Player) SetShield(on bool) {
	p.Shielded = on
	if on && p.invulnTimer < p.cfg.Physics.InvulnGrace {
		p.invulnTimer = p.cfg.Physics.InvulnGrace
	}
}

// Invincible reports whether the player currently ignores lethal hits.
func (p *Player) Invincible() bool {
	return p.Shielded || p.invulnTimer > 0
}

// TakeDamage resolves an obstacle hit. An invincible player survives: the
// shield is consumed and a grace window keeps repeated hits during the flash
// from double-counting. Otherwise the hit is lethal and the player freezes.
func (p *Player) TakeDamage() DamageResult {
	if p.Dead {
		return DamageDied
	}

	if p.Invincible() {
		if p.Shielded {
			p.Shielded = false
			p.invulnTimer = p.cfg.Physics.InvulnGrace
		}
		return DamageSurvived
	}

	p.Dead = true
	return DamageDied
}

// Update advances the slide timer, vertical physics, the invincibility
// window, and the 4-frame run animation. dt is gameplay time (dilated under
// slow motion); wallDt is real time and drives the invincibility countdown.
// Dead freezes everything.
func (p *Player) Update(dt, wallDt float64) {
	if p.Dead {
		return
	}

	if p.Sliding {
		p.slideTimer -= dt
		if p.slideTimer <= 0 {
			p.Sliding = false
			p.slideTimer = 0
		}
	}

	if !p.OnGround {
		p.VelY += p.cfg.Physics.Gravity * dt
		if p.VelY > p.cfg.Physics.MaxFallSpeed {
			p.VelY = p.cfg.Physics.MaxFallSpeed
		}
		p.Y += p.VelY * dt

		// Landing clamps to the ground and resets airborne state
		if p.Y >= p.groundTop() {
			p.Y = p.groundTop()
			p.VelY = 0
			p.OnGround = true
			p.JumpCount = 0
		}
	}

	if p.invulnTimer > 0 {
		p.invulnTimer -= wallDt
		if p.invulnTimer < 0 {
			p.invulnTimer = 0
		}
	}

	p.animTimer += dt
	p.AnimFrame = int(p.animTimer*10) % 4
}

// Hitbox returns the fairness-inset rectangle used for all collision tests.
// Sliding reduces the height to the configured slide height anchored at the
// sprite's bottom.
func (p *Player) Hitbox() core.RectF {
	pc := p.cfg.Player
	if p.Sliding {
		slideTop := p.cfg.World.GroundY - pc.SlideHeight
		return core.NewRectF(p.X, slideTop, pc.Width, pc.SlideHeight).Inset(pc.HitInsetX, pc.HitInsetY)
	}
	return core.NewRectF(p.X, p.Y, pc.Width, pc.Height).Inset(pc.HitInsetX, pc.HitInsetY)
}
