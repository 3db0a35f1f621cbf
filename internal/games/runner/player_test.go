package runner

import (
	"testing"

	"github.com/vovakirdan/tui-runner/internal/config"
)

func testConfig() config.RunnerConfig {
	return config.DefaultRunnerConfig()
}

func TestPlayerStartsGrounded(t *testing.T) {
	cfg := testConfig()
	p := NewPlayer(&cfg, nil)

	if !p.OnGround {
		t.Fatal("player should start on the ground")
	}
	if p.VelY != 0 {
		t.Errorf("VelY = %v, want 0", p.VelY)
	}
	want := cfg.World.GroundY - cfg.Player.Height
	if p.Y != want {
		t.Errorf("Y = %v, want %v", p.Y, want)
	}
}

func TestPlayerJumpAndLand(t *testing.T) {
	cfg := testConfig()
	p := NewPlayer(&cfg, nil)

	p.Jump()
	if p.OnGround {
		t.Fatal("player should be airborne after jump")
	}
	if p.VelY != cfg.Physics.JumpImpulse {
		t.Errorf("VelY = %v, want %v", p.VelY, cfg.Physics.JumpImpulse)
	}
	if p.JumpCount != 1 {
		t.Errorf("JumpCount = %d, want 1", p.JumpCount)
	}

	// Simulate until landing; a full jump takes well under 2 seconds.
	for i := 0; i < 200 && !p.OnGround; i++ {
		p.Update(0.016, 0.016)
	}
	if !p.OnGround {
		t.Fatal("player never landed")
	}
	if p.VelY != 0 {
		t.Errorf("VelY after landing = %v, want 0", p.VelY)
	}
	if p.Y != cfg.World.GroundY-cfg.Player.Height {
		t.Errorf("Y after landing = %v, want %v", p.Y, cfg.World.GroundY-cfg.Player.Height)
	}
	if p.JumpCount != 0 {
		t.Errorf("JumpCount after landing = %d, want 0", p.JumpCount)
	}
}

func TestPlayerDoubleJumpRequiresPowerUp(t *testing.T) {
	cfg := testConfig()
	p := NewPlayer(&cfg, nil)

	p.Jump()
	p.Update(0.1, 0.1)

	// Without the capability the second jump is a no-op.
	velBefore := p.VelY
	p.Jump()
	if p.VelY != velBefore {
		t.Fatal("double jump fired without the capability")
	}

	p.HasDoubleJump = true
	p.Jump()
	want := cfg.Physics.JumpImpulse * cfg.Physics.DoubleJumpFactor
	if p.VelY != want {
		t.Errorf("double jump VelY = %v, want %v", p.VelY, want)
	}
	if p.JumpCount != 2 {
		t.Errorf("JumpCount = %d, want 2", p.JumpCount)
	}

	// A third press in the air does nothing.
	velBefore = p.VelY
	p.Jump()
	if p.VelY != velBefore {
		t.Fatal("triple jump should not be possible")
	}
}

func TestPlayerSlide(t *testing.T) {
	cfg := testConfig()
	p := NewPlayer(&cfg, nil)

	p.Slide()
	if !p.Sliding {
		t.Fatal("player should be sliding")
	}

	hb := p.Hitbox()
	wantH := cfg.Player.SlideHeight - 2*cfg.Player.HitInsetY
	if hb.H != wantH {
		t.Errorf("sliding hitbox height = %v, want %v", hb.H, wantH)
	}

	// Slide expires after its duration.
	for i := 0; i < 60; i++ {
		p.Update(0.016, 0.016)
	}
	if p.Sliding {
		t.Fatal("slide should have expired")
	}
}

func TestPlayerSlideOnlyOnGround(t *testing.T) {
	cfg := testConfig()
	p := NewPlayer(&cfg, nil)

	p.Jump()
	p.Slide()
	if p.Sliding {
		t.Fatal("airborne slide should be a no-op")
	}
}

func TestPlayerJumpCancelsSlide(t *testing.T) {
	cfg := testConfig()
	p := NewPlayer(&cfg, nil)

	p.Slide()
	p.Jump()
	if p.Sliding {
		t.Fatal("jump should cancel the slide")
	}
	if !p.OnGround {
		t.Fatal("the cancelling press should not also launch a jump")
	}
}

func TestPlayerShieldConsumedOnHit(t *testing.T) {
	cfg := testConfig()
	p := NewPlayer(&cfg, nil)

	p.SetShield(true)
	if got := p.TakeDamage(); got != DamageSurvived {
		t.Fatalf("shielded hit = %v, want DamageSurvived", got)
	}
	if p.Shielded {
		t.Fatal("shield should be consumed by the hit")
	}
	if !p.Invincible() {
		t.Fatal("grace window should follow the consumed shield")
	}

	// A second hit during the grace window survives without extending it.
	timerBefore := p.invulnTimer
	if got := p.TakeDamage(); got != DamageSurvived {
		t.Fatalf("grace-window hit = %v, want DamageSurvived", got)
	}
	if p.invulnTimer != timerBefore {
		t.Errorf("grace window extended: %v -> %v", timerBefore, p.invulnTimer)
	}

	// After the window elapses the next hit is lethal.
	for i := 0; i < 120; i++ {
		p.Update(0.016, 0.016)
	}
	if p.Invincible() {
		t.Fatal("grace window should have elapsed")
	}
	if got := p.TakeDamage(); got != DamageDied {
		t.Fatalf("unprotected hit = %v, want DamageDied", got)
	}
	if !p.Dead {
		t.Fatal("player should be dead")
	}
}

func TestPlayerInvulnCountsDownOnWallTime(t *testing.T) {
	cfg := testConfig()
	p := NewPlayer(&cfg, nil)

	p.SetShield(true)
	p.TakeDamage()

	// Gameplay time frozen, wall time advancing: the window still shrinks.
	for i := 0; i < 120; i++ {
		p.Update(0, 0.016)
	}
	if p.Invincible() {
		t.Fatal("invincibility should expire on wall time")
	}
}

func TestPlayerDeadFreezes(t *testing.T) {
	cfg := testConfig()
	p := NewPlayer(&cfg, nil)

	p.Jump()
	p.TakeDamage()
	y, vel := p.Y, p.VelY
	p.Update(0.016, 0.016)
	if p.Y != y || p.VelY != vel {
		t.Fatal("dead player should not move")
	}

	p.Jump()
	if p.JumpCount != 1 {
		t.Fatal("dead player should ignore intents")
	}
}

func TestPlayerHitboxInset(t *testing.T) {
	cfg := testConfig()
	p := NewPlayer(&cfg, nil)

	hb := p.Hitbox()
	if hb.W != cfg.Player.Width-2*cfg.Player.HitInsetX {
		t.Errorf("hitbox width = %v, want %v", hb.W, cfg.Player.Width-2*cfg.Player.HitInsetX)
	}
	if hb.H != cfg.Player.Height-2*cfg.Player.HitInsetY {
		t.Errorf("hitbox height = %v, want %v", hb.H, cfg.Player.Height-2*cfg.Player.HitInsetY)
	}
}
