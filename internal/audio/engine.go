// Package audio synthesizes game sound effects and background music with
// gopxl/beep. Initialization failure (no audio backend) degrades to silence;
// no audio error is ever fatal to the game.
package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(44100)

// Sound identifiers understood by Play. Unknown IDs are silently skipped.
const (
	SoundJump    = "jump"
	SoundSlide   = "slide"
	SoundCoin    = "coin"
	SoundPowerUp = "powerup"
	SoundShield  = "shield"
	SoundDeath   = "death"
)

// Engine plays synthesized sounds through a shared mixer. The zero value is
// unusable; create with NewEngine and call Init once.
type Engine struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	music       *beep.Ctrl
	initialized bool
}

// NewEngine creates a new, not yet initialized engine.
func NewEngine() *Engine {
	return &Engine{
		mixer: &beep.Mixer{},
	}
}

// Init opens the audio backend. On failure the engine stays silent and every
// other method becomes a no-op; callers may ignore the returned error.
func (e *Engine) Init() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*50)); err != nil {
		return err
	}

	speaker.Play(e.mixer)
	e.initialized = true
	return nil
}

// Play fires a one-shot sound effect. Unknown sound IDs are silently skipped.
func (e *Engine) Play(sound string) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.initialized {
		return
	}

	var s beep.Streamer
	switch sound {
	case SoundJump:
		s = newSweep(sampleRate, waveSquare, 300, 600, 0.12, 0.25)
	case SoundSlide:
		s = newSweep(sampleRate, waveSine, 400, 180, 0.15, 0.25)
	case SoundCoin:
		s = newTone(sampleRate, waveSquare, 1320, 0.08, 0.2)
	case SoundPowerUp:
		s = newSweep(sampleRate, waveSquare, 440, 1760, 0.3, 0.25)
	case SoundShield:
		s = newTone(sampleRate, waveTriangle, 220, 0.2, 0.35)
	case SoundDeath:
		s = newSweep(sampleRate, waveSquare, 600, 80, 0.6, 0.35)
	default:
		return
	}

	e.mixer.Add(s)
}

// StartMusic starts the background music loop. Idempotent.
func (e *Engine) StartMusic() {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.initialized {
		return
	}

	if e.music != nil {
		e.music.Paused = false
		return
	}

	e.music = &beep.Ctrl{Streamer: backgroundMusic(sampleRate)}
	e.mixer.Add(e.music)
}

// StopMusic pauses the background music loop. Idempotent.
func (e *Engine) StopMusic() {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.music != nil {
		e.music.Paused = true
	}
}

// Close stops all playback.
func (e *Engine) Close() {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.initialized {
		return
	}

	e.mixer.Clear()
	e.music = nil
	e.initialized = false
}
