package audio

import (
	"math"

	"github.com/gopxl/beep"
)

// Waveform types
const (
	waveSine = iota
	waveSquare
	waveTriangle
)

// toneStreamer synthesizes a single note with a short attack/release envelope.
// All game sounds are generated; there are no audio assets to load, so there
// is nothing that can fail at runtime.
type toneStreamer struct {
	sr      beep.SampleRate
	freq    float64
	wave    int
	volume  float64
	pos     int
	total   int
	attack  int
	release int
	phase   float64
}

// newTone creates a finite streamer playing freq for the given duration.
func newTone(sr beep.SampleRate, wave int, freq, durationSec, volume float64) beep.Streamer {
	total := int(durationSec * float64(sr))
	attack := int(0.005 * float64(sr))
	release := int(0.04 * float64(sr))
	if attack+release > total {
		attack = total / 4
		release = total / 4
	}
	return &toneStreamer{
		sr:      sr,
		freq:    freq,
		wave:    wave,
		volume:  volume,
		total:   total,
		attack:  attack,
		release: release,
	}
}

func (t *toneStreamer) Stream(samples [][2]float64) (int, bool) {
	if t.pos >= t.total {
		return 0, false
	}

	n := 0
	phaseInc := t.freq / float64(t.sr)
	for i := range samples {
		if t.pos >= t.total {
			break
		}

		var v float64
		switch t.wave {
		case waveSquare:
			if t.phase < 0.5 {
				v = 1.0
			} else {
				v = -1.0
			}
		case waveTriangle:
			v = 4*math.Abs(t.phase-0.5) - 1
		default:
			v = math.Sin(2 * math.Pi * t.phase)
		}

		// Envelope
		gain := t.volume
		if t.pos < t.attack {
			gain *= float64(t.pos) / float64(t.attack)
		} else if remaining := t.total - t.pos; remaining < t.release {
			gain *= float64(remaining) / float64(t.release)
		}

		v *= gain
		samples[i][0] = v
		samples[i][1] = v

		t.phase += phaseInc
		if t.phase >= 1.0 {
			t.phase -= 1.0
		}
		t.pos++
		n++
	}
	return n, true
}

func (t *toneStreamer) Err() error {
	return nil
}

// sweepStreamer glides between two frequencies, used for jump and death
// sounds.
type sweepStreamer struct {
	sr       beep.SampleRate
	from, to float64
	wave     int
	volume   float64
	pos      int
	total    int
	phase    float64
}

// newSweep creates a finite streamer gliding from one frequency to another.
func newSweep(sr beep.SampleRate, wave int, from, to, durationSec, volume float64) beep.Streamer {
	return &sweepStreamer{
		sr:     sr,
		from:   from,
		to:     to,
		wave:   wave,
		volume: volume,
		total:  int(durationSec * float64(sr)),
	}
}

func (s *sweepStreamer) Stream(samples [][2]float64) (int, bool) {
	if s.pos >= s.total {
		return 0, false
	}

	n := 0
	for i := range samples {
		if s.pos >= s.total {
			break
		}

		progress := float64(s.pos) / float64(s.total)
		freq := s.from + (s.to-s.from)*progress

		var v float64
		if s.wave == waveSquare {
			if s.phase < 0.5 {
				v = 1.0
			} else {
				v = -1.0
			}
		} else {
			v = math.Sin(2 * math.Pi * s.phase)
		}

		// Fade out over the whole sweep
		v *= s.volume * (1 - progress)
		samples[i][0] = v
		samples[i][1] = v

		s.phase += freq / float64(s.sr)
		if s.phase >= 1.0 {
			s.phase -= 1.0
		}
		s.pos++
		n++
	}
	return n, true
}

func (s *sweepStreamer) Err() error {
	return nil
}

// musicStreamer loops a short triangle-wave arpeggio endlessly. It never
// reports drained; stopping goes through the wrapping beep.Ctrl.
type musicStreamer struct {
	sr      beep.SampleRate
	notes   []float64
	noteLen int
	pos     int
	phase   float64
}

// backgroundMusic returns an endless looping melody streamer.
func backgroundMusic(sr beep.SampleRate) *musicStreamer {
	// A minor arpeggio with a passing tone, eight steps per bar
	return &musicStreamer{
		sr:      sr,
		notes:   []float64{220, 261.63, 329.63, 440, 329.63, 261.63, 246.94, 261.63},
		noteLen: int(0.22 * float64(sr)),
	}
}

func (m *musicStreamer) Stream(samples [][2]float64) (int, bool) {
	for i := range samples {
		note := (m.pos / m.noteLen) % len(m.notes)
		notePos := m.pos % m.noteLen

		freq := m.notes[note]
		v := 4*math.Abs(m.phase-0.5) - 1 // triangle

		// Per-note release so steps don't click
		gain := 0.12
		if remaining := m.noteLen - notePos; remaining < 800 {
			gain *= float64(remaining) / 800
		}

		v *= gain
		samples[i][0] = v
		samples[i][1] = v

		m.phase += freq / float64(m.sr)
		if m.phase >= 1.0 {
			m.phase -= 1.0
		}
		m.pos++
	}
	return len(samples), true
}

func (m *musicStreamer) Err() error {
	return nil
}
