// Package audio plays the game's sound cues through the system speaker.
// Cues are synthesized on the fly, so no sound assets are needed.
package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"

	"github.com/vovakirdan/flappy-cake/internal/core"
)

const sampleRate = beep.SampleRate(44100)

// sweep is a sine tone that glides linearly from one frequency to another.
type sweep struct {
	from, to float64
	samples  int
	pos      int
	phase    float64
	rate     beep.SampleRate
}

// newSweep creates a sweep lasting d.
func newSweep(from, to float64, d time.Duration, rate beep.SampleRate) *sweep {
	return &sweep{from: from, to: to, samples: rate.N(d), rate: rate}
}

func (s *sweep) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if s.pos >= s.samples {
			return i, i > 0
		}
		progress := float64(s.pos) / float64(s.samples)
		freq := s.from + (s.to-s.from)*progress

		// Linear fade-out avoids a click at the end of the cue
		val := math.Sin(2*math.Pi*s.phase) * (1 - progress) * 0.3

		samples[i][0] = val
		samples[i][1] = val

		s.phase += freq / float64(s.rate)
		s.phase -= math.Floor(s.phase)
		s.pos++
	}
	return len(samples), true
}

func (s *sweep) Err() error { return nil }

// cueStreamer builds a fresh streamer for a cue.
func cueStreamer(c core.Cue, rate beep.SampleRate) beep.Streamer {
	switch c {
	case core.CueEat:
		// Two quick rising chirps
		return beep.Seq(
			newSweep(660, 990, 70*time.Millisecond, rate),
			newSweep(880, 1320, 90*time.Millisecond, rate),
		)
	case core.CueFlap:
		return newSweep(300, 520, 60*time.Millisecond, rate)
	case core.CueCrash:
		return newSweep(220, 60, 350*time.Millisecond, rate)
	default:
		return nil
	}
}
