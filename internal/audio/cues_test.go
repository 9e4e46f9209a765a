package audio

import (
	"math"
	"testing"
	"time"

	"github.com/gopxl/beep"

	"github.com/vovakirdan/flappy-cake/internal/core"
)

// drain streams s to completion and returns the number of samples and the peak amplitude.
func drain(s beep.Streamer) (total int, peak float64) {
	buf := make([][2]float64, 512)
	for {
		n, ok := s.Stream(buf)
		for i := 0; i < n; i++ {
			peak = math.Max(peak, math.Abs(buf[i][0]))
		}
		total += n
		if !ok {
			return total, peak
		}
	}
}

func TestSweepLength(t *testing.T) {
	rate := beep.SampleRate(1000)
	total, peak := drain(newSweep(100, 200, 250*time.Millisecond, rate))

	if total != 250 {
		t.Errorf("sweep produced %d samples, expected 250", total)
	}
	if peak == 0 || peak > 0.3 {
		t.Errorf("peak amplitude = %v, expected within (0, 0.3]", peak)
	}
}

func TestCueStreamers(t *testing.T) {
	rate := beep.SampleRate(1000)
	tests := []struct {
		cue  core.Cue
		want int
	}{
		{core.CueEat, 160},
		{core.CueFlap, 60},
		{core.CueCrash, 350},
	}

	for _, tc := range tests {
		t.Run(tc.cue.String(), func(t *testing.T) {
			s := cueStreamer(tc.cue, rate)
			if s == nil {
				t.Fatal("expected a streamer")
			}
			if total, _ := drain(s); total != tc.want {
				t.Errorf("%v produced %d samples, expected %d", tc.cue, total, tc.want)
			}
		})
	}

	if cueStreamer(core.Cue(99), rate) != nil {
		t.Error("unknown cue should have no streamer")
	}
}

func TestPlayerFiltersCues(t *testing.T) {
	p := NewPlayer(0, core.CueEat)

	if !p.wants(core.CueEat) {
		t.Error("eat cue should be enabled")
	}
	if p.wants(core.CueFlap) {
		t.Error("flap cue should be filtered out")
	}

	all := NewPlayer(0)
	if !all.wants(core.CueCrash) {
		t.Error("a player without a filter plays every cue")
	}
}

func TestUninitializedPlayerDropsCues(t *testing.T) {
	p := NewPlayer(-1)

	// Must not touch the speaker or panic
	p.PlayCue(core.CueEat)
	p.Close()
}
