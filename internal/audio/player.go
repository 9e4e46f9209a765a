package audio

import (
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/flappy-cake/internal/core"
)

// Player plays cues on the speaker. A Player that failed to initialize, or
// was closed, silently drops cues.
type Player struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	volume      float64
	enabled     map[core.Cue]bool
	initialized bool
}

// NewPlayer creates a player. Volume is an exponent on base 2:
// 0 leaves cues unchanged, -1 halves them. Only the listed cues are played;
// with no cues listed every cue is played.
func NewPlayer(volume float64, only ...core.Cue) *Player {
	p := &Player{
		mixer:  &beep.Mixer{},
		volume: volume,
	}
	if len(only) > 0 {
		p.enabled = make(map[core.Cue]bool, len(only))
		for _, c := range only {
			p.enabled[c] = true
		}
	}
	return p
}

// Init opens the speaker. It is safe to call more than once.
func (p *Player) Init() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(50*time.Millisecond)); err != nil {
		return fmt.Errorf("audio: cannot open speaker: %w", err)
	}

	speaker.Play(p.mixer)
	p.initialized = true
	return nil
}

// PlayCue implements core.CuePlayer.
func (p *Player) PlayCue(c core.Cue) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized || !p.wants(c) {
		return
	}

	s := cueStreamer(c, sampleRate)
	if s == nil {
		return
	}

	// The speaker goroutine reads the mixer, so it must be locked too.
	speaker.Lock()
	p.mixer.Add(p.withVolume(s))
	speaker.Unlock()
}

// Close stops all playing cues.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}

	speaker.Lock()
	p.mixer.Clear()
	speaker.Unlock()
	p.initialized = false
}

// wants reports whether the cue is enabled.
func (p *Player) wants(c core.Cue) bool {
	return p.enabled == nil || p.enabled[c]
}

// withVolume wraps a streamer in a volume effect unless the volume is neutral.
func (p *Player) withVolume(s beep.Streamer) beep.Streamer {
	if p.volume == 0 {
		return s
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: p.volume}
}
