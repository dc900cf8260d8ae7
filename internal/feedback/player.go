package feedback

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"github.com/pkg/errors"
)

// Player plays feedback cues.
type Player interface {
	Play(s Sound)
}

// SpeakerPlayer mixes cues into the system speaker.
type SpeakerPlayer struct {
	Volume float64

	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
}

func NewSpeakerPlayer() *SpeakerPlayer {
	return &SpeakerPlayer{
		Volume: 0.2,
		mixer:  &beep.Mixer{},
	}
}

// Initialize opens the speaker. Calling it again is a no-op.
func (p *SpeakerPlayer) Initialize() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(50*time.Millisecond)); err != nil {
		return errors.Wrap(err, "init speaker")
	}
	speaker.Play(p.mixer)
	p.initialized = true
	return nil
}

// Play is a no-op until Initialize succeeds.
func (p *SpeakerPlayer) Play(s Sound) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	st := Streamer(s, p.Volume)
	speaker.Lock()
	p.mixer.Add(st)
	speaker.Unlock()
}

// Close stops every cue and releases the speaker.
func (p *SpeakerPlayer) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	speaker.Lock()
	p.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
	p.initialized = false
}
