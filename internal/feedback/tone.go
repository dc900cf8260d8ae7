package feedback

import (
	"math"
	"time"

	"github.com/gopxl/beep"
)

const sampleRate = beep.SampleRate(48000)

// Sound names a feedback cue.
type Sound int

const (
	SoundTarget Sound = iota // gaze moved onto a new object
	SoundClick
	SoundDoubleClick
)

func (s Sound) String() string {
	switch s {
	case SoundTarget:
		return "target"
	case SoundClick:
		return "click"
	case SoundDoubleClick:
		return "double-click"
	}
	return "unknown"
}

// ToneGenerator is a sine tone with a short linear fade in and out.
type ToneGenerator struct {
	sr     beep.SampleRate
	freq   float64
	volume float64
	pos    int
	total  int
	fade   int
}

func NewToneGenerator(sr beep.SampleRate, freq float64, volume float64, d time.Duration) *ToneGenerator {
	total := sr.N(d)
	return &ToneGenerator{
		sr:     sr,
		freq:   freq,
		volume: volume,
		total:  total,
		fade:   max(1, min(sr.N(5*time.Millisecond), total/2)),
	}
}

func (g *ToneGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	if g.pos >= g.total {
		return 0, false
	}
	for i := range samples {
		if g.pos >= g.total {
			return i, true
		}
		t := float64(g.pos) / float64(g.sr)

		envelope := 1.0
		if g.pos < g.fade {
			envelope = float64(g.pos) / float64(g.fade)
		} else if rem := g.total - g.pos; rem < g.fade {
			envelope = float64(rem) / float64(g.fade)
		}

		sample := g.volume * envelope * math.Sin(2*math.Pi*g.freq*t)
		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *ToneGenerator) Err() error {
	return nil
}

// Streamer builds the cue for s.
func Streamer(s Sound, volume float64) beep.Streamer {
	switch s {
	case SoundClick:
		return NewToneGenerator(sampleRate, 1320, volume, 40*time.Millisecond)
	case SoundDoubleClick:
		return beep.Seq(
			NewToneGenerator(sampleRate, 1320, volume, 40*time.Millisecond),
			beep.Silence(sampleRate.N(30*time.Millisecond)),
			NewToneGenerator(sampleRate, 1760, volume, 40*time.Millisecond),
		)
	default:
		return NewToneGenerator(sampleRate, 880, volume*0.6, 25*time.Millisecond)
	}
}
