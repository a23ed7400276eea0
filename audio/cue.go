// Package audio synthesises short cues for game events and plays them on the speaker
package audio

import (
	"fmt"
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/tbelaire/maze-w25/game"
)

// DefaultSampleRate is used by the speaker player
const DefaultSampleRate = beep.SampleRate(44100)

// Cue is a game event with a sound
type Cue uint8

const (
	CuePush Cue = iota
	CueStun
	CueCapture
	CueEscape
)

func (c Cue) String() string {
	switch c {
	case CuePush:
		return "push"
	case CueStun:
		return "stun"
	case CueCapture:
		return "capture"
	case CueEscape:
		return "escape"
	}
	return fmt.Sprintf("Cue(%d)", uint8(c))
}

type note struct {
	freq float64
	dur  time.Duration
}

// cueNotes lists the notes of each cue, played back to back
var cueNotes = map[Cue][]note{
	CuePush: {
		{freq: 110, dur: 60 * time.Millisecond},
	},
	CueStun: {
		{freq: 330, dur: 40 * time.Millisecond},
		{freq: 220, dur: 80 * time.Millisecond},
	},
	CueCapture: {
		{freq: 440, dur: 120 * time.Millisecond},
		{freq: 330, dur: 120 * time.Millisecond},
		{freq: 220, dur: 240 * time.Millisecond},
	},
	CueEscape: {
		{freq: 523.25, dur: 100 * time.Millisecond}, // C5
		{freq: 659.25, dur: 100 * time.Millisecond}, // E5
		{freq: 783.99, dur: 200 * time.Millisecond}, // G5
	},
}

// cueVolume is the linear gain of each cue
var cueVolume = map[Cue]float64{
	CuePush:    0.4,
	CueStun:    0.5,
	CueCapture: 0.7,
	CueEscape:  0.6,
}

// Duration is the playing time of a cue
func Duration(c Cue) time.Duration {
	var total time.Duration
	for _, n := range cueNotes[c] {
		total += n.dur
	}
	return total
}

// Stream builds a finite streamer for c at the given rate
func Stream(c Cue, rate beep.SampleRate) (beep.Streamer, error) {
	notes, ok := cueNotes[c]
	if !ok {
		return nil, fmt.Errorf("unknown cue %v", c)
	}

	parts := make([]beep.Streamer, 0, len(notes))
	for _, n := range notes {
		sine, err := generators.SineTone(rate, n.freq)
		if err != nil {
			return nil, fmt.Errorf("cue %v: %w", c, err)
		}
		tone := beep.Take(rate.N(n.dur), sine)
		parts = append(parts, newEnvelope(tone, n.dur, 5*time.Millisecond, n.dur/3, rate))
	}
	return newVolume(beep.Seq(parts...), cueVolume[c]), nil
}

// newVolume wraps s in a linear gain; zero or less is silent
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// CuesFor lists the cues a tick should play, in order
func CuesFor(res game.TickResult) []Cue {
	var cues []Cue
	if res.PlayerPush {
		cues = append(cues, CuePush)
	}
	if res.Stuns > 0 {
		cues = append(cues, CueStun)
	}
	switch res.Outcome {
	case game.Captured:
		cues = append(cues, CueCapture)
	case game.Escaped:
		cues = append(cues, CueEscape)
	}
	return cues
}
