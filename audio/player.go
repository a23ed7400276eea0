package audio

import (
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"github.com/tbelaire/maze-w25/core"
)

// Player plays cues without blocking the caller
type Player interface {
	Play(c Cue)
	Close()
}

// Silent drops every cue
type Silent struct{}

func (Silent) Play(Cue) {}
func (Silent) Close()   {}

// SpeakerPlayer mixes cues onto the system speaker
type SpeakerPlayer struct {
	mu          sync.Mutex
	rate        beep.SampleRate
	mixer       *beep.Mixer
	logger      core.Logger
	initialized bool
}

// NewSpeakerPlayer returns a player for rate; the speaker opens on Init
func NewSpeakerPlayer(rate beep.SampleRate, logger core.Logger) *SpeakerPlayer {
	return &SpeakerPlayer{
		rate:   rate,
		mixer:  &beep.Mixer{},
		logger: core.OrNop(logger),
	}
}

// Init opens the speaker once and starts the mixer
func (p *SpeakerPlayer) Init() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}
	if err := speaker.Init(p.rate, p.rate.N(100*time.Millisecond)); err != nil {
		return fmt.Errorf("init speaker: %w", err)
	}
	speaker.Play(p.mixer)
	p.initialized = true
	return nil
}

// Play queues c on the mixer; cues overlap rather than wait
func (p *SpeakerPlayer) Play(c Cue) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	s, err := Stream(c, p.rate)
	if err != nil {
		p.logger.Printf("audio: %v", err)
		return
	}
	speaker.Lock()
	p.mixer.Add(s)
	speaker.Unlock()
}

// Close clears pending cues and releases the speaker
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
