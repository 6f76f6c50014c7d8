// Package audio plays the chime heard when a house becomes a delivery target.
package audio

import (
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"

	"chosenoffset.com/paperboy/internal/config"
)

const (
	chimeNote1     = 987.77  // B5
	chimeNote2     = 1318.51 // E6
	chimeNote1Time = 80 * time.Millisecond
	chimeNote2Time = 160 * time.Millisecond
)

// Chime owns the speaker for the lifetime of a session
type Chime struct {
	mu          sync.Mutex
	cfg         config.AudioConfig
	initialized bool
}

// NewChime creates a chime; nothing is opened until Initialize.
func NewChime(cfg config.AudioConfig) *Chime {
	return &Chime{cfg: cfg}
}

// Initialize opens the speaker. A disabled chime stays silent and returns nil.
func (c *Chime) Initialize() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.initialized || !c.cfg.Enabled {
		return nil
	}

	rate := beep.SampleRate(c.cfg.SampleRate)
	if err := speaker.Init(rate, rate.N(time.Millisecond*100)); err != nil {
		return fmt.Errorf("failed to init speaker: %w", err)
	}
	c.initialized = true
	return nil
}

// Play queues one chime. It is a no-op when the speaker is not open.
func (c *Chime) Play() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.initialized {
		return
	}
	s, err := Sound(beep.SampleRate(c.cfg.SampleRate), c.cfg.Volume)
	if err != nil {
		return
	}
	speaker.Play(s)
}

// Close releases the speaker.
func (c *Chime) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.initialized {
		return
	}
	speaker.Close()
	c.initialized = false
}

// Sound builds the two-note chime as a finite stream.
func Sound(rate beep.SampleRate, volume float64) (beep.Streamer, error) {
	n1, err := generators.SineTone(rate, chimeNote1)
	if err != nil {
		return nil, err
	}
	n2, err := generators.SineTone(rate, chimeNote2)
	if err != nil {
		return nil, err
	}

	seq := beep.Seq(
		beep.Take(rate.N(chimeNote1Time), n1),
		beep.Take(rate.N(chimeNote2Time), n2),
	)
	return withVolume(seq, volume), nil
}

// math.Log2(0) is -Inf, so zero volume maps to a silent stream
func withVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}
