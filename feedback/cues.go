// Package feedback plays short audio cues for menu interaction.
package feedback

import (
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

// Cue pitches and lengths. Move is a short mid blip, submit a brighter
// one, cancel a lower and slightly longer one.
const (
	moveFreq   = 880
	submitFreq = 1320
	cancelFreq = 440

	moveLen   = 30 * time.Millisecond
	submitLen = 50 * time.Millisecond
	cancelLen = 60 * time.Millisecond
)

// Cues plays menu feedback blips through the speaker. A Cues whose
// speaker failed to initialize stays usable and silently drops every
// cue; menus never depend on audio being present.
type Cues struct {
	sampleRate beep.SampleRate
	ready      bool
}

// NewCues initializes the speaker at the given sample rate. The error
// is informational; the returned Cues is valid either way.
func NewCues(sampleRate beep.SampleRate) (*Cues, error) {
	c := &Cues{sampleRate: sampleRate}
	err := speaker.Init(sampleRate, sampleRate.N(time.Second/10))
	if err == nil {
		c.ready = true
	}
	return c, err
}

// Move plays the selection-moved blip.
func (c *Cues) Move() {
	c.play(moveFreq, moveLen)
}

// Submit plays the option-chosen blip.
func (c *Cues) Submit() {
	c.play(submitFreq, submitLen)
}

// Cancel plays the menu-dismissed blip.
func (c *Cues) Cancel() {
	c.play(cancelFreq, cancelLen)
}

// Close shuts the speaker down.
func (c *Cues) Close() {
	if c.ready {
		speaker.Close()
		c.ready = false
	}
}

func (c *Cues) play(freq float64, d time.Duration) {
	if c == nil || !c.ready {
		return
	}
	tone, err := Tone(c.sampleRate, freq, d)
	if err != nil {
		return
	}
	speaker.Play(tone)
}

// Tone builds the finite sine streamer for one cue. Exposed so tests
// can verify cue construction without a playback device.
func Tone(sampleRate beep.SampleRate, freq float64, d time.Duration) (beep.Streamer, error) {
	sine, err := generators.SineTone(sampleRate, freq)
	if err != nil {
		return nil, err
	}
	return beep.Take(sampleRate.N(d), sine), nil
}
