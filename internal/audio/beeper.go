// Package audio plays the single beep tone driven by the sound timer.
package audio

import (
	"encoding/binary"
	"fmt"
	"math"
	"sync/atomic"

	"github.com/ebitengine/oto/v3"
)

const (
	sampleRate    = 48000
	toneFrequency = 440
	amplitude     = 0.25
)

// Beeper produces a square wave tone while beeping is enabled.
// The tone generator feeds the audio device continuously, silence is
// emitted while beeping is off so the stream never stalls.
type Beeper struct {
	ctx    *oto.Context
	player *oto.Player
	tone   *toneGenerator
}

// New creates a beeper and starts the audio stream. It blocks until the
// audio device is ready.
func New() (*Beeper, error) {
	op := &oto.NewContextOptions{
		SampleRate:   sampleRate,
		ChannelCount: 1,
		Format:       oto.FormatFloat32LE,
	}

	ctx, ready, err := oto.NewContext(op)
	if err != nil {
		return nil, fmt.Errorf("creating audio context: %w", err)
	}
	<-ready

	tone := &toneGenerator{}
	player := ctx.NewPlayer(tone)
	player.Play()

	return &Beeper{
		ctx:    ctx,
		player: player,
		tone:   tone,
	}, nil
}

// SetBeeping switches the tone on or off.
func (b *Beeper) SetBeeping(on bool) {
	b.tone.playing.Store(on)
}

// Close stops the audio stream.
func (b *Beeper) Close() error {
	if err := b.player.Close(); err != nil {
		return fmt.Errorf("closing audio player: %w", err)
	}
	return nil
}

// toneGenerator is an endless sample stream read by the audio device.
// It emits a square wave while playing is set and silence otherwise.
type toneGenerator struct {
	playing atomic.Bool
	phase   int
}

const bytesPerSample = 4

// Read fills p with little-endian float32 mono samples.
func (g *toneGenerator) Read(p []byte) (int, error) {
	samples := len(p) / bytesPerSample
	period := sampleRate / toneFrequency
	playing := g.playing.Load()

	for i := 0; i < samples; i++ {
		var value float32
		if playing {
			if g.phase < period/2 {
				value = amplitude
			} else {
				value = -amplitude
			}
			g.phase = (g.phase + 1) % period
		}
		binary.LittleEndian.PutUint32(p[i*bytesPerSample:], math.Float32bits(value))
	}

	return samples * bytesPerSample, nil
}
