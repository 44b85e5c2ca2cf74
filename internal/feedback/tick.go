// Package feedback provides the audible tick and the desktop dialogs used by
// the application shell.
package feedback

import (
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/speaker"
	"github.com/phanxgames/dualdial"
)

const (
	defaultSampleRate = beep.SampleRate(44100)
	tickDuration      = 40 * time.Millisecond
	tickVolume        = 0.25
)

// tickFrequency maps a ring to the pitch of its tick, in Hz.
var tickFrequency = map[dualdial.Ring]float64{
	dualdial.RingOuter: 880,
	dualdial.RingInner: 660,
	dualdial.RingNone:  770,
}

// tickStreamer is a short sine burst with an exponential decay.
type tickStreamer struct {
	freq     float64
	rate     float64
	pos      int
	length   int
	volume   float64
	decayLen float64
}

func newTick(sr beep.SampleRate, freq float64, d time.Duration) *tickStreamer {
	n := sr.N(d)
	return &tickStreamer{
		freq:     freq,
		rate:     float64(sr),
		length:   n,
		volume:   tickVolume,
		decayLen: float64(n) / 5,
	}
}

// Stream implements beep.Streamer.
func (t *tickStreamer) Stream(samples [][2]float64) (n int, ok bool) {
	if t.pos >= t.length {
		return 0, false
	}
	for i := range samples {
		if t.pos >= t.length {
			break
		}
		env := math.Exp(-float64(t.pos) / t.decayLen)
		v := t.volume * env * math.Sin(2*math.Pi*t.freq*float64(t.pos)/t.rate)
		samples[i][0] = v
		samples[i][1] = v
		t.pos++
		n++
	}
	return n, true
}

// Err implements beep.Streamer.
func (t *tickStreamer) Err() error { return nil }

// Ticker plays a short tick through the system speaker. The speaker is
// initialised on first use; a failed init disables the ticker.
type Ticker struct {
	sampleRate beep.SampleRate

	mu       sync.Mutex
	initDone bool
	initErr  error
}

// NewTicker returns a ticker at the default sample rate.
func NewTicker() *Ticker {
	return &Ticker{sampleRate: defaultSampleRate}
}

// Tick plays the tick for ring r without blocking.
func (t *Ticker) Tick(r dualdial.Ring) error {
	if err := t.init(); err != nil {
		return err
	}
	speaker.Play(newTick(t.sampleRate, tickFrequency[r], tickDuration))
	return nil
}

func (t *Ticker) init() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.initDone {
		return t.initErr
	}
	t.initDone = true
	bufferSize := t.sampleRate.N(time.Second / 20)
	if err := speaker.Init(t.sampleRate, bufferSize); err != nil {
		t.initErr = fmt.Errorf("init speaker: %w", err)
	}
	return t.initErr
}

// Close stops any tick still playing.
func (t *Ticker) Close() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.initDone && t.initErr == nil {
		speaker.Lock()
		speaker.Clear()
		speaker.Unlock()
	}
}
