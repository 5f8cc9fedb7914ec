// Package audio plays short synthesized sound effects for game events.
// Playback is fire-and-forget: initialization failure leaves the player
// inert and every Play call on an uninitialized player is a no-op.
package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(44100)

// Player manages the speaker and mixes one-shot effect streams.
type Player struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
	muted       bool
}

// NewPlayer creates an uninitialized player.
func NewPlayer() *Player {
	return &Player{mixer: &beep.Mixer{}}
}

// Init opens the speaker and attaches the mixer. Safe to call twice.
func (p *Player) Init() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*50)); err != nil {
		return err
	}
	speaker.Play(p.mixer)
	p.initialized = true
	return nil
}

// SetMuted toggles sound without tearing down the speaker.
func (p *Player) SetMuted(muted bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.muted = muted
}

// Close drops all queued sounds. beep has no speaker teardown, so
// clearing the mixer is the effective shutdown.
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

// PlayFlood plays a short blip for an accepted flood move.
func (p *Player) PlayFlood() {
	p.play(tone(520, 60*time.Millisecond, waveSine))
}

// PlayReject plays a low buzz for an illegal color selection.
func (p *Player) PlayReject() {
	p.play(tone(110, 120*time.Millisecond, waveSquare))
}

// PlayWin plays an ascending arpeggio.
func (p *Player) PlayWin() {
	buf := tone(523, 90*time.Millisecond, waveSine)
	buf = append(buf, tone(659, 90*time.Millisecond, waveSine)...)
	buf = append(buf, tone(784, 90*time.Millisecond, waveSine)...)
	buf = append(buf, tone(1046, 160*time.Millisecond, waveSine)...)
	p.play(buf)
}

// PlayLoss plays a falling two-note fail sound.
func (p *Player) PlayLoss() {
	buf := tone(330, 140*time.Millisecond, waveSaw)
	buf = append(buf, tone(220, 220*time.Millisecond, waveSaw)...)
	p.play(buf)
}

// play mixes a sample buffer in. The mixer drops drained streamers on
// its own, so one-shots need no bookkeeping.
func (p *Player) play(buf []float64) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized || p.muted {
		return
	}
	speaker.Lock()
	p.mixer.Add(&bufferStreamer{buf: buf})
	speaker.Unlock()
}

// bufferStreamer streams a precomputed mono buffer to both channels.
type bufferStreamer struct {
	buf []float64
	pos int
}

func (b *bufferStreamer) Stream(samples [][2]float64) (int, bool) {
	if b.pos >= len(b.buf) {
		return 0, false
	}
	n := 0
	for i := range samples {
		if b.pos >= len(b.buf) {
			break
		}
		v := b.buf[b.pos]
		samples[i][0] = v
		samples[i][1] = v
		b.pos++
		n++
	}
	return n, true
}

func (b *bufferStreamer) Err() error {
	return nil
}
