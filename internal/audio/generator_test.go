package audio

import (
	"math"
	"testing"
	"time"
)

func TestToneLength(t *testing.T) {
	buf := tone(440, 100*time.Millisecond, waveSine)

	want := int(sampleRate) / 10
	if len(buf) != want {
		t.Errorf("tone length = %d samples, want %d", len(buf), want)
	}
}

func TestToneStaysBelowFullScale(t *testing.T) {
	for _, wave := range []int{waveSine, waveSquare, waveSaw} {
		buf := tone(220, 50*time.Millisecond, wave)
		for i, v := range buf {
			if math.Abs(v) > 0.5 {
				t.Fatalf("wave %d sample %d = %f, want headroom below 0.5", wave, i, v)
			}
		}
	}
}

func TestEnvelopeRamps(t *testing.T) {
	buf := make([]float64, int(sampleRate)/10) // 100ms of full scale
	for i := range buf {
		buf[i] = 1.0
	}
	applyEnvelope(buf, 0.005, 0.02)

	if buf[0] != 0 {
		t.Errorf("first sample = %f, want 0 (attack starts silent)", buf[0])
	}
	if last := buf[len(buf)-1]; last > 0.01 {
		t.Errorf("last sample = %f, want near 0 (release ends silent)", last)
	}

	// The middle is untouched
	mid := buf[len(buf)/2]
	if mid != 1.0 {
		t.Errorf("middle sample = %f, want 1.0", mid)
	}
}

func TestPlayerNoOpWhenUninitialized(t *testing.T) {
	p := NewPlayer()

	// None of these may panic or block without speaker init
	p.PlayFlood()
	p.PlayReject()
	p.PlayWin()
	p.PlayLoss()
	p.Close()
}

func TestPlayerMute(t *testing.T) {
	p := NewPlayer()
	p.SetMuted(true)

	// Muted playback is a no-op even before init
	p.PlayWin()
}
