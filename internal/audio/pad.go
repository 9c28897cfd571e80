package audio

import (
	"math"
	"sync"
)

const (
	padLevel   = 0.1  // Overall pad loudness relative to effects
	padLFORate = 0.07 // Hz, slow wobble on the filter cutoff
)

// padFreqs are three detuned oscillators an octave apart. The slight detune
// keeps the drone from sounding static.
var padFreqs = [3]float64{110, 110.7, 220.3}
var padGains = [3]float64{0.5, 0.42, 0.22}

// PadStream is an endless background drone implementing io.Reader. Samples
// are synthesized on demand as the sink pulls them, so starting the pad costs
// nothing up front and it never loops audibly.
//
// Gain changes ramp per-sample toward a target, which is how fade-out on
// win/lose works without any goroutines: the stream itself walks its gain to
// zero while the player keeps pulling.
type PadStream struct {
	mu       sync.Mutex
	gain     float64
	target   float64
	step     float64 // Per-sample gain increment while ramping
	oscPhase [3]float64
	lfoPhase float64
	lp       float64
}

// NewPadStream creates a pad that starts silent. Call SetGain or FadeTo to
// bring it in.
func NewPadStream() *PadStream {
	return &PadStream{}
}

// SetGain jumps the pad gain immediately, cancelling any ramp.
func (p *PadStream) SetGain(g float64) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.gain = g
	p.target = g
	p.step = 0
}

// FadeTo ramps the pad gain toward g over the given number of seconds.
func (p *PadStream) FadeTo(g, seconds float64) {
	p.mu.Lock()
	defer p.mu.Unlock()
	samples := seconds * SampleRate
	if samples < 1 {
		p.gain = g
		p.target = g
		p.step = 0
		return
	}
	p.target = g
	p.step = math.Abs(p.gain-g) / samples
}

// Gain returns the current pad gain.
func (p *PadStream) Gain() float64 {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.gain
}

// Read synthesizes the next chunk of pad audio. It always fills the buffer
// (trimmed to whole samples) and never returns an error; the pad plays until
// the sink is closed.
func (p *PadStream) Read(buf []byte) (int, error) {
	n := len(buf) / bytesPerSample * bytesPerSample

	p.mu.Lock()
	defer p.mu.Unlock()

	for i := 0; i < n; i += bytesPerSample {
		p.lfoPhase += 2 * math.Pi * padLFORate / SampleRate
		cutoff := 260 + 170*math.Sin(p.lfoPhase)
		alpha := 1 - math.Exp(-2*math.Pi*cutoff/SampleRate)

		var v float64
		for o := range padFreqs {
			p.oscPhase[o] += 2 * math.Pi * padFreqs[o] / SampleRate
			v += math.Sin(p.oscPhase[o]) * padGains[o]
		}
		p.lp += alpha * (v - p.lp)

		if p.gain < p.target {
			p.gain = math.Min(p.gain+p.step, p.target)
		} else if p.gain > p.target {
			p.gain = math.Max(p.gain-p.step, p.target)
		}

		s := p.lp * p.gain * padLevel
		if s > 1 {
			s = 1
		} else if s < -1 {
			s = -1
		}
		writeSample(buf[i:], s)
	}
	return n, nil
}

func writeSample(b []byte, v float64) {
	s := int16(v * 32767)
	b[0] = byte(s)
	b[1] = byte(s >> 8)
}
