// Package audio synthesizes every sound the games make. There are no sample
// assets: effects and the background pad are rendered procedurally as 16-bit
// little-endian mono PCM and handed to the playback sink. When no audio
// device is available the engine degrades to a silent sink and gameplay is
// unaffected.
package audio

import (
	"encoding/binary"
	"math"
)

const (
	// SampleRate is the PCM sample rate for all rendered audio.
	SampleRate = 44100

	bytesPerSample = 2
)

// Waveform selects the oscillator shape for a tone.
type Waveform int

const (
	WaveSine Waveform = iota
	WaveTriangle
	WaveSquare
	WaveSaw
)

// Tone describes one oscillator voice within a clip: a waveform with optional
// frequency glide, an attack/release gain envelope, and an optional one-pole
// lowpass sweep. Several tones mix into a single clip.
type Tone struct {
	Wave     Waveform
	Freq     float64 // Start frequency in Hz
	EndFreq  float64 // Glide destination; 0 means hold Freq
	Start    float64 // Offset into the clip in seconds
	Duration float64 // Seconds
	Gain     float64 // Peak amplitude, 0..1
	Attack   float64 // Seconds to ramp from silence to peak
	Release  float64 // Exponential decay time constant after the attack

	// CutoffStart enables a lowpass sweep when > 0. CutoffEnd of 0 sweeps
	// down to the filter floor.
	CutoffStart float64
	CutoffEnd   float64
}

// RenderClip mixes the tones into a 16-bit LE mono PCM buffer. The clip is
// long enough for the latest-ending tone; the mix is hard-clipped to full
// scale.
func RenderClip(tones []Tone) []byte {
	var length float64
	for _, t := range tones {
		if end := t.Start + t.Duration; end > length {
			length = end
		}
	}
	n := int(length * SampleRate)
	if n <= 0 {
		return nil
	}

	mix := make([]float64, n)
	for _, t := range tones {
		renderTone(mix, t)
	}

	out := make([]byte, n*bytesPerSample)
	for i, v := range mix {
		if v > 1 {
			v = 1
		} else if v < -1 {
			v = -1
		}
		binary.LittleEndian.PutUint16(out[i*bytesPerSample:], uint16(int16(v*32767)))
	}
	return out
}

func renderTone(mix []float64, t Tone) {
	start := int(t.Start * SampleRate)
	n := int(t.Duration * SampleRate)
	if n <= 0 || start >= len(mix) {
		return
	}

	endFreq := t.EndFreq
	if endFreq == 0 {
		endFreq = t.Freq
	}
	attack := t.Attack
	if attack <= 0 {
		attack = 0.002
	}
	release := t.Release
	if release <= 0 {
		release = t.Duration / 3
	}

	var phase, lp float64
	for i := 0; i < n && start+i < len(mix); i++ {
		pos := float64(i) / float64(n)
		sec := float64(i) / SampleRate

		freq := t.Freq + (endFreq-t.Freq)*pos
		phase += 2 * math.Pi * freq / SampleRate
		v := oscillate(t.Wave, phase)

		var env float64
		if sec < attack {
			env = sec / attack
		} else {
			env = math.Exp(-(sec - attack) / release * 5)
		}
		v *= env * t.Gain

		if t.CutoffStart > 0 {
			cutoff := t.CutoffStart + (t.CutoffEnd-t.CutoffStart)*pos
			if cutoff < 20 {
				cutoff = 20
			}
			alpha := 1 - math.Exp(-2*math.Pi*cutoff/SampleRate)
			lp += alpha * (v - lp)
			v = lp
		}

		mix[start+i] += v
	}
}

// oscillate evaluates a waveform at the given accumulated phase in radians.
func oscillate(w Waveform, phase float64) float64 {
	p := math.Mod(phase, 2*math.Pi) / (2 * math.Pi)
	switch w {
	case WaveSquare:
		if p < 0.5 {
			return 1
		}
		return -1
	case WaveSaw:
		return 2*p - 1
	case WaveTriangle:
		if p < 0.5 {
			return 4*p - 1
		}
		return 3 - 4*p
	default:
		return math.Sin(phase)
	}
}
