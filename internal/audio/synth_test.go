package audio

import (
	"encoding/binary"
	"math"
	"testing"
)

func decodeSamples(clip []byte) []int16 {
	out := make([]int16, len(clip)/bytesPerSample)
	for i := range out {
		out[i] = int16(binary.LittleEndian.Uint16(clip[i*bytesPerSample:]))
	}
	return out
}

func peakSample(samples []int16) int {
	peak := 0
	for _, s := range samples {
		v := int(s)
		if v < 0 {
			v = -v
		}
		if v > peak {
			peak = v
		}
	}
	return peak
}

func TestRenderClipLength(t *testing.T) {
	clip := RenderClip([]Tone{
		{Wave: WaveSine, Freq: 440, Duration: 0.5, Gain: 0.5},
	})

	want := int(0.5*SampleRate) * bytesPerSample
	if len(clip) != want {
		t.Errorf("clip length = %d bytes, expected %d", len(clip), want)
	}
}

func TestRenderClipCoversLatestTone(t *testing.T) {
	clip := RenderClip([]Tone{
		{Wave: WaveSine, Freq: 440, Duration: 0.1, Gain: 0.5},
		{Wave: WaveSine, Freq: 660, Start: 0.2, Duration: 0.1, Gain: 0.5},
	})

	want := int(0.3*SampleRate) * bytesPerSample
	if len(clip) != want {
		t.Errorf("clip length = %d bytes, expected %d for staggered tones", len(clip), want)
	}
}

func TestRenderClipEmpty(t *testing.T) {
	if clip := RenderClip(nil); clip != nil {
		t.Errorf("empty tone list should render nil, got %d bytes", len(clip))
	}
	if clip := RenderClip([]Tone{{Freq: 440, Duration: 0}}); clip != nil {
		t.Errorf("zero duration should render nil, got %d bytes", len(clip))
	}
}

func TestRenderClipEnvelope(t *testing.T) {
	clip := RenderClip([]Tone{
		{Wave: WaveSine, Freq: 440, Duration: 0.3, Gain: 0.9, Attack: 0.01, Release: 0.05},
	})
	samples := decodeSamples(clip)

	if peak := peakSample(samples); peak < 15000 {
		t.Errorf("peak %d too quiet for gain 0.9", peak)
	}

	// The release tail must decay close to silence by the clip end
	tail := samples[len(samples)-200:]
	if peak := peakSample(tail); peak > 500 {
		t.Errorf("tail peak %d, expected near silence", peak)
	}

	// The very first sample starts inside the attack ramp
	if samples[0] > 1000 || samples[0] < -1000 {
		t.Errorf("first sample %d, expected attack to start near zero", samples[0])
	}
}

func TestRenderClipNeverClips(t *testing.T) {
	// Stack enough full-gain tones to overdrive the mix
	tones := []Tone{
		{Wave: WaveSine, Freq: 220, Duration: 0.1, Gain: 1},
		{Wave: WaveSine, Freq: 220, Duration: 0.1, Gain: 1},
		{Wave: WaveSine, Freq: 220, Duration: 0.1, Gain: 1},
	}
	samples := decodeSamples(RenderClip(tones))

	for i, s := range samples {
		if s == math.MinInt16 {
			t.Fatalf("sample %d wrapped past full scale", i)
		}
	}
}

func TestRenderClipDeterministic(t *testing.T) {
	tones := []Tone{
		{Wave: WaveSquare, Freq: 140, EndFreq: 70, Duration: 0.2, Gain: 0.4, CutoffStart: 900, CutoffEnd: 180},
	}
	a := RenderClip(tones)
	b := RenderClip(tones)

	if len(a) != len(b) {
		t.Fatalf("lengths differ: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("byte %d differs", i)
		}
	}
}

func TestOscillateBounds(t *testing.T) {
	waves := []Waveform{WaveSine, WaveTriangle, WaveSquare, WaveSaw}
	for _, w := range waves {
		for i := 0; i < 1000; i++ {
			phase := float64(i) * 0.037
			v := oscillate(w, phase)
			if v < -1.0001 || v > 1.0001 {
				t.Fatalf("waveform %d out of range at phase %f: %f", w, phase, v)
			}
		}
	}
}

func TestRenderEffects(t *testing.T) {
	clips := renderEffects()

	effects := []Effect{EffectClick, EffectSelect, EffectCorrect, EffectIncorrect, EffectRound, EffectWin, EffectLose}
	for _, fx := range effects {
		clip, ok := clips[fx]
		if !ok {
			t.Errorf("effect %s missing from clip table", fx)
			continue
		}
		if len(clip) == 0 {
			t.Errorf("effect %s rendered empty", fx)
			continue
		}
		if peak := peakSample(decodeSamples(clip)); peak < 1000 {
			t.Errorf("effect %s peak %d, essentially silent", fx, peak)
		}
	}

	// Feedback sounds must be distinguishable
	if len(clips[EffectCorrect]) == len(clips[EffectIncorrect]) {
		a := clips[EffectCorrect]
		b := clips[EffectIncorrect]
		same := true
		for i := range a {
			if a[i] != b[i] {
				same = false
				break
			}
		}
		if same {
			t.Error("correct and incorrect clips are identical")
		}
	}
}

func TestPadStreamRead(t *testing.T) {
	p := NewPadStream()

	buf := make([]byte, 4096)
	n, err := p.Read(buf)
	if err != nil {
		t.Fatalf("Read returned error: %v", err)
	}
	if n != 4096 {
		t.Fatalf("Read returned %d, expected full buffer", n)
	}

	// Pad starts silent
	if peak := peakSample(decodeSamples(buf[:n])); peak != 0 {
		t.Errorf("silent pad produced peak %d", peak)
	}

	// Odd-length reads trim to whole samples
	n, err = p.Read(make([]byte, 7))
	if err != nil {
		t.Fatalf("odd Read returned error: %v", err)
	}
	if n != 6 {
		t.Errorf("odd Read returned %d, expected 6", n)
	}
}

func TestPadStreamGainAndFade(t *testing.T) {
	p := NewPadStream()
	p.SetGain(1)

	buf := make([]byte, SampleRate*bytesPerSample/10) // 100ms
	p.Read(buf)
	if peak := peakSample(decodeSamples(buf)); peak < 100 {
		t.Fatalf("pad at full gain is silent, peak %d", peak)
	}

	// Fade to zero over 100ms, then pull 300ms; the tail must be silent
	p.FadeTo(0, 0.1)
	for i := 0; i < 3; i++ {
		p.Read(buf)
	}
	if g := p.Gain(); g != 0 {
		t.Errorf("gain after fade = %f, expected 0", g)
	}
	if peak := peakSample(decodeSamples(buf)); peak != 0 {
		t.Errorf("faded pad produced peak %d", peak)
	}
}

func TestPadStreamImmediateFade(t *testing.T) {
	p := NewPadStream()
	p.SetGain(1)
	p.FadeTo(0, 0)

	if g := p.Gain(); g != 0 {
		t.Errorf("zero-length fade should jump, gain = %f", g)
	}
}
