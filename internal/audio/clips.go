package audio

// Effect identifies a prerendered sound effect.
type Effect int

const (
	EffectClick Effect = iota
	EffectSelect
	EffectCorrect
	EffectIncorrect
	EffectRound
	EffectWin
	EffectLose
)

// String returns a human-readable name for the effect.
func (e Effect) String() string {
	switch e {
	case EffectClick:
		return "click"
	case EffectSelect:
		return "select"
	case EffectCorrect:
		return "correct"
	case EffectIncorrect:
		return "incorrect"
	case EffectRound:
		return "round"
	case EffectWin:
		return "win"
	case EffectLose:
		return "lose"
	default:
		return "unknown"
	}
}

// renderEffects prerenders every effect once at engine startup so playback
// never synthesizes on the hot path.
func renderEffects() map[Effect][]byte {
	clips := make(map[Effect][]byte, 7)

	// Tiny tick for moving the selection around.
	clips[EffectClick] = RenderClip([]Tone{
		{Wave: WaveSine, Freq: 1660, Duration: 0.045, Gain: 0.32, Attack: 0.002, Release: 0.022},
	})

	// Two quick notes when an answer is committed.
	clips[EffectSelect] = RenderClip([]Tone{
		{Wave: WaveTriangle, Freq: 880, Duration: 0.07, Gain: 0.38, Attack: 0.003, Release: 0.04},
		{Wave: WaveTriangle, Freq: 988, Start: 0.055, Duration: 0.08, Gain: 0.34, Attack: 0.003, Release: 0.05},
	})

	// Rising major triad, slightly staggered. C5 E5 G5.
	clips[EffectCorrect] = RenderClip([]Tone{
		{Wave: WaveTriangle, Freq: 523.25, Duration: 0.22, Gain: 0.42, Attack: 0.005, Release: 0.11},
		{Wave: WaveTriangle, Freq: 659.25, Start: 0.09, Duration: 0.22, Gain: 0.42, Attack: 0.005, Release: 0.11},
		{Wave: WaveTriangle, Freq: 783.99, Start: 0.18, Duration: 0.26, Gain: 0.42, Attack: 0.005, Release: 0.13},
	})

	// Soft downward buzz. A gliding square through a closing lowpass reads
	// as "oops" without being harsh.
	clips[EffectIncorrect] = RenderClip([]Tone{
		{Wave: WaveSquare, Freq: 140, EndFreq: 70, Duration: 0.3, Gain: 0.35, Attack: 0.002, Release: 0.2, CutoffStart: 900, CutoffEnd: 180},
		{Wave: WaveSine, Freq: 90, Duration: 0.16, Gain: 0.25, Attack: 0.002, Release: 0.1},
	})

	// Gentle two-note chime for a new round.
	clips[EffectRound] = RenderClip([]Tone{
		{Wave: WaveSine, Freq: 660, Duration: 0.07, Gain: 0.28, Attack: 0.004, Release: 0.05},
		{Wave: WaveSine, Freq: 880, Start: 0.07, Duration: 0.09, Gain: 0.26, Attack: 0.004, Release: 0.06},
	})

	// Victory arpeggio up to a held octave. C5 E5 G5 C6.
	clips[EffectWin] = RenderClip([]Tone{
		{Wave: WaveTriangle, Freq: 523.25, Duration: 0.15, Gain: 0.38, Attack: 0.004, Release: 0.09},
		{Wave: WaveTriangle, Freq: 659.25, Start: 0.12, Duration: 0.15, Gain: 0.38, Attack: 0.004, Release: 0.09},
		{Wave: WaveTriangle, Freq: 783.99, Start: 0.24, Duration: 0.15, Gain: 0.38, Attack: 0.004, Release: 0.09},
		{Wave: WaveTriangle, Freq: 1046.5, Start: 0.36, Duration: 0.45, Gain: 0.4, Attack: 0.004, Release: 0.28},
		{Wave: WaveSine, Freq: 783.99, Start: 0.36, Duration: 0.45, Gain: 0.2, Attack: 0.004, Release: 0.28},
	})

	// Three descending notes, filtered darker as they fall. G4 E4 C4.
	clips[EffectLose] = RenderClip([]Tone{
		{Wave: WaveSine, Freq: 392, Duration: 0.26, Gain: 0.36, Attack: 0.004, Release: 0.14, CutoffStart: 1400, CutoffEnd: 900},
		{Wave: WaveSine, Freq: 329.63, Start: 0.2, Duration: 0.26, Gain: 0.36, Attack: 0.004, Release: 0.14, CutoffStart: 1100, CutoffEnd: 600},
		{Wave: WaveSine, Freq: 261.63, Start: 0.4, Duration: 0.45, Gain: 0.36, Attack: 0.004, Release: 0.26, CutoffStart: 900, CutoffEnd: 300},
		{Wave: WaveSquare, Freq: 98, Start: 0.4, Duration: 0.4, Gain: 0.16, Attack: 0.004, Release: 0.24, CutoffStart: 400, CutoffEnd: 150},
	})

	return clips
}
