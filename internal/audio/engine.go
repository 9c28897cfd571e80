package audio

import (
	"bytes"
	"fmt"
	"io"
	"sync"

	"github.com/ebitengine/oto/v3"
)

// Sink is the playback backend. The real implementation wraps an OS audio
// device; NoopSink stands in when no device is available or sound is not
// wanted (SSH sessions, tests).
type Sink interface {
	// PlayClip starts one-shot playback of a PCM clip.
	PlayClip(clip []byte)
	// StartStream begins endless playback from r. Only one stream runs at
	// a time; subsequent calls are ignored.
	StartStream(r io.Reader)
	// SetVolume sets the master volume for current and future playback.
	SetVolume(v float64)
	// Close stops all playback and releases the device.
	Close() error
}

// otoSink plays PCM through the OS via oto. One context is opened at
// startup; each effect gets a short-lived player which is reaped once it
// finishes.
type otoSink struct {
	ctx *oto.Context

	mu      sync.Mutex
	volume  float64
	players []*oto.Player
	stream  *oto.Player
}

func newOtoSink() (*otoSink, error) {
	ctx, ready, err := oto.NewContext(&oto.NewContextOptions{
		SampleRate:   SampleRate,
		ChannelCount: 1,
		Format:       oto.FormatSignedInt16LE,
	})
	if err != nil {
		return nil, fmt.Errorf("audio: open device: %w", err)
	}
	<-ready
	return &otoSink{ctx: ctx, volume: 1}, nil
}

func (s *otoSink) PlayClip(clip []byte) {
	if len(clip) == 0 {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	// Reap players that finished since the last call.
	alive := s.players[:0]
	for _, p := range s.players {
		if p.IsPlaying() {
			alive = append(alive, p)
		} else {
			_ = p.Close()
		}
	}
	s.players = alive

	p := s.ctx.NewPlayer(bytes.NewReader(clip))
	p.SetVolume(s.volume)
	p.Play()
	s.players = append(s.players, p)
}

func (s *otoSink) StartStream(r io.Reader) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.stream != nil {
		return
	}
	p := s.ctx.NewPlayer(r)
	p.SetVolume(s.volume)
	p.Play()
	s.stream = p
}

func (s *otoSink) SetVolume(v float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.volume = v
	if s.stream != nil {
		s.stream.SetVolume(v)
	}
	for _, p := range s.players {
		p.SetVolume(v)
	}
}

func (s *otoSink) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, p := range s.players {
		_ = p.Close()
	}
	s.players = nil
	if s.stream != nil {
		_ = s.stream.Close()
		s.stream = nil
	}
	// oto contexts cannot be closed, only suspended.
	return s.ctx.Suspend()
}

// NoopSink discards all playback. Games run identically with it; sound is
// the only thing missing.
type NoopSink struct{}

func (NoopSink) PlayClip([]byte)       {}
func (NoopSink) StartStream(io.Reader) {}
func (NoopSink) SetVolume(float64)     {}
func (NoopSink) Close() error          { return nil }

// Engine owns the prerendered clips, the background pad, and the mute state.
// It is safe for concurrent use. Construction never fails: if the audio
// device cannot be opened the engine falls back to a silent sink, records the
// error for the caller to log, and every method keeps working.
type Engine struct {
	mu        sync.Mutex
	sink      Sink
	pad       *PadStream
	clips     map[Effect][]byte
	available bool
	initErr   error
	muted     bool
	volume    float64
	padOn     bool
}

// NewEngine opens the default audio device. On failure the engine is silent
// but fully functional; check Available and Err.
func NewEngine() *Engine {
	e := &Engine{clips: renderEffects(), volume: 1}
	sink, err := newOtoSink()
	if err != nil {
		e.sink = NoopSink{}
		e.initErr = err
		return e
	}
	e.sink = sink
	e.available = true
	return e
}

// NewEngineWithSink builds an engine on an explicit sink. Used for silent
// contexts (SSH sessions) and for tests that record playback.
func NewEngineWithSink(sink Sink) *Engine {
	return &Engine{clips: renderEffects(), sink: sink, volume: 1, available: true}
}

// Available reports whether a real audio device was opened.
func (e *Engine) Available() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.available
}

// Err returns the device open error, if any.
func (e *Engine) Err() error {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.initErr
}

// Play fires a one-shot effect. Muted engines skip playback entirely; the
// pad still runs at zero volume so unmuting is seamless.
func (e *Engine) Play(fx Effect) {
	e.mu.Lock()
	if e.muted {
		e.mu.Unlock()
		return
	}
	clip := e.clips[fx]
	sink := e.sink
	e.mu.Unlock()

	sink.PlayClip(clip)
}

// StartPad begins the background drone, fading it in. Calling it again after
// a fade-out brings the pad back.
func (e *Engine) StartPad() {
	e.mu.Lock()
	defer e.mu.Unlock()
	if !e.padOn {
		e.pad = NewPadStream()
		e.sink.StartStream(e.pad)
		e.padOn = true
	}
	e.pad.FadeTo(1, 0.3)
}

// StopPad fades the drone out over the given seconds. The stream keeps
// running silently so a later StartPad resumes without a rebuild.
func (e *Engine) StopPad(seconds float64) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.pad != nil {
		e.pad.FadeTo(0, seconds)
	}
}

// SetMuted flips the master volume between zero and the nominal level.
func (e *Engine) SetMuted(muted bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.muted = muted
	if muted {
		e.sink.SetVolume(0)
	} else {
		e.sink.SetVolume(e.volume)
	}
}

// ToggleMuted flips the mute state and returns the new value.
func (e *Engine) ToggleMuted() bool {
	e.mu.Lock()
	muted := !e.muted
	e.mu.Unlock()
	e.SetMuted(muted)
	return muted
}

// Muted returns the current mute state.
func (e *Engine) Muted() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.muted
}

// Close releases the audio device. Safe to call on silent engines.
func (e *Engine) Close() error {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.sink.Close()
}
