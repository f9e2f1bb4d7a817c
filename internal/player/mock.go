package player

import (
	"errors"
	"sync"
	"time"
)

// Mock is an in-memory Resource for tests. Loads complete only when the test
// fires the corresponding events, which mirrors the asynchronous readiness of
// the real output.
type Mock struct {
	mu       sync.Mutex
	handlers Handlers

	source    string
	loadCalls []string
	playCalls int
	playErr   error
	playing   bool

	position time.Duration
	duration time.Duration
	level    float64
	muted    bool
}

// NewMock creates a mock resource at full volume.
func NewMock() *Mock {
	return &Mock{level: 1.0}
}

// SetHandlers installs the event callbacks.
func (m *Mock) SetHandlers(h Handlers) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.handlers = h
}

// Load records the assignment and invalidates position state.
func (m *Mock) Load(src string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.source = src
	m.loadCalls = append(m.loadCalls, src)
	m.playing = false
	m.position = 0
}

// Source returns the currently assigned source.
func (m *Mock) Source() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.source
}

// Play starts playback unless the test scripted a rejection.
func (m *Mock) Play() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.playCalls++
	if m.playErr != nil {
		return m.playErr
	}
	if m.source == "" {
		return errors.New("no audio source is ready")
	}
	m.playing = true
	return nil
}

// Pause halts playback.
func (m *Mock) Pause() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.playing = false
}

// Seek clamps the target to [0, duration].
func (m *Mock) Seek(d time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if d < 0 {
		d = 0
	}
	if d > m.duration {
		d = m.duration
	}
	m.position = d
}

// Position returns the mock position.
func (m *Mock) Position() time.Duration {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.position
}

// Duration returns the mock duration.
func (m *Mock) Duration() time.Duration {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.duration
}

// SetVolume stores a clamped level.
func (m *Mock) SetVolume(level float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if level < 0 {
		level = 0
	}
	if level > 1 {
		level = 1
	}
	m.level = level
}

// Volume returns the stored level.
func (m *Mock) Volume() float64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.level
}

// SetMuted sets the muted flag.
func (m *Mock) SetMuted(muted bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.muted = muted
}

// Muted returns the muted flag.
func (m *Mock) Muted() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.muted
}

// Close is a no-op.
func (m *Mock) Close() {}

// --- test controls ---

// SetPlayError scripts Play to fail, simulating an environment that refuses
// playback.
func (m *Mock) SetPlayError(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.playErr = err
}

// SetDuration sets the reported duration of the loaded source.
func (m *Mock) SetDuration(d time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.duration = d
}

// FireReady delivers the ready event for the current source.
func (m *Mock) FireReady() {
	m.mu.Lock()
	h, src := m.handlers.OnReady, m.source
	m.mu.Unlock()
	if h != nil {
		h(src)
	}
}

// FireEnded delivers the natural-end event for the current source.
func (m *Mock) FireEnded() {
	m.mu.Lock()
	h, src := m.handlers.OnEnded, m.source
	m.mu.Unlock()
	if h != nil {
		h(src)
	}
}

// FireProgress delivers a progress event.
func (m *Mock) FireProgress(pos, dur time.Duration) {
	m.mu.Lock()
	h := m.handlers.OnProgress
	m.mu.Unlock()
	if h != nil {
		h(pos, dur)
	}
}

// LoadCalls returns every source passed to Load, in order.
func (m *Mock) LoadCalls() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.loadCalls...)
}

// PlayCalls returns how many times Play was invoked.
func (m *Mock) PlayCalls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.playCalls
}

// IsPlaying reports whether the mock is currently playing.
func (m *Mock) IsPlaying() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.playing
}

// EffectiveVolume returns the audible level: zero while muted, the stored
// level otherwise.
func (m *Mock) EffectiveVolume() float64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.muted {
		return 0
	}
	return m.level
}
