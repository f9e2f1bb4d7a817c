package player

import (
	"bytes"
	"fmt"
	"io"
	"math"
	"net/http"
	"sync"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/effects"
	"github.com/gopxl/beep/v2/mp3"
	"github.com/gopxl/beep/v2/speaker"
	"github.com/rs/zerolog"
)

// Playback constants
const (
	SpeakerBufferSize   = 100 * time.Millisecond
	ProgressInterval    = 250 * time.Millisecond
	ResampleQuality     = 4
	VolumeBase          = 2.0
	MinVolumeDB         = -8.0
	VolumeCurveExponent = 0.5
	FetchTimeout        = 30 * time.Second
)

// Beep plays mp3 sources fetched over HTTP through the system speaker.
type Beep struct {
	mu         sync.Mutex
	log        zerolog.Logger
	httpClient *http.Client
	handlers   Handlers

	source  string
	loadGen uint64 // bumped per Load; events from superseded loads are dropped

	streamer beep.StreamSeekCloser
	format   beep.Format
	ctrl     *beep.Ctrl
	volume   *effects.Volume

	level float64
	muted bool

	speakerRate beep.SampleRate
	speakerInit bool

	stopProgress chan struct{}
}

// NewBeep creates the speaker-backed audio resource.
func NewBeep(log zerolog.Logger) *Beep {
	return &Beep{
		log:        log.With().Str("component", "player").Logger(),
		httpClient: &http.Client{Timeout: FetchTimeout},
		level:      1.0,
	}
}

// SetHandlers installs the event callbacks.
func (b *Beep) SetHandlers(h Handlers) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.handlers = h
}

// Load assigns a new source and reloads asynchronously. OnReady fires when
// the source is playable; loads superseded by a newer Load stay silent.
func (b *Beep) Load(src string) {
	b.mu.Lock()
	b.loadGen++
	gen := b.loadGen
	b.source = src
	b.teardownLocked()
	b.mu.Unlock()

	go b.fetchAndInstall(gen, src)
}

// teardownLocked releases the current streamer chain and stops the progress
// ticker. Callers hold b.mu.
func (b *Beep) teardownLocked() {
	if b.stopProgress != nil {
		close(b.stopProgress)
		b.stopProgress = nil
	}
	if b.ctrl != nil {
		speaker.Clear()
		b.ctrl = nil
		b.volume = nil
	}
	if b.streamer != nil {
		b.streamer.Close()
		b.streamer = nil
	}
}

type readSeekNopCloser struct {
	*bytes.Reader
}

func (readSeekNopCloser) Close() error { return nil }

func (b *Beep) fetchAndInstall(gen uint64, src string) {
	data, err := b.fetch(src)
	if err != nil {
		b.log.Warn().Str("src", src).Err(err).Msg("audio load failed")
		return
	}

	streamer, format, err := mp3.Decode(readSeekNopCloser{bytes.NewReader(data)})
	if err != nil {
		b.log.Warn().Str("src", src).Err(err).Msg("audio decode failed")
		return
	}

	b.mu.Lock()
	if gen != b.loadGen {
		// A newer load superseded this one before it finished.
		b.mu.Unlock()
		streamer.Close()
		return
	}

	if err := b.initSpeakerLocked(format.SampleRate); err != nil {
		b.mu.Unlock()
		streamer.Close()
		b.log.Error().Err(err).Msg("speaker init failed")
		return
	}

	b.streamer = streamer
	b.format = format

	var source beep.Streamer = streamer
	if format.SampleRate != b.speakerRate {
		source = beep.Resample(ResampleQuality, format.SampleRate, b.speakerRate, streamer)
	}

	ended := beep.Callback(func() {
		// Dispatched off the speaker goroutine: handlers may call back into
		// the resource.
		go b.emitEnded(gen, src)
	})

	b.ctrl = &beep.Ctrl{Streamer: beep.Seq(source, ended), Paused: true}
	b.volume = &effects.Volume{
		Streamer: b.ctrl,
		Base:     VolumeBase,
		Volume:   volumeDB(b.level),
		Silent:   b.muted || b.level == 0,
	}
	speaker.Play(b.volume)

	stop := make(chan struct{})
	b.stopProgress = stop
	go b.progressLoop(gen, stop)

	onReady := b.handlers.OnReady
	b.mu.Unlock()

	b.log.Debug().Str("src", src).Msg("audio ready")
	if onReady != nil {
		onReady(src)
	}
}

func (b *Beep) fetch(src string) ([]byte, error) {
	resp, err := b.httpClient.Get(src)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}
	return io.ReadAll(resp.Body)
}

func (b *Beep) initSpeakerLocked(rate beep.SampleRate) error {
	if b.speakerInit {
		return nil
	}
	if err := speaker.Init(rate, rate.N(SpeakerBufferSize)); err != nil {
		return err
	}
	b.speakerRate = rate
	b.speakerInit = true
	b.log.Debug().Int("sample_rate", int(rate)).Msg("speaker initialized")
	return nil
}

func (b *Beep) emitEnded(gen uint64, src string) {
	b.mu.Lock()
	stale := gen != b.loadGen
	onEnded := b.handlers.OnEnded
	b.mu.Unlock()

	if stale || onEnded == nil {
		return
	}
	onEnded(src)
}

func (b *Beep) progressLoop(gen uint64, stop <-chan struct{}) {
	ticker := time.NewTicker(ProgressInterval)
	defer ticker.Stop()
	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			b.mu.Lock()
			stale := gen != b.loadGen || b.streamer == nil
			onProgress := b.handlers.OnProgress
			b.mu.Unlock()
			if stale {
				return
			}
			if onProgress != nil {
				onProgress(b.Position(), b.Duration())
			}
		}
	}
}

// Source returns the currently assigned source locator.
func (b *Beep) Source() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.source
}

// Play starts playback of the loaded source.
func (b *Beep) Play() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.ctrl == nil {
		return fmt.Errorf("no audio source is ready")
	}
	speaker.Lock()
	b.ctrl.Paused = false
	speaker.Unlock()
	return nil
}

// Pause halts playback.
func (b *Beep) Pause() {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.ctrl == nil {
		return
	}
	speaker.Lock()
	b.ctrl.Paused = true
	speaker.Unlock()
}

// Seek moves the playback position, clamped to [0, duration].
func (b *Beep) Seek(d time.Duration) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.streamer == nil {
		return
	}
	speaker.Lock()
	defer speaker.Unlock()

	target := b.format.SampleRate.N(d)
	if target < 0 {
		target = 0
	}
	if end := b.streamer.Len(); target > end {
		target = end
	}
	if err := b.streamer.Seek(target); err != nil {
		b.log.Warn().Err(err).Msg("seek failed")
	}
}

// Position returns the current playback position.
func (b *Beep) Position() time.Duration {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.streamer == nil {
		return 0
	}
	speaker.Lock()
	defer speaker.Unlock()
	return b.format.SampleRate.D(b.streamer.Position())
}

// Duration returns the total duration of the loaded source.
func (b *Beep) Duration() time.Duration {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.streamer == nil {
		return 0
	}
	speaker.Lock()
	defer speaker.Unlock()
	return b.format.SampleRate.D(b.streamer.Len())
}

// SetVolume stores and applies a level in [0.0, 1.0].
func (b *Beep) SetVolume(level float64) {
	if level < 0 {
		level = 0
	}
	if level > 1 {
		level = 1
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	b.level = level
	b.applyVolumeLocked()
}

// Volume returns the stored volume level.
func (b *Beep) Volume() float64 {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.level
}

// SetMuted silences output; the stored level is preserved for unmute.
func (b *Beep) SetMuted(muted bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.muted = muted
	b.applyVolumeLocked()
}

// Muted returns the muted flag.
func (b *Beep) Muted() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.muted
}

func (b *Beep) applyVolumeLocked() {
	if b.volume == nil {
		return
	}
	speaker.Lock()
	b.volume.Volume = volumeDB(b.level)
	b.volume.Silent = b.muted || b.level == 0
	speaker.Unlock()
}

// Close releases the audio output.
func (b *Beep) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.loadGen++
	b.source = ""
	b.teardownLocked()
}

// volumeDB maps a linear level in [0, 1] onto a decibel gain with a
// perceptual curve, 0 dB at full level.
func volumeDB(level float64) float64 {
	if level <= 0 {
		return MinVolumeDB
	}
	if level >= 1 {
		return 0
	}
	adjusted := math.Pow(level, VolumeCurveExponent)
	return (1.0 - adjusted) * MinVolumeDB
}
