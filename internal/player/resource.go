package player

import "time"

// Handlers receive events from the audio resource. Every event names the
// source it belongs to; implementations guarantee callbacks from a superseded
// load never fire.
type Handlers struct {
	// OnReady fires once when a newly assigned source finished loading and
	// can be played.
	OnReady func(src string)

	// OnProgress fires periodically while a source is loaded with the
	// current position and total duration.
	OnProgress func(pos, dur time.Duration)

	// OnEnded fires when playback of the current source reaches its natural
	// end.
	OnEnded func(src string)
}

// Resource is the single audio output. All mutation goes through the playback
// controller; no other component may drive it directly.
type Resource interface {
	// SetHandlers installs the event callbacks. Must be called before the
	// first Load.
	SetHandlers(h Handlers)

	// Load assigns a new source and starts an asynchronous (re)load.
	// Position and duration are invalid until OnReady fires.
	Load(src string)

	// Source returns the currently assigned source locator, or "".
	Source() string

	// Play starts playback of the loaded source. Returns an error when the
	// environment refuses playback; this is recoverable, not fatal.
	Play() error

	// Pause halts playback. Idempotent if already paused.
	Pause()

	// Seek moves the playback position. Out-of-range targets are clamped to
	// [0, duration], never rejected.
	Seek(d time.Duration)

	Position() time.Duration
	Duration() time.Duration

	// SetVolume stores a level in [0.0, 1.0] and applies it immediately.
	// Never triggers a reload.
	SetVolume(level float64)
	Volume() float64

	// SetMuted silences output while preserving the stored volume level.
	SetMuted(muted bool)
	Muted() bool

	// Close releases the audio output.
	Close()
}
