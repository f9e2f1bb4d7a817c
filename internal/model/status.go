package model

// PlaybackStatus represents the status of the playback controller
type PlaybackStatus string

const (
	// StatusIdle means no content is loaded and nothing is in flight
	StatusIdle PlaybackStatus = "Idle"

	// StatusLoading means a content fetch for the current selection is in flight
	StatusLoading PlaybackStatus = "Loading"

	// StatusPlaying means audio playback is intended and the resource is running
	StatusPlaying PlaybackStatus = "Playing"

	// StatusPaused means content is loaded but playback is not intended
	StatusPaused PlaybackStatus = "Paused"

	// StatusError means the last content fetch failed
	StatusError PlaybackStatus = "Error"
)

// String returns the string representation of PlaybackStatus
func (ps PlaybackStatus) String() string {
	return string(ps)
}

// HasContent returns true if a content bundle is available in this status
func (ps PlaybackStatus) HasContent() bool {
	return ps == StatusPlaying || ps == StatusPaused
}

// IsBusy returns true if an operation is in flight and controls should be held back
func (ps PlaybackStatus) IsBusy() bool {
	return ps == StatusLoading
}
