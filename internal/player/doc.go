package player

// Package player owns the process-wide audio output: a Resource abstraction
// over source loading, transport control, volume, and playback events, with a
// beep/speaker implementation and an in-memory mock for tests.
