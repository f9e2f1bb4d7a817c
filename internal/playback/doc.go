package playback

// Package playback implements the core synchronization state machine: it owns
// the playback cursor and content bundle, reconciles the audio resource
// against them, absorbs audio events, and decides what happens when playback
// runs off either end of a surah.
