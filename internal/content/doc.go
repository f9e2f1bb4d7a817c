package content

// Package content contains the client for the recitation content API: surah
// and edition listings plus the multi-edition fetch that assembles audio,
// original text, and translation into a single playable bundle.
