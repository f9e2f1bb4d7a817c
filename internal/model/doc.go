package model

// Package model defines domain data structures used across the app: surah and
// edition references, ayah content bundles, the playback cursor, and status
// enums. Structures are designed for direct binding in the UI and explicit
// state transitions.
