package ui

// Package ui contains the Fyne-based desktop user interface. It wires user
// interactions to the playback controller and renders the current ayah,
// transport state, and selection widgets. The UI never drives the audio
// resource directly; everything routes through controller operations.
