package ui

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Text fragments
const (
	TimePlaceholder     = "--:--"
	TimeSeparator       = " / "
	LoadingMessage      = "Loading…"
	SurahLabelFormat    = "%d. %s"
	AyahCounterFormat   = "Ayah %d of %d"
	ContinuityLabel     = "Auto next surah"
	MuteTooltip         = "Mute"
	SettingsTitle       = "Settings"
	FontScaleLabel      = "Text size"
	APIBaseURLLabel     = "Content API base URL"
	APIBaseURLHint      = "Leave empty for the public API. Takes effect after restart."
	SurahSelectPrompt   = "Select surah"
	EditionSelectPrompt = "Select reciter"
)

// Layout sizing
const (
	WindowMinWidth   float32 = 560
	WindowMinHeight  float32 = 420
	TextPadding      float32 = 12
	SeekSliderStep           = 1.0  // seconds
	VolumeSliderStep         = 0.05 // level fraction
)
