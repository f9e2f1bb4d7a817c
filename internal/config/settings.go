package config

import (
	"fyne.io/fyne/v2"
)

// Settings keys for Fyne preferences
const (
	KeyEditionID      = "narration_edition"
	KeyContinuityMode = "continuity_mode"
	KeyVolumeLevel    = "volume_level"
	KeyMuted          = "muted"
	KeyFontScale      = "font_scale"
	KeyAPIBaseURL     = "api_base_url"
)

// Default values
const (
	DefaultEditionID      = "ar.alafasy"
	DefaultContinuityMode = true
	DefaultVolumeLevel    = 1.0
	DefaultFontScale      = 1.0

	MinFontScale = 0.5
	MaxFontScale = 2.5
)

// Settings manages application configuration
type Settings struct {
	app fyne.App
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// GetEditionID returns the configured narration edition
func (s *Settings) GetEditionID() string {
	id := s.app.Preferences().String(KeyEditionID)
	if id == "" {
		return DefaultEditionID
	}
	return id
}

// SetEditionID sets the narration edition
func (s *Settings) SetEditionID(id string) {
	s.app.Preferences().SetString(KeyEditionID, id)
}

// GetContinuityMode returns whether playback proceeds across surah boundaries
func (s *Settings) GetContinuityMode() bool {
	return s.app.Preferences().BoolWithFallback(KeyContinuityMode, DefaultContinuityMode)
}

// SetContinuityMode sets the continuity mode
func (s *Settings) SetContinuityMode(enabled bool) {
	s.app.Preferences().SetBool(KeyContinuityMode, enabled)
}

// GetVolumeLevel returns the stored volume level in [0.0, 1.0]
func (s *Settings) GetVolumeLevel() float64 {
	level := s.app.Preferences().FloatWithFallback(KeyVolumeLevel, DefaultVolumeLevel)
	if level < 0 {
		return 0
	}
	if level > 1 {
		return 1
	}
	return level
}

// SetVolumeLevel sets the volume level
func (s *Settings) SetVolumeLevel(level float64) {
	s.app.Preferences().SetFloat(KeyVolumeLevel, level)
}

// GetMuted returns the muted flag
func (s *Settings) GetMuted() bool {
	return s.app.Preferences().Bool(KeyMuted)
}

// SetMuted sets the muted flag
func (s *Settings) SetMuted(muted bool) {
	s.app.Preferences().SetBool(KeyMuted, muted)
}

// GetFontScale returns the ayah text scale factor
func (s *Settings) GetFontScale() float64 {
	scale := s.app.Preferences().FloatWithFallback(KeyFontScale, DefaultFontScale)
	if scale < MinFontScale {
		return MinFontScale
	}
	if scale > MaxFontScale {
		return MaxFontScale
	}
	return scale
}

// SetFontScale sets the ayah text scale factor
func (s *Settings) SetFontScale(scale float64) {
	s.app.Preferences().SetFloat(KeyFontScale, scale)
}

// GetAPIBaseURL returns the content API base URL; empty selects the default
// public API
func (s *Settings) GetAPIBaseURL() string {
	return s.app.Preferences().String(KeyAPIBaseURL)
}

// SetAPIBaseURL sets the content API base URL
func (s *Settings) SetAPIBaseURL(url string) {
	s.app.Preferences().SetString(KeyAPIBaseURL, url)
}
