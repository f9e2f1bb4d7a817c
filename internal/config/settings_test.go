package config

import (
	"testing"

	"fyne.io/fyne/v2/test"
)

func TestNewSettings(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if settings.app != app {
		t.Error("Settings app reference should match provided app")
	}
}

func TestEditionID(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if id := settings.GetEditionID(); id != DefaultEditionID {
		t.Errorf("Expected default edition %s, got %s", DefaultEditionID, id)
	}

	settings.SetEditionID("ar.husary")
	if id := settings.GetEditionID(); id != "ar.husary" {
		t.Errorf("Expected edition ar.husary, got %s", id)
	}
}

func TestContinuityMode(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if settings.GetContinuityMode() != DefaultContinuityMode {
		t.Errorf("Expected default continuity %v", DefaultContinuityMode)
	}

	settings.SetContinuityMode(false)
	if settings.GetContinuityMode() {
		t.Error("Expected continuity mode false after set")
	}
}

func TestVolumeLevel(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if level := settings.GetVolumeLevel(); level != DefaultVolumeLevel {
		t.Errorf("Expected default volume %v, got %v", DefaultVolumeLevel, level)
	}

	settings.SetVolumeLevel(0.3)
	if level := settings.GetVolumeLevel(); level != 0.3 {
		t.Errorf("Expected volume 0.3, got %v", level)
	}

	// Out-of-range stored values are clamped on read.
	settings.SetVolumeLevel(3.5)
	if level := settings.GetVolumeLevel(); level != 1.0 {
		t.Errorf("Expected clamped volume 1.0, got %v", level)
	}
}

func TestMuted(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if settings.GetMuted() {
		t.Error("Expected muted false by default")
	}

	settings.SetMuted(true)
	if !settings.GetMuted() {
		t.Error("Expected muted true after set")
	}
}

func TestFontScale(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if scale := settings.GetFontScale(); scale != DefaultFontScale {
		t.Errorf("Expected default font scale %v, got %v", DefaultFontScale, scale)
	}

	settings.SetFontScale(0.1)
	if scale := settings.GetFontScale(); scale != MinFontScale {
		t.Errorf("Expected clamped font scale %v, got %v", MinFontScale, scale)
	}

	settings.SetFontScale(9)
	if scale := settings.GetFontScale(); scale != MaxFontScale {
		t.Errorf("Expected clamped font scale %v, got %v", MaxFontScale, scale)
	}
}

func TestAPIBaseURL(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if url := settings.GetAPIBaseURL(); url != "" {
		t.Errorf("Expected empty default base URL, got %s", url)
	}

	settings.SetAPIBaseURL("http://localhost:8080/v1")
	if url := settings.GetAPIBaseURL(); url != "http://localhost:8080/v1" {
		t.Errorf("Expected custom base URL, got %s", url)
	}
}
