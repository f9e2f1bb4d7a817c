package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/tartilapp/tartil/internal/config"
)

// SettingsDialog represents the settings configuration dialog
type SettingsDialog struct {
	settings *config.Settings
	app      fyne.App
	window   fyne.Window
	dialog   *dialog.ConfirmDialog

	// UI components
	fontScaleSlider *widget.Slider
	baseURLEntry    *widget.Entry
}

// NewSettingsDialog creates a new settings dialog
func NewSettingsDialog(settings *config.Settings, app fyne.App, window fyne.Window) *SettingsDialog {
	sd := &SettingsDialog{
		settings: settings,
		app:      app,
		window:   window,
	}

	sd.createUI()
	return sd
}

// Show displays the settings dialog
func (sd *SettingsDialog) Show() {
	sd.loadCurrentSettings()
	sd.dialog.Show()
}

// createUI creates the settings dialog UI
func (sd *SettingsDialog) createUI() {
	sd.fontScaleSlider = widget.NewSlider(config.MinFontScale, config.MaxFontScale)
	sd.fontScaleSlider.Step = 0.1

	sd.baseURLEntry = widget.NewEntry()
	sd.baseURLEntry.SetPlaceHolder(APIBaseURLHint)

	form := container.NewVBox(
		widget.NewLabel(FontScaleLabel),
		sd.fontScaleSlider,
		widget.NewLabel(APIBaseURLLabel),
		sd.baseURLEntry,
	)

	sd.dialog = dialog.NewCustomConfirm(SettingsTitle, "Save", "Cancel", form, sd.onSave, sd.window)
}

// loadCurrentSettings populates the dialog with current values
func (sd *SettingsDialog) loadCurrentSettings() {
	sd.fontScaleSlider.SetValue(sd.settings.GetFontScale())
	sd.baseURLEntry.SetText(sd.settings.GetAPIBaseURL())
}

// onSave persists the dialog values and applies the font scale immediately;
// the base URL takes effect on the next launch.
func (sd *SettingsDialog) onSave(confirmed bool) {
	if !confirmed {
		return
	}

	scale := sd.fontScaleSlider.Value
	sd.settings.SetFontScale(scale)
	sd.app.Settings().SetTheme(NewScaledTheme(scale))

	sd.settings.SetAPIBaseURL(sd.baseURLEntry.Text)
}
