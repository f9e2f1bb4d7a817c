package ui

import (
	"context"
	"fmt"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"github.com/rs/zerolog"

	"github.com/tartilapp/tartil/internal/config"
	"github.com/tartilapp/tartil/internal/content"
	"github.com/tartilapp/tartil/internal/model"
	"github.com/tartilapp/tartil/internal/playback"
)

// ListFetchTimeout bounds the startup fetch of surah/edition lists.
const ListFetchTimeout = 30 * time.Second

// RootUI represents the main UI structure
type RootUI struct {
	window   fyne.Window
	app      fyne.App
	settings *config.Settings
	client   *content.Client
	ctrl     *playback.Controller
	log      zerolog.Logger

	surahs   []model.Surah
	editions []model.Edition

	surahSelect   *widget.Select
	editionSelect *widget.Select

	arabicText      *widget.Label
	translationText *widget.Label
	ayahCounter     *widget.Label

	prevSurahBtn *widget.Button
	retreatBtn   *widget.Button
	playPauseBtn *widget.Button
	advanceBtn   *widget.Button
	nextSurahBtn *widget.Button

	seekSlider *widget.Slider
	timeLabel  *widget.Label
	seeking    bool

	volumeSlider *widget.Slider
	muteBtn      *widget.Button

	continuityCheck *widget.Check
	statusLabel     *widget.Label

	// syncing suppresses widget change handlers while a snapshot is being
	// applied, so programmatic updates don't loop back into the controller.
	syncing bool
}

// NewRootUI creates and initializes the main UI
func NewRootUI(window fyne.Window, app fyne.App, ctrl *playback.Controller, client *content.Client, settings *config.Settings, log zerolog.Logger) *RootUI {
	ui := &RootUI{
		window:   window,
		app:      app,
		settings: settings,
		client:   client,
		ctrl:     ctrl,
		log:      log.With().Str("component", "ui").Logger(),
	}

	ui.ctrl.SetUpdateCallback(ui.onSnapshot)
	ui.setupUI()

	go ui.loadLists()

	return ui
}

// setupUI creates and arranges all UI components
func (ui *RootUI) setupUI() {
	ui.surahSelect = widget.NewSelect(nil, ui.onSurahSelected)
	ui.surahSelect.PlaceHolder = SurahSelectPrompt

	ui.editionSelect = widget.NewSelect(nil, ui.onEditionSelected)
	ui.editionSelect.PlaceHolder = EditionSelectPrompt

	settingsBtn := widget.NewButtonWithIcon("", theme.SettingsIcon(), ui.onShowSettings)
	settingsBtn.Importance = widget.LowImportance

	ui.arabicText = widget.NewLabel("")
	ui.arabicText.Wrapping = fyne.TextWrapWord
	ui.arabicText.Alignment = fyne.TextAlignTrailing
	ui.arabicText.TextStyle = fyne.TextStyle{Bold: true}

	ui.translationText = widget.NewLabel("")
	ui.translationText.Wrapping = fyne.TextWrapWord

	ui.ayahCounter = widget.NewLabel("")
	ui.ayahCounter.Alignment = fyne.TextAlignCenter

	ui.prevSurahBtn = widget.NewButtonWithIcon("", theme.MediaSkipPreviousIcon(), ui.ctrl.PreviousSurah)
	ui.retreatBtn = widget.NewButtonWithIcon("", theme.MediaFastRewindIcon(), ui.ctrl.Retreat)
	ui.playPauseBtn = widget.NewButtonWithIcon("", theme.MediaPlayIcon(), ui.ctrl.TogglePlay)
	ui.advanceBtn = widget.NewButtonWithIcon("", theme.MediaFastForwardIcon(), ui.ctrl.Advance)
	ui.nextSurahBtn = widget.NewButtonWithIcon("", theme.MediaSkipNextIcon(), ui.ctrl.NextSurah)

	ui.seekSlider = widget.NewSlider(0, 0)
	ui.seekSlider.Step = SeekSliderStep
	ui.seekSlider.OnChanged = func(float64) {
		if !ui.syncing {
			ui.seeking = true
		}
	}
	ui.seekSlider.OnChangeEnded = func(v float64) {
		if ui.syncing {
			return
		}
		ui.seeking = false
		ui.ctrl.Seek(time.Duration(v * float64(time.Second)))
	}

	ui.timeLabel = widget.NewLabel(TimePlaceholder + TimeSeparator + TimePlaceholder)

	ui.volumeSlider = widget.NewSlider(0, 1)
	ui.volumeSlider.Step = VolumeSliderStep
	ui.volumeSlider.SetValue(ui.settings.GetVolumeLevel())
	ui.volumeSlider.OnChanged = func(v float64) {
		if ui.syncing {
			return
		}
		ui.ctrl.SetVolume(v)
		ui.settings.SetVolumeLevel(v)
	}

	ui.muteBtn = widget.NewButtonWithIcon("", theme.VolumeUpIcon(), ui.onToggleMute)

	ui.continuityCheck = widget.NewCheck(ContinuityLabel, func(enabled bool) {
		if ui.syncing {
			return
		}
		ui.ctrl.SetContinuityMode(enabled)
		ui.settings.SetContinuityMode(enabled)
	})
	ui.continuityCheck.SetChecked(ui.settings.GetContinuityMode())

	ui.statusLabel = widget.NewLabel("")
	ui.statusLabel.Truncation = fyne.TextTruncateEllipsis

	topPanel := container.NewBorder(nil, nil, nil, settingsBtn,
		container.NewGridWithColumns(2, ui.surahSelect, ui.editionSelect))

	textPanel := container.NewVBox(
		container.NewPadded(ui.arabicText),
		widget.NewSeparator(),
		container.NewPadded(ui.translationText),
		ui.ayahCounter,
	)

	transport := container.NewHBox(
		ui.prevSurahBtn, ui.retreatBtn, ui.playPauseBtn, ui.advanceBtn, ui.nextSurahBtn,
	)
	seekRow := container.NewBorder(nil, nil, nil, ui.timeLabel, ui.seekSlider)
	volumeRow := container.NewBorder(nil, nil, ui.muteBtn, ui.continuityCheck, ui.volumeSlider)

	bottomPanel := container.NewVBox(
		seekRow,
		container.NewCenter(transport),
		volumeRow,
		ui.statusLabel,
	)

	content := container.NewBorder(
		topPanel,    // top
		bottomPanel, // bottom
		nil,         // left
		nil,         // right
		container.NewVScroll(textPanel), // center
	)

	ui.window.SetContent(content)
	ui.window.Resize(fyne.NewSize(WindowMinWidth, WindowMinHeight))
}

// loadLists fetches the surah and edition lists, populates the selects, and
// kicks off the initial content load.
func (ui *RootUI) loadLists() {
	ctx, cancel := context.WithTimeout(context.Background(), ListFetchTimeout)
	defer cancel()

	surahs, err := ui.client.ListSurahs(ctx)
	if err != nil {
		ui.log.Error().Err(err).Msg("surah list fetch failed")
		ui.showStatus(err.Error())
		return
	}

	editions, err := ui.client.ListEditions(ctx)
	if err != nil {
		ui.log.Error().Err(err).Msg("edition list fetch failed")
		ui.showStatus(err.Error())
		return
	}

	surahOptions := make([]string, len(surahs))
	for i, s := range surahs {
		surahOptions[i] = fmt.Sprintf(SurahLabelFormat, s.Number, s.EnglishName)
	}
	editionOptions := make([]string, len(editions))
	editionIndex := 0
	for i, e := range editions {
		editionOptions[i] = e.Name
		if e.ID == ui.settings.GetEditionID() {
			editionIndex = i
		}
	}

	fyne.Do(func() {
		ui.surahs = surahs
		ui.editions = editions

		ui.syncing = true
		ui.surahSelect.SetOptions(surahOptions)
		ui.editionSelect.SetOptions(editionOptions)
		ui.surahSelect.SetSelectedIndex(0)
		ui.editionSelect.SetSelectedIndex(editionIndex)
		ui.syncing = false
	})

	ui.ctrl.SelectSurah(1)
}

func (ui *RootUI) onSurahSelected(string) {
	if ui.syncing {
		return
	}
	idx := ui.surahSelect.SelectedIndex()
	if idx < 0 || idx >= len(ui.surahs) {
		return
	}
	ui.ctrl.SelectSurah(ui.surahs[idx].Number)
}

func (ui *RootUI) onEditionSelected(string) {
	if ui.syncing {
		return
	}
	idx := ui.editionSelect.SelectedIndex()
	if idx < 0 || idx >= len(ui.editions) {
		return
	}
	id := ui.editions[idx].ID
	ui.ctrl.SelectEdition(id)
	ui.settings.SetEditionID(id)
}

func (ui *RootUI) onToggleMute() {
	ui.ctrl.ToggleMute()
	ui.settings.SetMuted(ui.ctrl.Snapshot().Muted)
}

func (ui *RootUI) onShowSettings() {
	NewSettingsDialog(ui.settings, ui.app, ui.window).Show()
}

func (ui *RootUI) showStatus(msg string) {
	fyne.Do(func() {
		ui.statusLabel.SetText(msg)
	})
}

// onSnapshot applies a controller snapshot to the widgets. Runs on every
// state change, including progress ticks.
func (ui *RootUI) onSnapshot(snap playback.Snapshot) {
	fyne.Do(func() {
		ui.syncing = true
		defer func() { ui.syncing = false }()

		switch {
		case snap.Status == model.StatusLoading:
			ui.statusLabel.SetText(LoadingMessage)
		case snap.Err != "":
			ui.statusLabel.SetText(snap.Err)
		default:
			ui.statusLabel.SetText("")
		}

		if snap.HasAyah {
			ui.arabicText.SetText(snap.Ayah.Text)
			ui.translationText.SetText(snap.Ayah.Translation)
			ui.ayahCounter.SetText(fmt.Sprintf(AyahCounterFormat, snap.Ayah.NumberInSurah, snap.Surah.AyahCount))
		} else {
			ui.arabicText.SetText("")
			ui.translationText.SetText("")
			ui.ayahCounter.SetText("")
		}

		if snap.Status == model.StatusPlaying {
			ui.playPauseBtn.SetIcon(theme.MediaPauseIcon())
		} else {
			ui.playPauseBtn.SetIcon(theme.MediaPlayIcon())
		}

		if snap.Muted {
			ui.muteBtn.SetIcon(theme.VolumeMuteIcon())
		} else {
			ui.muteBtn.SetIcon(theme.VolumeUpIcon())
		}

		if !ui.seeking {
			ui.seekSlider.Max = snap.Duration.Seconds()
			ui.seekSlider.SetValue(snap.Position.Seconds())
		}
		ui.timeLabel.SetText(formatTime(snap.Position, snap.Duration))

		ui.volumeSlider.SetValue(snap.Volume)
		ui.continuityCheck.SetChecked(snap.Continuity)

		if snap.AtFirstAyah {
			ui.retreatBtn.Disable()
		} else {
			ui.retreatBtn.Enable()
		}
		if snap.AtLastAyah {
			ui.advanceBtn.Disable()
		} else {
			ui.advanceBtn.Enable()
		}

		if idx := snap.Cursor.SurahNumber - 1; idx >= 0 && idx < len(ui.surahs) && ui.surahSelect.SelectedIndex() != idx {
			ui.surahSelect.SetSelectedIndex(idx)
		}
	})
}

// formatTime renders "mm:ss / mm:ss" for the transport row.
func formatTime(pos, dur time.Duration) string {
	if dur <= 0 {
		return TimePlaceholder + TimeSeparator + TimePlaceholder
	}
	return formatClock(pos) + TimeSeparator + formatClock(dur)
}

func formatClock(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	total := int(d.Seconds())
	return fmt.Sprintf("%02d:%02d", total/60, total%60)
}
