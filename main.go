package main

import (
	"fmt"
	"os"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"github.com/rs/zerolog"

	"github.com/tartilapp/tartil/internal/config"
	"github.com/tartilapp/tartil/internal/content"
	"github.com/tartilapp/tartil/internal/playback"
	"github.com/tartilapp/tartil/internal/player"
	"github.com/tartilapp/tartil/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID   = "com.tartilapp.tartil"
	AppName = "Tartil"

	WindowWidth  = 640
	WindowHeight = 480
)

func main() {
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
	log.Info().Str("version", version).Msg("starting")

	// Create new Fyne app
	myApp := app.NewWithID(AppID)

	settings := config.NewSettings(myApp)
	myApp.Settings().SetTheme(ui.NewScaledTheme(settings.GetFontScale()))

	windowTitle := fmt.Sprintf("%s v%s", AppName, version)
	myWindow := myApp.NewWindow(windowTitle)
	myWindow.Resize(fyne.NewSize(WindowWidth, WindowHeight))

	// Initialize services
	client := content.NewClient(settings.GetAPIBaseURL(), log)
	resource := player.NewBeep(log)
	defer resource.Close()

	ctrl := playback.New(client, resource, settings.GetEditionID(), log)
	ctrl.SetContinuityMode(settings.GetContinuityMode())
	ctrl.SetVolume(settings.GetVolumeLevel())
	if settings.GetMuted() {
		ctrl.ToggleMute()
	}

	// Create and setup UI
	ui.NewRootUI(myWindow, myApp, ctrl, client, settings, log)

	// Show and run
	myWindow.ShowAndRun()
}
