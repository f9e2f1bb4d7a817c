package main

import (
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

func main() {
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	// Create new Fyne app
	myApp := app.NewWithID("com.tartilapp.tartil")
	myWindow := myApp.NewWindow("Tartil")
	myWindow.Resize(fyne.NewSize(640, 480))

	settings := config.NewSettings(myApp)
	client := content.NewClient(settings.GetAPIBaseURL(), log)
	resource := player.NewBeep(log)
	defer resource.Close()

	ctrl := playback.New(client, resource, settings.GetEditionID(), log)
	ctrl.SetContinuityMode(settings.GetContinuityMode())

	// Create and setup UI
	ui.NewRootUI(myWindow, myApp, ctrl, client, settings, log)

	// Show and run
	myWindow.ShowAndRun()
}
