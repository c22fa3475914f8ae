package main

import (
	"fmt"

	"fyne.io/fyne/v2/app"

	"github.com/cityread/article-screen/internal/config"
	"github.com/cityread/article-screen/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID   = "com.cityread.article-screen"
	AppName = "CityRead"
)

func main() {
	// Log version information
	fmt.Printf("%s v%s starting...\n", AppName, version)

	// Create new Fyne app
	myApp := app.NewWithID(AppID)
	settings := config.NewSettings(myApp)

	myWindow := myApp.NewWindow(AppName)

	// Mount the article screen; it applies its own theme
	ui.Mount(myWindow, myApp, settings)

	// Show and run
	myWindow.ShowAndRun()
}
