package main

import (
	"fmt"
	"path/filepath"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	"github.com/lothartj/desksort/internal/config"
	"github.com/lothartj/desksort/internal/sorter"
	"github.com/lothartj/desksort/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID   = "com.lothartj.desksort"
	AppName = "DeskSort"

	WindowWidth  = 720
	WindowHeight = 520

	lockFileName = "sort.lock"
)

func main() {
	// Log version information
	fmt.Printf("DeskSort v%s starting...\n", version)

	// Create new Fyne app
	myApp := app.NewWithID(AppID)

	// Apply compact theme
	myApp.Settings().SetTheme(ui.NewCompactTheme())

	windowTitle := fmt.Sprintf("%s v%s", AppName, version)
	myWindow := myApp.NewWindow(windowTitle)
	myWindow.Resize(fyne.NewSize(WindowWidth, WindowHeight))

	// Initialize services
	storePath, err := config.DefaultStorePath()
	if err != nil {
		fmt.Printf("failed to resolve settings path: %v\n", err)
	}
	store := config.NewStore(storePath)

	engine := sorter.NewService()
	if storePath != "" {
		engine.SetLockPath(filepath.Join(filepath.Dir(storePath), lockFileName))
	}

	// Create and setup UI
	ui.NewRootUI(myWindow, myApp, store, engine)

	// Show and run
	myWindow.ShowAndRun()
}
