package main

import (
	"path/filepath"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	"github.com/lothartj/desksort/internal/config"
	"github.com/lothartj/desksort/internal/sorter"
	"github.com/lothartj/desksort/internal/ui"
)

func main() {
	// Create new Fyne app
	myApp := app.NewWithID("com.lothartj.desksort")
	myApp.Settings().SetTheme(ui.NewCompactTheme())
	myWindow := myApp.NewWindow("DeskSort")
	myWindow.Resize(fyne.NewSize(720, 520))

	// Initialize services
	storePath, _ := config.DefaultStorePath()
	store := config.NewStore(storePath)
	engine := sorter.NewService()
	if storePath != "" {
		engine.SetLockPath(filepath.Join(filepath.Dir(storePath), "sort.lock"))
	}

	// Create and setup UI
	ui.NewRootUI(myWindow, myApp, store, engine)

	// Show and run
	myWindow.ShowAndRun()
}
