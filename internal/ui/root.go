package ui

import (
	"errors"
	"fmt"
	"log"
	"path/filepath"
	"sync"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/lothartj/desksort/internal/config"
	"github.com/lothartj/desksort/internal/model"
	"github.com/lothartj/desksort/internal/platform"
	"github.com/lothartj/desksort/internal/sorter"
)

// resultLine is one rendered row of the results log.
type resultLine struct {
	text      string
	revealDir string // destination directory to reveal on activation
}

// RootUI represents the main UI structure
type RootUI struct {
	window fyne.Window
	app    fyne.App

	sortBtn    *widget.Button
	resultList *widget.List

	store  *config.Store
	engine sorter.Sorter

	// current category→destination mapping, snapshot per pass
	mappingMutex sync.Mutex
	mapping      model.Mapping

	lines []resultLine

	// Status panel under the toolbar
	statusContainer *fyne.Container
	statusLabel     *widget.Label
	statusSpinner   *widget.ProgressBarInfinite
}

// NewRootUI creates and initializes the main UI
func NewRootUI(window fyne.Window, app fyne.App, store *config.Store, engine sorter.Sorter) *RootUI {
	ui := &RootUI{
		window: window,
		app:    app,
		store:  store,
		engine: engine,
	}

	ui.setupUI()
	ui.loadSettings()
	return ui
}

// setupUI creates and arranges all UI components
func (ui *RootUI) setupUI() {
	ui.createMenu()

	header := widget.NewLabel("DeskSort")
	header.TextStyle = fyne.TextStyle{Bold: true}

	ui.sortBtn = widget.NewButton("Sort Desktop", ui.onSortClick)
	ui.sortBtn.Importance = widget.HighImportance

	settingsBtn := widget.NewButton(IconSettings, ui.onShowSettings)
	settingsBtn.Importance = widget.LowImportance

	topPanel := container.NewBorder(nil, nil, container.NewHBox(settingsBtn, header), ui.sortBtn)

	// Status panel (hidden until the first pass)
	ui.statusLabel = widget.NewLabel("")
	ui.statusLabel.Alignment = fyne.TextAlignLeading
	ui.statusSpinner = widget.NewProgressBarInfinite()
	ui.statusSpinner.Hide()
	ui.statusContainer = container.NewHBox(ui.statusSpinner, container.NewPadded(ui.statusLabel))
	ui.statusContainer.Hide()

	topCombined := container.NewVBox(topPanel, ui.statusContainer)

	// Results log; selecting a row reveals its destination folder.
	ui.resultList = widget.NewList(
		func() int {
			return len(ui.lines)
		},
		func() fyne.CanvasObject {
			label := widget.NewLabel("")
			label.Truncation = fyne.TextTruncateEllipsis
			return label
		},
		func(id widget.ListItemID, obj fyne.CanvasObject) {
			if id >= len(ui.lines) {
				return
			}
			if label, ok := obj.(*widget.Label); ok {
				label.SetText(ui.lines[id].text)
			}
		},
	)
	ui.resultList.OnSelected = ui.onResultSelected

	content := container.NewBorder(
		topCombined, // top
		nil,         // bottom
		nil,         // left
		nil,         // right
		ui.resultList,
	)

	ui.window.SetContent(content)
	log.Printf("UI setup completed successfully")
}

// createMenu creates the application menu
func (ui *RootUI) createMenu() {
	settingsItem := fyne.NewMenuItem("Settings", ui.onShowSettings)

	mainMenu := fyne.NewMainMenu(
		fyne.NewMenu("File", settingsItem),
	)

	ui.window.SetMainMenu(mainMenu)
}

// loadSettings loads the persisted mapping, building defaults on first run
// and warning instead of silently overwriting a corrupt document.
func (ui *RootUI) loadSettings() {
	mapping, err := ui.store.Load()

	switch {
	case err == nil:
		ui.setMapping(mapping)
		log.Printf("Loaded settings with %d configured destinations", len(mapping))

	case errors.Is(err, config.ErrNotFound):
		log.Printf("No settings document found, writing defaults")
		ui.applyDefaultMapping()

	default:
		var corrupt *config.CorruptError
		if errors.As(err, &corrupt) {
			log.Printf("Settings document is corrupt: %v", corrupt)
			dialog.ShowConfirm(
				"Settings damaged",
				fmt.Sprintf("The settings file at %s could not be read.\nReplace it with default destinations?", corrupt.Path),
				func(confirmed bool) {
					if confirmed {
						ui.applyDefaultMapping()
					}
				},
				ui.window,
			)
			return
		}
		log.Printf("Failed to load settings: %v", err)
		dialog.ShowError(err, ui.window)
	}
}

// applyDefaultMapping builds and persists one destination per category
// under <desktop>/Sorted.
func (ui *RootUI) applyDefaultMapping() {
	desktop, err := platform.DesktopDir()
	if err != nil {
		log.Printf("Failed to resolve desktop directory: %v", err)
		dialog.ShowError(err, ui.window)
		return
	}

	defaults := config.DefaultMapping(desktop)
	if err := ui.store.Save(defaults); err != nil {
		log.Printf("Failed to persist default settings: %v", err)
		dialog.ShowError(err, ui.window)
		return
	}
	ui.setMapping(defaults)
	log.Printf("Default settings written to %s", ui.store.Path())
}

// setMapping replaces the current mapping under lock.
func (ui *RootUI) setMapping(mapping model.Mapping) {
	ui.mappingMutex.Lock()
	defer ui.mappingMutex.Unlock()
	ui.mapping = mapping
}

// currentMapping returns an independent snapshot of the mapping.
func (ui *RootUI) currentMapping() model.Mapping {
	ui.mappingMutex.Lock()
	defer ui.mappingMutex.Unlock()
	return ui.mapping.Clone()
}

// onSortClick triggers one sort pass in the background. The trigger is
// disabled for the duration of the pass; there is no mid-pass cancellation.
func (ui *RootUI) onSortClick() {
	desktop, err := platform.DesktopDir()
	if err != nil {
		dialog.ShowError(err, ui.window)
		return
	}

	mapping := ui.currentMapping()
	if len(mapping) == 0 {
		ui.showStatus("No destinations configured yet", false)
		return
	}

	ui.sortBtn.Disable()
	ui.showStatus("Sorting desktop…", true)
	log.Printf("Starting sort pass over %s", desktop)

	go func() {
		result, err := ui.engine.ScanAndSort(desktop, mapping)

		fyne.Do(func() {
			ui.sortBtn.Enable()

			if err != nil {
				ui.showStatus("Sort failed", false)
				if errors.Is(err, sorter.ErrPassInProgress) {
					dialog.ShowInformation("Sort", "Another sort pass is already running.", ui.window)
					return
				}
				log.Printf("Sort pass failed: %v", err)
				dialog.ShowError(err, ui.window)
				return
			}

			ui.renderResult(result)
			ui.showStatus(result.Summary(), false)
			ui.sendCompletionNotification(result)
		})
	}()
}

// renderResult replaces the results log with the outcome of one pass.
func (ui *RootUI) renderResult(result *model.SortResult) {
	lines := make([]resultLine, 0, len(result.Moved)+len(result.Errors)+1)

	for _, moved := range result.Moved {
		lines = append(lines, resultLine{
			text:      IconMoved + " " + moved.Name + MovedSeparator + moved.Destination,
			revealDir: filepath.Dir(moved.Destination),
		})
	}
	for _, entryErr := range result.Errors {
		lines = append(lines, resultLine{
			text: IconError + " " + entryErr.String(),
		})
	}
	if len(lines) == 0 {
		lines = append(lines, resultLine{text: "Nothing to sort " + DashPlaceholder + " desktop is already tidy"})
	}

	ui.lines = lines
	ui.resultList.UnselectAll()
	ui.resultList.Refresh()
}

// onResultSelected reveals the destination folder of the selected row.
func (ui *RootUI) onResultSelected(id widget.ListItemID) {
	defer ui.resultList.Unselect(id)

	if id >= len(ui.lines) {
		return
	}
	revealDir := ui.lines[id].revealDir
	if revealDir == "" {
		return
	}

	if err := platform.OpenFolderInManager(revealDir); err != nil {
		log.Printf("Failed to reveal %s: %v", revealDir, err)
		widget.ShowPopUp(widget.NewLabel("Error opening folder: "+err.Error()), ui.window.Canvas())
	}
}

// showStatus displays a message in the status panel under the toolbar.
// When spinning is true, a spinner indicates background activity.
func (ui *RootUI) showStatus(message string, spinning bool) {
	ui.statusLabel.SetText(message)
	if spinning {
		ui.statusSpinner.Show()
	} else {
		ui.statusSpinner.Hide()
	}
	ui.statusContainer.Show()
	ui.statusContainer.Refresh()
}

// sendCompletionNotification sends a system notification for a finished pass
func (ui *RootUI) sendCompletionNotification(result *model.SortResult) {
	ui.app.SendNotification(&fyne.Notification{
		Title:   "Desktop sorted",
		Content: result.Summary(),
	})
}

// onShowSettings shows the settings dialog
func (ui *RootUI) onShowSettings() {
	sd := NewSettingsDialog(ui.window, ui.store, ui.currentMapping(), func(mapping model.Mapping) {
		ui.setMapping(mapping)
		log.Printf("Settings updated: %d configured destinations", len(mapping))
	})
	sd.Show()
}
